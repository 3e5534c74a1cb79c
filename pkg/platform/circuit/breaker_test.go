package circuit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// BreakerSuite covers the state machine of the mail transport breaker.
//
// Justification: a breaker that never re-admits calls would turn one SMTP
// outage into a permanent delivery failure.
type BreakerSuite struct {
	suite.Suite
	now time.Time
}

func TestBreakerSuite(t *testing.T) {
	suite.Run(t, new(BreakerSuite))
}

func (s *BreakerSuite) SetupTest() {
	s.now = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
}

func (s *BreakerSuite) newBreaker() *Breaker {
	return New("smtp",
		WithFailureThreshold(2),
		WithCooldown(time.Minute),
		WithClock(func() time.Time { return s.now }),
	)
}

func (s *BreakerSuite) TestOpensAfterThreshold() {
	b := s.newBreaker()
	s.True(b.Allow())
	s.False(b.RecordFailure().Opened)
	s.True(b.RecordFailure().Opened)
	s.Equal(StateOpen, b.State())
	s.False(b.Allow())
}

func (s *BreakerSuite) TestSuccessResetsFailureCount() {
	b := s.newBreaker()
	b.RecordFailure()
	b.RecordSuccess()
	s.False(b.RecordFailure().Opened)
	s.Equal(StateClosed, b.State())
}

func (s *BreakerSuite) TestHalfOpenAfterCooldown() {
	s.Run("single trial call is admitted", func() {
		b := s.newBreaker()
		b.RecordFailure()
		b.RecordFailure()

		s.now = s.now.Add(time.Minute)
		s.True(b.Allow())
		s.Equal(StateHalfOpen, b.State())
		s.False(b.Allow(), "second caller must wait for the trial")
	})

	s.Run("trial success closes", func() {
		b := s.newBreaker()
		b.RecordFailure()
		b.RecordFailure()
		s.now = s.now.Add(2 * time.Minute)
		s.Require().True(b.Allow())

		s.True(b.RecordSuccess().Closed)
		s.Equal(StateClosed, b.State())
		s.True(b.Allow())
	})

	s.Run("trial failure re-opens", func() {
		b := s.newBreaker()
		b.RecordFailure()
		b.RecordFailure()
		s.now = s.now.Add(2 * time.Minute)
		s.Require().True(b.Allow())

		s.True(b.RecordFailure().Opened)
		s.False(b.Allow())
	})
}

func (s *BreakerSuite) TestReset() {
	b := s.newBreaker()
	b.RecordFailure()
	b.RecordFailure()
	b.Reset()
	s.Equal(StateClosed, b.State())
	s.Equal("closed", b.State().String())
}
