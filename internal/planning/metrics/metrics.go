package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission outcomes.
const (
	OutcomeSent     = "sent"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics holds Prometheus collectors for the planning pipeline.
type Metrics struct {
	Submissions       *prometheus.CounterVec
	StageLatency      *prometheus.HistogramVec
	StageFailures     *prometheus.CounterVec
	ConsentRejections prometheus.Counter
	CleanupFailures   prometheus.Counter
	ProjectedYears    prometheus.Histogram
}

// New registers and returns planning metrics collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "retireplan_submissions_total",
			Help: "Total number of questionnaire submissions, labeled by outcome",
		}, []string{"outcome"}),
		StageLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "retireplan_stage_latency_seconds",
			Help:    "Latency of pipeline stages in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"stage"}),
		StageFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "retireplan_stage_failures_total",
			Help: "Total number of pipeline stage failures, labeled by stage and error kind",
		}, []string{"stage", "kind"}),
		ConsentRejections: factory.NewCounter(prometheus.CounterOpts{
			Name: "retireplan_consent_rejections_total",
			Help: "Total number of submissions rejected at the consent gate",
		}),
		CleanupFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "retireplan_cleanup_failures_total",
			Help: "Total number of artifact cleanup failures",
		}),
		ProjectedYears: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "retireplan_projected_years",
			Help:    "Distribution of simulated years per projection",
			Buckets: []float64{0, 5, 10, 15, 20, 25, 30, 40, 50},
		}),
	}
}

func (m *Metrics) IncrementSubmissions(outcome string) {
	m.Submissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveStageLatency(stage string, durationSeconds float64) {
	m.StageLatency.WithLabelValues(stage).Observe(durationSeconds)
}

func (m *Metrics) IncrementStageFailures(stage, kind string) {
	m.StageFailures.WithLabelValues(stage, kind).Inc()
}

func (m *Metrics) IncrementConsentRejections() {
	m.ConsentRejections.Inc()
}

func (m *Metrics) IncrementCleanupFailures() {
	m.CleanupFailures.Inc()
}

// ObserveProjectedYears records the length of a projection.
func (m *Metrics) ObserveProjectedYears(years int) {
	m.ProjectedYears.Observe(float64(years))
}
