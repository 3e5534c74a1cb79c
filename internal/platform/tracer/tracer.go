// Package tracer provides a lightweight tracing abstraction for the planning pipeline.
//
// Pipeline code depends on the Tracer and Span interfaces only, so stages can be
// traced without importing OpenTelemetry directly.
//
// Implementations:
//   - NoopTracer: zero overhead, the default
//   - OTelTracer: OpenTelemetry adapter for production
//   - Recorder: captures finished spans in memory for tests
package tracer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span, recording any error that occurred.
	// End must be called exactly once, typically via defer.
	End(err error)

	// SetAttributes adds key-value pairs to the span.
	SetAttributes(attrs ...Attribute)

	// AddEvent records a timestamped event within the span.
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a new span with the given name and attributes.
	//
	// Example:
	//   ctx, span := tracer.Start(ctx, tracer.SpanChart,
	//       tracer.Int("points", len(balances)),
	//   )
	//   defer span.End(err)
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int creates an integer attribute.
func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Float64 creates a float64 attribute.
func Float64(key string, value float64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// HashRecipient returns a short SHA-256 digest of a normalized email address so
// traces of the same client correlate without carrying the address itself.
func HashRecipient(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(email))
	return hex.EncodeToString(hash[:8])
}

// Span names, one per pipeline stage.
const (
	SpanSubmit   = "planning.submit"
	SpanIntake   = "planning.intake"
	SpanProject  = "planning.project"
	SpanChart    = "planning.chart"
	SpanCompose  = "planning.compose"
	SpanDispatch = "planning.dispatch"
	SpanCleanup  = "planning.cleanup"
)

// Attribute keys.
const (
	AttrRequestID     = "request_id"
	AttrArtifactSetID = "artifact_set_id"
	AttrRecipientHash = "recipient_hash"
	AttrYears         = "projection.years"
	AttrPoints        = "chart.points"
	AttrErrorKind     = "error.kind"
)
