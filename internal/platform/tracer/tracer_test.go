package tracer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"retireplan/internal/platform/tracer"
)

func TestNoopTracer_Start(t *testing.T) {
	tr := tracer.NewNoop()
	ctx := context.Background()

	newCtx, span := tr.Start(ctx, tracer.SpanChart, tracer.Int(tracer.AttrPoints, 30))

	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)
	span.SetAttributes(tracer.Bool("overwrite", true))
	span.AddEvent("chart.saved")
	span.End(errors.New("ignored"))
}

func TestOTelTracer_WithNoopProvider(t *testing.T) {
	tr := tracer.NewOTel(tracer.WithOTelTracer(noop.NewTracerProvider().Tracer("test")))

	_, span := tr.Start(context.Background(), tracer.SpanDispatch,
		tracer.String(tracer.AttrRecipientHash, "abc"),
		tracer.Float64("rate", 0.03),
		tracer.Duration("timeout", 0),
	)
	span.SetAttributes(tracer.Int(tracer.AttrPoints, 30))
	span.AddEvent("mail.sent")
	span.End(errors.New("smtp rejected"))
}

func TestRecorder(t *testing.T) {
	rec := tracer.NewRecorder()

	_, a := rec.Start(context.Background(), tracer.SpanProject, tracer.Int(tracer.AttrYears, 35))
	_, b := rec.Start(context.Background(), tracer.SpanChart)
	b.SetAttributes(tracer.Int(tracer.AttrPoints, 35))
	a.End(nil)
	failure := errors.New("disk full")
	b.End(failure)

	spans := rec.Spans()
	require.Len(t, spans, 2)
	assert.Equal(t, []string{tracer.SpanProject, tracer.SpanChart}, rec.Names())
	assert.Equal(t, 35, spans[0].Attrs[tracer.AttrYears])
	assert.Equal(t, 35, spans[1].Attrs[tracer.AttrPoints])
	assert.ErrorIs(t, spans[1].Err, failure)
}

func TestHashRecipient(t *testing.T) {
	assert.Empty(t, tracer.HashRecipient(""))
	assert.Len(t, tracer.HashRecipient("jane@example.com"), 16)
	assert.Equal(t,
		tracer.HashRecipient("jane@example.com"),
		tracer.HashRecipient("  Jane@Example.com "),
		"normalization must make hashes stable",
	)
	assert.NotEqual(t, tracer.HashRecipient("jane@example.com"), tracer.HashRecipient("john@example.com"))
}
