package main

import (
	"context"
	"fmt"
	"time"

	"retireplan/internal/planning/artifact"
	"retireplan/internal/planning/chart"
	"retireplan/internal/planning/report"
	"retireplan/internal/platform/health"
	"retireplan/pkg/platform/circuit"
)

// timedChartRenderer bounds each chart render by the configured timeout.
type timedChartRenderer struct {
	renderer *chart.Renderer
	timeout  time.Duration
}

func (t timedChartRenderer) Render(ctx context.Context, name string, balances []float64, path string) error {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}
	return t.renderer.Render(ctx, name, balances, path)
}

func registerHealthChecks(h *health.Handler, store *artifact.Store, converter *report.PDFConverter, breaker *circuit.Breaker) {
	h.RegisterCheck("artifact_dir", func(context.Context) error {
		return store.Writable()
	})
	h.RegisterCheck("wkhtmltopdf", converter.Available)
	h.RegisterCheck("smtp_circuit", func(context.Context) error {
		if state := breaker.State(); state == circuit.StateOpen {
			return fmt.Errorf("circuit %s is %s", breaker.Name(), state)
		}
		return nil
	})
}
