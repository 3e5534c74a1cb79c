// Package chart draws the projected balance line chart embedded in the report.
package chart

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	dErrors "retireplan/pkg/domain-errors"
)

// Canvas size of the rendered image.
const (
	Width  = 10 * vg.Inch
	Height = 6 * vg.Inch
)

// Renderer draws balance sequences to PNG files. It holds no per-request state
// and is safe for concurrent use.
type Renderer struct {
	width, height vg.Length
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSize overrides the canvas size.
func WithSize(width, height vg.Length) Option {
	return func(r *Renderer) {
		r.width = width
		r.height = height
	}
}

// New creates a Renderer with the default 10x6 inch canvas.
func New(opts ...Option) *Renderer {
	r := &Renderer{width: Width, height: Height}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Title returns the chart title for a client.
func Title(name string) string {
	return "Projected Super Balance for " + name
}

// Render plots balances against year index 1..len(balances) and writes the
// image to path, replacing any existing file. An empty sequence yields a chart
// with axes and no line.
func (r *Renderer) Render(ctx context.Context, name string, balances []float64, path string) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeRender, "chart rendering cancelled")
	}

	p := plot.New()
	p.Title.Text = Title(name)
	p.X.Label.Text = "Years Until Retirement"
	p.Y.Label.Text = "Balance ($)"
	p.Add(plotter.NewGrid())

	if len(balances) == 0 {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Min, p.Y.Max = 0, 1
	} else {
		pts := make(plotter.XYs, len(balances))
		for i, b := range balances {
			pts[i].X = float64(i + 1)
			pts[i].Y = b
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeRender, "failed to build chart series")
		}
		p.Add(line, points)
	}

	wt, err := p.WriterTo(r.width, r.height, "png")
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeRender, "failed to draw chart")
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return dErrors.Wrap(err, dErrors.CodeRender, "failed to encode chart")
	}

	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeRender, "chart rendering cancelled")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return dErrors.Wrap(err, dErrors.CodeRender, fmt.Sprintf("failed to write chart: %s", err))
	}
	return nil
}
