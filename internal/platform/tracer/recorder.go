package tracer

import (
	"context"
	"sync"
)

// FinishedSpan is a span captured by Recorder.
type FinishedSpan struct {
	Name  string
	Attrs map[string]any
	Err   error
}

// Recorder keeps finished spans in memory. Intended for tests.
type Recorder struct {
	mu    sync.Mutex
	spans []FinishedSpan
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Start begins a recorded span.
func (r *Recorder) Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span) {
	s := &recordedSpan{rec: r, name: name, attrs: make(map[string]any, len(attrs))}
	s.SetAttributes(attrs...)
	return ctx, s
}

// Spans returns a copy of all finished spans in completion order.
func (r *Recorder) Spans() []FinishedSpan {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]FinishedSpan(nil), r.spans...)
}

// Names returns finished span names in completion order.
func (r *Recorder) Names() []string {
	spans := r.Spans()
	names := make([]string, len(spans))
	for i, s := range spans {
		names[i] = s.Name
	}
	return names
}

type recordedSpan struct {
	rec   *Recorder
	name  string
	mu    sync.Mutex
	attrs map[string]any
}

func (s *recordedSpan) End(err error) {
	s.mu.Lock()
	attrs := make(map[string]any, len(s.attrs))
	for k, v := range s.attrs {
		attrs[k] = v
	}
	s.mu.Unlock()

	s.rec.mu.Lock()
	defer s.rec.mu.Unlock()
	s.rec.spans = append(s.rec.spans, FinishedSpan{Name: s.name, Attrs: attrs, Err: err})
}

func (s *recordedSpan) SetAttributes(attrs ...Attribute) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range attrs {
		s.attrs[a.Key] = a.Value
	}
}

func (s *recordedSpan) AddEvent(string, ...Attribute) {}

var _ Tracer = (*Recorder)(nil)
