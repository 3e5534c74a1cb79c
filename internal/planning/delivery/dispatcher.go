// Package delivery sends finished reports to clients.
package delivery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	dErrors "retireplan/pkg/domain-errors"
	"retireplan/pkg/platform/circuit"
)

// Defaults for the report email.
const (
	DefaultSubject        = "Your Retirement Planning Summary"
	DefaultBody           = "Attached is your personalised retirement planning summary."
	DefaultAttachmentName = "retirement_summary.pdf"
	AttachmentContentType = "application/pdf"
)

// Envelope describes one outgoing report.
type Envelope struct {
	To             string
	Subject        string
	Body           string
	AttachmentPath string
	AttachmentName string
}

// Message is an envelope resolved for a transport, with the attachment loaded.
type Message struct {
	From           string
	To             string
	Subject        string
	Body           string
	AttachmentName string
	Attachment     []byte
}

// Transport hands a message to a mail system. A nil error means the message
// was accepted.
type Transport interface {
	Send(ctx context.Context, msg *Message) error
}

// Config holds dispatcher settings fixed at construction.
type Config struct {
	From    string
	Timeout time.Duration
}

// Dispatcher makes one bounded delivery attempt per envelope and fails fast
// while the transport circuit is open.
type Dispatcher struct {
	cfg       Config
	transport Transport
	breaker   *circuit.Breaker
	logger    *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithBreaker replaces the default transport circuit breaker.
func WithBreaker(b *circuit.Breaker) Option {
	return func(d *Dispatcher) {
		d.breaker = b
	}
}

// WithLogger sets the logger used for circuit transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// New creates a Dispatcher.
func New(cfg Config, transport Transport, opts ...Option) (*Dispatcher, error) {
	if transport == nil {
		return nil, fmt.Errorf("transport is required")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("sender address is required")
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("delivery timeout must be positive")
	}
	d := &Dispatcher{
		cfg:       cfg,
		transport: transport,
		breaker:   circuit.New("mail"),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Breaker exposes the transport circuit for health reporting.
func (d *Dispatcher) Breaker() *circuit.Breaker {
	return d.breaker
}

// Dispatch delivers env. Empty subject, body and attachment name take the
// report defaults. Failures are not retried.
func (d *Dispatcher) Dispatch(ctx context.Context, env Envelope) error {
	if env.To == "" {
		return dErrors.New(dErrors.CodeDelivery, "recipient is required")
	}
	attachment, err := os.ReadFile(env.AttachmentPath)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeStorage, "failed to read report attachment")
	}

	if !d.breaker.Allow() {
		return dErrors.New(dErrors.CodeDelivery, "mail transport unavailable")
	}

	msg := &Message{
		From:           d.cfg.From,
		To:             env.To,
		Subject:        withDefault(env.Subject, DefaultSubject),
		Body:           withDefault(env.Body, DefaultBody),
		AttachmentName: withDefault(env.AttachmentName, DefaultAttachmentName),
		Attachment:     attachment,
	}

	ctx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	// buffered so a transport that ignores ctx cannot leak the goroutine
	done := make(chan error, 1)
	go func() { done <- d.transport.Send(ctx, msg) }()

	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}

	if err != nil {
		d.logChange(ctx, d.breaker.RecordFailure())
		if errors.Is(err, context.DeadlineExceeded) {
			return dErrors.Wrap(err, dErrors.CodeDelivery, "delivery timed out")
		}
		return dErrors.Wrap(err, dErrors.CodeDelivery, "delivery failed")
	}
	d.logChange(ctx, d.breaker.RecordSuccess())
	return nil
}

func (d *Dispatcher) logChange(ctx context.Context, change circuit.StateChange) {
	switch {
	case change.Opened:
		d.logger.WarnContext(ctx, "mail circuit opened", "breaker", d.breaker.Name())
	case change.Closed:
		d.logger.InfoContext(ctx, "mail circuit closed", "breaker", d.breaker.Name())
	}
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
