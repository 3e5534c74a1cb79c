// Package service runs the planning pipeline for one questionnaire at a time:
// intake, projection, chart, report, delivery and artifact cleanup.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"retireplan/internal/planning/delivery"
	"retireplan/internal/planning/metrics"
	"retireplan/internal/planning/models"
	"retireplan/internal/planning/report"
	"retireplan/internal/platform/middleware"
	"retireplan/internal/platform/privacy"
	"retireplan/internal/platform/tracer"
	dErrors "retireplan/pkg/domain-errors"
	"retireplan/pkg/platform/middleware/requesttime"
)

// Intake gates a questionnaire and derives the projection input.
type Intake interface {
	CheckAt(q *models.Questionnaire, now time.Time) (*models.ProjectionInput, error)
}

// Projector runs the balance simulation.
type Projector interface {
	Project(in models.ProjectionInput) (*models.ProjectionResult, error)
}

// ProjectorFunc adapts a plain function to Projector.
type ProjectorFunc func(in models.ProjectionInput) (*models.ProjectionResult, error)

// Project calls f(in).
func (f ProjectorFunc) Project(in models.ProjectionInput) (*models.ProjectionResult, error) {
	return f(in)
}

// ChartRenderer writes the balance chart image to path.
type ChartRenderer interface {
	Render(ctx context.Context, name string, balances []float64, path string) error
}

// ReportComposer writes the report document to path.
type ReportComposer interface {
	Compose(ctx context.Context, data report.Data, path string) error
}

// Dispatcher delivers a report.
type Dispatcher interface {
	Dispatch(ctx context.Context, env delivery.Envelope) error
}

// ArtifactStore opens request-scoped artifact sets.
type ArtifactStore interface {
	Open(id string) (ArtifactSet, error)
}

// ArtifactSet is the scratch space of one request.
type ArtifactSet interface {
	ID() string
	ChartPath() string
	ReportPath() string
	RemoveChart() error
	Release() error
}

type Option func(*Service)

// Service runs submissions. It holds no per-request state and is safe for
// concurrent use.
type Service struct {
	intake     Intake
	projector  Projector
	charts     ChartRenderer
	reports    ReportComposer
	dispatcher Dispatcher
	artifacts  ArtifactStore

	metrics *metrics.Metrics
	tracer  tracer.Tracer
	logger  *slog.Logger
	newID   func() string
}

// WithMetrics sets the metrics instance for the service.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer sets the tracer used for pipeline spans.
func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithLogger sets the logger instance for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithIDGenerator overrides how artifact set IDs are minted.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

func New(
	intake Intake,
	projector Projector,
	charts ChartRenderer,
	reports ReportComposer,
	dispatcher Dispatcher,
	artifacts ArtifactStore,
	opts ...Option,
) (*Service, error) {
	switch {
	case intake == nil:
		return nil, fmt.Errorf("intake is required")
	case projector == nil:
		return nil, fmt.Errorf("projector is required")
	case charts == nil:
		return nil, fmt.Errorf("chart renderer is required")
	case reports == nil:
		return nil, fmt.Errorf("report composer is required")
	case dispatcher == nil:
		return nil, fmt.Errorf("dispatcher is required")
	case artifacts == nil:
		return nil, fmt.Errorf("artifact store is required")
	}
	svc := &Service{
		intake:     intake,
		projector:  projector,
		charts:     charts,
		reports:    reports,
		dispatcher: dispatcher,
		artifacts:  artifacts,
		tracer:     tracer.NewNoop(),
		logger:     slog.Default(),
		newID:      func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Submit runs the full pipeline for q. Nothing past the consent gate runs
// for a questionnaire without consent. The chart is always removed once an
// artifact set has been opened; cleanup failures are logged, not returned.
func (s *Service) Submit(ctx context.Context, q *models.Questionnaire) (resp *models.SubmissionResponse, err error) {
	requestID := middleware.GetRequestID(ctx)
	ctx, span := s.tracer.Start(ctx, tracer.SpanSubmit, tracer.String(tracer.AttrRequestID, requestID))
	defer func() {
		if err != nil {
			err = s.timeoutAware(ctx, err)
			span.SetAttributes(tracer.String(tracer.AttrErrorKind, string(dErrors.CodeOf(err))))
		}
		span.End(err)
	}()

	var in *models.ProjectionInput
	err = s.stage(ctx, models.StageValidated, tracer.SpanIntake, func(context.Context) error {
		var checkErr error
		in, checkErr = s.intake.CheckAt(q, requesttime.Now(ctx))
		return checkErr
	})
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeMissingConsent) {
			s.logger.InfoContext(ctx, "submission rejected: consent not given", "request_id", requestID)
			if s.metrics != nil {
				s.metrics.IncrementConsentRejections()
				s.metrics.IncrementSubmissions(metrics.OutcomeRejected)
			}
			return nil, err
		}
		s.countFailure()
		return nil, err
	}
	log := s.logger.With("request_id", requestID, "recipient", privacy.MaskEmail(q.Email))
	span.SetAttributes(tracer.String(tracer.AttrRecipientHash, tracer.HashRecipient(q.Email)))

	var result *models.ProjectionResult
	err = s.stage(ctx, models.StageProjected, tracer.SpanProject, func(context.Context) error {
		var projErr error
		result, projErr = s.projector.Project(*in)
		return projErr
	})
	if err != nil {
		s.countFailure()
		return nil, err
	}
	span.SetAttributes(tracer.Int(tracer.AttrYears, result.YearsUntilRetirement))
	if s.metrics != nil {
		s.metrics.ObserveProjectedYears(result.YearsUntilRetirement)
	}

	// opening the artifact set belongs to the chart stage
	var set ArtifactSet
	err = s.stage(ctx, models.StageCharted, tracer.SpanChart, func(ctx context.Context) error {
		var openErr error
		if set, openErr = s.artifacts.Open(s.newID()); openErr != nil {
			return openErr
		}
		span.SetAttributes(tracer.String(tracer.AttrArtifactSetID, set.ID()))
		return s.charts.Render(ctx, q.FullName, result.YearlyBalances, set.ChartPath())
	}, tracer.Int(tracer.AttrPoints, len(result.YearlyBalances)))
	if set != nil {
		defer s.cleanup(ctx, log, set)
	}
	if err != nil {
		s.countFailure()
		return nil, err
	}

	err = s.stage(ctx, models.StageComposed, tracer.SpanCompose, func(ctx context.Context) error {
		return s.reports.Compose(ctx, report.Data{
			Name:      q.FullName,
			Age:       in.CurrentAge,
			Result:    result,
			ChartPath: set.ChartPath(),
		}, set.ReportPath())
	})
	if err != nil {
		s.countFailure()
		return nil, err
	}

	err = s.stage(ctx, models.StageDispatched, tracer.SpanDispatch, func(ctx context.Context) error {
		return s.dispatcher.Dispatch(ctx, delivery.Envelope{
			To:             q.Email,
			Subject:        delivery.DefaultSubject,
			Body:           delivery.DefaultBody,
			AttachmentPath: set.ReportPath(),
			AttachmentName: delivery.DefaultAttachmentName,
		})
	}, tracer.String(tracer.AttrRecipientHash, tracer.HashRecipient(q.Email)))
	if err != nil {
		s.countFailure()
		return nil, err
	}

	log.InfoContext(ctx, "report sent", "years", result.YearsUntilRetirement, "artifact_set_id", set.ID())
	if s.metrics != nil {
		s.metrics.IncrementSubmissions(metrics.OutcomeSent)
	}
	return &models.SubmissionResponse{
		Message:              models.SubmissionAccepted,
		Name:                 q.FullName,
		CurrentAge:           in.CurrentAge,
		RetirementProjection: result,
	}, nil
}

// stage runs fn as the transition into next, with a span, latency metric and
// a log line.
func (s *Service) stage(ctx context.Context, next models.Stage, spanName string, fn func(context.Context) error, attrs ...tracer.Attribute) error {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, spanName, attrs...)
	err := fn(ctx)
	elapsed := time.Since(start)
	if s.metrics != nil {
		s.metrics.ObserveStageLatency(string(next), elapsed.Seconds())
	}
	if err != nil {
		kind := string(dErrors.CodeOf(err))
		span.SetAttributes(tracer.String(tracer.AttrErrorKind, kind))
		span.End(err)
		s.recordStageFailure(next, err)
		s.logger.WarnContext(ctx, "stage failed",
			"request_id", middleware.GetRequestID(ctx),
			"stage", next,
			"kind", kind,
			"error", err,
			"duration_ms", elapsed.Milliseconds(),
		)
		return err
	}
	span.End(nil)
	s.logger.DebugContext(ctx, "stage completed",
		"request_id", middleware.GetRequestID(ctx),
		"stage", next,
		"duration_ms", elapsed.Milliseconds(),
	)
	return nil
}

// cleanup removes the chart and releases the set. Failures never escape.
func (s *Service) cleanup(ctx context.Context, log *slog.Logger, set ArtifactSet) {
	_, span := s.tracer.Start(ctx, tracer.SpanCleanup, tracer.String(tracer.AttrArtifactSetID, set.ID()))
	err := errors.Join(s.cleanupStep(ctx, log, "remove_chart", set.RemoveChart), s.cleanupStep(ctx, log, "release", set.Release))
	span.End(err)
	if err == nil {
		log.DebugContext(ctx, "stage completed", "stage", models.StageCleanedUp)
	}
}

func (s *Service) cleanupStep(ctx context.Context, log *slog.Logger, step string, fn func() error) error {
	err := fn()
	if err != nil {
		log.WarnContext(ctx, "artifact cleanup failed", "step", step, "error", err)
		if s.metrics != nil {
			s.metrics.IncrementCleanupFailures()
		}
	}
	return err
}

func (s *Service) recordStageFailure(stage models.Stage, err error) {
	if s.metrics != nil {
		s.metrics.IncrementStageFailures(string(stage), string(dErrors.CodeOf(err)))
	}
}

func (s *Service) countFailure() {
	if s.metrics != nil {
		s.metrics.IncrementSubmissions(metrics.OutcomeFailed)
	}
}

// timeoutAware reports a stage failure caused by the request deadline as a
// timeout rather than as the stage's own error kind.
func (s *Service) timeoutAware(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) && !dErrors.HasCode(err, dErrors.CodeTimeout) {
		return &dErrors.Error{Code: dErrors.CodeTimeout, Message: "request timed out", Err: err}
	}
	return err
}
