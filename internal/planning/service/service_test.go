package service_test

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Projector,ChartRenderer,ReportComposer,Dispatcher,ArtifactStore,ArtifactSet

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"retireplan/internal/planning/delivery"
	"retireplan/internal/planning/intake"
	"retireplan/internal/planning/metrics"
	"retireplan/internal/planning/models"
	"retireplan/internal/planning/report"
	"retireplan/internal/planning/service"
	"retireplan/internal/planning/service/mocks"
	"retireplan/internal/platform/middleware"
	"retireplan/internal/platform/tracer"
	dErrors "retireplan/pkg/domain-errors"
	"retireplan/pkg/platform/middleware/requesttime"
	"retireplan/pkg/testutil"
)

const (
	setID      = "set-1"
	chartPath  = "/artifacts/set-1/chart.png"
	reportPath = "/artifacts/set-1/retirement_report.pdf"
)

type ServiceSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	projector  *mocks.MockProjector
	charts     *mocks.MockChartRenderer
	reports    *mocks.MockReportComposer
	dispatcher *mocks.MockDispatcher
	store      *mocks.MockArtifactStore
	set        *mocks.MockArtifactSet
	metrics    *metrics.Metrics
	recorder   *tracer.Recorder
	logs       *bytes.Buffer
	service    *service.Service
	ctx        context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.projector = mocks.NewMockProjector(s.ctrl)
	s.charts = mocks.NewMockChartRenderer(s.ctrl)
	s.reports = mocks.NewMockReportComposer(s.ctrl)
	s.dispatcher = mocks.NewMockDispatcher(s.ctrl)
	s.store = mocks.NewMockArtifactStore(s.ctrl)
	s.set = mocks.NewMockArtifactSet(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.recorder = tracer.NewRecorder()
	s.logs = &bytes.Buffer{}

	s.set.EXPECT().ID().Return(setID).AnyTimes()
	s.set.EXPECT().ChartPath().Return(chartPath).AnyTimes()
	s.set.EXPECT().ReportPath().Return(reportPath).AnyTimes()

	svc, err := service.New(
		intake.New(),
		s.projector,
		s.charts,
		s.reports,
		s.dispatcher,
		s.store,
		service.WithMetrics(s.metrics),
		service.WithTracer(s.recorder),
		service.WithLogger(slog.New(slog.NewJSONHandler(s.logs, nil))),
		service.WithIDGenerator(func() string { return setID }),
	)
	s.Require().NoError(err)
	s.service = svc

	ctx := middleware.WithRequestID(context.Background(), "req-123")
	s.ctx = requesttime.WithTime(ctx, testutil.Now)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func projection() *models.ProjectionResult {
	return &models.ProjectionResult{
		YearsUntilRetirement: 2,
		RealGrowthRate:       0.034146341463414887,
		FinalBalance:         117116.59,
		YearlyBalances:       []float64{108414.63, 117116.59},
	}
}

func expectedInput() models.ProjectionInput {
	g, i := models.DefaultGrowthRate, models.DefaultInflationRate
	return models.ProjectionInput{
		CurrentAge:         35,
		RetirementAge:      65,
		CurrentBalance:     100000,
		AnnualContribution: 5000,
		GrowthRate:         &g,
		InflationRate:      &i,
	}
}

func (s *ServiceSuite) expectCleanup() {
	s.set.EXPECT().RemoveChart().Return(nil)
	s.set.EXPECT().Release().Return(nil)
}

func (s *ServiceSuite) TestSubmit_Success() {
	q := testutil.NewQuestionnaireBuilder().Build()
	result := projection()

	gomock.InOrder(
		s.projector.EXPECT().Project(expectedInput()).Return(result, nil),
		s.store.EXPECT().Open(setID).Return(s.set, nil),
		s.charts.EXPECT().Render(gomock.Any(), "Jane Doe", result.YearlyBalances, chartPath).Return(nil),
		s.reports.EXPECT().Compose(gomock.Any(), report.Data{
			Name:      "Jane Doe",
			Age:       35,
			Result:    result,
			ChartPath: chartPath,
		}, reportPath).Return(nil),
		s.dispatcher.EXPECT().Dispatch(gomock.Any(), delivery.Envelope{
			To:             "jane@example.com",
			Subject:        "Your Retirement Planning Summary",
			Body:           "Attached is your personalised retirement planning summary.",
			AttachmentPath: reportPath,
			AttachmentName: "retirement_summary.pdf",
		}).Return(nil),
		s.set.EXPECT().RemoveChart().Return(nil),
		s.set.EXPECT().Release().Return(nil),
	)

	resp, err := s.service.Submit(s.ctx, q)
	s.Require().NoError(err)
	s.Equal(&models.SubmissionResponse{
		Message:              "Form received and report sent successfully",
		Name:                 "Jane Doe",
		CurrentAge:           35,
		RetirementProjection: result,
	}, resp)

	s.Equal([]string{
		tracer.SpanIntake,
		tracer.SpanProject,
		tracer.SpanChart,
		tracer.SpanCompose,
		tracer.SpanDispatch,
		tracer.SpanCleanup,
		tracer.SpanSubmit,
	}, s.recorder.Names())
	s.Equal(1.0, promtest.ToFloat64(s.metrics.Submissions.WithLabelValues(metrics.OutcomeSent)))
	s.Equal(0.0, promtest.ToFloat64(s.metrics.CleanupFailures))
}

func (s *ServiceSuite) TestSubmit_ConsentGate() {
	cases := []struct {
		name                      string
		confirmInfo, consentEmail bool
	}{
		{"confirm info missing", false, true},
		{"email consent missing", true, false},
		{"both missing", false, false},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			q := testutil.NewQuestionnaireBuilder().WithConsent(tc.confirmInfo, tc.consentEmail).Build()

			// no collaborator expectations: any call fails the test
			resp, err := s.service.Submit(s.ctx, q)
			s.Nil(resp)
			s.True(dErrors.HasCode(err, dErrors.CodeMissingConsent))
			s.EqualError(err, "Consent not given.")
		})
	}
	s.Equal(3.0, promtest.ToFloat64(s.metrics.ConsentRejections))
	s.Equal(3.0, promtest.ToFloat64(s.metrics.Submissions.WithLabelValues(metrics.OutcomeRejected)))
}

func (s *ServiceSuite) TestSubmit_InvalidQuestionnaire() {
	q := testutil.NewQuestionnaireBuilder().WithEmail("nope").Build()

	_, err := s.service.Submit(s.ctx, q)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.Equal(1.0, promtest.ToFloat64(s.metrics.StageFailures.WithLabelValues("validated", "validation_failed")))
}

func (s *ServiceSuite) TestSubmit_ProjectionFailureOpensNoArtifacts() {
	s.projector.EXPECT().Project(gomock.Any()).Return(nil, dErrors.New(dErrors.CodeValidation, "bad input"))

	_, err := s.service.Submit(s.ctx, testutil.NewQuestionnaireBuilder().Build())
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *ServiceSuite) TestSubmit_ArtifactOpenFailure() {
	s.projector.EXPECT().Project(gomock.Any()).Return(projection(), nil)
	s.store.EXPECT().Open(setID).Return(nil, dErrors.New(dErrors.CodeStorage, "disk full"))

	_, err := s.service.Submit(s.ctx, testutil.NewQuestionnaireBuilder().Build())
	s.True(dErrors.HasCode(err, dErrors.CodeStorage))
	s.Equal(1.0, promtest.ToFloat64(s.metrics.Submissions.WithLabelValues(metrics.OutcomeFailed)))
	s.Equal(1.0, promtest.ToFloat64(s.metrics.StageFailures.WithLabelValues("charted", "storage_failed")))

	spans := s.recorder.Spans()
	s.Require().Len(spans, 4, "no cleanup span without an open set")
	chart := spans[2]
	s.Equal(tracer.SpanChart, chart.Name)
	s.Error(chart.Err)
	s.Equal("storage_failed", chart.Attrs[tracer.AttrErrorKind])

	s.Contains(s.logs.String(), `"msg":"stage failed"`)
	s.Contains(s.logs.String(), `"request_id":"req-123"`)
	s.Contains(s.logs.String(), `"kind":"storage_failed"`)
}

func (s *ServiceSuite) TestSubmit_StageFailuresStillRemoveChart() {
	s.Run("chart", func() {
		s.projector.EXPECT().Project(gomock.Any()).Return(projection(), nil)
		s.store.EXPECT().Open(setID).Return(s.set, nil)
		s.charts.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any(), chartPath).
			Return(dErrors.New(dErrors.CodeRender, "plot failed"))
		s.expectCleanup()

		_, err := s.service.Submit(s.ctx, testutil.NewQuestionnaireBuilder().Build())
		s.True(dErrors.HasCode(err, dErrors.CodeRender))
	})

	s.Run("report", func() {
		s.projector.EXPECT().Project(gomock.Any()).Return(projection(), nil)
		s.store.EXPECT().Open(setID).Return(s.set, nil)
		s.charts.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.reports.EXPECT().Compose(gomock.Any(), gomock.Any(), reportPath).
			Return(dErrors.New(dErrors.CodeRender, "wkhtmltopdf not found"))
		s.expectCleanup()

		_, err := s.service.Submit(s.ctx, testutil.NewQuestionnaireBuilder().Build())
		s.True(dErrors.HasCode(err, dErrors.CodeRender))
	})

	s.Run("delivery", func() {
		s.projector.EXPECT().Project(gomock.Any()).Return(projection(), nil)
		s.store.EXPECT().Open(setID).Return(s.set, nil)
		s.charts.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.reports.EXPECT().Compose(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
			Return(dErrors.New(dErrors.CodeDelivery, "delivery failed"))
		s.expectCleanup()

		resp, err := s.service.Submit(s.ctx, testutil.NewQuestionnaireBuilder().Build())
		s.Nil(resp, "no partial result")
		s.True(dErrors.HasCode(err, dErrors.CodeDelivery))
	})

	s.Equal(3.0, promtest.ToFloat64(s.metrics.Submissions.WithLabelValues(metrics.OutcomeFailed)))
	s.Equal(1.0, promtest.ToFloat64(s.metrics.StageFailures.WithLabelValues("dispatched", "delivery_failed")))
}

func (s *ServiceSuite) TestSubmit_CleanupFailureIsNotRaised() {
	s.projector.EXPECT().Project(gomock.Any()).Return(projection(), nil)
	s.store.EXPECT().Open(setID).Return(s.set, nil)
	s.charts.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.reports.EXPECT().Compose(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)
	s.set.EXPECT().RemoveChart().Return(dErrors.New(dErrors.CodeStorage, "permission denied"))
	s.set.EXPECT().Release().Return(nil)

	resp, err := s.service.Submit(s.ctx, testutil.NewQuestionnaireBuilder().Build())
	s.Require().NoError(err)
	s.NotNil(resp)
	s.Equal(1.0, promtest.ToFloat64(s.metrics.CleanupFailures))
}

func (s *ServiceSuite) TestSubmit_RequestDeadline() {
	ctx, cancel := context.WithTimeout(s.ctx, 10*time.Millisecond)
	defer cancel()

	s.projector.EXPECT().Project(gomock.Any()).Return(projection(), nil)
	s.store.EXPECT().Open(setID).Return(s.set, nil)
	s.charts.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ []float64, _ string) error {
			<-ctx.Done()
			return dErrors.Wrap(ctx.Err(), dErrors.CodeRender, "chart rendering cancelled")
		})
	s.expectCleanup()

	_, err := s.service.Submit(ctx, testutil.NewQuestionnaireBuilder().Build())
	s.True(dErrors.HasCode(err, dErrors.CodeTimeout))
	s.True(errors.Is(err, context.DeadlineExceeded))
}

func TestNew_RequiresCollaborators(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, err := service.New(intake.New(), nil, mocks.NewMockChartRenderer(ctrl), mocks.NewMockReportComposer(ctrl),
		mocks.NewMockDispatcher(ctrl), mocks.NewMockArtifactStore(ctrl))
	if err == nil {
		t.Fatal("expected error for missing projector")
	}
}
