package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"retireplan/internal/planning/handler/mocks"
	"retireplan/internal/planning/models"
	"retireplan/internal/platform/middleware"
	dErrors "retireplan/pkg/domain-errors"
	"retireplan/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockService
	router  chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockService(s.ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.router = chi.NewRouter()
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.BodyLimit(64 << 10))
	New(s.service, logger).Register(s.router)
}

func (s *HandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerSuite) post(body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, SubmitPath, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerSuite) assertStatusAndError(w *httptest.ResponseRecorder, status int, kind string) {
	s.Equal(status, w.Code)
	var body map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(kind, body["error"])
}

func (s *HandlerSuite) TestHandleSubmit_Success() {
	q := testutil.NewQuestionnaireBuilder().Build()
	body, err := json.Marshal(q)
	s.Require().NoError(err)

	s.service.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got *models.Questionnaire) (*models.SubmissionResponse, error) {
			s.Equal("Jane Doe", got.FullName)
			s.Equal("1990-06-15", got.DOB.String())
			s.True(got.HasConsent())
			return &models.SubmissionResponse{
				Message:    models.SubmissionAccepted,
				Name:       got.FullName,
				CurrentAge: 35,
				RetirementProjection: &models.ProjectionResult{
					YearsUntilRetirement: 30,
					RealGrowthRate:       0.0341,
					FinalBalance:         528334.06,
					YearlyBalances:       []float64{108414.63},
				},
			}, nil
		})

	w := s.post(body)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("application/json", w.Header().Get("Content-Type"))
	s.NotEmpty(w.Header().Get("X-Request-ID"))

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Form received and report sent successfully", resp["message"])
	s.Equal("Jane Doe", resp["name"])
	s.EqualValues(35, resp["current_age"])
	proj := resp["retirement_projection"].(map[string]any)
	s.EqualValues(528334.06, proj["projected_super_balance"])
}

func (s *HandlerSuite) TestHandleSubmit_SanitizesAnswers() {
	q := testutil.NewQuestionnaireBuilder().WithName("  Jane Doe  ").Build()
	body, err := json.Marshal(q)
	s.Require().NoError(err)

	s.service.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got *models.Questionnaire) (*models.SubmissionResponse, error) {
			s.Equal("Jane Doe", got.FullName)
			return &models.SubmissionResponse{Message: models.SubmissionAccepted}, nil
		})

	s.Equal(http.StatusOK, s.post(body).Code)
}

func (s *HandlerSuite) TestHandleSubmit_ErrorMapping() {
	cases := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{"missing consent", dErrors.New(dErrors.CodeMissingConsent, "Consent not given."), http.StatusBadRequest, "consent_error"},
		{"validation", dErrors.New(dErrors.CodeValidation, "email must be a valid email"), http.StatusBadRequest, "validation_error"},
		{"render", dErrors.New(dErrors.CodeRender, "wkhtmltopdf not found"), http.StatusInternalServerError, "render_error"},
		{"delivery", dErrors.New(dErrors.CodeDelivery, "delivery failed"), http.StatusBadGateway, "delivery_error"},
		{"timeout", dErrors.New(dErrors.CodeTimeout, "request timed out"), http.StatusGatewayTimeout, "timeout"},
		{"storage", dErrors.New(dErrors.CodeStorage, "disk full"), http.StatusInternalServerError, "storage_error"},
		{"unknown", io.ErrUnexpectedEOF, http.StatusInternalServerError, "internal_error"},
	}
	body, err := json.Marshal(testutil.NewQuestionnaireBuilder().Build())
	s.Require().NoError(err)

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.service.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, tc.err)
			s.assertStatusAndError(s.post(body), tc.status, tc.kind)
		})
	}
}

func (s *HandlerSuite) TestHandleSubmit_ConsentMessage() {
	body, err := json.Marshal(testutil.NewQuestionnaireBuilder().WithConsent(false, true).Build())
	s.Require().NoError(err)
	s.service.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeMissingConsent, "Consent not given."))

	w := s.post(body)
	var resp map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Consent not given.", resp["error_description"])
}

func (s *HandlerSuite) TestHandleSubmit_MalformedBody() {
	s.Run("not json", func() {
		s.assertStatusAndError(s.post([]byte("{not json")), http.StatusBadRequest, "bad_request")
	})
	s.Run("bad date", func() {
		s.assertStatusAndError(s.post([]byte(`{"dob":"15/06/1990"}`)), http.StatusBadRequest, "bad_request")
	})
	s.Run("too large", func() {
		huge := `{"fullName":"` + strings.Repeat("a", 70*1024) + `"}`
		w := s.post([]byte(huge))
		s.assertStatusAndError(w, http.StatusBadRequest, "bad_request")
		s.Contains(w.Body.String(), "request body too large")
	})
}

func (s *HandlerSuite) TestHandleSubmit_MethodNotAllowed() {
	req := httptest.NewRequest(http.MethodGet, SubmitPath, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusMethodNotAllowed, w.Code)
}
