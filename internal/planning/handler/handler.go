package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"retireplan/internal/planning/models"
	"retireplan/internal/platform/middleware"
	dErrors "retireplan/pkg/domain-errors"
	"retireplan/pkg/platform/httputil"
)

// SubmitPath is the questionnaire submission route.
const SubmitPath = "/submit-retirement-form"

// Service defines the interface for the planning pipeline.
type Service interface {
	Submit(ctx context.Context, q *models.Questionnaire) (*models.SubmissionResponse, error)
}

// Handler handles questionnaire submissions.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates a new planning Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// Register registers the planning routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post(SubmitPath, h.HandleSubmit)
}

// HandleSubmit runs the pipeline for one questionnaire and answers with the
// projection once the report has been sent.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	q, ok := httputil.DecodeAndSanitize[models.Questionnaire](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	resp, err := h.service.Submit(ctx, q)
	if err != nil {
		level := slog.LevelError
		switch dErrors.CodeOf(err) {
		case dErrors.CodeMissingConsent, dErrors.CodeValidation, dErrors.CodeBadRequest:
			level = slog.LevelWarn
		}
		h.logger.Log(ctx, level, "submission failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}
