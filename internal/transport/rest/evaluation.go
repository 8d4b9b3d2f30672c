package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/evaluation"
)

type evaluationService interface {
	CreateEvaluation(ctx context.Context, input evaluation.CreateInput) (*domain.Evaluation, error)
	ListEvaluations(ctx context.Context, input evaluation.ListInput) ([]domain.Evaluation, error)
	GetEvaluation(ctx context.Context, folderID, evaluationID uuid.UUID) (*domain.Evaluation, error)
	UpdateEvaluation(ctx context.Context, input evaluation.UpdateInput) (*domain.Evaluation, error)
	DeleteEvaluation(ctx context.Context, folderID, evaluationID uuid.UUID) error
	GetAnalytics(ctx context.Context, folderID uuid.UUID) (*domain.Analytics, error)
}

// EvaluationHandler serves evaluations and folder analytics.
type EvaluationHandler struct {
	svc evaluationService
	log *slog.Logger
}

func NewEvaluationHandler(svc evaluationService, logger *slog.Logger) *EvaluationHandler {
	return &EvaluationHandler{svc: svc, log: logger.With("handler", "evaluation")}
}

// Data is accepted as any JSON value and stored verbatim.
type createEvaluationRequest struct {
	Subject string          `json:"subject"`
	Data    json.RawMessage `json:"data"`
}

type updateEvaluationRequest struct {
	Subject *string          `json:"subject"`
	Data    *json.RawMessage `json:"data"`
}

// List handles GET /folders/{id}/evaluations?limit=N.
func (h *EvaluationHandler) List(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeServiceError(w, r, h.log, domain.NewValidationError("limit", "must be an integer"))
			return
		}
		limit = n
	}

	evals, err := h.svc.ListEvaluations(r.Context(), evaluation.ListInput{FolderID: folderID, Limit: limit})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(evals, toEvaluationResponse))
}

// Create handles POST /folders/{id}/evaluations.
func (h *EvaluationHandler) Create(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req createEvaluationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.svc.CreateEvaluation(r.Context(), evaluation.CreateInput{
		FolderID: folderID,
		Subject:  req.Subject,
		Data:     string(req.Data),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEvaluationResponse(e))
}

// Get handles GET /folders/{id}/evaluations/{evalID}.
func (h *EvaluationHandler) Get(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	evalID, ok := pathUUID(w, r, "evalID")
	if !ok {
		return
	}

	e, err := h.svc.GetEvaluation(r.Context(), folderID, evalID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEvaluationResponse(e))
}

// Update handles PATCH /folders/{id}/evaluations/{evalID}.
func (h *EvaluationHandler) Update(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	evalID, ok := pathUUID(w, r, "evalID")
	if !ok {
		return
	}
	var req updateEvaluationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := evaluation.UpdateInput{FolderID: folderID, ID: evalID, Subject: req.Subject}
	if req.Data != nil {
		data := string(*req.Data)
		input.Data = &data
	}

	e, err := h.svc.UpdateEvaluation(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEvaluationResponse(e))
}

// Delete handles DELETE /folders/{id}/evaluations/{evalID}.
func (h *EvaluationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	evalID, ok := pathUUID(w, r, "evalID")
	if !ok {
		return
	}

	if err := h.svc.DeleteEvaluation(r.Context(), folderID, evalID); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Analytics handles GET /folders/{id}/analytics.
func (h *EvaluationHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	a, err := h.svc.GetAnalytics(r.Context(), folderID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnalyticsResponse(a))
}
