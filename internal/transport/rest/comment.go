package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/comment"
)

type commentService interface {
	AddComment(ctx context.Context, input comment.AddInput) (*domain.Comment, error)
	ListComments(ctx context.Context, folderID uuid.UUID, evaluationID *uuid.UUID) ([]domain.Comment, error)
	DeleteComment(ctx context.Context, folderID, commentID uuid.UUID) error
}

// CommentHandler serves folder and evaluation comments.
type CommentHandler struct {
	svc commentService
	log *slog.Logger
}

func NewCommentHandler(svc commentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: logger.With("handler", "comment")}
}

type addCommentRequest struct {
	EvaluationID *uuid.UUID `json:"evaluationId"`
	Body         string     `json:"body"`
}

// List handles GET /folders/{id}/comments, optionally filtered by ?evaluation_id=.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	evaluationID, err := queryUUID(r, "evaluation_id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	comments, err := h.svc.ListComments(r.Context(), folderID, evaluationID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(comments, toCommentResponse))
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req addCommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.AddComment(r.Context(), comment.AddInput{
		FolderID:     folderID,
		EvaluationID: req.EvaluationID,
		Body:         req.Body,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCommentResponse(c))
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	commentID, ok := pathUUID(w, r, "commentID")
	if !ok {
		return
	}

	if err := h.svc.DeleteComment(r.Context(), folderID, commentID); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
