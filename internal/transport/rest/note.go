package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/note"
)

type noteService interface {
	ListNotes(ctx context.Context, folderID uuid.UUID) ([]domain.MeetingNote, error)
	CreateNote(ctx context.Context, input note.CreateInput) (*domain.MeetingNote, error)
	UpdateNote(ctx context.Context, input note.UpdateInput) (*domain.MeetingNote, error)
	DeleteNote(ctx context.Context, folderID, noteID uuid.UUID) error
}

// NoteHandler serves meeting notes.
type NoteHandler struct {
	svc noteService
	log *slog.Logger
}

func NewNoteHandler(svc noteService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{svc: svc, log: logger.With("handler", "note")}
}

type createNoteRequest struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	MeetingDate string `json:"meetingDate"`
}

// An empty meetingDate on update clears the date.
type updateNoteRequest struct {
	Title       *string `json:"title"`
	Body        *string `json:"body"`
	MeetingDate *string `json:"meetingDate"`
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	notes, err := h.svc.ListNotes(r.Context(), folderID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(notes, toNoteResponse))
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req createNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	n, err := h.svc.CreateNote(r.Context(), note.CreateInput{
		FolderID:    folderID,
		Title:       req.Title,
		Body:        req.Body,
		MeetingDate: req.MeetingDate,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toNoteResponse(n))
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	noteID, ok := pathUUID(w, r, "noteID")
	if !ok {
		return
	}
	var req updateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	n, err := h.svc.UpdateNote(r.Context(), note.UpdateInput{
		FolderID:    folderID,
		ID:          noteID,
		Title:       req.Title,
		Body:        req.Body,
		MeetingDate: req.MeetingDate,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(n))
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	noteID, ok := pathUUID(w, r, "noteID")
	if !ok {
		return
	}

	if err := h.svc.DeleteNote(r.Context(), folderID, noteID); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
