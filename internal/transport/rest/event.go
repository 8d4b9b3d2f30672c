package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/calendar"
)

type calendarService interface {
	ListEvents(ctx context.Context, input calendar.RangeInput) ([]domain.CalendarEvent, error)
	CreateEvent(ctx context.Context, input calendar.CreateInput) (*domain.CalendarEvent, error)
	UpdateEvent(ctx context.Context, input calendar.UpdateInput) (*domain.CalendarEvent, error)
	DeleteEvent(ctx context.Context, folderID, eventID uuid.UUID) error
}

// EventHandler serves calendar events. Times are RFC 3339 strings.
type EventHandler struct {
	svc calendarService
	log *slog.Logger
}

func NewEventHandler(svc calendarService, logger *slog.Logger) *EventHandler {
	return &EventHandler{svc: svc, log: logger.With("handler", "event")}
}

type createEventRequest struct {
	Title    string `json:"title"`
	Location string `json:"location"`
	StartsAt string `json:"startsAt"`
	EndsAt   string `json:"endsAt"`
	AllDay   bool   `json:"allDay"`
}

type updateEventRequest struct {
	Title    *string `json:"title"`
	Location *string `json:"location"`
	StartsAt *string `json:"startsAt"`
	EndsAt   *string `json:"endsAt"`
	AllDay   *bool   `json:"allDay"`
}

// List handles GET /folders/{id}/events?from=...&to=...
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	q := r.URL.Query()
	events, err := h.svc.ListEvents(r.Context(), calendar.RangeInput{
		FolderID: folderID,
		From:     q.Get("from"),
		To:       q.Get("to"),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(events, toEventResponse))
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req createEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.svc.CreateEvent(r.Context(), calendar.CreateInput{
		FolderID: folderID,
		Title:    req.Title,
		Location: req.Location,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		AllDay:   req.AllDay,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventResponse(e))
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	var req updateEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.svc.UpdateEvent(r.Context(), calendar.UpdateInput{
		FolderID: folderID,
		ID:       eventID,
		Title:    req.Title,
		Location: req.Location,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		AllDay:   req.AllDay,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(e))
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	if err := h.svc.DeleteEvent(r.Context(), folderID, eventID); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
