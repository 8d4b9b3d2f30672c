package calendar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/access"
)

// ListEvents returns the events overlapping [from, to), ordered by start.
func (s *Service) ListEvents(ctx context.Context, input RangeInput) ([]domain.CalendarEvent, error) {
	id, err := access.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	from, to, err := input.validate()
	if err != nil {
		return nil, err
	}

	if _, err := s.access.RequireAccess(ctx, input.FolderID, id, domain.RoleViewer); err != nil {
		return nil, err
	}

	events, err := s.events.ListByRange(ctx, input.FolderID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// CreateEvent schedules an event. Editors and owners only.
func (s *Service) CreateEvent(ctx context.Context, input CreateInput) (*domain.CalendarEvent, error) {
	id, err := access.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	p, err := input.validate()
	if err != nil {
		return nil, err
	}

	if _, err := s.access.RequireAccess(ctx, input.FolderID, id, domain.RoleEditor); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	e, err := s.events.Create(ctx, &domain.CalendarEvent{
		ID:        uuid.New(),
		FolderID:  input.FolderID,
		Title:     p.title,
		Location:  p.location,
		StartsAt:  p.startsAt,
		EndsAt:    p.endsAt,
		AllDay:    input.AllDay,
		CreatedBy: id,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.log.InfoContext(ctx, "event created",
		slog.String("folder_id", input.FolderID.String()),
		slog.String("event_id", e.ID.String()),
	)

	return e, nil
}

// UpdateEvent applies a partial update. Editors and owners only. When only one end of
// the interval changes it is checked against the stored other end.
func (s *Service) UpdateEvent(ctx context.Context, input UpdateInput) (*domain.CalendarEvent, error) {
	id, err := access.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	params, err := input.validate()
	if err != nil {
		return nil, err
	}

	if _, err := s.access.RequireAccess(ctx, input.FolderID, id, domain.RoleEditor); err != nil {
		return nil, err
	}

	if (params.StartsAt == nil) != (params.EndsAt == nil) {
		current, err := s.events.GetByID(ctx, input.FolderID, input.ID)
		if err != nil {
			return nil, fmt.Errorf("get event: %w", err)
		}
		start, end := current.StartsAt, current.EndsAt
		if params.StartsAt != nil {
			start = *params.StartsAt
		}
		if params.EndsAt != nil {
			end = *params.EndsAt
		}
		if end.Before(start) {
			return nil, domain.NewValidationError("ends_at", "must not be before starts_at")
		}
	}

	e, err := s.events.Update(ctx, input.FolderID, input.ID, params)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.log.InfoContext(ctx, "event updated",
		slog.String("folder_id", input.FolderID.String()),
		slog.String("event_id", input.ID.String()),
	)

	return e, nil
}

// DeleteEvent removes an event. Editors and owners only.
func (s *Service) DeleteEvent(ctx context.Context, folderID, eventID uuid.UUID) error {
	id, err := access.RequireIdentity(ctx)
	if err != nil {
		return err
	}

	if _, err := s.access.RequireAccess(ctx, folderID, id, domain.RoleEditor); err != nil {
		return err
	}

	if err := s.events.Delete(ctx, folderID, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.log.InfoContext(ctx, "event deleted",
		slog.String("folder_id", folderID.String()),
		slog.String("event_id", eventID.String()),
	)

	return nil
}
