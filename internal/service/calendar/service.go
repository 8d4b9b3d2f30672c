// Package calendar manages the scheduled events of a folder.
package calendar

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/access"
)

// MaxRange is the widest window ListEvents accepts.
const MaxRange = 366 * 24 * time.Hour

type eventRepo interface {
	GetByID(ctx context.Context, folderID, id uuid.UUID) (*domain.CalendarEvent, error)
	ListByRange(ctx context.Context, folderID uuid.UUID, from, to time.Time) ([]domain.CalendarEvent, error)
	Create(ctx context.Context, e *domain.CalendarEvent) (*domain.CalendarEvent, error)
	Update(ctx context.Context, folderID, id uuid.UUID, params domain.CalendarEventUpdateParams) (*domain.CalendarEvent, error)
	Delete(ctx context.Context, folderID, id uuid.UUID) error
}

type accessChecker interface {
	RequireAccess(ctx context.Context, folderID uuid.UUID, id domain.Identity, minRole domain.Role) (*access.FolderAccess, error)
}

// Service implements calendar event operations.
type Service struct {
	log    *slog.Logger
	events eventRepo
	access accessChecker
	now    func() time.Time
}

// NewService creates a new calendar service.
func NewService(log *slog.Logger, events eventRepo, access accessChecker) *Service {
	return &Service{
		log:    log.With("service", "calendar"),
		events: events,
		access: access,
		now:    time.Now,
	}
}
