// Package event implements the CalendarEvent repository using PostgreSQL.
package event

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/RoniAntikainen/Taitoarvio-sub000/internal/adapter/postgres"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

const returning = "RETURNING id, folder_id, title, location, starts_at, ends_at, all_day, created_by, created_at, updated_at"

var columns = []string{"id", "folder_id", "title", "location", "starts_at", "ends_at", "all_day", "created_by", "created_at", "updated_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	FolderID  uuid.UUID `db:"folder_id"`
	Title     string    `db:"title"`
	Location  *string   `db:"location"`
	StartsAt  time.Time `db:"starts_at"`
	EndsAt    time.Time `db:"ends_at"`
	AllDay    bool      `db:"all_day"`
	CreatedBy string    `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Repo provides calendar event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new calendar event repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns an event scoped to its folder.
func (r *Repo) GetByID(ctx context.Context, folderID, id uuid.UUID) (*domain.CalendarEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var res row
	err := postgres.Get(ctx, q, &res, postgres.Builder().
		Select(columns...).
		From("calendar_events").
		Where(sq.Eq{"id": id, "folder_id": folderID}))
	if err != nil {
		return nil, postgres.MapError(err, "calendar_event", id)
	}

	e := toDomain(res)
	return &e, nil
}

// ListByRange returns events of a folder that overlap [from, to), ordered by start.
func (r *Repo) ListByRange(ctx context.Context, folderID uuid.UUID, from, to time.Time) ([]domain.CalendarEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []row
	err := postgres.Select(ctx, q, &rows, postgres.Builder().
		Select(columns...).
		From("calendar_events").
		Where(sq.Eq{"folder_id": folderID}).
		Where(sq.Lt{"starts_at": to}).
		Where(sq.GtOrEq{"ends_at": from}).
		OrderBy("starts_at ASC", "id ASC"))
	if err != nil {
		return nil, postgres.MapError(err, "calendar_event", folderID)
	}

	out := make([]domain.CalendarEvent, len(rows))
	for i, rr := range rows {
		out[i] = toDomain(rr)
	}
	return out, nil
}

// Create inserts a new event.
func (r *Repo) Create(ctx context.Context, e *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var res row
	err := postgres.Get(ctx, q, &res, postgres.Builder().
		Insert("calendar_events").
		Columns(columns...).
		Values(e.ID, e.FolderID, e.Title, e.Location, e.StartsAt, e.EndsAt, e.AllDay, e.CreatedBy.String(), e.CreatedAt, e.UpdatedAt).
		Suffix(returning))
	if err != nil {
		return nil, postgres.MapError(err, "calendar_event", e.ID)
	}

	created := toDomain(res)
	return &created, nil
}

// Update applies the non-nil fields of params. An empty Location clears it.
func (r *Repo) Update(ctx context.Context, folderID, id uuid.UUID, params domain.CalendarEventUpdateParams) (*domain.CalendarEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Update("calendar_events").
		Set("updated_at", sq.Expr("now()"))
	if params.Title != nil {
		b = b.Set("title", *params.Title)
	}
	if params.Location != nil {
		if *params.Location == "" {
			b = b.Set("location", nil)
		} else {
			b = b.Set("location", *params.Location)
		}
	}
	if params.StartsAt != nil {
		b = b.Set("starts_at", *params.StartsAt)
	}
	if params.EndsAt != nil {
		b = b.Set("ends_at", *params.EndsAt)
	}
	if params.AllDay != nil {
		b = b.Set("all_day", *params.AllDay)
	}

	var res row
	err := postgres.Get(ctx, q, &res, b.
		Where(sq.Eq{"id": id, "folder_id": folderID}).
		Suffix(returning))
	if err != nil {
		return nil, postgres.MapError(err, "calendar_event", id)
	}

	e := toDomain(res)
	return &e, nil
}

// Delete removes an event.
func (r *Repo) Delete(ctx context.Context, folderID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("calendar_events").
		Where(sq.Eq{"id": id, "folder_id": folderID}))
	if err != nil {
		return postgres.MapError(err, "calendar_event", id)
	}
	if n == 0 {
		return fmt.Errorf("calendar_event %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func toDomain(r row) domain.CalendarEvent {
	return domain.CalendarEvent{
		ID:        r.ID,
		FolderID:  r.FolderID,
		Title:     r.Title,
		Location:  r.Location,
		StartsAt:  r.StartsAt,
		EndsAt:    r.EndsAt,
		AllDay:    r.AllDay,
		CreatedBy: domain.Identity(r.CreatedBy),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
