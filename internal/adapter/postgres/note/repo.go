// Package note implements the MeetingNote repository using PostgreSQL.
package note

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/RoniAntikainen/Taitoarvio-sub000/internal/adapter/postgres"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

const returning = "RETURNING id, folder_id, title, body, meeting_date, created_by, created_at, updated_at"

var columns = []string{"id", "folder_id", "title", "body", "meeting_date", "created_by", "created_at", "updated_at"}

type row struct {
	ID          uuid.UUID  `db:"id"`
	FolderID    uuid.UUID  `db:"folder_id"`
	Title       string     `db:"title"`
	Body        string     `db:"body"`
	MeetingDate *time.Time `db:"meeting_date"`
	CreatedBy   string     `db:"created_by"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// Repo provides meeting note persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new meeting note repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a note scoped to its folder.
func (r *Repo) GetByID(ctx context.Context, folderID, id uuid.UUID) (*domain.MeetingNote, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var res row
	err := postgres.Get(ctx, q, &res, postgres.Builder().
		Select(columns...).
		From("meeting_notes").
		Where(sq.Eq{"id": id, "folder_id": folderID}))
	if err != nil {
		return nil, postgres.MapError(err, "meeting_note", id)
	}

	n := toDomain(res)
	return &n, nil
}

// ListByFolder returns notes of a folder, most recent meeting first. Undated notes
// sort after dated ones.
func (r *Repo) ListByFolder(ctx context.Context, folderID uuid.UUID) ([]domain.MeetingNote, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []row
	err := postgres.Select(ctx, q, &rows, postgres.Builder().
		Select(columns...).
		From("meeting_notes").
		Where(sq.Eq{"folder_id": folderID}).
		OrderBy("meeting_date DESC NULLS LAST", "created_at DESC"))
	if err != nil {
		return nil, postgres.MapError(err, "meeting_note", folderID)
	}

	out := make([]domain.MeetingNote, len(rows))
	for i, rr := range rows {
		out[i] = toDomain(rr)
	}
	return out, nil
}

// Create inserts a new note.
func (r *Repo) Create(ctx context.Context, n *domain.MeetingNote) (*domain.MeetingNote, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var res row
	err := postgres.Get(ctx, q, &res, postgres.Builder().
		Insert("meeting_notes").
		Columns(columns...).
		Values(n.ID, n.FolderID, n.Title, n.Body, n.MeetingDate, n.CreatedBy.String(), n.CreatedAt, n.UpdatedAt).
		Suffix(returning))
	if err != nil {
		return nil, postgres.MapError(err, "meeting_note", n.ID)
	}

	created := toDomain(res)
	return &created, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, folderID, id uuid.UUID, params domain.MeetingNoteUpdateParams) (*domain.MeetingNote, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Update("meeting_notes").
		Set("updated_at", sq.Expr("now()"))
	if params.Title != nil {
		b = b.Set("title", *params.Title)
	}
	if params.Body != nil {
		b = b.Set("body", *params.Body)
	}
	switch {
	case params.ClearMeetingDate:
		b = b.Set("meeting_date", nil)
	case params.MeetingDate != nil:
		b = b.Set("meeting_date", *params.MeetingDate)
	}

	var res row
	err := postgres.Get(ctx, q, &res, b.
		Where(sq.Eq{"id": id, "folder_id": folderID}).
		Suffix(returning))
	if err != nil {
		return nil, postgres.MapError(err, "meeting_note", id)
	}

	n := toDomain(res)
	return &n, nil
}

// Delete removes a note.
func (r *Repo) Delete(ctx context.Context, folderID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("meeting_notes").
		Where(sq.Eq{"id": id, "folder_id": folderID}))
	if err != nil {
		return postgres.MapError(err, "meeting_note", id)
	}
	if n == 0 {
		return fmt.Errorf("meeting_note %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func toDomain(r row) domain.MeetingNote {
	return domain.MeetingNote{
		ID:          r.ID,
		FolderID:    r.FolderID,
		Title:       r.Title,
		Body:        r.Body,
		MeetingDate: r.MeetingDate,
		CreatedBy:   domain.Identity(r.CreatedBy),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
