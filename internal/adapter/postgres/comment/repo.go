// Package comment implements the Comment repository using PostgreSQL.
package comment

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/RoniAntikainen/Taitoarvio-sub000/internal/adapter/postgres"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

var columns = []string{"id", "folder_id", "evaluation_id", "author_email", "body", "created_at"}

type row struct {
	ID           uuid.UUID  `db:"id"`
	FolderID     uuid.UUID  `db:"folder_id"`
	EvaluationID *uuid.UUID `db:"evaluation_id"`
	AuthorEmail  string     `db:"author_email"`
	Body         string     `db:"body"`
	CreatedAt    time.Time  `db:"created_at"`
}

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a comment scoped to its folder.
func (r *Repo) GetByID(ctx context.Context, folderID, id uuid.UUID) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var res row
	err := postgres.Get(ctx, q, &res, postgres.Builder().
		Select(columns...).
		From("comments").
		Where(sq.Eq{"id": id, "folder_id": folderID}))
	if err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}

	c := toDomain(res)
	return &c, nil
}

// List returns comments of a folder in posting order. When evaluationID is set only
// comments on that evaluation are returned.
func (r *Repo) List(ctx context.Context, folderID uuid.UUID, evaluationID *uuid.UUID) ([]domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Select(columns...).
		From("comments").
		Where(sq.Eq{"folder_id": folderID})
	if evaluationID != nil {
		b = b.Where(sq.Eq{"evaluation_id": *evaluationID})
	}

	var rows []row
	if err := postgres.Select(ctx, q, &rows, b.OrderBy("created_at ASC", "id ASC")); err != nil {
		return nil, postgres.MapError(err, "comment", folderID)
	}

	out := make([]domain.Comment, len(rows))
	for i, rr := range rows {
		out[i] = toDomain(rr)
	}
	return out, nil
}

// Create inserts a new comment.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var res row
	err := postgres.Get(ctx, q, &res, postgres.Builder().
		Insert("comments").
		Columns(columns...).
		Values(c.ID, c.FolderID, c.EvaluationID, c.AuthorEmail.String(), c.Body, c.CreatedAt).
		Suffix("RETURNING id, folder_id, evaluation_id, author_email, body, created_at"))
	if err != nil {
		return nil, postgres.MapError(err, "comment", c.ID)
	}

	created := toDomain(res)
	return &created, nil
}

// Delete removes a comment.
func (r *Repo) Delete(ctx context.Context, folderID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("comments").
		Where(sq.Eq{"id": id, "folder_id": folderID}))
	if err != nil {
		return postgres.MapError(err, "comment", id)
	}
	if n == 0 {
		return fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func toDomain(r row) domain.Comment {
	return domain.Comment{
		ID:           r.ID,
		FolderID:     r.FolderID,
		EvaluationID: r.EvaluationID,
		AuthorEmail:  domain.Identity(r.AuthorEmail),
		Body:         r.Body,
		CreatedAt:    r.CreatedAt,
	}
}
