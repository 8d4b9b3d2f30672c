// Package evaluation implements the Evaluation repository using PostgreSQL.
package evaluation

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/RoniAntikainen/Taitoarvio-sub000/internal/adapter/postgres"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

const returning = "RETURNING id, folder_id, subject, data, created_by, created_at, updated_at"

var columns = []string{"id", "folder_id", "subject", "data", "created_by", "created_at", "updated_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	FolderID  uuid.UUID `db:"folder_id"`
	Subject   string    `db:"subject"`
	Data      string    `db:"data"`
	CreatedBy string    `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Repo provides evaluation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new evaluation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns an evaluation scoped to its folder.
func (r *Repo) GetByID(ctx context.Context, folderID, id uuid.UUID) (*domain.Evaluation, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var res row
	err := postgres.Get(ctx, q, &res, postgres.Builder().
		Select(columns...).
		From("evaluations").
		Where(sq.Eq{"id": id, "folder_id": folderID}))
	if err != nil {
		return nil, postgres.MapError(err, "evaluation", id)
	}

	e := toDomain(res)
	return &e, nil
}

// ListByFolder returns evaluations of a folder, newest first. limit <= 0 means no limit.
func (r *Repo) ListByFolder(ctx context.Context, folderID uuid.UUID, limit int) ([]domain.Evaluation, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Select(columns...).
		From("evaluations").
		Where(sq.Eq{"folder_id": folderID}).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	var rows []row
	if err := postgres.Select(ctx, q, &rows, b); err != nil {
		return nil, postgres.MapError(err, "evaluation", folderID)
	}

	out := make([]domain.Evaluation, len(rows))
	for i, rr := range rows {
		out[i] = toDomain(rr)
	}
	return out, nil
}

// CountByFolder returns the number of evaluations in a folder.
func (r *Repo) CountByFolder(ctx context.Context, folderID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Count(ctx, q, postgres.Builder().
		Select("count(*)").
		From("evaluations").
		Where(sq.Eq{"folder_id": folderID}))
	if err != nil {
		return 0, postgres.MapError(err, "evaluation", folderID)
	}
	return n, nil
}

// Create inserts a new evaluation.
func (r *Repo) Create(ctx context.Context, e *domain.Evaluation) (*domain.Evaluation, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var res row
	err := postgres.Get(ctx, q, &res, postgres.Builder().
		Insert("evaluations").
		Columns(columns...).
		Values(e.ID, e.FolderID, e.Subject, e.Data, e.CreatedBy.String(), e.CreatedAt, e.UpdatedAt).
		Suffix(returning))
	if err != nil {
		return nil, postgres.MapError(err, "evaluation", e.ID)
	}

	created := toDomain(res)
	return &created, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, folderID, id uuid.UUID, params domain.EvaluationUpdateParams) (*domain.Evaluation, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Update("evaluations").
		Set("updated_at", sq.Expr("now()"))
	if params.Subject != nil {
		b = b.Set("subject", *params.Subject)
	}
	if params.Data != nil {
		b = b.Set("data", *params.Data)
	}

	var res row
	err := postgres.Get(ctx, q, &res, b.
		Where(sq.Eq{"id": id, "folder_id": folderID}).
		Suffix(returning))
	if err != nil {
		return nil, postgres.MapError(err, "evaluation", id)
	}

	e := toDomain(res)
	return &e, nil
}

// Delete removes an evaluation and its comments.
func (r *Repo) Delete(ctx context.Context, folderID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("evaluations").
		Where(sq.Eq{"id": id, "folder_id": folderID}))
	if err != nil {
		return postgres.MapError(err, "evaluation", id)
	}
	if n == 0 {
		return fmt.Errorf("evaluation %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func toDomain(r row) domain.Evaluation {
	return domain.Evaluation{
		ID:        r.ID,
		FolderID:  r.FolderID,
		Subject:   r.Subject,
		Data:      r.Data,
		CreatedBy: domain.Identity(r.CreatedBy),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
