// Package membership implements the FolderMembership repository using PostgreSQL.
package membership

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/RoniAntikainen/Taitoarvio-sub000/internal/adapter/postgres"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

const returning = "RETURNING folder_id, user_email, role, created_at"

var columns = []string{"folder_id", "user_email", "role", "created_at"}

type row struct {
	FolderID  uuid.UUID `db:"folder_id"`
	UserEmail string    `db:"user_email"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

// Repo provides folder membership persistence backed by PostgreSQL.
// Roles are returned exactly as stored; mapping unknown values is up to the caller.
type Repo struct {
	db postgres.Querier
}

// New creates a new membership repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the membership of email in folderID.
func (r *Repo) Get(ctx context.Context, folderID uuid.UUID, email domain.Identity) (*domain.FolderMembership, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var res row
	err := postgres.Get(ctx, q, &res, postgres.Builder().
		Select(columns...).
		From("folder_memberships").
		Where(sq.Eq{"folder_id": folderID, "user_email": email.String()}))
	if err != nil {
		return nil, postgres.MapError(err, "folder_membership", email)
	}

	m := toDomain(res)
	return &m, nil
}

// List returns all memberships of a folder ordered by creation time.
func (r *Repo) List(ctx context.Context, folderID uuid.UUID) ([]domain.FolderMembership, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []row
	err := postgres.Select(ctx, q, &rows, postgres.Builder().
		Select(columns...).
		From("folder_memberships").
		Where(sq.Eq{"folder_id": folderID}).
		OrderBy("created_at ASC", "user_email ASC"))
	if err != nil {
		return nil, postgres.MapError(err, "folder_membership", folderID)
	}

	out := make([]domain.FolderMembership, len(rows))
	for i, rr := range rows {
		out[i] = toDomain(rr)
	}
	return out, nil
}

// Add inserts a membership. A second row for the same (folder, email) is ErrAlreadyExists.
func (r *Repo) Add(ctx context.Context, m *domain.FolderMembership) (*domain.FolderMembership, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var res row
	err := postgres.Get(ctx, q, &res, postgres.Builder().
		Insert("folder_memberships").
		Columns(columns...).
		Values(m.FolderID, m.UserEmail.String(), m.Role.String(), m.CreatedAt).
		Suffix(returning))
	if err != nil {
		return nil, postgres.MapError(err, "folder_membership", m.UserEmail)
	}

	created := toDomain(res)
	return &created, nil
}

// UpdateRole changes the role of an existing membership.
func (r *Repo) UpdateRole(ctx context.Context, folderID uuid.UUID, email domain.Identity, role domain.Role) (*domain.FolderMembership, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var res row
	err := postgres.Get(ctx, q, &res, postgres.Builder().
		Update("folder_memberships").
		Set("role", role.String()).
		Where(sq.Eq{"folder_id": folderID, "user_email": email.String()}).
		Suffix(returning))
	if err != nil {
		return nil, postgres.MapError(err, "folder_membership", email)
	}

	m := toDomain(res)
	return &m, nil
}

// Remove deletes a membership.
func (r *Repo) Remove(ctx context.Context, folderID uuid.UUID, email domain.Identity) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("folder_memberships").
		Where(sq.Eq{"folder_id": folderID, "user_email": email.String()}))
	if err != nil {
		return postgres.MapError(err, "folder_membership", email)
	}
	if n == 0 {
		return fmt.Errorf("folder_membership %s: %w", email, domain.ErrNotFound)
	}
	return nil
}

func toDomain(r row) domain.FolderMembership {
	return domain.FolderMembership{
		FolderID:  r.FolderID,
		UserEmail: domain.Identity(r.UserEmail),
		Role:      domain.Role(r.Role),
		CreatedAt: r.CreatedAt,
	}
}
