// Package folder implements the Folder repository using PostgreSQL.
package folder

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/RoniAntikainen/Taitoarvio-sub000/internal/adapter/postgres"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

var columns = []string{"id", "name", "owner_email", "created_at", "updated_at"}

type row struct {
	ID         uuid.UUID `db:"id"`
	Name       string    `db:"name"`
	OwnerEmail string    `db:"owner_email"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type rowWithRole struct {
	row
	Role string `db:"role"`
}

// Repo provides folder persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new folder repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a folder by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var res row
	err := postgres.Get(ctx, q, &res, postgres.Builder().
		Select(columns...).
		From("folders").
		Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, postgres.MapError(err, "folder", id)
	}

	f := toDomain(res)
	return &f, nil
}

// Create inserts a new folder and returns the persisted domain.Folder.
func (r *Repo) Create(ctx context.Context, f *domain.Folder) (*domain.Folder, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var res row
	err := postgres.Get(ctx, q, &res, postgres.Builder().
		Insert("folders").
		Columns(columns...).
		Values(f.ID, f.Name, f.OwnerID.String(), f.CreatedAt, f.UpdatedAt).
		Suffix("RETURNING id, name, owner_email, created_at, updated_at"))
	if err != nil {
		return nil, postgres.MapError(err, "folder", f.ID)
	}

	created := toDomain(res)
	return &created, nil
}

// Rename sets a new folder name.
func (r *Repo) Rename(ctx context.Context, id uuid.UUID, name string) (*domain.Folder, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var res row
	err := postgres.Get(ctx, q, &res, postgres.Builder().
		Update("folders").
		Set("name", name).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, owner_email, created_at, updated_at"))
	if err != nil {
		return nil, postgres.MapError(err, "folder", id)
	}

	f := toDomain(res)
	return &f, nil
}

// Delete removes a folder. Memberships and folder content go with it (ON DELETE CASCADE).
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("folders").
		Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "folder", id)
	}
	if n == 0 {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListForIdentity returns the folders owned by or shared with email, oldest first.
// Ownership wins over a membership row for the same identity.
func (r *Repo) ListForIdentity(ctx context.Context, email domain.Identity) ([]domain.FolderWithRole, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []rowWithRole
	err := postgres.Select(ctx, q, &rows, postgres.Builder().
		Select("f.id", "f.name", "f.owner_email", "f.created_at", "f.updated_at").
		Column(sq.Expr("CASE WHEN f.owner_email = ? THEN 'owner' ELSE coalesce(m.role, '') END AS role", email.String())).
		From("folders f").
		LeftJoin("folder_memberships m ON m.folder_id = f.id AND m.user_email = ?", email.String()).
		Where(sq.Or{sq.Eq{"f.owner_email": email.String()}, sq.Eq{"m.user_email": email.String()}}).
		OrderBy("f.created_at ASC", "f.id ASC"))
	if err != nil {
		return nil, postgres.MapError(err, "folder", email)
	}

	out := make([]domain.FolderWithRole, 0, len(rows))
	for _, rr := range rows {
		role := domain.RoleOwner
		if rr.Role != string(domain.RoleOwner) {
			role = domain.RoleFromMembership(rr.Role)
		}
		out = append(out, domain.FolderWithRole{Folder: toDomain(rr.row), Role: role})
	}
	return out, nil
}

// CountForIdentity counts folders that email owns or is a member of.
func (r *Repo) CountForIdentity(ctx context.Context, email domain.Identity) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Count(ctx, q, postgres.Builder().
		Select("count(DISTINCT f.id)").
		From("folders f").
		LeftJoin("folder_memberships m ON m.folder_id = f.id AND m.user_email = ?", email.String()).
		Where(sq.Or{sq.Eq{"f.owner_email": email.String()}, sq.Eq{"m.user_email": email.String()}}))
	if err != nil {
		return 0, postgres.MapError(err, "folder", email)
	}
	return n, nil
}

func toDomain(r row) domain.Folder {
	return domain.Folder{
		ID:        r.ID,
		Name:      r.Name,
		OwnerID:   domain.Identity(r.OwnerEmail),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
