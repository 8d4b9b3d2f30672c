// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/RoniAntikainen/Taitoarvio-sub000/internal/adapter/postgres"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

var (
	userColumns     = []string{"id", "email", "name", "password_hash", "created_at", "updated_at"}
	settingsColumns = []string{"email", "timezone", "locale", "week_start", "email_notifications", "updated_at"}
)

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type settingsRow struct {
	Email              string    `db:"email"`
	Timezone           string    `db:"timezone"`
	Locale             string    `db:"locale"`
	WeekStart          int16     `db:"week_start"`
	EmailNotifications bool      `db:"email_notifications"`
	UpdatedAt          time.Time `db:"updated_at"`
}

// Repo provides user and user-settings persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row userRow
	err := postgres.Get(ctx, q, &row, postgres.Builder().
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := toDomainUser(row)
	return &u, nil
}

// GetByEmail returns a user by normalized email.
func (r *Repo) GetByEmail(ctx context.Context, email domain.Identity) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row userRow
	err := postgres.Get(ctx, q, &row, postgres.Builder().
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email.String()}))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	u := toDomainUser(row)
	return &u, nil
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row userRow
	err := postgres.Get(ctx, q, &row, postgres.Builder().
		Insert("users").
		Columns(userColumns...).
		Values(u.ID, u.Email.String(), u.Name, u.PasswordHash, u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING id, email, name, password_hash, created_at, updated_at"))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}

	created := toDomainUser(row)
	return &created, nil
}

// ---------------------------------------------------------------------------
// UserSettings operations
// ---------------------------------------------------------------------------

// GetSettings returns the stored settings for email, or defaults when none are stored.
func (r *Repo) GetSettings(ctx context.Context, email domain.Identity) (*domain.UserSettings, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row settingsRow
	err := postgres.Get(ctx, q, &row, postgres.Builder().
		Select(settingsColumns...).
		From("user_settings").
		Where(sq.Eq{"email": email.String()}))
	if err != nil {
		mapped := postgres.MapError(err, "user_settings", email)
		if errors.Is(mapped, domain.ErrNotFound) {
			s := domain.DefaultUserSettings(email)
			return &s, nil
		}
		return nil, mapped
	}

	s := toDomainSettings(row)
	return &s, nil
}

// UpsertSettings writes s, creating the row on first save.
func (r *Repo) UpsertSettings(ctx context.Context, s domain.UserSettings) (*domain.UserSettings, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row settingsRow
	err := postgres.Get(ctx, q, &row, postgres.Builder().
		Insert("user_settings").
		Columns(settingsColumns...).
		Values(s.Email.String(), s.Timezone, s.Locale, s.WeekStart, s.EmailNotifications, sq.Expr("now()")).
		Suffix(`ON CONFLICT (email) DO UPDATE SET
			timezone = EXCLUDED.timezone,
			locale = EXCLUDED.locale,
			week_start = EXCLUDED.week_start,
			email_notifications = EXCLUDED.email_notifications,
			updated_at = EXCLUDED.updated_at
		RETURNING email, timezone, locale, week_start, email_notifications, updated_at`))
	if err != nil {
		return nil, postgres.MapError(err, "user_settings", s.Email)
	}

	result := toDomainSettings(row)
	return &result, nil
}

func toDomainUser(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Email:        domain.Identity(row.Email),
		Name:         row.Name,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func toDomainSettings(row settingsRow) domain.UserSettings {
	return domain.UserSettings{
		Email:              domain.Identity(row.Email),
		Timezone:           row.Timezone,
		Locale:             row.Locale,
		WeekStart:          int(row.WeekStart),
		EmailNotifications: row.EmailNotifications,
		UpdatedAt:          row.UpdatedAt,
	}
}
