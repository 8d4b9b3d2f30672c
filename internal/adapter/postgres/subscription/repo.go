// Package subscription stores the billing state written by the billing sync.
// The request path only reads it when a session is issued.
package subscription

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/RoniAntikainen/Taitoarvio-sub000/internal/adapter/postgres"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

var columns = []string{"email", "status", "trial_ends_at", "current_period_end", "updated_at"}

type row struct {
	Email            string     `db:"email"`
	Status           string     `db:"status"`
	TrialEndsAt      *time.Time `db:"trial_ends_at"`
	CurrentPeriodEnd *time.Time `db:"current_period_end"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

// Repo provides subscription persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new subscription repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByEmail returns the subscription of email. An identity without a row is on the
// free tier.
func (r *Repo) GetByEmail(ctx context.Context, email domain.Identity) (*domain.Subscription, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var res row
	err := postgres.Get(ctx, q, &res, postgres.Builder().
		Select(columns...).
		From("subscriptions").
		Where(sq.Eq{"email": email.String()}))
	if err != nil {
		mapped := postgres.MapError(err, "subscription", email)
		if errors.Is(mapped, domain.ErrNotFound) {
			return &domain.Subscription{Email: email, Status: domain.SubscriptionFree}, nil
		}
		return nil, mapped
	}

	s := toDomain(res)
	return &s, nil
}

// Upsert writes the billing state for s.Email.
func (r *Repo) Upsert(ctx context.Context, s domain.Subscription) (*domain.Subscription, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var res row
	err := postgres.Get(ctx, q, &res, postgres.Builder().
		Insert("subscriptions").
		Columns(columns...).
		Values(s.Email.String(), s.Status.String(), s.TrialEndsAt, s.CurrentPeriodEnd, sq.Expr("now()")).
		Suffix(`ON CONFLICT (email) DO UPDATE SET
			status = EXCLUDED.status,
			trial_ends_at = EXCLUDED.trial_ends_at,
			current_period_end = EXCLUDED.current_period_end,
			updated_at = EXCLUDED.updated_at
		RETURNING email, status, trial_ends_at, current_period_end, updated_at`))
	if err != nil {
		return nil, postgres.MapError(err, "subscription", s.Email)
	}

	out := toDomain(res)
	return &out, nil
}

func toDomain(r row) domain.Subscription {
	return domain.Subscription{
		Email:            domain.Identity(r.Email),
		Status:           domain.ParseSubscriptionStatus(r.Status),
		TrialEndsAt:      r.TrialEndsAt,
		CurrentPeriodEnd: r.CurrentPeriodEnd,
		UpdatedAt:        r.UpdatedAt,
	}
}
