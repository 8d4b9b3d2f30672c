package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/config"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/access"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email domain.Identity) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// settingsRepo defines the settings repository interface needed by auth service.
type settingsRepo interface {
	UpsertSettings(ctx context.Context, s domain.UserSettings) (*domain.UserSettings, error)
}

// subscriptionRepo reads the billing state written by the billing sync.
type subscriptionRepo interface {
	GetByEmail(ctx context.Context, email domain.Identity) (*domain.Subscription, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// sessionIssuer signs session tokens that carry the principal.
type sessionIssuer interface {
	IssueSession(p domain.Principal) (string, time.Time, error)
}

// passwordHasher hashes and verifies passwords.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// Service implements auth operations.
type Service struct {
	log           *slog.Logger
	users         userRepo
	settings      settingsRepo
	subscriptions subscriptionRepo
	tx            txManager
	sessions      sessionIssuer
	passwords     passwordHasher
	cfg           config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	settings settingsRepo,
	subscriptions subscriptionRepo,
	tx txManager,
	sessions sessionIssuer,
	passwords passwordHasher,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:           logger.With("service", "auth"),
		users:         users,
		settings:      settings,
		subscriptions: subscriptions,
		tx:            tx,
		sessions:      sessions,
		passwords:     passwords,
		cfg:           cfg,
	}
}

// issueSession snapshots the user's current subscription into a new session token.
func (s *Service) issueSession(ctx context.Context, user *domain.User) (*Session, error) {
	sub, err := s.subscriptions.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("load subscription: %w", err)
	}

	principal := domain.Principal{
		UserID:           user.ID,
		Email:            user.Email.String(),
		Status:           sub.Status,
		TrialEndsAt:      sub.TrialEndsAt,
		CurrentPeriodEnd: sub.CurrentPeriodEnd,
	}

	token, expiresAt, err := s.sessions.IssueSession(principal)
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}

	return &Session{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
		Entitlement: access.EvaluateEntitlement(principal),
	}, nil
}
