package user

import (
	"context"
	"log/slog"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

// settingsRepo defines the settings repository interface needed by user service.
type settingsRepo interface {
	GetSettings(ctx context.Context, email domain.Identity) (*domain.UserSettings, error)
	UpsertSettings(ctx context.Context, s domain.UserSettings) (*domain.UserSettings, error)
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user settings operations.
type Service struct {
	log      *slog.Logger
	settings settingsRepo
	tx       txManager
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	settings settingsRepo,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		settings: settings,
		tx:       tx,
	}
}
