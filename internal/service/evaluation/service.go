package evaluation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/access"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type evaluationRepo interface {
	GetByID(ctx context.Context, folderID, id uuid.UUID) (*domain.Evaluation, error)
	ListByFolder(ctx context.Context, folderID uuid.UUID, limit int) ([]domain.Evaluation, error)
	Create(ctx context.Context, e *domain.Evaluation) (*domain.Evaluation, error)
	Update(ctx context.Context, folderID, id uuid.UUID, params domain.EvaluationUpdateParams) (*domain.Evaluation, error)
	Delete(ctx context.Context, folderID, id uuid.UUID) error
}

type accessChecker interface {
	RequireAccess(ctx context.Context, folderID uuid.UUID, id domain.Identity, minRole domain.Role) (*access.FolderAccess, error)
	AssertEvaluationLimit(ctx context.Context, folderID uuid.UUID, status domain.SubscriptionStatus) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type locker interface {
	Lock(ctx context.Context, namespace, key string) error
}

// Service manages folder evaluations and their analytics.
type Service struct {
	log         *slog.Logger
	evaluations evaluationRepo
	access      accessChecker
	tx          txManager
	locker      locker
	now         func() time.Time
}

// NewService creates a new evaluation service.
func NewService(
	log *slog.Logger,
	evaluations evaluationRepo,
	access accessChecker,
	tx txManager,
	locker locker,
) *Service {
	return &Service{
		log:         log.With("service", "evaluation"),
		evaluations: evaluations,
		access:      access,
		tx:          tx,
		locker:      locker,
		now:         time.Now,
	}
}
