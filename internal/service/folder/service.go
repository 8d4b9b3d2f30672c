// Package folder manages folders and the memberships that share them.
package folder

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/access"
)

type folderRepo interface {
	Create(ctx context.Context, f *domain.Folder) (*domain.Folder, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (*domain.Folder, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListForIdentity(ctx context.Context, email domain.Identity) ([]domain.FolderWithRole, error)
}

type membershipRepo interface {
	List(ctx context.Context, folderID uuid.UUID) ([]domain.FolderMembership, error)
	Add(ctx context.Context, m *domain.FolderMembership) (*domain.FolderMembership, error)
	UpdateRole(ctx context.Context, folderID uuid.UUID, email domain.Identity, role domain.Role) (*domain.FolderMembership, error)
	Remove(ctx context.Context, folderID uuid.UUID, email domain.Identity) error
}

type accessChecker interface {
	RequireAccess(ctx context.Context, folderID uuid.UUID, id domain.Identity, minRole domain.Role) (*access.FolderAccess, error)
	AssertFolderLimit(ctx context.Context, id domain.Identity, status domain.SubscriptionStatus) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type locker interface {
	Lock(ctx context.Context, namespace, key string) error
}

// Service implements folder and membership operations.
type Service struct {
	log         *slog.Logger
	folders     folderRepo
	memberships membershipRepo
	access      accessChecker
	tx          txManager
	locker      locker
	now         func() time.Time
}

// NewService creates a new folder service.
func NewService(
	log *slog.Logger,
	folders folderRepo,
	memberships membershipRepo,
	access accessChecker,
	tx txManager,
	locker locker,
) *Service {
	return &Service{
		log:         log.With("service", "folder"),
		folders:     folders,
		memberships: memberships,
		access:      access,
		tx:          tx,
		locker:      locker,
		now:         time.Now,
	}
}
