// Package access decides who may do what on a folder: caller identity, entitlement,
// free-tier limits, role resolution and the role gate every folder operation uses.
package access

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

type folderRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Folder, error)
	CountForIdentity(ctx context.Context, email domain.Identity) (int, error)
}

type membershipRepo interface {
	Get(ctx context.Context, folderID uuid.UUID, email domain.Identity) (*domain.FolderMembership, error)
}

type evaluationCounter interface {
	CountByFolder(ctx context.Context, folderID uuid.UUID) (int, error)
}

// Limits are the free-tier caps.
type Limits struct {
	MaxFolders     int
	MaxEvaluations int
}

// DefaultLimits returns the standard free-tier caps.
func DefaultLimits() Limits {
	return Limits{MaxFolders: 1, MaxEvaluations: 10}
}

// Service resolves roles and enforces limits against storage.
type Service struct {
	log         *slog.Logger
	folders     folderRepo
	memberships membershipRepo
	evaluations evaluationCounter
	limits      Limits
}

// NewService creates a new access service.
func NewService(
	log *slog.Logger,
	folders folderRepo,
	memberships membershipRepo,
	evaluations evaluationCounter,
	limits Limits,
) *Service {
	return &Service{
		log:         log.With("service", "access"),
		folders:     folders,
		memberships: memberships,
		evaluations: evaluations,
		limits:      limits,
	}
}
