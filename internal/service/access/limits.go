package access

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

// AssertFolderLimit fails when a FREE identity already owns or shares a folder.
// Other statuses are not limited.
func (s *Service) AssertFolderLimit(ctx context.Context, id domain.Identity, status domain.SubscriptionStatus) error {
	if !status.IsFree() {
		return nil
	}

	count, err := s.folders.CountForIdentity(ctx, id)
	if err != nil {
		return fmt.Errorf("count folders: %w", err)
	}
	if count >= s.limits.MaxFolders {
		s.log.InfoContext(ctx, "folder limit reached",
			slog.String("identity", id.String()),
			slog.Int("count", count),
		)
		return domain.NewLimitExceededError("folder", s.limits.MaxFolders)
	}
	return nil
}

// AssertEvaluationLimit fails when a FREE caller's folder is already at the cap.
func (s *Service) AssertEvaluationLimit(ctx context.Context, folderID uuid.UUID, status domain.SubscriptionStatus) error {
	if !status.IsFree() {
		return nil
	}

	count, err := s.evaluations.CountByFolder(ctx, folderID)
	if err != nil {
		return fmt.Errorf("count evaluations: %w", err)
	}
	if count >= s.limits.MaxEvaluations {
		s.log.InfoContext(ctx, "evaluation limit reached",
			slog.String("folder_id", folderID.String()),
			slog.Int("count", count),
		)
		return domain.NewLimitExceededError("evaluation", s.limits.MaxEvaluations)
	}
	return nil
}
