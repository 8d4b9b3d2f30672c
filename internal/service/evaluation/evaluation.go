package evaluation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/access"
)

// CreateEvaluation stores a new evaluation in a folder. Editors and owners only.
// On the free tier the per-folder cap is checked and the insert done while holding
// the folder's lock, so concurrent creations cannot overshoot it.
func (s *Service) CreateEvaluation(ctx context.Context, input CreateInput) (*domain.Evaluation, error) {
	principal, id, err := access.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.access.RequireAccess(ctx, input.FolderID, id, domain.RoleEditor); err != nil {
		return nil, err
	}
	status := access.EvaluateEntitlement(principal).Status

	var created *domain.Evaluation
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.locker.Lock(txCtx, "evaluations", input.FolderID.String()); err != nil {
			return err
		}
		if err := s.access.AssertEvaluationLimit(txCtx, input.FolderID, status); err != nil {
			return err
		}

		now := s.now().UTC()
		var createErr error
		created, createErr = s.evaluations.Create(txCtx, &domain.Evaluation{
			ID:        uuid.New(),
			FolderID:  input.FolderID,
			Subject:   strings.TrimSpace(input.Subject),
			Data:      input.Data,
			CreatedBy: id,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if createErr != nil {
			return fmt.Errorf("create evaluation: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "evaluation created",
		slog.String("folder_id", input.FolderID.String()),
		slog.String("evaluation_id", created.ID.String()),
		slog.String("created_by", id.String()),
	)

	return created, nil
}

// ListEvaluations returns a folder's evaluations, newest first.
func (s *Service) ListEvaluations(ctx context.Context, input ListInput) ([]domain.Evaluation, error) {
	id, err := access.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.access.RequireAccess(ctx, input.FolderID, id, domain.RoleViewer); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	evals, err := s.evaluations.ListByFolder(ctx, input.FolderID, limit)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	return evals, nil
}

// GetEvaluation returns one evaluation of a folder.
func (s *Service) GetEvaluation(ctx context.Context, folderID, evaluationID uuid.UUID) (*domain.Evaluation, error) {
	id, err := access.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.access.RequireAccess(ctx, folderID, id, domain.RoleViewer); err != nil {
		return nil, err
	}

	e, err := s.evaluations.GetByID(ctx, folderID, evaluationID)
	if err != nil {
		return nil, fmt.Errorf("get evaluation: %w", err)
	}
	return e, nil
}

// UpdateEvaluation changes the subject and/or data of an evaluation. Editors and owners only.
func (s *Service) UpdateEvaluation(ctx context.Context, input UpdateInput) (*domain.Evaluation, error) {
	id, err := access.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.access.RequireAccess(ctx, input.FolderID, id, domain.RoleEditor); err != nil {
		return nil, err
	}

	params := domain.EvaluationUpdateParams{Data: input.Data}
	if input.Subject != nil {
		subject := strings.TrimSpace(*input.Subject)
		params.Subject = &subject
	}

	e, err := s.evaluations.Update(ctx, input.FolderID, input.ID, params)
	if err != nil {
		return nil, fmt.Errorf("update evaluation: %w", err)
	}

	s.log.InfoContext(ctx, "evaluation updated",
		slog.String("folder_id", input.FolderID.String()),
		slog.String("evaluation_id", input.ID.String()),
	)

	return e, nil
}

// DeleteEvaluation removes an evaluation. Editors and owners only.
func (s *Service) DeleteEvaluation(ctx context.Context, folderID, evaluationID uuid.UUID) error {
	id, err := access.RequireIdentity(ctx)
	if err != nil {
		return err
	}

	if _, err := s.access.RequireAccess(ctx, folderID, id, domain.RoleEditor); err != nil {
		return err
	}

	if err := s.evaluations.Delete(ctx, folderID, evaluationID); err != nil {
		return fmt.Errorf("delete evaluation: %w", err)
	}

	s.log.InfoContext(ctx, "evaluation deleted",
		slog.String("folder_id", folderID.String()),
		slog.String("evaluation_id", evaluationID.String()),
		slog.String("deleted_by", id.String()),
	)

	return nil
}
