package evaluation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/access"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/evaluation/scores"
)

// GetAnalytics aggregates every evaluation of a folder. Any member may read it, but
// only with paid access.
func (s *Service) GetAnalytics(ctx context.Context, folderID uuid.UUID) (*domain.Analytics, error) {
	principal, id, err := access.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.access.RequireAccess(ctx, folderID, id, domain.RoleViewer); err != nil {
		return nil, err
	}
	if err := access.RequirePro(principal); err != nil {
		return nil, err
	}

	evals, err := s.evaluations.ListByFolder(ctx, folderID, 0)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}

	a := scores.Compute(evals, s.now())
	return &a, nil
}
