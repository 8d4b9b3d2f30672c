package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

// ResolveRole returns the role id holds on the folder, or false when it has none.
// A missing folder is reported as no role so callers cannot learn whether it exists.
func (s *Service) ResolveRole(ctx context.Context, folderID uuid.UUID, id domain.Identity) (domain.Role, bool, error) {
	_, role, ok, err := s.resolve(ctx, folderID, id)
	return role, ok, err
}

func (s *Service) resolve(ctx context.Context, folderID uuid.UUID, id domain.Identity) (*domain.Folder, domain.Role, bool, error) {
	id = domain.NormalizeEmail(id.String())

	folder, err := s.folders.GetByID(ctx, folderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", false, nil
		}
		return nil, "", false, fmt.Errorf("get folder: %w", err)
	}

	if folder.IsOwnedBy(id) {
		return folder, domain.RoleOwner, true, nil
	}

	m, err := s.memberships.Get(ctx, folderID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return folder, "", false, nil
		}
		return nil, "", false, fmt.Errorf("get membership: %w", err)
	}

	return folder, domain.RoleFromMembership(m.Role.String()), true, nil
}
