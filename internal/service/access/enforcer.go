package access

import (
	"context"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

// FolderAccess is a folder together with the role the caller holds on it.
type FolderAccess struct {
	Folder domain.Folder
	Role   domain.Role
}

// RequireAccess loads the folder and checks that id holds at least minRole on it.
// No role is ErrNoAccess; a role ranked below minRole is ErrForbidden.
func (s *Service) RequireAccess(ctx context.Context, folderID uuid.UUID, id domain.Identity, minRole domain.Role) (*FolderAccess, error) {
	folder, role, ok, err := s.resolve(ctx, folderID, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNoAccess
	}
	if !role.AtLeast(minRole) {
		return nil, domain.ErrForbidden
	}
	return &FolderAccess{Folder: *folder, Role: role}, nil
}
