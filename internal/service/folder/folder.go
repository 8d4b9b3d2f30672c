package folder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/access"
)

// CreateFolder creates a folder owned by the caller. The free-tier folder cap is
// checked under a per-identity lock in the same transaction as the insert.
func (s *Service) CreateFolder(ctx context.Context, input CreateInput) (*domain.Folder, error) {
	principal, id, err := access.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	status := access.EvaluateEntitlement(principal).Status

	var created *domain.Folder
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.locker.Lock(txCtx, "folders", id.String()); err != nil {
			return err
		}
		if err := s.access.AssertFolderLimit(txCtx, id, status); err != nil {
			return err
		}

		now := s.now().UTC()
		var createErr error
		created, createErr = s.folders.Create(txCtx, &domain.Folder{
			ID:        uuid.New(),
			Name:      strings.TrimSpace(input.Name),
			OwnerID:   id,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if createErr != nil {
			return fmt.Errorf("create folder: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "folder created",
		slog.String("folder_id", created.ID.String()),
		slog.String("owner", id.String()),
	)

	return created, nil
}

// ListFolders returns the folders the caller owns or is a member of.
func (s *Service) ListFolders(ctx context.Context) ([]domain.FolderWithRole, error) {
	id, err := access.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	folders, err := s.folders.ListForIdentity(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	return folders, nil
}

// GetFolder returns a folder together with the caller's role on it.
func (s *Service) GetFolder(ctx context.Context, folderID uuid.UUID) (*domain.FolderWithRole, error) {
	id, err := access.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	fa, err := s.access.RequireAccess(ctx, folderID, id, domain.RoleViewer)
	if err != nil {
		return nil, err
	}
	return &domain.FolderWithRole{Folder: fa.Folder, Role: fa.Role}, nil
}

// RenameFolder changes a folder's name. Editors and owners only.
func (s *Service) RenameFolder(ctx context.Context, input RenameInput) (*domain.Folder, error) {
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

	f, err := s.folders.Rename(ctx, input.FolderID, strings.TrimSpace(input.Name))
	if err != nil {
		return nil, fmt.Errorf("rename folder: %w", err)
	}

	s.log.InfoContext(ctx, "folder renamed",
		slog.String("folder_id", input.FolderID.String()),
	)

	return f, nil
}

// DeleteFolder removes a folder and everything in it. Owner only.
func (s *Service) DeleteFolder(ctx context.Context, folderID uuid.UUID) error {
	id, err := access.RequireIdentity(ctx)
	if err != nil {
		return err
	}

	if _, err := s.access.RequireAccess(ctx, folderID, id, domain.RoleOwner); err != nil {
		return err
	}

	if err := s.folders.Delete(ctx, folderID); err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}

	s.log.InfoContext(ctx, "folder deleted",
		slog.String("folder_id", folderID.String()),
		slog.String("owner", id.String()),
	)

	return nil
}
