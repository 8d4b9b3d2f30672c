package folder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/access"
)

// ListMembers returns the folder's memberships. Stored roles are mapped the same way
// access checks map them, so the listing shows what each member can actually do.
func (s *Service) ListMembers(ctx context.Context, folderID uuid.UUID) ([]domain.FolderMembership, error) {
	id, err := access.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.access.RequireAccess(ctx, folderID, id, domain.RoleViewer); err != nil {
		return nil, err
	}

	members, err := s.memberships.List(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	for i := range members {
		members[i].Role = domain.RoleFromMembership(members[i].Role.String())
	}
	return members, nil
}

// AddMember shares a folder with another identity. Owner only.
func (s *Service) AddMember(ctx context.Context, input MemberInput) (*domain.FolderMembership, error) {
	id, err := access.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	fa, err := s.access.RequireAccess(ctx, input.FolderID, id, domain.RoleOwner)
	if err != nil {
		return nil, err
	}

	email := domain.NormalizeEmail(input.Email)
	if fa.Folder.IsOwnedBy(email) {
		return nil, domain.NewValidationError("email", "owner cannot be added as a member")
	}

	m, err := s.memberships.Add(ctx, &domain.FolderMembership{
		FolderID:  input.FolderID,
		UserEmail: email,
		Role:      input.Role,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("add member: %w", err)
	}

	s.log.InfoContext(ctx, "member added",
		slog.String("folder_id", input.FolderID.String()),
		slog.String("member", email.String()),
		slog.String("role", input.Role.String()),
	)

	return m, nil
}

// UpdateMemberRole changes the role of an existing member. Owner only.
func (s *Service) UpdateMemberRole(ctx context.Context, input MemberInput) (*domain.FolderMembership, error) {
	id, err := access.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.access.RequireAccess(ctx, input.FolderID, id, domain.RoleOwner); err != nil {
		return nil, err
	}

	email := domain.NormalizeEmail(input.Email)
	m, err := s.memberships.UpdateRole(ctx, input.FolderID, email, input.Role)
	if err != nil {
		return nil, fmt.Errorf("update member role: %w", err)
	}

	s.log.InfoContext(ctx, "member role updated",
		slog.String("folder_id", input.FolderID.String()),
		slog.String("member", email.String()),
		slog.String("role", input.Role.String()),
	)

	return m, nil
}

// RemoveMember revokes a membership. The owner may remove anyone; any member may
// remove themselves.
func (s *Service) RemoveMember(ctx context.Context, folderID uuid.UUID, email string) error {
	id, err := access.RequireIdentity(ctx)
	if err != nil {
		return err
	}

	target := domain.NormalizeEmail(email)
	if target.IsZero() {
		return domain.NewValidationError("email", "required")
	}

	fa, err := s.access.RequireAccess(ctx, folderID, id, domain.RoleViewer)
	if err != nil {
		return err
	}
	if fa.Role != domain.RoleOwner && target != id {
		return domain.ErrForbidden
	}

	if err := s.memberships.Remove(ctx, folderID, target); err != nil {
		return fmt.Errorf("remove member: %w", err)
	}

	s.log.InfoContext(ctx, "member removed",
		slog.String("folder_id", folderID.String()),
		slog.String("member", target.String()),
		slog.String("removed_by", id.String()),
	)

	return nil
}
