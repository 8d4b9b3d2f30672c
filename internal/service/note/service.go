// Package note manages meeting notes inside folders.
package note

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/access"
)

type noteRepo interface {
	ListByFolder(ctx context.Context, folderID uuid.UUID) ([]domain.MeetingNote, error)
	Create(ctx context.Context, n *domain.MeetingNote) (*domain.MeetingNote, error)
	Update(ctx context.Context, folderID, id uuid.UUID, params domain.MeetingNoteUpdateParams) (*domain.MeetingNote, error)
	Delete(ctx context.Context, folderID, id uuid.UUID) error
}

type accessChecker interface {
	RequireAccess(ctx context.Context, folderID uuid.UUID, id domain.Identity, minRole domain.Role) (*access.FolderAccess, error)
}

// Service implements meeting note operations.
type Service struct {
	log    *slog.Logger
	notes  noteRepo
	access accessChecker
	now    func() time.Time
}

// NewService creates a new note service.
func NewService(log *slog.Logger, notes noteRepo, access accessChecker) *Service {
	return &Service{
		log:    log.With("service", "note"),
		notes:  notes,
		access: access,
		now:    time.Now,
	}
}

// ListNotes returns the folder's notes, most recent meeting first.
func (s *Service) ListNotes(ctx context.Context, folderID uuid.UUID) ([]domain.MeetingNote, error) {
	id, err := access.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.access.RequireAccess(ctx, folderID, id, domain.RoleViewer); err != nil {
		return nil, err
	}

	notes, err := s.notes.ListByFolder(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// CreateNote adds a meeting note. Editors and owners only.
func (s *Service) CreateNote(ctx context.Context, input CreateInput) (*domain.MeetingNote, error) {
	id, err := access.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	date, err := input.validate()
	if err != nil {
		return nil, err
	}

	if _, err := s.access.RequireAccess(ctx, input.FolderID, id, domain.RoleEditor); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	n, err := s.notes.Create(ctx, &domain.MeetingNote{
		ID:          uuid.New(),
		FolderID:    input.FolderID,
		Title:       strings.TrimSpace(input.Title),
		Body:        input.Body,
		MeetingDate: date,
		CreatedBy:   id,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.log.InfoContext(ctx, "note created",
		slog.String("folder_id", input.FolderID.String()),
		slog.String("note_id", n.ID.String()),
	)

	return n, nil
}

// UpdateNote applies a partial update. Editors and owners only.
func (s *Service) UpdateNote(ctx context.Context, input UpdateInput) (*domain.MeetingNote, error) {
	id, err := access.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	params, err := input.validate()
	if err != nil {
		return nil, err
	}

	if _, err := s.access.RequireAccess(ctx, input.FolderID, id, domain.RoleEditor); err != nil {
		return nil, err
	}

	n, err := s.notes.Update(ctx, input.FolderID, input.ID, params)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}

	s.log.InfoContext(ctx, "note updated",
		slog.String("folder_id", input.FolderID.String()),
		slog.String("note_id", input.ID.String()),
	)

	return n, nil
}

// DeleteNote removes a note. Editors and owners only.
func (s *Service) DeleteNote(ctx context.Context, folderID, noteID uuid.UUID) error {
	id, err := access.RequireIdentity(ctx)
	if err != nil {
		return err
	}

	if _, err := s.access.RequireAccess(ctx, folderID, id, domain.RoleEditor); err != nil {
		return err
	}

	if err := s.notes.Delete(ctx, folderID, noteID); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	s.log.InfoContext(ctx, "note deleted",
		slog.String("folder_id", folderID.String()),
		slog.String("note_id", noteID.String()),
	)

	return nil
}
