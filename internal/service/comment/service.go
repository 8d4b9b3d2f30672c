// Package comment manages comments on folders and their evaluations.
package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/access"
)

const maxBodyLen = 5000

type commentRepo interface {
	GetByID(ctx context.Context, folderID, id uuid.UUID) (*domain.Comment, error)
	List(ctx context.Context, folderID uuid.UUID, evaluationID *uuid.UUID) ([]domain.Comment, error)
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	Delete(ctx context.Context, folderID, id uuid.UUID) error
}

type evaluationGetter interface {
	GetByID(ctx context.Context, folderID, id uuid.UUID) (*domain.Evaluation, error)
}

type accessChecker interface {
	RequireAccess(ctx context.Context, folderID uuid.UUID, id domain.Identity, minRole domain.Role) (*access.FolderAccess, error)
}

// Service implements comment operations.
type Service struct {
	log         *slog.Logger
	comments    commentRepo
	evaluations evaluationGetter
	access      accessChecker
	now         func() time.Time
}

// NewService creates a new comment service.
func NewService(log *slog.Logger, comments commentRepo, evaluations evaluationGetter, access accessChecker) *Service {
	return &Service{
		log:         log.With("service", "comment"),
		comments:    comments,
		evaluations: evaluations,
		access:      access,
		now:         time.Now,
	}
}

// AddInput holds the parameters for posting a comment.
type AddInput struct {
	FolderID     uuid.UUID
	EvaluationID *uuid.UUID
	Body         string
}

// Validate checks all fields and collects all errors.
func (i AddInput) Validate() error {
	var errs []domain.FieldError
	if i.FolderID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "folder_id", Message: "required"})
	}
	n := utf8.RuneCountInString(strings.TrimSpace(i.Body))
	switch {
	case n == 0:
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	case n > maxBodyLen:
		errs = append(errs, domain.FieldError{Field: "body", Message: "max 5000 characters"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddComment posts a comment. Every member, students and viewers included, may comment.
func (s *Service) AddComment(ctx context.Context, input AddInput) (*domain.Comment, error) {
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

	if input.EvaluationID != nil {
		if _, err := s.evaluations.GetByID(ctx, input.FolderID, *input.EvaluationID); err != nil {
			return nil, fmt.Errorf("get evaluation: %w", err)
		}
	}

	c, err := s.comments.Create(ctx, &domain.Comment{
		ID:           uuid.New(),
		FolderID:     input.FolderID,
		EvaluationID: input.EvaluationID,
		AuthorEmail:  id,
		Body:         strings.TrimSpace(input.Body),
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment added",
		slog.String("folder_id", input.FolderID.String()),
		slog.String("comment_id", c.ID.String()),
	)

	return c, nil
}

// ListComments returns a folder's comments, or only those on one evaluation.
func (s *Service) ListComments(ctx context.Context, folderID uuid.UUID, evaluationID *uuid.UUID) ([]domain.Comment, error) {
	id, err := access.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.access.RequireAccess(ctx, folderID, id, domain.RoleViewer); err != nil {
		return nil, err
	}

	comments, err := s.comments.List(ctx, folderID, evaluationID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// DeleteComment removes a comment. Authors may delete their own; editors and owners
// may delete any.
func (s *Service) DeleteComment(ctx context.Context, folderID, commentID uuid.UUID) error {
	id, err := access.RequireIdentity(ctx)
	if err != nil {
		return err
	}

	fa, err := s.access.RequireAccess(ctx, folderID, id, domain.RoleViewer)
	if err != nil {
		return err
	}

	if !fa.Role.AtLeast(domain.RoleEditor) {
		c, err := s.comments.GetByID(ctx, folderID, commentID)
		if err != nil {
			return fmt.Errorf("get comment: %w", err)
		}
		if domain.NormalizeEmail(c.AuthorEmail.String()) != id {
			return domain.ErrForbidden
		}
	}

	if err := s.comments.Delete(ctx, folderID, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment deleted",
		slog.String("folder_id", folderID.String()),
		slog.String("comment_id", commentID.String()),
		slog.String("deleted_by", id.String()),
	)

	return nil
}
