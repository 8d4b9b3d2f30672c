package folder

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

const maxNameLen = 100

// CreateInput holds the parameters for creating a folder.
type CreateInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	if errs := validateName(i.Name); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RenameInput holds the parameters for renaming a folder.
type RenameInput struct {
	FolderID uuid.UUID
	Name     string
}

// Validate checks all fields and collects all errors.
func (i RenameInput) Validate() error {
	var errs []domain.FieldError
	if i.FolderID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "folder_id", Message: "required"})
	}
	errs = append(errs, validateName(i.Name)...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// MemberInput holds the parameters for adding a member or changing their role.
type MemberInput struct {
	FolderID uuid.UUID
	Email    string
	Role     domain.Role
}

// Validate checks all fields and collects all errors.
func (i MemberInput) Validate() error {
	var errs []domain.FieldError
	if i.FolderID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "folder_id", Message: "required"})
	}
	email := domain.NormalizeEmail(i.Email)
	switch {
	case email.IsZero():
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case !strings.Contains(email.String(), "@"):
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email format"})
	}
	if !i.Role.IsMemberRole() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be editor, student or viewer"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateName(name string) []domain.FieldError {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	switch {
	case n == 0:
		return []domain.FieldError{{Field: "name", Message: "required"}}
	case n > maxNameLen:
		return []domain.FieldError{{Field: "name", Message: "max 100 characters"}}
	}
	return nil
}
