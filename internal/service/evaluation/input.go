package evaluation

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

const (
	maxSubjectLen = 200
	maxDataBytes  = 64 << 10
)

// CreateInput holds the parameters for creating an evaluation.
type CreateInput struct {
	FolderID uuid.UUID
	Subject  string
	Data     string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if i.FolderID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "folder_id", Message: "required"})
	}
	errs = append(errs, validateSubject(i.Subject)...)
	errs = append(errs, validateData(i.Data)...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for a partial evaluation update.
type UpdateInput struct {
	FolderID uuid.UUID
	ID       uuid.UUID
	Subject  *string
	Data     *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Subject == nil && i.Data == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}
	if i.Subject != nil {
		errs = append(errs, validateSubject(*i.Subject)...)
	}
	if i.Data != nil {
		errs = append(errs, validateData(*i.Data)...)
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds the parameters for listing evaluations.
type ListInput struct {
	FolderID uuid.UUID
	Limit    int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateSubject(s string) []domain.FieldError {
	if utf8.RuneCountInString(strings.TrimSpace(s)) > maxSubjectLen {
		return []domain.FieldError{{Field: "subject", Message: "max 200 characters"}}
	}
	return nil
}

func validateData(data string) []domain.FieldError {
	switch {
	case strings.TrimSpace(data) == "":
		return []domain.FieldError{{Field: "data", Message: "required"}}
	case len(data) > maxDataBytes:
		return []domain.FieldError{{Field: "data", Message: "max 64 KiB"}}
	case !utf8.ValidString(data):
		return []domain.FieldError{{Field: "data", Message: "must be valid UTF-8"}}
	case !json.Valid([]byte(data)):
		return []domain.FieldError{{Field: "data", Message: "must be valid JSON"}}
	}
	return nil
}
