package auth

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

const (
	maxEmailLen    = 254
	maxNameLen     = 100
	maxPasswordLen = 72 // bcrypt ignores anything longer
)

// RegisterInput holds parameters for password registration.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// Validate validates the register input. minPassword comes from config.
func (i RegisterInput) Validate(minPassword int) error {
	var errs []domain.FieldError

	errs = append(errs, validateEmail(i.Email)...)

	if n := len(i.Password); n < minPassword {
		errs = append(errs, domain.FieldError{Field: "password", Message: fmt.Sprintf("must be at least %d characters", minPassword)})
	} else if n > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if utf8.RuneCountInString(strings.TrimSpace(i.Name)) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(raw string) []domain.FieldError {
	email := domain.NormalizeEmail(raw).String()
	switch {
	case email == "":
		return []domain.FieldError{{Field: "email", Message: "required"}}
	case len(email) > maxEmailLen:
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	}
	local, host, ok := strings.Cut(email, "@")
	if !ok || local == "" || host == "" || strings.ContainsAny(email, " \t") {
		return []domain.FieldError{{Field: "email", Message: "invalid email format"}}
	}
	return nil
}
