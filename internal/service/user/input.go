package user

import (
	"strings"
	"time"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

// UpdateSettingsInput holds parameters for settings update operation.
// All fields are optional (nil = don't change).
type UpdateSettingsInput struct {
	Timezone           *string
	Locale             *string
	WeekStart          *int
	EmailNotifications *bool
}

// Validate validates the update settings input.
func (i UpdateSettingsInput) Validate() error {
	var errs []domain.FieldError

	if i.Timezone == nil && i.Locale == nil && i.WeekStart == nil && i.EmailNotifications == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}

	if i.Timezone != nil {
		tz := strings.TrimSpace(*i.Timezone)
		if tz == "" {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "cannot be empty"})
		} else if len(tz) > 64 {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "too long"})
		} else if _, err := time.LoadLocation(tz); err != nil || tz == "Local" {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "invalid IANA timezone"})
		}
	}

	if i.Locale != nil {
		if !validLocale(strings.TrimSpace(*i.Locale)) {
			errs = append(errs, domain.FieldError{Field: "locale", Message: "must be a language tag like fi or en-GB"})
		}
	}

	if i.WeekStart != nil {
		if *i.WeekStart < 0 || *i.WeekStart > 6 {
			errs = append(errs, domain.FieldError{Field: "week_start", Message: "must be between 0 and 6"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// validLocale accepts a two or three letter language code with an optional
// alphanumeric region or script subtag.
func validLocale(s string) bool {
	lang, rest, hasRest := strings.Cut(s, "-")
	if len(lang) < 2 || len(lang) > 3 || !isLetters(lang) {
		return false
	}
	if !hasRest {
		return true
	}
	if len(rest) < 2 || len(rest) > 8 {
		return false
	}
	for _, r := range rest {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

func isLetters(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}
