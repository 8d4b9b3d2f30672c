package calendar

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

const (
	maxTitleLen    = 200
	maxLocationLen = 200
)

// CreateInput holds the parameters for creating an event. Times are RFC3339.
type CreateInput struct {
	FolderID uuid.UUID
	Title    string
	Location string
	StartsAt string
	EndsAt   string
	AllDay   bool
}

type createParams struct {
	title    string
	location *string
	startsAt time.Time
	endsAt   time.Time
}

func (i CreateInput) validate() (createParams, error) {
	var (
		errs []domain.FieldError
		p    createParams
	)
	if i.FolderID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "folder_id", Message: "required"})
	}
	errs = append(errs, validateTitle(i.Title)...)
	p.title = strings.TrimSpace(i.Title)

	if loc := strings.TrimSpace(i.Location); loc != "" {
		errs = append(errs, validateLocation(loc)...)
		p.location = &loc
	}

	start, startErr := parseTime("starts_at", i.StartsAt)
	end, endErr := parseTime("ends_at", i.EndsAt)
	if startErr != nil {
		errs = append(errs, *startErr)
	}
	if endErr != nil {
		errs = append(errs, *endErr)
	}
	if startErr == nil && endErr == nil && end.Before(start) {
		errs = append(errs, domain.FieldError{Field: "ends_at", Message: "must not be before starts_at"})
	}
	p.startsAt, p.endsAt = start, end

	if len(errs) > 0 {
		return createParams{}, domain.NewValidationErrors(errs)
	}
	return p, nil
}

// UpdateInput holds the parameters for a partial event update.
// A Location pointing at an empty string clears it.
type UpdateInput struct {
	FolderID uuid.UUID
	ID       uuid.UUID
	Title    *string
	Location *string
	StartsAt *string
	EndsAt   *string
	AllDay   *bool
}

func (i UpdateInput) validate() (domain.CalendarEventUpdateParams, error) {
	var (
		errs   []domain.FieldError
		params domain.CalendarEventUpdateParams
	)
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title == nil && i.Location == nil && i.StartsAt == nil && i.EndsAt == nil && i.AllDay == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}
	if i.Title != nil {
		errs = append(errs, validateTitle(*i.Title)...)
		title := strings.TrimSpace(*i.Title)
		params.Title = &title
	}
	if i.Location != nil {
		loc := strings.TrimSpace(*i.Location)
		errs = append(errs, validateLocation(loc)...)
		params.Location = &loc
	}
	if i.StartsAt != nil {
		t, fe := parseTime("starts_at", *i.StartsAt)
		if fe != nil {
			errs = append(errs, *fe)
		} else {
			params.StartsAt = &t
		}
	}
	if i.EndsAt != nil {
		t, fe := parseTime("ends_at", *i.EndsAt)
		if fe != nil {
			errs = append(errs, *fe)
		} else {
			params.EndsAt = &t
		}
	}
	if params.StartsAt != nil && params.EndsAt != nil && params.EndsAt.Before(*params.StartsAt) {
		errs = append(errs, domain.FieldError{Field: "ends_at", Message: "must not be before starts_at"})
	}
	params.AllDay = i.AllDay

	if len(errs) > 0 {
		return domain.CalendarEventUpdateParams{}, domain.NewValidationErrors(errs)
	}
	return params, nil
}

// RangeInput holds the window for listing events. Times are RFC3339.
type RangeInput struct {
	FolderID uuid.UUID
	From     string
	To       string
}

func (i RangeInput) validate() (time.Time, time.Time, error) {
	var errs []domain.FieldError
	from, fromErr := parseTime("from", i.From)
	to, toErr := parseTime("to", i.To)
	if fromErr != nil {
		errs = append(errs, *fromErr)
	}
	if toErr != nil {
		errs = append(errs, *toErr)
	}
	if fromErr == nil && toErr == nil {
		switch {
		case !to.After(from):
			errs = append(errs, domain.FieldError{Field: "to", Message: "must be after from"})
		case to.Sub(from) > MaxRange:
			errs = append(errs, domain.FieldError{Field: "to", Message: "range must not exceed 366 days"})
		}
	}
	if len(errs) > 0 {
		return time.Time{}, time.Time{}, domain.NewValidationErrors(errs)
	}
	return from, to, nil
}

func validateTitle(title string) []domain.FieldError {
	n := utf8.RuneCountInString(strings.TrimSpace(title))
	switch {
	case n == 0:
		return []domain.FieldError{{Field: "title", Message: "required"}}
	case n > maxTitleLen:
		return []domain.FieldError{{Field: "title", Message: "max 200 characters"}}
	}
	return nil
}

func validateLocation(loc string) []domain.FieldError {
	if utf8.RuneCountInString(loc) > maxLocationLen {
		return []domain.FieldError{{Field: "location", Message: "max 200 characters"}}
	}
	return nil
}

func parseTime(field, s string) (time.Time, *domain.FieldError) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, &domain.FieldError{Field: field, Message: "required"}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, &domain.FieldError{Field: field, Message: "must be an RFC3339 timestamp"}
	}
	return t.UTC(), nil
}
