package note

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

const (
	maxTitleLen = 200
	maxBodyLen  = 20000

	// DateLayout is the wire format of a meeting date.
	DateLayout = "2006-01-02"
)

// CreateInput holds the parameters for creating a note. MeetingDate is YYYY-MM-DD or empty.
type CreateInput struct {
	FolderID    uuid.UUID
	Title       string
	Body        string
	MeetingDate string
}

func (i CreateInput) validate() (*time.Time, error) {
	var errs []domain.FieldError
	if i.FolderID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "folder_id", Message: "required"})
	}
	errs = append(errs, validateTitle(i.Title)...)
	errs = append(errs, validateBody(i.Body)...)

	var date *time.Time
	if strings.TrimSpace(i.MeetingDate) != "" {
		d, fe := parseDate(i.MeetingDate)
		if fe != nil {
			errs = append(errs, *fe)
		}
		date = d
	}

	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return date, nil
}

// UpdateInput holds the parameters for a partial note update.
// A MeetingDate pointing at an empty string clears the date.
type UpdateInput struct {
	FolderID    uuid.UUID
	ID          uuid.UUID
	Title       *string
	Body        *string
	MeetingDate *string
}

func (i UpdateInput) validate() (domain.MeetingNoteUpdateParams, error) {
	var (
		errs   []domain.FieldError
		params domain.MeetingNoteUpdateParams
	)
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title == nil && i.Body == nil && i.MeetingDate == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}
	if i.Title != nil {
		errs = append(errs, validateTitle(*i.Title)...)
		title := strings.TrimSpace(*i.Title)
		params.Title = &title
	}
	if i.Body != nil {
		errs = append(errs, validateBody(*i.Body)...)
		params.Body = i.Body
	}
	if i.MeetingDate != nil {
		if strings.TrimSpace(*i.MeetingDate) == "" {
			params.ClearMeetingDate = true
		} else {
			d, fe := parseDate(*i.MeetingDate)
			if fe != nil {
				errs = append(errs, *fe)
			}
			params.MeetingDate = d
		}
	}

	if len(errs) > 0 {
		return domain.MeetingNoteUpdateParams{}, domain.NewValidationErrors(errs)
	}
	return params, nil
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

func validateBody(body string) []domain.FieldError {
	if utf8.RuneCountInString(body) > maxBodyLen {
		return []domain.FieldError{{Field: "body", Message: "max 20000 characters"}}
	}
	return nil
}

func parseDate(s string) (*time.Time, *domain.FieldError) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return nil, &domain.FieldError{Field: "meeting_date", Message: "must be YYYY-MM-DD"}
	}
	return &d, nil
}
