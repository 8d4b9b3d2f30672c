package domain

import (
	"time"

	"github.com/google/uuid"
)

// MeetingNote records a coaching conversation inside a folder.
type MeetingNote struct {
	ID          uuid.UUID
	FolderID    uuid.UUID
	Title       string
	Body        string
	MeetingDate *time.Time // date only, UTC midnight
	CreatedBy   Identity
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MeetingNoteUpdateParams holds optional fields for a partial note update.
// ClearMeetingDate removes the date; MeetingDate is ignored when it is set.
type MeetingNoteUpdateParams struct {
	Title            *string
	Body             *string
	MeetingDate      *time.Time
	ClearMeetingDate bool
}

// CalendarEvent is a scheduled session, match or meeting in a folder's calendar.
type CalendarEvent struct {
	ID        uuid.UUID
	FolderID  uuid.UUID
	Title     string
	Location  *string
	StartsAt  time.Time
	EndsAt    time.Time
	AllDay    bool
	CreatedBy Identity
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CalendarEventUpdateParams holds optional fields for a partial event update.
type CalendarEventUpdateParams struct {
	Title    *string
	Location *string // ptr("") = clear
	StartsAt *time.Time
	EndsAt   *time.Time
	AllDay   *bool
}

// Comment is a remark on a folder, optionally attached to one evaluation.
type Comment struct {
	ID           uuid.UUID
	FolderID     uuid.UUID
	EvaluationID *uuid.UUID
	AuthorEmail  Identity
	Body         string
	CreatedAt    time.Time
}
