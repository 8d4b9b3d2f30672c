package rest

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/note"
)

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email.String(),
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

type entitlementResponse struct {
	Status           string     `json:"status"`
	HasPro           bool       `json:"hasPro"`
	TrialEndsAt      *time.Time `json:"trialEndsAt,omitempty"`
	CurrentPeriodEnd *time.Time `json:"currentPeriodEnd,omitempty"`
}

func toEntitlementResponse(e domain.Entitlement) entitlementResponse {
	return entitlementResponse{
		Status:           e.Status.String(),
		HasPro:           e.HasPro,
		TrialEndsAt:      e.TrialEndsAt,
		CurrentPeriodEnd: e.CurrentPeriodEnd,
	}
}

type settingsResponse struct {
	Timezone           string    `json:"timezone"`
	Locale             string    `json:"locale"`
	WeekStart          int       `json:"weekStart"`
	EmailNotifications bool      `json:"emailNotifications"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func toSettingsResponse(s *domain.UserSettings) settingsResponse {
	return settingsResponse{
		Timezone:           s.Timezone,
		Locale:             s.Locale,
		WeekStart:          s.WeekStart,
		EmailNotifications: s.EmailNotifications,
		UpdatedAt:          s.UpdatedAt,
	}
}

type folderResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Owner     string    `json:"owner"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toFolderResponse(f *domain.Folder, role domain.Role) folderResponse {
	return folderResponse{
		ID:        f.ID,
		Name:      f.Name,
		Owner:     f.OwnerID.String(),
		Role:      role.String(),
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

type memberResponse struct {
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toMemberResponse(m *domain.FolderMembership) memberResponse {
	return memberResponse{Email: m.UserEmail.String(), Role: m.Role.String(), CreatedAt: m.CreatedAt}
}

type evaluationResponse struct {
	ID        uuid.UUID       `json:"id"`
	FolderID  uuid.UUID       `json:"folderId"`
	Subject   string          `json:"subject"`
	Data      json.RawMessage `json:"data"`
	CreatedBy string          `json:"createdBy"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func toEvaluationResponse(e *domain.Evaluation) evaluationResponse {
	return evaluationResponse{
		ID:        e.ID,
		FolderID:  e.FolderID,
		Subject:   e.Subject,
		Data:      rawJSON(e.Data),
		CreatedBy: e.CreatedBy.String(),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// rawJSON embeds stored evaluation data as-is. Rows that predate validation
// may hold arbitrary text; those are sent as a JSON string.
func rawJSON(data string) json.RawMessage {
	if json.Valid([]byte(data)) {
		return json.RawMessage(data)
	}
	quoted, _ := json.Marshal(data)
	return quoted
}

type trendPointResponse struct {
	ID      uuid.UUID `json:"id"`
	At      time.Time `json:"at"`
	Value   float64   `json:"value"`
	Subject string    `json:"subject"`
}

type analyticsResponse struct {
	AvgAll       float64              `json:"avgAll"`
	Avg7         float64              `json:"avg7"`
	Avg30        float64              `json:"avg30"`
	Distribution [11]int              `json:"distribution"`
	Trend        []trendPointResponse `json:"trend"`
}

func toAnalyticsResponse(a *domain.Analytics) analyticsResponse {
	resp := analyticsResponse{
		AvgAll:       a.AvgAll,
		Avg7:         a.Avg7,
		Avg30:        a.Avg30,
		Distribution: a.Distribution,
		Trend:        make([]trendPointResponse, 0, len(a.Trend)),
	}
	for _, p := range a.Trend {
		resp.Trend = append(resp.Trend, trendPointResponse{ID: p.ID, At: p.At, Value: p.Value, Subject: p.Subject})
	}
	return resp
}

type noteResponse struct {
	ID          uuid.UUID `json:"id"`
	FolderID    uuid.UUID `json:"folderId"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	MeetingDate *string   `json:"meetingDate,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toNoteResponse(n *domain.MeetingNote) noteResponse {
	resp := noteResponse{
		ID:        n.ID,
		FolderID:  n.FolderID,
		Title:     n.Title,
		Body:      n.Body,
		CreatedBy: n.CreatedBy.String(),
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
	if n.MeetingDate != nil {
		d := n.MeetingDate.Format(note.DateLayout)
		resp.MeetingDate = &d
	}
	return resp
}

type eventResponse struct {
	ID        uuid.UUID `json:"id"`
	FolderID  uuid.UUID `json:"folderId"`
	Title     string    `json:"title"`
	Location  *string   `json:"location,omitempty"`
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
	AllDay    bool      `json:"allDay"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toEventResponse(e *domain.CalendarEvent) eventResponse {
	return eventResponse{
		ID:        e.ID,
		FolderID:  e.FolderID,
		Title:     e.Title,
		Location:  e.Location,
		StartsAt:  e.StartsAt,
		EndsAt:    e.EndsAt,
		AllDay:    e.AllDay,
		CreatedBy: e.CreatedBy.String(),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

type commentResponse struct {
	ID           uuid.UUID  `json:"id"`
	FolderID     uuid.UUID  `json:"folderId"`
	EvaluationID *uuid.UUID `json:"evaluationId,omitempty"`
	Author       string     `json:"author"`
	Body         string     `json:"body"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:           c.ID,
		FolderID:     c.FolderID,
		EvaluationID: c.EvaluationID,
		Author:       c.AuthorEmail.String(),
		Body:         c.Body,
		CreatedAt:    c.CreatedAt,
	}
}

// mapSlice converts a slice of domain values into response values.
func mapSlice[T, R any](items []T, fn func(*T) R) []R {
	out := make([]R, 0, len(items))
	for i := range items {
		out = append(out, fn(&items[i]))
	}
	return out
}
