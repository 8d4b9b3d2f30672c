package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/auth"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/calendar"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/comment"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/evaluation"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/folder"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/note"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/user"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/transport/middleware"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubAuth struct {
	registerInput auth.RegisterInput
	session       *auth.Session
	err           error
}

func (s *stubAuth) Register(_ context.Context, in auth.RegisterInput) (*auth.Session, error) {
	s.registerInput = in
	return s.session, s.err
}
func (s *stubAuth) Login(context.Context, auth.LoginInput) (*auth.Session, error) {
	return s.session, s.err
}
func (s *stubAuth) RefreshSession(context.Context) (*auth.Session, error) { return s.session, s.err }
func (s *stubAuth) Me(context.Context) (*auth.MeResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &auth.MeResult{User: s.session.User, Entitlement: s.session.Entitlement}, nil
}

type stubSettings struct{}

func (stubSettings) GetSettings(context.Context) (*domain.UserSettings, error) {
	s := domain.DefaultUserSettings("coach@example.com")
	return &s, nil
}
func (stubSettings) UpdateSettings(_ context.Context, in user.UpdateSettingsInput) (*domain.UserSettings, error) {
	s := domain.DefaultUserSettings("coach@example.com")
	if in.Timezone != nil {
		s.Timezone = *in.Timezone
	}
	return &s, nil
}

type stubFolders struct {
	created    folder.CreateInput
	removed    string
	createErr  error
	getErr     error
	folderRole domain.Role
}

func (s *stubFolders) CreateFolder(_ context.Context, in folder.CreateInput) (*domain.Folder, error) {
	s.created = in
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &domain.Folder{ID: uuid.New(), Name: in.Name, OwnerID: "coach@example.com"}, nil
}
func (s *stubFolders) ListFolders(context.Context) ([]domain.FolderWithRole, error) {
	return []domain.FolderWithRole{{Folder: domain.Folder{ID: uuid.New(), Name: "Team"}, Role: domain.RoleStudent}}, nil
}
func (s *stubFolders) GetFolder(_ context.Context, id uuid.UUID) (*domain.FolderWithRole, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &domain.FolderWithRole{Folder: domain.Folder{ID: id, Name: "Team"}, Role: s.folderRole}, nil
}
func (s *stubFolders) RenameFolder(_ context.Context, in folder.RenameInput) (*domain.Folder, error) {
	return &domain.Folder{ID: in.FolderID, Name: in.Name}, nil
}
func (s *stubFolders) DeleteFolder(context.Context, uuid.UUID) error { return nil }
func (s *stubFolders) ListMembers(context.Context, uuid.UUID) ([]domain.FolderMembership, error) {
	return nil, nil
}
func (s *stubFolders) AddMember(_ context.Context, in folder.MemberInput) (*domain.FolderMembership, error) {
	return &domain.FolderMembership{FolderID: in.FolderID, UserEmail: domain.NormalizeEmail(in.Email), Role: in.Role}, nil
}
func (s *stubFolders) UpdateMemberRole(_ context.Context, in folder.MemberInput) (*domain.FolderMembership, error) {
	return &domain.FolderMembership{FolderID: in.FolderID, UserEmail: domain.NormalizeEmail(in.Email), Role: in.Role}, nil
}
func (s *stubFolders) RemoveMember(_ context.Context, _ uuid.UUID, email string) error {
	s.removed = email
	return nil
}

type stubEvaluations struct {
	created evaluation.CreateInput
	listed  evaluation.ListInput
	updated evaluation.UpdateInput
	err     error
}

func (s *stubEvaluations) CreateEvaluation(_ context.Context, in evaluation.CreateInput) (*domain.Evaluation, error) {
	s.created = in
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Evaluation{ID: uuid.New(), FolderID: in.FolderID, Subject: in.Subject, Data: in.Data}, nil
}
func (s *stubEvaluations) ListEvaluations(_ context.Context, in evaluation.ListInput) ([]domain.Evaluation, error) {
	s.listed = in
	return []domain.Evaluation{}, s.err
}
func (s *stubEvaluations) GetEvaluation(_ context.Context, folderID, id uuid.UUID) (*domain.Evaluation, error) {
	return &domain.Evaluation{ID: id, FolderID: folderID, Data: `{"score":7}`}, s.err
}
func (s *stubEvaluations) UpdateEvaluation(_ context.Context, in evaluation.UpdateInput) (*domain.Evaluation, error) {
	s.updated = in
	return &domain.Evaluation{ID: in.ID, FolderID: in.FolderID, Data: `{}`}, s.err
}
func (s *stubEvaluations) DeleteEvaluation(context.Context, uuid.UUID, uuid.UUID) error { return s.err }
func (s *stubEvaluations) GetAnalytics(context.Context, uuid.UUID) (*domain.Analytics, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Analytics{AvgAll: 7, Distribution: [11]int{7: 1}}, nil
}

type stubNotes struct{ updated note.UpdateInput }

func (s *stubNotes) ListNotes(context.Context, uuid.UUID) ([]domain.MeetingNote, error) {
	d := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return []domain.MeetingNote{{ID: uuid.New(), Title: "Kickoff", MeetingDate: &d}}, nil
}
func (s *stubNotes) CreateNote(_ context.Context, in note.CreateInput) (*domain.MeetingNote, error) {
	return &domain.MeetingNote{ID: uuid.New(), FolderID: in.FolderID, Title: in.Title}, nil
}
func (s *stubNotes) UpdateNote(_ context.Context, in note.UpdateInput) (*domain.MeetingNote, error) {
	s.updated = in
	return &domain.MeetingNote{ID: in.ID, FolderID: in.FolderID}, nil
}
func (s *stubNotes) DeleteNote(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type stubEvents struct{ listed calendar.RangeInput }

func (s *stubEvents) ListEvents(_ context.Context, in calendar.RangeInput) ([]domain.CalendarEvent, error) {
	s.listed = in
	return nil, nil
}
func (s *stubEvents) CreateEvent(_ context.Context, in calendar.CreateInput) (*domain.CalendarEvent, error) {
	return &domain.CalendarEvent{ID: uuid.New(), FolderID: in.FolderID, Title: in.Title}, nil
}
func (s *stubEvents) UpdateEvent(_ context.Context, in calendar.UpdateInput) (*domain.CalendarEvent, error) {
	return &domain.CalendarEvent{ID: in.ID, FolderID: in.FolderID}, nil
}
func (s *stubEvents) DeleteEvent(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type stubComments struct{ listedEval *uuid.UUID }

func (s *stubComments) AddComment(_ context.Context, in comment.AddInput) (*domain.Comment, error) {
	return &domain.Comment{ID: uuid.New(), FolderID: in.FolderID, EvaluationID: in.EvaluationID, Body: in.Body}, nil
}
func (s *stubComments) ListComments(_ context.Context, _ uuid.UUID, evalID *uuid.UUID) ([]domain.Comment, error) {
	s.listedEval = evalID
	return nil, nil
}
func (s *stubComments) DeleteComment(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type fixture struct {
	auth        *stubAuth
	folders     *stubFolders
	evaluations *stubEvaluations
	notes       *stubNotes
	events      *stubEvents
	comments    *stubComments
	handler     http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := discardLogger()
	f := &fixture{
		auth: &stubAuth{session: &auth.Session{
			AccessToken: "tok",
			User:        &domain.User{ID: uuid.New(), Email: "coach@example.com", Name: "Coach"},
			Entitlement: domain.Entitlement{Status: domain.SubscriptionFree},
		}},
		folders:     &stubFolders{folderRole: domain.RoleEditor},
		evaluations: &stubEvaluations{},
		notes:       &stubNotes{},
		events:      &stubEvents{},
		comments:    &stubComments{},
	}
	noLimit := middleware.Chain()
	f.handler = NewRouter(Handlers{
		Health:     NewHealthHandler(&dbPingerMock{}, nil, "test"),
		Auth:       NewAuthHandler(f.auth, log),
		Settings:   NewSettingsHandler(stubSettings{}, log),
		Folder:     NewFolderHandler(f.folders, log),
		Evaluation: NewEvaluationHandler(f.evaluations, log),
		Note:       NewNoteHandler(f.notes, log),
		Event:      NewEventHandler(f.events, log),
		Comment:    NewCommentHandler(f.comments, log),
	}, noLimit)
	return f
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

// ---------------------------------------------------------------------------
// Auth
// ---------------------------------------------------------------------------

func TestAuthHandler_Register(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/auth/register", `{"email":"Coach@Example.com","password":"secret123","name":"Coach"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody[sessionResponse](t, rec)
	assert.Equal(t, "tok", resp.AccessToken)
	assert.Equal(t, "FREE", resp.Entitlement.Status)
	assert.False(t, resp.Entitlement.HasPro)
	assert.Equal(t, "Coach@Example.com", f.auth.registerInput.Email)
}

func TestAuthHandler_LoginUnauthorized(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.auth.err = domain.ErrUnauthorized

	rec := f.do(t, http.MethodPost, "/auth/login", `{"email":"a@b.c","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_InvalidBody(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/auth/login", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/me", "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[meResponse](t, rec)
	assert.Equal(t, "coach@example.com", resp.User.Email)
}

func TestSettingsHandler_Update(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPatch, "/me/settings", `{"timezone":"Europe/Helsinki"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[settingsResponse](t, rec)
	assert.Equal(t, "Europe/Helsinki", resp.Timezone)
}

// ---------------------------------------------------------------------------
// Folders
// ---------------------------------------------------------------------------

func TestFolderHandler_CreateReturnsOwnerRole(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/folders", `{"name":"Athlete A"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody[folderResponse](t, rec)
	assert.Equal(t, "owner", resp.Role)
	assert.Equal(t, "Athlete A", f.folders.created.Name)
}

func TestFolderHandler_CreateLimitExceeded(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.folders.createErr = domain.NewLimitExceededError("folder", 1)

	rec := f.do(t, http.MethodPost, "/folders", `{"name":"Second"}`)

	require.Equal(t, http.StatusForbidden, rec.Code)
	resp := decodeBody[errorResponse](t, rec)
	assert.Equal(t, "limit_exceeded", resp.Code)
	assert.Equal(t, "max 1 folder", resp.Error)
}

func TestFolderHandler_GetNoAccessIs404(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.folders.getErr = domain.ErrNoAccess

	rec := f.do(t, http.MethodGet, "/folders/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFolderHandler_MalformedIDIs404(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/folders/not-a-uuid", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFolderHandler_ListIncludesRole(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/folders", "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[[]folderResponse](t, rec)
	require.Len(t, resp, 1)
	assert.Equal(t, "student", resp[0].Role)
}

func TestFolderHandler_RemoveMemberDecodesEmail(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodDelete, "/folders/"+uuid.NewString()+"/members/athlete%2Bx%40example.com", "")

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "athlete+x@example.com", f.folders.removed)
}

func TestFolderHandler_AddMember(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/folders/"+uuid.NewString()+"/members", `{"email":"Athlete@Example.com","role":"student"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody[memberResponse](t, rec)
	assert.Equal(t, "athlete@example.com", resp.Email)
	assert.Equal(t, "student", resp.Role)
}

// ---------------------------------------------------------------------------
// Evaluations
// ---------------------------------------------------------------------------

func TestEvaluationHandler_CreateKeepsRawData(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/folders/"+uuid.NewString()+"/evaluations",
		`{"subject":"Sprint","data":{"speed":8,"notes":["ok"]}}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"speed":8,"notes":["ok"]}`, f.evaluations.created.Data)

	resp := decodeBody[evaluationResponse](t, rec)
	assert.JSONEq(t, `{"speed":8,"notes":["ok"]}`, string(resp.Data))
}

func TestEvaluationHandler_ListLimit(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/folders/"+uuid.NewString()+"/evaluations?limit=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, f.evaluations.listed.Limit)
}

func TestEvaluationHandler_ListBadLimit(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/folders/"+uuid.NewString()+"/evaluations?limit=abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEvaluationHandler_UpdateOnlySubject(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPatch, "/folders/"+uuid.NewString()+"/evaluations/"+uuid.NewString(), `{"subject":"Renamed"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, f.evaluations.updated.Subject)
	assert.Equal(t, "Renamed", *f.evaluations.updated.Subject)
	assert.Nil(t, f.evaluations.updated.Data)
}

func TestEvaluationHandler_AnalyticsRequiresSubscription(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.evaluations.err = domain.ErrSubscriptionRequired

	rec := f.do(t, http.MethodGet, "/folders/"+uuid.NewString()+"/analytics", "")

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
}

func TestEvaluationHandler_Analytics(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/folders/"+uuid.NewString()+"/analytics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[analyticsResponse](t, rec)
	assert.Equal(t, 7.0, resp.AvgAll)
	assert.Equal(t, 1, resp.Distribution[7])
	assert.NotNil(t, resp.Trend)
}

// ---------------------------------------------------------------------------
// Notes, events, comments
// ---------------------------------------------------------------------------

func TestNoteHandler_ListFormatsDate(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/folders/"+uuid.NewString()+"/notes", "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[[]noteResponse](t, rec)
	require.Len(t, resp, 1)
	require.NotNil(t, resp[0].MeetingDate)
	assert.Equal(t, "2026-03-01", *resp[0].MeetingDate)
}

func TestNoteHandler_UpdateClearsDate(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPatch, "/folders/"+uuid.NewString()+"/notes/"+uuid.NewString(), `{"meetingDate":""}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, f.notes.updated.MeetingDate)
	assert.Equal(t, "", *f.notes.updated.MeetingDate)
	assert.Nil(t, f.notes.updated.Title)
}

func TestEventHandler_ListPassesRange(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/folders/"+uuid.NewString()+"/events?from=2026-01-01T00:00:00Z&to=2026-02-01T00:00:00Z", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2026-01-01T00:00:00Z", f.events.listed.From)
	assert.Equal(t, "2026-02-01T00:00:00Z", f.events.listed.To)
}

func TestCommentHandler_ListFilter(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	evalID := uuid.New()

	rec := f.do(t, http.MethodGet, "/folders/"+uuid.NewString()+"/comments?evaluation_id="+evalID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, f.comments.listedEval)
	assert.Equal(t, evalID, *f.comments.listedEval)
}

func TestCommentHandler_ListBadFilter(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/folders/"+uuid.NewString()+"/comments?evaluation_id=nope", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPut, "/folders", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
