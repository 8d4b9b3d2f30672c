package rest

import (
	"net/http"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/transport/middleware"
)

// Handlers groups every REST handler the router mounts.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Settings   *SettingsHandler
	Folder     *FolderHandler
	Evaluation *EvaluationHandler
	Note       *NoteHandler
	Event      *EventHandler
	Comment    *CommentHandler
}

// NewRouter registers all routes on a ServeMux. authLimit wraps the
// unauthenticated /auth endpoints.
func NewRouter(h Handlers, authLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /auth/register", authLimit(http.HandlerFunc(h.Auth.Register)))
	mux.Handle("POST /auth/login", authLimit(http.HandlerFunc(h.Auth.Login)))
	mux.HandleFunc("POST /auth/session/refresh", h.Auth.Refresh)
	mux.HandleFunc("GET /me", h.Auth.Me)
	mux.HandleFunc("GET /me/settings", h.Settings.Get)
	mux.HandleFunc("PATCH /me/settings", h.Settings.Update)

	mux.HandleFunc("GET /folders", h.Folder.List)
	mux.HandleFunc("POST /folders", h.Folder.Create)
	mux.HandleFunc("GET /folders/{id}", h.Folder.Get)
	mux.HandleFunc("PATCH /folders/{id}", h.Folder.Rename)
	mux.HandleFunc("DELETE /folders/{id}", h.Folder.Delete)

	mux.HandleFunc("GET /folders/{id}/members", h.Folder.ListMembers)
	mux.HandleFunc("POST /folders/{id}/members", h.Folder.AddMember)
	mux.HandleFunc("PATCH /folders/{id}/members/{email}", h.Folder.UpdateMember)
	mux.HandleFunc("DELETE /folders/{id}/members/{email}", h.Folder.RemoveMember)

	mux.HandleFunc("GET /folders/{id}/evaluations", h.Evaluation.List)
	mux.HandleFunc("POST /folders/{id}/evaluations", h.Evaluation.Create)
	mux.HandleFunc("GET /folders/{id}/evaluations/{evalID}", h.Evaluation.Get)
	mux.HandleFunc("PATCH /folders/{id}/evaluations/{evalID}", h.Evaluation.Update)
	mux.HandleFunc("DELETE /folders/{id}/evaluations/{evalID}", h.Evaluation.Delete)
	mux.HandleFunc("GET /folders/{id}/analytics", h.Evaluation.Analytics)

	mux.HandleFunc("GET /folders/{id}/notes", h.Note.List)
	mux.HandleFunc("POST /folders/{id}/notes", h.Note.Create)
	mux.HandleFunc("PATCH /folders/{id}/notes/{noteID}", h.Note.Update)
	mux.HandleFunc("DELETE /folders/{id}/notes/{noteID}", h.Note.Delete)

	mux.HandleFunc("GET /folders/{id}/events", h.Event.List)
	mux.HandleFunc("POST /folders/{id}/events", h.Event.Create)
	mux.HandleFunc("PATCH /folders/{id}/events/{eventID}", h.Event.Update)
	mux.HandleFunc("DELETE /folders/{id}/events/{eventID}", h.Event.Delete)

	mux.HandleFunc("GET /folders/{id}/comments", h.Comment.List)
	mux.HandleFunc("POST /folders/{id}/comments", h.Comment.Create)
	mux.HandleFunc("DELETE /folders/{id}/comments/{commentID}", h.Comment.Delete)

	return mux
}
