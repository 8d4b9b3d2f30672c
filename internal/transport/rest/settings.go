package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/user"
)

type settingsService interface {
	GetSettings(ctx context.Context) (*domain.UserSettings, error)
	UpdateSettings(ctx context.Context, input user.UpdateSettingsInput) (*domain.UserSettings, error)
}

// SettingsHandler serves /me/settings.
type SettingsHandler struct {
	svc settingsService
	log *slog.Logger
}

func NewSettingsHandler(svc settingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: logger.With("handler", "settings")}
}

type updateSettingsRequest struct {
	Timezone           *string `json:"timezone"`
	Locale             *string `json:"locale"`
	WeekStart          *int    `json:"weekStart"`
	EmailNotifications *bool   `json:"emailNotifications"`
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.GetSettings(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(settings))
}

func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	settings, err := h.svc.UpdateSettings(r.Context(), user.UpdateSettingsInput{
		Timezone:           req.Timezone,
		Locale:             req.Locale,
		WeekStart:          req.WeekStart,
		EmailNotifications: req.EmailNotifications,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(settings))
}
