package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/access"
)

// GetSettings returns the caller's settings, or the defaults when none are stored.
func (s *Service) GetSettings(ctx context.Context) (*domain.UserSettings, error) {
	id, err := access.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.GetSettings(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.GetSettings: %w", err)
	}

	return settings, nil
}

// UpdateSettings applies a partial update to the caller's settings.
func (s *Service) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*domain.UserSettings, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Resolve identity
	id, err := access.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	var updated *domain.UserSettings

	// Step 3: Read-modify-write in one transaction
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.settings.GetSettings(txCtx, id)
		if err != nil {
			return fmt.Errorf("get current settings: %w", err)
		}

		next := applySettingsChanges(*current, input)
		next.Email = id

		updated, err = s.settings.UpsertSettings(txCtx, next)
		if err != nil {
			return fmt.Errorf("upsert settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateSettings: %w", err)
	}

	s.log.InfoContext(ctx, "settings updated",
		slog.String("identity", id.String()))

	return updated, nil
}

// applySettingsChanges merges the input changes into current settings.
func applySettingsChanges(current domain.UserSettings, input UpdateSettingsInput) domain.UserSettings {
	result := current

	if input.Timezone != nil {
		result.Timezone = strings.TrimSpace(*input.Timezone)
	}
	if input.Locale != nil {
		result.Locale = strings.TrimSpace(*input.Locale)
	}
	if input.WeekStart != nil {
		result.WeekStart = *input.WeekStart
	}
	if input.EmailNotifications != nil {
		result.EmailNotifications = *input.EmailNotifications
	}

	return result
}
