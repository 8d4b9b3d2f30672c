package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Email is stored normalized.
type User struct {
	ID           uuid.UUID
	Email        Identity
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserSettings holds per-user display and notification preferences.
type UserSettings struct {
	Email              Identity
	Timezone           string
	Locale             string
	WeekStart          int // 0 = Sunday
	EmailNotifications bool
	UpdatedAt          time.Time
}

// DefaultUserSettings returns UserSettings with sensible defaults.
func DefaultUserSettings(email Identity) UserSettings {
	return UserSettings{
		Email:              email,
		Timezone:           "UTC",
		Locale:             "en",
		WeekStart:          1,
		EmailNotifications: true,
	}
}

// Subscription is the billing state written by the external billing sync.
type Subscription struct {
	Email            Identity
	Status           SubscriptionStatus
	TrialEndsAt      *time.Time
	CurrentPeriodEnd *time.Time
	UpdatedAt        time.Time
}

// Entitlement is the projection of a session's subscription snapshot.
type Entitlement struct {
	Status           SubscriptionStatus
	HasPro           bool
	TrialEndsAt      *time.Time
	CurrentPeriodEnd *time.Time
}
