package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Identity is a normalized (trimmed, lowercased) email address. It is the only key
// used for access decisions.
type Identity string

func (i Identity) String() string { return string(i) }

// IsZero reports whether the identity is empty.
func (i Identity) IsZero() bool { return i == "" }

// NormalizeEmail prepares an email for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
func NormalizeEmail(raw string) Identity {
	return Identity(strings.ToLower(strings.TrimSpace(raw)))
}

// Principal is the authenticated caller as materialized into the session at sign-in.
// Subscription fields are a snapshot of the billing state at that moment.
type Principal struct {
	UserID           uuid.UUID
	Email            string
	Status           SubscriptionStatus
	TrialEndsAt      *time.Time
	CurrentPeriodEnd *time.Time
}
