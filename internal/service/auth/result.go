package auth

import (
	"time"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

// Session is returned by Register, Login and RefreshSession.
type Session struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
	Entitlement domain.Entitlement
}

// MeResult is the caller's identity and entitlement.
type MeResult struct {
	User        *domain.User
	Entitlement domain.Entitlement
}
