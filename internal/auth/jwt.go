package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

// JWTManager issues and validates signed session tokens. A session token carries the
// whole principal, including the subscription snapshot taken when it was issued.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// sessionClaims extends standard JWT claims with the principal's identity and
// subscription snapshot.
type sessionClaims struct {
	jwt.RegisteredClaims
	Email            string           `json:"email"`
	Status           string           `json:"sub_status,omitempty"`
	TrialEndsAt      *jwt.NumericDate `json:"trial_ends_at,omitempty"`
	CurrentPeriodEnd *jwt.NumericDate `json:"period_end,omitempty"`
}

// IssueSession creates a signed HS256 JWT for the principal and returns it with its
// expiry time.
func (m *JWTManager) IssueSession(p domain.Principal) (string, time.Time, error) {
	if p.UserID == uuid.Nil {
		return "", time.Time{}, fmt.Errorf("principal has no user id")
	}

	now := m.now()
	expiresAt := now.Add(m.ttl)
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email:            string(domain.NormalizeEmail(p.Email)),
		Status:           p.Status.String(),
		TrialEndsAt:      toNumericDate(p.TrialEndsAt),
		CurrentPeriodEnd: toNumericDate(p.CurrentPeriodEnd),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// ValidateSession parses and validates a session token and returns the principal
// it carries.
func (m *JWTManager) ValidateSession(tokenString string) (domain.Principal, error) {
	if tokenString == "" {
		return domain.Principal{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return domain.Principal{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return domain.Principal{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return domain.Principal{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	return domain.Principal{
		UserID:           userID,
		Email:            claims.Email,
		Status:           domain.ParseSubscriptionStatus(claims.Status),
		TrialEndsAt:      fromNumericDate(claims.TrialEndsAt),
		CurrentPeriodEnd: fromNumericDate(claims.CurrentPeriodEnd),
	}, nil
}

func toNumericDate(t *time.Time) *jwt.NumericDate {
	if t == nil {
		return nil
	}
	return jwt.NewNumericDate(*t)
}

func fromNumericDate(d *jwt.NumericDate) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time.UTC()
	return &t
}
