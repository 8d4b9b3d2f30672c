package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/access"
)

// RefreshSession re-reads the caller's subscription and issues a fresh session, so
// billing changes show up without signing in again.
// Returns ErrUnauthorized if the user no longer exists.
func (s *Service) RefreshSession(ctx context.Context) (*Session, error) {
	principal, _, err := access.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "session refresh for deleted user",
				slog.String("user_id", principal.UserID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.RefreshSession get user: %w", err)
	}

	session, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.RefreshSession: %w", err)
	}

	if session.Entitlement.Status != access.EvaluateEntitlement(principal).Status {
		s.log.InfoContext(ctx, "entitlement changed",
			slog.String("user_id", user.ID.String()),
			slog.String("from", principal.Status.String()),
			slog.String("to", session.Entitlement.Status.String()))
	}

	return session, nil
}

// Me returns the caller's user record and the entitlement carried by their session.
func (s *Service) Me(ctx context.Context) (*MeResult, error) {
	principal, _, err := access.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Me get user: %w", err)
	}

	return &MeResult{
		User:        user,
		Entitlement: access.EvaluateEntitlement(principal),
	}, nil
}
