package access

import (
	"context"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
	"github.com/RoniAntikainen/Taitoarvio-sub000/pkg/ctxutil"
)

// RequireIdentity returns the normalized identity of the authenticated caller.
func RequireIdentity(ctx context.Context) (domain.Identity, error) {
	_, id, err := RequirePrincipal(ctx)
	return id, err
}

// RequirePrincipal returns the caller's principal and normalized identity. A missing
// principal or an empty email is ErrUnauthorized.
func RequirePrincipal(ctx context.Context) (domain.Principal, domain.Identity, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return domain.Principal{}, "", domain.ErrUnauthorized
	}
	id := domain.NormalizeEmail(p.Email)
	if id.IsZero() {
		return domain.Principal{}, "", domain.ErrUnauthorized
	}
	return p, id, nil
}
