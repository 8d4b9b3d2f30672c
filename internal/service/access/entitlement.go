package access

import "github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"

// EvaluateEntitlement projects the subscription snapshot carried by the principal.
// It never touches storage.
func EvaluateEntitlement(p domain.Principal) domain.Entitlement {
	status := domain.ParseSubscriptionStatus(p.Status.String())
	return domain.Entitlement{
		Status:           status,
		HasPro:           status.GrantsPro(),
		TrialEndsAt:      p.TrialEndsAt,
		CurrentPeriodEnd: p.CurrentPeriodEnd,
	}
}

// RequirePro fails with ErrSubscriptionRequired unless the principal has paid access.
func RequirePro(p domain.Principal) error {
	if !EvaluateEntitlement(p).HasPro {
		return domain.ErrSubscriptionRequired
	}
	return nil
}
