package domain

// Role is the access level of an identity on a folder. It is derived on every check
// from folder ownership and membership rows; it is never stored for the owner.
type Role string

const (
	RoleOwner   Role = "owner"
	RoleEditor  Role = "editor"
	RoleStudent Role = "student"
	RoleViewer  Role = "viewer"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleEditor, RoleStudent, RoleViewer:
		return true
	}
	return false
}

// IsMemberRole reports whether r can be stored on a membership row.
// Ownership is a property of the folder, never a membership.
func (r Role) IsMemberRole() bool {
	switch r {
	case RoleEditor, RoleStudent, RoleViewer:
		return true
	}
	return false
}

// Rank orders roles: owner 3, editor 2, student and viewer 1. Students are read-only
// like viewers but keep a separate label. Unknown roles rank 0.
func (r Role) Rank() int {
	switch r {
	case RoleOwner:
		return 3
	case RoleEditor:
		return 2
	case RoleStudent, RoleViewer:
		return 1
	}
	return 0
}

// AtLeast reports whether r grants at least the access of min.
func (r Role) AtLeast(min Role) bool {
	return r.Rank() >= min.Rank()
}

// RoleFromMembership maps a persisted membership role string to a Role.
// Only the exact strings "editor" and "student" are recognized; anything else,
// including an empty value, is a viewer.
func RoleFromMembership(stored string) Role {
	switch stored {
	case string(RoleEditor):
		return RoleEditor
	case string(RoleStudent):
		return RoleStudent
	default:
		return RoleViewer
	}
}

// SubscriptionStatus is the billing state synced from the payment provider.
type SubscriptionStatus string

const (
	SubscriptionFree     SubscriptionStatus = "FREE"
	SubscriptionTrial    SubscriptionStatus = "TRIAL"
	SubscriptionActive   SubscriptionStatus = "ACTIVE"
	SubscriptionPastDue  SubscriptionStatus = "PAST_DUE"
	SubscriptionCanceled SubscriptionStatus = "CANCELED"
)

func (s SubscriptionStatus) String() string { return string(s) }

func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionFree, SubscriptionTrial, SubscriptionActive, SubscriptionPastDue, SubscriptionCanceled:
		return true
	}
	return false
}

// GrantsPro reports whether the status unlocks paid features.
func (s SubscriptionStatus) GrantsPro() bool {
	return s == SubscriptionTrial || s == SubscriptionActive
}

// IsFree reports whether free-tier limits apply.
func (s SubscriptionStatus) IsFree() bool {
	return s == SubscriptionFree
}

// ParseSubscriptionStatus returns the status for s, or FREE when s is unknown or empty.
func ParseSubscriptionStatus(s string) SubscriptionStatus {
	st := SubscriptionStatus(s)
	if !st.IsValid() {
		return SubscriptionFree
	}
	return st
}
