package domain

import (
	"time"

	"github.com/google/uuid"
)

// Folder is a shared workspace for one athlete or team. It is owned by exactly one
// identity; the owner never appears as a membership row.
type Folder struct {
	ID        uuid.UUID
	Name      string
	OwnerID   Identity
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy reports whether id owns the folder. Both sides are normalized.
func (f *Folder) IsOwnedBy(id Identity) bool {
	return NormalizeEmail(f.OwnerID.String()) == NormalizeEmail(id.String())
}

// FolderMembership grants delegated, non-owner access. Unique per (FolderID, UserEmail).
type FolderMembership struct {
	FolderID  uuid.UUID
	UserEmail Identity
	Role      Role
	CreatedAt time.Time
}

// FolderWithRole is a folder as seen by a particular caller.
type FolderWithRole struct {
	Folder
	Role Role
}
