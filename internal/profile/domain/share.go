package domain

import "time"

// Share is a standing grant of permissions on a profile to another
// account. Unique per (ProfileID, GranteeAccountID); re-granting replaces
// the permission set rather than appending to it.
type Share struct {
	ProfileID        string
	GranteeAccountID string
	Permissions      PermissionSet // never empty
	CreatedBy        string        // profile owner at grant time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
