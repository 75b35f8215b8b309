package domain

import "time"

// Invite is a single-use, expiring code that mints a Share when redeemed
// by a non-owner account. Only the code's SHA-256 fingerprint is stored;
// the raw code is returned once at mint time. Immutable except for the
// used flag, which flips false->true exactly once.
type Invite struct {
	ID          string
	CodeHash    string
	ProfileID   string
	Permissions PermissionSet
	CreatedBy   string
	ExpiresAt   time.Time
	Used        bool
	UsedBy      string // empty until redeemed
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Expired reports whether the invite is past its expiry at the given time.
func (i Invite) Expired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}
