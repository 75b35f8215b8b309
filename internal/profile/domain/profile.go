package domain

import "time"

// Profile is the shared resource root: a seller/fundraiser identity that
// catalogs, campaigns, orders and payment methods hang off. Exactly one
// owner, set at creation, never transferable. The owner implicitly holds
// {read, write} and never has a Share row.
type Profile struct {
	ID             string
	OwnerAccountID string
	DisplayName    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
