package domain

import "time"

// Catalog is a profile-scoped listing of goods a seller offers.
type Catalog struct {
	ID          string
	ProfileID   string
	Name        string
	Description string
	Published   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
