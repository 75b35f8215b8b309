package domain

import "time"

// Account is an authenticated identity minted by the external identity
// provider. Rows are provisioned on first sign-in and immutable after
// that; email changes are handled upstream.
type Account struct {
	ID        string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
