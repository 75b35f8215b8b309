package domain

import "time"

// PaymentMethodKind identifies how a profile receives payouts.
type PaymentMethodKind string

const (
	PaymentMethodBank   PaymentMethodKind = "bank"
	PaymentMethodCard   PaymentMethodKind = "card"
	PaymentMethodPaypal PaymentMethodKind = "paypal"
)

// PaymentMethod is a payout destination attached to a profile. Only a
// display label and last-four digits are kept; the full instrument lives
// with the payment processor.
type PaymentMethod struct {
	ID        string
	ProfileID string
	Kind      PaymentMethodKind
	Label     string
	Last4     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
