package store

import (
	"context"
	"errors"
	"time"

	"github.com/fairstand/fairstand/internal/profile/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrConflict reports a conditional write that found the row in a state
	// other than the one the condition required (e.g. marking an invite
	// used when it already is).
	ErrConflict = errors.New("store: conflict")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. It exposes sub-repositories to keep concerns
// tidy and testable, and a WithTx closure for the few multi-step
// operations that must be atomic (invite redemption, profile cascade
// delete).
type Store interface {
	Accounts() Accounts
	Profiles() Profiles
	Shares() Shares
	Invites() Invites
	Catalogs() Catalogs
	Campaigns() Campaigns
	Orders() Orders
	PaymentMethods() PaymentMethods

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to handle transactions.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// UpsertAccount provisions an account row on first sign-in. Replaying
	// the same (id, email) pair is a no-op.
	UpsertAccount(ctx context.Context, a domain.Account) error

	// GetAccountByID returns an account by id.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByEmail is used when granting a share by email.
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)
}

type Profiles interface {
	// CreateProfile inserts a new profile (id is provided by app via ULID).
	CreateProfile(ctx context.Context, p domain.Profile) error

	// GetProfileByID returns a profile by id.
	GetProfileByID(ctx context.Context, id string) (domain.Profile, error)

	// ListProfilesByOwner returns profiles owned by the account, newest first.
	ListProfilesByOwner(ctx context.Context, ownerAccountID string) ([]domain.Profile, error)

	// ListProfilesSharedWithAccount returns profiles the account holds a
	// share on, newest first.
	ListProfilesSharedWithAccount(ctx context.Context, accountID string) ([]domain.Profile, error)

	// UpdateProfileName mutates display_name and bumps updated_at.
	UpdateProfileName(ctx context.Context, profileID, displayName string) error

	// DeleteProfile removes the profile row only; dependent rows are the
	// cascade's job.
	DeleteProfile(ctx context.Context, profileID string) error
}

type Shares interface {
	// UpsertShare creates or replaces the (profile, grantee) grant.
	// Replacement swaps the permission set wholesale, never unions it.
	UpsertShare(ctx context.Context, s domain.Share) error

	// GetShare returns the grant for (profileID, granteeAccountID).
	GetShare(ctx context.Context, profileID, granteeAccountID string) (domain.Share, error)

	// ListSharesForProfile returns all grants on a profile, oldest first.
	ListSharesForProfile(ctx context.Context, profileID string) ([]domain.Share, error)

	// DeleteShare removes a grant. Deleting an absent grant is a no-op.
	DeleteShare(ctx context.Context, profileID, granteeAccountID string) error

	// DeleteAllForProfile removes every grant on a profile (cascade).
	DeleteAllForProfile(ctx context.Context, profileID string) error
}

type Invites interface {
	// CreateInvite writes a new invite (code_hash is the SHA-256
	// fingerprint of the opaque invite code).
	CreateInvite(ctx context.Context, inv domain.Invite) error

	// GetInviteByCodeHash returns an invite by fingerprint regardless of
	// used/expired state, so callers can report the precise failure.
	GetInviteByCodeHash(ctx context.Context, hash string) (domain.Invite, error)

	// MarkInviteUsed flips used 0->1 with used_by set, but only if the
	// invite is currently unused. Returns ErrConflict when another
	// redeemer won the race.
	MarkInviteUsed(ctx context.Context, inviteID, usedByAccountID string) error

	// ListOpenInvitesForProfile returns invites that are unused and not
	// yet expired at the given instant.
	ListOpenInvitesForProfile(ctx context.Context, profileID string, now time.Time) ([]domain.Invite, error)

	// DeleteAllForProfile removes every invite on a profile (cascade).
	DeleteAllForProfile(ctx context.Context, profileID string) error

	// DeleteExpiredInvites is housekeeping; lazy read-time filtering makes
	// it optional for correctness.
	DeleteExpiredInvites(ctx context.Context, now time.Time) error
}

type Catalogs interface {
	CreateCatalog(ctx context.Context, c domain.Catalog) error
	GetCatalog(ctx context.Context, profileID, catalogID string) (domain.Catalog, error)
	ListCatalogsForProfile(ctx context.Context, profileID string) ([]domain.Catalog, error)
	UpdateCatalog(ctx context.Context, c domain.Catalog) error
	DeleteCatalog(ctx context.Context, profileID, catalogID string) error
	DeleteAllForProfile(ctx context.Context, profileID string) error
}

type Campaigns interface {
	CreateCampaign(ctx context.Context, c domain.Campaign) error
	GetCampaign(ctx context.Context, profileID, campaignID string) (domain.Campaign, error)
	ListCampaignsForProfile(ctx context.Context, profileID string) ([]domain.Campaign, error)
	UpdateCampaign(ctx context.Context, c domain.Campaign) error
	DeleteCampaign(ctx context.Context, profileID, campaignID string) error
	DeleteAllForProfile(ctx context.Context, profileID string) error
}

type Orders interface {
	CreateOrder(ctx context.Context, o domain.Order) error
	GetOrder(ctx context.Context, profileID, orderID string) (domain.Order, error)
	ListOrdersForProfile(ctx context.Context, profileID string) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, profileID, orderID string, status domain.OrderStatus) error
	DeleteAllForProfile(ctx context.Context, profileID string) error
}

type PaymentMethods interface {
	CreatePaymentMethod(ctx context.Context, m domain.PaymentMethod) error
	GetPaymentMethod(ctx context.Context, profileID, paymentMethodID string) (domain.PaymentMethod, error)
	ListPaymentMethodsForProfile(ctx context.Context, profileID string) ([]domain.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, profileID, paymentMethodID string) error
	DeleteAllForProfile(ctx context.Context, profileID string) error
}
