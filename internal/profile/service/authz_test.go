package service

import (
	"context"
	"testing"
	"time"

	"github.com/fairstand/fairstand/internal/profile/domain"
	"github.com/fairstand/fairstand/internal/profile/store"
	"github.com/fairstand/fairstand/internal/profile/store/drivers/sqlite"
	"github.com/fairstand/fairstand/pkg/idx"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store          store.Store
	authorizer     *Authorizer
	guard          *Guard
	accounts       *AccountService
	profiles       *ProfileService
	shares         *ShareService
	invites        *InviteService
	catalogs       *CatalogService
	campaigns      *CampaignService
	orders         *OrderService
	paymentMethods *PaymentMethodService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithDSN(t, ":memory:")
}

func newTestEnvWithDSN(t *testing.T, dsn string) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())

	authorizer := &Authorizer{Store: st}
	guard := &Guard{Authorizer: authorizer}

	return &testEnv{
		store:          st,
		authorizer:     authorizer,
		guard:          guard,
		accounts:       &AccountService{Store: st},
		profiles:       &ProfileService{Store: st, Guard: guard},
		shares:         &ShareService{Store: st, Guard: guard},
		invites:        &InviteService{Store: st, Guard: guard},
		catalogs:       &CatalogService{Store: st, Guard: guard},
		campaigns:      &CampaignService{Store: st, Guard: guard},
		orders:         &OrderService{Store: st, Guard: guard},
		paymentMethods: &PaymentMethodService{Store: st, Guard: guard},
	}
}

func (e *testEnv) account(t *testing.T, email string) domain.Account {
	t.Helper()

	id := idx.New().String()
	require.NoError(t, e.accounts.EnsureAccount(context.Background(), id, email))
	return domain.Account{ID: id, Email: email}
}

func (e *testEnv) profile(t *testing.T, owner domain.Account) domain.Profile {
	t.Helper()

	p, err := e.profiles.CreateProfile(context.Background(), owner.ID, "Stand")
	require.NoError(t, err)
	return p
}

func (e *testEnv) share(t *testing.T, owner domain.Account, profileID string, grantee domain.Account, perms ...domain.Permission) domain.Share {
	t.Helper()

	share, err := e.shares.GrantShare(context.Background(), owner.ID, profileID, grantee.Email, domain.NewPermissionSet(perms...))
	require.NoError(t, err)
	return share
}

func TestAuthorizeOwnerHoldsEverything(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner := env.account(t, "owner@example.com")
	profile := env.profile(t, owner)

	for _, perm := range []domain.Permission{domain.PermissionRead, domain.PermissionWrite} {
		decision, err := env.authorizer.Authorize(ctx, owner.ID, profile.ID, perm)
		require.NoError(t, err)
		require.Equal(t, AllowOwner, decision)
	}
}

func TestAuthorizeShareGrantsExactlyItsSet(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner := env.account(t, "owner@example.com")
	grantee := env.account(t, "grantee@example.com")
	profile := env.profile(t, owner)
	env.share(t, owner, profile.ID, grantee, domain.PermissionWrite)

	decision, err := env.authorizer.Authorize(ctx, grantee.ID, profile.ID, domain.PermissionWrite)
	require.NoError(t, err)
	require.Equal(t, AllowShared, decision)

	// WRITE does not imply READ.
	decision, err = env.authorizer.Authorize(ctx, grantee.ID, profile.ID, domain.PermissionRead)
	require.NoError(t, err)
	require.Equal(t, Deny, decision)
}

func TestAuthorizeMissingProfileOrShareIsDeny(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner := env.account(t, "owner@example.com")
	stranger := env.account(t, "stranger@example.com")
	profile := env.profile(t, owner)

	decision, err := env.authorizer.Authorize(ctx, stranger.ID, profile.ID, domain.PermissionRead)
	require.NoError(t, err)
	require.Equal(t, Deny, decision)

	decision, err = env.authorizer.Authorize(ctx, owner.ID, "no-such-profile", domain.PermissionRead)
	require.NoError(t, err)
	require.Equal(t, Deny, decision)
}

func TestAuthorizeRevokeTakesEffectImmediately(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner := env.account(t, "owner@example.com")
	grantee := env.account(t, "grantee@example.com")
	profile := env.profile(t, owner)
	env.share(t, owner, profile.ID, grantee, domain.PermissionRead)

	decision, err := env.authorizer.Authorize(ctx, grantee.ID, profile.ID, domain.PermissionRead)
	require.NoError(t, err)
	require.True(t, decision.Allowed())

	require.NoError(t, env.shares.RevokeShare(ctx, owner.ID, profile.ID, grantee.ID))

	decision, err = env.authorizer.Authorize(ctx, grantee.ID, profile.ID, domain.PermissionRead)
	require.NoError(t, err)
	require.Equal(t, Deny, decision)
}

func TestGuardFailureModes(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner := env.account(t, "owner@example.com")
	reader := env.account(t, "reader@example.com")
	profile := env.profile(t, owner)
	env.share(t, owner, profile.ID, reader, domain.PermissionRead)

	t.Run("denied query reads as not found", func(t *testing.T) {
		err := env.guard.RequireRead(ctx, "stranger", profile.ID)
		require.ErrorIs(t, err, ErrProfileNotFound)
	})

	t.Run("denied mutation fails loudly", func(t *testing.T) {
		err := env.guard.RequireWrite(ctx, reader.ID, profile.ID)
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("owner-only ignores shares", func(t *testing.T) {
		_, err := env.guard.RequireOwner(ctx, reader.ID, profile.ID)
		require.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("missing profile is also not-owner", func(t *testing.T) {
		_, err := env.guard.RequireOwner(ctx, owner.ID, "no-such-profile")
		require.ErrorIs(t, err, ErrNotOwner)
	})
}

func TestGuardReadYourWrites(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner := env.account(t, "owner@example.com")
	grantee := env.account(t, "grantee@example.com")
	profile := env.profile(t, owner)

	// A share granted now must be visible on the very next check.
	env.share(t, owner, profile.ID, grantee, domain.PermissionRead, domain.PermissionWrite)
	require.NoError(t, env.guard.RequireRead(ctx, grantee.ID, profile.ID))
	require.NoError(t, env.guard.RequireWrite(ctx, grantee.ID, profile.ID))
}

func TestEnforcementAcrossResources(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner := env.account(t, "owner@example.com")
	reader := env.account(t, "reader@example.com")
	writer := env.account(t, "writer@example.com")
	stranger := env.account(t, "stranger@example.com")
	profile := env.profile(t, owner)
	env.share(t, owner, profile.ID, reader, domain.PermissionRead)
	env.share(t, owner, profile.ID, writer, domain.PermissionRead, domain.PermissionWrite)

	catalog, err := env.catalogs.CreateCatalog(ctx, owner.ID, profile.ID, "Merch", "")
	require.NoError(t, err)

	t.Run("reader can list but not mutate", func(t *testing.T) {
		list, err := env.catalogs.ListCatalogs(ctx, reader.ID, profile.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)

		_, err = env.catalogs.CreateCatalog(ctx, reader.ID, profile.ID, "Nope", "")
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("writer can mutate every resource type", func(t *testing.T) {
		campaign, err := env.campaigns.CreateCampaign(ctx, writer.ID, profile.ID, catalog.ID, "Spring drive", 50_000)
		require.NoError(t, err)

		_, err = env.orders.CreateOrder(ctx, writer.ID, profile.ID, campaign.ID, "buyer@example.com", 1_500)
		require.NoError(t, err)

		_, err = env.paymentMethods.CreatePaymentMethod(ctx, writer.ID, profile.ID, domain.PaymentMethodBank, "Main account", "1234")
		require.NoError(t, err)
	})

	t.Run("stranger gets read as missing, lists as empty", func(t *testing.T) {
		_, err := env.orders.GetOrder(ctx, stranger.ID, profile.ID, "whatever")
		require.ErrorIs(t, err, ErrProfileNotFound)

		list, err := env.catalogs.ListCatalogs(ctx, stranger.ID, profile.ID)
		require.NoError(t, err)
		require.Empty(t, list)
	})

	t.Run("stranger mutations are unauthorized", func(t *testing.T) {
		_, err := env.campaigns.CreateCampaign(ctx, stranger.ID, profile.ID, "", "Sneaky", 1)
		require.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestDeniedListsAnswerEmpty(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner := env.account(t, "owner@example.com")
	stranger := env.account(t, "stranger@example.com")
	writeOnly := env.account(t, "writeonly@example.com")
	profile := env.profile(t, owner)
	env.share(t, owner, profile.ID, writeOnly, domain.PermissionWrite)

	catalog, err := env.catalogs.CreateCatalog(ctx, owner.ID, profile.ID, "Merch", "")
	require.NoError(t, err)
	campaign, err := env.campaigns.CreateCampaign(ctx, owner.ID, profile.ID, catalog.ID, "Drive", 1_000)
	require.NoError(t, err)
	_, err = env.orders.CreateOrder(ctx, owner.ID, profile.ID, campaign.ID, "buyer@example.com", 500)
	require.NoError(t, err)
	_, err = env.paymentMethods.CreatePaymentMethod(ctx, owner.ID, profile.ID, domain.PaymentMethodCard, "Visa", "4242")
	require.NoError(t, err)

	// Denied lists answer with an empty collection, never an error.
	for _, accountID := range []string{stranger.ID, writeOnly.ID} {
		catalogs, err := env.catalogs.ListCatalogs(ctx, accountID, profile.ID)
		require.NoError(t, err)
		require.Empty(t, catalogs)

		campaigns, err := env.campaigns.ListCampaigns(ctx, accountID, profile.ID)
		require.NoError(t, err)
		require.Empty(t, campaigns)

		orders, err := env.orders.ListOrders(ctx, accountID, profile.ID)
		require.NoError(t, err)
		require.Empty(t, orders)

		methods, err := env.paymentMethods.ListPaymentMethods(ctx, accountID, profile.ID)
		require.NoError(t, err)
		require.Empty(t, methods)
	}

	// Single-item gets keep reading as absent.
	_, err = env.catalogs.GetCatalog(ctx, writeOnly.ID, profile.ID, catalog.ID)
	require.ErrorIs(t, err, ErrProfileNotFound)
}

func TestHousekeepingPurgesExpiredInvites(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner := env.account(t, "owner@example.com")
	profile := env.profile(t, owner)

	now := time.Now().UTC()
	expired := domain.Invite{
		ID:          idx.New().String(),
		CodeHash:    "stale",
		ProfileID:   profile.ID,
		Permissions: domain.NewPermissionSet(domain.PermissionRead),
		CreatedBy:   owner.ID,
		ExpiresAt:   now.Add(-time.Minute),
		CreatedAt:   now.Add(-time.Hour),
		UpdatedAt:   now.Add(-time.Hour),
	}
	require.NoError(t, env.store.Invites().CreateInvite(ctx, expired))

	require.NoError(t, env.store.Invites().DeleteExpiredInvites(ctx, now))

	_, err := env.store.Invites().GetInviteByCodeHash(ctx, "stale")
	require.ErrorIs(t, err, store.ErrNotFound)
}
