package service

import (
	"context"
	"testing"
	"time"

	"github.com/fairstand/fairstand/internal/profile/domain"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetProfile(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner := env.account(t, "owner@example.com")

	_, err := env.profiles.CreateProfile(ctx, owner.ID, "   ")
	require.ErrorIs(t, err, ErrInvalidProfileRequest)

	created, err := env.profiles.CreateProfile(ctx, owner.ID, "My Stand")
	require.NoError(t, err)
	require.Equal(t, owner.ID, created.OwnerAccountID)

	got, err := env.profiles.GetProfile(ctx, owner.ID, created.ID)
	require.NoError(t, err)
	require.Equal(t, "My Stand", got.DisplayName)
}

func TestListVisibleProfiles(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner := env.account(t, "owner@example.com")
	grantee := env.account(t, "grantee@example.com")

	mine := env.profile(t, owner)
	theirs, err := env.profiles.CreateProfile(ctx, grantee.ID, "Their Stand")
	require.NoError(t, err)
	env.share(t, owner, mine.ID, grantee, domain.PermissionRead)

	visible, err := env.profiles.ListVisibleProfiles(ctx, grantee.ID)
	require.NoError(t, err)
	require.Len(t, visible.Owned, 1)
	require.Equal(t, theirs.ID, visible.Owned[0].ID)
	require.Len(t, visible.Shared, 1)
	require.Equal(t, mine.ID, visible.Shared[0].ID)
}

func TestRenameProfileOwnerOnly(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner := env.account(t, "owner@example.com")
	writer := env.account(t, "writer@example.com")
	profile := env.profile(t, owner)

	// Even a full READ+WRITE share does not reach the profile itself.
	env.share(t, owner, profile.ID, writer, domain.PermissionRead, domain.PermissionWrite)

	_, err := env.profiles.RenameProfile(ctx, writer.ID, profile.ID, "Taken Over")
	require.ErrorIs(t, err, ErrNotOwner)

	got, err := env.profiles.GetProfile(ctx, owner.ID, profile.ID)
	require.NoError(t, err)
	require.Equal(t, "Stand", got.DisplayName)

	renamed, err := env.profiles.RenameProfile(ctx, owner.ID, profile.ID, "Renamed Stand")
	require.NoError(t, err)
	require.Equal(t, "Renamed Stand", renamed.DisplayName)
}

func TestDeleteProfileCascades(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner := env.account(t, "owner@example.com")
	grantee := env.account(t, "grantee@example.com")
	profile := env.profile(t, owner)
	env.share(t, owner, profile.ID, grantee, domain.PermissionRead, domain.PermissionWrite)

	_, _, err := env.invites.MintInvite(ctx, owner.ID, profile.ID, domain.NewPermissionSet(domain.PermissionRead), time.Now().Add(time.Hour))
	require.NoError(t, err)

	catalog, err := env.catalogs.CreateCatalog(ctx, owner.ID, profile.ID, "Merch", "")
	require.NoError(t, err)
	campaign, err := env.campaigns.CreateCampaign(ctx, owner.ID, profile.ID, catalog.ID, "Drive", 1_000)
	require.NoError(t, err)
	_, err = env.orders.CreateOrder(ctx, owner.ID, profile.ID, campaign.ID, "buyer@example.com", 500)
	require.NoError(t, err)
	_, err = env.paymentMethods.CreatePaymentMethod(ctx, owner.ID, profile.ID, domain.PaymentMethodCard, "Visa", "4242")
	require.NoError(t, err)

	t.Run("only the owner may delete", func(t *testing.T) {
		err := env.profiles.DeleteProfile(ctx, grantee.ID, profile.ID)
		require.ErrorIs(t, err, ErrNotOwner)
	})

	require.NoError(t, env.profiles.DeleteProfile(ctx, owner.ID, profile.ID))

	t.Run("profile and grants are gone", func(t *testing.T) {
		_, err := env.profiles.GetProfile(ctx, owner.ID, profile.ID)
		require.ErrorIs(t, err, ErrProfileNotFound)

		// The previous grantee sees nothing either.
		catalogs, err := env.catalogs.ListCatalogs(ctx, grantee.ID, profile.ID)
		require.NoError(t, err)
		require.Empty(t, catalogs)

		visible, err := env.profiles.ListVisibleProfiles(ctx, grantee.ID)
		require.NoError(t, err)
		require.Empty(t, visible.Shared)
	})

	t.Run("dependent rows are gone", func(t *testing.T) {
		shares, err := env.store.Shares().ListSharesForProfile(ctx, profile.ID)
		require.NoError(t, err)
		require.Empty(t, shares)

		invites, err := env.store.Invites().ListOpenInvitesForProfile(ctx, profile.ID, time.Now().UTC())
		require.NoError(t, err)
		require.Empty(t, invites)

		catalogs, err := env.store.Catalogs().ListCatalogsForProfile(ctx, profile.ID)
		require.NoError(t, err)
		require.Empty(t, catalogs)

		orders, err := env.store.Orders().ListOrdersForProfile(ctx, profile.ID)
		require.NoError(t, err)
		require.Empty(t, orders)
	})

	t.Run("deleting again reports not-owner", func(t *testing.T) {
		err := env.profiles.DeleteProfile(ctx, owner.ID, profile.ID)
		require.ErrorIs(t, err, ErrNotOwner)
	})
}
