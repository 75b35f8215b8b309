package profile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fairstand/fairstand/pkg/profilesdk"
)

// TestProfileSharingFlow walks the main sharing story: an owner creates
// a profile, grants READ to another account by email, and the grantee
// sees it until the grant is revoked.
func TestProfileSharingFlow(t *testing.T) {
	baseURL, cleanup := setupProfileContainer(t)
	defer cleanup()
	ctx := t.Context()

	owner := newClientFor(t, baseURL, "acct-owner", "owner@example.com")
	grantee := newClientFor(t, baseURL, "acct-grantee", "grantee@example.com")

	// Owner creates a profile.
	profile, err := owner.CreateProfile(ctx, profilesdk.CreateProfileRequest{
		DisplayName: "Weekend Market Stand",
	})
	require.NoError(t, err)
	require.Equal(t, "acct-owner", profile.OwnerAccountID)

	// Before any grant the grantee cannot see it, and the response does
	// not reveal whether the profile exists.
	_, err = grantee.GetProfile(ctx, profile.ID)
	assertAPIErrorCode(t, err, profilesdk.ErrorCodeNotFound, "ungrant access should read as not found")

	// Owner grants READ by email.
	share, err := owner.GrantShare(ctx, profile.ID, profilesdk.GrantShareRequest{
		GranteeEmail: "grantee@example.com",
		Permissions:  []string{profilesdk.PermissionRead},
	})
	require.NoError(t, err)
	require.Equal(t, "acct-grantee", share.GranteeAccountID)
	require.Equal(t, []string{profilesdk.PermissionRead}, share.Permissions)

	// Grantee can now read the profile and sees it in the shared list.
	got, err := grantee.GetProfile(ctx, profile.ID)
	require.NoError(t, err)
	require.Equal(t, profile.ID, got.ID)

	visible, err := grantee.ListProfiles(ctx)
	require.NoError(t, err)
	require.Empty(t, visible.Owned)
	require.Len(t, visible.Shared, 1)

	// Shares never reach the profile itself; rename stays with the owner.
	_, err = grantee.RenameProfile(ctx, profile.ID, profilesdk.RenameProfileRequest{
		DisplayName: "Hijacked",
	})
	assertAPIErrorCode(t, err, profilesdk.ErrorCodeNotOwner, "grantee must not rename")

	// Revocation is immediate.
	require.NoError(t, owner.RevokeShare(ctx, profile.ID, share.GranteeAccountID))

	_, err = grantee.GetProfile(ctx, profile.ID)
	assertAPIErrorCode(t, err, profilesdk.ErrorCodeNotFound, "revoked grantee should read as not found")

	// Revoking again still succeeds.
	require.NoError(t, owner.RevokeShare(ctx, profile.ID, share.GranteeAccountID))
}

// TestShareGrantValidation covers the grant edge cases over the wire.
func TestShareGrantValidation(t *testing.T) {
	baseURL, cleanup := setupProfileContainer(t)
	defer cleanup()
	ctx := t.Context()

	owner := newClientFor(t, baseURL, "acct-owner", "owner@example.com")
	other := newClientFor(t, baseURL, "acct-other", "other@example.com")

	profile, err := owner.CreateProfile(ctx, profilesdk.CreateProfileRequest{DisplayName: "Stand"})
	require.NoError(t, err)

	// Empty permission sets are rejected.
	_, err = owner.GrantShare(ctx, profile.ID, profilesdk.GrantShareRequest{
		GranteeEmail: "other@example.com",
		Permissions:  []string{},
	})
	assertAPIErrorCode(t, err, profilesdk.ErrorCodeInvalidRequest, "empty permissions")

	// Unknown grantee.
	_, err = owner.GrantShare(ctx, profile.ID, profilesdk.GrantShareRequest{
		GranteeEmail: "nobody@example.com",
		Permissions:  []string{profilesdk.PermissionRead},
	})
	assertAPIErrorCode(t, err, profilesdk.ErrorCodeNotFound, "unknown grantee")

	// Sharing with yourself.
	_, err = owner.GrantShare(ctx, profile.ID, profilesdk.GrantShareRequest{
		GranteeEmail: "owner@example.com",
		Permissions:  []string{profilesdk.PermissionRead},
	})
	assertAPIErrorCode(t, err, profilesdk.ErrorCodeInvalidRequest, "share with owner")

	// Only the owner grants.
	_, err = other.GrantShare(ctx, profile.ID, profilesdk.GrantShareRequest{
		GranteeEmail: "other@example.com",
		Permissions:  []string{profilesdk.PermissionRead},
	})
	assertAPIErrorCode(t, err, profilesdk.ErrorCodeNotOwner, "non-owner grant")

	// Regranting replaces the set wholesale.
	_, err = owner.GrantShare(ctx, profile.ID, profilesdk.GrantShareRequest{
		GranteeEmail: "other@example.com",
		Permissions:  []string{profilesdk.PermissionRead, profilesdk.PermissionWrite},
	})
	require.NoError(t, err)

	share, err := owner.GrantShare(ctx, profile.ID, profilesdk.GrantShareRequest{
		GranteeEmail: "other@example.com",
		Permissions:  []string{profilesdk.PermissionWrite},
	})
	require.NoError(t, err)
	require.Equal(t, []string{profilesdk.PermissionWrite}, share.Permissions)

	// WRITE alone does not grant READ: gets read as absent, lists as empty.
	_, err = other.GetProfile(ctx, profile.ID)
	assertAPIErrorCode(t, err, profilesdk.ErrorCodeNotFound, "write-only grantee cannot read")

	catalogs, err := other.ListCatalogs(ctx, profile.ID)
	require.NoError(t, err)
	require.Empty(t, catalogs.Catalogs)
}

// TestProfileCascadeDelete verifies deleting a profile takes its grants
// and scoped resources with it.
func TestProfileCascadeDelete(t *testing.T) {
	baseURL, cleanup := setupProfileContainer(t)
	defer cleanup()
	ctx := t.Context()

	owner := newClientFor(t, baseURL, "acct-owner", "owner@example.com")
	grantee := newClientFor(t, baseURL, "acct-grantee", "grantee@example.com")

	profile, err := owner.CreateProfile(ctx, profilesdk.CreateProfileRequest{DisplayName: "Stand"})
	require.NoError(t, err)

	_, err = owner.GrantShare(ctx, profile.ID, profilesdk.GrantShareRequest{
		GranteeEmail: "grantee@example.com",
		Permissions:  []string{profilesdk.PermissionRead, profilesdk.PermissionWrite},
	})
	require.NoError(t, err)

	catalog, err := owner.CreateCatalog(ctx, profile.ID, profilesdk.CatalogRequest{Name: "Produce"})
	require.NoError(t, err)

	campaign, err := owner.CreateCampaign(ctx, profile.ID, profilesdk.CampaignRequest{
		CatalogID: catalog.ID,
		Title:     "Harvest Drive",
		GoalCents: 50_000,
	})
	require.NoError(t, err)

	_, err = owner.CreateOrder(ctx, profile.ID, profilesdk.CreateOrderRequest{
		CampaignID: campaign.ID,
		BuyerEmail: "buyer@example.com",
		TotalCents: 1_500,
	})
	require.NoError(t, err)

	// Rename and delete are owner-only even for a READ+WRITE grantee.
	_, err = grantee.RenameProfile(ctx, profile.ID, profilesdk.RenameProfileRequest{DisplayName: "Taken Over"})
	assertAPIErrorCode(t, err, profilesdk.ErrorCodeNotOwner, "grantee rename")

	err = grantee.DeleteProfile(ctx, profile.ID)
	assertAPIErrorCode(t, err, profilesdk.ErrorCodeNotOwner, "grantee delete")

	require.NoError(t, owner.DeleteProfile(ctx, profile.ID))

	// Everything is gone, for everyone.
	_, err = owner.GetProfile(ctx, profile.ID)
	assertAPIErrorCode(t, err, profilesdk.ErrorCodeNotFound, "owner after delete")

	_, err = grantee.GetProfile(ctx, profile.ID)
	assertAPIErrorCode(t, err, profilesdk.ErrorCodeNotFound, "grantee after delete")

	visible, err := grantee.ListProfiles(ctx)
	require.NoError(t, err)
	require.Empty(t, visible.Shared)
}
