package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/fairstand/fairstand/internal/profile/domain"
	"github.com/fairstand/fairstand/internal/profile/store"
	"github.com/fairstand/fairstand/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedAccount(t *testing.T, s *Store, email string) domain.Account {
	t.Helper()

	a := domain.Account{ID: idx.New().String(), Email: email}
	require.NoError(t, s.Accounts().UpsertAccount(context.Background(), a))
	return a
}

func seedProfile(t *testing.T, s *Store, owner domain.Account) domain.Profile {
	t.Helper()

	now := time.Now().UTC()
	p := domain.Profile{
		ID:             idx.New().String(),
		OwnerAccountID: owner.ID,
		DisplayName:    "Test Stand",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, s.Profiles().CreateProfile(context.Background(), p))
	return p
}

func TestAccountsUpsertIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a := seedAccount(t, s, "alice@example.com")
	require.NoError(t, s.Accounts().UpsertAccount(ctx, a))

	got, err := s.Accounts().GetAccountByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", got.Email)

	byEmail, err := s.Accounts().GetAccountByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, a.ID, byEmail.ID)

	_, err = s.Accounts().GetAccountByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpsertShareReplacesPermissions(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	owner := seedAccount(t, s, "owner@example.com")
	grantee := seedAccount(t, s, "grantee@example.com")
	profile := seedProfile(t, s, owner)

	now := time.Now().UTC()
	share := domain.Share{
		ProfileID:        profile.ID,
		GranteeAccountID: grantee.ID,
		Permissions:      domain.NewPermissionSet(domain.PermissionRead, domain.PermissionWrite),
		CreatedBy:        owner.ID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	require.NoError(t, s.Shares().UpsertShare(ctx, share))

	// Regrant with a narrower set; the old set must be replaced, not merged.
	share.Permissions = domain.NewPermissionSet(domain.PermissionRead)
	share.UpdatedAt = now.Add(time.Second)
	require.NoError(t, s.Shares().UpsertShare(ctx, share))

	got, err := s.Shares().GetShare(ctx, profile.ID, grantee.ID)
	require.NoError(t, err)
	require.True(t, got.Permissions.Contains(domain.PermissionRead))
	require.False(t, got.Permissions.Contains(domain.PermissionWrite))
}

func TestDeleteShareIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	owner := seedAccount(t, s, "owner@example.com")
	profile := seedProfile(t, s, owner)

	require.NoError(t, s.Shares().DeleteShare(ctx, profile.ID, "absent-account"))
}

func TestMarkInviteUsedIsSingleWinner(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	owner := seedAccount(t, s, "owner@example.com")
	redeemer := seedAccount(t, s, "redeemer@example.com")
	profile := seedProfile(t, s, owner)

	now := time.Now().UTC()
	inv := domain.Invite{
		ID:          idx.New().String(),
		CodeHash:    "fingerprint",
		ProfileID:   profile.ID,
		Permissions: domain.NewPermissionSet(domain.PermissionRead),
		CreatedBy:   owner.ID,
		ExpiresAt:   now.Add(time.Hour),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, s.Invites().CreateInvite(ctx, inv))

	require.NoError(t, s.Invites().MarkInviteUsed(ctx, inv.ID, redeemer.ID))

	// Second attempt finds the guard column already flipped.
	err := s.Invites().MarkInviteUsed(ctx, inv.ID, redeemer.ID)
	require.ErrorIs(t, err, store.ErrConflict)

	got, err := s.Invites().GetInviteByCodeHash(ctx, "fingerprint")
	require.NoError(t, err)
	require.True(t, got.Used)
	require.Equal(t, redeemer.ID, got.UsedBy)
}

func TestListOpenInvitesFiltersUsedAndExpired(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	owner := seedAccount(t, s, "owner@example.com")
	profile := seedProfile(t, s, owner)

	now := time.Now().UTC()
	mkInvite := func(hash string, expiresAt time.Time) domain.Invite {
		return domain.Invite{
			ID:          idx.New().String(),
			CodeHash:    hash,
			ProfileID:   profile.ID,
			Permissions: domain.NewPermissionSet(domain.PermissionRead),
			CreatedBy:   owner.ID,
			ExpiresAt:   expiresAt,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	open := mkInvite("open", now.Add(time.Hour))
	expired := mkInvite("expired", now.Add(-time.Hour))
	used := mkInvite("used", now.Add(time.Hour))

	require.NoError(t, s.Invites().CreateInvite(ctx, open))
	require.NoError(t, s.Invites().CreateInvite(ctx, expired))
	require.NoError(t, s.Invites().CreateInvite(ctx, used))
	require.NoError(t, s.Invites().MarkInviteUsed(ctx, used.ID, owner.ID))

	list, err := s.Invites().ListOpenInvitesForProfile(ctx, profile.ID, now)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, open.ID, list[0].ID)

	require.NoError(t, s.Invites().DeleteExpiredInvites(ctx, now))
	_, err = s.Invites().GetInviteByCodeHash(ctx, "expired")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	owner := seedAccount(t, s, "owner@example.com")

	sentinel := store.ErrConflict
	err := s.WithTx(ctx, func(tx store.Tx) error {
		now := time.Now().UTC()
		p := domain.Profile{
			ID:             idx.New().String(),
			OwnerAccountID: owner.ID,
			DisplayName:    "Doomed",
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := tx.Profiles().CreateProfile(ctx, p); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	list, err := s.Profiles().ListProfilesByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestListProfilesSharedWithAccount(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	owner := seedAccount(t, s, "owner@example.com")
	grantee := seedAccount(t, s, "grantee@example.com")
	shared := seedProfile(t, s, owner)
	_ = seedProfile(t, s, owner) // not shared

	now := time.Now().UTC()
	require.NoError(t, s.Shares().UpsertShare(ctx, domain.Share{
		ProfileID:        shared.ID,
		GranteeAccountID: grantee.ID,
		Permissions:      domain.NewPermissionSet(domain.PermissionRead),
		CreatedBy:        owner.ID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}))

	list, err := s.Profiles().ListProfilesSharedWithAccount(ctx, grantee.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, shared.ID, list[0].ID)
}
