package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/fairstand/fairstand/internal/profile/domain"
	"github.com/fairstand/fairstand/internal/profile/store"
	"github.com/fairstand/fairstand/pkg/idx"
	"github.com/fairstand/fairstand/pkg/metricsx"
	"github.com/fairstand/fairstand/pkg/slogx"
)

var ErrInvalidProfileRequest = errors.New("invalid profile request")

type ProfileService struct {
	Store   store.Store
	Guard   *Guard
	Metrics *metricsx.Metrics
}

// CreateProfile creates a profile owned by the acting account.
func (s *ProfileService) CreateProfile(ctx context.Context, ownerAccountID, displayName string) (domain.Profile, error) {
	log := slogx.FromContext(ctx)

	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return domain.Profile{}, ErrInvalidProfileRequest
	}

	now := time.Now().UTC()
	profile := domain.Profile{
		ID:             idx.New().String(),
		OwnerAccountID: ownerAccountID,
		DisplayName:    displayName,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Store.Profiles().CreateProfile(ctx, profile); err != nil {
		log.Error("failed to create profile", slog.Any("error", err))
		return domain.Profile{}, err
	}

	log.Info("profile created",
		slog.String("profile_id", profile.ID),
		slog.String("owner_account_id", ownerAccountID),
	)
	return profile, nil
}

// GetProfile returns a profile the caller can read. Denials read as
// not-found.
func (s *ProfileService) GetProfile(ctx context.Context, accountID, profileID string) (domain.Profile, error) {
	if err := s.Guard.RequireRead(ctx, accountID, profileID); err != nil {
		return domain.Profile{}, err
	}

	profile, err := s.Store.Profiles().GetProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, ErrProfileNotFound
		}
		return domain.Profile{}, err
	}
	return profile, nil
}

// VisibleProfiles partitions the profiles an account can see.
type VisibleProfiles struct {
	Owned  []domain.Profile
	Shared []domain.Profile
}

// ListVisibleProfiles returns profiles the account owns plus profiles it
// holds any share on.
func (s *ProfileService) ListVisibleProfiles(ctx context.Context, accountID string) (VisibleProfiles, error) {
	log := slogx.FromContext(ctx)

	owned, err := s.Store.Profiles().ListProfilesByOwner(ctx, accountID)
	if err != nil {
		log.Error("failed to list owned profiles", slog.Any("error", err))
		return VisibleProfiles{}, err
	}

	shared, err := s.Store.Profiles().ListProfilesSharedWithAccount(ctx, accountID)
	if err != nil {
		log.Error("failed to list shared profiles", slog.Any("error", err))
		return VisibleProfiles{}, err
	}

	return VisibleProfiles{Owned: owned, Shared: shared}, nil
}

// RenameProfile updates the display name. Owner-only: a WRITE share
// grants access to the profile's resources, not to the profile itself.
func (s *ProfileService) RenameProfile(ctx context.Context, accountID, profileID, displayName string) (domain.Profile, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return domain.Profile{}, ErrInvalidProfileRequest
	}

	if _, err := s.Guard.RequireOwner(ctx, accountID, profileID); err != nil {
		return domain.Profile{}, err
	}

	if err := s.Store.Profiles().UpdateProfileName(ctx, profileID, displayName); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, ErrProfileNotFound
		}
		return domain.Profile{}, err
	}

	return s.Store.Profiles().GetProfileByID(ctx, profileID)
}

// DeleteProfile removes a profile and everything scoped under it in one
// transaction: shares, invites, catalogs, campaigns, orders, payment
// methods, then the profile row. Owner-only. Safe to retry: each step
// deletes by profile id and tolerates already-gone rows.
func (s *ProfileService) DeleteProfile(ctx context.Context, accountID, profileID string) error {
	log := slogx.FromContext(ctx)

	if _, err := s.Guard.RequireOwner(ctx, accountID, profileID); err != nil {
		return err
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Shares().DeleteAllForProfile(ctx, profileID); err != nil {
			return err
		}
		if err := tx.Invites().DeleteAllForProfile(ctx, profileID); err != nil {
			return err
		}
		if err := tx.Orders().DeleteAllForProfile(ctx, profileID); err != nil {
			return err
		}
		if err := tx.Campaigns().DeleteAllForProfile(ctx, profileID); err != nil {
			return err
		}
		if err := tx.Catalogs().DeleteAllForProfile(ctx, profileID); err != nil {
			return err
		}
		if err := tx.PaymentMethods().DeleteAllForProfile(ctx, profileID); err != nil {
			return err
		}
		return tx.Profiles().DeleteProfile(ctx, profileID)
	})
	if err != nil {
		log.Error("failed to cascade delete profile",
			slog.String("profile_id", profileID),
			slog.Any("error", err),
		)
		return err
	}

	if s.Metrics != nil {
		s.Metrics.ProfileCascadeDeletesTotal.Inc()
	}

	log.Info("profile deleted",
		slog.String("profile_id", profileID),
		slog.String("owner_account_id", accountID),
	)
	return nil
}
