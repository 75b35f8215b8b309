package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/fairstand/fairstand/internal/profile/domain"
	"github.com/fairstand/fairstand/internal/profile/store"
	"github.com/fairstand/fairstand/pkg/metricsx"
	"github.com/fairstand/fairstand/pkg/slogx"
)

var (
	ErrEmptyPermissions     = errors.New("permission set must not be empty")
	ErrGranteeNotFound      = errors.New("grantee account not found")
	ErrCannotShareWithOwner = errors.New("cannot share a profile with its owner")
	ErrShareNotFound        = errors.New("share not found")
)

type ShareService struct {
	Store   store.Store
	Guard   *Guard
	Metrics *metricsx.Metrics
}

// GrantShare creates or replaces the grantee's grant on a profile.
// Regranting replaces the permission set wholesale. Owner-only.
func (s *ShareService) GrantShare(
	ctx context.Context,
	ownerAccountID string,
	profileID string,
	granteeEmail string,
	permissions domain.PermissionSet,
) (domain.Share, error) {
	log := slogx.FromContext(ctx)

	// 1. Owner-only operation.
	profile, err := s.Guard.RequireOwner(ctx, ownerAccountID, profileID)
	if err != nil {
		return domain.Share{}, err
	}

	// 2. A grant with no permissions is a revoke in disguise; reject it.
	if permissions.IsEmpty() {
		return domain.Share{}, ErrEmptyPermissions
	}

	// 3. Resolve the grantee by email.
	grantee, err := s.Store.Accounts().GetAccountByEmail(ctx, strings.ToLower(strings.TrimSpace(granteeEmail)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("share grant attempted for unknown grantee",
				slog.String("profile_id", profileID),
			)
			return domain.Share{}, ErrGranteeNotFound
		}
		log.Error("failed to fetch grantee account", slog.Any("error", err))
		return domain.Share{}, err
	}

	// 4. The owner already holds everything.
	if grantee.ID == profile.OwnerAccountID {
		return domain.Share{}, ErrCannotShareWithOwner
	}

	// 5. Upsert the grant.
	now := time.Now().UTC()
	share := domain.Share{
		ProfileID:        profileID,
		GranteeAccountID: grantee.ID,
		Permissions:      permissions,
		CreatedBy:        ownerAccountID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.Store.Shares().UpsertShare(ctx, share); err != nil {
		log.Error("failed to upsert share",
			slog.String("profile_id", profileID),
			slog.String("grantee_account_id", grantee.ID),
			slog.Any("error", err),
		)
		return domain.Share{}, err
	}

	if s.Metrics != nil {
		s.Metrics.SharesGrantedTotal.Inc()
	}

	log.Info("share granted",
		slog.String("profile_id", profileID),
		slog.String("grantee_account_id", grantee.ID),
		slog.String("permissions", share.Permissions.Encode()),
	)
	return share, nil
}

// GetShare returns a single grant. Owner-only.
func (s *ShareService) GetShare(ctx context.Context, ownerAccountID, profileID, granteeAccountID string) (domain.Share, error) {
	if _, err := s.Guard.RequireOwner(ctx, ownerAccountID, profileID); err != nil {
		return domain.Share{}, err
	}

	share, err := s.Store.Shares().GetShare(ctx, profileID, granteeAccountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Share{}, ErrShareNotFound
		}
		return domain.Share{}, err
	}
	return share, nil
}

// ListShares returns every grant on a profile for the owner or a WRITE
// holder. Anyone else gets an empty list rather than an error, so this
// path never discloses whether the profile exists.
func (s *ShareService) ListShares(ctx context.Context, actorAccountID, profileID string) ([]domain.Share, error) {
	decision, err := s.Guard.Authorizer.Authorize(ctx, actorAccountID, profileID, domain.PermissionWrite)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed() {
		return []domain.Share{}, nil
	}
	return s.Store.Shares().ListSharesForProfile(ctx, profileID)
}

// RevokeShare removes a grant. Revoking an absent grant succeeds, so
// retried cleanup never fails. Owner-only.
func (s *ShareService) RevokeShare(ctx context.Context, ownerAccountID, profileID, granteeAccountID string) error {
	log := slogx.FromContext(ctx)

	if _, err := s.Guard.RequireOwner(ctx, ownerAccountID, profileID); err != nil {
		return err
	}

	if err := s.Store.Shares().DeleteShare(ctx, profileID, granteeAccountID); err != nil {
		log.Error("failed to revoke share",
			slog.String("profile_id", profileID),
			slog.String("grantee_account_id", granteeAccountID),
			slog.Any("error", err),
		)
		return err
	}

	if s.Metrics != nil {
		s.Metrics.SharesRevokedTotal.Inc()
	}

	log.Info("share revoked",
		slog.String("profile_id", profileID),
		slog.String("grantee_account_id", granteeAccountID),
	)
	return nil
}
