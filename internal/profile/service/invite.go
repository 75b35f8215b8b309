package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fairstand/fairstand/internal/profile/domain"
	"github.com/fairstand/fairstand/internal/profile/store"
	"github.com/fairstand/fairstand/pkg/cryptox"
	"github.com/fairstand/fairstand/pkg/idx"
	"github.com/fairstand/fairstand/pkg/metricsx"
	"github.com/fairstand/fairstand/pkg/slogx"
)

var (
	ErrInvalidInviteRequest  = errors.New("invalid invite request")
	ErrInviteNotFound        = errors.New("invite not found")
	ErrInviteExpired         = errors.New("invite has expired")
	ErrInviteAlreadyUsed     = errors.New("invite has already been used")
	ErrCannotRedeemOwnInvite = errors.New("cannot redeem an invite for your own profile")
)

// MaxInviteTTL caps how far out an invite may expire.
const MaxInviteTTL = 30 * 24 * time.Hour

type InviteService struct {
	Store   store.Store
	Guard   *Guard
	Metrics *metricsx.Metrics
}

// MintInvite creates a single-use invite code for a profile. The raw
// code is returned exactly once; only its fingerprint is stored.
func (s *InviteService) MintInvite(
	ctx context.Context,
	ownerAccountID string,
	profileID string,
	permissions domain.PermissionSet,
	expiresAt time.Time,
) (string, domain.Invite, error) {
	log := slogx.FromContext(ctx)

	// 1. Owner-only operation.
	if _, err := s.Guard.RequireOwner(ctx, ownerAccountID, profileID); err != nil {
		return "", domain.Invite{}, err
	}

	// 2. An invite must grant something.
	if permissions.IsEmpty() {
		return "", domain.Invite{}, ErrEmptyPermissions
	}

	// 3. Validate expiry is in the future and within the cap.
	now := time.Now().UTC()
	if !expiresAt.After(now) || expiresAt.After(now.Add(MaxInviteTTL)) {
		log.Warn("attempted to mint invite with invalid expiry",
			slog.String("profile_id", profileID),
			slog.Time("expires_at", expiresAt),
		)
		return "", domain.Invite{}, ErrInvalidInviteRequest
	}

	// 4. Generate the random code.
	code, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invite code", slog.Any("error", err))
		return "", domain.Invite{}, err
	}

	// 5. Fingerprint and store the invite.
	invite := domain.Invite{
		ID:          idx.New().String(),
		CodeHash:    cryptox.FingerprintToken(code),
		ProfileID:   profileID,
		Permissions: permissions,
		CreatedBy:   ownerAccountID,
		ExpiresAt:   expiresAt.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Invites().CreateInvite(ctx, invite); err != nil {
		log.Error("failed to create invite",
			slog.String("profile_id", profileID),
			slog.Any("error", err),
		)
		return "", domain.Invite{}, err
	}

	if s.Metrics != nil {
		s.Metrics.InvitesMintedTotal.Inc()
	}

	log.Info("invite minted",
		slog.String("invite_id", invite.ID),
		slog.String("profile_id", profileID),
		slog.String("permissions", permissions.Encode()),
		slog.Time("expires_at", invite.ExpiresAt),
	)

	// 6. Return the raw code (not the fingerprint).
	return code, invite, nil
}

// RedeemInvite turns an invite code into a share for the redeemer. The
// mark-used and share upsert happen in one transaction; when two
// redeemers race on the same code exactly one wins and the other
// observes ErrInviteAlreadyUsed.
func (s *InviteService) RedeemInvite(ctx context.Context, redeemerAccountID, code string) (domain.Share, error) {
	log := slogx.FromContext(ctx)

	if code == "" {
		return domain.Share{}, ErrInvalidInviteRequest
	}

	// 1. Fingerprint the code and look up the invite.
	fingerprint := cryptox.FingerprintToken(code)
	invite, err := s.Store.Invites().GetInviteByCodeHash(ctx, fingerprint)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.recordRedemption("not_found")
			log.Warn("invite redemption attempted with unknown code")
			return domain.Share{}, ErrInviteNotFound
		}
		log.Error("failed to fetch invite", slog.Any("error", err))
		return domain.Share{}, err
	}

	// 2. Expiry before used: an expired invite reports expired even if
	// it was never redeemed.
	if invite.Expired(time.Now().UTC()) {
		s.recordRedemption("expired")
		return domain.Share{}, ErrInviteExpired
	}

	// 3. Fast-path the already-used case before opening a transaction.
	if invite.Used {
		s.recordRedemption("already_used")
		return domain.Share{}, ErrInviteAlreadyUsed
	}

	// 4. Owners cannot redeem invites to their own profiles.
	profile, err := s.Store.Profiles().GetProfileByID(ctx, invite.ProfileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Profile cascade-deleted between mint and redeem.
			s.recordRedemption("not_found")
			return domain.Share{}, ErrInviteNotFound
		}
		log.Error("failed to fetch profile for invite", slog.Any("error", err))
		return domain.Share{}, err
	}
	if profile.OwnerAccountID == redeemerAccountID {
		s.recordRedemption("own_invite")
		return domain.Share{}, ErrCannotRedeemOwnInvite
	}

	// 5. Atomically mark used and upsert the share. The conditional
	// update is the arbiter: the loser of a race sees zero rows touched.
	now := time.Now().UTC()
	share := domain.Share{
		ProfileID:        invite.ProfileID,
		GranteeAccountID: redeemerAccountID,
		Permissions:      invite.Permissions,
		CreatedBy:        invite.CreatedBy,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invites().MarkInviteUsed(ctx, invite.ID, redeemerAccountID); err != nil {
			return err
		}
		return tx.Shares().UpsertShare(ctx, share)
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			s.recordRedemption("already_used")
			log.Warn("invite redemption lost the race",
				slog.String("invite_id", invite.ID),
			)
			return domain.Share{}, ErrInviteAlreadyUsed
		}
		log.Error("failed to redeem invite",
			slog.String("invite_id", invite.ID),
			slog.Any("error", err),
		)
		return domain.Share{}, err
	}

	s.recordRedemption("redeemed")
	log.Info("invite redeemed",
		slog.String("invite_id", invite.ID),
		slog.String("profile_id", invite.ProfileID),
		slog.String("grantee_account_id", redeemerAccountID),
	)
	return share, nil
}

// ListOpenInvites returns unused, unexpired invites for a profile. Only
// the owner sees them; everyone else, WRITE holders included, gets an
// empty list rather than an error. Raw codes are long gone; only
// metadata comes back.
func (s *InviteService) ListOpenInvites(ctx context.Context, actorAccountID, profileID string) ([]domain.Invite, error) {
	if _, err := s.Guard.RequireOwner(ctx, actorAccountID, profileID); err != nil {
		if errors.Is(err, ErrNotOwner) {
			return []domain.Invite{}, nil
		}
		return nil, err
	}
	return s.Store.Invites().ListOpenInvitesForProfile(ctx, profileID, time.Now().UTC())
}

func (s *InviteService) recordRedemption(outcome string) {
	if s.Metrics != nil {
		s.Metrics.InviteRedemptionTotal.WithLabelValues(outcome).Inc()
	}
}
