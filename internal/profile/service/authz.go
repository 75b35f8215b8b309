package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fairstand/fairstand/internal/profile/domain"
	"github.com/fairstand/fairstand/internal/profile/store"
	"github.com/fairstand/fairstand/pkg/metricsx"
	"github.com/fairstand/fairstand/pkg/slogx"
)

var (
	// ErrNotOwner is returned by owner-only operations. A missing profile
	// maps here too, so callers cannot probe which profiles exist.
	ErrNotOwner = errors.New("not the profile owner")

	// ErrUnauthorized is surfaced when a mutation is denied.
	ErrUnauthorized = errors.New("not authorized")

	ErrProfileNotFound = errors.New("profile not found")
)

// Decision is the outcome of an authorization check. Deny is a normal
// value, not an error; the guard decides how a denial surfaces.
type Decision int

const (
	Deny Decision = iota
	AllowOwner
	AllowShared
)

func (d Decision) Allowed() bool { return d != Deny }

func (d Decision) String() string {
	switch d {
	case AllowOwner:
		return "allow_owner"
	case AllowShared:
		return "allow_shared"
	default:
		return "deny"
	}
}

// Authorizer decides whether an account may act on a profile. Owners
// hold every permission implicitly; everyone else holds exactly what
// their share grants. Absence of a profile or share is an ordinary Deny.
type Authorizer struct {
	Store   store.Store
	Metrics *metricsx.Metrics
}

// Authorize checks whether accountID holds perm on profileID. Errors are
// reserved for storage faults; every access question answers with a
// Decision.
func (a *Authorizer) Authorize(ctx context.Context, accountID, profileID string, perm domain.Permission) (Decision, error) {
	decision, err := a.decide(ctx, accountID, profileID, perm)
	if err != nil {
		return Deny, err
	}

	if a.Metrics != nil {
		a.Metrics.AccessDecisionsTotal.WithLabelValues(string(perm), decision.String()).Inc()
	}
	return decision, nil
}

func (a *Authorizer) decide(ctx context.Context, accountID, profileID string, perm domain.Permission) (Decision, error) {
	profile, err := a.Store.Profiles().GetProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Deny, nil
		}
		return Deny, err
	}

	if profile.OwnerAccountID == accountID {
		return AllowOwner, nil
	}

	share, err := a.Store.Shares().GetShare(ctx, profileID, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Deny, nil
		}
		return Deny, err
	}

	if share.Permissions.Contains(perm) {
		return AllowShared, nil
	}
	return Deny, nil
}

// Guard is the enforcement layer over the Authorizer. Queries that are
// denied read as if the profile does not exist: an absent item for a
// get, an empty collection for a list. Denied mutations fail loudly
// with ErrUnauthorized; owner-only operations never consult shares at
// all.
type Guard struct {
	Authorizer *Authorizer
}

// RequireOwner loads the profile and verifies the caller owns it. Both a
// missing profile and a foreign owner come back as ErrNotOwner.
func (g *Guard) RequireOwner(ctx context.Context, accountID, profileID string) (domain.Profile, error) {
	log := slogx.FromContext(ctx)

	profile, err := g.Authorizer.Store.Profiles().GetProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, ErrNotOwner
		}
		log.Error("failed to fetch profile", slog.Any("error", err))
		return domain.Profile{}, err
	}

	if profile.OwnerAccountID != accountID {
		log.Warn("owner-only operation attempted by non-owner",
			slog.String("profile_id", profileID),
			slog.String("account_id", accountID),
		)
		return domain.Profile{}, ErrNotOwner
	}
	return profile, nil
}

// RequireRead enforces READ for a query. A denial is indistinguishable
// from the profile not existing.
func (g *Guard) RequireRead(ctx context.Context, accountID, profileID string) error {
	decision, err := g.Authorizer.Authorize(ctx, accountID, profileID, domain.PermissionRead)
	if err != nil {
		return err
	}
	if !decision.Allowed() {
		return ErrProfileNotFound
	}
	return nil
}

// CanRead reports whether the caller holds READ on the profile. List
// operations use it to answer denials with an empty collection rather
// than an error.
func (g *Guard) CanRead(ctx context.Context, accountID, profileID string) (bool, error) {
	decision, err := g.Authorizer.Authorize(ctx, accountID, profileID, domain.PermissionRead)
	if err != nil {
		return false, err
	}
	return decision.Allowed(), nil
}

// RequireWrite enforces WRITE for a mutation, which fails loudly.
func (g *Guard) RequireWrite(ctx context.Context, accountID, profileID string) error {
	decision, err := g.Authorizer.Authorize(ctx, accountID, profileID, domain.PermissionWrite)
	if err != nil {
		return err
	}
	if !decision.Allowed() {
		return ErrUnauthorized
	}
	return nil
}
