package jwtx_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fairstand/fairstand/pkg/jwtx"
)

func TestNewIdentityClaims(t *testing.T) {
	now := time.Now().UTC()
	claims := jwtx.NewIdentityClaims(
		"acct-1", "one@example.com", "Account One",
		15*time.Minute, exampleIssuer, []string{"fairstand"}, now,
	)

	require.Equal(t, "acct-1", claims.Subject)
	require.Equal(t, "one@example.com", claims.Email)
	require.Equal(t, "Account One", claims.Name)
	require.Equal(t, exampleIssuer, claims.Issuer)
	require.NotEmpty(t, claims.ID)
	require.Equal(t, now.Add(15*time.Minute).Unix(), claims.ExpiresAt.Unix())
}

func TestValidateIssuer(t *testing.T) {
	claims := jwtx.NewIdentityClaims(
		"acct-1", "", "", time.Minute, exampleIssuer, nil, time.Now().UTC(),
	)

	require.NoError(t, claims.ValidateIssuer(exampleIssuer))
	require.NoError(t, claims.ValidateIssuer("")) // nothing to enforce
	require.ErrorIs(t, claims.ValidateIssuer("someone-else"), jwtx.ErrIssuer)
}

func TestValidateAudience(t *testing.T) {
	claims := jwtx.NewIdentityClaims(
		"acct-1", "", "", time.Minute, exampleIssuer,
		[]string{"fairstand", "reporting"}, time.Now().UTC(),
	)

	require.NoError(t, claims.ValidateAudience(nil))
	require.NoError(t, claims.ValidateAudience([]string{"fairstand"}))
	require.NoError(t, claims.ValidateAudience([]string{"missing", "reporting"}))
	require.ErrorIs(t, claims.ValidateAudience([]string{"missing"}), jwtx.ErrAudience)
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now().UTC()

	fresh := jwtx.NewIdentityClaims("acct-1", "", "", time.Minute, exampleIssuer, nil, now)
	require.NoError(t, fresh.ValidateExpiry())

	expired := jwtx.NewIdentityClaims("acct-1", "", "", time.Minute, exampleIssuer, nil, now.Add(-10*time.Minute))
	require.ErrorIs(t, expired.ValidateExpiry(), jwtx.ErrExpired)

	future := jwtx.NewIdentityClaims("acct-1", "", "", time.Minute, exampleIssuer, nil, now.Add(10*time.Minute))
	require.ErrorIs(t, future.ValidateExpiry(), jwtx.ErrNotYetValid)
}

func TestValidateExpiryWithLeeway(t *testing.T) {
	now := time.Now().UTC()

	// Expired 30s ago, but a minute of leeway forgives it.
	justExpired := jwtx.NewIdentityClaims("acct-1", "", "", time.Minute, exampleIssuer, nil, now.Add(-90*time.Second))
	require.ErrorIs(t, justExpired.ValidateExpiry(), jwtx.ErrExpired)
	require.NoError(t, justExpired.ValidateExpiryWithLeeway(time.Minute))
	require.ErrorIs(t, justExpired.ValidateExpiryWithLeeway(10*time.Second), jwtx.ErrExpired)
}
