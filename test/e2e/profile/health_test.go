package profile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fairstand/fairstand/pkg/profilesdk"
)

// TestHealthEndpoints checks the unauthenticated health surface.
func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupProfileContainer(t)
	defer cleanup()
	ctx := t.Context()

	client := profilesdk.NewClient(baseURL, "")

	live, err := client.Livez(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.NotEmpty(t, live.Version)

	ready, err := client.Readyz(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Verifier)
}

// TestAuthRequired verifies the v1 surface rejects missing tokens.
func TestAuthRequired(t *testing.T) {
	baseURL, cleanup := setupProfileContainer(t)
	defer cleanup()
	ctx := t.Context()

	client := profilesdk.NewClient(baseURL, "")

	_, err := client.ListProfiles(ctx)
	require.Error(t, err)

	var apiErr *profilesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 401, apiErr.StatusCode)
}
