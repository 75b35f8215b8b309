package profilesdk

import (
	"context"
	"net/http"
)

// CreateProfile creates a new profile owned by the caller.
func (c *Client) CreateProfile(ctx context.Context, req CreateProfileRequest) (*ProfileResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/profiles", req)
	if err != nil {
		return nil, err
	}

	var profile ProfileResponse
	if err := decodeJSON(resp, &profile, http.StatusCreated); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListProfiles returns the profiles visible to the caller, partitioned
// into owned and shared.
func (c *Client) ListProfiles(ctx context.Context) (*ProfileListResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/profiles", nil)
	if err != nil {
		return nil, err
	}

	var list ProfileListResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetProfile fetches a single profile. Profiles the caller cannot read
// answer 404, whether or not they exist.
func (c *Client) GetProfile(ctx context.Context, profileID string) (*ProfileResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/profiles/"+profileID, nil)
	if err != nil {
		return nil, err
	}

	var profile ProfileResponse
	if err := decodeJSON(resp, &profile, http.StatusOK); err != nil {
		return nil, err
	}
	return &profile, nil
}

// RenameProfile changes the display name. Owner-only.
func (c *Client) RenameProfile(ctx context.Context, profileID string, req RenameProfileRequest) (*ProfileResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPatch, "/v1/profiles/"+profileID, req)
	if err != nil {
		return nil, err
	}

	var profile ProfileResponse
	if err := decodeJSON(resp, &profile, http.StatusOK); err != nil {
		return nil, err
	}
	return &profile, nil
}

// DeleteProfile deletes a profile and everything hanging off it: shares,
// invites, catalogs, campaigns, orders, payment methods. Owner-only.
func (c *Client) DeleteProfile(ctx context.Context, profileID string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/profiles/"+profileID, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
