package profilesdk

import (
	"context"
	"net/http"
)

// MintInvite creates a single-use invite code for a profile. The raw
// code appears in the response and nowhere else; store it or lose it.
// Owner-only.
func (c *Client) MintInvite(ctx context.Context, profileID string, req MintInviteRequest) (*MintInviteResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/profiles/"+profileID+"/invites", req)
	if err != nil {
		return nil, err
	}

	var invite MintInviteResponse
	if err := decodeJSON(resp, &invite, http.StatusCreated); err != nil {
		return nil, err
	}
	return &invite, nil
}

// ListOpenInvites returns unused, unexpired invites for a profile.
// Non-owners get an empty list.
func (c *Client) ListOpenInvites(ctx context.Context, profileID string) (*InviteListResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/profiles/"+profileID+"/invites", nil)
	if err != nil {
		return nil, err
	}

	var list InviteListResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return &list, nil
}

// RedeemInvite exchanges an invite code for a share on the invite's
// profile. Each code redeems at most once; losers of a race get a 409.
func (c *Client) RedeemInvite(ctx context.Context, req RedeemInviteRequest) (*ShareResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/invites/redeem", req)
	if err != nil {
		return nil, err
	}

	var share ShareResponse
	if err := decodeJSON(resp, &share, http.StatusOK); err != nil {
		return nil, err
	}
	return &share, nil
}
