package profilesdk

import (
	"context"
	"net/http"
)

// GrantShare creates or replaces a grant on a profile. Regranting
// replaces the permission set wholesale. Owner-only.
func (c *Client) GrantShare(ctx context.Context, profileID string, req GrantShareRequest) (*ShareResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, "/v1/profiles/"+profileID+"/shares", req)
	if err != nil {
		return nil, err
	}

	var share ShareResponse
	if err := decodeJSON(resp, &share, http.StatusOK); err != nil {
		return nil, err
	}
	return &share, nil
}

// ListShares returns the grants on a profile. Callers without WRITE get
// an empty list, not an error.
func (c *Client) ListShares(ctx context.Context, profileID string) (*ShareListResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/profiles/"+profileID+"/shares", nil)
	if err != nil {
		return nil, err
	}

	var list ShareListResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return &list, nil
}

// RevokeShare removes a grant. Revoking an absent grant still answers
// 204. Owner-only.
func (c *Client) RevokeShare(ctx context.Context, profileID, granteeAccountID string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/profiles/"+profileID+"/shares/"+granteeAccountID, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
