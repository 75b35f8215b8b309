package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fairstand/fairstand/internal/profile/domain"
	"github.com/fairstand/fairstand/internal/profile/service"
	"github.com/fairstand/fairstand/pkg/httpx"
	"github.com/fairstand/fairstand/pkg/profilesdk"
	"github.com/fairstand/fairstand/pkg/slogx"
)

type SharesHandler struct {
	ShareService *service.ShareService
}

// HandleGrant godoc
//
//	@Summary		Grant Share
//	@Description	Create or replace a grant on a profile, addressed by grantee email.
//	@Description	Regranting replaces the permission set wholesale. Owner-only.
//	@Tags			Shares
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Profile ID"
//	@Param			request	body		profilesdk.GrantShareRequest	true	"Grantee and permissions"
//	@Success		200		{object}	profilesdk.ShareResponse
//	@Failure		400		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id}/shares [put].
func (h *SharesHandler) HandleGrant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req profilesdk.GrantShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	if req.GranteeEmail == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "grantee_email is required",
		})
		return
	}

	accountID := httpx.AccountIDFromContext(ctx)
	profileID := r.PathValue("id")

	share, err := h.ShareService.GrantShare(ctx, accountID, profileID, req.GranteeEmail, domain.ParsePermissionSet(req.Permissions))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotOwner):
			httpx.WriteJSON(w, http.StatusForbidden, profilesdk.ErrorResponse{
				Error:            "not_owner",
				ErrorDescription: "Only the profile owner can grant shares",
			})
		case errors.Is(err, service.ErrEmptyPermissions):
			httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "permissions must include at least one of read, write",
			})
		case errors.Is(err, service.ErrGranteeNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, profilesdk.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "No account with that email",
			})
		case errors.Is(err, service.ErrCannotShareWithOwner):
			httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "Cannot share a profile with its owner",
			})
		default:
			log.Error("failed to grant share", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, profilesdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to grant share",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toShareResponse(share))
}

// HandleList godoc
//
//	@Summary		List Shares
//	@Description	List the grants on a profile. Callers without WRITE get an empty
//	@Description	list, not an error.
//	@Tags			Shares
//	@Produce		json
//	@Param			id	path		string	true	"Profile ID"
//	@Success		200	{object}	profilesdk.ShareListResponse
//	@Failure		401	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id}/shares [get].
func (h *SharesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.AccountIDFromContext(ctx)
	profileID := r.PathValue("id")

	shares, err := h.ShareService.ListShares(ctx, accountID, profileID)
	if err != nil {
		log.Error("failed to list shares", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, profilesdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to list shares",
		})
		return
	}

	out := make([]profilesdk.ShareResponse, len(shares))
	for i, s := range shares {
		out[i] = toShareResponse(s)
	}
	httpx.WriteJSON(w, http.StatusOK, profilesdk.ShareListResponse{Shares: out})
}

// HandleRevoke godoc
//
//	@Summary		Revoke Share
//	@Description	Remove a grant. Revoking an absent grant still answers 204, so
//	@Description	retried cleanup never fails. Owner-only.
//	@Tags			Shares
//	@Produce		json
//	@Param			id			path	string	true	"Profile ID"
//	@Param			accountID	path	string	true	"Grantee account ID"
//	@Success		204	"share revoked"
//	@Failure		403	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id}/shares/{accountID} [delete].
func (h *SharesHandler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.AccountIDFromContext(ctx)
	profileID := r.PathValue("id")
	granteeAccountID := r.PathValue("accountID")

	if err := h.ShareService.RevokeShare(ctx, accountID, profileID, granteeAccountID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotOwner):
			httpx.WriteJSON(w, http.StatusForbidden, profilesdk.ErrorResponse{
				Error:            "not_owner",
				ErrorDescription: "Only the profile owner can revoke shares",
			})
		default:
			log.Error("failed to revoke share", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, profilesdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to revoke share",
			})
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
