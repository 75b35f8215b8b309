package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fairstand/fairstand/internal/profile/domain"
	"github.com/fairstand/fairstand/internal/profile/service"
	"github.com/fairstand/fairstand/pkg/httpx"
	"github.com/fairstand/fairstand/pkg/profilesdk"
	"github.com/fairstand/fairstand/pkg/slogx"
)

type InvitesHandler struct {
	InviteService *service.InviteService
}

// HandleMint godoc
//
//	@Summary		Mint Invite
//	@Description	Create a single-use invite code for a profile. The raw code appears
//	@Description	in the response and nowhere else; only its fingerprint is stored.
//	@Description	Owner-only.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Profile ID"
//	@Param			request	body		profilesdk.MintInviteRequest	true	"Invite parameters"
//	@Success		201		{object}	profilesdk.MintInviteResponse	"invite_code is returned once"
//	@Failure		400		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id}/invites [post].
func (h *InvitesHandler) HandleMint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req profilesdk.MintInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	accountID := httpx.AccountIDFromContext(ctx)
	profileID := r.PathValue("id")

	// Default expiry is 1 day from now; the service caps the horizon.
	var expiresAt time.Time
	if req.ExpiresAt == 0 {
		expiresAt = time.Now().Add(24 * time.Hour)
	} else {
		expiresAt = time.Unix(req.ExpiresAt, 0)
	}

	code, invite, err := h.InviteService.MintInvite(ctx, accountID, profileID, domain.ParsePermissionSet(req.Permissions), expiresAt)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotOwner):
			httpx.WriteJSON(w, http.StatusForbidden, profilesdk.ErrorResponse{
				Error:            "not_owner",
				ErrorDescription: "Only the profile owner can mint invites",
			})
		case errors.Is(err, service.ErrEmptyPermissions):
			httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "permissions must include at least one of read, write",
			})
		case errors.Is(err, service.ErrInvalidInviteRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "expires_at must be in the future, at most 30 days out",
			})
		default:
			log.Error("failed to mint invite", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, profilesdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to mint invite",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, profilesdk.MintInviteResponse{
		InviteID:    invite.ID,
		InviteCode:  code,
		ProfileID:   invite.ProfileID,
		Permissions: invite.Permissions.Labels(),
		ExpiresAt:   invite.ExpiresAt.Unix(),
	})
}

// HandleList godoc
//
//	@Summary		List Open Invites
//	@Description	List unused, unexpired invites for a profile. Non-owners get an
//	@Description	empty list. Codes are never included.
//	@Tags			Invites
//	@Produce		json
//	@Param			id	path		string	true	"Profile ID"
//	@Success		200	{object}	profilesdk.InviteListResponse
//	@Failure		401	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id}/invites [get].
func (h *InvitesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.AccountIDFromContext(ctx)
	profileID := r.PathValue("id")

	invites, err := h.InviteService.ListOpenInvites(ctx, accountID, profileID)
	if err != nil {
		log.Error("failed to list invites", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, profilesdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to list invites",
		})
		return
	}

	out := make([]profilesdk.InviteResponse, len(invites))
	for i, inv := range invites {
		out[i] = toInviteResponse(inv)
	}
	httpx.WriteJSON(w, http.StatusOK, profilesdk.InviteListResponse{Invites: out})
}

// HandleRedeem godoc
//
//	@Summary		Redeem Invite
//	@Description	Exchange an invite code for a share on the invite's profile. Each
//	@Description	code redeems at most once; losers of a redemption race get a 409.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		profilesdk.RedeemInviteRequest	true	"Invite code"
//	@Success		200		{object}	profilesdk.ShareResponse
//	@Failure		400		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		410		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites/redeem [post].
func (h *InvitesHandler) HandleRedeem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req profilesdk.RedeemInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	if req.InviteCode == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "invite_code is required",
		})
		return
	}

	accountID := httpx.AccountIDFromContext(ctx)

	share, err := h.InviteService.RedeemInvite(ctx, accountID, req.InviteCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInviteNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, profilesdk.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "Invite not found",
			})
		case errors.Is(err, service.ErrInviteExpired):
			httpx.WriteJSON(w, http.StatusGone, profilesdk.ErrorResponse{
				Error:            "invite_expired",
				ErrorDescription: "Invite has expired",
			})
		case errors.Is(err, service.ErrInviteAlreadyUsed):
			httpx.WriteJSON(w, http.StatusConflict, profilesdk.ErrorResponse{
				Error:            "conflict",
				ErrorDescription: "Invite has already been redeemed",
			})
		case errors.Is(err, service.ErrCannotRedeemOwnInvite):
			httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "Cannot redeem an invite for your own profile",
			})
		default:
			log.Error("failed to redeem invite", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, profilesdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to redeem invite",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toShareResponse(share))
}
