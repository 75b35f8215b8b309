package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fairstand/fairstand/internal/profile/service"
	"github.com/fairstand/fairstand/pkg/httpx"
	"github.com/fairstand/fairstand/pkg/profilesdk"
	"github.com/fairstand/fairstand/pkg/slogx"
)

type ProfilesHandler struct {
	ProfileService *service.ProfileService
}

// HandleCreate godoc
//
//	@Summary		Create Profile
//	@Description	Create a new seller profile owned by the authenticated account.
//	@Tags			Profiles
//	@Accept			json
//	@Produce		json
//	@Param			request	body		profilesdk.CreateProfileRequest	true	"Profile details"
//	@Success		201		{object}	profilesdk.ProfileResponse
//	@Failure		400		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles [post].
func (h *ProfilesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req profilesdk.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	accountID := httpx.AccountIDFromContext(ctx)

	profile, err := h.ProfileService.CreateProfile(ctx, accountID, req.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidProfileRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "display_name is required",
			})
		default:
			log.Error("failed to create profile", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, profilesdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to create profile",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toProfileResponse(profile))
}

// HandleList godoc
//
//	@Summary		List Visible Profiles
//	@Description	List profiles the authenticated account owns or holds a share on.
//	@Tags			Profiles
//	@Produce		json
//	@Success		200	{object}	profilesdk.ProfileListResponse
//	@Failure		401	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles [get].
func (h *ProfilesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.AccountIDFromContext(ctx)

	visible, err := h.ProfileService.ListVisibleProfiles(ctx, accountID)
	if err != nil {
		log.Error("failed to list profiles", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, profilesdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to list profiles",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, profilesdk.ProfileListResponse{
		Owned:  toProfileResponses(visible.Owned),
		Shared: toProfileResponses(visible.Shared),
	})
}

// HandleGet godoc
//
//	@Summary		Get Profile
//	@Description	Fetch a single profile. Profiles the caller cannot read answer 404,
//	@Description	whether or not they exist.
//	@Tags			Profiles
//	@Produce		json
//	@Param			id	path		string	true	"Profile ID"
//	@Success		200	{object}	profilesdk.ProfileResponse
//	@Failure		401	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id} [get].
func (h *ProfilesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.AccountIDFromContext(ctx)
	profileID := r.PathValue("id")

	profile, err := h.ProfileService.GetProfile(ctx, accountID, profileID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, profilesdk.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "Profile not found",
			})
		default:
			log.Error("failed to get profile", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, profilesdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to get profile",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(profile))
}

// HandleRename godoc
//
//	@Summary		Rename Profile
//	@Description	Change the display name. Owner-only.
//	@Tags			Profiles
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Profile ID"
//	@Param			request	body		profilesdk.RenameProfileRequest	true	"New display name"
//	@Success		200		{object}	profilesdk.ProfileResponse
//	@Failure		400		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id} [patch].
func (h *ProfilesHandler) HandleRename(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req profilesdk.RenameProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	accountID := httpx.AccountIDFromContext(ctx)
	profileID := r.PathValue("id")

	profile, err := h.ProfileService.RenameProfile(ctx, accountID, profileID, req.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidProfileRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "display_name is required",
			})
		case errors.Is(err, service.ErrNotOwner):
			httpx.WriteJSON(w, http.StatusForbidden, profilesdk.ErrorResponse{
				Error:            "not_owner",
				ErrorDescription: "Only the profile owner can rename it",
			})
		default:
			log.Error("failed to rename profile", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, profilesdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to rename profile",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(profile))
}

// HandleDelete godoc
//
//	@Summary		Delete Profile
//	@Description	Delete a profile and cascade to its shares, invites, catalogs,
//	@Description	campaigns, orders, and payment methods. Owner-only.
//	@Tags			Profiles
//	@Produce		json
//	@Param			id	path	string	true	"Profile ID"
//	@Success		204	"profile deleted"
//	@Failure		403	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id} [delete].
func (h *ProfilesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.AccountIDFromContext(ctx)
	profileID := r.PathValue("id")

	if err := h.ProfileService.DeleteProfile(ctx, accountID, profileID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotOwner):
			httpx.WriteJSON(w, http.StatusForbidden, profilesdk.ErrorResponse{
				Error:            "not_owner",
				ErrorDescription: "Only the profile owner can delete it",
			})
		default:
			log.Error("failed to delete profile", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, profilesdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to delete profile",
			})
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
