package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fairstand/fairstand/internal/profile/domain"
	"github.com/fairstand/fairstand/internal/profile/service"
	"github.com/fairstand/fairstand/pkg/httpx"
	"github.com/fairstand/fairstand/pkg/profilesdk"
	"github.com/fairstand/fairstand/pkg/slogx"
)

type CampaignsHandler struct {
	CampaignService *service.CampaignService
}

// HandleCreate godoc
//
//	@Summary		Create Campaign
//	@Description	Create a fundraising campaign under a profile, optionally tied to
//	@Description	one of the profile's catalogs. Requires WRITE.
//	@Tags			Campaigns
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Profile ID"
//	@Param			request	body		profilesdk.CampaignRequest	true	"Campaign details"
//	@Success		201		{object}	profilesdk.CampaignResponse
//	@Failure		400		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id}/campaigns [post].
func (h *CampaignsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req profilesdk.CampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	accountID := httpx.AccountIDFromContext(ctx)
	profileID := r.PathValue("id")

	campaign, err := h.CampaignService.CreateCampaign(ctx, accountID, profileID, req.CatalogID, req.Title, req.GoalCents)
	if err != nil {
		writeCampaignError(w, log, err, "Failed to create campaign")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toCampaignResponse(campaign))
}

// HandleList godoc
//
//	@Summary		List Campaigns
//	@Description	List a profile's campaigns. Requires READ; denial reads as an empty list.
//	@Tags			Campaigns
//	@Produce		json
//	@Param			id	path		string	true	"Profile ID"
//	@Success		200	{object}	profilesdk.CampaignListResponse
//	@Failure		500	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id}/campaigns [get].
func (h *CampaignsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.AccountIDFromContext(ctx)
	profileID := r.PathValue("id")

	campaigns, err := h.CampaignService.ListCampaigns(ctx, accountID, profileID)
	if err != nil {
		writeCampaignError(w, log, err, "Failed to list campaigns")
		return
	}

	out := make([]profilesdk.CampaignResponse, len(campaigns))
	for i, c := range campaigns {
		out[i] = toCampaignResponse(c)
	}
	httpx.WriteJSON(w, http.StatusOK, profilesdk.CampaignListResponse{Campaigns: out})
}

// HandleGet godoc
//
//	@Summary		Get Campaign
//	@Description	Fetch a single campaign. Requires READ; denial reads as 404.
//	@Tags			Campaigns
//	@Produce		json
//	@Param			id			path		string	true	"Profile ID"
//	@Param			campaignID	path		string	true	"Campaign ID"
//	@Success		200			{object}	profilesdk.CampaignResponse
//	@Failure		404			{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500			{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id}/campaigns/{campaignID} [get].
func (h *CampaignsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.AccountIDFromContext(ctx)
	profileID := r.PathValue("id")
	campaignID := r.PathValue("campaignID")

	campaign, err := h.CampaignService.GetCampaign(ctx, accountID, profileID, campaignID)
	if err != nil {
		writeCampaignError(w, log, err, "Failed to get campaign")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCampaignResponse(campaign))
}

// HandleUpdate godoc
//
//	@Summary		Update Campaign
//	@Description	Replace a campaign's catalog, title, goal, and status. Requires WRITE.
//	@Tags			Campaigns
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string						true	"Profile ID"
//	@Param			campaignID	path		string						true	"Campaign ID"
//	@Param			request		body		profilesdk.CampaignRequest	true	"Campaign details"
//	@Success		200			{object}	profilesdk.CampaignResponse
//	@Failure		400			{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		403			{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500			{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id}/campaigns/{campaignID} [patch].
func (h *CampaignsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req profilesdk.CampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	accountID := httpx.AccountIDFromContext(ctx)

	status := domain.CampaignStatus(req.Status)
	if req.Status == "" {
		status = domain.CampaignDraft
	}

	campaign, err := h.CampaignService.UpdateCampaign(ctx, accountID, domain.Campaign{
		ID:        r.PathValue("campaignID"),
		ProfileID: r.PathValue("id"),
		CatalogID: req.CatalogID,
		Title:     req.Title,
		GoalCents: req.GoalCents,
		Status:    status,
	})
	if err != nil {
		writeCampaignError(w, log, err, "Failed to update campaign")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCampaignResponse(campaign))
}

// HandleDelete godoc
//
//	@Summary		Delete Campaign
//	@Description	Delete a campaign. Requires WRITE.
//	@Tags			Campaigns
//	@Produce		json
//	@Param			id			path	string	true	"Profile ID"
//	@Param			campaignID	path	string	true	"Campaign ID"
//	@Success		204	"campaign deleted"
//	@Failure		403	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id}/campaigns/{campaignID} [delete].
func (h *CampaignsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.AccountIDFromContext(ctx)
	profileID := r.PathValue("id")
	campaignID := r.PathValue("campaignID")

	if err := h.CampaignService.DeleteCampaign(ctx, accountID, profileID, campaignID); err != nil {
		writeCampaignError(w, log, err, "Failed to delete campaign")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeCampaignError(w http.ResponseWriter, log *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidCampaignRequest):
		httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "title is required and goal_cents must not be negative",
		})
	case errors.Is(err, service.ErrUnauthorized):
		httpx.WriteJSON(w, http.StatusForbidden, profilesdk.ErrorResponse{
			Error:            "unauthorized",
			ErrorDescription: "WRITE permission required",
		})
	case errors.Is(err, service.ErrProfileNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, profilesdk.ErrorResponse{
			Error:            "not_found",
			ErrorDescription: "Profile not found",
		})
	case errors.Is(err, service.ErrCatalogNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, profilesdk.ErrorResponse{
			Error:            "not_found",
			ErrorDescription: "Catalog not found",
		})
	case errors.Is(err, service.ErrCampaignNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, profilesdk.ErrorResponse{
			Error:            "not_found",
			ErrorDescription: "Campaign not found",
		})
	default:
		log.Error("campaign request failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, profilesdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: fallback,
		})
	}
}
