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

type CatalogsHandler struct {
	CatalogService *service.CatalogService
}

// HandleCreate godoc
//
//	@Summary		Create Catalog
//	@Description	Create a catalog under a profile. Requires WRITE.
//	@Tags			Catalogs
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Profile ID"
//	@Param			request	body		profilesdk.CatalogRequest	true	"Catalog details"
//	@Success		201		{object}	profilesdk.CatalogResponse
//	@Failure		400		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id}/catalogs [post].
func (h *CatalogsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req profilesdk.CatalogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	accountID := httpx.AccountIDFromContext(ctx)
	profileID := r.PathValue("id")

	catalog, err := h.CatalogService.CreateCatalog(ctx, accountID, profileID, req.Name, req.Description)
	if err != nil {
		writeCatalogError(w, log, err, "Failed to create catalog")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toCatalogResponse(catalog))
}

// HandleList godoc
//
//	@Summary		List Catalogs
//	@Description	List a profile's catalogs. Requires READ; denial reads as an empty list.
//	@Tags			Catalogs
//	@Produce		json
//	@Param			id	path		string	true	"Profile ID"
//	@Success		200	{object}	profilesdk.CatalogListResponse
//	@Failure		500	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id}/catalogs [get].
func (h *CatalogsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.AccountIDFromContext(ctx)
	profileID := r.PathValue("id")

	catalogs, err := h.CatalogService.ListCatalogs(ctx, accountID, profileID)
	if err != nil {
		writeCatalogError(w, log, err, "Failed to list catalogs")
		return
	}

	out := make([]profilesdk.CatalogResponse, len(catalogs))
	for i, c := range catalogs {
		out[i] = toCatalogResponse(c)
	}
	httpx.WriteJSON(w, http.StatusOK, profilesdk.CatalogListResponse{Catalogs: out})
}

// HandleGet godoc
//
//	@Summary		Get Catalog
//	@Description	Fetch a single catalog. Requires READ; denial reads as 404.
//	@Tags			Catalogs
//	@Produce		json
//	@Param			id			path		string	true	"Profile ID"
//	@Param			catalogID	path		string	true	"Catalog ID"
//	@Success		200			{object}	profilesdk.CatalogResponse
//	@Failure		404			{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500			{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id}/catalogs/{catalogID} [get].
func (h *CatalogsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.AccountIDFromContext(ctx)
	profileID := r.PathValue("id")
	catalogID := r.PathValue("catalogID")

	catalog, err := h.CatalogService.GetCatalog(ctx, accountID, profileID, catalogID)
	if err != nil {
		writeCatalogError(w, log, err, "Failed to get catalog")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCatalogResponse(catalog))
}

// HandleUpdate godoc
//
//	@Summary		Update Catalog
//	@Description	Replace a catalog's name, description, and published flag. Requires WRITE.
//	@Tags			Catalogs
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string					true	"Profile ID"
//	@Param			catalogID	path		string					true	"Catalog ID"
//	@Param			request		body		profilesdk.CatalogRequest	true	"Catalog details"
//	@Success		200			{object}	profilesdk.CatalogResponse
//	@Failure		400			{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		403			{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500			{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id}/catalogs/{catalogID} [patch].
func (h *CatalogsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req profilesdk.CatalogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	accountID := httpx.AccountIDFromContext(ctx)

	catalog, err := h.CatalogService.UpdateCatalog(ctx, accountID, domain.Catalog{
		ID:          r.PathValue("catalogID"),
		ProfileID:   r.PathValue("id"),
		Name:        req.Name,
		Description: req.Description,
		Published:   req.Published,
	})
	if err != nil {
		writeCatalogError(w, log, err, "Failed to update catalog")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCatalogResponse(catalog))
}

// HandleDelete godoc
//
//	@Summary		Delete Catalog
//	@Description	Delete a catalog. Requires WRITE.
//	@Tags			Catalogs
//	@Produce		json
//	@Param			id			path	string	true	"Profile ID"
//	@Param			catalogID	path	string	true	"Catalog ID"
//	@Success		204	"catalog deleted"
//	@Failure		403	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id}/catalogs/{catalogID} [delete].
func (h *CatalogsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.AccountIDFromContext(ctx)
	profileID := r.PathValue("id")
	catalogID := r.PathValue("catalogID")

	if err := h.CatalogService.DeleteCatalog(ctx, accountID, profileID, catalogID); err != nil {
		writeCatalogError(w, log, err, "Failed to delete catalog")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeCatalogError(w http.ResponseWriter, log *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidCatalogRequest):
		httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "name is required",
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
	default:
		log.Error("catalog request failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, profilesdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: fallback,
		})
	}
}
