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

type OrdersHandler struct {
	OrderService *service.OrderService
}

// HandleCreate godoc
//
//	@Summary		Create Order
//	@Description	Record a purchase against a profile, optionally tied to one of its
//	@Description	campaigns. Requires WRITE.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Profile ID"
//	@Param			request	body		profilesdk.CreateOrderRequest	true	"Order details"
//	@Success		201		{object}	profilesdk.OrderResponse
//	@Failure		400		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id}/orders [post].
func (h *OrdersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req profilesdk.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	accountID := httpx.AccountIDFromContext(ctx)
	profileID := r.PathValue("id")

	order, err := h.OrderService.CreateOrder(ctx, accountID, profileID, req.CampaignID, req.BuyerEmail, req.TotalCents)
	if err != nil {
		writeOrderError(w, log, err, "Failed to create order")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toOrderResponse(order))
}

// HandleList godoc
//
//	@Summary		List Orders
//	@Description	List a profile's orders. Requires READ; denial reads as an empty list.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		string	true	"Profile ID"
//	@Success		200	{object}	profilesdk.OrderListResponse
//	@Failure		500	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id}/orders [get].
func (h *OrdersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.AccountIDFromContext(ctx)
	profileID := r.PathValue("id")

	orders, err := h.OrderService.ListOrders(ctx, accountID, profileID)
	if err != nil {
		writeOrderError(w, log, err, "Failed to list orders")
		return
	}

	out := make([]profilesdk.OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	httpx.WriteJSON(w, http.StatusOK, profilesdk.OrderListResponse{Orders: out})
}

// HandleGet godoc
//
//	@Summary		Get Order
//	@Description	Fetch a single order. Requires READ; denial reads as 404.
//	@Tags			Orders
//	@Produce		json
//	@Param			id		path		string	true	"Profile ID"
//	@Param			orderID	path		string	true	"Order ID"
//	@Success		200		{object}	profilesdk.OrderResponse
//	@Failure		404		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id}/orders/{orderID} [get].
func (h *OrdersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.AccountIDFromContext(ctx)
	profileID := r.PathValue("id")
	orderID := r.PathValue("orderID")

	order, err := h.OrderService.GetOrder(ctx, accountID, profileID, orderID)
	if err != nil {
		writeOrderError(w, log, err, "Failed to get order")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toOrderResponse(order))
}

// HandleUpdateStatus godoc
//
//	@Summary		Update Order Status
//	@Description	Move an order between pending, paid, fulfilled, and cancelled.
//	@Description	Requires WRITE.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Profile ID"
//	@Param			orderID	path		string								true	"Order ID"
//	@Param			request	body		profilesdk.UpdateOrderStatusRequest	true	"New status"
//	@Success		200		{object}	profilesdk.OrderResponse
//	@Failure		400		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id}/orders/{orderID} [patch].
func (h *OrdersHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req profilesdk.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	accountID := httpx.AccountIDFromContext(ctx)
	profileID := r.PathValue("id")
	orderID := r.PathValue("orderID")

	order, err := h.OrderService.UpdateOrderStatus(ctx, accountID, profileID, orderID, domain.OrderStatus(req.Status))
	if err != nil {
		writeOrderError(w, log, err, "Failed to update order status")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toOrderResponse(order))
}

func writeOrderError(w http.ResponseWriter, log *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidOrderRequest):
		httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "buyer_email, a positive total_cents, and a known status are required",
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
	case errors.Is(err, service.ErrCampaignNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, profilesdk.ErrorResponse{
			Error:            "not_found",
			ErrorDescription: "Campaign not found",
		})
	case errors.Is(err, service.ErrOrderNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, profilesdk.ErrorResponse{
			Error:            "not_found",
			ErrorDescription: "Order not found",
		})
	default:
		log.Error("order request failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, profilesdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: fallback,
		})
	}
}
