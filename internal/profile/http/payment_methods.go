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

type PaymentMethodsHandler struct {
	PaymentMethodService *service.PaymentMethodService
}

// HandleCreate godoc
//
//	@Summary		Create Payment Method
//	@Description	Attach a payout destination to a profile. Only a label and last-four
//	@Description	digits are stored. Requires WRITE.
//	@Tags			PaymentMethods
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string									true	"Profile ID"
//	@Param			request	body		profilesdk.CreatePaymentMethodRequest	true	"Payment method details"
//	@Success		201		{object}	profilesdk.PaymentMethodResponse
//	@Failure		400		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id}/payment-methods [post].
func (h *PaymentMethodsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req profilesdk.CreatePaymentMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	accountID := httpx.AccountIDFromContext(ctx)
	profileID := r.PathValue("id")

	method, err := h.PaymentMethodService.CreatePaymentMethod(ctx, accountID, profileID, domain.PaymentMethodKind(req.Kind), req.Label, req.Last4)
	if err != nil {
		writePaymentMethodError(w, log, err, "Failed to create payment method")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toPaymentMethodResponse(method))
}

// HandleList godoc
//
//	@Summary		List Payment Methods
//	@Description	List a profile's payout destinations. Requires READ; denial reads as an empty list.
//	@Tags			PaymentMethods
//	@Produce		json
//	@Param			id	path		string	true	"Profile ID"
//	@Success		200	{object}	profilesdk.PaymentMethodListResponse
//	@Failure		500	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id}/payment-methods [get].
func (h *PaymentMethodsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.AccountIDFromContext(ctx)
	profileID := r.PathValue("id")

	methods, err := h.PaymentMethodService.ListPaymentMethods(ctx, accountID, profileID)
	if err != nil {
		writePaymentMethodError(w, log, err, "Failed to list payment methods")
		return
	}

	out := make([]profilesdk.PaymentMethodResponse, len(methods))
	for i, m := range methods {
		out[i] = toPaymentMethodResponse(m)
	}
	httpx.WriteJSON(w, http.StatusOK, profilesdk.PaymentMethodListResponse{PaymentMethods: out})
}

// HandleGet godoc
//
//	@Summary		Get Payment Method
//	@Description	Fetch a single payout destination. Requires READ; denial reads as 404.
//	@Tags			PaymentMethods
//	@Produce		json
//	@Param			id				path		string	true	"Profile ID"
//	@Param			paymentMethodID	path		string	true	"Payment method ID"
//	@Success		200				{object}	profilesdk.PaymentMethodResponse
//	@Failure		404				{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500				{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id}/payment-methods/{paymentMethodID} [get].
func (h *PaymentMethodsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.AccountIDFromContext(ctx)
	profileID := r.PathValue("id")
	paymentMethodID := r.PathValue("paymentMethodID")

	method, err := h.PaymentMethodService.GetPaymentMethod(ctx, accountID, profileID, paymentMethodID)
	if err != nil {
		writePaymentMethodError(w, log, err, "Failed to get payment method")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toPaymentMethodResponse(method))
}

// HandleDelete godoc
//
//	@Summary		Delete Payment Method
//	@Description	Remove a payout destination. Requires WRITE.
//	@Tags			PaymentMethods
//	@Produce		json
//	@Param			id				path	string	true	"Profile ID"
//	@Param			paymentMethodID	path	string	true	"Payment method ID"
//	@Success		204	"payment method deleted"
//	@Failure		403	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	profilesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/profiles/{id}/payment-methods/{paymentMethodID} [delete].
func (h *PaymentMethodsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.AccountIDFromContext(ctx)
	profileID := r.PathValue("id")
	paymentMethodID := r.PathValue("paymentMethodID")

	if err := h.PaymentMethodService.DeletePaymentMethod(ctx, accountID, profileID, paymentMethodID); err != nil {
		writePaymentMethodError(w, log, err, "Failed to delete payment method")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writePaymentMethodError(w http.ResponseWriter, log *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidPaymentMethodRequest):
		httpx.WriteJSON(w, http.StatusBadRequest, profilesdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "kind must be bank, card, or paypal; label and a 4-digit last4 are required",
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
	case errors.Is(err, service.ErrPaymentMethodNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, profilesdk.ErrorResponse{
			Error:            "not_found",
			ErrorDescription: "Payment method not found",
		})
	default:
		log.Error("payment method request failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, profilesdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: fallback,
		})
	}
}
