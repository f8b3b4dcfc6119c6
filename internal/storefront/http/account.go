package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

type AccountHandler struct {
	Account *service.AccountService
}

// ============================================================================
// Addresses
// ============================================================================

// HandleListAddresses godoc
//
//	@Summary	List addresses
//	@Tags		Account
//	@Produce	json
//	@Success	200	{array}		shopsdk.Address
//	@Failure	401	{object}	httpx.ErrorBody	"Login required"
//	@Router		/v1/addresses [get].
func (h *AccountHandler) HandleListAddresses(w http.ResponseWriter, r *http.Request) {
	addrs, err := h.Account.ListAddresses(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to load addresses.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, addrs)
}

// HandleCreateAddress godoc
//
//	@Summary	Create address
//	@Tags		Account
//	@Accept		json
//	@Produce	json
//	@Param		request	body		shopsdk.AddressInput	true	"Address"
//	@Success	201		{object}	shopsdk.Address
//	@Router		/v1/addresses [post].
func (h *AccountHandler) HandleCreateAddress(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeAddress(w, r)
	if !ok {
		return
	}

	addr, err := h.Account.CreateAddress(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "Failed to save address.")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, addr)
}

// HandleUpdateAddress godoc
//
//	@Summary	Update address
//	@Tags		Account
//	@Accept		json
//	@Param		id		path	int						true	"Address id"
//	@Param		request	body	shopsdk.AddressInput	true	"Address"
//	@Success	204
//	@Router		/v1/addresses/{id} [put].
func (h *AccountHandler) HandleUpdateAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	in, ok := decodeAddress(w, r)
	if !ok {
		return
	}

	if err := h.Account.UpdateAddress(r.Context(), id, in); err != nil {
		writeServiceError(w, r, err, "Failed to save address.")
		return
	}
	writeNoContent(w)
}

// HandleDeleteAddress godoc
//
//	@Summary	Delete address
//	@Tags		Account
//	@Param		id	path	int	true	"Address id"
//	@Success	204
//	@Router		/v1/addresses/{id} [delete].
func (h *AccountHandler) HandleDeleteAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.Account.DeleteAddress(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "Failed to delete address.")
		return
	}
	writeNoContent(w)
}

func decodeAddress(w http.ResponseWriter, r *http.Request) (shopsdk.AddressInput, bool) {
	var in shopsdk.AddressInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		writeBadRequest(w, err)
		return in, false
	}
	if in.FullAddress == "" {
		writeBadRequest(w, errors.New("fullAddress is required"))
		return in, false
	}
	return in, true
}

// ============================================================================
// Profile
// ============================================================================

// HandleUpdateProfile godoc
//
//	@Summary	Update profile
//	@Tags		Account
//	@Accept		json
//	@Param		request	body	shopsdk.UpdateProfileRequest	true	"Profile"
//	@Success	204
//	@Router		/v1/profile [put].
func (h *AccountHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req shopsdk.UpdateProfileRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}

	if err := h.Account.UpdateProfile(r.Context(), req); err != nil {
		writeServiceError(w, r, err, "Failed to update profile.")
		return
	}
	writeNoContent(w)
}

// HandleChangeEmail godoc
//
//	@Summary	Change email
//	@Tags		Account
//	@Accept		json
//	@Param		request	body	ChangeEmailRequest	true	"New email"
//	@Success	204
//	@Router		/v1/profile/email [put].
func (h *AccountHandler) HandleChangeEmail(w http.ResponseWriter, r *http.Request) {
	var req ChangeEmailRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}
	if req.NewEmail == "" {
		writeBadRequest(w, errors.New("newEmail is required"))
		return
	}

	if err := h.Account.ChangeEmail(r.Context(), req.NewEmail); err != nil {
		writeServiceError(w, r, err, "Failed to change email.")
		return
	}
	writeNoContent(w)
}

// ============================================================================
// Orders
// ============================================================================

// HandleListOrders godoc
//
//	@Summary	List my orders
//	@Tags		Orders
//	@Produce	json
//	@Success	200	{array}	OrderResponse
//	@Router		/v1/orders [get].
func (h *AccountHandler) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Account.ListOrders(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to load orders.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, orderResponses(orders))
}

// HandleCancelOrder godoc
//
//	@Summary	Cancel order
//	@Tags		Orders
//	@Param		id	path	int	true	"Order id"
//	@Success	204
//	@Failure	409	{object}	httpx.ErrorBody	"Order already shipped"
//	@Router		/v1/orders/{id}/cancel [post].
func (h *AccountHandler) HandleCancelOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.Account.CancelOrder(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "Failed to cancel order.")
		return
	}
	writeNoContent(w)
}

// HandleInvoice streams the invoice document.
//
//	@Summary	Download invoice
//	@Tags		Orders
//	@Produce	application/pdf
//	@Param		id	path	int	true	"Order id"
//	@Success	200	{file}	binary
//	@Router		/v1/orders/{id}/invoice [get].
func (h *AccountHandler) HandleInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	inv, err := h.Account.DownloadInvoice(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Failed to download invoice.")
		return
	}

	contentType := inv.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	httpx.NoCache(w)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="invoice-`+strconv.FormatInt(id, 10)+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(inv.Data)
}
