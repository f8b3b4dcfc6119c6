package http

import (
	"net/http"

	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
)

type CheckoutHandler struct {
	Checkout *service.CheckoutService
}

// HandleCoupon validates a coupon against the signed-in cart.
//
//	@Summary	Apply coupon
//	@Tags		Checkout
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CouponRequest	true	"Coupon code"
//	@Success	200		{object}	shopsdk.CouponResult
//	@Failure	400		{object}	httpx.ErrorBody	"Invalid coupon"
//	@Failure	401		{object}	httpx.ErrorBody	"Login required"
//	@Router		/v1/cart/coupon [post].
func (h *CheckoutHandler) HandleCoupon(w http.ResponseWriter, r *http.Request) {
	var req CouponRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}

	res, err := h.Checkout.ApplyCoupon(r.Context(), req.Code)
	if err != nil {
		writeServiceError(w, r, err, "Invalid coupon.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

// HandleCheckout places the order.
//
//	@Summary	Checkout
//	@Tags		Checkout
//	@Accept		json
//	@Produce	json
//	@Param		request	body		service.CheckoutInput	true	"Address, payment and coupon"
//	@Success	201		{object}	OrderResponse
//	@Failure	400		{object}	httpx.ErrorBody	"Missing address, bad payment method or invalid coupon"
//	@Failure	401		{object}	httpx.ErrorBody	"Login required"
//	@Router		/v1/checkout [post].
func (h *CheckoutHandler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	var in service.CheckoutInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		writeBadRequest(w, err)
		return
	}

	order, err := h.Checkout.Checkout(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "Checkout failed.")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, orderResponse(*order))
}
