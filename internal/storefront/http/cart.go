package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
)

type CartHandler struct {
	Cart *service.CartService
}

// HandleGet reloads and returns the cart of the current mode.
//
//	@Summary		Get cart
//	@Description	Signed in: the service cart. Signed out: the local guest cart. Lines are enriched with product data and clamped to stock.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	domain.Cart
//	@Failure		502	{object}	httpx.ErrorBody	"Upstream failure"
//	@Router			/v1/cart [get].
func (h *CartHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Cart.Load(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to load cart.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cart)
}

// HandleAdd adds a product or raises its quantity.
//
//	@Summary	Add to cart
//	@Tags		Cart
//	@Accept		json
//	@Produce	json
//	@Param		request	body		AddToCartRequest	true	"Product and quantity"
//	@Success	200		{object}	domain.Cart
//	@Failure	400		{object}	httpx.ErrorBody	"Invalid request"
//	@Router		/v1/cart/items [post].
func (h *CartHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}
	if req.ProductID <= 0 {
		writeBadRequest(w, errors.New("productId is required"))
		return
	}

	cart, err := h.Cart.AddToCart(r.Context(), req.ProductID, req.Quantity)
	if err != nil {
		writeServiceError(w, r, err, "Failed to add to cart.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cart)
}

// HandleRemove deletes a cart line. Guest lines are addressed by product id.
//
//	@Summary	Remove from cart
//	@Tags		Cart
//	@Produce	json
//	@Param		id	path		int	true	"Line id"
//	@Success	200	{object}	domain.Cart
//	@Router		/v1/cart/items/{id} [delete].
func (h *CartHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	cart, err := h.Cart.RemoveFromCart(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Failed to remove item.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cart)
}
