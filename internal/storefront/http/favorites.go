package http

import (
	"net/http"

	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
)

type FavoritesHandler struct {
	Favorites *service.FavoritesService
}

// HandleList refreshes and returns the favorites.
//
//	@Summary	List favorites
//	@Tags		Favorites
//	@Produce	json
//	@Success	200	{object}	FavoritesResponse
//	@Failure	401	{object}	httpx.ErrorBody	"Login required"
//	@Router		/v1/favorites [get].
func (h *FavoritesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.Favorites.Load(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to load favorites.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, FavoritesResponse{Items: items})
}

// HandleToggle flips the favorite flag of a product.
//
//	@Summary	Toggle favorite
//	@Tags		Favorites
//	@Produce	json
//	@Param		productId	path		int	true	"Product id"
//	@Success	200			{object}	ToggleFavoriteResponse
//	@Failure	401			{object}	httpx.ErrorBody	"Login required"
//	@Router		/v1/favorites/{productId}/toggle [post].
func (h *FavoritesHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "productId")
	if !ok {
		return
	}

	fav, err := h.Favorites.ToggleFavorite(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Failed to update favorites.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, ToggleFavoriteResponse{ProductID: id, IsFavorite: fav})
}
