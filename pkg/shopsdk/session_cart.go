package shopsdk

import (
	"context"
	"net/http"
)

// Cart and favorites operations for the signed-in customer.

// ============================================================================
// Cart
// ============================================================================

// GetCart returns the server cart lines.
func (s *Session) GetCart(ctx context.Context) ([]CartLine, error) {
	var lines []CartLine
	if err := s.call(ctx, http.MethodGet, "Cart", nil, nil, &lines, "Failed to load cart."); err != nil {
		return nil, err
	}
	return lines, nil
}

// UpsertCartItem creates a line for productID or replaces its quantity.
func (s *Session) UpsertCartItem(ctx context.Context, productID int64, quantity int) error {
	req := CartUpsertRequest{ProductID: productID, Quantity: quantity}
	return s.call(ctx, http.MethodPost, "Cart", nil, req, nil, "Failed to update cart.")
}

// DeleteCartItem removes a server cart line by its line id.
func (s *Session) DeleteCartItem(ctx context.Context, lineID int64) error {
	return s.call(ctx, http.MethodDelete, "Cart/"+itoa(lineID), nil, nil, nil, "Failed to remove item.")
}

// ApplyCoupon asks the service to validate code against the current cart.
func (s *Session) ApplyCoupon(ctx context.Context, code string) (*CouponResult, error) {
	var res CouponResult
	if err := s.call(ctx, http.MethodPost, "Cart/coupon", nil, CouponRequest{CouponCode: code}, &res, "Invalid coupon."); err != nil {
		return nil, err
	}
	return &res, nil
}

// ============================================================================
// Favorites
// ============================================================================

// ListFavorites returns the favorited product summaries.
func (s *Session) ListFavorites(ctx context.Context) ([]Favorite, error) {
	var favs []Favorite
	if err := s.call(ctx, http.MethodGet, "Favorites", nil, nil, &favs, "Failed to load favorites."); err != nil {
		return nil, err
	}
	return favs, nil
}

// AddFavorite favorites productID and returns the summary the service
// recorded.
func (s *Session) AddFavorite(ctx context.Context, productID int64) (*Favorite, error) {
	var fav Favorite
	if err := s.call(ctx, http.MethodPost, "Favorites", nil, FavoriteRequest{ProductID: productID}, &fav, "Failed to add favorite."); err != nil {
		return nil, err
	}
	if fav.ProductID == 0 {
		fav.ProductID = productID
	}
	return &fav, nil
}

// RemoveFavorite unfavorites productID.
func (s *Session) RemoveFavorite(ctx context.Context, productID int64) error {
	return s.call(ctx, http.MethodDelete, "Favorites/"+itoa(productID), nil, nil, nil, "Failed to remove favorite.")
}
