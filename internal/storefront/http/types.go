package http

import (
	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of local dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// ============================================================================
// Session Types
// ============================================================================

// LoginRequest is the body of POST /v1/session/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleLoginRequest is the body of POST /v1/session/google.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken"`
}

// SessionResponse is the public view of the local session. The token never
// leaves the process.
type SessionResponse struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	State           string       `json:"state"`
	User            *domain.User `json:"user,omitempty"`
}

func sessionResponse(s domain.Session) SessionResponse {
	return SessionResponse{
		IsAuthenticated: s.IsAuthenticated,
		State:           s.State.String(),
		User:            s.User,
	}
}

// ============================================================================
// Cart and Checkout Types
// ============================================================================

// AddToCartRequest is the body of POST /v1/cart/items.
type AddToCartRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CouponRequest is the body of POST /v1/cart/coupon.
type CouponRequest struct {
	Code string `json:"code"`
}

// ToggleFavoriteResponse reports the favorite flag after a toggle.
type ToggleFavoriteResponse struct {
	ProductID  int64 `json:"productId"`
	IsFavorite bool  `json:"isFavorite"`
}

// FavoritesResponse lists the signed-in user's favorites.
type FavoritesResponse struct {
	Items []domain.Favorite `json:"items"`
}

// ============================================================================
// Account Types
// ============================================================================

// ChangeEmailRequest is the body of PUT /v1/profile/email.
type ChangeEmailRequest struct {
	NewEmail string `json:"newEmail"`
}

// OrderResponse is an order with its status rendered for display.
type OrderResponse struct {
	shopsdk.Order
	StatusLabel string `json:"statusLabel"`
	Cancellable bool   `json:"cancellable"`
}

func orderResponse(o shopsdk.Order) OrderResponse {
	return OrderResponse{
		Order:       o,
		StatusLabel: o.Status.String(),
		Cancellable: o.Status.Cancellable(),
	}
}

func orderResponses(orders []shopsdk.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderResponse(o))
	}
	return out
}

// ============================================================================
// Admin Types
// ============================================================================

// BanRequest is the body of PUT /v1/admin/users/{id}/ban.
type BanRequest struct {
	IsBanned bool `json:"isBanned"`
}

// RolesRequest is the body of PUT /v1/admin/users/{id}/roles.
type RolesRequest struct {
	Roles []string `json:"roles"`
}

// RoleNameRequest is the body of role create and rename.
type RoleNameRequest struct {
	Name string `json:"name"`
}

// OrderStatusRequest is the body of PUT /v1/admin/orders/{id}/status.
type OrderStatusRequest struct {
	Status shopsdk.OrderStatus `json:"status"`
}
