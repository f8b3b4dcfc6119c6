package shopsdk

import "time"

// ============================================================================
// Auth Types
// ============================================================================

// LoginRequest is the body of POST Auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST Auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// GoogleLoginRequest is the body of POST Auth/signin-google.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken"`
}

// TokenResponse is the data of every auth endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}

// ============================================================================
// Profile Types
// ============================================================================

// Profile is the authoritative user projection of GET Profile/me.
type Profile struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	Username string   `json:"username"`
	Phone    string   `json:"phone"`
	Roles    []string `json:"roles"`
}

// UpdateProfileRequest is the body of PUT Profile.
type UpdateProfileRequest struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
}

// ChangeEmailRequest is the body of PUT Profile/email.
type ChangeEmailRequest struct {
	NewEmail string `json:"newEmail"`
}

// ============================================================================
// Catalog Types
// ============================================================================

// Product is a catalog record. StockQuantity is the live stock used to clamp
// cart quantities.
type Product struct {
	ID            int64   `json:"id"`
	ProductCode   string  `json:"productCode"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
	SoldQuantity  int     `json:"soldQuantity,omitempty"`
	ImageURL      string  `json:"imageUrl"`
	CategoryID    int64   `json:"categoryId"`
	CategoryName  string  `json:"categoryName,omitempty"`
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Items      []Product `json:"items"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
	TotalCount int       `json:"totalCount"`
}

// ProductQuery filters GET Products. Zero values are omitted.
type ProductQuery struct {
	SearchTerm    string
	CategoryID    int64
	SortBy        string // "name", "price", "createdAt"
	SortDirection string // "asc", "desc"
	MinPrice      float64
	MaxPrice      float64
	Page          int
	PageSize      int
}

// ProductInput is the body of admin product create/update.
type ProductInput struct {
	ProductCode   string  `json:"productCode"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
	ImageURL      string  `json:"imageUrl"`
	CategoryID    int64   `json:"categoryId"`
}

// Category groups products.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryInput is the body of admin category create/update.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ============================================================================
// Cart Types
// ============================================================================

// CartLine is a server-side cart line.
type CartLine struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CartUpsertRequest is the body of POST Cart. The service replaces the
// quantity of an existing line for the same product.
type CartUpsertRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CouponRequest is the body of POST Cart/coupon.
type CouponRequest struct {
	CouponCode string `json:"couponCode"`
}

// CouponResult is the data of POST Cart/coupon.
type CouponResult struct {
	DiscountAmount float64 `json:"discountAmount"`
}

// ============================================================================
// Favorite Types
// ============================================================================

// Favorite is a favorited product summary.
type Favorite struct {
	ProductID    int64   `json:"productId"`
	ProductName  string  `json:"productName"`
	ProductPrice float64 `json:"productPrice"`
	ProductImage string  `json:"productImage"`
}

// FavoriteRequest is the body of POST Favorites.
type FavoriteRequest struct {
	ProductID int64 `json:"productId"`
}

// ============================================================================
// Address Types
// ============================================================================

// Address is a saved delivery address.
type Address struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	FullAddress string `json:"fullAddress"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
}

// AddressInput is the body of address create/update.
type AddressInput struct {
	Title       string `json:"title"`
	FullAddress string `json:"fullAddress"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
}

// ============================================================================
// Order Types
// ============================================================================

// OrderStatus is the service's order state.
type OrderStatus int

const (
	OrderPending OrderStatus = iota
	OrderProcessing
	OrderShipped
	OrderDelivered
	OrderCancelled
)

// String renders the status the way the storefront labels it.
func (s OrderStatus) String() string {
	switch s {
	case OrderPending:
		return "Pending"
	case OrderProcessing:
		return "Processing"
	case OrderShipped:
		return "Shipped"
	case OrderDelivered:
		return "Delivered"
	case OrderCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Cancellable reports whether a customer may still cancel.
func (s OrderStatus) Cancellable() bool {
	return s == OrderPending || s == OrderProcessing
}

// PaymentMethod is the payment option of a checkout.
type PaymentMethod string

const (
	PaymentMock   PaymentMethod = "Mock"
	PaymentPayPal PaymentMethod = "PayPal"
)

// Valid reports whether m is a method the service accepts.
func (m PaymentMethod) Valid() bool {
	return m == PaymentMock || m == PaymentPayPal
}

// OrderItem is one line of an order.
type OrderItem struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalPrice  float64 `json:"totalPrice,omitempty"`
}

// Order is a placed order.
type Order struct {
	ID             int64       `json:"id"`
	CreatedAt      time.Time   `json:"createdAt"`
	Status         OrderStatus `json:"status"`
	TotalAmount    float64     `json:"totalAmount"`
	DiscountAmount float64     `json:"discountAmount,omitempty"`
	Address        string      `json:"address,omitempty"`
	PaymentMethod  string      `json:"paymentMethod,omitempty"`
	UserEmail      string      `json:"userEmail,omitempty"`
	Items          []OrderItem `json:"items"`
}

// CheckoutRequest is the body of POST Orders/checkout. CouponCode is sent
// as null when empty.
type CheckoutRequest struct {
	Address       string        `json:"address"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	CouponCode    *string       `json:"couponCode"`
}

// CancelOrderRequest is the body of PUT Orders/{id}/cancel.
type CancelOrderRequest struct {
	OrderID int64 `json:"orderId"`
}

// OrderStatusRequest is the body of PUT admin/orders/{id}/status.
type OrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}

// Invoice is a downloaded order invoice.
type Invoice struct {
	OrderID     int64
	ContentType string
	Data        []byte
}

// ============================================================================
// Admin Types
// ============================================================================

// Coupon is a discount code managed by admins.
type Coupon struct {
	ID              int64     `json:"id"`
	Code            string    `json:"code"`
	DiscountAmount  float64   `json:"discountAmount"`
	ExpiryDate      time.Time `json:"expiryDate"`
	IsActive        bool      `json:"isActive"`
	MaxUsageCount   int       `json:"maxUsageCount"`
	MaxUsagePerUser int       `json:"maxUsagePerUser"`
}

// CouponInput is the body of admin coupon create/update.
type CouponInput struct {
	Code            string    `json:"code"`
	DiscountAmount  float64   `json:"discountAmount"`
	ExpiryDate      time.Time `json:"expiryDate"`
	IsActive        bool      `json:"isActive"`
	MaxUsageCount   int       `json:"maxUsageCount"`
	MaxUsagePerUser int       `json:"maxUsagePerUser"`
}

// AdminUser is a user record as listed in the back office.
type AdminUser struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	Username string   `json:"username"`
	Phone    string   `json:"phone,omitempty"`
	Roles    []string `json:"roles"`
	IsBanned bool     `json:"isBanned"`
}

// UserRolesRequest is the body of PUT admin/users/{id}/roles.
type UserRolesRequest struct {
	Roles []string `json:"roles"`
}

// BanRequest is the body of PUT admin/users/{id}/ban.
type BanRequest struct {
	IsBanned bool `json:"isBanned"`
}

// Role is an assignable role.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateRoleRequest is the body of POST admin/roles.
type CreateRoleRequest struct {
	Name string `json:"name"`
}

// RenameRoleRequest is the body of PUT admin/roles/{id}.
type RenameRoleRequest struct {
	NewName string `json:"newName"`
}

// Pagination is the page request of admin listings.
type Pagination struct {
	Page     int
	PageSize int
}
