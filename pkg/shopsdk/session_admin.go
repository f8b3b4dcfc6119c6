package shopsdk

import (
	"context"
	"net/http"
)

// Back-office operations. Every call requires the Admin role; with
// CheckRoles enabled a token without it is refused before sending.

// RoleAdmin is the role every admin operation requires.
const RoleAdmin = "Admin"

// ============================================================================
// Products
// ============================================================================

// AdminListProducts lists products including back-office fields.
func (s *Session) AdminListProducts(ctx context.Context, p Pagination) (*ProductPage, error) {
	var page ProductPage
	if err := s.call(ctx, http.MethodGet, "admin/products", p.values(), nil, &page, "Failed to load products.", RoleAdmin); err != nil {
		return nil, err
	}
	return &page, nil
}

// AdminCreateProduct creates a product.
func (s *Session) AdminCreateProduct(ctx context.Context, in ProductInput) (*Product, error) {
	var p Product
	if err := s.call(ctx, http.MethodPost, "admin/products", nil, in, &p, "Failed to create product.", RoleAdmin); err != nil {
		return nil, err
	}
	return &p, nil
}

// AdminUpdateProduct replaces a product.
func (s *Session) AdminUpdateProduct(ctx context.Context, id int64, in ProductInput) error {
	return s.call(ctx, http.MethodPut, "admin/products/"+itoa(id), nil, in, nil, "Failed to update product.", RoleAdmin)
}

// AdminDeleteProduct deletes a product.
func (s *Session) AdminDeleteProduct(ctx context.Context, id int64) error {
	return s.call(ctx, http.MethodDelete, "admin/products/"+itoa(id), nil, nil, nil, "Failed to delete product.", RoleAdmin)
}

// ============================================================================
// Categories
// ============================================================================

// AdminListCategories lists every category.
func (s *Session) AdminListCategories(ctx context.Context) ([]Category, error) {
	var cats []Category
	if err := s.call(ctx, http.MethodGet, "admin/categories", nil, nil, &cats, "Failed to load categories.", RoleAdmin); err != nil {
		return nil, err
	}
	return cats, nil
}

// AdminCreateCategory creates a category.
func (s *Session) AdminCreateCategory(ctx context.Context, in CategoryInput) (*Category, error) {
	var c Category
	if err := s.call(ctx, http.MethodPost, "admin/categories", nil, in, &c, "Failed to create category.", RoleAdmin); err != nil {
		return nil, err
	}
	return &c, nil
}

// AdminUpdateCategory renames or redescribes a category.
func (s *Session) AdminUpdateCategory(ctx context.Context, id int64, in CategoryInput) error {
	return s.call(ctx, http.MethodPut, "admin/categories/"+itoa(id), nil, in, nil, "Failed to update category.", RoleAdmin)
}

// AdminDeleteCategory deletes a category.
func (s *Session) AdminDeleteCategory(ctx context.Context, id int64) error {
	return s.call(ctx, http.MethodDelete, "admin/categories/"+itoa(id), nil, nil, nil, "Failed to delete category.", RoleAdmin)
}

// ============================================================================
// Coupons
// ============================================================================

// AdminListCoupons lists every coupon.
func (s *Session) AdminListCoupons(ctx context.Context) ([]Coupon, error) {
	var coupons []Coupon
	if err := s.call(ctx, http.MethodGet, "admin/coupons", nil, nil, &coupons, "Failed to load coupons.", RoleAdmin); err != nil {
		return nil, err
	}
	return coupons, nil
}

// AdminCreateCoupon creates a coupon.
func (s *Session) AdminCreateCoupon(ctx context.Context, in CouponInput) (*Coupon, error) {
	var c Coupon
	if err := s.call(ctx, http.MethodPost, "admin/coupons", nil, in, &c, "Failed to create coupon.", RoleAdmin); err != nil {
		return nil, err
	}
	return &c, nil
}

// AdminUpdateCoupon replaces a coupon.
func (s *Session) AdminUpdateCoupon(ctx context.Context, id int64, in CouponInput) error {
	return s.call(ctx, http.MethodPut, "admin/coupons/"+itoa(id), nil, in, nil, "Failed to update coupon.", RoleAdmin)
}

// AdminDeleteCoupon deletes a coupon.
func (s *Session) AdminDeleteCoupon(ctx context.Context, id int64) error {
	return s.call(ctx, http.MethodDelete, "admin/coupons/"+itoa(id), nil, nil, nil, "Failed to delete coupon.", RoleAdmin)
}

// ============================================================================
// Orders
// ============================================================================

// AdminListOrders lists all orders.
func (s *Session) AdminListOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := s.call(ctx, http.MethodGet, "admin/orders", nil, nil, &orders, "Failed to load orders.", RoleAdmin); err != nil {
		return nil, err
	}
	return orders, nil
}

// AdminGetOrder fetches one order.
func (s *Session) AdminGetOrder(ctx context.Context, id int64) (*Order, error) {
	var o Order
	if err := s.call(ctx, http.MethodGet, "admin/orders/"+itoa(id), nil, nil, &o, "Failed to load order.", RoleAdmin); err != nil {
		return nil, err
	}
	return &o, nil
}

// AdminSetOrderStatus moves an order to status.
func (s *Session) AdminSetOrderStatus(ctx context.Context, id int64, status OrderStatus) error {
	path := "admin/orders/" + itoa(id) + "/status"
	return s.call(ctx, http.MethodPut, path, nil, OrderStatusRequest{Status: status}, nil, "Failed to update order status.", RoleAdmin)
}

// ============================================================================
// Users
// ============================================================================

// AdminListUsers lists all users.
func (s *Session) AdminListUsers(ctx context.Context) ([]AdminUser, error) {
	var users []AdminUser
	if err := s.call(ctx, http.MethodGet, "admin/users", nil, nil, &users, "Failed to load users.", RoleAdmin); err != nil {
		return nil, err
	}
	return users, nil
}

// AdminGetUser fetches one user.
func (s *Session) AdminGetUser(ctx context.Context, id string) (*AdminUser, error) {
	var u AdminUser
	if err := s.call(ctx, http.MethodGet, "admin/users/"+id, nil, nil, &u, "Failed to load user.", RoleAdmin); err != nil {
		return nil, err
	}
	return &u, nil
}

// AdminSetUserRoles replaces a user's roles.
func (s *Session) AdminSetUserRoles(ctx context.Context, id string, roles []string) error {
	return s.call(ctx, http.MethodPut, "admin/users/"+id+"/roles", nil, UserRolesRequest{Roles: roles}, nil, "Failed to update roles.", RoleAdmin)
}

// AdminSetUserBanned bans or unbans a user.
func (s *Session) AdminSetUserBanned(ctx context.Context, id string, banned bool) error {
	return s.call(ctx, http.MethodPut, "admin/users/"+id+"/ban", nil, BanRequest{IsBanned: banned}, nil, "Failed to update ban.", RoleAdmin)
}

// ============================================================================
// Roles
// ============================================================================

// AdminListRoles lists the assignable roles.
func (s *Session) AdminListRoles(ctx context.Context) ([]Role, error) {
	var roles []Role
	if err := s.call(ctx, http.MethodGet, "admin/roles", nil, nil, &roles, "Failed to load roles.", RoleAdmin); err != nil {
		return nil, err
	}
	return roles, nil
}

// AdminCreateRole creates a role.
func (s *Session) AdminCreateRole(ctx context.Context, name string) error {
	return s.call(ctx, http.MethodPost, "admin/roles", nil, CreateRoleRequest{Name: name}, nil, "Failed to create role.", RoleAdmin)
}

// AdminRenameRole renames a role.
func (s *Session) AdminRenameRole(ctx context.Context, id, newName string) error {
	return s.call(ctx, http.MethodPut, "admin/roles/"+id, nil, RenameRoleRequest{NewName: newName}, nil, "Failed to rename role.", RoleAdmin)
}

// AdminDeleteRole deletes a role.
func (s *Session) AdminDeleteRole(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodDelete, "admin/roles/"+id, nil, nil, nil, "Failed to delete role.", RoleAdmin)
}
