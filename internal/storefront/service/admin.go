package service

import (
	"context"

	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

// AdminService passes back-office calls through for users holding the
// Admin role. The role is checked against the confirmed profile here, then
// against the token by the gateway, then by the service itself.
type AdminService struct {
	session *SessionService
}

func NewAdminService(session *SessionService) *AdminService {
	return &AdminService{session: session}
}

func (s *AdminService) api() (*shopsdk.Session, error) {
	api, err := s.session.requireLogin()
	if err != nil {
		return nil, err
	}
	if !s.session.Snapshot().User.HasRole(shopsdk.RoleAdmin) {
		return nil, ErrAdminRequired
	}
	return api, nil
}

// ============================================================================
// Products
// ============================================================================

func (s *AdminService) ListProducts(ctx context.Context, p shopsdk.Pagination) (*shopsdk.ProductPage, error) {
	api, err := s.api()
	if err != nil {
		return nil, err
	}
	return api.AdminListProducts(ctx, p)
}

func (s *AdminService) CreateProduct(ctx context.Context, in shopsdk.ProductInput) (*shopsdk.Product, error) {
	api, err := s.api()
	if err != nil {
		return nil, err
	}
	return api.AdminCreateProduct(ctx, in)
}

func (s *AdminService) UpdateProduct(ctx context.Context, id int64, in shopsdk.ProductInput) error {
	api, err := s.api()
	if err != nil {
		return err
	}
	return api.AdminUpdateProduct(ctx, id, in)
}

func (s *AdminService) DeleteProduct(ctx context.Context, id int64) error {
	api, err := s.api()
	if err != nil {
		return err
	}
	return api.AdminDeleteProduct(ctx, id)
}

// ============================================================================
// Categories
// ============================================================================

func (s *AdminService) ListCategories(ctx context.Context) ([]shopsdk.Category, error) {
	api, err := s.api()
	if err != nil {
		return nil, err
	}
	return api.AdminListCategories(ctx)
}

func (s *AdminService) CreateCategory(ctx context.Context, in shopsdk.CategoryInput) (*shopsdk.Category, error) {
	api, err := s.api()
	if err != nil {
		return nil, err
	}
	return api.AdminCreateCategory(ctx, in)
}

func (s *AdminService) UpdateCategory(ctx context.Context, id int64, in shopsdk.CategoryInput) error {
	api, err := s.api()
	if err != nil {
		return err
	}
	return api.AdminUpdateCategory(ctx, id, in)
}

func (s *AdminService) DeleteCategory(ctx context.Context, id int64) error {
	api, err := s.api()
	if err != nil {
		return err
	}
	return api.AdminDeleteCategory(ctx, id)
}

// ============================================================================
// Coupons
// ============================================================================

func (s *AdminService) ListCoupons(ctx context.Context) ([]shopsdk.Coupon, error) {
	api, err := s.api()
	if err != nil {
		return nil, err
	}
	return api.AdminListCoupons(ctx)
}

func (s *AdminService) CreateCoupon(ctx context.Context, in shopsdk.CouponInput) (*shopsdk.Coupon, error) {
	api, err := s.api()
	if err != nil {
		return nil, err
	}
	return api.AdminCreateCoupon(ctx, in)
}

func (s *AdminService) UpdateCoupon(ctx context.Context, id int64, in shopsdk.CouponInput) error {
	api, err := s.api()
	if err != nil {
		return err
	}
	return api.AdminUpdateCoupon(ctx, id, in)
}

func (s *AdminService) DeleteCoupon(ctx context.Context, id int64) error {
	api, err := s.api()
	if err != nil {
		return err
	}
	return api.AdminDeleteCoupon(ctx, id)
}

// ============================================================================
// Orders
// ============================================================================

func (s *AdminService) ListOrders(ctx context.Context) ([]shopsdk.Order, error) {
	api, err := s.api()
	if err != nil {
		return nil, err
	}
	return api.AdminListOrders(ctx)
}

func (s *AdminService) GetOrder(ctx context.Context, id int64) (*shopsdk.Order, error) {
	api, err := s.api()
	if err != nil {
		return nil, err
	}
	return api.AdminGetOrder(ctx, id)
}

func (s *AdminService) SetOrderStatus(ctx context.Context, id int64, status shopsdk.OrderStatus) error {
	api, err := s.api()
	if err != nil {
		return err
	}
	return api.AdminSetOrderStatus(ctx, id, status)
}

// ============================================================================
// Users
// ============================================================================

func (s *AdminService) ListUsers(ctx context.Context) ([]shopsdk.AdminUser, error) {
	api, err := s.api()
	if err != nil {
		return nil, err
	}
	return api.AdminListUsers(ctx)
}

func (s *AdminService) GetUser(ctx context.Context, id string) (*shopsdk.AdminUser, error) {
	api, err := s.api()
	if err != nil {
		return nil, err
	}
	return api.AdminGetUser(ctx, id)
}

func (s *AdminService) SetUserRoles(ctx context.Context, id string, roles []string) error {
	api, err := s.api()
	if err != nil {
		return err
	}
	return api.AdminSetUserRoles(ctx, id, roles)
}

func (s *AdminService) SetUserBanned(ctx context.Context, id string, banned bool) error {
	api, err := s.api()
	if err != nil {
		return err
	}
	return api.AdminSetUserBanned(ctx, id, banned)
}

// ============================================================================
// Roles
// ============================================================================

func (s *AdminService) ListRoles(ctx context.Context) ([]shopsdk.Role, error) {
	api, err := s.api()
	if err != nil {
		return nil, err
	}
	return api.AdminListRoles(ctx)
}

func (s *AdminService) CreateRole(ctx context.Context, name string) error {
	api, err := s.api()
	if err != nil {
		return err
	}
	return api.AdminCreateRole(ctx, name)
}

func (s *AdminService) RenameRole(ctx context.Context, id, newName string) error {
	api, err := s.api()
	if err != nil {
		return err
	}
	return api.AdminRenameRole(ctx, id, newName)
}

func (s *AdminService) DeleteRole(ctx context.Context, id string) error {
	api, err := s.api()
	if err != nil {
		return err
	}
	return api.AdminDeleteRole(ctx, id)
}
