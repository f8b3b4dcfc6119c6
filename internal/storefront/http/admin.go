package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

// AdminHandler relays the back-office operations. The router only mounts it
// behind RequireSession and the Admin role; AdminService checks again.
type AdminHandler struct {
	Admin *service.AdminService
}

func decodeBody[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var v T
	if err := httpx.DecodeJSON(w, r, &v); err != nil {
		writeBadRequest(w, err)
		return v, false
	}
	return v, true
}

func pathString(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := r.PathValue(name)
	if v == "" {
		httpx.WriteError(w, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest, "invalid "+name)
		return "", false
	}
	return v, true
}

// ============================================================================
// Products
// ============================================================================

// HandleListProducts godoc
//
//	@Summary	List products (admin)
//	@Tags		Admin
//	@Produce	json
//	@Param		page		query		int	false	"Page number"
//	@Param		pageSize	query		int	false	"Page size"
//	@Success	200			{object}	shopsdk.ProductPage
//	@Failure	403			{object}	httpx.ErrorBody	"Admin role required"
//	@Router		/v1/admin/products [get].
func (h *AdminHandler) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	p, err := pagination(r.URL.Query())
	if err != nil {
		writeBadRequest(w, err)
		return
	}
	page, err := h.Admin.ListProducts(r.Context(), p)
	if err != nil {
		writeServiceError(w, r, err, "Failed to load products.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, page)
}

// HandleCreateProduct godoc
//
//	@Summary	Create product
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		shopsdk.ProductInput	true	"Product"
//	@Success	201		{object}	shopsdk.Product
//	@Router		/v1/admin/products [post].
func (h *AdminHandler) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeBody[shopsdk.ProductInput](w, r)
	if !ok {
		return
	}
	p, err := h.Admin.CreateProduct(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "Failed to save product.")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, p)
}

// HandleUpdateProduct godoc
//
//	@Summary	Update product
//	@Tags		Admin
//	@Accept		json
//	@Param		id		path	int						true	"Product id"
//	@Param		request	body	shopsdk.ProductInput	true	"Product"
//	@Success	204
//	@Router		/v1/admin/products/{id} [put].
func (h *AdminHandler) HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	in, ok := decodeBody[shopsdk.ProductInput](w, r)
	if !ok {
		return
	}
	if err := h.Admin.UpdateProduct(r.Context(), id, in); err != nil {
		writeServiceError(w, r, err, "Failed to save product.")
		return
	}
	writeNoContent(w)
}

// HandleDeleteProduct godoc
//
//	@Summary	Delete product
//	@Tags		Admin
//	@Param		id	path	int	true	"Product id"
//	@Success	204
//	@Router		/v1/admin/products/{id} [delete].
func (h *AdminHandler) HandleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Admin.DeleteProduct(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "Failed to delete product.")
		return
	}
	writeNoContent(w)
}

// ============================================================================
// Categories
// ============================================================================

// HandleListCategories godoc
//
//	@Summary	List categories (admin)
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{array}	shopsdk.Category
//	@Router		/v1/admin/categories [get].
func (h *AdminHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.Admin.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to load categories.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cats)
}

// HandleCreateCategory godoc
//
//	@Summary	Create category
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		shopsdk.CategoryInput	true	"Category"
//	@Success	201		{object}	shopsdk.Category
//	@Router		/v1/admin/categories [post].
func (h *AdminHandler) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeBody[shopsdk.CategoryInput](w, r)
	if !ok {
		return
	}
	c, err := h.Admin.CreateCategory(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "Failed to save category.")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, c)
}

// HandleUpdateCategory godoc
//
//	@Summary	Update category
//	@Tags		Admin
//	@Accept		json
//	@Param		id		path	int						true	"Category id"
//	@Param		request	body	shopsdk.CategoryInput	true	"Category"
//	@Success	204
//	@Router		/v1/admin/categories/{id} [put].
func (h *AdminHandler) HandleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	in, ok := decodeBody[shopsdk.CategoryInput](w, r)
	if !ok {
		return
	}
	if err := h.Admin.UpdateCategory(r.Context(), id, in); err != nil {
		writeServiceError(w, r, err, "Failed to save category.")
		return
	}
	writeNoContent(w)
}

// HandleDeleteCategory godoc
//
//	@Summary	Delete category
//	@Tags		Admin
//	@Param		id	path	int	true	"Category id"
//	@Success	204
//	@Router		/v1/admin/categories/{id} [delete].
func (h *AdminHandler) HandleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Admin.DeleteCategory(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "Failed to delete category.")
		return
	}
	writeNoContent(w)
}

// ============================================================================
// Coupons
// ============================================================================

// HandleListCoupons godoc
//
//	@Summary	List coupons
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{array}	shopsdk.Coupon
//	@Router		/v1/admin/coupons [get].
func (h *AdminHandler) HandleListCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.Admin.ListCoupons(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to load coupons.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, coupons)
}

// HandleCreateCoupon godoc
//
//	@Summary	Create coupon
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		shopsdk.CouponInput	true	"Coupon"
//	@Success	201		{object}	shopsdk.Coupon
//	@Router		/v1/admin/coupons [post].
func (h *AdminHandler) HandleCreateCoupon(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeBody[shopsdk.CouponInput](w, r)
	if !ok {
		return
	}
	c, err := h.Admin.CreateCoupon(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "Failed to save coupon.")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, c)
}

// HandleUpdateCoupon godoc
//
//	@Summary	Update coupon
//	@Tags		Admin
//	@Accept		json
//	@Param		id		path	int					true	"Coupon id"
//	@Param		request	body	shopsdk.CouponInput	true	"Coupon"
//	@Success	204
//	@Router		/v1/admin/coupons/{id} [put].
func (h *AdminHandler) HandleUpdateCoupon(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	in, ok := decodeBody[shopsdk.CouponInput](w, r)
	if !ok {
		return
	}
	if err := h.Admin.UpdateCoupon(r.Context(), id, in); err != nil {
		writeServiceError(w, r, err, "Failed to save coupon.")
		return
	}
	writeNoContent(w)
}

// HandleDeleteCoupon godoc
//
//	@Summary	Delete coupon
//	@Tags		Admin
//	@Param		id	path	int	true	"Coupon id"
//	@Success	204
//	@Router		/v1/admin/coupons/{id} [delete].
func (h *AdminHandler) HandleDeleteCoupon(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Admin.DeleteCoupon(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "Failed to delete coupon.")
		return
	}
	writeNoContent(w)
}

// ============================================================================
// Orders
// ============================================================================

// HandleListOrders godoc
//
//	@Summary	List all orders
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{array}	OrderResponse
//	@Router		/v1/admin/orders [get].
func (h *AdminHandler) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Admin.ListOrders(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to load orders.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, orderResponses(orders))
}

// HandleGetOrder godoc
//
//	@Summary	Get order
//	@Tags		Admin
//	@Produce	json
//	@Param		id	path		int	true	"Order id"
//	@Success	200	{object}	OrderResponse
//	@Router		/v1/admin/orders/{id} [get].
func (h *AdminHandler) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	o, err := h.Admin.GetOrder(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Order not found.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, orderResponse(*o))
}

// HandleSetOrderStatus godoc
//
//	@Summary	Set order status
//	@Tags		Admin
//	@Accept		json
//	@Param		id		path	int					true	"Order id"
//	@Param		request	body	OrderStatusRequest	true	"Status"
//	@Success	204
//	@Router		/v1/admin/orders/{id}/status [put].
func (h *AdminHandler) HandleSetOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := decodeBody[OrderStatusRequest](w, r)
	if !ok {
		return
	}
	if req.Status < shopsdk.OrderPending || req.Status > shopsdk.OrderCancelled {
		writeBadRequest(w, errors.New("invalid status"))
		return
	}
	if err := h.Admin.SetOrderStatus(r.Context(), id, req.Status); err != nil {
		writeServiceError(w, r, err, "Failed to update order.")
		return
	}
	writeNoContent(w)
}

// ============================================================================
// Users
// ============================================================================

// HandleListUsers godoc
//
//	@Summary	List users
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{array}	shopsdk.AdminUser
//	@Router		/v1/admin/users [get].
func (h *AdminHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Admin.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to load users.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, users)
}

// HandleGetUser godoc
//
//	@Summary	Get user
//	@Tags		Admin
//	@Produce	json
//	@Param		id	path		string	true	"User id"
//	@Success	200	{object}	shopsdk.AdminUser
//	@Router		/v1/admin/users/{id} [get].
func (h *AdminHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathString(w, r, "id")
	if !ok {
		return
	}
	u, err := h.Admin.GetUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "User not found.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

// HandleSetUserRoles godoc
//
//	@Summary	Replace user roles
//	@Tags		Admin
//	@Accept		json
//	@Param		id		path	string			true	"User id"
//	@Param		request	body	RolesRequest	true	"Roles"
//	@Success	204
//	@Router		/v1/admin/users/{id}/roles [put].
func (h *AdminHandler) HandleSetUserRoles(w http.ResponseWriter, r *http.Request) {
	id, ok := pathString(w, r, "id")
	if !ok {
		return
	}
	req, ok := decodeBody[RolesRequest](w, r)
	if !ok {
		return
	}
	if err := h.Admin.SetUserRoles(r.Context(), id, req.Roles); err != nil {
		writeServiceError(w, r, err, "Failed to update roles.")
		return
	}
	writeNoContent(w)
}

// HandleSetUserBanned godoc
//
//	@Summary	Ban or unban user
//	@Tags		Admin
//	@Accept		json
//	@Param		id		path	string		true	"User id"
//	@Param		request	body	BanRequest	true	"Ban flag"
//	@Success	204
//	@Router		/v1/admin/users/{id}/ban [put].
func (h *AdminHandler) HandleSetUserBanned(w http.ResponseWriter, r *http.Request) {
	id, ok := pathString(w, r, "id")
	if !ok {
		return
	}
	req, ok := decodeBody[BanRequest](w, r)
	if !ok {
		return
	}
	if err := h.Admin.SetUserBanned(r.Context(), id, req.IsBanned); err != nil {
		writeServiceError(w, r, err, "Failed to update user.")
		return
	}
	writeNoContent(w)
}

// ============================================================================
// Roles
// ============================================================================

// HandleListRoles godoc
//
//	@Summary	List roles
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{array}	shopsdk.Role
//	@Router		/v1/admin/roles [get].
func (h *AdminHandler) HandleListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.Admin.ListRoles(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to load roles.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, roles)
}

// HandleCreateRole godoc
//
//	@Summary	Create role
//	@Tags		Admin
//	@Accept		json
//	@Param		request	body	RoleNameRequest	true	"Role name"
//	@Success	204
//	@Router		/v1/admin/roles [post].
func (h *AdminHandler) HandleCreateRole(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBody[RoleNameRequest](w, r)
	if !ok {
		return
	}
	if req.Name == "" {
		writeBadRequest(w, errors.New("name is required"))
		return
	}
	if err := h.Admin.CreateRole(r.Context(), req.Name); err != nil {
		writeServiceError(w, r, err, "Failed to create role.")
		return
	}
	writeNoContent(w)
}

// HandleRenameRole godoc
//
//	@Summary	Rename role
//	@Tags		Admin
//	@Accept		json
//	@Param		id		path	string			true	"Role id"
//	@Param		request	body	RoleNameRequest	true	"New name"
//	@Success	204
//	@Router		/v1/admin/roles/{id} [put].
func (h *AdminHandler) HandleRenameRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathString(w, r, "id")
	if !ok {
		return
	}
	req, ok := decodeBody[RoleNameRequest](w, r)
	if !ok {
		return
	}
	if req.Name == "" {
		writeBadRequest(w, errors.New("name is required"))
		return
	}
	if err := h.Admin.RenameRole(r.Context(), id, req.Name); err != nil {
		writeServiceError(w, r, err, "Failed to rename role.")
		return
	}
	writeNoContent(w)
}

// HandleDeleteRole godoc
//
//	@Summary	Delete role
//	@Tags		Admin
//	@Param		id	path	string	true	"Role id"
//	@Success	204
//	@Router		/v1/admin/roles/{id} [delete].
func (h *AdminHandler) HandleDeleteRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathString(w, r, "id")
	if !ok {
		return
	}
	if err := h.Admin.DeleteRole(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "Failed to delete role.")
		return
	}
	writeNoContent(w)
}
