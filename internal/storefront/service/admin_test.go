package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
	"github.com/stretchr/testify/require"
)

func TestAdminRequiresRole(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t, CartOptions{})

	_, err := h.admin.ListUsers(ctx)
	require.ErrorIs(t, err, ErrLoginRequired)

	h.loginAlice()
	h.srv.ResetCalls()
	_, err = h.admin.ListUsers(ctx)
	require.ErrorIs(t, err, ErrAdminRequired)
	require.ErrorIs(t, h.admin.SetUserBanned(ctx, aliceID, true), ErrAdminRequired)
	require.Empty(t, h.srv.Calls())
}

func TestAdminPassThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t, CartOptions{})
	require.NoError(t, h.session.LoginWithPassword(ctx, adminEmail, password))

	users, err := h.admin.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	require.NoError(t, h.admin.SetUserBanned(ctx, aliceID, true))
	users, err = h.admin.ListUsers(ctx)
	require.NoError(t, err)
	for _, u := range users {
		require.Equal(t, u.ID == aliceID, u.IsBanned)
	}

	page, err := h.admin.ListProducts(ctx, shopsdk.Pagination{Page: 1, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.Equal(t, 3, page.TotalCount)

	roles, err := h.admin.ListRoles(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, roles)
	require.NoError(t, h.admin.CreateRole(ctx, "Support"))

	id := h.srv.AddOrder(aliceID, shopsdk.Order{Status: shopsdk.OrderPending})
	require.NoError(t, h.admin.SetOrderStatus(ctx, id, shopsdk.OrderShipped))
	orders, err := h.admin.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, shopsdk.OrderShipped, orders[0].Status)
}

func TestCatalog(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t, CartOptions{})
	h.srv.AddCategory(shopsdk.Category{ID: 9, Name: "Kitchen"})

	page, err := h.catalog.ListProducts(ctx, shopsdk.ProductQuery{SearchTerm: "mug"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, "Mug", page.Items[0].Name)

	p, err := h.catalog.GetProduct(ctx, teeID)
	require.NoError(t, err)
	require.Equal(t, 10, p.StockQuantity)

	_, err = h.catalog.GetProduct(ctx, 999)
	require.ErrorIs(t, err, shopsdk.ErrNotFound)

	cats, err := h.catalog.ListCategories(ctx)
	require.NoError(t, err)
	require.Equal(t, []shopsdk.Category{{ID: 9, Name: "Kitchen"}}, cats)
}
