package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
	"github.com/stretchr/testify/require"
)

func TestAccountRequiresLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t, CartOptions{})

	_, err := h.account.ListAddresses(ctx)
	require.ErrorIs(t, err, ErrLoginRequired)
	_, err = h.account.ListOrders(ctx)
	require.ErrorIs(t, err, ErrLoginRequired)
	require.ErrorIs(t, h.account.CancelOrder(ctx, 1), ErrLoginRequired)
	require.ErrorIs(t, h.account.UpdateProfile(ctx, shopsdk.UpdateProfileRequest{}), ErrLoginRequired)
}

func TestAddresses(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t, CartOptions{})
	h.loginAlice()

	addr, err := h.account.CreateAddress(ctx, shopsdk.AddressInput{Title: "Work", FullAddress: "2 Side St", City: "Shelbyville"})
	require.NoError(t, err)
	require.NotZero(t, addr.ID)

	require.NoError(t, h.account.UpdateAddress(ctx, addr.ID, shopsdk.AddressInput{Title: "Office", FullAddress: "2 Side St", City: "Shelbyville"}))

	addrs, err := h.account.ListAddresses(ctx)
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	require.Equal(t, "Office", addrs[0].Title)

	require.NoError(t, h.account.DeleteAddress(ctx, addr.ID))
	addrs, err = h.account.ListAddresses(ctx)
	require.NoError(t, err)
	require.Empty(t, addrs)

	_, err = h.account.CreateAddress(ctx, shopsdk.AddressInput{Title: "Empty"})
	require.ErrorIs(t, err, shopsdk.ErrRejected)
}

func TestProfileEditsRefreshSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t, CartOptions{})
	h.loginAlice()

	require.NoError(t, h.account.UpdateProfile(ctx, shopsdk.UpdateProfileRequest{Username: "alice2", Phone: "555-0199"}))
	user := h.session.Snapshot().User
	require.Equal(t, "alice2", user.Name)
	require.Equal(t, "555-0199", user.Phone)

	require.NoError(t, h.account.ChangeEmail(ctx, "alice@new.example.com"))
	require.Equal(t, "alice@new.example.com", h.session.Snapshot().User.Email)

	err := h.account.ChangeEmail(ctx, "not-an-email")
	require.Error(t, err)
	require.Equal(t, "Invalid email.", shopsdk.Message(err, ""))
	require.Equal(t, "alice@new.example.com", h.session.Snapshot().User.Email)
}

func TestCancelOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t, CartOptions{})
	pending := h.srv.AddOrder(aliceID, shopsdk.Order{Status: shopsdk.OrderPending})
	shipped := h.srv.AddOrder(aliceID, shopsdk.Order{Status: shopsdk.OrderShipped})
	h.loginAlice()

	for _, status := range []shopsdk.OrderStatus{shopsdk.OrderPending, shopsdk.OrderProcessing} {
		require.True(t, status.Cancellable())
	}
	for _, status := range []shopsdk.OrderStatus{shopsdk.OrderShipped, shopsdk.OrderDelivered, shopsdk.OrderCancelled} {
		require.False(t, status.Cancellable())
	}

	err := h.account.CancelOrder(ctx, shipped)
	require.ErrorIs(t, err, ErrNotCancellable)
	require.Zero(t, h.srv.CountCalls("PUT /api/Orders/"))

	require.NoError(t, h.account.CancelOrder(ctx, pending))
	orders, err := h.account.ListOrders(ctx)
	require.NoError(t, err)
	for _, o := range orders {
		if o.ID == pending {
			require.Equal(t, shopsdk.OrderCancelled, o.Status)
		}
	}

	// Cancelled now, so refused locally.
	require.ErrorIs(t, h.account.CancelOrder(ctx, pending), ErrNotCancellable)
	require.ErrorIs(t, h.account.CancelOrder(ctx, 31337), shopsdk.ErrNotFound)
}

func TestDownloadInvoice(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t, CartOptions{})
	id := h.srv.AddOrder(aliceID, shopsdk.Order{Status: shopsdk.OrderDelivered})
	h.loginAlice()

	inv, err := h.account.DownloadInvoice(ctx, id)
	require.NoError(t, err)
	require.Equal(t, id, inv.OrderID)
	require.Equal(t, "application/pdf", inv.ContentType)
	require.Contains(t, string(inv.Data), "%PDF")

	_, err = h.account.DownloadInvoice(ctx, 31337)
	require.ErrorIs(t, err, shopsdk.ErrNotFound)
}
