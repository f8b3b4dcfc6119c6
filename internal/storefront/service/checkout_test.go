package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
	"github.com/stretchr/testify/require"
)

func checkoutHarness(t *testing.T) (*harness, int64) {
	t.Helper()
	h := newHarness(t, CartOptions{})
	h.srv.AddCoupon("SAVE5", 5)
	addr := h.srv.AddAddress(aliceID, shopsdk.Address{Title: "Home", FullAddress: "1 Main St", City: "Springfield", PostalCode: "12345"})
	h.srv.SetCart(aliceID, []shopsdk.CartLine{{ProductID: mugID, Quantity: 2}})
	h.loginAlice()
	return h, addr
}

func TestApplyCoupon(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("signed out", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, CartOptions{})
		_, err := h.checkout.ApplyCoupon(ctx, "SAVE5")
		require.ErrorIs(t, err, ErrLoginRequired)
	})

	t.Run("valid and invalid", func(t *testing.T) {
		t.Parallel()
		h, _ := checkoutHarness(t)

		res, err := h.checkout.ApplyCoupon(ctx, " SAVE5 ")
		require.NoError(t, err)
		require.Equal(t, 5.0, res.DiscountAmount)

		_, err = h.checkout.ApplyCoupon(ctx, "NOPE")
		require.ErrorIs(t, err, ErrInvalidCoupon)
		require.ErrorIs(t, err, shopsdk.ErrRejected)
		require.Equal(t, "Invalid coupon.", shopsdk.Message(err, ""))

		_, err = h.checkout.ApplyCoupon(ctx, "  ")
		require.ErrorIs(t, err, ErrInvalidCoupon)
	})
}

func TestCheckout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("signed out", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, CartOptions{})
		_, err := h.checkout.Checkout(ctx, CheckoutInput{AddressID: 1})
		require.ErrorIs(t, err, ErrLoginRequired)
	})

	t.Run("address required", func(t *testing.T) {
		t.Parallel()
		h, _ := checkoutHarness(t)

		_, err := h.checkout.Checkout(ctx, CheckoutInput{PaymentMethod: shopsdk.PaymentMock})
		require.ErrorIs(t, err, ErrAddressRequired)

		_, err = h.checkout.Checkout(ctx, CheckoutInput{AddressID: 424242})
		require.ErrorIs(t, err, ErrAddressRequired)
		require.Zero(t, h.srv.CountCalls("POST /api/Orders/checkout"))
	})

	t.Run("unsupported payment", func(t *testing.T) {
		t.Parallel()
		h, addr := checkoutHarness(t)
		_, err := h.checkout.Checkout(ctx, CheckoutInput{AddressID: addr, PaymentMethod: "Cash"})
		require.ErrorIs(t, err, ErrInvalidPayment)
	})

	t.Run("places order with coupon", func(t *testing.T) {
		t.Parallel()
		h, addr := checkoutHarness(t)
		require.Equal(t, 20.0, h.cart.Subtotal())

		order, err := h.checkout.Checkout(ctx, CheckoutInput{AddressID: addr, PaymentMethod: shopsdk.PaymentPayPal, CouponCode: "SAVE5"})
		require.NoError(t, err)
		require.Equal(t, "1 Main St", order.Address)
		require.Equal(t, 5.0, order.DiscountAmount)
		require.Equal(t, 15.0, order.TotalAmount)
		require.Equal(t, string(shopsdk.PaymentPayPal), order.PaymentMethod)

		// The service empties the cart; the engine reloads it.
		require.Empty(t, h.cart.Snapshot().Lines)
		require.Len(t, h.srv.Orders(aliceID), 1)
	})

	t.Run("invalid coupon fails by default", func(t *testing.T) {
		t.Parallel()
		h, addr := checkoutHarness(t)

		_, err := h.checkout.Checkout(ctx, CheckoutInput{AddressID: addr, CouponCode: "EXPIRED"})
		require.ErrorIs(t, err, ErrInvalidCoupon)
		require.Empty(t, h.srv.Orders(aliceID))
	})

	t.Run("invalid coupon can be dropped", func(t *testing.T) {
		t.Parallel()
		h, addr := checkoutHarness(t)

		order, err := h.checkout.Checkout(ctx, CheckoutInput{AddressID: addr, CouponCode: "EXPIRED", DropInvalidCoupon: true})
		require.NoError(t, err)
		require.Zero(t, order.DiscountAmount)
		require.Equal(t, 20.0, order.TotalAmount)
		require.Equal(t, string(shopsdk.PaymentMock), order.PaymentMethod)
		require.Contains(t, messages(h.seen()), MsgCouponDropped)
	})
}
