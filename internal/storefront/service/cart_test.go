package service

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk/shopsdktest"
	"github.com/stretchr/testify/require"
)

func TestGuestAddReplacesQuantity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t, CartOptions{})

	cart, err := h.cart.AddToCart(ctx, mugID, 2)
	require.NoError(t, err)
	require.True(t, cart.Guest)
	require.Equal(t, []domain.CartLine{{
		ID: mugID, ProductID: mugID, Quantity: 2,
		ProductName: "Mug", ProductPrice: 10, ProductImage: "/img/mug.png", TotalPrice: 20,
	}}, cart.Lines)

	cart, err = h.cart.AddToCart(ctx, mugID, 1)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	require.Equal(t, 1, cart.Lines[0].Quantity)
	require.Equal(t, 10.0, cart.Lines[0].TotalPrice)

	require.Equal(t, []domain.GuestLine{{ProductID: mugID, Quantity: 1}}, h.guestCart())
}

func TestGuestCartUniqueness(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t, CartOptions{})

	calls := []struct {
		product  int64
		quantity int
	}{
		{mugID, 3}, {teeID, 1}, {mugID, 4}, {posterID, 2}, {teeID, 7}, {mugID, 1}, {posterID, 0},
	}
	want := map[int64]int{}
	for _, c := range calls {
		_, err := h.cart.AddToCart(ctx, c.product, c.quantity)
		require.NoError(t, err)
		want[c.product] = max(c.quantity, 1)
	}

	got := map[int64]int{}
	for _, l := range h.guestCart() {
		_, dup := got[l.ProductID]
		require.False(t, dup, "duplicate line for product %d", l.ProductID)
		got[l.ProductID] = l.Quantity
	}
	require.Equal(t, want, got)
}

func TestAddToCartFloorsQuantity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t, CartOptions{})

	for _, qty := range []int{0, -3} {
		cart, err := h.cart.AddToCart(ctx, teeID, qty)
		require.NoError(t, err)
		require.Equal(t, 1, cart.Lines[0].Quantity)
	}
}

func TestLoadClampsToStock(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("guest", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, CartOptions{})
		h.setGuestCart(domain.GuestLine{ProductID: posterID, Quantity: 5})

		cart, err := h.cart.Load(ctx)
		require.NoError(t, err)
		require.Len(t, cart.Lines, 1)
		require.Equal(t, 2, cart.Lines[0].Quantity)
		require.Equal(t, 10.0, cart.Lines[0].TotalPrice)

		// Stored quantity is the request, not the clamp.
		require.Equal(t, 5, h.guestCart()[0].Quantity)
	})

	t.Run("signed in", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, CartOptions{})
		h.srv.SetCart(aliceID, []shopsdk.CartLine{{ID: 77, ProductID: mugID, Quantity: 9}, {ID: 78, ProductID: teeID, Quantity: 3}})
		h.loginAlice()

		cart := h.cart.Snapshot()
		require.False(t, cart.Guest)
		require.Len(t, cart.Lines, 2)
		for _, l := range cart.Lines {
			switch l.ProductID {
			case mugID:
				require.Equal(t, int64(77), l.ID)
				require.Equal(t, 5, l.Quantity)
				require.Equal(t, 50.0, l.TotalPrice)
			case teeID:
				require.Equal(t, 3, l.Quantity)
				require.Equal(t, 60.0, l.TotalPrice)
			}
		}
		require.Equal(t, 110.0, h.cart.Subtotal())
	})

	t.Run("stock at load time", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, CartOptions{})
		h.setGuestCart(domain.GuestLine{ProductID: teeID, Quantity: 4})

		h.srv.SetStock(teeID, 0)
		cart, err := h.cart.Load(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, cart.Lines[0].Quantity)
		require.Zero(t, cart.Lines[0].TotalPrice)

		h.srv.SetStock(teeID, 3)
		cart, err = h.cart.Load(ctx)
		require.NoError(t, err)
		require.Equal(t, 3, cart.Lines[0].Quantity)
	})
}

func TestEmptyGuestLoadMakesNoCalls(t *testing.T) {
	t.Parallel()
	h := newHarness(t, CartOptions{})
	h.srv.ResetCalls()

	cart, err := h.cart.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, cart.Lines)
	require.True(t, cart.Guest)
	require.Empty(t, h.srv.Calls())
}

func TestEnrichmentPolicy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	const missing int64 = 404

	t.Run("partial marks failed lines", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, CartOptions{Policy: domain.EnrichPartial})
		h.setGuestCart(domain.GuestLine{ProductID: mugID, Quantity: 1}, domain.GuestLine{ProductID: missing, Quantity: 2})

		cart, err := h.cart.Load(ctx)
		require.NoError(t, err)
		require.Len(t, cart.Lines, 2)

		require.False(t, cart.Lines[0].Unavailable)
		require.Equal(t, domain.CartLine{
			ID: missing, ProductID: missing, Quantity: 2,
			Unavailable: true, Error: "Product not found.",
		}, cart.Lines[1])
		require.Equal(t, 10.0, cart.Subtotal)
	})

	t.Run("strict keeps previous state", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, CartOptions{Policy: domain.EnrichStrict})
		h.setGuestCart(domain.GuestLine{ProductID: mugID, Quantity: 1})
		before, err := h.cart.Load(ctx)
		require.NoError(t, err)

		h.setGuestCart(domain.GuestLine{ProductID: mugID, Quantity: 2}, domain.GuestLine{ProductID: missing, Quantity: 1})
		_, err = h.cart.Load(ctx)
		require.ErrorIs(t, err, shopsdk.ErrNotFound)
		require.Equal(t, before, h.cart.Snapshot())
	})

	t.Run("unknown policy defaults to partial", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, CartOptions{Policy: "lenient", Concurrency: -1})
		require.Equal(t, domain.EnrichPartial, h.cart.policy)
		require.Equal(t, DefaultEnrichConcurrency, h.cart.concurrency)
	})
}

func TestEnrichmentRunsConcurrently(t *testing.T) {
	t.Parallel()
	h := newHarness(t, CartOptions{Concurrency: 3})
	for _, id := range []int64{mugID, teeID, posterID} {
		h.srv.Delay("GET /api/Products/"+itoa(id), 200*time.Millisecond)
	}
	h.setGuestCart(
		domain.GuestLine{ProductID: mugID, Quantity: 1},
		domain.GuestLine{ProductID: teeID, Quantity: 1},
		domain.GuestLine{ProductID: posterID, Quantity: 1},
	)

	start := time.Now()
	cart, err := h.cart.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, cart.Lines, 3)
	require.Less(t, time.Since(start), 550*time.Millisecond)

	// Order follows the stored cart, not completion order.
	require.Equal(t, []int64{mugID, teeID, posterID}, []int64{cart.Lines[0].ProductID, cart.Lines[1].ProductID, cart.Lines[2].ProductID})
}

func TestLoadLatestWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t, CartOptions{})
	h.srv.Delay("GET /api/Products/1", 300*time.Millisecond)

	h.setGuestCart(domain.GuestLine{ProductID: mugID, Quantity: 1})
	slow := make(chan error, 1)
	go func() {
		_, err := h.cart.Load(ctx)
		slow <- err
	}()
	require.Eventually(t, func() bool {
		return h.srv.CountCalls("GET /api/Products/1") == 1
	}, time.Second, 5*time.Millisecond)

	h.setGuestCart(domain.GuestLine{ProductID: teeID, Quantity: 1})
	fast, err := h.cart.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, teeID, fast.Lines[0].ProductID)

	require.NoError(t, <-slow)
	cart := h.cart.Snapshot()
	require.Len(t, cart.Lines, 1)
	require.Equal(t, teeID, cart.Lines[0].ProductID)
}

func TestRemoveDuringLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("signed in", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, CartOptions{})
		h.srv.SetCart(aliceID, []shopsdk.CartLine{{ID: 100, ProductID: mugID, Quantity: 1}, {ID: 101, ProductID: teeID, Quantity: 1}})
		h.loginAlice()
		_, err := h.cart.Load(ctx)
		require.NoError(t, err)

		h.srv.ResetCalls()
		h.srv.Delay("GET /api/Products/1", 300*time.Millisecond)
		slow := make(chan error, 1)
		go func() {
			_, err := h.cart.Load(ctx)
			slow <- err
		}()
		require.Eventually(t, func() bool {
			return h.srv.CountCalls("GET /api/Products/1") == 1
		}, time.Second, 5*time.Millisecond)

		_, err = h.cart.RemoveFromCart(ctx, 100)
		require.NoError(t, err)

		// The slow load read the cart before the delete and must not bring
		// the line back.
		require.NoError(t, <-slow)
		cart := h.cart.Snapshot()
		require.Len(t, cart.Lines, 1)
		require.Equal(t, teeID, cart.Lines[0].ProductID)
		require.Equal(t, map[int64]int{teeID: 1}, quantities(h.srv.Cart(aliceID)))
	})

	t.Run("guest", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, CartOptions{})
		h.setGuestCart(domain.GuestLine{ProductID: mugID, Quantity: 1}, domain.GuestLine{ProductID: teeID, Quantity: 1})

		h.srv.Delay("GET /api/Products/1", 300*time.Millisecond)
		slow := make(chan error, 1)
		go func() {
			_, err := h.cart.Load(ctx)
			slow <- err
		}()
		require.Eventually(t, func() bool {
			return h.srv.CountCalls("GET /api/Products/1") == 1
		}, time.Second, 5*time.Millisecond)

		_, err := h.cart.RemoveFromCart(ctx, mugID)
		require.NoError(t, err)

		require.NoError(t, <-slow)
		cart := h.cart.Snapshot()
		require.Len(t, cart.Lines, 1)
		require.Equal(t, teeID, cart.Lines[0].ProductID)
		require.Equal(t, []domain.GuestLine{{ProductID: teeID, Quantity: 1}}, h.guestCart())
	})
}

func TestRemoveFromCart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("guest removes by product id", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, CartOptions{})
		h.setGuestCart(domain.GuestLine{ProductID: mugID, Quantity: 1}, domain.GuestLine{ProductID: teeID, Quantity: 2})
		_, err := h.cart.Load(ctx)
		require.NoError(t, err)
		h.srv.ResetCalls()

		cart, err := h.cart.RemoveFromCart(ctx, mugID)
		require.NoError(t, err)
		require.Len(t, cart.Lines, 1)
		require.Equal(t, teeID, cart.Lines[0].ProductID)
		require.Equal(t, []domain.GuestLine{{ProductID: teeID, Quantity: 2}}, h.guestCart())
		require.Zero(t, h.srv.CountCalls("DELETE /api/Cart"))
	})

	t.Run("guest remove before any load rebuilds from storage", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, CartOptions{})
		h.setGuestCart(domain.GuestLine{ProductID: mugID, Quantity: 1}, domain.GuestLine{ProductID: teeID, Quantity: 1})

		cart, err := h.cart.RemoveFromCart(ctx, mugID)
		require.NoError(t, err)
		require.True(t, cart.Guest)
		require.Len(t, cart.Lines, 1)
		require.Equal(t, teeID, cart.Lines[0].ProductID)
		require.Equal(t, 20.0, cart.Subtotal)
		require.Equal(t, []domain.GuestLine{{ProductID: teeID, Quantity: 1}}, h.guestCart())
	})

	t.Run("signed in removes by line id", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, CartOptions{})
		h.srv.SetCart(aliceID, []shopsdk.CartLine{{ID: 501, ProductID: mugID, Quantity: 1}, {ID: 502, ProductID: teeID, Quantity: 1}})
		h.loginAlice()

		cart, err := h.cart.RemoveFromCart(ctx, 501)
		require.NoError(t, err)
		require.Len(t, cart.Lines, 1)
		require.Equal(t, int64(502), cart.Lines[0].ID)
		require.Equal(t, map[int64]int{teeID: 1}, quantities(h.srv.Cart(aliceID)))
	})

	t.Run("signed in failure keeps lines", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, CartOptions{})
		h.srv.SetCart(aliceID, []shopsdk.CartLine{{ID: 601, ProductID: mugID, Quantity: 1}})
		h.loginAlice()

		_, err := h.cart.RemoveFromCart(ctx, 999)
		require.ErrorIs(t, err, shopsdk.ErrNotFound)
		require.Len(t, h.cart.Snapshot().Lines, 1)
	})
}

func TestSignedInAdd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t, CartOptions{})
	h.loginAlice()

	cart, err := h.cart.AddToCart(ctx, teeID, 3)
	require.NoError(t, err)
	require.False(t, cart.Guest)
	require.Equal(t, 60.0, cart.Subtotal)

	_, err = h.cart.AddToCart(ctx, teeID, 1)
	require.NoError(t, err)
	require.Equal(t, map[int64]int{teeID: 1}, quantities(h.srv.Cart(aliceID)))
	require.Empty(t, h.guestCart())
}

// Guest {mug:3, tee:1}, server {mug:1}: after login the server holds
// {mug:3, tee:1} and the guest cart is gone.
func TestSyncGuestCartOnLogin(t *testing.T) {
	t.Parallel()
	h := newHarness(t, CartOptions{})
	h.setGuestCart(domain.GuestLine{ProductID: mugID, Quantity: 3}, domain.GuestLine{ProductID: teeID, Quantity: 1})
	h.srv.SetCart(aliceID, []shopsdk.CartLine{{ProductID: mugID, Quantity: 1}})

	h.loginAlice()

	require.Equal(t, map[int64]int{mugID: 3, teeID: 1}, quantities(h.srv.Cart(aliceID)))
	require.Empty(t, h.guestCart())

	cart := h.cart.Snapshot()
	require.False(t, cart.Guest)
	require.Len(t, cart.Lines, 2)
	require.Equal(t, 50.0, cart.Subtotal)
}

func TestSyncGuestCartMaxWins(t *testing.T) {
	t.Parallel()
	h := newHarness(t, CartOptions{})
	h.setGuestCart(
		domain.GuestLine{ProductID: mugID, Quantity: 2},
		domain.GuestLine{ProductID: teeID, Quantity: 5},
		domain.GuestLine{ProductID: posterID, Quantity: 1},
	)
	h.srv.SetCart(aliceID, []shopsdk.CartLine{
		{ProductID: mugID, Quantity: 4},
		{ProductID: teeID, Quantity: 5},
	})

	h.loginAlice()

	require.Equal(t, map[int64]int{mugID: 4, teeID: 5, posterID: 1}, quantities(h.srv.Cart(aliceID)))
	// Only the product missing server-side needed a write.
	require.Equal(t, 1, h.srv.CountCalls("POST /api/Cart"))
}

func TestSyncGuestCartFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t, CartOptions{})
	guest := []domain.GuestLine{{ProductID: mugID, Quantity: 3}, {ProductID: teeID, Quantity: 1}}
	h.setGuestCart(guest...)
	h.srv.Fail("POST /api/Cart", shopsdktest.Failure{Status: http.StatusInternalServerError, Message: "db down"})

	h.loginAlice()

	require.Equal(t, guest, h.guestCart())
	require.Contains(t, messages(h.seen()), MsgCartSyncFailed)

	// An explicit retry reports the error.
	err := h.cart.SyncGuestCart(ctx)
	require.ErrorContains(t, err, "failed to sync cart")
	require.Equal(t, "db down", shopsdk.Message(err, ""))
	require.Equal(t, guest, h.guestCart())
}

func TestSyncGuestCartRequiresLogin(t *testing.T) {
	t.Parallel()
	h := newHarness(t, CartOptions{})
	require.ErrorIs(t, h.cart.SyncGuestCart(context.Background()), ErrLoginRequired)
}

func TestCartFollowsLogout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t, CartOptions{})
	h.srv.SetCart(aliceID, []shopsdk.CartLine{{ProductID: mugID, Quantity: 1}})
	h.loginAlice()
	require.Len(t, h.cart.Snapshot().Lines, 1)

	h.session.Logout(ctx)

	cart := h.cart.Snapshot()
	require.True(t, cart.Guest)
	require.Empty(t, cart.Lines)
}

func TestCartApplyDiscardsStale(t *testing.T) {
	t.Parallel()
	h := newHarness(t, CartOptions{})

	newer := []domain.CartLine{{ID: 2, ProductID: 2}}
	older := []domain.CartLine{{ID: 1, ProductID: 1}}
	require.True(t, h.cart.apply(5, newer, true))
	require.False(t, h.cart.apply(4, older, true))
	require.Equal(t, newer, h.cart.Snapshot().Lines)
}

func messages(notices []domain.Notice) []string {
	out := make([]string, len(notices))
	for i, n := range notices {
		out[i] = n.Message
	}
	return out
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
