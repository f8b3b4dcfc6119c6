package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk/shopsdktest"
	"github.com/stretchr/testify/require"
)

func TestFavoritesRequireLogin(t *testing.T) {
	t.Parallel()
	h := newHarness(t, CartOptions{})
	h.srv.ResetCalls()

	on, err := h.favs.ToggleFavorite(context.Background(), mugID)
	require.ErrorIs(t, err, ErrLoginRequired)
	require.False(t, on)
	require.Empty(t, h.favs.List())
	require.Zero(t, h.srv.CountCalls("POST /api/Favorites"))

	seen := h.seen()
	require.Len(t, seen, 1)
	require.Equal(t, domain.NoticeWarning, seen[0].Level)
	require.Equal(t, MsgFavoritesLogin, seen[0].Message)
}

func TestFavoritesFollowSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t, CartOptions{})
	h.srv.SetFavorites(aliceID, []shopsdk.Favorite{{ProductID: teeID, ProductName: "Tee", ProductPrice: 20, ProductImage: "/img/tee.png"}})

	h.loginAlice()
	require.Equal(t, []domain.Favorite{{ProductID: teeID, ProductName: "Tee", ProductPrice: 20, ProductImage: "/img/tee.png"}}, h.favs.List())
	require.True(t, h.favs.IsFavorite(teeID))

	h.session.Logout(ctx)
	require.Empty(t, h.favs.List())
	require.False(t, h.favs.IsFavorite(teeID))
}

func TestToggleFavorite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t, CartOptions{})
	h.loginAlice()

	on, err := h.favs.ToggleFavorite(ctx, mugID)
	require.NoError(t, err)
	require.True(t, on)
	require.True(t, h.favs.IsFavorite(mugID))
	require.Equal(t, "Mug", h.favs.List()[0].ProductName)
	require.Len(t, h.srv.Favorites(aliceID), 1)

	on, err = h.favs.ToggleFavorite(ctx, mugID)
	require.NoError(t, err)
	require.False(t, on)
	require.False(t, h.favs.IsFavorite(mugID))
	require.Empty(t, h.srv.Favorites(aliceID))
	require.Equal(t, 1, h.srv.CountCalls("DELETE /api/Favorites/1"))
}

func TestToggleFavoriteFailure(t *testing.T) {
	t.Parallel()
	h := newHarness(t, CartOptions{})
	h.loginAlice()
	h.srv.Fail("POST /api/Favorites", shopsdktest.Failure{Status: http.StatusInternalServerError})

	_, err := h.favs.ToggleFavorite(context.Background(), mugID)
	require.Error(t, err)
	require.False(t, h.favs.IsFavorite(mugID))
	require.Contains(t, messages(h.seen()), MsgFavoritesFailed)
}

func TestFavoritesApplyDiscardsStale(t *testing.T) {
	t.Parallel()
	h := newHarness(t, CartOptions{})

	newer := []domain.Favorite{{ProductID: teeID}}
	h.favs.apply(3, newer)
	h.favs.apply(2, []domain.Favorite{{ProductID: mugID}})
	require.Equal(t, newer, h.favs.List())
}
