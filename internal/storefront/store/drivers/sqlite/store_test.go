package sqlite

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestTokens(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	t.Run("absent token", func(t *testing.T) {
		tok, ok, err := s.Tokens().Get(ctx)
		require.NoError(t, err)
		require.False(t, ok)
		require.Empty(t, tok)
	})

	t.Run("set then overwrite", func(t *testing.T) {
		require.NoError(t, s.Tokens().Set(ctx, "first"))
		require.NoError(t, s.Tokens().Set(ctx, "second"))

		tok, ok, err := s.Tokens().Get(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "second", tok)
	})

	t.Run("stored verbatim", func(t *testing.T) {
		require.NoError(t, s.Tokens().Set(ctx, "not a jwt"))
		tok, _, err := s.Tokens().Get(ctx)
		require.NoError(t, err)
		require.Equal(t, "not a jwt", tok)
	})

	t.Run("remove twice", func(t *testing.T) {
		require.NoError(t, s.Tokens().Remove(ctx))
		require.NoError(t, s.Tokens().Remove(ctx))

		_, ok, err := s.Tokens().Get(ctx)
		require.NoError(t, err)
		require.False(t, ok)
	})
}

func TestGuestCart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	lines, err := s.GuestCart().Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, lines)
	require.Empty(t, lines)

	want := []domain.GuestLine{{ProductID: 1, Quantity: 3}, {ProductID: 2, Quantity: 1}}
	require.NoError(t, s.GuestCart().Save(ctx, want))

	got, err := s.GuestCart().Load(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)

	// The token lives beside the cart without clobbering it.
	require.NoError(t, s.Tokens().Set(ctx, "tok"))
	got, err = s.GuestCart().Load(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)

	require.NoError(t, s.GuestCart().Save(ctx, nil))
	got, err = s.GuestCart().Load(ctx)
	require.NoError(t, err)
	require.Empty(t, got)

	tok, ok, err := s.Tokens().Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "tok", tok)
}

func TestGuestCartCorruptValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.kv.setItem(ctx, keyGuestCart, "{not json"))
	_, err := s.GuestCart().Load(ctx)
	require.ErrorContains(t, err, "failed to decode guest cart")

	require.NoError(t, s.GuestCart().Clear(ctx))
	lines, err := s.GuestCart().Load(ctx)
	require.NoError(t, err)
	require.Empty(t, lines)
}
