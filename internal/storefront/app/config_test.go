package app

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk/shopsdktest"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "http://localhost:5126/api/", cfg.APIBaseURL)
	require.Equal(t, "storefront.db", cfg.DatabaseFile)
	require.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	require.Equal(t, domain.EnrichPartial, cfg.EnrichmentPolicy)
	require.Equal(t, 8, cfg.EnrichConcurrency)
	require.Equal(t, 8080, cfg.Port)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://shop.test/api/")
	t.Setenv("CART_ENRICHMENT_POLICY", "strict")
	t.Setenv("CART_ENRICH_CONCURRENCY", "2")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "http://shop.test/api/", cfg.APIBaseURL)
	require.Equal(t, domain.EnrichStrict, cfg.EnrichmentPolicy)
	require.Equal(t, 2, cfg.EnrichConcurrency)
	require.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	require.Equal(t, 9090, cfg.Port)
}

func TestLoadConfigRejects(t *testing.T) {
	for _, tc := range []struct {
		name, key, value string
	}{
		{"unknown policy", "CART_ENRICHMENT_POLICY", "lenient"},
		{"zero concurrency", "CART_ENRICH_CONCURRENCY", "0"},
		{"bad port", "PORT", "70000"},
		{"bad duration", "HTTP_TIMEOUT", "soon"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}

func TestDSN(t *testing.T) {
	t.Parallel()
	require.Equal(t, ":memory:", Config{DatabaseFile: ":memory:"}.DSN())
	require.Contains(t, Config{DatabaseFile: "shop.db"}.DSN(), "file:shop.db?")
}

func TestNewCoreWiresSession(t *testing.T) {
	t.Parallel()

	cfg := Config{
		APIBaseURL:        "http://127.0.0.1:1/api/",
		DatabaseFile:      ":memory:",
		HTTPTimeout:       time.Second,
		APIRateLimit:      5,
		APIRateBurst:      0,
		EnrichmentPolicy:  domain.EnrichPartial,
		EnrichConcurrency: 1,
	}
	core, err := NewCore(cfg, slogx.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = core.Close() })

	require.NotNil(t, core.Client.Limiter)
	require.Equal(t, 1, core.Client.Limiter.Burst())
	require.Same(t, core.Signal, core.Client.Notifier)
	require.Equal(t, time.Second, core.Client.HTTPClient.Timeout)

	// Nothing stored: restoring stays signed out without calling out.
	core.Restore(t.Context(), slogx.Nop())
	require.False(t, core.Session.Snapshot().IsAuthenticated)
	require.NoError(t, core.Store.Ping(t.Context()))
}

func TestRestoreLoadsGuestCart(t *testing.T) {
	t.Parallel()

	srv := shopsdktest.NewServer(t)
	srv.AddProduct(shopsdk.Product{ID: 1, Name: "Mug", Price: 10, StockQuantity: 5})

	core, err := NewCore(Config{
		APIBaseURL:        srv.BaseURL(),
		DatabaseFile:      ":memory:",
		HTTPTimeout:       time.Second,
		APIRateLimit:      0,
		EnrichmentPolicy:  domain.EnrichPartial,
		EnrichConcurrency: 1,
	}, slogx.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = core.Close() })

	require.NoError(t, core.Store.GuestCart().Save(t.Context(), []domain.GuestLine{{ProductID: 1, Quantity: 2}}))

	core.Restore(t.Context(), slogx.Nop())

	cart := core.Cart.Snapshot()
	require.True(t, cart.Guest)
	require.Len(t, cart.Lines, 1)
	require.Equal(t, "Mug", cart.Lines[0].ProductName)
	require.Equal(t, 20.0, cart.Subtotal)
}
