package httpx_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestFrom(addr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = addr
	return req
}

func TestIPKeyExtractor(t *testing.T) {
	t.Run("extracts from RemoteAddr", func(t *testing.T) {
		require.Equal(t, "192.168.1.1", httpx.IPKeyExtractor(requestFrom("192.168.1.1:12345")))
	})

	t.Run("prefers X-Forwarded-For", func(t *testing.T) {
		req := requestFrom("192.168.1.1:12345")
		req.Header.Set("X-Forwarded-For", "203.0.113.1, 192.168.1.1")
		require.Equal(t, "203.0.113.1", httpx.IPKeyExtractor(req))
	})

	t.Run("uses X-Real-IP if X-Forwarded-For absent", func(t *testing.T) {
		req := requestFrom("192.168.1.1:12345")
		req.Header.Set("X-Real-IP", "203.0.113.2")
		require.Equal(t, "203.0.113.2", httpx.IPKeyExtractor(req))
	})

	t.Run("falls back to raw RemoteAddr", func(t *testing.T) {
		require.Equal(t, "pipe", httpx.IPKeyExtractor(requestFrom("pipe")))
	})
}

func TestCompositeKeyExtractor(t *testing.T) {
	header := func(r *http.Request) string { return r.Header.Get("X-Client") }
	extractor := httpx.CompositeKeyExtractor(":", httpx.IPKeyExtractor, header)

	t.Run("combines multiple extractors", func(t *testing.T) {
		req := requestFrom("192.168.1.1:12345")
		req.Header.Set("X-Client", "cli")
		require.Equal(t, "192.168.1.1:cli", extractor(req))
	})

	t.Run("skips empty values", func(t *testing.T) {
		require.Equal(t, "192.168.1.1", extractor(requestFrom("192.168.1.1:12345")))
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("allows requests under limit", func(t *testing.T) {
		config := httpx.RateLimitConfig{RequestsPerWindow: 5, Window: time.Second, Burst: 5}
		h := httpx.RateLimitMiddleware(config, httpx.IPKeyExtractor)(okHandler())

		for i := range 5 {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, requestFrom("192.168.1.1:12345"))
			require.Equal(t, http.StatusOK, rec.Code, "request %d should succeed", i+1)
		}
	})

	t.Run("blocks requests over limit", func(t *testing.T) {
		config := httpx.RateLimitConfig{RequestsPerWindow: 3, Window: time.Minute, Burst: 3}
		h := httpx.RateLimitMiddleware(config, httpx.IPKeyExtractor)(okHandler())

		for range 3 {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, requestFrom("192.168.1.1:12345"))
			require.Equal(t, http.StatusOK, rec.Code)
		}

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestFrom("192.168.1.1:12345"))
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
		require.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))

		var body httpx.ErrorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, httpx.ErrorCodeRateLimited, body.Error)
	})

	t.Run("different keys are tracked separately", func(t *testing.T) {
		config := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
		h := httpx.RateLimitMiddleware(config, httpx.IPKeyExtractor)(okHandler())

		for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1"} {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, requestFrom(addr))
			require.Equal(t, http.StatusOK, rec.Code, addr)
		}

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestFrom("10.0.0.1:1"))
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("allows request when key extractor returns empty", func(t *testing.T) {
		config := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
		empty := func(*http.Request) string { return "" }
		h := httpx.RateLimitMiddleware(config, empty)(okHandler())

		for range 3 {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, requestFrom("10.0.0.1:1"))
			require.Equal(t, http.StatusOK, rec.Code)
		}
	})
}

func TestRateLimitByUser(t *testing.T) {
	config := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	session := httpx.PrincipalFunc(func(ctx context.Context) httpx.Principal {
		return httpx.Principal{Authenticated: true, UserID: "u-1"}
	})
	h := httpx.Chain(okHandler(), httpx.RequireSession(session), httpx.RateLimitByUser(config))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, requestFrom("10.0.0.1:1"))
	require.Equal(t, http.StatusOK, rec.Code)

	// Same user and address, different port: still the "u-1:10.0.0.1" bucket.
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, requestFrom("10.0.0.1:2"))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestKeyedLimiterForgetsIdleKeys(t *testing.T) {
	kl := httpx.NewKeyedLimiter(httpx.RateLimitConfig{RequestsPerWindow: 10, Window: time.Millisecond, Burst: 10})

	ok, _ := kl.Allow("a")
	require.True(t, ok)
	require.Equal(t, 1, kl.Len())

	time.Sleep(20 * time.Millisecond)

	ok, _ = kl.Allow("b")
	require.True(t, ok)
	require.Equal(t, 1, kl.Len(), "idle key should have been dropped")
}

func TestRateLimitProfiles(t *testing.T) {
	for name, p := range map[string]httpx.RateLimitConfig{
		"auth":  httpx.AuthLimit,
		"write": httpx.WriteLimit,
		"read":  httpx.ReadLimit,
	} {
		t.Run(name, func(t *testing.T) {
			require.Positive(t, p.RequestsPerWindow)
			require.Positive(t, p.Window)
			require.Positive(t, p.Burst)
		})
	}

	require.Less(t, httpx.AuthLimit.RequestsPerWindow, httpx.WriteLimit.RequestsPerWindow)
}

func TestParseRateLimitFromEnv(t *testing.T) {
	defaults := httpx.RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 10}

	t.Run("NoEnvVarsUsesDefaults", func(t *testing.T) {
		require.Equal(t, defaults, httpx.ParseRateLimitFromEnv("TEST_NONE", defaults))
	})

	t.Run("OverrideAllParameters", func(t *testing.T) {
		t.Setenv("RATELIMIT_TEST_ALL_REQUESTS", "50")
		t.Setenv("RATELIMIT_TEST_ALL_WINDOW_SEC", "30")
		t.Setenv("RATELIMIT_TEST_ALL_BURST", "7")

		got := httpx.ParseRateLimitFromEnv("TEST_ALL", defaults)
		require.Equal(t, 50, got.RequestsPerWindow)
		require.Equal(t, 30*time.Second, got.Window)
		require.Equal(t, 7, got.Burst)
	})

	t.Run("InvalidValuesUseDefaults", func(t *testing.T) {
		t.Setenv("RATELIMIT_TEST_BAD_REQUESTS", "lots")
		t.Setenv("RATELIMIT_TEST_BAD_WINDOW_SEC", "-1")
		t.Setenv("RATELIMIT_TEST_BAD_BURST", "0")

		require.Equal(t, defaults, httpx.ParseRateLimitFromEnv("TEST_BAD", defaults))
	})
}
