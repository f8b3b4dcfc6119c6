package slogx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/storefront/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, slogx.ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, slogx.ParseLevel("warning"))
	require.Equal(t, slog.LevelError, slogx.ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, slogx.ParseLevel("nonsense"))
}

func TestNewWritesJSONToOutput(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := slogx.New(slogx.Config{
		Service: "storefront",
		Version: "test",
		Env:     "test",
		Level:   "info",
		Output:  &buf,
	})

	logger.Info("hello", "k", "v")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "hello", line["msg"])
	require.Equal(t, "storefront", line["service"])
	require.Equal(t, "v", line["k"])
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := slogx.WithRequestID(context.Background(), "req-1")
	require.Equal(t, "req-1", slogx.RequestID(ctx))
	require.Empty(t, slogx.RequestID(context.Background()))
}

func TestHTTPMiddleware(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	var seen string
	h := slogx.HTTPMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = slogx.RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("keeps incoming request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
		req.Header.Set(slogx.RequestIDHeader, "abc")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		require.Equal(t, "abc", seen)
		require.Equal(t, "abc", rec.Header().Get(slogx.RequestIDHeader))

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		require.EqualValues(t, http.StatusTeapot, line["status"])
		require.Equal(t, "abc", line["req_id"])
	})

	t.Run("mints request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		require.NotEmpty(t, seen)
		require.Equal(t, seen, rec.Header().Get(slogx.RequestIDHeader))
	})

	t.Run("passes flushes through", func(t *testing.T) {
		flushing := slogx.HTTPMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f, ok := w.(http.Flusher)
			require.True(t, ok)
			f.Flush()
		}))

		rec := httptest.NewRecorder()
		flushing.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/events", nil))
		require.True(t, rec.Flushed)
	})
}
