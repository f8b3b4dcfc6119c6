package httpx_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func principal(p httpx.Principal) httpx.PrincipalSource {
	return httpx.PrincipalFunc(func(context.Context) httpx.Principal { return p })
}

func TestChainOrder(t *testing.T) {
	var order []string
	tag := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(okHandler(), tag("outer"), tag("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"outer", "inner"}, order)
}

func TestRequireSession(t *testing.T) {
	t.Run("signed out", func(t *testing.T) {
		h := httpx.RequireSession(principal(httpx.Principal{}))(okHandler())
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cart", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var body httpx.ErrorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, httpx.ErrorCodeLoginRequired, body.Error)
	})

	t.Run("signed in injects principal", func(t *testing.T) {
		want := httpx.Principal{Authenticated: true, UserID: "u-1", Roles: []string{"Customer"}}

		var got httpx.Principal
		h := httpx.RequireSession(principal(want))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ = httpx.PrincipalFromContext(r.Context())
		}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/cart", nil))

		require.Equal(t, want, got)
	})
}

func TestRequireRoles(t *testing.T) {
	admin := principal(httpx.Principal{Authenticated: true, UserID: "u-1", Roles: []string{"Admin", "Customer"}})
	customer := principal(httpx.Principal{Authenticated: true, UserID: "u-2", Roles: []string{"Customer"}})

	run := func(src httpx.PrincipalSource, mw httpx.Middleware) int {
		rec := httptest.NewRecorder()
		httpx.Chain(okHandler(), httpx.RequireSession(src), mw).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/admin/users", nil))
		return rec.Code
	}

	require.Equal(t, http.StatusOK, run(admin, httpx.RequireAnyRole("Admin")))
	require.Equal(t, http.StatusForbidden, run(customer, httpx.RequireAnyRole("Admin")))
	require.Equal(t, http.StatusOK, run(admin, httpx.RequireAllRoles("Admin", "Customer")))
	require.Equal(t, http.StatusForbidden, run(customer, httpx.RequireAllRoles("Admin", "Customer")))
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		ProductID string `json:"productId"`
	}

	decode := func(body string) (payload, error) {
		var p payload
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		err := httpx.DecodeJSON(httptest.NewRecorder(), req, &p)
		return p, err
	}

	p, err := decode(`{"productId":"p1"}`)
	require.NoError(t, err)
	require.Equal(t, "p1", p.ProductID)

	_, err = decode(``)
	require.Error(t, err)

	_, err = decode(`{"productID":"p1","extra":true}`)
	require.Error(t, err)
}
