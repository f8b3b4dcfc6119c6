package httpx

import (
	"net/http"

	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

// RequireSession rejects requests while the local session is signed out and
// injects the principal into the context otherwise.
func RequireSession(src PrincipalSource) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			p := src.Principal(ctx)
			if !p.Authenticated {
				slogx.FromContext(ctx).Debug("request without session", "path", r.URL.Path)
				WriteError(w, http.StatusUnauthorized, ErrorCodeLoginRequired, "login required")
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithPrincipal(ctx, p)))
		})
	}
}
