package httpx

import (
	"net/http"
	"strings"
)

// RequireAnyRole the caller must have at least one of the provided roles.
// It must run after RequireSession.
func RequireAnyRole(required ...string) Middleware {
	want := make(map[string]struct{}, len(required))
	for _, s := range required {
		want[s] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, s := range rolesFromCtx(r.Context()) {
				if _, ok := want[s]; ok {
					next.ServeHTTP(w, r)
					return
				}
			}

			writeRoleError(w, required...)
		})
	}
}

// RequireAllRoles the caller must have every role listed.
func RequireAllRoles(required ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			have := make(map[string]struct{})
			for _, s := range rolesFromCtx(r.Context()) {
				have[s] = struct{}{}
			}

			for _, req := range required {
				if _, ok := have[req]; !ok {
					writeRoleError(w, required...)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeRoleError(w http.ResponseWriter, required ...string) {
	WriteError(w, http.StatusForbidden, ErrorCodeForbidden,
		"requires role: "+strings.Join(required, ", "))
}
