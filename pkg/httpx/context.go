package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID    ctxKey = "user_id"
	CtxKeyRoles     ctxKey = "roles"
	CtxKeyPrincipal ctxKey = "principal"
)

// Principal is the caller as far as the BFF middlewares are concerned. The
// BFF serves a single local session, so the principal is whoever that
// session currently belongs to.
type Principal struct {
	Authenticated bool
	UserID        string
	Roles         []string
}

// HasRole reports whether the principal holds role.
func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// PrincipalSource resolves the principal for a request.
type PrincipalSource interface {
	Principal(ctx context.Context) Principal
}

// PrincipalFunc adapts a function to PrincipalSource.
type PrincipalFunc func(ctx context.Context) Principal

func (f PrincipalFunc) Principal(ctx context.Context) Principal { return f(ctx) }

func contextWithPrincipal(ctx context.Context, p Principal) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, p.UserID)
	ctx = context.WithValue(ctx, CtxKeyRoles, p.Roles)
	ctx = context.WithValue(ctx, CtxKeyPrincipal, p)
	return ctx
}

// PrincipalFromContext returns the principal stored by RequireSession.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(CtxKeyPrincipal).(Principal)
	return p, ok
}

func rolesFromCtx(ctx context.Context) []string {
	if v, ok := ctx.Value(CtxKeyRoles).([]string); ok {
		return v
	}
	return nil
}
