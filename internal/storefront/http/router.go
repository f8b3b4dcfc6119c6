package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
	"github.com/aussiebroadwan/storefront/pkg/slogx"

	_ "github.com/aussiebroadwan/storefront/api/storefront" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	Session   *service.SessionService
	Cart      *service.CartService
	Favorites *service.FavoritesService
	Checkout  *service.CheckoutService
	Account   *service.AccountService
	Admin     *service.AdminService
	Catalog   *service.CatalogService
	Notices   *service.Notifier
	Signal    *service.UnauthorizedSignal

	// Heartbeat is the idle interval of the event stream. Zero means
	// DefaultHeartbeat.
	Heartbeat time.Duration
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSession()
	r.registerCart()
	r.registerCheckout()
	r.registerFavorites()
	r.registerCatalog()
	r.registerAccount()
	r.registerAdmin()
	r.registerEvents()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Storefront BFF API
//	@version		0.1.0
//	@description	Local backend for the storefront shell. It holds one customer session,
//	@description	the guest cart and the favorites mirror, and relays everything else to
//	@description	the remote storefront service.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/storefront
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// signedIn guards routes that need the local session.
func (r *Router) signedIn(h http.Handler, extra ...httpx.Middleware) http.Handler {
	mws := append([]httpx.Middleware{httpx.RequireSession(r.Session)}, extra...)
	return httpx.Chain(h, mws...)
}

func (r *Router) registerSession() {
	h := &SessionHandler{Session: r.Session}

	r.Mux.Handle("GET /v1/session",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.ReadLimit),
		),
	)

	// Credential endpoints - strict rate limit by IP
	r.Mux.Handle("POST /v1/session/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.AuthLimit),
		),
	)
	r.Mux.Handle("POST /v1/session/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.AuthLimit),
		),
	)
	r.Mux.Handle("POST /v1/session/google",
		httpx.Chain(http.HandlerFunc(h.HandleGoogle),
			httpx.RateLimitByIP(httpx.AuthLimit),
		),
	)

	r.Mux.Handle("POST /v1/session/logout", http.HandlerFunc(h.HandleLogout))
}

func (r *Router) registerCart() {
	h := &CartHandler{Cart: r.Cart}

	// Guests have a cart too, so none of these require a session.
	r.Mux.Handle("GET /v1/cart",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByUser(httpx.ReadLimit),
		),
	)
	r.Mux.Handle("POST /v1/cart/items",
		httpx.Chain(http.HandlerFunc(h.HandleAdd),
			httpx.RateLimitByUser(httpx.WriteLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/cart/items/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleRemove),
			httpx.RateLimitByUser(httpx.WriteLimit),
		),
	)
}

func (r *Router) registerCheckout() {
	h := &CheckoutHandler{Checkout: r.Checkout}

	r.Mux.Handle("POST /v1/cart/coupon",
		r.signedIn(http.HandlerFunc(h.HandleCoupon), httpx.RateLimitByUser(httpx.WriteLimit)))
	r.Mux.Handle("POST /v1/checkout",
		r.signedIn(http.HandlerFunc(h.HandleCheckout), httpx.RateLimitByUser(httpx.WriteLimit)))
}

func (r *Router) registerFavorites() {
	h := &FavoritesHandler{Favorites: r.Favorites}

	r.Mux.Handle("GET /v1/favorites",
		r.signedIn(http.HandlerFunc(h.HandleList), httpx.RateLimitByUser(httpx.ReadLimit)))

	// Toggle answers signed-out callers itself so the warning notice fires.
	r.Mux.Handle("POST /v1/favorites/{productId}/toggle",
		httpx.Chain(http.HandlerFunc(h.HandleToggle),
			httpx.RateLimitByUser(httpx.WriteLimit),
		),
	)
}

func (r *Router) registerCatalog() {
	h := &CatalogHandler{Catalog: r.Catalog}

	r.Mux.Handle("GET /v1/products",
		httpx.Chain(http.HandlerFunc(h.HandleListProducts), httpx.RateLimitByIP(httpx.ReadLimit)))
	r.Mux.Handle("GET /v1/products/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGetProduct), httpx.RateLimitByIP(httpx.ReadLimit)))
	r.Mux.Handle("GET /v1/categories",
		httpx.Chain(http.HandlerFunc(h.HandleListCategories), httpx.RateLimitByIP(httpx.ReadLimit)))
}

func (r *Router) registerAccount() {
	h := &AccountHandler{Account: r.Account}
	read := httpx.RateLimitByUser(httpx.ReadLimit)
	write := httpx.RateLimitByUser(httpx.WriteLimit)

	r.Mux.Handle("GET /v1/addresses", r.signedIn(http.HandlerFunc(h.HandleListAddresses), read))
	r.Mux.Handle("POST /v1/addresses", r.signedIn(http.HandlerFunc(h.HandleCreateAddress), write))
	r.Mux.Handle("PUT /v1/addresses/{id}", r.signedIn(http.HandlerFunc(h.HandleUpdateAddress), write))
	r.Mux.Handle("DELETE /v1/addresses/{id}", r.signedIn(http.HandlerFunc(h.HandleDeleteAddress), write))

	r.Mux.Handle("PUT /v1/profile", r.signedIn(http.HandlerFunc(h.HandleUpdateProfile), write))
	r.Mux.Handle("PUT /v1/profile/email", r.signedIn(http.HandlerFunc(h.HandleChangeEmail), write))

	r.Mux.Handle("GET /v1/orders", r.signedIn(http.HandlerFunc(h.HandleListOrders), read))
	r.Mux.Handle("POST /v1/orders/{id}/cancel", r.signedIn(http.HandlerFunc(h.HandleCancelOrder), write))
	r.Mux.Handle("GET /v1/orders/{id}/invoice", r.signedIn(http.HandlerFunc(h.HandleInvoice), read))
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{Admin: r.Admin}

	// Every admin route needs the Admin role on the local session.
	admin := func(fn http.HandlerFunc) http.Handler {
		return r.signedIn(fn,
			httpx.RequireAnyRole(shopsdk.RoleAdmin),
			httpx.RateLimitByUser(httpx.WriteLimit),
		)
	}

	r.Mux.Handle("GET /v1/admin/products", admin(h.HandleListProducts))
	r.Mux.Handle("POST /v1/admin/products", admin(h.HandleCreateProduct))
	r.Mux.Handle("PUT /v1/admin/products/{id}", admin(h.HandleUpdateProduct))
	r.Mux.Handle("DELETE /v1/admin/products/{id}", admin(h.HandleDeleteProduct))

	r.Mux.Handle("GET /v1/admin/categories", admin(h.HandleListCategories))
	r.Mux.Handle("POST /v1/admin/categories", admin(h.HandleCreateCategory))
	r.Mux.Handle("PUT /v1/admin/categories/{id}", admin(h.HandleUpdateCategory))
	r.Mux.Handle("DELETE /v1/admin/categories/{id}", admin(h.HandleDeleteCategory))

	r.Mux.Handle("GET /v1/admin/coupons", admin(h.HandleListCoupons))
	r.Mux.Handle("POST /v1/admin/coupons", admin(h.HandleCreateCoupon))
	r.Mux.Handle("PUT /v1/admin/coupons/{id}", admin(h.HandleUpdateCoupon))
	r.Mux.Handle("DELETE /v1/admin/coupons/{id}", admin(h.HandleDeleteCoupon))

	r.Mux.Handle("GET /v1/admin/orders", admin(h.HandleListOrders))
	r.Mux.Handle("GET /v1/admin/orders/{id}", admin(h.HandleGetOrder))
	r.Mux.Handle("PUT /v1/admin/orders/{id}/status", admin(h.HandleSetOrderStatus))

	r.Mux.Handle("GET /v1/admin/users", admin(h.HandleListUsers))
	r.Mux.Handle("GET /v1/admin/users/{id}", admin(h.HandleGetUser))
	r.Mux.Handle("PUT /v1/admin/users/{id}/roles", admin(h.HandleSetUserRoles))
	r.Mux.Handle("PUT /v1/admin/users/{id}/ban", admin(h.HandleSetUserBanned))

	r.Mux.Handle("GET /v1/admin/roles", admin(h.HandleListRoles))
	r.Mux.Handle("POST /v1/admin/roles", admin(h.HandleCreateRole))
	r.Mux.Handle("PUT /v1/admin/roles/{id}", admin(h.HandleRenameRole))
	r.Mux.Handle("DELETE /v1/admin/roles/{id}", admin(h.HandleDeleteRole))
}

func (r *Router) registerEvents() {
	h := &EventsHandler{
		Notices:   r.Notices,
		Signal:    r.Signal,
		Heartbeat: r.Heartbeat,
	}
	r.Mux.Handle("GET /v1/events", h)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.ReadLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.ReadLimit),
		),
	)
}
