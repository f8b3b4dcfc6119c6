// Package shopsdktest runs an in-memory storefront service for tests.
//
// The fake speaks the same envelope protocol as the real service and keeps
// just enough state (users, products, carts, favorites, addresses, orders,
// coupons) for the client layers to be exercised end to end. Failures and
// latency can be injected per route.
package shopsdktest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/storefront/pkg/idx"
	"github.com/aussiebroadwan/storefront/pkg/jwtx"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
	"github.com/golang-jwt/jwt/v5"
)

// signingKey signs fake tokens. Nothing verifies it.
var signingKey = []byte("shopsdktest")

// User is an account known to the fake.
type User struct {
	ID       string
	Email    string
	Password string
	Username string
	Phone    string
	Roles    []string
	Banned   bool
}

// Failure is an injected response for one route.
type Failure struct {
	Status  int
	Message string
	// Times limits how many requests fail; zero means every request.
	Times int
}

// Server is the fake service.
type Server struct {
	*httptest.Server

	// TokenTTL is the lifetime of tokens issued by the auth endpoints.
	TokenTTL time.Duration

	mu         sync.Mutex
	users      map[string]*User // by id
	products   map[int64]*shopsdk.Product
	categories []shopsdk.Category
	carts      map[string][]shopsdk.CartLine
	favorites  map[string][]shopsdk.Favorite
	addresses  map[string][]shopsdk.Address
	orders     map[string][]shopsdk.Order
	coupons    map[string]float64
	roles      []shopsdk.Role
	revoked    map[string]bool
	failures   map[string]*Failure
	delays     map[string]time.Duration
	calls      []string
	nextID     int64
}

// NewServer starts a fake and registers its shutdown with t.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		TokenTTL:  time.Hour,
		users:     make(map[string]*User),
		products:  make(map[int64]*shopsdk.Product),
		carts:     make(map[string][]shopsdk.CartLine),
		favorites: make(map[string][]shopsdk.Favorite),
		addresses: make(map[string][]shopsdk.Address),
		orders:    make(map[string][]shopsdk.Order),
		coupons:   make(map[string]float64),
		revoked:   make(map[string]bool),
		failures:  make(map[string]*Failure),
		delays:    make(map[string]time.Duration),
		roles: []shopsdk.Role{
			{ID: "r-admin", Name: "Admin"},
			{ID: "r-customer", Name: "Customer"},
			{ID: "r-vip", Name: "VIP"},
		},
		nextID: 1000,
	}

	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)

	return s
}

// BaseURL is the API root to hand to shopsdk.NewClient.
func (s *Server) BaseURL() string {
	return s.URL + "/api/"
}

// ============================================================================
// Seeding
// ============================================================================

// AddUser registers an account.
func (s *Server) AddUser(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := u
	s.users[u.ID] = &cp
}

// AddProduct registers a product.
func (s *Server) AddProduct(p shopsdk.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := p
	s.products[p.ID] = &cp
}

// SetStock changes a product's live stock.
func (s *Server) SetStock(id int64, stock int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.products[id]; ok {
		p.StockQuantity = stock
	}
}

// AddCategory registers a category.
func (s *Server) AddCategory(c shopsdk.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append(s.categories, c)
}

// AddCoupon registers a coupon code worth discount.
func (s *Server) AddCoupon(code string, discount float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupons[code] = discount
}

// SetCart replaces a user's server cart. Line ids are assigned when zero.
func (s *Server) SetCart(userID string, lines []shopsdk.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]shopsdk.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.ID == 0 {
			l.ID = s.newIDLocked()
		}
		out = append(out, l)
	}
	s.carts[userID] = out
}

// Cart returns a copy of a user's server cart.
func (s *Server) Cart(userID string) []shopsdk.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.carts[userID])
}

// SetFavorites replaces a user's favorites.
func (s *Server) SetFavorites(userID string, favs []shopsdk.Favorite) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites[userID] = slices.Clone(favs)
}

// Favorites returns a copy of a user's favorites.
func (s *Server) Favorites(userID string) []shopsdk.Favorite {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.favorites[userID])
}

// AddAddress stores an address for a user and returns its id.
func (s *Server) AddAddress(userID string, a shopsdk.Address) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == 0 {
		a.ID = s.newIDLocked()
	}
	s.addresses[userID] = append(s.addresses[userID], a)
	return a.ID
}

// AddOrder stores an order for a user and returns its id.
func (s *Server) AddOrder(userID string, o shopsdk.Order) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == 0 {
		o.ID = s.newIDLocked()
	}
	s.orders[userID] = append(s.orders[userID], o)
	return o.ID
}

// Orders returns a copy of a user's orders.
func (s *Server) Orders(userID string) []shopsdk.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.orders[userID])
}

// Revoke makes the service reject token with 401 even though it is fresh.
func (s *Server) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[token] = true
}

// Fail injects a failure for route, written as "METHOD /api/Path"
// (for example "GET /api/Products/7").
func (s *Server) Fail(route string, f Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := f
	s.failures[route] = &cp
}

// Delay holds every request on route for d before answering.
func (s *Server) Delay(route string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays[route] = d
}

// Calls returns every request seen so far as "METHOD /api/Path".
func (s *Server) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.calls)
}

// CountCalls counts requests whose route starts with prefix.
func (s *Server) CountCalls(prefix string) int {
	n := 0
	for _, c := range s.Calls() {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// ResetCalls forgets the recorded requests.
func (s *Server) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

// ============================================================================
// Tokens
// ============================================================================

// MintToken issues a token for a user expiring at exp. Every call carries a
// fresh jti, so two tokens minted within the same second still differ.
func MintToken(userID, email, name string, roles []string, exp time.Time) string {
	claims := jwt.MapClaims{
		jwtx.ClaimNameIdentifier: userID,
		jwtx.ClaimEmail:          email,
		jwtx.ClaimName:           name,
		"exp":                    exp.Unix(),
		"jti":                    idx.New().String(),
	}
	switch len(roles) {
	case 0:
	case 1:
		claims[jwtx.ClaimRole] = roles[0]
	default:
		claims[jwtx.ClaimRole] = roles
	}

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		panic(fmt.Sprintf("shopsdktest: sign token: %v", err))
	}
	return raw
}

// TokenFor issues a token for a registered user, valid for TokenTTL.
func (s *Server) TokenFor(userID string) string {
	s.mu.Lock()
	u, ok := s.users[userID]
	ttl := s.TokenTTL
	s.mu.Unlock()
	if !ok {
		panic("shopsdktest: unknown user " + userID)
	}
	return MintToken(u.ID, u.Email, u.Username, u.Roles, time.Now().Add(ttl))
}

// ExpiredTokenFor issues a token for a user that expired ago in the past.
func (s *Server) ExpiredTokenFor(userID string, ago time.Duration) string {
	s.mu.Lock()
	u, ok := s.users[userID]
	s.mu.Unlock()
	if !ok {
		panic("shopsdktest: unknown user " + userID)
	}
	return MintToken(u.ID, u.Email, u.Username, u.Roles, time.Now().Add(-ago))
}

// ============================================================================
// Routing
// ============================================================================

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/Auth/login", s.handleLogin)
	mux.HandleFunc("POST /api/Auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/Auth/signin-google", s.handleGoogle)

	// Catalog
	mux.HandleFunc("GET /api/Products", s.handleListProducts)
	mux.HandleFunc("GET /api/Products/{id}", s.handleGetProduct)
	mux.HandleFunc("GET /api/Categories", s.handleListCategories)

	// Profile
	mux.HandleFunc("GET /api/Profile/me", s.authed(s.handleProfile))
	mux.HandleFunc("PUT /api/Profile", s.authed(s.handleUpdateProfile))
	mux.HandleFunc("PUT /api/Profile/email", s.authed(s.handleChangeEmail))

	// Cart
	mux.HandleFunc("GET /api/Cart", s.authed(s.handleGetCart))
	mux.HandleFunc("POST /api/Cart", s.authed(s.handleUpsertCart))
	mux.HandleFunc("DELETE /api/Cart/{id}", s.authed(s.handleDeleteCart))
	mux.HandleFunc("POST /api/Cart/coupon", s.authed(s.handleCoupon))

	// Favorites
	mux.HandleFunc("GET /api/Favorites", s.authed(s.handleListFavorites))
	mux.HandleFunc("POST /api/Favorites", s.authed(s.handleAddFavorite))
	mux.HandleFunc("DELETE /api/Favorites/{id}", s.authed(s.handleRemoveFavorite))

	// Addresses
	mux.HandleFunc("GET /api/Addresses", s.authed(s.handleListAddresses))
	mux.HandleFunc("POST /api/Addresses", s.authed(s.handleCreateAddress))
	mux.HandleFunc("PUT /api/Addresses/{id}", s.authed(s.handleUpdateAddress))
	mux.HandleFunc("DELETE /api/Addresses/{id}", s.authed(s.handleDeleteAddress))

	// Orders
	mux.HandleFunc("POST /api/Orders/checkout", s.authed(s.handleCheckout))
	mux.HandleFunc("GET /api/Orders", s.authed(s.handleListOrders))
	mux.HandleFunc("PUT /api/Orders/{id}/cancel", s.authed(s.handleCancelOrder))
	mux.HandleFunc("GET /api/Orders/{id}/invoice", s.authed(s.handleInvoice))

	// Admin
	mux.HandleFunc("GET /api/admin/products", s.admin(s.handleAdminProducts))
	mux.HandleFunc("GET /api/admin/users", s.admin(s.handleAdminUsers))
	mux.HandleFunc("PUT /api/admin/users/{id}/ban", s.admin(s.handleAdminBan))
	mux.HandleFunc("GET /api/admin/orders", s.admin(s.handleAdminOrders))
	mux.HandleFunc("PUT /api/admin/orders/{id}/status", s.admin(s.handleAdminOrderStatus))
	mux.HandleFunc("GET /api/admin/roles", s.admin(s.handleAdminRoles))
	mux.HandleFunc("POST /api/admin/roles", s.admin(s.handleAdminCreateRole))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeFail(w, http.StatusNotFound, "Not found.")
	})

	return s.intercept(mux)
}

// intercept records the call and applies injected delays and failures.
func (s *Server) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.Method + " " + r.URL.Path

		s.mu.Lock()
		s.calls = append(s.calls, route)
		delay := s.delays[route]
		var fail *Failure
		if f, ok := s.failures[route]; ok {
			cp := *f
			fail = &cp
			if f.Times > 0 {
				f.Times--
				if f.Times == 0 {
					delete(s.failures, route)
				}
			}
		}
		s.mu.Unlock()

		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}

		if fail != nil {
			writeFail(w, fail.Status, fail.Message)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type authedHandler func(w http.ResponseWriter, r *http.Request, u *User)

// authed resolves the bearer token to a user, answering 401 otherwise.
func (s *Server) authed(h authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			writeFail(w, http.StatusUnauthorized, "Unauthorized.")
			return
		}

		claims, err := jwtx.Decode(raw)
		if err != nil || claims.ValidateExpiry() != nil {
			writeFail(w, http.StatusUnauthorized, "Unauthorized.")
			return
		}

		s.mu.Lock()
		u, known := s.users[claims.NameIdentifier]
		revoked := s.revoked[raw]
		s.mu.Unlock()

		if !known || revoked {
			writeFail(w, http.StatusUnauthorized, "Unauthorized.")
			return
		}
		if u.Banned {
			writeFail(w, http.StatusForbidden, "Account is banned.")
			return
		}

		h(w, r, u)
	}
}

// admin is authed plus the Admin role.
func (s *Server) admin(h authedHandler) http.HandlerFunc {
	return s.authed(func(w http.ResponseWriter, r *http.Request, u *User) {
		if !slices.Contains(u.Roles, shopsdk.RoleAdmin) {
			writeFail(w, http.StatusForbidden, "Forbidden.")
			return
		}
		h(w, r, u)
	})
}

// ============================================================================
// Auth handlers
// ============================================================================

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req shopsdk.LoginRequest
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	var found *User
	for _, u := range s.users {
		if strings.EqualFold(u.Email, req.Email) && u.Password == req.Password {
			found = u
			break
		}
	}
	s.mu.Unlock()

	if found == nil {
		writeFail(w, http.StatusBadRequest, "Invalid email or password.")
		return
	}

	writeOK(w, shopsdk.TokenResponse{Token: s.TokenFor(found.ID)})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req shopsdk.RegisterRequest
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, req.Email) {
			s.mu.Unlock()
			writeFail(w, http.StatusBadRequest, "Email is already registered.")
			return
		}
	}
	id := "u-" + strconv.FormatInt(s.newIDLocked(), 10)
	s.users[id] = &User{
		ID:       id,
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
		Roles:    []string{"Customer"},
	}
	s.mu.Unlock()

	writeOK(w, shopsdk.TokenResponse{Token: s.TokenFor(id)})
}

func (s *Server) handleGoogle(w http.ResponseWriter, r *http.Request) {
	var req shopsdk.GoogleLoginRequest
	if !decode(w, r, &req) {
		return
	}
	if req.IDToken == "" {
		writeFail(w, http.StatusBadRequest, "Google login failed.")
		return
	}

	id := "g-" + req.IDToken
	s.mu.Lock()
	if _, ok := s.users[id]; !ok {
		s.users[id] = &User{ID: id, Email: req.IDToken + "@gmail.com", Username: req.IDToken, Roles: []string{"Customer"}}
	}
	s.mu.Unlock()

	writeOK(w, shopsdk.TokenResponse{Token: s.TokenFor(id)})
}

// ============================================================================
// Catalog handlers
// ============================================================================

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	term := strings.ToLower(q.Get("searchTerm"))
	category, _ := strconv.ParseInt(q.Get("categoryId"), 10, 64)
	page := atoiDefault(q.Get("page"), 1)
	size := atoiDefault(q.Get("pageSize"), 10)

	s.mu.Lock()
	var items []shopsdk.Product
	for _, p := range s.products {
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		if category != 0 && p.CategoryID != category {
			continue
		}
		items = append(items, *p)
	}
	s.mu.Unlock()

	slices.SortFunc(items, func(a, b shopsdk.Product) int { return int(a.ID - b.ID) })

	total := len(items)
	start := min((page-1)*size, total)
	end := min(start+size, total)

	writeOK(w, shopsdk.ProductPage{
		Items:      items[start:end],
		Page:       page,
		PageSize:   size,
		TotalPages: (total + size - 1) / size,
		TotalCount: total,
	})
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	p, found := s.products[id]
	var cp shopsdk.Product
	if found {
		cp = *p
	}
	s.mu.Unlock()

	if !found {
		writeFail(w, http.StatusNotFound, "Product not found.")
		return
	}
	writeOK(w, cp)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	cats := slices.Clone(s.categories)
	s.mu.Unlock()
	writeOK(w, cats)
}

// ============================================================================
// Profile handlers
// ============================================================================

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request, u *User) {
	s.mu.Lock()
	p := shopsdk.Profile{ID: u.ID, Email: u.Email, Username: u.Username, Phone: u.Phone, Roles: slices.Clone(u.Roles)}
	s.mu.Unlock()
	writeOK(w, p)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request, u *User) {
	var req shopsdk.UpdateProfileRequest
	if !decode(w, r, &req) {
		return
	}
	s.mu.Lock()
	u.Username = req.Username
	u.Phone = req.Phone
	s.mu.Unlock()
	writeOK(w, nil)
}

func (s *Server) handleChangeEmail(w http.ResponseWriter, r *http.Request, u *User) {
	var req shopsdk.ChangeEmailRequest
	if !decode(w, r, &req) {
		return
	}
	if !strings.Contains(req.NewEmail, "@") {
		writeFail(w, http.StatusBadRequest, "Invalid email.")
		return
	}
	s.mu.Lock()
	u.Email = req.NewEmail
	s.mu.Unlock()
	writeOK(w, nil)
}

// ============================================================================
// Cart handlers
// ============================================================================

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request, u *User) {
	s.mu.Lock()
	lines := slices.Clone(s.carts[u.ID])
	s.mu.Unlock()
	if lines == nil {
		lines = []shopsdk.CartLine{}
	}
	writeOK(w, lines)
}

func (s *Server) handleUpsertCart(w http.ResponseWriter, r *http.Request, u *User) {
	var req shopsdk.CartUpsertRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Quantity <= 0 {
		writeFail(w, http.StatusBadRequest, "Quantity must be positive.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[req.ProductID]; !ok {
		writeFail(w, http.StatusNotFound, "Product not found.")
		return
	}

	lines := s.carts[u.ID]
	for i := range lines {
		if lines[i].ProductID == req.ProductID {
			lines[i].Quantity = req.Quantity
			writeOK(w, lines[i])
			return
		}
	}

	line := shopsdk.CartLine{ID: s.newIDLocked(), ProductID: req.ProductID, Quantity: req.Quantity}
	s.carts[u.ID] = append(lines, line)
	writeOK(w, line)
}

func (s *Server) handleDeleteCart(w http.ResponseWriter, r *http.Request, u *User) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	before := len(s.carts[u.ID])
	s.carts[u.ID] = slices.DeleteFunc(s.carts[u.ID], func(l shopsdk.CartLine) bool { return l.ID == id })
	removed := len(s.carts[u.ID]) < before
	s.mu.Unlock()

	if !removed {
		writeFail(w, http.StatusNotFound, "Cart item not found.")
		return
	}
	writeOK(w, nil)
}

func (s *Server) handleCoupon(w http.ResponseWriter, r *http.Request, u *User) {
	var req shopsdk.CouponRequest
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	discount, ok := s.coupons[req.CouponCode]
	s.mu.Unlock()

	if !ok {
		writeFail(w, http.StatusBadRequest, "Invalid coupon.")
		return
	}
	writeOK(w, shopsdk.CouponResult{DiscountAmount: discount})
}

// ============================================================================
// Favorite handlers
// ============================================================================

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request, u *User) {
	s.mu.Lock()
	favs := slices.Clone(s.favorites[u.ID])
	s.mu.Unlock()
	if favs == nil {
		favs = []shopsdk.Favorite{}
	}
	writeOK(w, favs)
}

func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request, u *User) {
	var req shopsdk.FavoriteRequest
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[req.ProductID]
	if !ok {
		writeFail(w, http.StatusNotFound, "Product not found.")
		return
	}
	for _, f := range s.favorites[u.ID] {
		if f.ProductID == req.ProductID {
			writeFail(w, http.StatusBadRequest, "Already in favorites.")
			return
		}
	}

	fav := shopsdk.Favorite{ProductID: p.ID, ProductName: p.Name, ProductPrice: p.Price, ProductImage: p.ImageURL}
	s.favorites[u.ID] = append(s.favorites[u.ID], fav)
	writeOK(w, fav)
}

func (s *Server) handleRemoveFavorite(w http.ResponseWriter, r *http.Request, u *User) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	s.favorites[u.ID] = slices.DeleteFunc(s.favorites[u.ID], func(f shopsdk.Favorite) bool { return f.ProductID == id })
	s.mu.Unlock()

	writeOK(w, nil)
}

// ============================================================================
// Address handlers
// ============================================================================

func (s *Server) handleListAddresses(w http.ResponseWriter, r *http.Request, u *User) {
	s.mu.Lock()
	addrs := slices.Clone(s.addresses[u.ID])
	s.mu.Unlock()
	if addrs == nil {
		addrs = []shopsdk.Address{}
	}
	writeOK(w, addrs)
}

func (s *Server) handleCreateAddress(w http.ResponseWriter, r *http.Request, u *User) {
	var in shopsdk.AddressInput
	if !decode(w, r, &in) {
		return
	}
	if in.FullAddress == "" {
		writeFail(w, http.StatusBadRequest, "Address is required.")
		return
	}

	s.mu.Lock()
	a := shopsdk.Address{ID: s.newIDLocked(), Title: in.Title, FullAddress: in.FullAddress, City: in.City, PostalCode: in.PostalCode}
	s.addresses[u.ID] = append(s.addresses[u.ID], a)
	s.mu.Unlock()

	writeOK(w, a)
}

func (s *Server) handleUpdateAddress(w http.ResponseWriter, r *http.Request, u *User) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in shopsdk.AddressInput
	if !decode(w, r, &in) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.addresses[u.ID] {
		if a.ID == id {
			s.addresses[u.ID][i] = shopsdk.Address{ID: id, Title: in.Title, FullAddress: in.FullAddress, City: in.City, PostalCode: in.PostalCode}
			writeOK(w, nil)
			return
		}
	}
	writeFail(w, http.StatusNotFound, "Address not found.")
}

func (s *Server) handleDeleteAddress(w http.ResponseWriter, r *http.Request, u *User) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	s.addresses[u.ID] = slices.DeleteFunc(s.addresses[u.ID], func(a shopsdk.Address) bool { return a.ID == id })
	s.mu.Unlock()

	writeOK(w, nil)
}

// ============================================================================
// Order handlers
// ============================================================================

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request, u *User) {
	var req shopsdk.CheckoutRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Address == "" {
		writeFail(w, http.StatusBadRequest, "Address is required.")
		return
	}
	if !req.PaymentMethod.Valid() {
		writeFail(w, http.StatusBadRequest, "Unsupported payment method.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[u.ID]
	if len(lines) == 0 {
		writeFail(w, http.StatusBadRequest, "Cart is empty.")
		return
	}

	var discount float64
	if req.CouponCode != nil {
		d, ok := s.coupons[*req.CouponCode]
		if !ok {
			writeFail(w, http.StatusBadRequest, "Invalid coupon.")
			return
		}
		discount = d
	}

	order := shopsdk.Order{
		ID:             s.newIDLocked(),
		CreatedAt:      time.Now().UTC(),
		Status:         shopsdk.OrderPending,
		Address:        req.Address,
		PaymentMethod:  string(req.PaymentMethod),
		DiscountAmount: discount,
		UserEmail:      u.Email,
	}
	for _, l := range lines {
		p := s.products[l.ProductID]
		qty := min(l.Quantity, p.StockQuantity)
		if qty <= 0 {
			continue
		}
		p.StockQuantity -= qty
		item := shopsdk.OrderItem{ProductID: p.ID, ProductName: p.Name, Quantity: qty, UnitPrice: p.Price, TotalPrice: p.Price * float64(qty)}
		order.Items = append(order.Items, item)
		order.TotalAmount += item.TotalPrice
	}
	order.TotalAmount = max(order.TotalAmount-discount, 0)

	s.orders[u.ID] = append(s.orders[u.ID], order)
	s.carts[u.ID] = nil

	writeOK(w, order)
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request, u *User) {
	s.mu.Lock()
	orders := slices.Clone(s.orders[u.ID])
	s.mu.Unlock()
	if orders == nil {
		orders = []shopsdk.Order{}
	}
	writeOK(w, orders)
}

func (s *Server) handleCancelOrder(w http.ResponseWriter, r *http.Request, u *User) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.orders[u.ID] {
		if o.ID != id {
			continue
		}
		if !o.Status.Cancellable() {
			writeFail(w, http.StatusBadRequest, "Order can no longer be cancelled.")
			return
		}
		s.orders[u.ID][i].Status = shopsdk.OrderCancelled
		writeOK(w, nil)
		return
	}
	writeFail(w, http.StatusNotFound, "Order not found.")
}

func (s *Server) handleInvoice(w http.ResponseWriter, r *http.Request, u *User) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	found := slices.ContainsFunc(s.orders[u.ID], func(o shopsdk.Order) bool { return o.ID == id })
	s.mu.Unlock()

	if !found {
		writeFail(w, http.StatusNotFound, "Order not found.")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "%%PDF-1.4 invoice %d", id)
}

// ============================================================================
// Admin handlers
// ============================================================================

func (s *Server) handleAdminProducts(w http.ResponseWriter, r *http.Request, _ *User) {
	r.URL.RawQuery = strings.NewReplacer("Page=", "page=", "PageSize=", "pageSize=").Replace(r.URL.RawQuery)
	s.handleListProducts(w, r)
}

func (s *Server) handleAdminUsers(w http.ResponseWriter, r *http.Request, _ *User) {
	s.mu.Lock()
	users := make([]shopsdk.AdminUser, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, shopsdk.AdminUser{ID: u.ID, Email: u.Email, Username: u.Username, Phone: u.Phone, Roles: slices.Clone(u.Roles), IsBanned: u.Banned})
	}
	s.mu.Unlock()

	slices.SortFunc(users, func(a, b shopsdk.AdminUser) int { return strings.Compare(a.ID, b.ID) })
	writeOK(w, users)
}

func (s *Server) handleAdminBan(w http.ResponseWriter, r *http.Request, _ *User) {
	var req shopsdk.BanRequest
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[r.PathValue("id")]
	if !ok {
		writeFail(w, http.StatusNotFound, "User not found.")
		return
	}
	u.Banned = req.IsBanned
	writeOK(w, nil)
}

func (s *Server) handleAdminOrders(w http.ResponseWriter, r *http.Request, _ *User) {
	s.mu.Lock()
	var all []shopsdk.Order
	for _, orders := range s.orders {
		all = append(all, orders...)
	}
	s.mu.Unlock()

	slices.SortFunc(all, func(a, b shopsdk.Order) int { return int(a.ID - b.ID) })
	writeOK(w, all)
}

func (s *Server) handleAdminOrderStatus(w http.ResponseWriter, r *http.Request, _ *User) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req shopsdk.OrderStatusRequest
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for uid, orders := range s.orders {
		for i := range orders {
			if orders[i].ID == id {
				s.orders[uid][i].Status = req.Status
				writeOK(w, nil)
				return
			}
		}
	}
	writeFail(w, http.StatusNotFound, "Order not found.")
}

func (s *Server) handleAdminRoles(w http.ResponseWriter, r *http.Request, _ *User) {
	s.mu.Lock()
	roles := slices.Clone(s.roles)
	s.mu.Unlock()
	writeOK(w, roles)
}

func (s *Server) handleAdminCreateRole(w http.ResponseWriter, r *http.Request, _ *User) {
	var req shopsdk.CreateRoleRequest
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	s.roles = append(s.roles, shopsdk.Role{ID: "r-" + strings.ToLower(req.Name), Name: req.Name})
	s.mu.Unlock()

	writeOK(w, nil)
}

// ============================================================================
// Helpers
// ============================================================================

func (s *Server) newIDLocked() int64 {
	s.nextID++
	return s.nextID
}

func writeOK(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func writeFail(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "Message": msg})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeFail(w, http.StatusBadRequest, "Malformed request.")
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid id.")
		return 0, false
	}
	return id, true
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
