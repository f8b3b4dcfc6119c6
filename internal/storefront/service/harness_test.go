package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/store/drivers/sqlite"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk/shopsdktest"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
	"github.com/stretchr/testify/require"
)

// Seed data shared by the service tests.
const (
	mugID    int64 = 1
	teeID    int64 = 2
	posterID int64 = 3

	aliceID    = "u-alice"
	aliceEmail = "alice@example.com"
	adminID    = "u-admin"
	adminEmail = "admin@example.com"
	password   = "secret"
)

type harness struct {
	t *testing.T

	srv    *shopsdktest.Server
	store  *sqlite.Store
	client *shopsdk.Client

	signal   *UnauthorizedSignal
	notices  *Notifier
	session  *SessionService
	expiry   *ExpiryHandler
	cart     *CartService
	favs     *FavoritesService
	checkout *CheckoutService
	account  *AccountService
	admin    *AdminService
	catalog  *CatalogService

	clockMu sync.Mutex
	clock   time.Time

	noticeMu sync.Mutex
	received []domain.Notice
}

func newHarness(t *testing.T, opts CartOptions) *harness {
	t.Helper()

	srv := shopsdktest.NewServer(t)
	srv.AddProduct(shopsdk.Product{ID: mugID, Name: "Mug", Price: 10, StockQuantity: 5, ImageURL: "/img/mug.png"})
	srv.AddProduct(shopsdk.Product{ID: teeID, Name: "Tee", Price: 20, StockQuantity: 10, ImageURL: "/img/tee.png"})
	srv.AddProduct(shopsdk.Product{ID: posterID, Name: "Poster", Price: 5, StockQuantity: 2, ImageURL: "/img/poster.png"})
	srv.AddUser(shopsdktest.User{ID: aliceID, Email: aliceEmail, Password: password, Username: "alice", Phone: "555-0100", Roles: []string{"Customer"}})
	srv.AddUser(shopsdktest.User{ID: adminID, Email: adminEmail, Password: password, Username: "root", Roles: []string{"Admin"}})

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	h := &harness{t: t, srv: srv, store: st, clock: time.Now()}

	logger := slogx.Nop()
	h.signal = &UnauthorizedSignal{}
	h.notices = &Notifier{}
	h.notices.Subscribe(func(n domain.Notice) {
		h.noticeMu.Lock()
		h.received = append(h.received, n)
		h.noticeMu.Unlock()
	})

	h.client = shopsdk.NewClient(srv.BaseURL())
	h.client.Notifier = h.signal
	h.client.Now = h.now

	h.session = NewSessionService(h.client, st, logger)
	h.expiry = &ExpiryHandler{Session: h.session, Notices: h.notices, Logger: logger}
	h.expiry.Attach(h.signal)
	h.cart = NewCartService(h.session, st, h.notices, logger, opts)
	h.favs = NewFavoritesService(h.session, h.notices, logger)
	h.checkout = NewCheckoutService(h.session, h.cart, h.notices, logger)
	h.account = NewAccountService(h.session, logger)
	h.admin = NewAdminService(h.session)
	h.catalog = NewCatalogService(h.client)

	return h
}

func (h *harness) now() time.Time {
	h.clockMu.Lock()
	defer h.clockMu.Unlock()
	return h.clock
}

// advance moves the client's clock; the fake service keeps real time.
func (h *harness) advance(d time.Duration) {
	h.clockMu.Lock()
	h.clock = h.clock.Add(d)
	h.clockMu.Unlock()
}

func (h *harness) seen() []domain.Notice {
	h.noticeMu.Lock()
	defer h.noticeMu.Unlock()
	return append([]domain.Notice(nil), h.received...)
}

func (h *harness) loginAlice() {
	h.t.Helper()
	require.NoError(h.t, h.session.LoginWithPassword(context.Background(), aliceEmail, password))
}

func (h *harness) guestCart() []domain.GuestLine {
	h.t.Helper()
	lines, err := h.store.GuestCart().Load(context.Background())
	require.NoError(h.t, err)
	return lines
}

func (h *harness) setGuestCart(lines ...domain.GuestLine) {
	h.t.Helper()
	require.NoError(h.t, h.store.GuestCart().Save(context.Background(), lines))
}

func quantities(lines []shopsdk.CartLine) map[int64]int {
	out := make(map[int64]int, len(lines))
	for _, l := range lines {
		out[l.ProductID] = l.Quantity
	}
	return out
}
