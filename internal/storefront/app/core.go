package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
	"github.com/aussiebroadwan/storefront/internal/storefront/store/drivers/sqlite"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
	"golang.org/x/time/rate"
)

// Core is the storefront client without any outer surface: local storage,
// the gateway and every service wired to one session. The BFF and the CLI
// both run on it.
type Core struct {
	Store  store.Store
	Client *shopsdk.Client

	Signal    *service.UnauthorizedSignal
	Notices   *service.Notifier
	Session   *service.SessionService
	Expiry    *service.ExpiryHandler
	Cart      *service.CartService
	Favorites *service.FavoritesService
	Checkout  *service.CheckoutService
	Account   *service.AccountService
	Admin     *service.AdminService
	Catalog   *service.CatalogService
}

// NewCore opens local storage, applies migrations and wires the services.
// It does not restore the stored session; call Restore for that.
func NewCore(cfg Config, logger *slog.Logger) (*Core, error) {
	db, err := sqlite.NewStore(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	logger.Debug("database migrations applied successfully", "file", cfg.DatabaseFile)

	return wire(cfg, db, newClient(cfg), logger), nil
}

func newClient(cfg Config) *shopsdk.Client {
	client := shopsdk.NewClient(cfg.APIBaseURL)
	if cfg.HTTPTimeout > 0 {
		client.HTTPClient.Timeout = cfg.HTTPTimeout
	}
	if cfg.APIRateLimit > 0 {
		client.Limiter = rate.NewLimiter(rate.Limit(cfg.APIRateLimit), max(cfg.APIRateBurst, 1))
	}
	return client
}

func wire(cfg Config, db store.Store, client *shopsdk.Client, logger *slog.Logger) *Core {
	c := &Core{
		Store:   db,
		Client:  client,
		Signal:  &service.UnauthorizedSignal{},
		Notices: &service.Notifier{},
	}
	client.Notifier = c.Signal

	c.Session = service.NewSessionService(client, db, logger)
	c.Expiry = &service.ExpiryHandler{Session: c.Session, Notices: c.Notices, Logger: logger}
	c.Expiry.Attach(c.Signal)

	c.Cart = service.NewCartService(c.Session, db, c.Notices, logger, service.CartOptions{
		Policy:      cfg.EnrichmentPolicy,
		Concurrency: cfg.EnrichConcurrency,
	})
	c.Favorites = service.NewFavoritesService(c.Session, c.Notices, logger)
	c.Checkout = service.NewCheckoutService(c.Session, c.Cart, c.Notices, logger)
	c.Account = service.NewAccountService(c.Session, logger)
	c.Admin = service.NewAdminService(c.Session)
	c.Catalog = service.NewCatalogService(client)
	return c
}

// Restore brings back the stored session. A rejected token is not fatal:
// the session is simply left signed out. A restored session loads its cart
// through the session observer; otherwise the guest cart is loaded here.
func (c *Core) Restore(ctx context.Context, logger *slog.Logger) {
	if err := c.Session.Restore(ctx); err != nil {
		logger.WarnContext(ctx, "stored session could not be restored", "error", err)
	}
	if c.Session.Snapshot().IsAuthenticated {
		return
	}
	if _, err := c.Cart.Load(ctx); err != nil {
		logger.WarnContext(ctx, "failed to load guest cart", "error", err)
	}
}

// Close releases the local store.
func (c *Core) Close() error {
	return c.Store.Close()
}
