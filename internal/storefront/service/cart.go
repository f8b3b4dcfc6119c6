package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
	"golang.org/x/sync/errgroup"
)

// DefaultEnrichConcurrency bounds parallel product lookups of one cart load.
const DefaultEnrichConcurrency = 8

// CartService is the cart engine. Signed-in carts live on the service;
// guest carts live in local storage. Either way every load is enriched with
// live product data and clamped to stock.
type CartService struct {
	session     *SessionService
	store       store.Store
	notices     *Notifier
	logger      *slog.Logger
	policy      domain.EnrichmentPolicy
	concurrency int

	seq atomic.Uint64

	mu      sync.RWMutex
	lines   []domain.CartLine
	guest   bool
	applied uint64
}

// CartOptions tunes enrichment. Zero values select the defaults.
type CartOptions struct {
	Policy      domain.EnrichmentPolicy
	Concurrency int
}

// NewCartService builds the engine and subscribes it to session flips.
func NewCartService(session *SessionService, st store.Store, notices *Notifier, logger *slog.Logger, opts CartOptions) *CartService {
	if logger == nil {
		logger = slog.Default()
	}
	if !opts.Policy.Valid() {
		opts.Policy = domain.EnrichPartial
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultEnrichConcurrency
	}

	c := &CartService{
		session:     session,
		store:       st,
		notices:     notices,
		logger:      logger.With("component", "cart"),
		policy:      opts.Policy,
		concurrency: opts.Concurrency,
		lines:       []domain.CartLine{},
		guest:       true,
	}
	session.Subscribe(c.onSessionChange)
	return c
}

// onSessionChange merges the guest cart on login and falls back to the
// guest cart on logout.
func (c *CartService) onSessionChange(ctx context.Context, snap domain.Session) {
	if snap.IsAuthenticated {
		if err := c.SyncGuestCart(ctx); err == nil {
			return
		}
	}
	if _, err := c.Load(ctx); err != nil {
		c.logger.WarnContext(ctx, "failed to load cart", "error", err)
	}
}

// Snapshot returns the last applied cart.
func (c *CartService) Snapshot() domain.Cart {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return domain.Cart{
		Lines:    slices.Clone(c.lines),
		Subtotal: domain.Subtotal(c.lines),
		Guest:    c.guest,
	}
}

// Subtotal sums the enriched totals of the current cart.
func (c *CartService) Subtotal() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return domain.Subtotal(c.lines)
}

// ============================================================================
// Load
// ============================================================================

// Load fetches and enriches the cart of the current mode. Only the newest of
// overlapping loads is applied; an older one returns whatever is current.
func (c *CartService) Load(ctx context.Context) (domain.Cart, error) {
	seq := c.seq.Add(1)
	authed := c.session.Snapshot().IsAuthenticated

	raw, err := c.rawLines(ctx, authed)
	if err != nil {
		return c.Snapshot(), err
	}

	lines, err := c.enrich(ctx, raw)
	if err != nil {
		return c.Snapshot(), err
	}

	c.apply(seq, lines, !authed)
	return c.Snapshot(), nil
}

func (c *CartService) rawLines(ctx context.Context, authed bool) ([]shopsdk.CartLine, error) {
	if authed {
		lines, err := c.session.API().GetCart(ctx)
		if err != nil {
			return nil, err
		}
		return lines, nil
	}

	guest, err := c.store.GuestCart().Load(ctx)
	if err != nil {
		return nil, err
	}
	raw := make([]shopsdk.CartLine, len(guest))
	for i, g := range guest {
		raw[i] = shopsdk.CartLine{ID: g.ProductID, ProductID: g.ProductID, Quantity: g.Quantity}
	}
	return raw, nil
}

// enrich looks every line's product up concurrently. Under the partial
// policy a failed lookup marks its line; under strict it fails the load.
func (c *CartService) enrich(ctx context.Context, raw []shopsdk.CartLine) ([]domain.CartLine, error) {
	out := make([]domain.CartLine, len(raw))
	if len(raw) == 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, line := range raw {
		g.Go(func() error {
			product, err := c.session.Client().GetProduct(gctx, line.ProductID)
			if err != nil {
				if c.policy == domain.EnrichStrict {
					return fmt.Errorf("failed to enrich product %d: %w", line.ProductID, err)
				}
				c.logger.WarnContext(ctx, "cart line unavailable", "product_id", line.ProductID, "error", err)
				out[i] = unavailableLine(line, err)
				return nil
			}
			out[i] = enrichedLine(line, product)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func enrichedLine(line shopsdk.CartLine, p *shopsdk.Product) domain.CartLine {
	qty := min(line.Quantity, max(p.StockQuantity, 0))
	return domain.CartLine{
		ID:           line.ID,
		ProductID:    line.ProductID,
		Quantity:     qty,
		ProductName:  p.Name,
		ProductPrice: p.Price,
		ProductImage: p.ImageURL,
		TotalPrice:   p.Price * float64(qty),
	}
}

func unavailableLine(line shopsdk.CartLine, err error) domain.CartLine {
	return domain.CartLine{
		ID:          line.ID,
		ProductID:   line.ProductID,
		Quantity:    line.Quantity,
		Unavailable: true,
		Error:       shopsdk.Message(err, "Product unavailable."),
	}
}

// apply installs lines unless a newer load already did.
func (c *CartService) apply(seq uint64, lines []domain.CartLine, guest bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq < c.applied {
		c.logger.Debug("discarding stale cart load", "seq", seq, "applied", c.applied)
		return false
	}
	c.applied = seq
	c.lines = lines
	c.guest = guest
	return true
}

// ============================================================================
// Mutations
// ============================================================================

// AddToCart sets the quantity of productID, adding the line if needed.
// Quantities below one become one.
func (c *CartService) AddToCart(ctx context.Context, productID int64, quantity int) (domain.Cart, error) {
	if quantity <= 0 {
		quantity = 1
	}

	if c.session.Snapshot().IsAuthenticated {
		if err := c.session.API().UpsertCartItem(ctx, productID, quantity); err != nil {
			return c.Snapshot(), err
		}
		return c.Load(ctx)
	}

	guest, err := c.store.GuestCart().Load(ctx)
	if err != nil {
		return c.Snapshot(), err
	}
	if err := c.store.GuestCart().Save(ctx, upsertGuestLine(guest, productID, quantity)); err != nil {
		return c.Snapshot(), err
	}
	return c.Load(ctx)
}

// upsertGuestLine replaces the quantity of an existing product or appends
// a new line; it never adds to an existing quantity.
func upsertGuestLine(lines []domain.GuestLine, productID int64, quantity int) []domain.GuestLine {
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = quantity
			return lines
		}
	}
	return append(lines, domain.GuestLine{ProductID: productID, Quantity: quantity})
}

// RemoveFromCart removes a line by its id: the server line id when signed
// in, the product id for guests.
func (c *CartService) RemoveFromCart(ctx context.Context, lineID int64) (domain.Cart, error) {
	if !c.session.Snapshot().IsAuthenticated {
		guest, err := c.store.GuestCart().Load(ctx)
		if err != nil {
			return c.Snapshot(), err
		}
		guest = slices.DeleteFunc(guest, func(l domain.GuestLine) bool { return l.ProductID == lineID })
		if err := c.store.GuestCart().Save(ctx, guest); err != nil {
			return c.Snapshot(), err
		}
		return c.Load(ctx)
	}

	if err := c.session.API().DeleteCartItem(ctx, lineID); err != nil {
		return c.Snapshot(), err
	}

	// Loads started before the delete may still hold the line; a newer
	// sequence number makes apply discard them.
	seq := c.seq.Add(1)
	lines := slices.DeleteFunc(c.Snapshot().Lines, func(l domain.CartLine) bool { return l.ID == lineID })
	c.apply(seq, lines, false)

	return c.Snapshot(), nil
}

// ============================================================================
// Merge
// ============================================================================

// SyncGuestCart merges the guest cart into the signed-in cart, keeping the
// larger quantity per product. On success the guest cart is cleared and the
// cart reloaded. On failure the guest cart is left untouched for a later
// attempt and a notice is published.
func (c *CartService) SyncGuestCart(ctx context.Context) error {
	if !c.session.Snapshot().IsAuthenticated {
		return ErrLoginRequired
	}

	guest, err := c.store.GuestCart().Load(ctx)
	if err != nil {
		return c.syncFailed(ctx, err)
	}
	if len(guest) == 0 {
		_, err := c.Load(ctx)
		return err
	}

	if err := c.merge(ctx, guest); err != nil {
		return c.syncFailed(ctx, err)
	}

	if err := c.store.GuestCart().Clear(ctx); err != nil {
		return c.syncFailed(ctx, err)
	}

	c.logger.InfoContext(ctx, "guest cart merged", "lines", len(guest))
	_, err = c.Load(ctx)
	return err
}

func (c *CartService) merge(ctx context.Context, guest []domain.GuestLine) error {
	api := c.session.API()

	server, err := api.GetCart(ctx)
	if err != nil {
		return err
	}

	current := make(map[int64]int, len(server))
	for _, l := range server {
		current[l.ProductID] = l.Quantity
	}

	for _, g := range guest {
		have, ok := current[g.ProductID]
		if ok && have >= g.Quantity {
			continue
		}
		if err := api.UpsertCartItem(ctx, g.ProductID, g.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (c *CartService) syncFailed(ctx context.Context, err error) error {
	c.logger.ErrorContext(ctx, "cart merge failed", "error", err)
	c.notices.Error(MsgCartSyncFailed)
	return fmt.Errorf("failed to sync cart: %w", err)
}
