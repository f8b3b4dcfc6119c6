package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
)

var ErrNotFound = errors.New("store: not found")

// Store is the durable browser-local state of one client session. Drivers
// implement it on top of a key/value table; the sub-repositories fix the
// keys so callers never see them.
type Store interface {
	Tokens() Tokens
	GuestCart() GuestCart

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tokens holds the bearer token. Values are stored as given; nothing is
// validated.
type Tokens interface {
	// Get returns the stored token. ok is false when none is stored.
	Get(ctx context.Context) (token string, ok bool, err error)

	// Set replaces the stored token.
	Set(ctx context.Context, token string) error

	// Remove deletes the stored token. Removing an absent token is not an
	// error.
	Remove(ctx context.Context) error
}

// GuestCart holds the cart of a visitor who is not signed in.
type GuestCart interface {
	// Load returns the persisted lines, or an empty slice when nothing is
	// stored.
	Load(ctx context.Context) ([]domain.GuestLine, error)

	// Save replaces the persisted lines. Saving an empty cart clears it.
	Save(ctx context.Context, lines []domain.GuestLine) error

	// Clear deletes the persisted cart.
	Clear(ctx context.Context) error
}
