package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aussiebroadwan/storefront/internal/storefront/store"
	_ "modernc.org/sqlite"
)

// Keys of the local_storage table.
const (
	keyToken     = "token"
	keyGuestCart = "guest_cart"
)

type Store struct {
	db  *sql.DB
	kv  *localStorage
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// One connection: every ":memory:" connection is its own database, and
	// a single browser profile has a single writer anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		kv:  &localStorage{db: db},
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Tokens() store.Tokens       { return &tokensRepo{kv: s.kv} }
func (s *Store) GuestCart() store.GuestCart { return &guestCartRepo{kv: s.kv} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}
