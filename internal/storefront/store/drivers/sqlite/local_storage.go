package sqlite

import (
	"context"
	"database/sql"
)

// localStorage is the key/value table every repo sits on.
type localStorage struct {
	db *sql.DB
}

const getItem = `SELECT value FROM local_storage WHERE key = ?`

func (l *localStorage) getItem(ctx context.Context, key string) (string, error) {
	var value string
	if err := l.db.QueryRowContext(ctx, getItem, key).Scan(&value); err != nil {
		return "", mapNotFound(err)
	}
	return value, nil
}

const setItem = `INSERT INTO local_storage (key, value, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

func (l *localStorage) setItem(ctx context.Context, key, value string) error {
	_, err := l.db.ExecContext(ctx, setItem, key, value)
	return err
}

const removeItem = `DELETE FROM local_storage WHERE key = ?`

func (l *localStorage) removeItem(ctx context.Context, key string) error {
	_, err := l.db.ExecContext(ctx, removeItem, key)
	return err
}

