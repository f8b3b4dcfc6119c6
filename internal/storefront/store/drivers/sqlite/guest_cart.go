package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
)

type guestCartRepo struct {
	kv *localStorage
}

func (r *guestCartRepo) Load(ctx context.Context) ([]domain.GuestLine, error) {
	raw, err := r.kv.getItem(ctx, keyGuestCart)
	if errors.Is(err, store.ErrNotFound) {
		return []domain.GuestLine{}, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []domain.GuestLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, fmt.Errorf("failed to decode guest cart: %w", err)
	}
	if lines == nil {
		lines = []domain.GuestLine{}
	}
	return lines, nil
}

func (r *guestCartRepo) Save(ctx context.Context, lines []domain.GuestLine) error {
	if len(lines) == 0 {
		return r.Clear(ctx)
	}

	raw, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode guest cart: %w", err)
	}
	return r.kv.setItem(ctx, keyGuestCart, string(raw))
}

func (r *guestCartRepo) Clear(ctx context.Context) error {
	return r.kv.removeItem(ctx, keyGuestCart)
}
