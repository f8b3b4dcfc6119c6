package sqlite

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/storefront/internal/storefront/store"
)

type tokensRepo struct {
	kv *localStorage
}

func (r *tokensRepo) Get(ctx context.Context) (string, bool, error) {
	token, err := r.kv.getItem(ctx, keyToken)
	if errors.Is(err, store.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return token, true, nil
}

func (r *tokensRepo) Set(ctx context.Context, token string) error {
	return r.kv.setItem(ctx, keyToken, token)
}

func (r *tokensRepo) Remove(ctx context.Context) error {
	return r.kv.removeItem(ctx, keyToken)
}
