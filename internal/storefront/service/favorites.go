package service

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

// FavoritesService mirrors the signed-in user's favorites. It is empty
// whenever nobody is signed in.
type FavoritesService struct {
	session *SessionService
	notices *Notifier
	logger  *slog.Logger

	seq atomic.Uint64

	mu      sync.RWMutex
	items   []domain.Favorite
	applied uint64
}

// NewFavoritesService builds the directory and subscribes it to session
// flips.
func NewFavoritesService(session *SessionService, notices *Notifier, logger *slog.Logger) *FavoritesService {
	if logger == nil {
		logger = slog.Default()
	}
	f := &FavoritesService{
		session: session,
		notices: notices,
		logger:  logger.With("component", "favorites"),
		items:   []domain.Favorite{},
	}
	session.Subscribe(func(ctx context.Context, _ domain.Session) {
		if _, err := f.Load(ctx); err != nil {
			f.logger.WarnContext(ctx, "could not load favorites", "error", err)
		}
	})
	return f
}

// List returns the current favorites.
func (f *FavoritesService) List() []domain.Favorite {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.items)
}

// IsFavorite reports whether productID is favorited.
func (f *FavoritesService) IsFavorite(productID int64) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.ContainsFunc(f.items, func(it domain.Favorite) bool { return it.ProductID == productID })
}

// Load refreshes favorites from the service, or clears them when signed
// out. A failed fetch keeps the previous list.
func (f *FavoritesService) Load(ctx context.Context) ([]domain.Favorite, error) {
	seq := f.seq.Add(1)

	if !f.session.Snapshot().IsAuthenticated {
		f.apply(seq, []domain.Favorite{})
		return f.List(), nil
	}

	favs, err := f.session.API().ListFavorites(ctx)
	if err != nil {
		return f.List(), err
	}

	items := make([]domain.Favorite, 0, len(favs))
	for _, fav := range favs {
		items = append(items, favoriteFromAPI(fav))
	}
	f.apply(seq, items)
	return f.List(), nil
}

func (f *FavoritesService) apply(seq uint64, items []domain.Favorite) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if seq < f.applied {
		return
	}
	f.applied = seq
	f.items = items
}

// ToggleFavorite adds or removes productID and returns whether it is now a
// favorite. Signed-out callers get ErrLoginRequired and a warning notice;
// nothing is changed.
func (f *FavoritesService) ToggleFavorite(ctx context.Context, productID int64) (bool, error) {
	if !f.session.Snapshot().IsAuthenticated {
		f.notices.Warning(MsgFavoritesLogin)
		return false, ErrLoginRequired
	}

	api := f.session.API()

	if f.IsFavorite(productID) {
		if err := api.RemoveFavorite(ctx, productID); err != nil {
			f.notices.Error(MsgFavoritesFailed)
			return true, err
		}
		f.mu.Lock()
		f.items = slices.DeleteFunc(slices.Clone(f.items), func(it domain.Favorite) bool { return it.ProductID == productID })
		f.mu.Unlock()
		return false, nil
	}

	fav, err := api.AddFavorite(ctx, productID)
	if err != nil {
		f.notices.Error(MsgFavoritesFailed)
		return false, err
	}
	f.mu.Lock()
	if !slices.ContainsFunc(f.items, func(it domain.Favorite) bool { return it.ProductID == productID }) {
		f.items = append(slices.Clone(f.items), favoriteFromAPI(*fav))
	}
	f.mu.Unlock()
	return true, nil
}

func favoriteFromAPI(f shopsdk.Favorite) domain.Favorite {
	return domain.Favorite{
		ProductID:    f.ProductID,
		ProductName:  f.ProductName,
		ProductPrice: f.ProductPrice,
		ProductImage: f.ProductImage,
	}
}
