package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

// AccountService relays the customer's address book, profile and order
// history.
type AccountService struct {
	session *SessionService
	logger  *slog.Logger
}

func NewAccountService(session *SessionService, logger *slog.Logger) *AccountService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountService{session: session, logger: logger.With("component", "account")}
}

// ============================================================================
// Addresses
// ============================================================================

func (s *AccountService) ListAddresses(ctx context.Context) ([]shopsdk.Address, error) {
	api, err := s.session.requireLogin()
	if err != nil {
		return nil, err
	}
	return api.ListAddresses(ctx)
}

func (s *AccountService) CreateAddress(ctx context.Context, in shopsdk.AddressInput) (*shopsdk.Address, error) {
	api, err := s.session.requireLogin()
	if err != nil {
		return nil, err
	}
	return api.CreateAddress(ctx, in)
}

func (s *AccountService) UpdateAddress(ctx context.Context, id int64, in shopsdk.AddressInput) error {
	api, err := s.session.requireLogin()
	if err != nil {
		return err
	}
	return api.UpdateAddress(ctx, id, in)
}

func (s *AccountService) DeleteAddress(ctx context.Context, id int64) error {
	api, err := s.session.requireLogin()
	if err != nil {
		return err
	}
	return api.DeleteAddress(ctx, id)
}

// ============================================================================
// Profile
// ============================================================================

// UpdateProfile changes username and phone, then refreshes the session user.
func (s *AccountService) UpdateProfile(ctx context.Context, req shopsdk.UpdateProfileRequest) error {
	api, err := s.session.requireLogin()
	if err != nil {
		return err
	}
	if err := api.UpdateProfile(ctx, req); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}

// ChangeEmail changes the account email, then refreshes the session user.
func (s *AccountService) ChangeEmail(ctx context.Context, newEmail string) error {
	api, err := s.session.requireLogin()
	if err != nil {
		return err
	}
	if err := api.ChangeEmail(ctx, newEmail); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}

func (s *AccountService) refresh(ctx context.Context) {
	if err := s.session.Refresh(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to refresh profile", "error", err)
	}
}

// ============================================================================
// Orders
// ============================================================================

func (s *AccountService) ListOrders(ctx context.Context) ([]shopsdk.Order, error) {
	api, err := s.session.requireLogin()
	if err != nil {
		return nil, err
	}
	return api.ListOrders(ctx)
}

// CancelOrder cancels an order that has not shipped yet. Shipped, delivered
// and cancelled orders are refused without asking the service.
func (s *AccountService) CancelOrder(ctx context.Context, id int64) error {
	api, err := s.session.requireLogin()
	if err != nil {
		return err
	}

	orders, err := api.ListOrders(ctx)
	if err != nil {
		return err
	}

	for _, o := range orders {
		if o.ID != id {
			continue
		}
		if !o.Status.Cancellable() {
			return fmt.Errorf("%w: order %d is %s", ErrNotCancellable, id, o.Status)
		}
		if err := api.CancelOrder(ctx, id); err != nil {
			return err
		}
		s.logger.InfoContext(ctx, "order cancelled", "order_id", id)
		return nil
	}

	return fmt.Errorf("order %d: %w", id, shopsdk.ErrNotFound)
}

// DownloadInvoice fetches the invoice document of an order.
func (s *AccountService) DownloadInvoice(ctx context.Context, id int64) (*shopsdk.Invoice, error) {
	api, err := s.session.requireLogin()
	if err != nil {
		return nil, err
	}
	return api.DownloadInvoice(ctx, id)
}
