package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

// CheckoutService relays coupon checks and order placement for the
// signed-in cart. Totals and coupon rules are the service's business.
type CheckoutService struct {
	session *SessionService
	cart    *CartService
	notices *Notifier
	logger  *slog.Logger
}

func NewCheckoutService(session *SessionService, cart *CartService, notices *Notifier, logger *slog.Logger) *CheckoutService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CheckoutService{
		session: session,
		cart:    cart,
		notices: notices,
		logger:  logger.With("component", "checkout"),
	}
}

// CheckoutInput is what the customer picked on the checkout page.
type CheckoutInput struct {
	AddressID     int64                 `json:"addressId"`
	PaymentMethod shopsdk.PaymentMethod `json:"paymentMethod"`
	CouponCode    string                `json:"couponCode,omitempty"`

	// DropInvalidCoupon places the order without the coupon when it no
	// longer validates, instead of failing.
	DropInvalidCoupon bool `json:"dropInvalidCoupon,omitempty"`
}

// ApplyCoupon validates code against the current cart and returns the
// discount it would give.
func (s *CheckoutService) ApplyCoupon(ctx context.Context, code string) (*shopsdk.CouponResult, error) {
	api, err := s.session.requireLogin()
	if err != nil {
		return nil, err
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: empty code", ErrInvalidCoupon)
	}

	res, err := api.ApplyCoupon(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCoupon, err)
	}
	return res, nil
}

// Checkout places the order. The coupon is re-validated first; the chosen
// address is resolved to the text the service expects. The cart is
// reloaded afterwards since the service empties it.
func (s *CheckoutService) Checkout(ctx context.Context, in CheckoutInput) (*shopsdk.Order, error) {
	api, err := s.session.requireLogin()
	if err != nil {
		return nil, err
	}
	if in.AddressID == 0 {
		return nil, ErrAddressRequired
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = shopsdk.PaymentMock
	}
	if !in.PaymentMethod.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayment, in.PaymentMethod)
	}

	var coupon *string
	if code := strings.TrimSpace(in.CouponCode); code != "" {
		if _, err := s.ApplyCoupon(ctx, code); err != nil {
			if !in.DropInvalidCoupon {
				return nil, err
			}
			s.logger.InfoContext(ctx, "dropping invalid coupon", "error", err)
			s.notices.Warning(MsgCouponDropped)
		} else {
			coupon = &code
		}
	}

	address, err := s.resolveAddress(ctx, api, in.AddressID)
	if err != nil {
		return nil, err
	}

	order, err := api.Checkout(ctx, shopsdk.CheckoutRequest{
		Address:       address,
		PaymentMethod: in.PaymentMethod,
		CouponCode:    coupon,
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "order placed", "order_id", order.ID, "total", order.TotalAmount)
	if _, err := s.cart.Load(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to reload cart after checkout", "error", err)
	}
	return order, nil
}

func (s *CheckoutService) resolveAddress(ctx context.Context, api *shopsdk.Session, id int64) (string, error) {
	addrs, err := api.ListAddresses(ctx)
	if err != nil {
		return "", err
	}
	for _, a := range addrs {
		if a.ID == id {
			return a.FullAddress, nil
		}
	}
	return "", fmt.Errorf("%w: address %d not found", ErrAddressRequired, id)
}
