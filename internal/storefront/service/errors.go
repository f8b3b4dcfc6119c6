package service

import "errors"

var (
	ErrLoginRequired   = errors.New("login required")
	ErrAdminRequired   = errors.New("admin role required")
	ErrAddressRequired = errors.New("address required")
	ErrNotCancellable  = errors.New("order can no longer be cancelled")
	ErrInvalidCoupon   = errors.New("invalid coupon")
	ErrInvalidPayment  = errors.New("unsupported payment method")
)

// User-facing notice texts.
const (
	MsgSessionExpired  = "Your session has expired. Please log in again."
	MsgCartSyncFailed  = "Failed to sync cart"
	MsgFavoritesLogin  = "Please login to manage favorites."
	MsgFavoritesFailed = "Failed to update favorites."
	MsgCouponDropped   = "Coupon could not be applied; continuing without it."
)

// LoginRoute is where the shell sends the user after the session expires.
const LoginRoute = "/login"
