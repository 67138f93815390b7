package services

import "errors"

// Service-level sentinel errors. Repository sentinels (not found, duplicate,
// insufficient stock) pass through wrapped; these cover rule violations that
// only the services know about.
var (
	// ErrInvalidCredentials is returned for any login failure, without
	// revealing whether the account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAdmin is returned when a non-admin authenticates on the admin
	// login path.
	ErrNotAdmin = errors.New("not an admin")

	// ErrEmptyCart is returned when a cart build request carries no items.
	ErrEmptyCart = errors.New("cart requires at least one item")

	// ErrCouponExpired is returned when a coupon is applied past its expiry.
	ErrCouponExpired = errors.New("coupon expired")

	// ErrCashOnly is returned when an order is committed without the
	// cash-on-delivery flag; no other payment method is supported.
	ErrCashOnly = errors.New("only cash on delivery is supported")

	// ErrInvalidStatus is returned for an order status outside the
	// enumeration.
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrInvalidStar is returned for a rating outside the 1..5 range.
	ErrInvalidStar = errors.New("star must be between 1 and 5")
)
