package repositories

import "errors"

// Sentinel errors shared by all repository implementations. Callers match
// them with errors.Is; implementations wrap them with entity context.
var (
	// ErrNotFound indicates the referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates a uniqueness constraint was violated
	// (e.g. coupon name, product slug, a second cart for the same user).
	ErrDuplicate = errors.New("already exists")

	// ErrInsufficientStock indicates a conditional stock decrement matched
	// zero rows because the requested count exceeded the available quantity.
	ErrInsufficientStock = errors.New("insufficient stock")
)
