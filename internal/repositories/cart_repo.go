package repositories

import "github.com/Ham47Mani/sp-ecommerce-api/internal/models"

// CartRepository defines the interface for cart data access. Every operation
// is keyed by the owning user: a user holds at most one live cart.
type CartRepository interface {
	GetByUser(userID string) (*models.Cart, error)
	// Create persists a new cart; it fails with ErrDuplicate when the user
	// already has one.
	Create(cart *models.Cart) error
	// Replace atomically swaps the user's cart for the given one, creating
	// it when none exists.
	Replace(cart *models.Cart) error
	// SetTotalAfterDiscount persists the discounted total on the user's cart
	// and returns the updated cart.
	SetTotalAfterDiscount(userID string, total float64) (*models.Cart, error)
	// DeleteByUser removes the user's cart and returns the deleted snapshot.
	DeleteByUser(userID string) (*models.Cart, error)
}
