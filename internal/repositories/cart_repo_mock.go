package repositories

import (
	"fmt"
	"sync"

	"github.com/Ham47Mani/sp-ecommerce-api/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository,
// keyed by owning user.
type MockCartRepository struct {
	carts map[string]models.Cart
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		carts: make(map[string]models.Cart),
	}
}

// GetByUser returns the user's cart.
func (r *MockCartRepository) GetByUser(userID string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[userID]
	if !ok {
		return nil, fmt.Errorf("cart for user %s: %w", userID, ErrNotFound)
	}
	return &cart, nil
}

// Create adds a cart; a second cart for the same user is rejected.
func (r *MockCartRepository) Create(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[cart.OrderBy]; ok {
		return fmt.Errorf("cart for user %s: %w", cart.OrderBy, ErrDuplicate)
	}
	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	r.carts[cart.OrderBy] = *cart
	return nil
}

// Replace swaps the user's cart for the given one.
func (r *MockCartRepository) Replace(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	r.carts[cart.OrderBy] = *cart
	return nil
}

// SetTotalAfterDiscount persists the discounted total on the user's cart.
func (r *MockCartRepository) SetTotalAfterDiscount(userID string, total float64) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[userID]
	if !ok {
		return nil, fmt.Errorf("cart for user %s: %w", userID, ErrNotFound)
	}
	cart.TotalAfterDiscount = &total
	r.carts[userID] = cart
	return &cart, nil
}

// DeleteByUser removes the user's cart and returns the deleted snapshot.
func (r *MockCartRepository) DeleteByUser(userID string) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[userID]
	if !ok {
		return nil, fmt.Errorf("cart for user %s: %w", userID, ErrNotFound)
	}
	delete(r.carts, userID)
	return &cart, nil
}
