package repositories

import (
	"fmt"
	"sync"

	"github.com/Ham47Mani/sp-ecommerce-api/internal/models"

	"github.com/google/uuid"
)

// MockCouponRepository is an in-memory implementation of CouponRepository.
type MockCouponRepository struct {
	coupons map[string]models.Coupon
	mu      sync.RWMutex
}

// NewMockCouponRepository creates a new instance of MockCouponRepository.
func NewMockCouponRepository() *MockCouponRepository {
	return &MockCouponRepository{
		coupons: make(map[string]models.Coupon),
	}
}

// GetAll returns all coupons.
func (r *MockCouponRepository) GetAll() ([]models.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	couponList := make([]models.Coupon, 0, len(r.coupons))
	for _, c := range r.coupons {
		couponList = append(couponList, c)
	}
	return couponList, nil
}

// GetByName returns a coupon by its exact name.
func (r *MockCouponRepository) GetByName(name string) (*models.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.coupons {
		if c.Name == name {
			coupon := c
			return &coupon, nil
		}
	}
	return nil, fmt.Errorf("coupon %s: %w", name, ErrNotFound)
}

// Create adds a new coupon; duplicate names are rejected.
func (r *MockCouponRepository) Create(coupon *models.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.coupons {
		if c.Name == coupon.Name {
			return fmt.Errorf("coupon %s: %w", coupon.Name, ErrDuplicate)
		}
	}
	if coupon.ID == "" {
		coupon.ID = uuid.New().String()
	}
	r.coupons[coupon.ID] = *coupon
	return nil
}

// Update modifies an existing coupon.
func (r *MockCouponRepository) Update(coupon *models.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.coupons[coupon.ID]; !ok {
		return fmt.Errorf("coupon with ID %s: %w", coupon.ID, ErrNotFound)
	}
	r.coupons[coupon.ID] = *coupon
	return nil
}

// Delete removes a coupon by its ID.
func (r *MockCouponRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.coupons[id]; !ok {
		return fmt.Errorf("coupon with ID %s: %w", id, ErrNotFound)
	}
	delete(r.coupons, id)
	return nil
}
