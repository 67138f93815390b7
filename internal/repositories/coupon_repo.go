package repositories

import "github.com/Ham47Mani/sp-ecommerce-api/internal/models"

// CouponRepository defines the interface for coupon data access.
type CouponRepository interface {
	GetAll() ([]models.Coupon, error)
	// GetByName looks a coupon up by its exact (upper-cased) name.
	GetByName(name string) (*models.Coupon, error)
	Create(coupon *models.Coupon) error
	Update(coupon *models.Coupon) error
	Delete(id string) error
}
