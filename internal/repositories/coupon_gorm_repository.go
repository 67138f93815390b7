package repositories

import (
	"errors"
	"fmt"

	"github.com/Ham47Mani/sp-ecommerce-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCouponRepository is a GORM implementation of CouponRepository.
type GORMCouponRepository struct {
	db *gorm.DB
}

// NewGORMCouponRepository creates a new instance of GORMCouponRepository.
func NewGORMCouponRepository(db *gorm.DB) *GORMCouponRepository {
	return &GORMCouponRepository{
		db: db,
	}
}

// GetAll retrieves all coupons.
func (r *GORMCouponRepository) GetAll() ([]models.Coupon, error) {
	var coupons []models.Coupon
	if err := r.db.Find(&coupons).Error; err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	return coupons, nil
}

// GetByName retrieves a coupon by its exact name.
func (r *GORMCouponRepository) GetByName(name string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.db.First(&coupon, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("coupon %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get coupon %s: %w", name, err)
	}
	return &coupon, nil
}

// Create creates a new coupon.
func (r *GORMCouponRepository) Create(coupon *models.Coupon) error {
	if coupon.ID == "" {
		coupon.ID = uuid.New().String()
	}
	if err := r.db.Create(coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("coupon %s: %w", coupon.Name, ErrDuplicate)
		}
		return fmt.Errorf("failed to create coupon: %w", err)
	}
	return nil
}

// Update updates an existing coupon.
func (r *GORMCouponRepository) Update(coupon *models.Coupon) error {
	res := r.db.Save(coupon)
	if res.Error != nil {
		return fmt.Errorf("failed to update coupon: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("coupon with ID %s: %w", coupon.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a coupon by its ID.
func (r *GORMCouponRepository) Delete(id string) error {
	res := r.db.Delete(&models.Coupon{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete coupon: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("coupon with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
