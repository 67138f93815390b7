package repositories

import (
	"errors"
	"fmt"

	"github.com/Ham47Mani/sp-ecommerce-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetByUser retrieves the user's cart with its line items.
func (r *GORMCartRepository) GetByUser(userID string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Preload("Products").First(&cart, "order_by = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart for user %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return &cart, nil
}

// Create persists a new cart. The unique index on order_by rejects a second
// cart for the same user.
func (r *GORMCartRepository) Create(cart *models.Cart) error {
	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	if err := r.db.Create(cart).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("cart for user %s: %w", cart.OrderBy, ErrDuplicate)
		}
		return fmt.Errorf("failed to create cart: %w", err)
	}
	return nil
}

// Replace swaps the user's cart for the given one inside a transaction.
func (r *GORMCartRepository) Replace(cart *models.Cart) error {
	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Cart
		err := tx.First(&existing, "order_by = ?", cart.OrderBy).Error
		switch {
		case err == nil:
			if err := tx.Where("cart_id = ?", existing.ID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Delete(&existing).Error; err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		return tx.Create(cart).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace cart for user %s: %w", cart.OrderBy, err)
	}
	return nil
}

// SetTotalAfterDiscount persists the discounted total on the user's cart.
func (r *GORMCartRepository) SetTotalAfterDiscount(userID string, total float64) (*models.Cart, error) {
	res := r.db.Model(&models.Cart{}).Where("order_by = ?", userID).Update("total_after_discount", total)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update cart for user %s: %w", userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("cart for user %s: %w", userID, ErrNotFound)
	}
	return r.GetByUser(userID)
}

// DeleteByUser removes the user's cart and returns the deleted snapshot.
func (r *GORMCartRepository) DeleteByUser(userID string) (*models.Cart, error) {
	cart, err := r.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.Cart{}, "id = ?", cart.ID).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete cart for user %s: %w", userID, err)
	}
	return cart, nil
}
