package repositories

import (
	"errors"
	"fmt"

	"github.com/Ham47Mani/sp-ecommerce-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all orders with their line items.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Products").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves a single order by its ID.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Products").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// GetByUser retrieves all orders placed by the given user.
func (r *GORMOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Products").Find(&orders, "order_by = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// CreateWithStockDecrement persists the order and applies the stock
// decrements in one transaction. Each decrement is conditional on
// quantity >= count; a miss rolls everything back.
func (r *GORMOrderRepository) CreateWithStockDecrement(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Products {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND quantity >= ?", item.ProductID, item.Count).
				Updates(map[string]interface{}{
					"quantity": gorm.Expr("quantity - ?", item.Count),
					"sold":     gorm.Expr("sold + ?", item.Count),
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("product %s (requested %d): %w",
					item.ProductID, item.Count, ErrInsufficientStock)
			}
		}
		return tx.Create(order).Error
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientStock) {
			return err
		}
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// UpdateStatus sets the order status and the mirrored payment intent status
// in a single update.
func (r *GORMOrderRepository) UpdateStatus(id string, status models.OrderStatus) (*models.Order, error) {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"order_status":   status,
			"payment_status": status,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update status for order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	return r.GetByID(id)
}
