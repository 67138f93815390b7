package repositories

import "github.com/Ham47Mani/sp-ecommerce-api/internal/models"

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByUser(userID string) ([]models.Order, error)
	// CreateWithStockDecrement persists the order and, for every line item,
	// decrements the product's quantity and increments its sold counter.
	// The whole batch is all-or-nothing: a line whose conditional decrement
	// (quantity >= count) matches nothing aborts the commit with
	// ErrInsufficientStock and no order is written.
	CreateWithStockDecrement(order *models.Order) error
	// UpdateStatus sets the order status together with the mirrored
	// payment intent status and returns the updated order.
	UpdateStatus(id string, status models.OrderStatus) (*models.Order, error)
}
