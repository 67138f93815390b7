package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/Ham47Mani/sp-ecommerce-api/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository. It
// shares a MockProductRepository so order commits mutate the same stock the
// rest of the suite reads.
type MockOrderRepository struct {
	orders   map[string]models.Order
	products *MockProductRepository
	mu       sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository backed
// by the given product repository for stock mutation.
func NewMockOrderRepository(products *MockProductRepository) *MockOrderRepository {
	return &MockOrderRepository{
		orders:   make(map[string]models.Order),
		products: products,
	}
}

// GetAll returns all orders.
func (r *MockOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orderList = append(orderList, order)
	}
	return orderList, nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	return &order, nil
}

// GetByUser returns all orders placed by the given user.
func (r *MockOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orderList []models.Order
	for _, order := range r.orders {
		if order.OrderBy == userID {
			orderList = append(orderList, order)
		}
	}
	return orderList, nil
}

// CreateWithStockDecrement mirrors the transactional commit: conditional
// decrements per line, with already-applied decrements undone on abort.
func (r *MockOrderRepository) CreateWithStockDecrement(order *models.Order) error {
	if r.products == nil {
		return fmt.Errorf("mock order repository has no product repository")
	}

	var applied []models.OrderItem
	for _, item := range order.Products {
		if err := r.products.decrementStock(item.ProductID, item.Count); err != nil {
			for _, done := range applied {
				r.products.restoreStock(done.ProductID, done.Count)
			}
			return err
		}
		applied = append(applied, item)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = *order
	return nil
}

// UpdateStatus sets the order status and mirrored payment intent status.
func (r *MockOrderRepository) UpdateStatus(id string, status models.OrderStatus) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	order.OrderStatus = status
	order.PaymentIntent.Status = status
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return &order, nil
}
