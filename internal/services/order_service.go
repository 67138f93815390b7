package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Ham47Mani/sp-ecommerce-api/internal/models"
	"github.com/Ham47Mani/sp-ecommerce-api/internal/repositories"

	"github.com/google/uuid"
)

// EventPublisher publishes domain events to the message broker. Satisfied by
// *rabbitmq.Client; nil-able so tests and broker-less deployments still work.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService handles order commitment and the order status lifecycle.
type OrderService struct {
	orderRepo repositories.OrderRepository
	cartRepo  repositories.CartRepository
	userRepo  repositories.UserRepository
	publisher EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, cartRepo repositories.CartRepository, userRepo repositories.UserRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

// CreateCashOrder commits the user's cart as a cash-on-delivery order. The
// payable amount is the cart's discounted total when couponApplied is set and
// a discount was applied, otherwise the cart total. Line items carry the
// prices snapshotted in the cart. Stock decrements are transactional and
// conditional: any line exceeding available stock aborts the whole order.
func (s *OrderService) CreateCashOrder(userID string, cod, couponApplied bool) (*models.Order, error) {
	if !cod {
		return nil, ErrCashOnly
	}

	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	finalAmount := cart.CartTotal
	if couponApplied && cart.TotalAfterDiscount != nil {
		finalAmount = *cart.TotalAfterDiscount
	}

	items := make([]models.OrderItem, 0, len(cart.Products))
	for _, line := range cart.Products {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Count:     line.Count,
			Color:     line.Color,
			Price:     line.Price,
		})
	}

	order := &models.Order{
		ID:       uuid.New().String(),
		Products: items,
		PaymentIntent: models.PaymentIntent{
			PaymentID: uuid.New().String(),
			Method:    "COD",
			Amount:    finalAmount,
			Status:    models.StatusCashOnDelivery,
			Created:   time.Now(),
			Currency:  "usd",
		},
		OrderStatus: models.StatusCashOnDelivery,
		OrderBy:     userID,
	}

	if err := s.orderRepo.CreateWithStockDecrement(order); err != nil {
		return nil, err
	}

	s.publishOrderCreated(order)
	return order, nil
}

// GetUserOrders retrieves all orders placed by the given user.
func (s *OrderService) GetUserOrders(userID string) ([]models.Order, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, err
	}
	return s.orderRepo.GetByUser(userID)
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// UpdateOrderStatus advances the order through its status lifecycle. The
// status must be a member of the fixed enumeration; the payment intent
// status is updated together with it.
func (s *OrderService) UpdateOrderStatus(id string, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%q: %w", status, ErrInvalidStatus)
	}
	return s.orderRepo.UpdateStatus(id, status)
}

// publishOrderCreated emits an order.created event. Failures are logged, not
// surfaced: the order is already committed.
func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.publisher == nil {
		log.Println("Event publisher is not initialized. Skipping order.created publication.")
		return
	}
	event := map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.OrderBy,
		"status":  order.OrderStatus,
		"amount":  order.PaymentIntent.Amount,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order.created event: %v", err)
		return
	}
	if err := s.publisher.Publish("orders", "order.created", body); err != nil {
		log.Printf("Warning: Failed to publish order.created event for order %s: %v", order.ID, err)
	}
}
