package handlers

import (
	"log"

	"github.com/Ham47Mani/sp-ecommerce-api/internal/models"
	"github.com/Ham47Mani/sp-ecommerce-api/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers order routes: checkout and own-order listing for
// authenticated users, cross-user listing and status updates for admins.
func (h *OrderHandler) RegisterRoutes(user, admin fiber.Router) {
	user.Post("/cash-order", h.HandleCreateCashOrder)
	user.Get("/orders", h.HandleGetOwnOrders)
	admin.Get("/all-orders", h.HandleGetAllOrders)
	admin.Get("/orders/:id", h.HandleGetUserOrders)
	admin.Put("/orders/:id", h.HandleUpdateOrderStatus)
}

// CashOrderRequest represents the request body for committing an order.
type CashOrderRequest struct {
	COD           bool `json:"COD"`
	CouponApplied bool `json:"couponApplied"`
}

// HandleCreateCashOrder commits the caller's cart as a cash-on-delivery
// order.
func (h *OrderHandler) HandleCreateCashOrder(c *fiber.Ctx) error {
	var req CashOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	order, err := h.service.CreateCashOrder(authUserID(c), req.COD, req.CouponApplied)
	if err != nil {
		log.Printf("Error creating cash order: %v", err)
		return respondServiceError(c, err)
	}
	return respondSuccess(c, fiber.StatusCreated, "Order created successfully", order)
}

// HandleGetOwnOrders lists the caller's orders.
func (h *OrderHandler) HandleGetOwnOrders(c *fiber.Ctx) error {
	return h.listOrders(c, authUserID(c))
}

// HandleGetAllOrders lists every order across all users (admin).
func (h *OrderHandler) HandleGetAllOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error listing all orders: %v", err)
		return respondServiceError(c, err)
	}
	data := make([]interface{}, 0, len(orders))
	for _, order := range orders {
		data = append(data, order)
	}
	return respondSuccess(c, fiber.StatusOK, "All orders", data...)
}

// HandleGetUserOrders lists the orders of the user named in the path (admin).
func (h *OrderHandler) HandleGetUserOrders(c *fiber.Ctx) error {
	return h.listOrders(c, c.Params("id"))
}

func (h *OrderHandler) listOrders(c *fiber.Ctx, userID string) error {
	orders, err := h.service.GetUserOrders(userID)
	if err != nil {
		log.Printf("Error listing orders for user %s: %v", userID, err)
		return respondServiceError(c, err)
	}
	data := make([]interface{}, 0, len(orders))
	for _, order := range orders {
		data = append(data, order)
	}
	return respondSuccess(c, fiber.StatusOK, "User orders", data...)
}

// OrderStatusRequest represents the request body for a status update.
type OrderStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// HandleUpdateOrderStatus advances an order through its status lifecycle
// (admin). Statuses outside the enumeration are rejected.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var req OrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Status == "" {
		return respondError(c, fiber.StatusBadRequest, "'status' field is required")
	}

	order, err := h.service.UpdateOrderStatus(c.Params("id"), req.Status)
	if err != nil {
		log.Printf("Error updating order status: %v", err)
		return respondServiceError(c, err)
	}
	return respondSuccess(c, fiber.StatusOK, "Order status changed", order)
}
