package handlers

import (
	"log"

	"github.com/Ham47Mani/sp-ecommerce-api/internal/models"
	"github.com/Ham47Mani/sp-ecommerce-api/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the per-user shopping cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers cart routes; all require an authenticated user.
// POST keeps the legacy toggle behavior, PUT is an explicit replace.
func (h *CartHandler) RegisterRoutes(user fiber.Router) {
	user.Post("/cart", h.HandleToggleCart)
	user.Put("/cart", h.HandleReplaceCart)
	user.Get("/cart", h.HandleGetCart)
	user.Delete("/empty-cart", h.HandleEmptyCart)
}

// CartRequest represents the request body for building a cart.
type CartRequest struct {
	Cart []models.CartItem `json:"cart" validate:"required,min=1,dive"`
}

// HandleToggleCart creates a cart when the user has none, or deletes the
// existing cart and returns it. The second call clears regardless of the
// item list sent.
func (h *CartHandler) HandleToggleCart(c *fiber.Ctx) error {
	req, errResp := h.parseCart(c)
	if req == nil {
		return errResp
	}
	cart, deleted, err := h.service.ToggleCart(authUserID(c), req.Cart)
	if err != nil {
		log.Printf("Error toggling cart: %v", err)
		return respondServiceError(c, err)
	}
	if deleted {
		return respondSuccess(c, fiber.StatusOK, "Cart deleted", cart)
	}
	return respondSuccess(c, fiber.StatusCreated, "Cart created", cart)
}

// HandleReplaceCart builds a fresh cart from the request, replacing any
// existing one.
func (h *CartHandler) HandleReplaceCart(c *fiber.Ctx) error {
	req, errResp := h.parseCart(c)
	if req == nil {
		return errResp
	}
	cart, err := h.service.ReplaceCart(authUserID(c), req.Cart)
	if err != nil {
		log.Printf("Error replacing cart: %v", err)
		return respondServiceError(c, err)
	}
	return respondSuccess(c, fiber.StatusOK, "Cart replaced", cart)
}

// HandleGetCart returns the user's current cart.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart, err := h.service.GetCart(authUserID(c))
	if err != nil {
		log.Printf("Error getting cart: %v", err)
		return respondServiceError(c, err)
	}
	return respondSuccess(c, fiber.StatusOK, "User cart", cart)
}

// HandleEmptyCart deletes the user's cart.
func (h *CartHandler) HandleEmptyCart(c *fiber.Ctx) error {
	cart, err := h.service.ClearCart(authUserID(c))
	if err != nil {
		log.Printf("Error emptying cart: %v", err)
		return respondServiceError(c, err)
	}
	return respondSuccess(c, fiber.StatusOK, "Cart is empty now", cart)
}

// parseCart parses and validates the cart body. On failure it writes the
// error response and returns a nil request.
func (h *CartHandler) parseCart(c *fiber.Ctx) (*CartRequest, error) {
	var req CartRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, respondError(c, fiber.StatusBadRequest, "Cart is required and must be an array")
	}
	if err := h.validate.Struct(req); err != nil {
		return nil, respondValidationError(c, err)
	}
	return &req, nil
}
