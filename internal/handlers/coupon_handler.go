package handlers

import (
	"log"

	"github.com/Ham47Mani/sp-ecommerce-api/internal/models"
	"github.com/Ham47Mani/sp-ecommerce-api/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CouponHandler handles HTTP requests for coupon administration and coupon
// application.
type CouponHandler struct {
	service  *services.CouponService
	validate *validator.Validate
}

// NewCouponHandler creates a new CouponHandler.
func NewCouponHandler(service *services.CouponService) *CouponHandler {
	return &CouponHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers coupon routes: application for authenticated
// users, CRUD for admins.
func (h *CouponHandler) RegisterRoutes(user, admin fiber.Router) {
	user.Post("/apply-coupon", h.HandleApplyCoupon)
	admin.Get("/coupons", h.HandleGetCoupons)
	admin.Post("/coupons", h.HandleCreateCoupon)
	admin.Put("/coupons/:id", h.HandleUpdateCoupon)
	admin.Delete("/coupons/:id", h.HandleDeleteCoupon)
}

// ApplyCouponRequest represents the request body for applying a coupon.
type ApplyCouponRequest struct {
	Coupon string `json:"coupon" validate:"required"`
}

// HandleApplyCoupon applies the named coupon to the caller's cart and
// returns the cart with its discounted total.
func (h *CouponHandler) HandleApplyCoupon(c *fiber.Ctx) error {
	var req ApplyCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	cart, err := h.service.ApplyCoupon(authUserID(c), req.Coupon)
	if err != nil {
		log.Printf("Error applying coupon %s: %v", req.Coupon, err)
		return respondServiceError(c, err)
	}
	return respondSuccess(c, fiber.StatusOK, "Cart after applying coupon", cart)
}

// HandleGetCoupons lists all coupons (admin).
func (h *CouponHandler) HandleGetCoupons(c *fiber.Ctx) error {
	coupons, err := h.service.GetAllCoupons()
	if err != nil {
		log.Printf("Error listing coupons: %v", err)
		return respondServiceError(c, err)
	}
	data := make([]interface{}, 0, len(coupons))
	for _, coupon := range coupons {
		data = append(data, coupon)
	}
	return respondSuccess(c, fiber.StatusOK, "All coupons", data...)
}

// HandleCreateCoupon creates a coupon (admin).
func (h *CouponHandler) HandleCreateCoupon(c *fiber.Ctx) error {
	var coupon models.Coupon
	if err := c.BodyParser(&coupon); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(coupon); err != nil {
		return respondValidationError(c, err)
	}
	if err := h.service.CreateCoupon(&coupon); err != nil {
		log.Printf("Error creating coupon: %v", err)
		return respondServiceError(c, err)
	}
	return respondSuccess(c, fiber.StatusCreated, "Coupon created successfully", coupon)
}

// HandleUpdateCoupon updates a coupon (admin).
func (h *CouponHandler) HandleUpdateCoupon(c *fiber.Ctx) error {
	var coupon models.Coupon
	if err := c.BodyParser(&coupon); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	coupon.ID = c.Params("id")
	if err := h.validate.Struct(coupon); err != nil {
		return respondValidationError(c, err)
	}
	if err := h.service.UpdateCoupon(&coupon); err != nil {
		log.Printf("Error updating coupon %s: %v", coupon.ID, err)
		return respondServiceError(c, err)
	}
	return respondSuccess(c, fiber.StatusOK, "Coupon updated", coupon)
}

// HandleDeleteCoupon deletes a coupon (admin).
func (h *CouponHandler) HandleDeleteCoupon(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteCoupon(id); err != nil {
		log.Printf("Error deleting coupon %s: %v", id, err)
		return respondServiceError(c, err)
	}
	return respondSuccess(c, fiber.StatusOK, "Coupon deleted")
}
