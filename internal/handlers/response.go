package handlers

import (
	"errors"
	"fmt"

	"github.com/Ham47Mani/sp-ecommerce-api/internal/repositories"
	"github.com/Ham47Mani/sp-ecommerce-api/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Response is the uniform envelope returned by every endpoint. Data is always
// an array, even for single results.
type Response struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    []interface{} `json:"data"`
}

func respondSuccess(c *fiber.Ctx, status int, message string, data ...interface{}) error {
	if data == nil {
		data = []interface{}{}
	}
	return c.Status(status).JSON(Response{Success: true, Message: message, Data: data})
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Response{Success: false, Message: message, Data: []interface{}{}})
}

// respondServiceError maps domain errors onto the fixed status taxonomy:
// missing entities are 404, rule and input violations are 400, auth
// failures are 401, anything unexpected is a 500.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return respondError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, repositories.ErrDuplicate),
		errors.Is(err, repositories.ErrInsufficientStock),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrCouponExpired),
		errors.Is(err, services.ErrCashOnly),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidStar):
		return respondError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrNotAdmin):
		return respondError(c, fiber.StatusUnauthorized, err.Error())
	default:
		return respondError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

// respondValidationError flattens validator errors into one message per field.
func respondValidationError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]interface{}, 0, len(validationErrors))
		for _, e := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag()))
		}
		return c.Status(fiber.StatusBadRequest).JSON(Response{
			Success: false,
			Message: "Validation failed",
			Data:    messages,
		})
	}
	return respondError(c, fiber.StatusBadRequest, err.Error())
}

// authUserID returns the user id stored by the auth middleware.
func authUserID(c *fiber.Ctx) string {
	if id, ok := c.Locals("user_id").(string); ok {
		return id
	}
	return ""
}
