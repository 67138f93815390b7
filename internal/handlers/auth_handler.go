package handlers

import (
	"log"

	"github.com/Ham47Mani/sp-ecommerce-api/internal/models"
	"github.com/Ham47Mani/sp-ecommerce-api/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Post("/admin-login", h.HandleAdminLogin)
}

// RegisterRequest represents the request body for registration. The role is
// never taken from the request.
type RegisterRequest struct {
	FirstName string `json:"firstname" validate:"required,min=2,max=100"`
	LastName  string `json:"lastname" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Mobile    string `json:"mobile" validate:"required,min=6,max=20"`
	Password  string `json:"password" validate:"required,min=6"`
	Address   string `json:"address"`
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Mobile:    req.Mobile,
		Password:  req.Password,
		Address:   req.Address,
		Role:      models.RoleUser,
	}

	if err := h.authService.RegisterUser(&user); err != nil {
		log.Printf("Error registering user: %v", err)
		return respondServiceError(c, err)
	}

	user.Password = ""
	return respondSuccess(c, fiber.StatusCreated, "User created successfully", user)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	return h.login(c, h.authService.LoginUser)
}

// HandleAdminLogin handles admin login; valid non-admin credentials are
// rejected.
func (h *AuthHandler) HandleAdminLogin(c *fiber.Ctx) error {
	return h.login(c, h.authService.LoginAdmin)
}

func (h *AuthHandler) login(c *fiber.Ctx, authenticate func(email, password string) (string, *models.User, error)) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	token, user, err := authenticate(req.Email, req.Password)
	if err != nil {
		log.Printf("Error during login for %s: %v", req.Email, err)
		return respondServiceError(c, err)
	}

	return respondSuccess(c, fiber.StatusOK, "Success login user", fiber.Map{
		"id":        user.ID,
		"firstname": user.FirstName,
		"lastname":  user.LastName,
		"email":     user.Email,
		"mobile":    user.Mobile,
		"token":     token,
	})
}
