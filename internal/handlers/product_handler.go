package handlers

import (
	"log"
	"strconv"

	"github.com/Ham47Mani/sp-ecommerce-api/internal/models"
	"github.com/Ham47Mani/sp-ecommerce-api/internal/repositories"
	"github.com/Ham47Mani/sp-ecommerce-api/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the catalog and ratings.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers catalog routes. Reads are public, ratings need an
// authenticated user, and catalog mutation is admin-only.
func (h *ProductHandler) RegisterRoutes(public, user, admin fiber.Router) {
	public.Get("/products", h.HandleGetProducts)
	public.Get("/products/:id", h.HandleGetProductByID)
	user.Put("/rating", h.HandleRateProduct)
	admin.Post("/products", h.HandleCreateProduct)
	admin.Put("/products/:id", h.HandleUpdateProduct)
	admin.Delete("/products/:id", h.HandleDeleteProduct)
}

// HandleGetProducts lists products filtered by the recognized query params:
// category, brand, minPrice, maxPrice, sort, order, page, limit.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	query := repositories.ProductQuery{
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
		SortBy:   c.Query("sort"),
		Order:    repositories.SortOrder(c.Query("order")),
		Page:     c.QueryInt("page"),
		Limit:    c.QueryInt("limit"),
	}
	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return respondError(c, fiber.StatusBadRequest, "minPrice must be a number")
		}
		query.MinPrice = &v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return respondError(c, fiber.StatusBadRequest, "maxPrice must be a number")
		}
		query.MaxPrice = &v
	}

	products, err := h.service.GetAllProducts(query)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return respondServiceError(c, err)
	}
	data := make([]interface{}, 0, len(products))
	for _, p := range products {
		data = append(data, p)
	}
	return respondSuccess(c, fiber.StatusOK, "All products", data...)
}

// HandleGetProductByID retrieves a single product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		log.Printf("Error getting product: %v", err)
		return respondServiceError(c, err)
	}
	return respondSuccess(c, fiber.StatusOK, "Product info", product)
}

// HandleCreateProduct creates a product (admin).
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(product); err != nil {
		return respondValidationError(c, err)
	}
	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return respondServiceError(c, err)
	}
	return respondSuccess(c, fiber.StatusCreated, "Product created successfully", product)
}

// HandleUpdateProduct updates a product (admin).
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	product.ID = c.Params("id")
	if err := h.validate.Struct(product); err != nil {
		return respondValidationError(c, err)
	}
	if err := h.service.UpdateProduct(&product); err != nil {
		log.Printf("Error updating product %s: %v", product.ID, err)
		return respondServiceError(c, err)
	}
	return respondSuccess(c, fiber.StatusOK, "Product updated", product)
}

// HandleDeleteProduct deletes a product (admin).
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteProduct(id); err != nil {
		log.Printf("Error deleting product %s: %v", id, err)
		return respondServiceError(c, err)
	}
	return respondSuccess(c, fiber.StatusOK, "Product deleted")
}

// RatingRequest represents the request body for rating a product.
type RatingRequest struct {
	ProdID  string `json:"prodId" validate:"required"`
	Star    int    `json:"star" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=500"`
}

// HandleRateProduct records the caller's star rating on a product and
// returns the product with its recomputed rating aggregate.
func (h *ProductHandler) HandleRateProduct(c *fiber.Ctx) error {
	var req RatingRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	product, err := h.service.RateProduct(authUserID(c), req.ProdID, req.Star, req.Comment)
	if err != nil {
		log.Printf("Error rating product %s: %v", req.ProdID, err)
		return respondServiceError(c, err)
	}
	return respondSuccess(c, fiber.StatusOK, "Product rated", product)
}
