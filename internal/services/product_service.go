package services

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/Ham47Mani/sp-ecommerce-api/internal/models"
	"github.com/Ham47Mani/sp-ecommerce-api/internal/repositories"
)

// ProductService handles business logic related to the catalog, including
// the rating aggregate.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves products matching the typed listing query.
func (s *ProductService) GetAllProducts(query repositories.ProductQuery) ([]models.Product, error) {
	return s.repo.GetAll(query)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product, deriving the slug from the title.
func (s *ProductService) CreateProduct(product *models.Product) error {
	product.Slug = Slugify(product.Title)
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product, re-deriving the slug.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if product.Title != "" {
		product.Slug = Slugify(product.Title)
	}
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}

// RateProduct records the caller's star rating on a product. A prior rating
// by the same user is overwritten in place; the product's total rating is
// recomputed as the rounded mean over all ratings.
func (s *ProductService) RateProduct(userID, productID string, star int, comment string) (*models.Product, error) {
	if star < 1 || star > 5 {
		return nil, ErrInvalidStar
	}

	product, err := s.repo.UpsertRating(productID, models.Rating{
		PostedBy: userID,
		Star:     star,
		Comment:  comment,
	})
	if err != nil {
		return nil, err
	}

	total := averageRating(product.Ratings)
	if err := s.repo.SetTotalRating(productID, total); err != nil {
		return nil, fmt.Errorf("failed to persist rating aggregate: %w", err)
	}
	product.TotalRating = total
	return product, nil
}

// averageRating is the rounded integer mean of all stars; zero ratings
// yields zero.
func averageRating(ratings []models.Rating) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Star
	}
	return int(math.Round(float64(sum) / float64(len(ratings))))
}

// Slugify derives a URL-safe lowercase slug from a product title.
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
