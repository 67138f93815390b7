package repositories

import (
	"github.com/Ham47Mani/sp-ecommerce-api/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(query ProductQuery) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	// UpsertRating inserts the rating or, when the rater already rated this
	// product, overwrites that entry's star and comment in place. It returns
	// the product with all ratings loaded.
	UpsertRating(productID string, rating models.Rating) (*models.Product, error)
	// SetTotalRating persists the recomputed rating aggregate.
	SetTotalRating(productID string, total int) error
}
