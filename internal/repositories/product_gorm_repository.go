package repositories

import (
	"errors"
	"fmt"

	"github.com/Ham47Mani/sp-ecommerce-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves products matching the typed query.
func (r *GORMProductRepository) GetAll(query ProductQuery) ([]models.Product, error) {
	tx := r.db.Model(&models.Product{})
	if query.Category != "" {
		tx = tx.Where("category = ?", query.Category)
	}
	if query.Brand != "" {
		tx = tx.Where("brand = ?", query.Brand)
	}
	if query.MinPrice != nil {
		tx = tx.Where("price >= ?", *query.MinPrice)
	}
	if query.MaxPrice != nil {
		tx = tx.Where("price <= ?", *query.MaxPrice)
	}
	limit, offset := query.PageBounds()
	tx = tx.Order(query.SortColumn() + " " + query.SortDirection()).Limit(limit).Offset(offset)

	var products []models.Product
	if err := tx.Preload("Ratings").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Ratings").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("product slug %s: %w", product.Slug, ErrDuplicate)
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product in the database.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Omit("Ratings").Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", product.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// UpsertRating overwrites the rater's existing entry in place or appends a
// new one, then returns the product with ratings loaded.
func (r *GORMProductRepository) UpsertRating(productID string, rating models.Rating) (*models.Product, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Select("id").First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product with ID %s: %w", productID, ErrNotFound)
			}
			return err
		}

		var existing models.Rating
		err := tx.First(&existing, "product_id = ? AND posted_by = ?", productID, rating.PostedBy).Error
		switch {
		case err == nil:
			return tx.Model(&existing).
				Updates(map[string]interface{}{"star": rating.Star, "comment": rating.Comment}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			rating.ProductID = productID
			return tx.Create(&rating).Error
		default:
			return err
		}
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to upsert rating for product %s: %w", productID, err)
	}
	return r.GetByID(productID)
}

// SetTotalRating persists the recomputed rating aggregate on the product.
func (r *GORMProductRepository) SetTotalRating(productID string, total int) error {
	res := r.db.Model(&models.Product{}).Where("id = ?", productID).Update("total_rating", total)
	if res.Error != nil {
		return fmt.Errorf("failed to set total rating for product %s: %w", productID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", productID, ErrNotFound)
	}
	return nil
}
