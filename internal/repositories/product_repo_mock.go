package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Ham47Mani/sp-ecommerce-api/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns products matching the typed query.
func (r *MockProductRepository) GetAll(query ProductQuery) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if query.Category != "" && p.Category != query.Category {
			continue
		}
		if query.Brand != "" && p.Brand != query.Brand {
			continue
		}
		if query.MinPrice != nil && p.Price < *query.MinPrice {
			continue
		}
		if query.MaxPrice != nil && p.Price > *query.MaxPrice {
			continue
		}
		productList = append(productList, p)
	}

	asc := strings.EqualFold(query.SortDirection(), "ASC")
	sort.Slice(productList, func(i, j int) bool {
		less := productLess(productList[i], productList[j], query.SortColumn())
		if asc {
			return less
		}
		return !less
	})

	limit, offset := query.PageBounds()
	if offset >= len(productList) {
		return []models.Product{}, nil
	}
	end := offset + limit
	if end > len(productList) {
		end = len(productList)
	}
	return productList[offset:end], nil
}

func productLess(a, b models.Product, column string) bool {
	switch column {
	case "price":
		return a.Price < b.Price
	case "title":
		return a.Title < b.Title
	case "sold":
		return a.Sold < b.Sold
	case "total_rating":
		return a.TotalRating < b.TotalRating
	default:
		return a.CreatedAt.Before(b.CreatedAt)
	}
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return &product, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	for _, p := range r.products {
		if product.Slug != "" && p.Slug == product.Slug {
			return fmt.Errorf("product slug %s: %w", product.Slug, ErrDuplicate)
		}
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", product.ID, ErrNotFound)
	}
	product.Ratings = existing.Ratings
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	delete(r.products, id)
	return nil
}

// UpsertRating overwrites the rater's entry in place or appends a new one.
func (r *MockProductRepository) UpsertRating(productID string, rating models.Rating) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[productID]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", productID, ErrNotFound)
	}
	updated := false
	for i := range product.Ratings {
		if product.Ratings[i].PostedBy == rating.PostedBy {
			product.Ratings[i].Star = rating.Star
			product.Ratings[i].Comment = rating.Comment
			updated = true
			break
		}
	}
	if !updated {
		rating.ProductID = productID
		product.Ratings = append(product.Ratings, rating)
	}
	r.products[productID] = product
	return &product, nil
}

// SetTotalRating persists the recomputed rating aggregate.
func (r *MockProductRepository) SetTotalRating(productID string, total int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[productID]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", productID, ErrNotFound)
	}
	product.TotalRating = total
	r.products[productID] = product
	return nil
}

// decrementStock applies a conditional stock decrement for one line item.
// Used by MockOrderRepository to mirror the transactional commit.
func (r *MockProductRepository) decrementStock(productID string, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[productID]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", productID, ErrNotFound)
	}
	if product.Quantity < count {
		return fmt.Errorf("product %s (requested %d, available %d): %w",
			productID, count, product.Quantity, ErrInsufficientStock)
	}
	product.Quantity -= count
	product.Sold += count
	r.products[productID] = product
	return nil
}

// restoreStock undoes a decrement when a mock order commit aborts midway.
func (r *MockProductRepository) restoreStock(productID string, count int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[productID]
	if !ok {
		return
	}
	product.Quantity += count
	product.Sold -= count
	r.products[productID] = product
}
