package services

import (
	"errors"
	"fmt"

	"github.com/Ham47Mani/sp-ecommerce-api/internal/models"
	"github.com/Ham47Mani/sp-ecommerce-api/internal/repositories"
)

// CartService handles business logic for the per-user shopping cart. Unit
// prices are always resolved from the catalog at build time, never taken
// from the caller.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository, userRepo repositories.UserRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// ToggleCart keeps the legacy single-endpoint semantics: when the user
// already has a cart it is deleted and returned (the requested items are
// ignored); otherwise a new cart is built from the requested items. The
// second return value reports whether the cart was deleted.
func (s *CartService) ToggleCart(userID string, items []models.CartItem) (*models.Cart, bool, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, false, err
	}

	switch _, err := s.cartRepo.GetByUser(userID); {
	case err == nil:
		deleted, err := s.cartRepo.DeleteByUser(userID)
		if err != nil {
			return nil, false, err
		}
		return deleted, true, nil
	case !errors.Is(err, repositories.ErrNotFound):
		// Only a confirmed missing cart falls through to creation.
		return nil, false, err
	}

	cart, err := s.buildCart(userID, items)
	if err != nil {
		return nil, false, err
	}
	if err := s.cartRepo.Create(cart); err != nil {
		return nil, false, err
	}
	return cart, false, nil
}

// ReplaceCart builds a fresh cart from the requested items and swaps it in
// for whatever the user had before.
func (s *CartService) ReplaceCart(userID string, items []models.CartItem) (*models.Cart, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, err
	}
	cart, err := s.buildCart(userID, items)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.Replace(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// GetCart returns the user's current cart.
func (s *CartService) GetCart(userID string) (*models.Cart, error) {
	return s.cartRepo.GetByUser(userID)
}

// ClearCart deletes the user's cart and returns the deleted snapshot.
func (s *CartService) ClearCart(userID string) (*models.Cart, error) {
	return s.cartRepo.DeleteByUser(userID)
}

// buildCart resolves every requested item against the catalog, snapshots the
// current unit prices and accumulates the total. Any missing product aborts
// the whole build; nothing partial is ever returned.
func (s *CartService) buildCart(userID string, items []models.CartItem) (*models.Cart, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var (
		lines     []models.CartItem
		cartTotal float64
	)
	for _, item := range items {
		if item.Count <= 0 {
			return nil, fmt.Errorf("product %s: %w", item.ProductID, ErrEmptyCart)
		}
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, models.CartItem{
			ProductID: product.ID,
			Count:     item.Count,
			Color:     item.Color,
			Price:     product.Price,
		})
		cartTotal += product.Price * float64(item.Count)
	}

	return &models.Cart{
		Products:  lines,
		CartTotal: cartTotal,
		OrderBy:   userID,
	}, nil
}
