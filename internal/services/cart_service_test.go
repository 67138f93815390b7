package services_test

import (
	"errors"
	"testing"

	"github.com/Ham47Mani/sp-ecommerce-api/internal/models"
	"github.com/Ham47Mani/sp-ecommerce-api/internal/repositories"
	"github.com/Ham47Mani/sp-ecommerce-api/internal/services"

	"github.com/stretchr/testify/assert"
)

func newCartFixture(t *testing.T) (*services.CartService, *repositories.MockCartRepository, *repositories.MockProductRepository, *MockUserRepository) {
	t.Helper()
	cartRepo := repositories.NewMockCartRepository()
	productRepo := repositories.NewMockProductRepository()
	userRepo := new(MockUserRepository)

	seed := []models.Product{
		{ID: "p1", Title: "Laptop", Slug: "laptop", Price: 1200, Quantity: 10},
		{ID: "p2", Title: "Mouse", Slug: "mouse", Price: 25.50, Quantity: 50},
	}
	for i := range seed {
		assert.NoError(t, productRepo.Create(&seed[i]))
	}

	return services.NewCartService(cartRepo, productRepo, userRepo), cartRepo, productRepo, userRepo
}

func TestCartService_ToggleCart_CreatesSnapshot(t *testing.T) {
	service, _, _, userRepo := newCartFixture(t)
	userRepo.On("GetByID", "user-1").Return(&models.User{ID: "user-1"}, nil)

	// Client-supplied prices are ignored; catalog prices are snapshotted.
	cart, deleted, err := service.ToggleCart("user-1", []models.CartItem{
		{ProductID: "p1", Count: 2, Price: 1.0},
		{ProductID: "p2", Count: 3, Color: "black", Price: 1.0},
	})
	assert.NoError(t, err)
	assert.False(t, deleted)
	assert.Len(t, cart.Products, 2)
	assert.Equal(t, 1200.0, cart.Products[0].Price)
	assert.Equal(t, 25.50, cart.Products[1].Price)
	assert.Equal(t, "black", cart.Products[1].Color)
	assert.InDelta(t, 2*1200.0+3*25.50, cart.CartTotal, 1e-9)
	assert.Nil(t, cart.TotalAfterDiscount)
}

func TestCartService_ToggleCart_SecondCallDeletes(t *testing.T) {
	service, _, _, userRepo := newCartFixture(t)
	userRepo.On("GetByID", "user-1").Return(&models.User{ID: "user-1"}, nil)

	created, deleted, err := service.ToggleCart("user-1", []models.CartItem{{ProductID: "p1", Count: 1}})
	assert.NoError(t, err)
	assert.False(t, deleted)

	// Second call deletes, whatever items it carries.
	returned, deleted, err := service.ToggleCart("user-1", []models.CartItem{{ProductID: "p2", Count: 7}})
	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, created.ID, returned.ID)

	_, err = service.GetCart("user-1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCartService_ToggleCart_MissingProductAborts(t *testing.T) {
	service, cartRepo, _, userRepo := newCartFixture(t)
	userRepo.On("GetByID", "user-1").Return(&models.User{ID: "user-1"}, nil)

	_, _, err := service.ToggleCart("user-1", []models.CartItem{
		{ProductID: "p1", Count: 1},
		{ProductID: "missing", Count: 1},
	})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// No partial cart was persisted.
	_, err = cartRepo.GetByUser("user-1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

// failingCartRepo wraps the in-memory cart repository and injects an
// infrastructure error on reads.
type failingCartRepo struct {
	*repositories.MockCartRepository
	getErr error
}

func (f *failingCartRepo) GetByUser(userID string) (*models.Cart, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.MockCartRepository.GetByUser(userID)
}

func TestCartService_ToggleCart_RepoErrorPropagates(t *testing.T) {
	_, _, productRepo, userRepo := newCartFixture(t)
	userRepo.On("GetByID", "user-1").Return(&models.User{ID: "user-1"}, nil)

	repoErr := errors.New("connection reset")
	cartRepo := &failingCartRepo{MockCartRepository: repositories.NewMockCartRepository(), getErr: repoErr}
	service := services.NewCartService(cartRepo, productRepo, userRepo)

	// A read failure must surface, not be mistaken for "no cart yet".
	_, _, err := service.ToggleCart("user-1", []models.CartItem{{ProductID: "p1", Count: 1}})
	assert.ErrorIs(t, err, repoErr)

	// Nothing was created behind the failing read.
	cartRepo.getErr = nil
	_, err = cartRepo.GetByUser("user-1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCartService_ToggleCart_UnknownUser(t *testing.T) {
	service, _, _, userRepo := newCartFixture(t)
	userRepo.On("GetByID", "ghost").Return(nil, repositories.ErrNotFound)

	_, _, err := service.ToggleCart("ghost", []models.CartItem{{ProductID: "p1", Count: 1}})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCartService_ToggleCart_EmptyItems(t *testing.T) {
	service, _, _, userRepo := newCartFixture(t)
	userRepo.On("GetByID", "user-1").Return(&models.User{ID: "user-1"}, nil)

	_, _, err := service.ToggleCart("user-1", nil)
	assert.ErrorIs(t, err, services.ErrEmptyCart)

	_, _, err = service.ToggleCart("user-1", []models.CartItem{{ProductID: "p1", Count: 0}})
	assert.ErrorIs(t, err, services.ErrEmptyCart)
}

func TestCartService_ReplaceCart(t *testing.T) {
	service, _, _, userRepo := newCartFixture(t)
	userRepo.On("GetByID", "user-1").Return(&models.User{ID: "user-1"}, nil)

	_, err := service.ReplaceCart("user-1", []models.CartItem{{ProductID: "p1", Count: 1}})
	assert.NoError(t, err)

	// Replace swaps contents instead of toggling away.
	cart, err := service.ReplaceCart("user-1", []models.CartItem{{ProductID: "p2", Count: 4}})
	assert.NoError(t, err)
	assert.Len(t, cart.Products, 1)
	assert.Equal(t, "p2", cart.Products[0].ProductID)
	assert.InDelta(t, 4*25.50, cart.CartTotal, 1e-9)

	stored, err := service.GetCart("user-1")
	assert.NoError(t, err)
	assert.Equal(t, cart.ID, stored.ID)
}

func TestCartService_ClearCart(t *testing.T) {
	service, _, _, userRepo := newCartFixture(t)
	userRepo.On("GetByID", "user-1").Return(&models.User{ID: "user-1"}, nil)

	created, _, err := service.ToggleCart("user-1", []models.CartItem{{ProductID: "p1", Count: 1}})
	assert.NoError(t, err)

	cleared, err := service.ClearCart("user-1")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, cleared.ID)

	_, err = service.ClearCart("user-1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
