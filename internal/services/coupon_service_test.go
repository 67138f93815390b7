package services_test

import (
	"testing"
	"time"

	"github.com/Ham47Mani/sp-ecommerce-api/internal/models"
	"github.com/Ham47Mani/sp-ecommerce-api/internal/repositories"
	"github.com/Ham47Mani/sp-ecommerce-api/internal/services"

	"github.com/stretchr/testify/assert"
)

func newCouponFixture(t *testing.T, cartTotal float64) (*services.CouponService, *repositories.MockCouponRepository, *repositories.MockCartRepository) {
	t.Helper()
	couponRepo := repositories.NewMockCouponRepository()
	cartRepo := repositories.NewMockCartRepository()
	assert.NoError(t, cartRepo.Create(&models.Cart{
		Products:  []models.CartItem{{ProductID: "p1", Count: 1, Price: cartTotal}},
		CartTotal: cartTotal,
		OrderBy:   "user-1",
	}))
	return services.NewCouponService(couponRepo, cartRepo), couponRepo, cartRepo
}

func TestCouponService_CreateCoupon_NormalizesName(t *testing.T) {
	service, couponRepo, _ := newCouponFixture(t, 100)

	coupon := &models.Coupon{Name: "  summer24 ", Expiry: time.Now().Add(24 * time.Hour), Discount: 10}
	assert.NoError(t, service.CreateCoupon(coupon))
	assert.Equal(t, "SUMMER24", coupon.Name)

	stored, err := couponRepo.GetByName("SUMMER24")
	assert.NoError(t, err)
	assert.Equal(t, coupon.ID, stored.ID)

	// Duplicate name (any casing) is rejected
	err = service.CreateCoupon(&models.Coupon{Name: "Summer24", Expiry: time.Now().Add(time.Hour), Discount: 5})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
}

func TestCouponService_ApplyCoupon(t *testing.T) {
	service, couponRepo, _ := newCouponFixture(t, 100.00)
	assert.NoError(t, couponRepo.Create(&models.Coupon{
		Name: "TWENTY", Expiry: time.Now().Add(time.Hour), Discount: 20,
	}))

	// cartTotal=100, discount=20 => totalAfterDiscount=80.00
	cart, err := service.ApplyCoupon("user-1", "twenty")
	assert.NoError(t, err)
	assert.NotNil(t, cart.TotalAfterDiscount)
	assert.Equal(t, 80.00, *cart.TotalAfterDiscount)

	// Reapplying recomputes the same value from the current cart total
	cart, err = service.ApplyCoupon("user-1", "TWENTY")
	assert.NoError(t, err)
	assert.Equal(t, 80.00, *cart.TotalAfterDiscount)
}

func TestCouponService_ApplyCoupon_RoundsToTwoDecimals(t *testing.T) {
	service, couponRepo, _ := newCouponFixture(t, 99.99)
	assert.NoError(t, couponRepo.Create(&models.Coupon{
		Name: "THIRD", Expiry: time.Now().Add(time.Hour), Discount: 33,
	}))

	// 99.99 * 0.67 = 66.9933 -> 66.99
	cart, err := service.ApplyCoupon("user-1", "THIRD")
	assert.NoError(t, err)
	assert.Equal(t, 66.99, *cart.TotalAfterDiscount)
}

func TestCouponService_ApplyCoupon_Expired(t *testing.T) {
	service, couponRepo, cartRepo := newCouponFixture(t, 100)
	assert.NoError(t, couponRepo.Create(&models.Coupon{
		Name: "OLD", Expiry: time.Now().Add(-time.Minute), Discount: 20,
	}))

	_, err := service.ApplyCoupon("user-1", "OLD")
	assert.ErrorIs(t, err, services.ErrCouponExpired)

	// Cart is untouched
	cart, err := cartRepo.GetByUser("user-1")
	assert.NoError(t, err)
	assert.Nil(t, cart.TotalAfterDiscount)
}

func TestCouponService_ApplyCoupon_UnknownCoupon(t *testing.T) {
	service, _, _ := newCouponFixture(t, 100)

	_, err := service.ApplyCoupon("user-1", "NOPE")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCouponService_ApplyCoupon_NoCart(t *testing.T) {
	service, couponRepo, _ := newCouponFixture(t, 100)
	assert.NoError(t, couponRepo.Create(&models.Coupon{
		Name: "TWENTY", Expiry: time.Now().Add(time.Hour), Discount: 20,
	}))

	_, err := service.ApplyCoupon("user-without-cart", "TWENTY")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
