package services

import (
	"strings"
	"time"

	"github.com/Ham47Mani/sp-ecommerce-api/internal/models"
	"github.com/Ham47Mani/sp-ecommerce-api/internal/repositories"

	"github.com/shopspring/decimal"
)

// CouponService handles coupon administration and coupon application to a
// user's cart.
type CouponService struct {
	couponRepo repositories.CouponRepository
	cartRepo   repositories.CartRepository
	now        func() time.Time
}

// NewCouponService creates a new CouponService.
func NewCouponService(couponRepo repositories.CouponRepository, cartRepo repositories.CartRepository) *CouponService {
	return &CouponService{
		couponRepo: couponRepo,
		cartRepo:   cartRepo,
		now:        time.Now,
	}
}

// GetAllCoupons retrieves all coupons.
func (s *CouponService) GetAllCoupons() ([]models.Coupon, error) {
	return s.couponRepo.GetAll()
}

// CreateCoupon creates a coupon; names are normalized to upper case.
func (s *CouponService) CreateCoupon(coupon *models.Coupon) error {
	coupon.Name = strings.ToUpper(strings.TrimSpace(coupon.Name))
	return s.couponRepo.Create(coupon)
}

// UpdateCoupon updates an existing coupon, keeping the name normalized.
func (s *CouponService) UpdateCoupon(coupon *models.Coupon) error {
	coupon.Name = strings.ToUpper(strings.TrimSpace(coupon.Name))
	return s.couponRepo.Update(coupon)
}

// DeleteCoupon deletes a coupon by its ID.
func (s *CouponService) DeleteCoupon(id string) error {
	return s.couponRepo.Delete(id)
}

// ApplyCoupon validates the named coupon against its expiry and, when valid,
// persists the discounted total onto the user's cart. Reapplying the same
// coupon recomputes the same value from the current cart total.
func (s *CouponService) ApplyCoupon(userID, couponName string) (*models.Cart, error) {
	coupon, err := s.couponRepo.GetByName(strings.ToUpper(strings.TrimSpace(couponName)))
	if err != nil {
		return nil, err
	}
	if coupon.Expired(s.now()) {
		return nil, ErrCouponExpired
	}

	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	discounted := discountedTotal(cart.CartTotal, coupon.Discount)
	return s.cartRepo.SetTotalAfterDiscount(userID, discounted)
}

// discountedTotal computes total - total*discount/100, rounded to 2 decimal
// places with decimal arithmetic so float drift never leaks into the stored
// amount.
func discountedTotal(cartTotal, discount float64) float64 {
	total := decimal.NewFromFloat(cartTotal)
	rate := decimal.NewFromFloat(discount).Div(decimal.NewFromInt(100))
	result, _ := total.Sub(total.Mul(rate)).Round(2).Float64()
	return result
}
