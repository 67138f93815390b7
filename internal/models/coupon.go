package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon is an admin-issued named discount. Names are stored upper-cased and
// are unique. A coupon past its expiry can still be looked up but is rejected
// when applied to a cart.
type Coupon struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string    `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Expiry     time.Time `json:"expiry" validate:"required"`
	Discount   float64   `json:"discount" validate:"required,gt=0"`
	gorm.Model           // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Expired reports whether the coupon can no longer be applied.
func (c *Coupon) Expired(now time.Time) bool {
	return now.After(c.Expiry)
}
