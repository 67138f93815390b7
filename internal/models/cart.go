package models

import "gorm.io/gorm"

// CartItem is one line of a cart. Price is the unit price resolved from the
// catalog when the cart was built, never a client-supplied value.
type CartItem struct {
	ID        uint    `json:"-" gorm:"primaryKey"`
	CartID    string  `json:"-" gorm:"index;type:varchar(36)"`
	ProductID string  `json:"productID" gorm:"type:varchar(36)" validate:"required"`
	Count     int     `json:"count" validate:"required,gt=0"`
	Color     string  `json:"color,omitempty" gorm:"type:varchar(100)"`
	Price     float64 `json:"price"`
}

// Cart is the per-user staging area for a purchase. The unique index on
// OrderBy enforces at most one live cart per user at the storage layer.
type Cart struct {
	ID                 string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Products           []CartItem `json:"products" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CartTotal          float64    `json:"cartTotal"`
	TotalAfterDiscount *float64   `json:"totalAfterDiscount,omitempty"`
	OrderBy            string     `json:"orderBy" gorm:"uniqueIndex;type:varchar(36)"`
	gorm.Model                    // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
