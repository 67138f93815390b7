package models

import "gorm.io/gorm"

// Product represents a catalog entry. Quantity is the available stock and
// must never go negative; Sold only ever increases.
type Product struct {
	ID          string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string   `json:"title" gorm:"type:varchar(200)" validate:"required,min=3,max=200"`
	Slug        string   `json:"slug" gorm:"uniqueIndex;type:varchar(200)"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Category    string   `json:"category" gorm:"type:varchar(100)"`
	Brand       string   `json:"brand" gorm:"type:varchar(100)"`
	Quantity    int      `json:"quantity" validate:"gte=0"`
	Sold        int      `json:"sold" gorm:"default:0"`
	Color       string   `json:"color,omitempty" gorm:"type:varchar(100)"`
	Tags        string   `json:"tags,omitempty" gorm:"type:varchar(255)"`
	Ratings     []Rating `json:"ratings" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	TotalRating int      `json:"totalRating" gorm:"default:0"`
	gorm.Model           // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Rating is a single star review left by a user on a product. A user has at
// most one rating per product, enforced by the composite unique index.
type Rating struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	ProductID string `json:"-" gorm:"uniqueIndex:idx_product_rater;type:varchar(36)"`
	PostedBy  string `json:"postedBy" gorm:"uniqueIndex:idx_product_rater;type:varchar(36)"`
	Star      int    `json:"star" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
}
