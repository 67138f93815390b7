package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus enumerates the order lifecycle states.
type OrderStatus string

const (
	StatusNotProcessed   OrderStatus = "Not Processed"
	StatusCashOnDelivery OrderStatus = "Cash On Delivery"
	StatusProcessing     OrderStatus = "Processing"
	StatusDispatched     OrderStatus = "Dispatched"
	StatusCancelled      OrderStatus = "Cancelled"
	StatusDelivered      OrderStatus = "Delivered"
)

// Valid reports whether s is a member of the order status enumeration.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusNotProcessed, StatusCashOnDelivery, StatusProcessing,
		StatusDispatched, StatusCancelled, StatusDelivered:
		return true
	}
	return false
}

// OrderItem is a line of a committed order. Price is the unit price carried
// over from the cart snapshot so historical orders stay auditable per line.
type OrderItem struct {
	ID        uint    `json:"-" gorm:"primaryKey"`
	OrderID   string  `json:"-" gorm:"index;type:varchar(36)"`
	ProductID string  `json:"productID" gorm:"type:varchar(36)"`
	Count     int     `json:"count"`
	Color     string  `json:"color,omitempty" gorm:"type:varchar(100)"`
	Price     float64 `json:"price"`
}

// PaymentIntent summarizes the payment attached to an order.
type PaymentIntent struct {
	PaymentID string      `json:"id" gorm:"type:varchar(36)"`
	Method    string      `json:"method" gorm:"type:varchar(20)"`
	Amount    float64     `json:"amount"`
	Status    OrderStatus `json:"status" gorm:"type:varchar(32)"`
	Created   time.Time   `json:"created"`
	Currency  string      `json:"currency" gorm:"type:varchar(10)"`
}

// Order is an immutable record of a committed purchase. Only OrderStatus
// (and the mirrored PaymentIntent.Status) changes after creation.
type Order struct {
	ID            string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Products      []OrderItem   `json:"products" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	PaymentIntent PaymentIntent `json:"paymentIntent" gorm:"embedded;embeddedPrefix:payment_"`
	OrderStatus   OrderStatus   `json:"orderStatus" gorm:"type:varchar(32)"`
	OrderBy       string        `json:"orderBy" gorm:"index;type:varchar(36)"`
	gorm.Model                  // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
