package models

import "gorm.io/gorm"

// Roles recognized by the authorization middleware.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a customer or admin account.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	FirstName  string `json:"firstname" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	LastName   string `json:"lastname" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Mobile     string `json:"mobile" gorm:"uniqueIndex;type:varchar(20)" validate:"required,min=6,max=20"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	Role       string `json:"role" gorm:"type:varchar(20);default:user"`
	IsBlocked  bool   `json:"isBlocked" gorm:"default:false"`
	Address    string `json:"address,omitempty" gorm:"type:varchar(500)"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
