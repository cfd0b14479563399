package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	RestaurantID uint       `gorm:"not null;index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Name                  string          `gorm:"not null" json:"name"`
	Category              MenuCategory    `gorm:"type:varchar(20);not null" json:"category"`
	BasePrice             decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"basePrice"`
	PreparationComplexity decimal.Decimal `gorm:"type:decimal(3,2);not null" json:"preparationComplexity"`

	OrderItems []OrderItem `json:"-"`
}

// MaxPreparationComplexity is the largest complexity a menu item may carry.
var MaxPreparationComplexity = decimal.RequireFromString("9.99")
