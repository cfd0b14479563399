package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pricing columns are snapshots taken at creation time and never rewritten.
type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RestaurantID uint       `gorm:"not null;index:idx_orders_restaurant_created,priority:1" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	CustomerName  string `gorm:"not null" json:"customerName"`
	CustomerPhone string `gorm:"not null" json:"customerPhone"`

	Status OrderStatus `gorm:"type:varchar(20);not null;default:pending;check:chk_orders_status,status IN ('pending','confirmed','preparing','ready','delivered','cancelled')" json:"status"`

	Subtotal                 decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	DiscountPercentage       decimal.Decimal `gorm:"type:decimal(7,4);not null" json:"discountPercentage"`
	DiscountAmount           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"discountAmount"`
	TotalAmount              decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	EstimatedPreparationTime int             `gorm:"not null" json:"estimatedPreparationTime"`

	CreatedAt time.Time `gorm:"index:idx_orders_restaurant_created,priority:2" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Items         []OrderItem          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	StatusHistory []OrderStatusHistory `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
