package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OrderID uint  `gorm:"not null;index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload only when the name is needed

	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitPrice"` // copied from the menu at order time
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalPrice"`

	CreatedAt time.Time `json:"createdAt"`
}
