package entity

import "time"

// OrderStatusHistory is append-only. The creation entry has a nil OldStatus.
type OrderStatusHistory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OrderID uint  `gorm:"not null;index" json:"orderId"`
	Order   Order `json:"-"`

	OldStatus *OrderStatus `gorm:"type:varchar(20)" json:"oldStatus"`
	NewStatus OrderStatus  `gorm:"type:varchar(20);not null" json:"newStatus"`
	ChangedAt time.Time    `gorm:"not null;index" json:"changedAt"`
}

func (OrderStatusHistory) TableName() string {
	return "order_status_history"
}
