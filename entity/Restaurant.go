package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name         string       `gorm:"not null" json:"name"`
	LocationType LocationType `gorm:"type:varchar(20);not null" json:"locationType"`

	// percentages in [0,100]
	BaseWeekdayDiscount decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"baseWeekdayDiscount"`
	BaseWeekendDiscount decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"baseWeekendDiscount"`

	BasePreparationTime int `gorm:"not null" json:"basePreparationTime"` // minutes
	PeakHourThreshold   int `gorm:"not null" json:"peakHourThreshold"`   // orders per hour

	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
}
