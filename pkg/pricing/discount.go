// Package pricing holds the pure order pricing policies. None of these
// functions read the clock or the database; callers pass both in.
package pricing

import (
	"time"

	"github.com/Subhashreel/orders/entity"

	"github.com/shopspring/decimal"
)

// MaxDiscountPercentage caps every computed discount.
var MaxDiscountPercentage = decimal.NewFromInt(50)

var hundred = decimal.NewFromInt(100)

var locationMultipliers = map[entity.LocationType]decimal.Decimal{
	entity.LocationCollege:   decimal.RequireFromString("1.30"),
	entity.LocationWorkplace: decimal.RequireFromString("1.20"),
	entity.LocationAirport:   decimal.RequireFromString("1.10"),
	entity.LocationCity:      decimal.RequireFromString("1.05"),
	entity.LocationUrban:     decimal.NewFromInt(1),
}

// LocationMultiplier returns 1 for unknown locations.
func LocationMultiplier(loc entity.LocationType) decimal.Decimal {
	if m, ok := locationMultipliers[loc]; ok {
		return m
	}
	return decimal.NewFromInt(1)
}

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DiscountPercentage picks the weekday or weekend base for now, scales it by
// the location multiplier and clamps the result to [0, 50].
func DiscountPercentage(r entity.Restaurant, now time.Time) decimal.Decimal {
	base := r.BaseWeekdayDiscount
	if IsWeekend(now) {
		base = r.BaseWeekendDiscount
	}

	pct := base.Mul(LocationMultiplier(r.LocationType))
	if pct.GreaterThan(MaxDiscountPercentage) {
		return MaxDiscountPercentage
	}
	if pct.IsNegative() {
		return decimal.Zero
	}
	return pct
}

// Totals derives the discount amount, rounded half away from zero to cents,
// and the payable total from subtotal. total + discount == subtotal holds
// exactly.
func Totals(subtotal, discountPercentage decimal.Decimal) (discountAmount, total decimal.Decimal) {
	discountAmount = subtotal.Mul(discountPercentage).Div(hundred).Round(2)
	return discountAmount, subtotal.Sub(discountAmount)
}
