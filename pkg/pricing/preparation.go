package pricing

import "github.com/shopspring/decimal"

var (
	complexityMinutes = decimal.NewFromInt(2)
	peakHourFactor    = decimal.RequireFromString("1.5")
	roundingStep      = decimal.NewFromInt(5)
)

type Line struct {
	Quantity   int
	Complexity decimal.Decimal
}

// PreparationTime returns base + 2*Σ(quantity*complexity) minutes, scaled by
// 1.5 during peak hours and then rounded up to the next multiple of 5.
// The result is never below 5.
func PreparationTime(baseMinutes int, lines []Line, peakHour bool) int {
	complexity := decimal.Zero
	for _, l := range lines {
		complexity = complexity.Add(decimal.NewFromInt(int64(l.Quantity)).Mul(l.Complexity))
	}

	raw := decimal.NewFromInt(int64(baseMinutes)).Add(complexity.Mul(complexityMinutes))
	if peakHour {
		raw = raw.Mul(peakHourFactor)
	}

	minutes := raw.Div(roundingStep).Ceil().Mul(roundingStep)
	if minutes.LessThan(roundingStep) {
		return int(roundingStep.IntPart())
	}
	return int(minutes.IntPart())
}
