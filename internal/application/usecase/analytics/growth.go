package analytics

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// GrowthRate computes the percentage change between a current and a previous
// period total: (current - previous) / previous * 100. A zero previous
// period is defined to yield 0, never an infinity or an error. Every
// period-over-period comparison in the system goes through this guard.
func GrowthRate(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred)
}
