package tax

import "github.com/shopspring/decimal"

// Statutory gambling-win tax schedule: net profit up to 100 is untaxed,
// up to 500 is taxed at 15%, anything above at 20%.
var (
	lowerThreshold = decimal.NewFromInt(100)
	upperThreshold = decimal.NewFromInt(500)
	lowerRate      = decimal.NewFromFloat(0.15)
	upperRate      = decimal.NewFromFloat(0.20)
)

// Compute returns the tax due on a single win. The basis is the net profit,
// win minus the bet that produced it. applies is false when no tax is due.
func Compute(betAmount, winAmount decimal.Decimal) (amount decimal.Decimal, applies bool) {
	netProfit := winAmount.Sub(betAmount)

	switch {
	case netProfit.LessThanOrEqual(lowerThreshold):
		return decimal.Zero, false
	case netProfit.LessThanOrEqual(upperThreshold):
		return netProfit.Mul(lowerRate).Round(2), true
	default:
		return netProfit.Mul(upperRate).Round(2), true
	}
}
