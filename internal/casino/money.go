package casino

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/osse101/FichasBot_Go/internal/domain"
)

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

// payout returns bet*multiplier rounded down to whole chips
func payout(bet int64, multiplier float64) int64 {
	if bet <= 0 || multiplier <= 0 {
		return 0
	}
	return clampInt64(decimal.NewFromInt(bet).Mul(decimal.NewFromFloat(multiplier)).Floor())
}

// exchangeQuote splits chips*chipValue into the fee withheld and the amount paid.
// The fee is rounded down.
func exchangeQuote(chips, chipValue int64, feeRate decimal.Decimal) (base, fee, amount int64) {
	b := decimal.NewFromInt(chips).Mul(decimal.NewFromInt(chipValue))
	f := b.Mul(feeRate).Floor()
	return clampInt64(b), clampInt64(f), clampInt64(b.Sub(f))
}

// chipsCost returns chips*chipValue, or false when the product leaves the
// allowed range
func chipsCost(chips, chipValue int64) (int64, bool) {
	if chips <= 0 || chips > domain.MaxChipAmount || chips > math.MaxInt64/chipValue {
		return 0, false
	}
	return chips * chipValue, true
}

// clampInt64 saturates d at MaxInt64 instead of letting IntPart wrap
func clampInt64(d decimal.Decimal) int64 {
	if d.GreaterThan(maxInt64) {
		return math.MaxInt64
	}
	return d.IntPart()
}
