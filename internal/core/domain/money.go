package domain

import "github.com/shopspring/decimal"

// Scales of the stored decimal columns.
const (
	ETHPlaces   int32 = 8
	TokenPlaces int32 = 2
)

// Earnings credited to a video and its owner for every simulated view.
var (
	ViewRewardETH    = decimal.RequireFromString("0.01")
	ViewRewardTokens = decimal.NewFromInt(100)
)

// RoundETH rounds d to the precision ETH amounts are stored with.
func RoundETH(d decimal.Decimal) decimal.Decimal {
	return d.Round(ETHPlaces)
}

// FormatETH renders d with exactly ETHPlaces fractional digits.
func FormatETH(d decimal.Decimal) string {
	return d.StringFixed(ETHPlaces)
}

// FormatTokens renders d with exactly TokenPlaces fractional digits.
func FormatTokens(d decimal.Decimal) string {
	return d.StringFixed(TokenPlaces)
}

// Bounds of an acceptable ETH amount. The columns are NUMERIC(20, 8), so at
// most 12 integer digits fit; exponents past these limits would make
// rounding expand an arbitrarily large coefficient.
const (
	minAmountExp int32 = -30
	maxAmountExp int32 = 12
)

var maxAmount = decimal.New(1, maxAmountExp)

// ValidAmount reports whether d can be rounded with RoundETH and stored.
// The exponent is checked before any arithmetic is done on d.
func ValidAmount(d decimal.Decimal) bool {
	if e := d.Exponent(); e < minAmountExp || e > maxAmountExp {
		return false
	}
	return RoundETH(d).Abs().LessThan(maxAmount)
}
