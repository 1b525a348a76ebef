package format

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Width is the fixed display width of a formatted price.
const Width = 15

// Price renders p as a fixed-width string. Zero, NaN and negative inputs
// render as "0". Decimal precision depends on magnitude so that large prices
// show 2 decimals and dust prices show up to 8. StringFixed keeps trailing
// zeros, which default float formatting would drop.
func Price(p float64) string {
	if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
		return pad("0")
	}
	return pad(decimal.NewFromFloat(p).StringFixed(int32(precisionFor(p))))
}

func precisionFor(p float64) int {
	switch {
	case p >= 1000:
		return 2
	case p >= 1:
		return 4
	case p >= 0.1:
		return 5
	case p >= 0.01:
		return 6
	case p >= 0.001:
		return 7
	default:
		return 8
	}
}

func pad(s string) string {
	return fmt.Sprintf("%*s", Width, s)
}
