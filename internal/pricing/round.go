// internal/pricing/round.go
package pricing

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// round1 rounds to one decimal place the way a display layer formatting the
// stored double would: the exact binary value is expanded, then rounded half
// up on its magnitude. 97.55 is stored as 97.5499... and so becomes 97.5.
func round1(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	// 40 fraction digits cover the binary expansion of any value that can
	// land near a tie at the second decimal.
	exact, err := decimal.NewFromString(strconv.FormatFloat(math.Abs(v), 'f', 40, 64))
	if err != nil {
		return v
	}

	r := exact.Round(1).InexactFloat64()
	if r == 0 {
		return 0
	}
	if v < 0 {
		return -r
	}
	return r
}

// percentOf returns part/whole*100 rounded to one decimal, or 0 when whole
// is not positive.
func percentOf(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return round1(part / whole * 100)
}
