// Package format holds the small display-formatting helpers shared by the
// dashboard views.
package format

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

var magnitudeSuffixes = []string{"", "K", "M", "G", "T", "P"}

// Human scales a number down by decades of 1000 and appends the matching
// suffix, always with two decimals: 500 -> "500.00", 1500 -> "1.50K",
// 2500000 -> "2.50M".
func Human(num float64) string {
	magnitude := 0
	for math.Abs(num) >= 1000 && magnitude < len(magnitudeSuffixes)-1 {
		magnitude++
		num /= 1000.0
	}
	return fmt.Sprintf("%.2f%s", num, magnitudeSuffixes[magnitude])
}

// Comma renders an integer with thousands separators, e.g. 74581 -> "74,581".
func Comma(n int64) string {
	return humanize.Comma(n)
}

// Price renders a price with four decimals, or "--" when the value is absent.
func Price(v *float64) string {
	if v == nil {
		return "--"
	}
	return fmt.Sprintf("%.4f", *v)
}
