package indicator

import "math"

// ATR computes the Wilder-smoothed average true range over the given window.
// Undefined for the first window points.
func ATR(highs, lows, closes []float64, window int) []float64 {
	n := len(closes)
	out := nanSeries(n)
	if window <= 0 || n < window+1 || len(highs) != n || len(lows) != n {
		return out
	}

	sum := 0.0
	for i := 1; i <= window; i++ {
		sum += trueRange(highs[i], lows[i], closes[i-1])
	}
	atr := sum / float64(window)
	out[window] = atr

	for i := window + 1; i < n; i++ {
		tr := trueRange(highs[i], lows[i], closes[i-1])
		atr = (atr*float64(window-1) + tr) / float64(window)
		out[i] = atr
	}
	return out
}

func trueRange(high, low, prevClose float64) float64 {
	return math.Max(high-low, math.Max(math.Abs(high-prevClose), math.Abs(low-prevClose)))
}
