package indicator

import "math"

// Bollinger computes the three Bollinger Band series over closes: the high
// band, the low band and the middle (SMA) band. The bands sit stdDevMult
// population standard deviations either side of the middle band.
func Bollinger(closes []float64, window int, stdDevMult float64) (high, low, mid []float64) {
	n := len(closes)
	high, low, mid = nanSeries(n), nanSeries(n), nanSeries(n)
	if window <= 0 || n < window {
		return high, low, mid
	}

	sma := SMA(closes, window)
	for i := window - 1; i < n; i++ {
		variance := 0.0
		for j := i - window + 1; j <= i; j++ {
			d := closes[j] - sma[i]
			variance += d * d
		}
		sd := math.Sqrt(variance / float64(window))
		mid[i] = sma[i]
		high[i] = sma[i] + stdDevMult*sd
		low[i] = sma[i] - stdDevMult*sd
	}
	return high, low, mid
}
