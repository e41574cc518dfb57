package indicator

import "math"

// CCI computes the Commodity Channel Index: the deviation of the typical
// price from its moving average, scaled by the mean absolute deviation and
// the given constant (0.015 in the textbook definition).
func CCI(highs, lows, closes []float64, window int, constant float64) []float64 {
	n := len(closes)
	out := nanSeries(n)
	if window <= 0 || constant == 0 || n < window || len(highs) != n || len(lows) != n {
		return out
	}

	tp := make([]float64, n)
	for i := range tp {
		tp[i] = (highs[i] + lows[i] + closes[i]) / 3.0
	}
	sma := SMA(tp, window)

	for i := window - 1; i < n; i++ {
		mad := 0.0
		for j := i - window + 1; j <= i; j++ {
			mad += math.Abs(tp[j] - sma[i])
		}
		mad /= float64(window)
		if mad == 0 {
			continue
		}
		out[i] = (tp[i] - sma[i]) / (constant * mad)
	}
	return out
}
