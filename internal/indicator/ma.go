package indicator

// SMA computes the simple moving average of closes over the given window.
// Defined from index window-1 onward.
func SMA(closes []float64, window int) []float64 {
	out := nanSeries(len(closes))
	if window <= 0 || len(closes) < window {
		return out
	}

	sum := 0.0
	for i, c := range closes {
		sum += c
		if i >= window {
			sum -= closes[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out
}

// EMA computes the exponential moving average of closes over the given
// window, seeded with the SMA of the first window closes.
func EMA(closes []float64, window int) []float64 {
	return emaSeries(closes, window)
}
