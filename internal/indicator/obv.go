package indicator

// OBV computes on-balance volume: a running total of volume signed by the
// direction of the close-to-close move. Defined at every index; requires no
// warm-up.
func OBV(closes, volumes []float64) []float64 {
	n := len(closes)
	out := nanSeries(n)
	if n == 0 || len(volumes) != n {
		return out
	}

	total := volumes[0]
	out[0] = total
	for i := 1; i < n; i++ {
		switch {
		case closes[i] > closes[i-1]:
			total += volumes[i]
		case closes[i] < closes[i-1]:
			total -= volumes[i]
		}
		out[i] = total
	}
	return out
}
