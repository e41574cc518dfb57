package indicator

// ROC computes the rate of change: percent change of close versus the close
// window bars earlier. Undefined for the first window points.
func ROC(closes []float64, window int) []float64 {
	out := nanSeries(len(closes))
	if window <= 0 || len(closes) < window+1 {
		return out
	}
	for i := window; i < len(closes); i++ {
		prev := closes[i-window]
		if prev == 0 {
			continue
		}
		out[i] = (closes[i] - prev) / prev * 100.0
	}
	return out
}
