package indicator

// MACD computes the moving average convergence/divergence line: the fast EMA
// minus the slow EMA of closes. Undefined until the slow EMA is warmed up.
func MACD(closes []float64, slow, fast int) []float64 {
	out := nanSeries(len(closes))
	if slow <= 0 || fast <= 0 || len(closes) < slow {
		return out
	}
	emaFast := emaSeries(closes, fast)
	emaSlow := emaSeries(closes, slow)
	for i := range out {
		if Defined(emaFast[i]) && Defined(emaSlow[i]) {
			out[i] = emaFast[i] - emaSlow[i]
		}
	}
	return out
}
