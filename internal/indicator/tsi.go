package indicator

import "math"

// TSI computes the True Strength Index: double EMA smoothing of the one-bar
// momentum, normalized by the equally smoothed absolute momentum. The input
// is the high series.
func TSI(highs []float64, slow, fast int) []float64 {
	out := nanSeries(len(highs))
	if slow <= 0 || fast <= 0 || len(highs) < slow+fast {
		return out
	}

	momentum := diffSeries(highs)
	absMomentum := make([]float64, len(momentum))
	for i, m := range momentum {
		absMomentum[i] = math.Abs(m)
	}

	smoothed := emaSeries(emaSeries(momentum, slow), fast)
	smoothedAbs := emaSeries(emaSeries(absMomentum, slow), fast)

	for i := range out {
		if Defined(smoothed[i]) && Defined(smoothedAbs[i]) && smoothedAbs[i] != 0 {
			out[i] = 100.0 * smoothed[i] / smoothedAbs[i]
		}
	}
	return out
}
