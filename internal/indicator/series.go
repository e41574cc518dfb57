// Package indicator provides pure technical-indicator transforms over price
// series. Every function returns a series of the same length as its input,
// aligned index-for-index, with math.NaN() marking the warm-up span (or the
// whole series when there is not enough history). Inputs are never mutated.
package indicator

import "math"

// Undefined marks a point with no defined indicator value.
func Undefined() float64 { return math.NaN() }

// Defined reports whether v carries a computed value.
func Defined(v float64) bool { return !math.IsNaN(v) }

func nanSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// emaSeries computes an exponential moving average seeded with the simple
// average of the first window defined values. Leading NaNs in the input are
// carried through, so EMAs can be chained.
func emaSeries(values []float64, window int) []float64 {
	out := nanSeries(len(values))
	if window <= 0 {
		return out
	}

	start := 0
	for start < len(values) && math.IsNaN(values[start]) {
		start++
	}
	if len(values)-start < window {
		return out
	}

	sum := 0.0
	for i := start; i < start+window; i++ {
		sum += values[i]
	}
	ema := sum / float64(window)
	out[start+window-1] = ema

	k := 2.0 / float64(window+1)
	for i := start + window; i < len(values); i++ {
		ema = (values[i]-ema)*k + ema
		out[i] = ema
	}
	return out
}

// diffSeries returns values[i]-values[i-1] with NaN at index 0.
func diffSeries(values []float64) []float64 {
	out := nanSeries(len(values))
	for i := 1; i < len(values); i++ {
		out[i] = values[i] - values[i-1]
	}
	return out
}
