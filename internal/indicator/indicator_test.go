package indicator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0v1x/EULERA/internal/model"
)

// trendingSeries builds n daily bars with a steady uptrend.
func trendingSeries(n int) *model.PriceSeries {
	bars := make([]model.Bar, n)
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		c := 100.0 + float64(i)
		bars[i] = model.Bar{
			Time:   base.AddDate(0, 0, i),
			Open:   c - 0.5,
			High:   c + 1.0,
			Low:    c - 1.0,
			Close:  c,
			Volume: 1000000 + float64(i)*1000,
		}
	}
	return &model.PriceSeries{Symbol: "AAPL", Interval: "1d", Bars: bars}
}

func countDefined(values []float64) int {
	n := 0
	for _, v := range values {
		if Defined(v) {
			n++
		}
	}
	return n
}

func TestAllStudies_AlignmentInvariant(t *testing.T) {
	series := trendingSeries(60)
	for k := KindRSI; k <= KindBollinger; k++ {
		for _, res := range New(k).Compute(series) {
			assert.Len(t, res.Values, series.Len(), "study %s result %s", k, res.Name)
		}
	}
}

func TestAllStudies_ShortSeriesAllUndefined(t *testing.T) {
	series := trendingSeries(3)
	for k := KindRSI; k <= KindBollinger; k++ {
		if k == KindOBV {
			continue // OBV has no warm-up window
		}
		for _, res := range New(k).Compute(series) {
			require.Len(t, res.Values, 3)
			assert.Equal(t, 0, countDefined(res.Values), "study %s should be fully undefined on 3 bars", k)
		}
	}
}

func TestSMA_LastValueIsMeanOfWindow(t *testing.T) {
	series := trendingSeries(30)
	closes := series.Closes()

	out := SMA(closes, 12)
	require.Len(t, out, 30)

	sum := 0.0
	for _, c := range closes[18:] {
		sum += c
	}
	assert.InDelta(t, sum/12.0, out[29], 1e-9)
	// Warm-up: undefined through index 10, defined from 11.
	assert.False(t, Defined(out[10]))
	assert.True(t, Defined(out[11]))
}

func TestEMA_WarmupAndConvergence(t *testing.T) {
	// Constant series: EMA must equal the constant wherever defined.
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 55.5
	}
	out := EMA(closes, 12)
	assert.False(t, Defined(out[10]))
	for i := 11; i < 40; i++ {
		assert.InDelta(t, 55.5, out[i], 1e-9)
	}
}

func TestRSI_Bounds(t *testing.T) {
	series := trendingSeries(60)
	out := RSI(series.Closes(), 14)
	for i, v := range out {
		if !Defined(v) {
			assert.Less(t, i, 14, "undefined after warm-up at %d", i)
			continue
		}
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
	// Pure uptrend: no losses, so RSI saturates at 100.
	assert.InDelta(t, 100.0, out[59], 1e-9)
}

func TestRSI_MixedDirection(t *testing.T) {
	closes := []float64{44.34, 44.09, 44.15, 43.61, 44.33, 44.83, 45.10, 45.42,
		45.84, 46.08, 45.89, 46.03, 45.61, 46.28, 46.28, 46.00, 46.03, 46.41,
		46.22, 45.64}
	out := RSI(closes, 14)
	assert.False(t, Defined(out[13]))
	require.True(t, Defined(out[14]))
	// Classic Wilder worked example lands around 70 for this sequence.
	assert.InDelta(t, 70.46, out[14], 0.5)
}

func TestROC_PercentChange(t *testing.T) {
	closes := []float64{100, 101, 102, 103, 104, 105, 106, 107, 108, 109, 110, 111, 112}
	out := ROC(closes, 12)
	assert.False(t, Defined(out[11]))
	require.True(t, Defined(out[12]))
	assert.InDelta(t, 12.0, out[12], 1e-9)
}

func TestOBV_CumulativeSignedVolume(t *testing.T) {
	closes := []float64{10, 11, 10.5, 10.5, 12}
	volumes := []float64{100, 200, 300, 400, 500}
	out := OBV(closes, volumes)
	want := []float64{100, 300, 0, 0, 500}
	for i := range want {
		assert.InDelta(t, want[i], out[i], 1e-9, "index %d", i)
	}
}

func TestATR_ConstantRange(t *testing.T) {
	// High-low spread fixed at 2.0 with no gaps: ATR settles at 2.
	series := trendingSeries(40)
	out := ATR(series.Highs(), series.Lows(), series.Closes(), 14)
	assert.False(t, Defined(out[13]))
	require.True(t, Defined(out[14]))
	assert.InDelta(t, 2.0, out[39], 1e-6)
}

func TestCCI_SteadyTrend(t *testing.T) {
	series := trendingSeries(40)
	out := CCI(series.Highs(), series.Lows(), series.Closes(), 14, 0.015)
	assert.False(t, Defined(out[12]))
	require.True(t, Defined(out[13]))
	// Typical price rises by 1 each bar: deviation from the window mean is
	// (window-1)/2, MAD is window/4 (even window), so CCI is constant.
	assert.InDelta(t, (13.0/2.0)/(0.015*3.5), out[20], 1e-6)
}

func TestBollinger_BandOrdering(t *testing.T) {
	series := trendingSeries(40)
	high, low, mid := Bollinger(series.Closes(), 20, 2)
	for i := 19; i < 40; i++ {
		require.True(t, Defined(mid[i]))
		assert.Greater(t, high[i], mid[i])
		assert.Less(t, low[i], mid[i])
		assert.InDelta(t, mid[i], (high[i]+low[i])/2, 1e-9)
	}
}

func TestMACD_FastMinusSlow(t *testing.T) {
	series := trendingSeries(60)
	closes := series.Closes()
	out := MACD(closes, 26, 12)
	emaFast := EMA(closes, 12)
	emaSlow := EMA(closes, 26)
	for i := 25; i < 60; i++ {
		require.True(t, Defined(out[i]), "index %d", i)
		assert.InDelta(t, emaFast[i]-emaSlow[i], out[i], 1e-9)
	}
	assert.False(t, Defined(out[24]))
}

func TestTSI_SteadyTrendSaturates(t *testing.T) {
	series := trendingSeries(80)
	out := TSI(series.Highs(), 25, 13)
	assert.Equal(t, 80, len(out))
	// Monotonic rise: momentum always positive, so TSI is 100 once defined.
	require.Positive(t, countDefined(out))
	assert.InDelta(t, 100.0, out[79], 1e-6)
	assert.False(t, Defined(out[25]))
}

func TestStudyDefaults(t *testing.T) {
	tests := []struct {
		kind  Kind
		label string
	}{
		{KindRSI, "RSI(14 days)"},
		{KindROC, "ROC(12 days)"},
		{KindMACD, "MACD(12 days)"},
		{KindOBV, "OBV"},
		{KindTSI, "TSI"},
		{KindATR, "ATR(14 days)"},
		{KindCCI, "CCI(14 days)"},
		{KindEMA, "EMA(12 days)"},
		{KindSMA, "SMA(12 days)"},
		{KindBollinger, "BOLLINGER(20 days)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.label, New(tt.kind).Label())
	}
}

func TestOverlayClassification(t *testing.T) {
	overlays := map[Kind]bool{KindSMA: true, KindEMA: true, KindBollinger: true}
	for k := KindRSI; k <= KindBollinger; k++ {
		assert.Equal(t, overlays[k], k.Overlay(), "kind %s", k)
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("BOLLINGER")
	require.NoError(t, err)
	assert.Equal(t, KindBollinger, k)

	_, err = ParseKind("VWAP")
	assert.Error(t, err)
}

func TestUndefinedHelpers(t *testing.T) {
	assert.False(t, Defined(Undefined()))
	assert.True(t, Defined(0))
	assert.True(t, math.IsNaN(Undefined()))
}
