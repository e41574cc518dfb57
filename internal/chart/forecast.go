package chart

import (
	"time"

	"github.com/s0v1x/EULERA/internal/model"
)

// ComposeForecastHistoryChart overlays actual close prices against past
// forecasts with a shaded confidence band between the min/max bounds. The
// actual-price window is trimmed to the span of the forecast history; when
// the session is OPEN the most recent bar is dropped so a live, incomplete
// bar never shows up in the comparison.
func ComposeForecastHistoryChart(history []model.ForecastRecord, actual *model.PriceSeries, state model.SessionState) *Spec {
	bars := trimActual(history, actual, state)

	actualX := make([]time.Time, len(bars))
	actualY := make(FloatSeries, len(bars))
	for i, b := range bars {
		actualX[i] = b.Time
		actualY[i] = b.Close
	}

	fx := make([]time.Time, len(history))
	fy := make(FloatSeries, len(history))
	minY := make(FloatSeries, len(history))
	maxY := make(FloatSeries, len(history))
	for i, rec := range history {
		fx[i] = rec.Date
		fy[i] = rec.ForecastPrice
		minY[i] = rec.MinConfidence
		maxY[i] = rec.MaxConfidence
	}

	return &Spec{
		SharedX: true,
		Theme:   ForecastTheme,
		Panels: []Panel{{Traces: []Trace{
			{
				Kind: TraceScatter, Name: "MP", Mode: "lines+markers", ShowLegend: true,
				X: actualX, Y: actualY,
				Line: LineStyle{Width: 1, Shape: "linear", Dash: "solid"},
			},
			{
				Kind: TraceScatter, Name: "FP", Mode: "lines+markers", ShowLegend: true,
				X: fx, Y: fy,
				Line: LineStyle{Width: 1, Shape: "linear", Dash: "solid"},
			},
			{
				Kind: TraceScatter, Name: "Min Confidence", Mode: "lines",
				X: fx, Y: minY,
				Line: LineStyle{Width: 1, Shape: "spline", Dash: "longdash", Smoothing: 0.5, Color: bandColor},
			},
			{
				Kind: TraceScatter, Name: "Max Confidence", Mode: "lines",
				X: fx, Y: maxY,
				Line: LineStyle{Width: 1, Shape: "spline", Dash: "longdash", Smoothing: 0.5, Color: bandColor},
				Fill: "tonexty",
			},
		}}},
	}
}

func trimActual(history []model.ForecastRecord, actual *model.PriceSeries, state model.SessionState) []model.Bar {
	end := actual.Len()
	if state == model.SessionOpen && end > 0 {
		end--
	}
	start := end - len(history)
	if start < 0 {
		start = 0
	}
	return actual.Bars[start:end]
}
