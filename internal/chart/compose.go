package chart

import (
	"github.com/s0v1x/EULERA/internal/indicator"
	"github.com/s0v1x/EULERA/internal/model"
)

// ComposeMainChart builds the multi-panel historical chart: panel 1 holds the
// base price trace (per style) plus all overlay studies, and every non-overlay
// study gets its own stacked panel beneath, in selection order. A study that
// cannot be computed contributes an all-undefined trace without affecting any
// other panel.
func ComposeMainChart(series *model.PriceSeries, studies []indicator.Study, style Style) *Spec {
	var overlays, panels []indicator.Study
	for _, s := range studies {
		if s.Kind.Overlay() {
			overlays = append(overlays, s)
		} else {
			panels = append(panels, s)
		}
	}

	price := Panel{Traces: []Trace{baseTrace(series, style)}}
	for _, s := range overlays {
		price.Traces = append(price.Traces, studyTraces(series, s)...)
	}

	spec := &Spec{
		Panels:          []Panel{price},
		SharedX:         true,
		VerticalSpacing: panelSpacing,
		Theme:           DarkTheme,
	}
	for _, s := range panels {
		spec.Panels = append(spec.Panels, Panel{Traces: studyTraces(series, s)})
	}
	return spec
}

func baseTrace(series *model.PriceSeries, style Style) Trace {
	x := series.Times()
	switch style {
	case StyleOHLC:
		return Trace{
			Kind:       TraceOHLC,
			Name:       "OHLC",
			ShowLegend: true,
			X:          x,
			Open:       series.Opens(),
			High:       series.Highs(),
			Low:        series.Lows(),
			Close:      series.Closes(),
			Volume:     series.Volumes(),
			Line:       LineStyle{Width: 1},
		}
	case StyleCandlestick:
		return Trace{
			Kind:       TraceCandlestick,
			Name:       "Candlestick",
			ShowLegend: true,
			X:          x,
			Open:       series.Opens(),
			High:       series.Highs(),
			Low:        series.Lows(),
			Close:      series.Closes(),
			Volume:     series.Volumes(),
			Line:       LineStyle{Width: 1},
		}
	default:
		return Trace{
			Kind:       TraceScatter,
			Name:       "Prices",
			Mode:       "lines",
			ShowLegend: true,
			X:          x,
			Y:          series.Closes(),
			Volume:     series.Volumes(),
			Line:       LineStyle{Width: 1, Shape: "linear", Dash: "solid"},
		}
	}
}

// studyTraces computes one study and wraps its result series into traces.
// Bollinger produces its three band traces: high, then low filled against it,
// then the middle band.
func studyTraces(series *model.PriceSeries, s indicator.Study) []Trace {
	results := s.Compute(series)
	x := series.Times()

	if s.Kind == indicator.KindBollinger && len(results) == 3 {
		return []Trace{
			{
				Kind: TraceScatter, Name: results[0].Name, Mode: "lines", X: x, Y: results[0].Values,
				Line: LineStyle{Width: 1, Shape: "linear", Dash: "longdash", Color: bandColor},
			},
			{
				Kind: TraceScatter, Name: results[1].Name, Mode: "lines", X: x, Y: results[1].Values,
				Line: LineStyle{Width: 1, Shape: "linear", Dash: "longdash", Color: bandColor},
				Fill: "tonexty",
			},
			{
				Kind: TraceScatter, Name: results[2].Name, Mode: "lines", ShowLegend: true, X: x, Y: results[2].Values,
				Line: LineStyle{Width: 1, Shape: "linear", Dash: "dashdot", Color: bandColor},
			},
		}
	}

	traces := make([]Trace, 0, len(results))
	for _, res := range results {
		traces = append(traces, Trace{
			Kind:       TraceScatter,
			Name:       res.Name,
			Mode:       "lines",
			ShowLegend: true,
			X:          x,
			Y:          res.Values,
			Line:       LineStyle{Width: 1, Shape: "linear", Dash: "solid"},
		})
	}
	return traces
}
