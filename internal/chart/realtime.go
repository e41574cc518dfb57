package chart

import (
	"time"

	"github.com/s0v1x/EULERA/internal/model"
)

// DefaultResampleMinBars is the minimum number of intraday observations
// before forward-fill resampling kicks in. Right after the open there are too
// few points for a regular grid to be useful.
const DefaultResampleMinBars = 3

const resampleStep = 60 * time.Second

// marketCloseHour/Minute bound the realtime x-axis at the venue-local
// post-market close (20:01).
const (
	marketCloseHour   = 20
	marketCloseMinute = 1
)

// ResampleForwardFill regrids the series onto fixed step boundaries from the
// first to the last observed bar, carrying the most recent bar forward into
// empty slots. The input is left untouched.
func ResampleForwardFill(series *model.PriceSeries, step time.Duration) *model.PriceSeries {
	if series.Len() == 0 {
		return series
	}
	first := series.Bars[0].Time
	last := series.Bars[len(series.Bars)-1].Time

	var bars []model.Bar
	src := 0
	for t := first; !t.After(last); t = t.Add(step) {
		for src+1 < len(series.Bars) && !series.Bars[src+1].Time.After(t) {
			src++
		}
		b := series.Bars[src]
		b.Time = t
		bars = append(bars, b)
	}

	out := *series
	out.Bars = bars
	return &out
}

// ComposeRealtimeChart builds the 1-day/1-minute live chart. The line is
// green when the live price sits above the previous close and red otherwise,
// with a number+delta readout of the live price. The x-axis runs to the
// venue-local close boundary when the fetch stayed within the first bar's
// day, or to the last observed bar when it rolled into a new one.
func ComposeRealtimeChart(series *model.PriceSeries, prevClose, livePrice float64, now time.Time, venue *time.Location, minBars int) *Spec {
	if series.Len() > minBars {
		series = ResampleForwardFill(series, resampleStep)
	}

	color := "red"
	if livePrice-prevClose > 0 {
		color = "green"
	}

	trace := Trace{
		Kind:   TraceScatter,
		Name:   "Line",
		Mode:   "lines",
		X:      series.Times(),
		Y:      series.Closes(),
		Open:   series.Opens(),
		High:   series.Highs(),
		Low:    series.Lows(),
		Close:  series.Closes(),
		Volume: series.Volumes(),
		Line:   LineStyle{Width: 1, Color: color, Shape: "linear", Dash: "solid"},
	}

	spec := &Spec{
		Panels:  []Panel{{Traces: []Trace{trace}}},
		SharedX: true,
		Theme:   DarkTheme,
		Live:    &LiveIndicator{Value: livePrice, Reference: prevClose},
	}

	if series.Len() > 0 {
		first := series.Bars[0].Time
		local := now.In(venue)
		boundary := time.Date(local.Year(), local.Month(), local.Day(),
			marketCloseHour, marketCloseMinute, 0, 0, venue)

		end := boundary
		if boundary.Sub(first) >= 24*time.Hour {
			end = series.Bars[series.Len()-1].Time
		}
		spec.XRange = &TimeRange{Start: first, End: end}
	}
	return spec
}
