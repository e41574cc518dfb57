// Package chart composes renderable chart specifications from price series
// and selected studies. A Spec is a pure data model — the presentation layer
// owns the actual rendering — so everything here serializes to JSON, with
// undefined points encoded as null.
package chart

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// Style selects the base trace drawn on the price panel.
type Style string

const (
	StyleOHLC        Style = "ohlc"
	StyleCandlestick Style = "candle"
	StyleLine        Style = "line"
)

// TraceKind discriminates the trace payload.
type TraceKind string

const (
	TraceOHLC        TraceKind = "ohlc"
	TraceCandlestick TraceKind = "candlestick"
	TraceScatter     TraceKind = "scatter"
)

// FloatSeries is a numeric series that encodes NaN (undefined) points as
// JSON null so renderers can skip them.
type FloatSeries []float64

func (s FloatSeries) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, len(s)*8+2)
	buf = append(buf, '[')
	for i, v := range s {
		if i > 0 {
			buf = append(buf, ',')
		}
		if math.IsNaN(v) {
			buf = append(buf, "null"...)
		} else {
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
	}
	buf = append(buf, ']')
	return buf, nil
}

func (s *FloatSeries) UnmarshalJSON(data []byte) error {
	var raw []*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(FloatSeries, len(raw))
	for i, p := range raw {
		if p == nil {
			out[i] = math.NaN()
		} else {
			out[i] = *p
		}
	}
	*s = out
	return nil
}

// LineStyle carries the fixed per-trace styling constants.
type LineStyle struct {
	Width     float64 `json:"width,omitempty"`
	Color     string  `json:"color,omitempty"`
	Dash      string  `json:"dash,omitempty"`
	Shape     string  `json:"shape,omitempty"`
	Smoothing float64 `json:"smoothing,omitempty"`
}

// Trace is one drawable series.
type Trace struct {
	Kind       TraceKind   `json:"kind"`
	Name       string      `json:"name"`
	Mode       string      `json:"mode,omitempty"`
	ShowLegend bool        `json:"show_legend"`
	X          []time.Time `json:"x"`
	Y          FloatSeries `json:"y,omitempty"`
	Open       FloatSeries `json:"open,omitempty"`
	High       FloatSeries `json:"high,omitempty"`
	Low        FloatSeries `json:"low,omitempty"`
	Close      FloatSeries `json:"close,omitempty"`
	Volume     FloatSeries `json:"volume,omitempty"`
	Line       LineStyle   `json:"line"`
	Fill       string      `json:"fill,omitempty"`
}

// Panel is one stacked sub-chart; panel 1 holds price plus overlays.
type Panel struct {
	Traces []Trace `json:"traces"`
}

// TimeRange bounds the shared x-axis.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// LiveIndicator is the number+delta price readout overlaid on the realtime
// chart: current value against a reference (previous close).
type LiveIndicator struct {
	Value     float64 `json:"value"`
	Reference float64 `json:"reference"`
}

// Spec is a complete multi-panel chart specification.
type Spec struct {
	Panels          []Panel        `json:"panels"`
	SharedX         bool           `json:"shared_x"`
	VerticalSpacing float64        `json:"vertical_spacing"`
	Theme           Theme          `json:"theme"`
	XRange          *TimeRange     `json:"x_range,omitempty"`
	Live            *LiveIndicator `json:"live,omitempty"`
}

// PanelCount returns the number of stacked panels.
func (s *Spec) PanelCount() int { return len(s.Panels) }
