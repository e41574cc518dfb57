package model

import "time"

// Bar represents a single OHLCV candlestick.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds an ordered sequence of bars for one symbol, ascending by
// timestamp with unique timestamps. A series is never mutated after fetch; a
// new fetch produces a new series.
type PriceSeries struct {
	Symbol    string
	Interval  string
	Bars      []Bar
	FetchedAt time.Time
}

func (p *PriceSeries) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Bars)
}

// Times returns the bar timestamps in order.
func (p *PriceSeries) Times() []time.Time {
	out := make([]time.Time, p.Len())
	for i, b := range p.Bars {
		out[i] = b.Time
	}
	return out
}

func (p *PriceSeries) Opens() []float64 {
	out := make([]float64, p.Len())
	for i, b := range p.Bars {
		out[i] = b.Open
	}
	return out
}

func (p *PriceSeries) Highs() []float64 {
	out := make([]float64, p.Len())
	for i, b := range p.Bars {
		out[i] = b.High
	}
	return out
}

func (p *PriceSeries) Lows() []float64 {
	out := make([]float64, p.Len())
	for i, b := range p.Bars {
		out[i] = b.Low
	}
	return out
}

func (p *PriceSeries) Closes() []float64 {
	out := make([]float64, p.Len())
	for i, b := range p.Bars {
		out[i] = b.Close
	}
	return out
}

func (p *PriceSeries) Volumes() []float64 {
	out := make([]float64, p.Len())
	for i, b := range p.Bars {
		out[i] = b.Volume
	}
	return out
}

// Tail returns a copy of the series holding only the last n bars.
func (p *PriceSeries) Tail(n int) *PriceSeries {
	if n >= p.Len() {
		return p
	}
	cp := *p
	cp.Bars = p.Bars[p.Len()-n:]
	return &cp
}
