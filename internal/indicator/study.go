package indicator

import (
	"fmt"

	"github.com/s0v1x/EULERA/internal/model"
)

// Result is a named series aligned index-for-index with the price series it
// was derived from.
type Result struct {
	Name   string
	Values []float64
}

// Kind enumerates the available studies.
type Kind int

const (
	KindRSI Kind = iota
	KindROC
	KindMACD
	KindOBV
	KindTSI
	KindATR
	KindCCI
	KindEMA
	KindSMA
	KindBollinger
)

func (k Kind) String() string {
	switch k {
	case KindRSI:
		return "RSI"
	case KindROC:
		return "ROC"
	case KindMACD:
		return "MACD"
	case KindOBV:
		return "OBV"
	case KindTSI:
		return "TSI"
	case KindATR:
		return "ATR"
	case KindCCI:
		return "CCI"
	case KindEMA:
		return "EMA"
	case KindSMA:
		return "SMA"
	case KindBollinger:
		return "BOLLINGER"
	default:
		return "UNKNOWN"
	}
}

// ParseKind resolves a study name as used in selections ("RSI", "BOLLINGER", ...).
func ParseKind(name string) (Kind, error) {
	for k := KindRSI; k <= KindBollinger; k++ {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown study %q", name)
}

// Overlay reports whether the study is drawn on the price panel rather than
// in its own sub-panel.
func (k Kind) Overlay() bool {
	return k == KindSMA || k == KindEMA || k == KindBollinger
}

// Study is one selected indicator with its parameters. Each kind reads only
// the parameters that apply to it.
type Study struct {
	Kind       Kind
	Window     int
	Slow       int
	Fast       int
	StdDevMult float64
	Constant   float64
}

// New returns a study of the given kind with its textbook default parameters.
func New(kind Kind) Study {
	s := Study{Kind: kind}
	switch kind {
	case KindRSI, KindATR:
		s.Window = 14
	case KindROC, KindEMA, KindSMA:
		s.Window = 12
	case KindMACD:
		s.Slow, s.Fast = 26, 12
	case KindTSI:
		s.Slow, s.Fast = 25, 13
	case KindCCI:
		s.Window, s.Constant = 14, 0.015
	case KindBollinger:
		s.Window, s.StdDevMult = 20, 2
	}
	return s
}

// Label is the trace name shown in chart legends, e.g. "RSI(14 days)".
func (s Study) Label() string {
	switch s.Kind {
	case KindOBV, KindTSI:
		return s.Kind.String()
	case KindMACD:
		return fmt.Sprintf("MACD(%d days)", s.Fast)
	default:
		return fmt.Sprintf("%s(%d days)", s.Kind, s.Window)
	}
}

type computeFunc func(Study, *model.PriceSeries) []Result

// registry maps each study variant to its pure computation. Bollinger is the
// only study producing more than one series.
var registry = map[Kind]computeFunc{
	KindRSI: func(s Study, p *model.PriceSeries) []Result {
		return []Result{{Name: s.Label(), Values: RSI(p.Closes(), s.Window)}}
	},
	KindROC: func(s Study, p *model.PriceSeries) []Result {
		return []Result{{Name: s.Label(), Values: ROC(p.Closes(), s.Window)}}
	},
	KindMACD: func(s Study, p *model.PriceSeries) []Result {
		return []Result{{Name: s.Label(), Values: MACD(p.Closes(), s.Slow, s.Fast)}}
	},
	KindOBV: func(s Study, p *model.PriceSeries) []Result {
		return []Result{{Name: s.Label(), Values: OBV(p.Closes(), p.Volumes())}}
	},
	KindTSI: func(s Study, p *model.PriceSeries) []Result {
		return []Result{{Name: s.Label(), Values: TSI(p.Highs(), s.Slow, s.Fast)}}
	},
	KindATR: func(s Study, p *model.PriceSeries) []Result {
		return []Result{{Name: s.Label(), Values: ATR(p.Highs(), p.Lows(), p.Closes(), s.Window)}}
	},
	KindCCI: func(s Study, p *model.PriceSeries) []Result {
		return []Result{{Name: s.Label(), Values: CCI(p.Highs(), p.Lows(), p.Closes(), s.Window, s.Constant)}}
	},
	KindEMA: func(s Study, p *model.PriceSeries) []Result {
		return []Result{{Name: s.Label(), Values: EMA(p.Closes(), s.Window)}}
	},
	KindSMA: func(s Study, p *model.PriceSeries) []Result {
		return []Result{{Name: s.Label(), Values: SMA(p.Closes(), s.Window)}}
	},
	KindBollinger: func(s Study, p *model.PriceSeries) []Result {
		high, low, mid := Bollinger(p.Closes(), s.Window, s.StdDevMult)
		return []Result{
			{Name: "Bollinger High Band", Values: high},
			{Name: "Bollinger Low Band", Values: low},
			{Name: "Bollinger Middle Band", Values: mid},
		}
	},
}

// Compute resolves the study to its computation and runs it. An unknown kind
// yields a single all-undefined series so chart composition stays intact.
func (s Study) Compute(series *model.PriceSeries) []Result {
	fn, ok := registry[s.Kind]
	if !ok {
		return []Result{{Name: s.Label(), Values: nanSeries(series.Len())}}
	}
	return fn(s, series)
}
