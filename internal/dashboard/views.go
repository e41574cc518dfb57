package dashboard

import (
	"fmt"

	"github.com/s0v1x/EULERA/internal/chart"
	"github.com/s0v1x/EULERA/internal/format"
	"github.com/s0v1x/EULERA/internal/model"
	"github.com/s0v1x/EULERA/internal/session"
)

// Placeholder texts shown when an upstream fetch fails or a feature does not
// apply to the selected company.
const (
	PlaceholderValue   = "--"
	PlaceholderFeature = "feature not available"
)

// ForecastUnavailable builds the message shown when forecasting cannot serve
// the selected company.
func ForecastUnavailable(symbol string) string {
	return "Forecasting is not available for " + symbol + "..."
}

// RatiosView holds the formatted TTM ratios of the top bar.
type RatiosView struct {
	QuickRatio        string
	PriceEarnings     string
	DebtEquity        string
	GrossMargin       string
	NetProfitMargin   string
	InventoryTurnover string
}

// FinanceView holds the formatted quote details panel.
type FinanceView struct {
	PreviousClose string
	Open          string
	Volume        string
	AvgVolume3M   string
	DayRange      string
	Ask           string
	Bid           string
	MarketCap     string
	TrailingPE    string
	EPS           string
	Week52Range   string
	EarningsDate  string
}

// QuoteView is the full formatted quote surface for one company.
type QuoteView struct {
	Symbol  string
	Price   string
	Ratios  RatiosView
	Finance FinanceView
}

// ESGView holds the formatted sustainability panel.
type ESGView struct {
	Total       string
	Percentile  string
	Environment string
	Social      string
	Governance  string
}

// RatingView is the analyst-recommendation gauge value and its label.
type RatingView struct {
	Score float64
	Label string
}

// ForecastView carries the forecast panel state: either a chart with a price
// label, or an unavailability message.
type ForecastView struct {
	Available  bool
	PriceLabel string
	Message    string
	Chart      *chart.Spec
}

// StatusView is the formatted market-status strip.
type StatusView struct {
	Status     session.Status
	Currencies []model.CurrencyQuote
}

func ratio(v *float64) string {
	if v == nil {
		return PlaceholderValue
	}
	return fmt.Sprintf("%.3f", *v)
}

func count(v *int64) string {
	if v == nil {
		return PlaceholderValue
	}
	return format.Comma(*v)
}

func sized(price *float64, size *int64) string {
	if price == nil || size == nil {
		return PlaceholderValue
	}
	return fmt.Sprintf("%s x %s", format.Price(price), format.Comma(*size))
}

// NewQuoteView formats a quote and its ratios for display. Either input may
// be nil; absent values render as "--".
func NewQuoteView(symbol string, q *model.Quote, r *model.Ratios) *QuoteView {
	v := &QuoteView{
		Symbol: symbol,
		Price:  PlaceholderValue,
		Ratios: RatiosView{
			QuickRatio:        PlaceholderValue,
			PriceEarnings:     PlaceholderValue,
			DebtEquity:        PlaceholderValue,
			GrossMargin:       PlaceholderValue,
			NetProfitMargin:   PlaceholderValue,
			InventoryTurnover: PlaceholderValue,
		},
		Finance: FinanceView{
			PreviousClose: PlaceholderValue,
			Open:          PlaceholderValue,
			Volume:        PlaceholderValue,
			AvgVolume3M:   PlaceholderValue,
			DayRange:      PlaceholderValue,
			Ask:           PlaceholderValue,
			Bid:           PlaceholderValue,
			MarketCap:     PlaceholderValue,
			TrailingPE:    PlaceholderValue,
			EPS:           PlaceholderValue,
			Week52Range:   PlaceholderValue,
			EarningsDate:  PlaceholderValue,
		},
	}

	if q != nil {
		v.Price = fmt.Sprintf("%.2f", q.Price)
		v.Finance.PreviousClose = fmt.Sprintf("%.2f", q.PreviousClose)
		v.Finance.Open = format.Price(q.Open)
		v.Finance.Volume = count(q.Volume)
		v.Finance.AvgVolume3M = count(q.AvgVolume3M)
		if q.DayRange != "" {
			v.Finance.DayRange = q.DayRange
		}
		v.Finance.Ask = sized(q.Ask, q.AskSize)
		v.Finance.Bid = sized(q.Bid, q.BidSize)
		if q.MarketCap != nil {
			v.Finance.MarketCap = format.Human(float64(*q.MarketCap))
		}
		v.Finance.TrailingPE = format.Price(q.TrailingPE)
		v.Finance.EPS = format.Price(q.EPS)
		if q.Week52Low != nil && q.Week52High != nil {
			v.Finance.Week52Range = fmt.Sprintf("%.2f - %.2f", *q.Week52Low, *q.Week52High)
		}
		if !q.EarningsStart.IsZero() && !q.EarningsEnd.IsZero() {
			v.Finance.EarningsDate = fmt.Sprintf("%s - %s",
				q.EarningsStart.Format("Jan 02"), q.EarningsEnd.Format("Jan 02, 2006"))
		}
	}

	if r != nil {
		v.Ratios.QuickRatio = ratio(r.QuickRatio)
		v.Ratios.PriceEarnings = ratio(r.PriceEarnings)
		v.Ratios.DebtEquity = ratio(r.DebtEquity)
		v.Ratios.GrossMargin = ratio(r.GrossMargin)
		v.Ratios.NetProfitMargin = ratio(r.NetProfitMargin)
		v.Ratios.InventoryTurnover = ratio(r.InventoryTurnover)
	}

	return v
}

// NewESGView formats sustainability scores for display.
func NewESGView(s *model.ESGScores) *ESGView {
	if s == nil {
		return &ESGView{
			Total:       PlaceholderFeature,
			Percentile:  PlaceholderValue,
			Environment: PlaceholderValue,
			Social:      PlaceholderValue,
			Governance:  PlaceholderValue,
		}
	}
	return &ESGView{
		Total:       fmt.Sprintf("%.1f", s.Total),
		Percentile:  fmt.Sprintf("%.0f", s.Percentile),
		Environment: fmt.Sprintf("%.1f", s.Environment),
		Social:      fmt.Sprintf("%.1f", s.Social),
		Governance:  fmt.Sprintf("%.1f", s.Governance),
	}
}

// ratingLabels maps the 1..5 analyst recommendation scale to its wording.
var ratingLabels = []string{"Strong Buy", "Buy", "Hold", "Underperform", "Sell"}

// NewRatingView formats an analyst recommendation score. Scores outside the
// 1..5 scale render the feature placeholder.
func NewRatingView(score float64) *RatingView {
	if score < 1 || score > 5 {
		return &RatingView{Label: PlaceholderFeature}
	}
	idx := int(score+0.5) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ratingLabels) {
		idx = len(ratingLabels) - 1
	}
	return &RatingView{Score: score, Label: ratingLabels[idx]}
}
