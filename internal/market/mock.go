package market

import (
	"context"
	"time"

	"github.com/s0v1x/EULERA/internal/model"
)

// MockProvider returns controllable fixed data for development and testing.
// Any Err field set makes the corresponding call fail.
type MockProvider struct {
	Series     *model.PriceSeries
	QuoteData  *model.Quote
	Status     model.SessionState
	NewsItems  []model.NewsItem
	ESGData    *model.ESGScores
	Rating     float64
	Currency   []model.CurrencyQuote
	Err        error
	HistoryErr error
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) History(_ context.Context, symbol, period, interval string) (*model.PriceSeries, error) {
	if m.HistoryErr != nil {
		return nil, m.HistoryErr
	}
	if m.Series != nil {
		return m.Series, nil
	}
	return GenerateSeries(symbol, interval, 100, 30), nil
}

func (m *MockProvider) Quote(_ context.Context, symbol string) (*model.Quote, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.QuoteData != nil {
		return m.QuoteData, nil
	}
	return &model.Quote{Symbol: symbol, Price: 100, PreviousClose: 99}, nil
}

func (m *MockProvider) MarketStatus(_ context.Context) (model.SessionState, error) {
	if m.Err != nil {
		return model.SessionClosed, m.Err
	}
	if m.Status == "" {
		return model.SessionClosed, nil
	}
	return m.Status, nil
}

func (m *MockProvider) News(_ context.Context, _ string) ([]model.NewsItem, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.NewsItems, nil
}

func (m *MockProvider) ESG(_ context.Context, _ string) (*model.ESGScores, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.ESGData == nil {
		return &model.ESGScores{Total: 16.5, Percentile: 14, Environment: 0.5, Social: 8.4, Governance: 7.7}, nil
	}
	return m.ESGData, nil
}

func (m *MockProvider) AnalystRating(_ context.Context, _ string) (float64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	if m.Rating == 0 {
		return 2.0, nil
	}
	return m.Rating, nil
}

func (m *MockProvider) Currencies(_ context.Context) ([]model.CurrencyQuote, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Currency, nil
}

// GenerateSeries builds a deterministic bar series around a base price.
func GenerateSeries(symbol, interval string, basePrice float64, count int) *model.PriceSeries {
	bars := make([]model.Bar, count)
	start := time.Now().UTC().AddDate(0, 0, -count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return &model.PriceSeries{Symbol: symbol, Interval: interval, Bars: bars, FetchedAt: time.Now()}
}
