// Package market fetches quotes, history, news and company metrics from
// external data sources. Every call can fail; callers treat any error as
// "data unavailable" and degrade to placeholders.
package market

import (
	"context"

	"github.com/s0v1x/EULERA/internal/model"
)

// Provider defines the market-data surface the dashboard consumes.
type Provider interface {
	// History fetches bars for the symbol over a Yahoo-style period
	// ("1d", "6mo", "ytd", ...) and interval ("1m", "1d", ...).
	History(ctx context.Context, symbol, period, interval string) (*model.PriceSeries, error)
	// Quote fetches the regular-market snapshot for the symbol.
	Quote(ctx context.Context, symbol string) (*model.Quote, error)
	// MarketStatus reports the venue's current session state.
	MarketStatus(ctx context.Context) (model.SessionState, error)
	// News fetches recent headlines for the symbol.
	News(ctx context.Context, symbol string) ([]model.NewsItem, error)
	// ESG fetches sustainability scores for the symbol.
	ESG(ctx context.Context, symbol string) (*model.ESGScores, error)
	// AnalystRating fetches the average analyst recommendation on the
	// 1 (strong buy) .. 5 (sell) scale.
	AnalystRating(ctx context.Context, symbol string) (float64, error)
	// Currencies fetches the FX ticker-strip entries.
	Currencies(ctx context.Context) ([]model.CurrencyQuote, error)
	Name() string
}

// RatiosProvider fetches TTM fundamental ratios; a separate capability
// because it is backed by a different upstream than the quote feed.
type RatiosProvider interface {
	Ratios(ctx context.Context, symbol string) (*model.Ratios, error)
}

// SpotScraper extracts a single live price point from a quote web page.
// A structural mismatch in the page is an error, never a crash.
type SpotScraper interface {
	Spot(ctx context.Context, symbol string, state model.SessionState) (float64, error)
}
