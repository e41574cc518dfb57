package model

import "time"

// Quote holds the regular-market snapshot for one symbol. Optional fields use
// pointers so a missing upstream value can be rendered as "--" instead of 0.
type Quote struct {
	Symbol        string
	Price         float64
	PreviousClose float64
	Open          *float64
	Volume        *int64
	AvgVolume3M   *int64
	DayRange      string
	Ask           *float64
	AskSize       *int64
	Bid           *float64
	BidSize       *int64
	MarketCap     *int64
	TrailingPE    *float64
	EPS           *float64
	Week52Low     *float64
	Week52High    *float64
	EarningsStart time.Time
	EarningsEnd   time.Time
}

// Ratios holds the TTM fundamental ratios shown in the top bar.
type Ratios struct {
	QuickRatio        *float64
	PriceEarnings     *float64
	DebtEquity        *float64
	GrossMargin       *float64
	NetProfitMargin   *float64
	InventoryTurnover *float64
}

// ESGScores holds sustainability risk scores for one company.
type ESGScores struct {
	Total       float64
	Percentile  float64
	Environment float64
	Social      float64
	Governance  float64
}

// NewsItem is a single headline.
type NewsItem struct {
	Title       string
	Link        string
	PublishedAt time.Time
}

// CurrencyQuote is one entry of the currencies ticker strip.
type CurrencyQuote struct {
	Name          string
	ChangePercent string
}
