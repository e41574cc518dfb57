package market

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/s0v1x/EULERA/internal/model"
)

const (
	defaultQueryBase = "https://query1.finance.yahoo.com"
	defaultRSSBase   = "https://feeds.finance.yahoo.com"
	userAgent        = "Mozilla/5.0"
)

// currencyPairs backs the FX ticker strips.
var currencyPairs = []string{
	"EURUSD=X", "JPY=X", "GBPUSD=X", "AUDUSD=X", "NZDUSD=X", "EURJPY=X",
	"GBPJPY=X", "EURGBP=X", "EURCAD=X", "EURSEK=X", "EURCHF=X", "EURHUF=X",
	"CNY=X", "HKD=X", "SGD=X", "INR=X", "MXN=X", "PHP=X",
	"IDR=X", "THB=X", "MYR=X", "ZAR=X", "RUB=X", "CHF=X",
}

// YahooProvider implements Provider against the Yahoo Finance public API.
type YahooProvider struct {
	Client    *http.Client
	QueryBase string
	RSSBase   string
}

// NewYahooProvider creates a Yahoo Finance provider. proxyURL may be empty.
func NewYahooProvider(proxyURL string) *YahooProvider {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooProvider{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		QueryBase: defaultQueryBase,
		RSSBase:   defaultRSSBase,
	}
}

func (p *YahooProvider) Name() string { return "yahoo" }

// yahooChart is the response structure of the chart API. Quote arrays carry
// nulls for missing bars, hence interface{} elements.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				MarketState        string  `json:"marketState"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				PreviousClose      float64 `json:"chartPreviousClose"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (p *YahooProvider) get(ctx context.Context, u string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.Client.Do(req)
	if err != nil {
		return fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("yahoo decode: %w", err)
	}
	return nil
}

func (p *YahooProvider) fetchChart(ctx context.Context, symbol, period, interval string) (*yahooChart, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		p.QueryBase, url.PathEscape(symbol), url.QueryEscape(interval), url.QueryEscape(period))
	var chart yahooChart
	if err := p.get(ctx, u, &chart); err != nil {
		return nil, err
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned")
	}
	return &chart, nil
}

// History fetches OHLCV bars, skipping null bars (holidays etc.) and sorting
// ascending by timestamp.
func (p *YahooProvider) History(ctx context.Context, symbol, period, interval string) (*model.PriceSeries, error) {
	chart, err := p.fetchChart(ctx, symbol, period, interval)
	if err != nil {
		return nil, err
	}
	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no quote data for %s", symbol)
	}
	quote := result.Indicators.Quote[0]
	bars := make([]model.Bar, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		// A truncated quote array is malformed data, not a crash.
		if i >= len(quote.Open) || i >= len(quote.High) || i >= len(quote.Low) ||
			i >= len(quote.Close) || i >= len(quote.Volume) {
			return nil, fmt.Errorf("yahoo: quote arrays shorter than timestamps for %s", symbol)
		}
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue
		}
		bars = append(bars, model.Bar{
			Time:   time.Unix(ts, 0).UTC(),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: toFloat(quote.Volume[i]),
		})
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })

	return &model.PriceSeries{
		Symbol:    symbol,
		Interval:  interval,
		Bars:      bars,
		FetchedAt: time.Now(),
	}, nil
}

// MarketStatus reads the session state from the chart metadata of a liquid
// reference symbol.
func (p *YahooProvider) MarketStatus(ctx context.Context) (model.SessionState, error) {
	chart, err := p.fetchChart(ctx, "AAPL", "1d", "1d")
	if err != nil {
		return model.SessionClosed, err
	}
	return model.ParseSessionState(chart.Chart.Result[0].Meta.MarketState), nil
}

type yahooQuote struct {
	QuoteResponse struct {
		Result []struct {
			Symbol                string   `json:"symbol"`
			RegularMarketPrice    float64  `json:"regularMarketPrice"`
			PreviousClose         float64  `json:"regularMarketPreviousClose"`
			Open                  *float64 `json:"regularMarketOpen"`
			Volume                *int64   `json:"regularMarketVolume"`
			AvgVolume3M           *int64   `json:"averageDailyVolume3Month"`
			DayRange              string   `json:"regularMarketDayRange"`
			Ask                   *float64 `json:"ask"`
			AskSize               *int64   `json:"askSize"`
			Bid                   *float64 `json:"bid"`
			BidSize               *int64   `json:"bidSize"`
			MarketCap             *int64   `json:"marketCap"`
			TrailingPE            *float64 `json:"trailingPE"`
			EPS                   *float64 `json:"epsTrailingTwelveMonths"`
			Week52Low             *float64 `json:"fiftyTwoWeekLow"`
			Week52High            *float64 `json:"fiftyTwoWeekHigh"`
			EarningsStart         int64    `json:"earningsTimestampStart"`
			EarningsEnd           int64    `json:"earningsTimestampEnd"`
			Name                  string   `json:"shortName"`
			ChangePercent         *float64 `json:"regularMarketChangePercent"`
			AverageAnalystRating  string   `json:"averageAnalystRating"`
		} `json:"result"`
	} `json:"quoteResponse"`
}

func (p *YahooProvider) fetchQuotes(ctx context.Context, symbols string) (*yahooQuote, error) {
	u := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", p.QueryBase, url.QueryEscape(symbols))
	var q yahooQuote
	if err := p.get(ctx, u, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (p *YahooProvider) Quote(ctx context.Context, symbol string) (*model.Quote, error) {
	q, err := p.fetchQuotes(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if len(q.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no quote for %s", symbol)
	}
	r := q.QuoteResponse.Result[0]

	quote := &model.Quote{
		Symbol:        symbol,
		Price:         r.RegularMarketPrice,
		PreviousClose: r.PreviousClose,
		Open:          r.Open,
		Volume:        r.Volume,
		AvgVolume3M:   r.AvgVolume3M,
		DayRange:      r.DayRange,
		Ask:           r.Ask,
		AskSize:       r.AskSize,
		Bid:           r.Bid,
		BidSize:       r.BidSize,
		MarketCap:     r.MarketCap,
		TrailingPE:    r.TrailingPE,
		EPS:           r.EPS,
		Week52Low:     r.Week52Low,
		Week52High:    r.Week52High,
	}
	if r.EarningsStart > 0 {
		quote.EarningsStart = time.Unix(r.EarningsStart, 0).UTC()
	}
	if r.EarningsEnd > 0 {
		quote.EarningsEnd = time.Unix(r.EarningsEnd, 0).UTC()
	}
	return quote, nil
}

// AnalystRating parses the "2.3 - Buy" style average rating string.
func (p *YahooProvider) AnalystRating(ctx context.Context, symbol string) (float64, error) {
	q, err := p.fetchQuotes(ctx, symbol)
	if err != nil {
		return 0, err
	}
	if len(q.QuoteResponse.Result) == 0 {
		return 0, fmt.Errorf("yahoo: no quote for %s", symbol)
	}
	var rating float64
	if _, err := fmt.Sscanf(q.QuoteResponse.Result[0].AverageAnalystRating, "%f", &rating); err != nil {
		return 0, fmt.Errorf("yahoo: parse analyst rating: %w", err)
	}
	return rating, nil
}

func (p *YahooProvider) Currencies(ctx context.Context) ([]model.CurrencyQuote, error) {
	symbols := ""
	for i, s := range currencyPairs {
		if i > 0 {
			symbols += ","
		}
		symbols += s
	}
	q, err := p.fetchQuotes(ctx, symbols)
	if err != nil {
		return nil, err
	}
	out := make([]model.CurrencyQuote, 0, len(q.QuoteResponse.Result))
	for _, r := range q.QuoteResponse.Result {
		change := "--"
		if r.ChangePercent != nil {
			change = fmt.Sprintf("%+.2f%%", *r.ChangePercent)
		}
		name := r.Name
		if name == "" {
			name = r.Symbol
		}
		out = append(out, model.CurrencyQuote{Name: name, ChangePercent: change})
	}
	return out, nil
}

type yahooESG struct {
	QuoteSummary struct {
		Result []struct {
			ESGScores struct {
				TotalEsg struct {
					Raw float64 `json:"raw"`
				} `json:"totalEsg"`
				Percentile struct {
					Raw float64 `json:"raw"`
				} `json:"percentile"`
				EnvironmentScore struct {
					Raw float64 `json:"raw"`
				} `json:"environmentScore"`
				SocialScore struct {
					Raw float64 `json:"raw"`
				} `json:"socialScore"`
				GovernanceScore struct {
					Raw float64 `json:"raw"`
				} `json:"governanceScore"`
			} `json:"esgScores"`
		} `json:"result"`
	} `json:"quoteSummary"`
}

func (p *YahooProvider) ESG(ctx context.Context, symbol string) (*model.ESGScores, error) {
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=esgScores",
		p.QueryBase, url.PathEscape(symbol))
	var raw yahooESG
	if err := p.get(ctx, u, &raw); err != nil {
		return nil, err
	}
	if len(raw.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no esg data for %s", symbol)
	}
	s := raw.QuoteSummary.Result[0].ESGScores
	return &model.ESGScores{
		Total:       s.TotalEsg.Raw,
		Percentile:  s.Percentile.Raw,
		Environment: s.EnvironmentScore.Raw,
		Social:      s.SocialScore.Raw,
		Governance:  s.GovernanceScore.Raw,
	}, nil
}

// rssFeed models the Yahoo Finance headline feed.
type rssFeed struct {
	Channel struct {
		Items []struct {
			Title   string `xml:"title"`
			Link    string `xml:"link"`
			PubDate string `xml:"pubDate"`
		} `xml:"item"`
	} `xml:"channel"`
}

func (p *YahooProvider) News(ctx context.Context, symbol string) ([]model.NewsItem, error) {
	u := fmt.Sprintf("%s/rss/2.0/headline?s=%s&region=US&lang=en-US", p.RSSBase, url.QueryEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news: status %d", resp.StatusCode)
	}

	var feed rssFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("news decode: %w", err)
	}

	items := make([]model.NewsItem, 0, len(feed.Channel.Items))
	for _, it := range feed.Channel.Items {
		item := model.NewsItem{Title: it.Title, Link: it.Link}
		if ts, err := time.Parse(time.RFC1123Z, it.PubDate); err == nil {
			item.PublishedAt = ts
		}
		items = append(items, item)
	}
	return items, nil
}
