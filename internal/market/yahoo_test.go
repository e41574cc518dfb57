package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0v1x/EULERA/internal/model"
)

const chartFixture = `{"chart":{"result":[{
	"meta":{"marketState":"REGULAR","regularMarketPrice":187.3,"chartPreviousClose":185.1},
	"timestamp":[1714996800,1715083200,1715169600,1715256000],
	"indicators":{"quote":[{
		"open":[182.1,null,183.0,184.2],
		"high":[183.5,null,184.1,185.9],
		"low":[181.0,null,182.2,183.8],
		"close":[183.0,null,183.9,185.5],
		"volume":[50000000,null,48000000,51000000]
	}]}}],"error":null}}`

const quoteFixture = `{"quoteResponse":{"result":[{
	"symbol":"AAPL","regularMarketPrice":187.3,"regularMarketPreviousClose":185.1,
	"regularMarketOpen":186.0,"regularMarketVolume":52000000,
	"averageDailyVolume3Month":60000000,"regularMarketDayRange":"185.2 - 188.0",
	"ask":187.4,"askSize":9,"bid":187.2,"bidSize":11,
	"marketCap":2870000000000,"trailingPE":29.1,"epsTrailingTwelveMonths":6.43,
	"fiftyTwoWeekLow":155.9,"fiftyTwoWeekHigh":199.6,
	"earningsTimestampStart":1722470400,"earningsTimestampEnd":1722902400,
	"averageAnalystRating":"2.0 - Buy"}]}}`

func yahooServer(t *testing.T, chartBody, quoteBody string) *YahooProvider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case len(r.URL.Path) >= len("/v8/finance/chart/") && r.URL.Path[:18] == "/v8/finance/chart/":
			w.Write([]byte(chartBody))
		case r.URL.Path == "/v7/finance/quote":
			w.Write([]byte(quoteBody))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	p := NewYahooProvider("")
	p.QueryBase = srv.URL
	return p
}

func TestHistory_DecodesAndSkipsNullBars(t *testing.T) {
	p := yahooServer(t, chartFixture, quoteFixture)

	series, err := p.History(context.Background(), "AAPL", "1mo", "1d")
	require.NoError(t, err)
	require.Equal(t, 3, series.Len()) // null bar dropped
	assert.Equal(t, "AAPL", series.Symbol)
	assert.Equal(t, 183.0, series.Bars[0].Close)
	assert.True(t, series.Bars[0].Time.Before(series.Bars[1].Time))
}

func TestHistory_APIError(t *testing.T) {
	body := `{"chart":{"result":[],"error":{"code":"Not Found","description":"No data found"}}}`
	p := yahooServer(t, body, quoteFixture)

	_, err := p.History(context.Background(), "NOPE", "1mo", "1d")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No data found")
}

func TestHistory_TruncatedQuoteArrays(t *testing.T) {
	// Four timestamps but only two quote entries must surface as an error,
	// not a panic.
	body := `{"chart":{"result":[{
		"meta":{"marketState":"REGULAR"},
		"timestamp":[1714996800,1715083200,1715169600,1715256000],
		"indicators":{"quote":[{
			"open":[182.1,183.0],
			"high":[183.5,184.1],
			"low":[181.0,182.2],
			"close":[183.0,183.9],
			"volume":[50000000,48000000]
		}]}}],"error":null}}`
	p := yahooServer(t, body, quoteFixture)

	_, err := p.History(context.Background(), "AAPL", "1mo", "1d")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shorter than timestamps")
}

func TestQuote_Fields(t *testing.T) {
	p := yahooServer(t, chartFixture, quoteFixture)

	q, err := p.Quote(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 187.3, q.Price)
	assert.Equal(t, 185.1, q.PreviousClose)
	require.NotNil(t, q.Volume)
	assert.Equal(t, int64(52000000), *q.Volume)
	require.NotNil(t, q.MarketCap)
	assert.Equal(t, int64(2870000000000), *q.MarketCap)
	assert.False(t, q.EarningsStart.IsZero())
}

func TestQuote_MissingOptionalFields(t *testing.T) {
	body := `{"quoteResponse":{"result":[{"symbol":"AAPL","regularMarketPrice":187.3,"regularMarketPreviousClose":185.1}]}}`
	p := yahooServer(t, chartFixture, body)

	q, err := p.Quote(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Nil(t, q.Volume)
	assert.Nil(t, q.TrailingPE)
	assert.True(t, q.EarningsStart.IsZero())
}

func TestMarketStatus(t *testing.T) {
	p := yahooServer(t, chartFixture, quoteFixture)

	state, err := p.MarketStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.SessionOpen, state)
}

func TestAnalystRating_Parse(t *testing.T) {
	p := yahooServer(t, chartFixture, quoteFixture)

	rating, err := p.AnalystRating(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 2.0, rating)
}

func TestAnalystRating_MalformedIsError(t *testing.T) {
	body := `{"quoteResponse":{"result":[{"symbol":"AAPL","averageAnalystRating":""}]}}`
	p := yahooServer(t, chartFixture, body)

	_, err := p.AnalystRating(context.Background(), "AAPL")
	assert.Error(t, err)
}

func TestNews_ParsesRSS(t *testing.T) {
	rss := `<?xml version="1.0"?><rss version="2.0"><channel>
		<item><title>Apple beats estimates</title><link>https://example.com/a</link>
		<pubDate>Mon, 06 May 2024 12:00:00 +0000</pubDate></item>
		<item><title>New iPhone rumors</title><link>https://example.com/b</link>
		<pubDate>bogus date</pubDate></item>
	</channel></rss>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(rss))
	}))
	defer srv.Close()

	p := NewYahooProvider("")
	p.RSSBase = srv.URL

	items, err := p.News(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Apple beats estimates", items[0].Title)
	assert.False(t, items[0].PublishedAt.IsZero())
	assert.True(t, items[1].PublishedAt.IsZero()) // unparseable date tolerated
}

func TestFMPRatios(t *testing.T) {
	body := `[{"quickRatioTTM":0.98,"priceEarningsRatioTTM":29.1,"debtEquityRatioTTM":1.8,
		"grossProfitMarginTTM":0.44,"netProfitMarginTTM":0.25,"inventoryTurnoverTTM":null}]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	c := NewFMPClient("test-key")
	c.BaseURL = srv.URL

	r, err := c.Ratios(context.Background(), "AAPL")
	require.NoError(t, err)
	require.NotNil(t, r.QuickRatio)
	assert.Equal(t, 0.98, *r.QuickRatio)
	assert.Nil(t, r.InventoryTurnover)
}

func TestFMPRatios_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewFMPClient("test-key")
	c.BaseURL = srv.URL

	_, err := c.Ratios(context.Background(), "AAPL")
	assert.Error(t, err)
}
