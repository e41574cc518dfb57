package market

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/s0v1x/EULERA/internal/model"
)

// Page element classes carrying the live price. The after-hours quote lives
// in a different span than the regular-hours one.
const (
	afterHoursPriceClass = "C($primaryColor) Fz(24px) Fw(b)"
	regularPriceClass    = "Trsdu(0.3s) Fw(b) Fz(36px) Mb(-4px) D(ib)"
)

// QuotePageScraper extracts the live price from the Yahoo Finance quote page,
// used for the pre/post-market readout where no API field exists.
type QuotePageScraper struct {
	Client  *http.Client
	BaseURL string
}

// NewQuotePageScraper creates a scraper. proxyURL may be empty.
func NewQuotePageScraper(proxyURL string) *QuotePageScraper {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &QuotePageScraper{
		Client: &http.Client{
			Timeout:   20 * time.Second,
			Transport: transport,
		},
		BaseURL: "https://finance.yahoo.com",
	}
}

// Spot fetches and parses the quote page. A missing or malformed price
// element surfaces as an error; the caller renders a placeholder.
func (s *QuotePageScraper) Spot(ctx context.Context, symbol string, state model.SessionState) (float64, error) {
	u := fmt.Sprintf("%s/quote/%s?p=%s", s.BaseURL, url.PathEscape(symbol), url.QueryEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("scrape fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("scrape: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("scrape parse: %w", err)
	}

	class := regularPriceClass
	if state.AfterHours() {
		class = afterHoursPriceClass
	}

	sel := doc.Find("span").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.AttrOr("class", "") == class
	})
	if sel.Length() == 0 {
		return 0, fmt.Errorf("scrape: price element not found for %s", symbol)
	}

	text := strings.ReplaceAll(strings.TrimSpace(sel.First().Text()), ",", "")
	price, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("scrape: parse price %q: %w", text, err)
	}
	return price, nil
}
