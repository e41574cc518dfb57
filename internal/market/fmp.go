package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/s0v1x/EULERA/internal/model"
)

const defaultFMPBase = "https://financialmodelingprep.com"

// FMPClient fetches TTM fundamental ratios from Financial Modeling Prep.
type FMPClient struct {
	Client  *http.Client
	BaseURL string
	APIKey  string
}

// NewFMPClient creates a ratios client.
func NewFMPClient(apiKey string) *FMPClient {
	return &FMPClient{
		Client:  &http.Client{Timeout: 15 * time.Second},
		BaseURL: defaultFMPBase,
		APIKey:  apiKey,
	}
}

type fmpRatios struct {
	QuickRatio        *float64 `json:"quickRatioTTM"`
	PriceEarnings     *float64 `json:"priceEarningsRatioTTM"`
	DebtEquity        *float64 `json:"debtEquityRatioTTM"`
	GrossMargin       *float64 `json:"grossProfitMarginTTM"`
	NetProfitMargin   *float64 `json:"netProfitMarginTTM"`
	InventoryTurnover *float64 `json:"inventoryTurnoverTTM"`
}

// Ratios fetches the TTM ratios for one symbol. An empty response array is
// "data unavailable".
func (c *FMPClient) Ratios(ctx context.Context, symbol string) (*model.Ratios, error) {
	u := fmt.Sprintf("%s/api/v3/ratios-ttm/%s?apikey=%s",
		c.BaseURL, url.PathEscape(symbol), url.QueryEscape(c.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fmp fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fmp read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fmp: status %d", resp.StatusCode)
	}

	var out []fmpRatios
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("fmp decode: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("fmp: no ratios for %s", symbol)
	}
	r := out[0]
	return &model.Ratios{
		QuickRatio:        r.QuickRatio,
		PriceEarnings:     r.PriceEarnings,
		DebtEquity:        r.DebtEquity,
		GrossMargin:       r.GrossMargin,
		NetProfitMargin:   r.NetProfitMargin,
		InventoryTurnover: r.InventoryTurnover,
	}, nil
}
