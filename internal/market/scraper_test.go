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

const quotePage = `<html><body>
	<span class="Trsdu(0.3s) Fw(b) Fz(36px) Mb(-4px) D(ib)">1,187.30</span>
	<span class="C($primaryColor) Fz(24px) Fw(b)">188.05</span>
</body></html>`

func scraperFor(t *testing.T, page string) *QuotePageScraper {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(page))
	}))
	t.Cleanup(srv.Close)

	s := NewQuotePageScraper("")
	s.BaseURL = srv.URL
	return s
}

func TestSpot_RegularHours(t *testing.T) {
	s := scraperFor(t, quotePage)

	price, err := s.Spot(context.Background(), "AAPL", model.SessionOpen)
	require.NoError(t, err)
	assert.Equal(t, 1187.30, price) // comma stripped
}

func TestSpot_AfterHours(t *testing.T) {
	s := scraperFor(t, quotePage)

	price, err := s.Spot(context.Background(), "AAPL", model.SessionPost)
	require.NoError(t, err)
	assert.Equal(t, 188.05, price)
}

func TestSpot_StructuralMismatch(t *testing.T) {
	s := scraperFor(t, `<html><body><span class="something-else">187.30</span></body></html>`)

	_, err := s.Spot(context.Background(), "AAPL", model.SessionOpen)
	assert.Error(t, err)
}

func TestSpot_MalformedNumber(t *testing.T) {
	s := scraperFor(t, `<html><body><span class="Trsdu(0.3s) Fw(b) Fz(36px) Mb(-4px) D(ib)">N/A</span></body></html>`)

	_, err := s.Spot(context.Background(), "AAPL", model.SessionOpen)
	assert.Error(t, err)
}
