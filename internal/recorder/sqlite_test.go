package recorder

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eulera.db")
	r, err := NewSQLiteRecorder(path)
	require.NoError(t, err)
	defer r.Close()

	require.NoError(t, r.RecordQuote(&QuoteSnapshot{
		Symbol:        "AAPL",
		Price:         188.05,
		PreviousClose: 187.40,
		SessionState:  "OPEN",
	}))
	require.NoError(t, r.RecordForecast(&ForecastEvent{
		Symbol:        "AAPL",
		ForecastPrice: 151.5,
		MinConfidence: 148.2,
		MaxConfidence: 154.8,
		Appended:      true,
	}))
	require.NoError(t, r.RecordModelUpdate(&ModelUpdateEvent{Symbol: "AAPL", OK: true}))
	require.NoError(t, r.RecordFailure(&RefreshFailure{Task: "news", Symbol: "TSLA", Reason: "timeout"}))

	var n int
	require.NoError(t, r.db.QueryRow("SELECT COUNT(*) FROM quote_snapshots").Scan(&n))
	assert.Equal(t, 1, n)

	var price float64
	var appended bool
	require.NoError(t, r.db.QueryRow(
		"SELECT forecast_price, appended FROM forecast_events WHERE symbol = ?", "AAPL",
	).Scan(&price, &appended))
	assert.Equal(t, 151.5, price)
	assert.True(t, appended)
}

func TestSQLiteRecorder_MigrateIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eulera.db")
	r, err := NewSQLiteRecorder(path)
	require.NoError(t, err)
	require.NoError(t, r.Close())

	// Reopening runs migrations against the existing schema.
	r2, err := NewSQLiteRecorder(path)
	require.NoError(t, err)
	assert.NoError(t, r2.Close())
}
