package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Len(t, cfg.Companies, 7)
	assert.Equal(t, "AAPL", cfg.DefaultCompany)
	assert.Equal(t, "AAPL", cfg.ForecastTicker)
	assert.Equal(t, "America/New_York", cfg.Venue)
	assert.Equal(t, 30*time.Second, cfg.Refresh.Quote)
	assert.Equal(t, 5*time.Minute, cfg.Refresh.News)
	assert.Equal(t, 3, cfg.Chart.ResampleMinBars)
	assert.Equal(t, 2*time.Hour, cfg.Session.CountdownWindow)
	assert.Equal(t, "data/eulera.db", cfg.Database.SQLitePath)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	body := `
companies: [AAPL, MSFT]
default_company: MSFT
venue: Europe/London
refresh:
  quote: 10s
  news: 2m
chart:
  resample_min_bars: 5
database:
  sqlite_path: /tmp/test.db
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "MSFT"}, cfg.Companies)
	assert.Equal(t, "MSFT", cfg.DefaultCompany)
	assert.Equal(t, "Europe/London", cfg.Venue)
	assert.Equal(t, 10*time.Second, cfg.Refresh.Quote)
	assert.Equal(t, 2*time.Minute, cfg.Refresh.News)
	assert.Equal(t, 5, cfg.Chart.ResampleMinBars)
	assert.Equal(t, "/tmp/test.db", cfg.Database.SQLitePath)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FMP_API_KEY", "secret")
	t.Setenv("DEFAULT_COMPANY", "TSLA")
	t.Setenv("RESAMPLE_MIN_BARS", "7")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.FMP.APIKey)
	assert.Equal(t, "TSLA", cfg.DefaultCompany)
	assert.Equal(t, 7, cfg.Chart.ResampleMinBars)
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	cfg.DefaultCompany = "NOPE"
	assert.Error(t, cfg.Validate())

	cfg.DefaultCompany = "AAPL"
	cfg.Venue = "Mars/Olympus"
	assert.Error(t, cfg.Validate())
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("companies: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
