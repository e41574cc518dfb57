package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Companies      []string `yaml:"companies"`
	DefaultCompany string   `yaml:"default_company"`
	ForecastTicker string   `yaml:"forecast_ticker"`
	Venue          string   `yaml:"venue"`
	Market         struct {
		QueryBase string `yaml:"query_base"`
		RSSBase   string `yaml:"rss_base"`
	} `yaml:"market"`
	FMP struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"fmp"`
	Forecast struct {
		BaseURL     string `yaml:"base_url"`
		HistoryFile string `yaml:"history_file"`
	} `yaml:"forecast"`
	Refresh struct {
		Quote     time.Duration `yaml:"quote"`
		Spot      time.Duration `yaml:"spot"`
		Status    time.Duration `yaml:"status"`
		Realtime  time.Duration `yaml:"realtime"`
		News      time.Duration `yaml:"news"`
		MainChart time.Duration `yaml:"main_chart"`
	} `yaml:"refresh"`
	Chart struct {
		ResampleMinBars int `yaml:"resample_min_bars"`
	} `yaml:"chart"`
	Session struct {
		CountdownWindow time.Duration `yaml:"countdown_window"`
	} `yaml:"session"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("FMP_API_KEY"); v != "" {
		cfg.FMP.APIKey = v
	}
	if v := os.Getenv("FORECAST_BASE_URL"); v != "" {
		cfg.Forecast.BaseURL = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("DEFAULT_COMPANY"); v != "" {
		cfg.DefaultCompany = v
	}
	if v := os.Getenv("RESAMPLE_MIN_BARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Chart.ResampleMinBars = n
		}
	}

	// Defaults
	if len(cfg.Companies) == 0 {
		cfg.Companies = []string{"AAPL", "TSLA", "FB", "AMZN", "GOOG", "TWTR", "NFLX"}
	}
	if cfg.DefaultCompany == "" {
		cfg.DefaultCompany = cfg.Companies[0]
	}
	if cfg.ForecastTicker == "" {
		cfg.ForecastTicker = "AAPL"
	}
	if cfg.Venue == "" {
		cfg.Venue = "America/New_York"
	}
	if cfg.FMP.BaseURL == "" {
		cfg.FMP.BaseURL = "https://financialmodelingprep.com"
	}
	if cfg.Forecast.BaseURL == "" {
		cfg.Forecast.BaseURL = "http://localhost:8050"
	}
	if cfg.Forecast.HistoryFile == "" {
		cfg.Forecast.HistoryFile = "data/forecast_history.csv"
	}
	if cfg.Refresh.Quote == 0 {
		cfg.Refresh.Quote = 30 * time.Second
	}
	if cfg.Refresh.Spot == 0 {
		cfg.Refresh.Spot = 5 * time.Second
	}
	if cfg.Refresh.Status == 0 {
		cfg.Refresh.Status = 20 * time.Second
	}
	if cfg.Refresh.Realtime == 0 {
		cfg.Refresh.Realtime = 40 * time.Second
	}
	if cfg.Refresh.News == 0 {
		cfg.Refresh.News = 5 * time.Minute
	}
	if cfg.Refresh.MainChart == 0 {
		cfg.Refresh.MainChart = 24 * time.Hour
	}
	if cfg.Chart.ResampleMinBars == 0 {
		cfg.Chart.ResampleMinBars = 3
	}
	if cfg.Session.CountdownWindow == 0 {
		cfg.Session.CountdownWindow = 2 * time.Hour
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/eulera.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if len(c.Companies) == 0 {
		return fmt.Errorf("companies must not be empty")
	}
	found := false
	for _, sym := range c.Companies {
		if sym == c.DefaultCompany {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("default_company %q is not in companies", c.DefaultCompany)
	}
	if _, err := time.LoadLocation(c.Venue); err != nil {
		return fmt.Errorf("venue: %w", err)
	}
	if c.Forecast.BaseURL == "" {
		return fmt.Errorf("forecast.base_url is required")
	}
	if c.Chart.ResampleMinBars < 0 {
		return fmt.Errorf("chart.resample_min_bars must not be negative")
	}
	return nil
}
