package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/s0v1x/EULERA/internal/chart"
	"github.com/s0v1x/EULERA/internal/config"
	"github.com/s0v1x/EULERA/internal/dashboard"
	"github.com/s0v1x/EULERA/internal/forecast"
	"github.com/s0v1x/EULERA/internal/market"
	"github.com/s0v1x/EULERA/internal/notifier"
	"github.com/s0v1x/EULERA/internal/recorder"
	"github.com/s0v1x/EULERA/internal/scheduler"
	"github.com/s0v1x/EULERA/internal/session"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the dashboard refresh loop",
	Long: `Start the dashboard: an initial full refresh followed by the periodic
per-class refresh tasks, until interrupted.`,
	RunE: runRun,
}

var runConfigPath string

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "configs/config.yaml", "path to config file")
}

func runRun(cmd *cobra.Command, args []string) error {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] Eulera starting...")

	// .env is optional; real environment wins either way.
	_ = godotenv.Load(".env")

	cfgPath := runConfigPath
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	provider := market.NewYahooProvider(cfg.Proxy)
	if cfg.Market.QueryBase != "" {
		provider.QueryBase = cfg.Market.QueryBase
	}
	if cfg.Market.RSSBase != "" {
		provider.RSSBase = cfg.Market.RSSBase
	}
	log.Printf("[INFO] data source: %s", provider.Name())

	var ratios market.RatiosProvider
	if cfg.FMP.APIKey != "" {
		fmp := market.NewFMPClient(cfg.FMP.APIKey)
		if cfg.FMP.BaseURL != "" {
			fmp.BaseURL = cfg.FMP.BaseURL
		}
		ratios = fmp
	} else {
		log.Println("[WARN] no FMP API key, ratios panel disabled")
	}

	scraper := market.NewQuotePageScraper(cfg.Proxy)
	fc := forecast.NewClient(cfg.Forecast.BaseURL)

	tracker, err := forecast.NewTracker(cfg.Forecast.HistoryFile)
	if err != nil {
		log.Fatalf("[FATAL] init forecast tracker: %v", err)
	}

	clock, err := session.NewClock(cfg.Venue)
	if err != nil {
		log.Fatalf("[FATAL] init session clock: %v", err)
	}
	clock.WithCountdownWindow(cfg.Session.CountdownWindow)

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	presenter := dashboard.MultiPresenter{dashboard.NewLogPresenter()}
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		presenter = append(presenter, notifier.NewDashboardAlerts(ctx, tn))
		log.Println("[INFO] Telegram alerts enabled")
	}

	ctrl := dashboard.NewController(dashboard.Deps{
		Provider:        provider,
		Ratios:          ratios,
		Scraper:         scraper,
		Forecast:        fc,
		Tracker:         tracker,
		Clock:           clock,
		Recorder:        rec,
		Presenter:       presenter,
		ForecastTicker:  cfg.ForecastTicker,
		ResampleMinBars: cfg.Chart.ResampleMinBars,
	}, dashboard.Selection{
		Company:  cfg.DefaultCompany,
		Duration: "1mo",
		Style:    chart.StyleOHLC,
	})

	sched := scheduler.NewScheduler(ctx, ctrl, clock.Venue())
	if err := sched.RegisterAll(scheduler.Periods{
		Quote:     cfg.Refresh.Quote,
		Spot:      cfg.Refresh.Spot,
		Status:    cfg.Refresh.Status,
		Realtime:  cfg.Refresh.Realtime,
		News:      cfg.Refresh.News,
		MainChart: cfg.Refresh.MainChart,
	}); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}

	go sched.RunInitial()
	sched.Start()
	defer sched.Stop()

	log.Println("[INFO] Eulera is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] Eulera stopped")
	return nil
}
