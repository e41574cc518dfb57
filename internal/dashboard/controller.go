// Package dashboard binds the user's selection (company, duration, style,
// studies) to the data providers and chart composers, and pushes the
// resulting view models to a Presenter. Every upstream failure degrades to a
// placeholder; a refresh superseded by a newer selection is discarded.
package dashboard

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/s0v1x/EULERA/internal/chart"
	"github.com/s0v1x/EULERA/internal/forecast"
	"github.com/s0v1x/EULERA/internal/indicator"
	"github.com/s0v1x/EULERA/internal/market"
	"github.com/s0v1x/EULERA/internal/model"
	"github.com/s0v1x/EULERA/internal/recorder"
	"github.com/s0v1x/EULERA/internal/session"
	"github.com/s0v1x/EULERA/pkg/id"
)

// Selection is the user's current chart configuration. Studies keep the
// order the user selected them in.
type Selection struct {
	Company  string
	Duration string
	Style    chart.Style
	Studies  []indicator.Study
}

// Presenter receives finished view models. The rendering layer implements
// it; the controller never blocks on it.
type Presenter interface {
	ShowMainChart(spec *chart.Spec)
	ShowRealtimeChart(spec *chart.Spec)
	ShowQuote(view *QuoteView)
	ShowNews(items []model.NewsItem)
	ShowStatus(view *StatusView)
	ShowCompany(info Company)
	ShowESG(view *ESGView)
	ShowRating(view *RatingView)
	ShowForecast(view *ForecastView)
	ShowSpot(price string)
}

// refresh task identities, one sequence counter each
type task int

const (
	taskMainChart task = iota
	taskRealtime
	taskQuote
	taskNews
	taskStatus
	taskCompany
	taskForecast
	taskSpot
	taskCount
)

// maxHeadlines caps the news table at ten rows regardless of how many
// items the feed returns.
const maxHeadlines = 10

func (t task) String() string {
	switch t {
	case taskMainChart:
		return "main_chart"
	case taskRealtime:
		return "realtime"
	case taskQuote:
		return "quote"
	case taskNews:
		return "news"
	case taskStatus:
		return "status"
	case taskCompany:
		return "company"
	case taskForecast:
		return "forecast"
	case taskSpot:
		return "spot"
	default:
		return "unknown"
	}
}

// Deps wires the controller's collaborators.
type Deps struct {
	Provider  market.Provider
	Ratios    market.RatiosProvider
	Scraper   market.SpotScraper
	Forecast  *forecast.Client
	Tracker   *forecast.Tracker
	Clock     *session.Clock
	Recorder  recorder.Recorder
	Presenter Presenter

	ForecastTicker  string
	ResampleMinBars int
}

// Controller drives all dashboard refreshes.
type Controller struct {
	deps Deps

	mu  sync.Mutex
	sel Selection

	// version bumps on every selection change; seq serializes repeated
	// runs of the same task. A result is applied only when both still
	// match the tokens captured at the start of the refresh.
	version atomic.Uint64
	seq     [taskCount]atomic.Uint64
}

// NewController creates a Controller with the given collaborators and an
// initial selection.
func NewController(deps Deps, initial Selection) *Controller {
	if deps.Recorder == nil {
		deps.Recorder = recorder.NewNoopRecorder()
	}
	if deps.ResampleMinBars == 0 {
		deps.ResampleMinBars = chart.DefaultResampleMinBars
	}
	if initial.Duration == "" {
		initial.Duration = "1mo"
	}
	if initial.Style == "" {
		initial.Style = chart.StyleOHLC
	}
	return &Controller{deps: deps, sel: initial}
}

// Selection returns a snapshot of the current selection.
func (c *Controller) Selection() Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	sel := c.sel
	sel.Studies = append([]indicator.Study(nil), c.sel.Studies...)
	return sel
}

func (c *Controller) updateSelection(mut func(*Selection)) {
	c.mu.Lock()
	mut(&c.sel)
	c.mu.Unlock()
	c.version.Add(1)
}

// SetCompany switches the active company. In-flight refreshes for the
// previous company are discarded when they complete.
func (c *Controller) SetCompany(symbol string) {
	c.updateSelection(func(s *Selection) { s.Company = symbol })
}

// SetDuration switches the main-chart period ("7d", "1mo", "3mo", "1y", "5y").
func (c *Controller) SetDuration(period string) {
	c.updateSelection(func(s *Selection) { s.Duration = period })
}

// SetStyle switches the base trace of the price panel.
func (c *Controller) SetStyle(style chart.Style) {
	c.updateSelection(func(s *Selection) { s.Style = style })
}

// SetStudies replaces the selected studies. Order is the user's current
// insertion order and is preserved through to panel layout.
func (c *Controller) SetStudies(studies []indicator.Study) {
	copied := append([]indicator.Study(nil), studies...)
	c.updateSelection(func(s *Selection) { s.Studies = copied })
}

// begin reserves a refresh slot for the task and returns the tokens the
// result must be validated against before presenting.
func (c *Controller) begin(t task) (seqTok, verTok uint64) {
	return c.seq[t].Add(1), c.version.Load()
}

// fresh reports whether a result captured with the given tokens is still the
// one the UI wants.
func (c *Controller) fresh(t task, seqTok, verTok uint64) bool {
	return c.seq[t].Load() == seqTok && c.version.Load() == verTok
}

func (c *Controller) fail(rid string, t task, symbol string, err error) {
	log.Printf("[WARN] %s: %s refresh failed for %s: %v", rid, t, symbol, err)
	if rerr := c.deps.Recorder.RecordFailure(&recorder.RefreshFailure{
		Task:   t.String(),
		Symbol: symbol,
		Reason: err.Error(),
	}); rerr != nil {
		log.Printf("[ERROR] %s: record failure: %v", rid, rerr)
	}
}

// sessionState asks the venue's status feed, falling back to the clock
// schedule when the feed is unavailable.
func (c *Controller) sessionState(ctx context.Context, rid string) model.SessionState {
	st, err := c.deps.Provider.MarketStatus(ctx)
	if err != nil {
		st = c.deps.Clock.CurrentSession()
		log.Printf("[WARN] %s: status feed unavailable, using clock schedule (%s): %v", rid, st, err)
	}
	return st
}

// RefreshMainChart recomposes the historical price chart for the current
// selection. A fetch failure still presents a chart, just an empty one.
func (c *Controller) RefreshMainChart(ctx context.Context) {
	seqTok, verTok := c.begin(taskMainChart)
	rid := id.New()
	sel := c.Selection()

	series, err := c.deps.Provider.History(ctx, sel.Company, sel.Duration, "1d")
	if err != nil {
		c.fail(rid, taskMainChart, sel.Company, err)
		series = &model.PriceSeries{Symbol: sel.Company, Interval: "1d"}
	}
	spec := chart.ComposeMainChart(series, sel.Studies, sel.Style)

	if !c.fresh(taskMainChart, seqTok, verTok) {
		log.Printf("[INFO] %s: discarding stale main chart for %s", rid, sel.Company)
		return
	}
	c.deps.Presenter.ShowMainChart(spec)
}

// RefreshRealtimeChart recomposes the intraday chart with the live price
// indicator.
func (c *Controller) RefreshRealtimeChart(ctx context.Context) {
	seqTok, verTok := c.begin(taskRealtime)
	rid := id.New()
	sel := c.Selection()

	series, err := c.deps.Provider.History(ctx, sel.Company, "1d", "1m")
	if err != nil {
		c.fail(rid, taskRealtime, sel.Company, err)
		series = &model.PriceSeries{Symbol: sel.Company, Interval: "1m"}
	}

	prevClose, livePrice := 0.0, 0.0
	if q, err := c.deps.Provider.Quote(ctx, sel.Company); err != nil {
		c.fail(rid, taskRealtime, sel.Company, err)
		if n := series.Len(); n > 0 {
			livePrice = series.Bars[n-1].Close
			prevClose = livePrice
		}
	} else {
		prevClose, livePrice = q.PreviousClose, q.Price
	}

	spec := chart.ComposeRealtimeChart(series, prevClose, livePrice,
		c.deps.Clock.Now(), c.deps.Clock.Venue(), c.deps.ResampleMinBars)

	if !c.fresh(taskRealtime, seqTok, verTok) {
		log.Printf("[INFO] %s: discarding stale realtime chart for %s", rid, sel.Company)
		return
	}
	c.deps.Presenter.ShowRealtimeChart(spec)
}

// RefreshQuote rebuilds the quote surface: the top-bar ratios and the
// finance-details panel. The quote and the ratios degrade independently.
func (c *Controller) RefreshQuote(ctx context.Context) {
	seqTok, verTok := c.begin(taskQuote)
	rid := id.New()
	sel := c.Selection()

	quote, err := c.deps.Provider.Quote(ctx, sel.Company)
	if err != nil {
		c.fail(rid, taskQuote, sel.Company, err)
		quote = nil
	}

	var ratios *model.Ratios
	if c.deps.Ratios != nil {
		if ratios, err = c.deps.Ratios.Ratios(ctx, sel.Company); err != nil {
			c.fail(rid, taskQuote, sel.Company, err)
			ratios = nil
		}
	}

	if quote != nil {
		if rerr := c.deps.Recorder.RecordQuote(&recorder.QuoteSnapshot{
			Symbol:        sel.Company,
			Price:         quote.Price,
			PreviousClose: quote.PreviousClose,
			SessionState:  string(c.deps.Clock.CurrentSession()),
		}); rerr != nil {
			log.Printf("[ERROR] %s: record quote: %v", rid, rerr)
		}
	}

	if !c.fresh(taskQuote, seqTok, verTok) {
		return
	}
	c.deps.Presenter.ShowQuote(NewQuoteView(sel.Company, quote, ratios))
}

// RefreshNews replaces the headline list. A failed fetch presents an empty
// list rather than keeping stale headlines for the wrong company.
func (c *Controller) RefreshNews(ctx context.Context) {
	seqTok, verTok := c.begin(taskNews)
	rid := id.New()
	sel := c.Selection()

	items, err := c.deps.Provider.News(ctx, sel.Company)
	if err != nil {
		c.fail(rid, taskNews, sel.Company, err)
		items = nil
	}

	if len(items) > maxHeadlines {
		items = items[:maxHeadlines]
	}

	if !c.fresh(taskNews, seqTok, verTok) {
		return
	}
	c.deps.Presenter.ShowNews(items)
}

// RefreshStatus updates the market-status strip and the currencies ticker.
func (c *Controller) RefreshStatus(ctx context.Context) {
	seqTok, verTok := c.begin(taskStatus)
	rid := id.New()

	state := c.sessionState(ctx, rid)
	status := c.deps.Clock.Describe(state)

	currencies, err := c.deps.Provider.Currencies(ctx)
	if err != nil {
		c.fail(rid, taskStatus, "", err)
		currencies = nil
	}

	if !c.fresh(taskStatus, seqTok, verTok) {
		return
	}
	c.deps.Presenter.ShowStatus(&StatusView{Status: status, Currencies: currencies})
}

// RefreshCompanyPanel updates the static company profile together with the
// ESG scores and the analyst-recommendation gauge.
func (c *Controller) RefreshCompanyPanel(ctx context.Context) {
	seqTok, verTok := c.begin(taskCompany)
	rid := id.New()
	sel := c.Selection()

	esg, err := c.deps.Provider.ESG(ctx, sel.Company)
	if err != nil {
		c.fail(rid, taskCompany, sel.Company, err)
		esg = nil
	}

	rating, err := c.deps.Provider.AnalystRating(ctx, sel.Company)
	if err != nil {
		c.fail(rid, taskCompany, sel.Company, err)
		rating = 0
	}

	if !c.fresh(taskCompany, seqTok, verTok) {
		return
	}
	c.deps.Presenter.ShowCompany(CompanyInfo(sel.Company))
	c.deps.Presenter.ShowESG(NewESGView(esg))
	c.deps.Presenter.ShowRating(NewRatingView(rating))
}

// RefreshForecast runs the forecast round-trip: predict, persist the record
// once per trading day, and recompose the forecast-vs-actual chart.
// Forecasting only serves the configured ticker; every other company gets
// the unavailability message.
func (c *Controller) RefreshForecast(ctx context.Context) {
	seqTok, verTok := c.begin(taskForecast)
	rid := id.New()
	sel := c.Selection()

	if sel.Company != c.deps.ForecastTicker {
		if !c.fresh(taskForecast, seqTok, verTok) {
			return
		}
		c.deps.Presenter.ShowForecast(&ForecastView{Message: ForecastUnavailable(sel.Company)})
		return
	}

	fcst, err := c.deps.Forecast.Predict(ctx, sel.Company)
	if err != nil {
		c.fail(rid, taskForecast, sel.Company, err)
		if !c.fresh(taskForecast, seqTok, verTok) {
			return
		}
		c.deps.Presenter.ShowForecast(&ForecastView{Message: ForecastUnavailable(sel.Company)})
		return
	}

	added, err := c.deps.Tracker.AppendIfNew(model.ForecastRecord{
		Date:          c.deps.Clock.Now(),
		MinConfidence: fcst.ConfidenceMin,
		MaxConfidence: fcst.ConfidenceMax,
		ForecastPrice: fcst.Price,
	})
	if err != nil {
		log.Printf("[ERROR] %s: persist forecast record: %v", rid, err)
	}
	if rerr := c.deps.Recorder.RecordForecast(&recorder.ForecastEvent{
		Symbol:        sel.Company,
		ForecastPrice: fcst.Price,
		MinConfidence: fcst.ConfidenceMin,
		MaxConfidence: fcst.ConfidenceMax,
		Appended:      added,
	}); rerr != nil {
		log.Printf("[ERROR] %s: record forecast: %v", rid, rerr)
	}

	state := c.sessionState(ctx, rid)
	actual, err := c.deps.Provider.History(ctx, sel.Company, "6mo", "1d")
	if err != nil {
		c.fail(rid, taskForecast, sel.Company, err)
		actual = &model.PriceSeries{Symbol: sel.Company, Interval: "1d"}
	}
	spec := chart.ComposeForecastHistoryChart(c.deps.Tracker.Records(), actual, state)

	if !c.fresh(taskForecast, seqTok, verTok) {
		log.Printf("[INFO] %s: discarding stale forecast for %s", rid, sel.Company)
		return
	}
	c.deps.Presenter.ShowForecast(&ForecastView{
		Available:  true,
		PriceLabel: fmt.Sprintf("%.2f", fcst.Price),
		Chart:      spec,
	})
}

// RefreshSpot updates the scraped pre/post-market price readout.
func (c *Controller) RefreshSpot(ctx context.Context) {
	seqTok, verTok := c.begin(taskSpot)
	rid := id.New()
	sel := c.Selection()

	if c.deps.Scraper == nil {
		return
	}
	state := c.sessionState(ctx, rid)
	price, err := c.deps.Scraper.Spot(ctx, sel.Company, state)

	if !c.fresh(taskSpot, seqTok, verTok) {
		return
	}
	if err != nil {
		c.fail(rid, taskSpot, sel.Company, err)
		c.deps.Presenter.ShowSpot(PlaceholderValue)
		return
	}
	c.deps.Presenter.ShowSpot(fmt.Sprintf("%.2f", price))
}

// UpdateForecastModel triggers the daily post-close retrain of the external
// forecasting model.
func (c *Controller) UpdateForecastModel(ctx context.Context) {
	rid := id.New()
	start := time.Now()

	// Retraining only makes sense once the session has closed. A weekday
	// holiday lands here on schedule but the venue reports CLOSED, so the
	// gate skips it.
	if state := c.sessionState(ctx, rid); state != model.SessionPost && state != model.SessionPostPost {
		log.Printf("[INFO] %s: skipping model update, session is %s", rid, state)
		return
	}

	err := c.deps.Forecast.UpdateModel(ctx, c.deps.ForecastTicker)
	evt := &recorder.ModelUpdateEvent{Symbol: c.deps.ForecastTicker, OK: err == nil}
	if err != nil {
		evt.Note = err.Error()
		log.Printf("[WARN] %s: model update failed: %v", rid, err)
	} else {
		log.Printf("[INFO] %s: model updated for %s in %s", rid, c.deps.ForecastTicker, time.Since(start).Round(time.Millisecond))
	}
	if rerr := c.deps.Recorder.RecordModelUpdate(evt); rerr != nil {
		log.Printf("[ERROR] %s: record model update: %v", rid, rerr)
	}
}

// RefreshAll runs every refresh once, for the initial paint.
func (c *Controller) RefreshAll(ctx context.Context) {
	c.RefreshStatus(ctx)
	c.RefreshQuote(ctx)
	c.RefreshMainChart(ctx)
	c.RefreshRealtimeChart(ctx)
	c.RefreshNews(ctx)
	c.RefreshCompanyPanel(ctx)
	c.RefreshForecast(ctx)
	c.RefreshSpot(ctx)
}
