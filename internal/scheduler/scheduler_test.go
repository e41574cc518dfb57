package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0v1x/EULERA/internal/chart"
	"github.com/s0v1x/EULERA/internal/dashboard"
	"github.com/s0v1x/EULERA/internal/market"
	"github.com/s0v1x/EULERA/internal/model"
	"github.com/s0v1x/EULERA/internal/session"
)

type nullPresenter struct{}

func (nullPresenter) ShowMainChart(*chart.Spec)            {}
func (nullPresenter) ShowRealtimeChart(*chart.Spec)        {}
func (nullPresenter) ShowQuote(*dashboard.QuoteView)       {}
func (nullPresenter) ShowNews([]model.NewsItem)            {}
func (nullPresenter) ShowStatus(*dashboard.StatusView)     {}
func (nullPresenter) ShowCompany(dashboard.Company)        {}
func (nullPresenter) ShowESG(*dashboard.ESGView)           {}
func (nullPresenter) ShowRating(*dashboard.RatingView)     {}
func (nullPresenter) ShowForecast(*dashboard.ForecastView) {}
func (nullPresenter) ShowSpot(string)                      {}

func TestRegisterAll(t *testing.T) {
	clock, err := session.NewClock("America/New_York")
	require.NoError(t, err)

	ctrl := dashboard.NewController(dashboard.Deps{
		Provider:       &market.MockProvider{},
		Clock:          clock,
		Presenter:      nullPresenter{},
		ForecastTicker: "AAPL",
	}, dashboard.Selection{Company: "AAPL"})

	s := NewScheduler(context.Background(), ctrl, clock.Venue())
	err = s.RegisterAll(Periods{
		Quote:     30 * time.Second,
		Spot:      5 * time.Second,
		Status:    20 * time.Second,
		Realtime:  40 * time.Second,
		News:      5 * time.Minute,
		MainChart: 24 * time.Hour,
	})
	require.NoError(t, err)

	// six refresh classes + forecast + model update
	assert.Len(t, s.Cron.Entries(), 8)
}

func TestRegisterAll_SkipsDisabledTasks(t *testing.T) {
	clock, err := session.NewClock("America/New_York")
	require.NoError(t, err)

	ctrl := dashboard.NewController(dashboard.Deps{
		Provider:       &market.MockProvider{},
		Clock:          clock,
		Presenter:      nullPresenter{},
		ForecastTicker: "AAPL",
	}, dashboard.Selection{Company: "AAPL"})

	s := NewScheduler(context.Background(), ctrl, clock.Venue())
	require.NoError(t, s.RegisterAll(Periods{Quote: time.Minute}))

	// quote + model update only
	assert.Len(t, s.Cron.Entries(), 2)
}
