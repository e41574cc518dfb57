package notifier

import (
	"context"
	"fmt"
	"sync"

	"github.com/s0v1x/EULERA/internal/chart"
	"github.com/s0v1x/EULERA/internal/dashboard"
	"github.com/s0v1x/EULERA/internal/model"
)

// DashboardAlerts implements dashboard.Presenter by pushing the alert-worthy
// views to Telegram: session transitions and the daily forecast. Chart and
// quote views pass through silently. Messages are fire-and-forget; a failed
// send never blocks a refresh.
type DashboardAlerts struct {
	Notifier *TelegramNotifier
	Ctx      context.Context

	mu           sync.Mutex
	lastStatus   string
	lastForecast string
}

// NewDashboardAlerts wraps a notifier as a presenter.
func NewDashboardAlerts(ctx context.Context, tn *TelegramNotifier) *DashboardAlerts {
	return &DashboardAlerts{Notifier: tn, Ctx: ctx}
}

func (a *DashboardAlerts) send(text string) {
	go func() {
		_ = a.Notifier.SendWithRetry(a.Ctx, text, 3)
	}()
}

// ShowStatus alerts once per session transition, not on every poll.
func (a *DashboardAlerts) ShowStatus(v *dashboard.StatusView) {
	a.mu.Lock()
	changed := v.Status.Label != a.lastStatus && a.lastStatus != ""
	first := a.lastStatus == ""
	a.lastStatus = v.Status.Label
	a.mu.Unlock()

	if first || !changed {
		return
	}
	msg := fmt.Sprintf("🔔 <b>%s</b>", v.Status.Label)
	if v.Status.Countdown != "" {
		msg += "\n" + v.Status.Countdown
	}
	a.send(msg)
}

// ShowForecast alerts once per distinct forecast price.
func (a *DashboardAlerts) ShowForecast(v *dashboard.ForecastView) {
	if !v.Available {
		return
	}
	a.mu.Lock()
	dup := v.PriceLabel == a.lastForecast
	a.lastForecast = v.PriceLabel
	a.mu.Unlock()

	if dup {
		return
	}
	a.send(fmt.Sprintf("🔮 <b>Next-day forecast</b>\nPredicted close: %s", v.PriceLabel))
}

func (a *DashboardAlerts) ShowMainChart(*chart.Spec)          {}
func (a *DashboardAlerts) ShowRealtimeChart(*chart.Spec)      {}
func (a *DashboardAlerts) ShowQuote(*dashboard.QuoteView)     {}
func (a *DashboardAlerts) ShowNews([]model.NewsItem)          {}
func (a *DashboardAlerts) ShowCompany(dashboard.Company)      {}
func (a *DashboardAlerts) ShowESG(*dashboard.ESGView)         {}
func (a *DashboardAlerts) ShowRating(*dashboard.RatingView)   {}
func (a *DashboardAlerts) ShowSpot(string)                    {}
