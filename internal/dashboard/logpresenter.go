package dashboard

import (
	"log"

	"github.com/s0v1x/EULERA/internal/chart"
	"github.com/s0v1x/EULERA/internal/model"
)

// LogPresenter writes one summary log line per view. It is the sink used
// when no rendering front end is attached, and doubles as a trace of the
// refresh cycle.
type LogPresenter struct{}

func NewLogPresenter() *LogPresenter { return &LogPresenter{} }

func (p *LogPresenter) ShowMainChart(s *chart.Spec) {
	log.Printf("[INFO] main chart: %d panels", s.PanelCount())
}

func (p *LogPresenter) ShowRealtimeChart(s *chart.Spec) {
	if s.Live != nil {
		log.Printf("[INFO] realtime chart: live %.2f vs %.2f", s.Live.Value, s.Live.Reference)
		return
	}
	log.Printf("[INFO] realtime chart: %d panels", s.PanelCount())
}

func (p *LogPresenter) ShowQuote(v *QuoteView) {
	log.Printf("[INFO] quote %s: %s", v.Symbol, v.Price)
}

func (p *LogPresenter) ShowNews(items []model.NewsItem) {
	log.Printf("[INFO] news: %d headlines", len(items))
}

func (p *LogPresenter) ShowStatus(v *StatusView) {
	if v.Status.Countdown != "" {
		log.Printf("[INFO] %s (%s)", v.Status.Label, v.Status.Countdown)
		return
	}
	log.Printf("[INFO] %s", v.Status.Label)
}

func (p *LogPresenter) ShowCompany(c Company) {
	log.Printf("[INFO] company: %s", c.Name)
}

func (p *LogPresenter) ShowESG(v *ESGView) {
	log.Printf("[INFO] esg total: %s", v.Total)
}

func (p *LogPresenter) ShowRating(v *RatingView) {
	log.Printf("[INFO] analyst rating: %s", v.Label)
}

func (p *LogPresenter) ShowForecast(v *ForecastView) {
	if !v.Available {
		log.Printf("[INFO] forecast: %s", v.Message)
		return
	}
	log.Printf("[INFO] forecast price: %s", v.PriceLabel)
}

func (p *LogPresenter) ShowSpot(price string) {
	log.Printf("[INFO] spot price: %s", price)
}

// MultiPresenter fans every view out to each presenter in order.
type MultiPresenter []Presenter

func (m MultiPresenter) ShowMainChart(s *chart.Spec) {
	for _, p := range m {
		p.ShowMainChart(s)
	}
}

func (m MultiPresenter) ShowRealtimeChart(s *chart.Spec) {
	for _, p := range m {
		p.ShowRealtimeChart(s)
	}
}

func (m MultiPresenter) ShowQuote(v *QuoteView) {
	for _, p := range m {
		p.ShowQuote(v)
	}
}

func (m MultiPresenter) ShowNews(items []model.NewsItem) {
	for _, p := range m {
		p.ShowNews(items)
	}
}

func (m MultiPresenter) ShowStatus(v *StatusView) {
	for _, p := range m {
		p.ShowStatus(v)
	}
}

func (m MultiPresenter) ShowCompany(c Company) {
	for _, p := range m {
		p.ShowCompany(c)
	}
}

func (m MultiPresenter) ShowESG(v *ESGView) {
	for _, p := range m {
		p.ShowESG(v)
	}
}

func (m MultiPresenter) ShowRating(v *RatingView) {
	for _, p := range m {
		p.ShowRating(v)
	}
}

func (m MultiPresenter) ShowForecast(v *ForecastView) {
	for _, p := range m {
		p.ShowForecast(v)
	}
}

func (m MultiPresenter) ShowSpot(price string) {
	for _, p := range m {
		p.ShowSpot(price)
	}
}
