// Package scheduler drives the periodic dashboard refreshes. Each refresh
// class runs on its own fixed period; the controller handles stale-result
// discard, so overlapping ticks are safe.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/s0v1x/EULERA/internal/dashboard"
)

// Periods holds the refresh interval of each task class.
type Periods struct {
	Quote     time.Duration
	Spot      time.Duration
	Status    time.Duration
	Realtime  time.Duration
	News      time.Duration
	MainChart time.Duration
}

// modelUpdateSpec fires the retrain at 16:01 venue time on weekdays, right
// after the close.
const modelUpdateSpec = "0 1 16 * * 1-5"

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron       *cron.Cron
	Controller *dashboard.Controller
	Ctx        context.Context
}

// NewScheduler creates a Scheduler running in the venue's timezone.
func NewScheduler(ctx context.Context, ctrl *dashboard.Controller, venue *time.Location) *Scheduler {
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds(), cron.WithLocation(venue)),
		Controller: ctrl,
		Ctx:        ctx,
	}
}

// RegisterAll registers every refresh class plus the daily model update.
func (s *Scheduler) RegisterAll(p Periods) error {
	tasks := []struct {
		name   string
		period time.Duration
		run    func(context.Context)
	}{
		{"quote", p.Quote, s.Controller.RefreshQuote},
		{"spot", p.Spot, s.Controller.RefreshSpot},
		{"status", p.Status, s.Controller.RefreshStatus},
		{"realtime", p.Realtime, s.Controller.RefreshRealtimeChart},
		{"news", p.News, s.Controller.RefreshNews},
		{"main_chart", p.MainChart, s.Controller.RefreshMainChart},
	}
	for _, t := range tasks {
		if t.period <= 0 {
			continue
		}
		run := t.run
		spec := fmt.Sprintf("@every %s", t.period)
		if _, err := s.Cron.AddFunc(spec, func() { run(s.Ctx) }); err != nil {
			return fmt.Errorf("register %s task: %w", t.name, err)
		}
	}

	// Forecast rides the news period: it only changes once per day but the
	// availability message must track the selected company.
	if p.News > 0 {
		spec := fmt.Sprintf("@every %s", p.News)
		if _, err := s.Cron.AddFunc(spec, func() { s.Controller.RefreshForecast(s.Ctx) }); err != nil {
			return fmt.Errorf("register forecast task: %w", err)
		}
	}

	if _, err := s.Cron.AddFunc(modelUpdateSpec, func() { s.Controller.UpdateForecastModel(s.Ctx) }); err != nil {
		return fmt.Errorf("register model update task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunInitial paints the whole dashboard once before the periodic tasks kick
// in.
func (s *Scheduler) RunInitial() {
	log.Println("[INFO] running initial refresh")
	s.Controller.RefreshAll(s.Ctx)
}
