// Package session derives market session state and human-readable countdowns
// for a trading venue.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/s0v1x/EULERA/internal/model"
)

// Venue-local session boundaries. The exchange's own status feed is the
// ground truth for holidays; these boundaries drive the countdowns and the
// clock-derived fallback state.
const (
	openHour      = 9
	openMinute    = 31
	closeHour     = 16
	closeMinute   = 1
	postEndHour   = 20
	postEndMinute = 0
)

// DefaultCountdownWindow bounds how close to a boundary the countdown is
// shown.
const DefaultCountdownWindow = 2 * time.Hour

// Clock answers session-state questions for one venue.
type Clock struct {
	venue           *time.Location
	countdownWindow time.Duration
	now             func() time.Time
}

// NewClock creates a Clock for the given venue timezone, e.g.
// "America/New_York".
func NewClock(venueTZ string) (*Clock, error) {
	loc, err := time.LoadLocation(venueTZ)
	if err != nil {
		return nil, fmt.Errorf("load venue timezone: %w", err)
	}
	return &Clock{venue: loc, countdownWindow: DefaultCountdownWindow, now: time.Now}, nil
}

// WithCountdownWindow overrides the countdown visibility window.
func (c *Clock) WithCountdownWindow(w time.Duration) *Clock {
	c.countdownWindow = w
	return c
}

// WithNow overrides the time source (tests).
func (c *Clock) WithNow(now func() time.Time) *Clock {
	c.now = now
	return c
}

// Venue returns the venue's location.
func (c *Clock) Venue() *time.Location { return c.venue }

// Now returns the current venue-local time.
func (c *Clock) Now() time.Time { return c.now().In(c.venue) }

// CurrentSession derives the session state from the venue-local clock:
// PRE before 09:31, OPEN through 16:01, POST until 20:00, CLOSED otherwise
// (including weekends). Holiday closures come from the status feed, not from
// this derivation.
func (c *Clock) CurrentSession() model.SessionState {
	now := c.Now()
	if wd := now.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return model.SessionClosed
	}

	open := at(now, openHour, openMinute)
	close := at(now, closeHour, closeMinute)
	postEnd := at(now, postEndHour, postEndMinute)

	switch {
	case now.Before(open):
		return model.SessionPre
	case now.Before(close):
		return model.SessionOpen
	case now.Before(postEnd):
		return model.SessionPost
	default:
		return model.SessionClosed
	}
}

// Status describes a session state with an optional countdown clause.
type Status struct {
	State     model.SessionState
	Label     string
	Countdown string // "markets open in 1 hour 5 minutes", empty outside the window
	Color     string
}

// Describe formats a session state for display, attaching a countdown to the
// next boundary when it is within the countdown window.
func (c *Clock) Describe(state model.SessionState) Status {
	now := c.Now()
	switch state {
	case model.SessionPre:
		st := Status{State: state, Label: "Market Status : Pre-Market", Color: "yellow"}
		if d, ok := c.untilBoundary(now, at(now, openHour, openMinute)); ok {
			st.Countdown = "markets open in " + FormatDuration(d)
		}
		return st
	case model.SessionOpen:
		st := Status{State: state, Label: "Market Status : Open", Color: "green"}
		if d, ok := c.untilBoundary(now, at(now, closeHour, closeMinute)); ok {
			st.Countdown = "markets close in " + FormatDuration(d)
		}
		return st
	case model.SessionPost, model.SessionPostPost:
		return Status{State: state, Label: "Market Status : Post-Market", Color: "yellow"}
	default:
		return Status{State: model.SessionClosed, Label: "Market Status : Closed", Color: "red"}
	}
}

// untilBoundary reports the remaining duration when the boundary is ahead
// and within the countdown window (whole hours compared, matching the
// upstream behavior).
func (c *Clock) untilBoundary(now, boundary time.Time) (time.Duration, bool) {
	d := boundary.Sub(now)
	if d <= 0 {
		return 0, false
	}
	if int(d/time.Hour) > int(c.countdownWindow/time.Hour) {
		return 0, false
	}
	return d, true
}

// FormatDuration renders a countdown with singular/plural agreement:
// "1 hour ", "1 hour 1 minute", "2 hours 30 minutes", "45 minutes". The
// minutes clause is omitted at exactly zero minutes past the hour.
func FormatDuration(d time.Duration) string {
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60

	var b strings.Builder
	if hours >= 1 {
		if hours == 1 {
			b.WriteString("1 hour ")
		} else {
			fmt.Fprintf(&b, "%d hours ", hours)
		}
		if minutes == 1 {
			b.WriteString("1 minute")
		} else if minutes > 1 {
			fmt.Fprintf(&b, "%d minutes", minutes)
		}
		return b.String()
	}
	if minutes == 1 || minutes == 0 {
		fmt.Fprintf(&b, "%d minute", minutes)
	} else {
		fmt.Fprintf(&b, "%d minutes", minutes)
	}
	return b.String()
}

func at(now time.Time, hour, minute int) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
}
