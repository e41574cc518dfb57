package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0v1x/EULERA/internal/model"
)

func clockAt(t *testing.T, hour, min int, weekday time.Weekday) *Clock {
	t.Helper()
	c, err := NewClock("America/New_York")
	require.NoError(t, err)

	// 2024-05-06 is a Monday.
	day := 6 + int(weekday-time.Monday)
	fixed := time.Date(2024, 5, day, hour, min, 0, 0, c.Venue())
	return c.WithNow(func() time.Time { return fixed })
}

func TestCurrentSession_Boundaries(t *testing.T) {
	tests := []struct {
		hour, min int
		want      model.SessionState
	}{
		{4, 0, model.SessionPre},
		{9, 30, model.SessionPre},
		{9, 31, model.SessionOpen},
		{12, 0, model.SessionOpen},
		{16, 0, model.SessionOpen},
		{16, 1, model.SessionPost},
		{19, 59, model.SessionPost},
		{20, 0, model.SessionClosed},
		{23, 30, model.SessionClosed},
	}
	for _, tt := range tests {
		c := clockAt(t, tt.hour, tt.min, time.Monday)
		assert.Equal(t, tt.want, c.CurrentSession(), "%02d:%02d", tt.hour, tt.min)
	}
}

func TestCurrentSession_WeekendClosed(t *testing.T) {
	assert.Equal(t, model.SessionClosed, clockAt(t, 12, 0, time.Saturday).CurrentSession())
	assert.Equal(t, model.SessionClosed, clockAt(t, 12, 0, time.Sunday).CurrentSession())
}

func TestFormatDuration_Pluralization(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{1 * time.Hour, "1 hour "},
		{1*time.Hour + 1*time.Minute, "1 hour 1 minute"},
		{1*time.Hour + 30*time.Minute, "1 hour 30 minutes"},
		{2 * time.Hour, "2 hours "},
		{2*time.Hour + 1*time.Minute, "2 hours 1 minute"},
		{45 * time.Minute, "45 minutes"},
		{1 * time.Minute, "1 minute"},
		{30 * time.Second, "0 minute"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.d), "duration %v", tt.d)
	}
}

func TestDescribe_CountdownWithinWindow(t *testing.T) {
	// 14:30 Monday: 1h31m to the 16:01 close, inside the 2h window.
	c := clockAt(t, 14, 30, time.Monday)
	st := c.Describe(model.SessionOpen)
	assert.Equal(t, "Market Status : Open", st.Label)
	assert.Equal(t, "green", st.Color)
	assert.Equal(t, "markets close in 1 hour 31 minutes", st.Countdown)
}

func TestDescribe_NoCountdownOutsideWindow(t *testing.T) {
	// 10:00 Monday: just over 6h to close.
	c := clockAt(t, 10, 0, time.Monday)
	st := c.Describe(model.SessionOpen)
	assert.Empty(t, st.Countdown)
}

func TestDescribe_PreMarketCountdown(t *testing.T) {
	// 08:00 Monday: 1h31m to the 09:31 open.
	c := clockAt(t, 8, 0, time.Monday)
	st := c.Describe(model.SessionPre)
	assert.Equal(t, "Market Status : Pre-Market", st.Label)
	assert.Equal(t, "yellow", st.Color)
	assert.Equal(t, "markets open in 1 hour 31 minutes", st.Countdown)
}

func TestDescribe_PostAndClosed(t *testing.T) {
	c := clockAt(t, 17, 0, time.Monday)

	post := c.Describe(model.SessionPost)
	assert.Equal(t, "Market Status : Post-Market", post.Label)
	assert.Empty(t, post.Countdown)

	postpost := c.Describe(model.SessionPostPost)
	assert.Equal(t, "Market Status : Post-Market", postpost.Label)

	closed := c.Describe(model.SessionClosed)
	assert.Equal(t, "red", closed.Color)
}

func TestParseSessionState(t *testing.T) {
	assert.Equal(t, model.SessionOpen, model.ParseSessionState("REGULAR"))
	assert.Equal(t, model.SessionPostPost, model.ParseSessionState("POSTPOST"))
	assert.Equal(t, model.SessionClosed, model.ParseSessionState("whatever"))
	assert.True(t, model.SessionPre.AfterHours())
	assert.False(t, model.SessionOpen.AfterHours())
}
