package model

// SessionState indicates whether the venue is pre-market, regular hours,
// post-market, or closed.
type SessionState string

const (
	SessionClosed   SessionState = "CLOSED"
	SessionPre      SessionState = "PRE"
	SessionOpen     SessionState = "OPEN"
	SessionPost     SessionState = "POST"
	SessionPostPost SessionState = "POSTPOST"
)

// ParseSessionState normalizes upstream market-status strings. Yahoo reports
// regular hours as "REGULAR"; anything unknown maps to CLOSED.
func ParseSessionState(s string) SessionState {
	switch s {
	case "PRE", "PREPRE":
		return SessionPre
	case "REGULAR", "OPEN":
		return SessionOpen
	case "POST":
		return SessionPost
	case "POSTPOST":
		return SessionPostPost
	default:
		return SessionClosed
	}
}

// AfterHours reports whether the state is outside regular trading hours but
// the venue is not fully closed.
func (s SessionState) AfterHours() bool {
	return s == SessionPre || s == SessionPost || s == SessionPostPost
}
