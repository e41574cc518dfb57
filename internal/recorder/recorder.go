package recorder

// QuoteSnapshot holds one polled quote for a tracked symbol.
type QuoteSnapshot struct {
	Symbol        string
	Price         float64
	PreviousClose float64
	SessionState  string
}

// ForecastEvent records one forecast round-trip against the prediction service.
type ForecastEvent struct {
	Symbol        string
	ForecastPrice float64
	MinConfidence float64
	MaxConfidence float64
	Appended      bool
}

// ModelUpdateEvent records the post-close retrain call.
type ModelUpdateEvent struct {
	Symbol string
	OK     bool
	Note   string
}

// RefreshFailure records a refresh task that fell back to its placeholder.
type RefreshFailure struct {
	Task   string
	Symbol string
	Reason string
}

// Recorder persists dashboard activity for offline analysis.
type Recorder interface {
	RecordQuote(snap *QuoteSnapshot) error
	RecordForecast(evt *ForecastEvent) error
	RecordModelUpdate(evt *ModelUpdateEvent) error
	RecordFailure(evt *RefreshFailure) error
	Close() error
}
