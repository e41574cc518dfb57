package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordQuote(_ *QuoteSnapshot) error          { return nil }
func (n *NoopRecorder) RecordForecast(_ *ForecastEvent) error       { return nil }
func (n *NoopRecorder) RecordModelUpdate(_ *ModelUpdateEvent) error { return nil }
func (n *NoopRecorder) RecordFailure(_ *RefreshFailure) error       { return nil }
func (n *NoopRecorder) Close() error                                { return nil }
