package model

import "time"

// Forecast is one prediction returned by the forecasting service.
type Forecast struct {
	Price         float64
	ConfidenceMin float64
	ConfidenceMax float64
}

// ForecastRecord is one persisted entry of the forecast history, keyed by
// trading day. The sequence is append-only with at most one record per day.
type ForecastRecord struct {
	Date          time.Time
	MinConfidence float64
	MaxConfidence float64
	ForecastPrice float64
}
