package model

import "time"

// TrackerState keeps the rolling volatility history used for spike alerts.
type TrackerState struct {
	RecentVolatilities      []float64 `json:"recent_volatilities"`
	ConsecutiveElevatedDays int       `json:"consecutive_elevated_days"`
	LastAlertAt             time.Time `json:"last_alert_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}
