package recorder

import "RiskSentinel/internal/model"

// ReportSnapshot holds all data for one recorded analysis run.
type ReportSnapshot struct {
	Report     *model.VolatilityReport
	Assessment *model.RiskAssessment
}

// AlertEvent records a volatility spike notification.
type AlertEvent struct {
	Symbol       string
	Volatility   float64
	RollingMean  float64
	Threshold    float64
	ElevatedDays int
}

// Recorder persists historical data for analysis.
type Recorder interface {
	RecordReport(snap *ReportSnapshot) error
	RecordAlert(evt *AlertEvent) error
	Close() error
}
