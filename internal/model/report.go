package model

import "time"

// VolatilityReport is the output of one analysis run over a daily return
// window. Comparison is nil when the run could not produce one (first half
// of the window had zero volatility).
type VolatilityReport struct {
	Symbol       string
	LookbackDays int
	CurrentPrice float64
	Summary      SummaryStatistics
	Comparison   *PeriodComparison
	FetchedAt    time.Time
}

// RiskLevel labels a volatility regime.
type RiskLevel string

const (
	RiskCalm     RiskLevel = "CALM"
	RiskNormal   RiskLevel = "NORMAL"
	RiskElevated RiskLevel = "ELEVATED"
	RiskExtreme  RiskLevel = "EXTREME"
)

// RiskAssessment is the strategy output for a report.
type RiskAssessment struct {
	Level      RiskLevel
	Commentary string
}
