package model

// SummaryStatistics holds aggregate statistics over a return series.
type SummaryStatistics struct {
	Mean       float64
	Volatility float64
	Min        float64
	Max        float64
	Count      int
}

// PeriodComparison compares volatility between the first and second half
// of a return series.
type PeriodComparison struct {
	FirstPeriodVolatility   float64
	SecondPeriodVolatility  float64
	VolatilityChange        float64
	VolatilityChangePercent float64
}
