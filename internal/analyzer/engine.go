package analyzer

import (
	"errors"
	"fmt"
	"math"

	"RiskSentinel/internal/calculator"
	"RiskSentinel/internal/model"
)

// ErrInvalidInput is returned when an analyzer is constructed from an empty
// series or one containing non-finite values.
var ErrInvalidInput = errors.New("invalid return series")

// Analyzer computes dispersion statistics over a fixed series of daily
// returns. The series is copied at construction and never mutated, so a
// single Analyzer may be read from multiple goroutines without locking.
type Analyzer struct {
	dailyReturns []float64
}

// New creates an Analyzer over the given daily returns. The series must be
// non-empty and contain only finite values; the input slice is copied, so
// the caller may reuse it.
func New(dailyReturns []float64) (*Analyzer, error) {
	if len(dailyReturns) == 0 {
		return nil, fmt.Errorf("%w: series is empty", ErrInvalidInput)
	}
	for i, r := range dailyReturns {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return nil, fmt.Errorf("%w: element %d is not finite", ErrInvalidInput, i)
		}
	}
	series := make([]float64, len(dailyReturns))
	copy(series, dailyReturns)
	return &Analyzer{dailyReturns: series}, nil
}

// Returns exposes a copy of the stored return series.
func (a *Analyzer) Returns() []float64 {
	out := make([]float64, len(a.dailyReturns))
	copy(out, a.dailyReturns)
	return out
}

// Count reports the number of observations.
func (a *Analyzer) Count() int { return len(a.dailyReturns) }

// Volatility computes the population standard deviation of the stored
// series. Arbitrary subsequences go through calculator.Volatility directly.
func (a *Analyzer) Volatility() (float64, error) {
	return calculator.Volatility(a.dailyReturns)
}

// SplitPeriod splits the stored series at floor(n/2). For odd n the second
// half receives the extra element; for n = 1 the first half is empty.
// Returned slices are copies.
func (a *Analyzer) SplitPeriod() (first, second []float64) {
	mid := len(a.dailyReturns) / 2
	first = make([]float64, mid)
	copy(first, a.dailyReturns[:mid])
	second = make([]float64, len(a.dailyReturns)-mid)
	copy(second, a.dailyReturns[mid:])
	return first, second
}

// ComparePeriodVolatility compares volatility between the two halves of the
// stored series. Returns calculator.ErrEmptySequence when the series is too
// short to split (n <= 1) and calculator.ErrZeroDenominator when the first
// half's volatility is exactly zero.
func (a *Analyzer) ComparePeriodVolatility() (*model.PeriodComparison, error) {
	first, second := a.SplitPeriod()

	volFirst, err := calculator.Volatility(first)
	if err != nil {
		return nil, fmt.Errorf("first period: %w", err)
	}
	volSecond, err := calculator.Volatility(second)
	if err != nil {
		return nil, fmt.Errorf("second period: %w", err)
	}

	change := volSecond - volFirst
	changePct, err := calculator.PercentChange(volFirst, volSecond)
	if err != nil {
		return nil, fmt.Errorf("volatility change: %w", err)
	}

	return &model.PeriodComparison{
		FirstPeriodVolatility:   volFirst,
		SecondPeriodVolatility:  volSecond,
		VolatilityChange:        change,
		VolatilityChangePercent: changePct,
	}, nil
}

// SummaryStatistics derives aggregate statistics for the stored series.
// The series is non-empty by construction, so none of the underlying
// computations can fail.
func (a *Analyzer) SummaryStatistics() model.SummaryStatistics {
	mean, _ := calculator.Mean(a.dailyReturns)
	vol, _ := calculator.Volatility(a.dailyReturns)
	min, max, _ := calculator.MinMax(a.dailyReturns)
	return model.SummaryStatistics{
		Mean:       mean,
		Volatility: vol,
		Min:        min,
		Max:        max,
		Count:      len(a.dailyReturns),
	}
}

// String gives a short identification of the analyzer.
func (a *Analyzer) String() string {
	return fmt.Sprintf("Analyzer(observations=%d)", len(a.dailyReturns))
}

// Describe gives a human-readable summary of the analyzer.
func (a *Analyzer) Describe() string {
	stats := a.SummaryStatistics()
	return fmt.Sprintf("Analyzer with %d observations\nMean: %.4f, Volatility: %.4f",
		stats.Count, stats.Mean, stats.Volatility)
}
