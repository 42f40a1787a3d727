package calculator

import (
	"errors"
	"math"
)

// ErrEmptySequence is returned when a statistic is requested over a
// zero-length sequence.
var ErrEmptySequence = errors.New("sequence is empty")

// ErrZeroDenominator is returned when a percentage-change denominator is
// exactly zero.
var ErrZeroDenominator = errors.New("denominator is zero")

// Mean computes the arithmetic mean of the given returns.
func Mean(returns []float64) (float64, error) {
	if len(returns) == 0 {
		return 0, ErrEmptySequence
	}
	sum := 0.0
	for _, r := range returns {
		sum += r
	}
	return sum / float64(len(returns)), nil
}

// Volatility computes the population standard deviation of the given returns:
// sqrt(sum((x-mean)^2) / n). The divisor is n, not n-1.
func Volatility(returns []float64) (float64, error) {
	mean, err := Mean(returns)
	if err != nil {
		return 0, err
	}
	var sumSq float64
	for _, r := range returns {
		d := r - mean
		sumSq += d * d
	}
	variance := sumSq / float64(len(returns))
	return math.Sqrt(variance), nil
}

// MinMax scans the returns and reports the smallest and largest values.
func MinMax(returns []float64) (min, max float64, err error) {
	if len(returns) == 0 {
		return 0, 0, ErrEmptySequence
	}
	min = returns[0]
	max = returns[0]
	for _, r := range returns[1:] {
		if r < min {
			min = r
		}
		if r > max {
			max = r
		}
	}
	return min, max, nil
}

// PercentChange computes (current-previous)/previous*100. A previous value
// of exactly zero is an error rather than a non-finite result.
func PercentChange(previous, current float64) (float64, error) {
	if previous == 0 {
		return 0, ErrZeroDenominator
	}
	return (current - previous) / previous * 100, nil
}

// DailyReturns converts a chronological series of closing prices into
// daily percentage returns. Bars whose previous close is zero are skipped.
func DailyReturns(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		returns = append(returns, (closes[i]-closes[i-1])/closes[i-1]*100)
	}
	return returns
}
