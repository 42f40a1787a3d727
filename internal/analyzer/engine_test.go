package analyzer

import (
	"errors"
	"math"
	"testing"

	"RiskSentinel/internal/calculator"
)

// sampleReturns is a 20-day return series with known statistics.
var sampleReturns = []float64{
	1.22, 1.29, 2.24, 3.32, 4.25, 8.25, 6.25, 5.25, 4.36, 9.25,
	7.82, 6.29, 4.12, 8.35, 1.95, 6.23, 1.42, 10.00, 9.95, 10.25,
}

func mustNew(t *testing.T, returns []float64) *Analyzer {
	t.Helper()
	a, err := New(returns)
	if err != nil {
		t.Fatalf("New(%v): %v", returns, err)
	}
	return a
}

func TestNew_RejectsEmpty(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil series, got %v", err)
	}
	if _, err := New([]float64{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty series, got %v", err)
	}
}

func TestNew_RejectsNonFinite(t *testing.T) {
	invalid := [][]float64{
		{1.0, math.NaN(), 2.0},
		{math.Inf(1)},
		{0.5, math.Inf(-1)},
	}
	for _, s := range invalid {
		if _, err := New(s); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput for %v, got %v", s, err)
		}
	}
}

func TestNew_CopiesInput(t *testing.T) {
	input := []float64{1, 2, 3}
	a := mustNew(t, input)
	input[0] = 99
	if got := a.Returns(); got[0] != 1 {
		t.Errorf("analyzer observed caller mutation: %v", got)
	}
}

func TestVolatility_SampleSeries(t *testing.T) {
	a := mustNew(t, sampleReturns)
	vol, err := a.Volatility()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Population stddev of the 20 sample returns, computed independently.
	if math.Abs(vol-3.0393) > 5e-5 {
		t.Errorf("expected volatility 3.0393, got %.4f", vol)
	}
}

func TestVolatility_ZeroIffConstant(t *testing.T) {
	constant := mustNew(t, []float64{2.5, 2.5, 2.5})
	vol, err := constant.Volatility()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vol != 0 {
		t.Errorf("expected zero volatility for constant series, got %g", vol)
	}

	varied := mustNew(t, []float64{2.5, 2.5, 2.6})
	vol, err = varied.Volatility()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vol <= 0 {
		t.Errorf("expected positive volatility for varied series, got %g", vol)
	}
}

func TestSplitPeriod_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		returns []float64
		wantLen int
	}{
		{"even", []float64{1, 2, 3, 4}, 2},
		{"odd", []float64{1, 2, 3, 4, 5}, 2},
		{"single", []float64{7}, 0},
		{"pair", []float64{1, 2}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustNew(t, tt.returns)
			first, second := a.SplitPeriod()
			if len(first) != tt.wantLen {
				t.Errorf("first half length = %d, want %d", len(first), tt.wantLen)
			}
			if len(first)+len(second) != len(tt.returns) {
				t.Errorf("halves total %d elements, want %d", len(first)+len(second), len(tt.returns))
			}
			joined := append(append([]float64{}, first...), second...)
			for i, v := range joined {
				if v != tt.returns[i] {
					t.Fatalf("concatenated halves = %v, want %v", joined, tt.returns)
				}
			}
		})
	}
}

func TestSplitPeriod_OddMiddleGoesSecond(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3})
	first, second := a.SplitPeriod()
	if len(first) != 1 || first[0] != 1 {
		t.Errorf("first half = %v, want [1]", first)
	}
	if len(second) != 2 || second[0] != 2 {
		t.Errorf("second half = %v, want [2 3]", second)
	}
}

func TestSplitPeriod_SampleSeries(t *testing.T) {
	a := mustNew(t, sampleReturns)
	first, second := a.SplitPeriod()
	if len(first) != 10 || len(second) != 10 {
		t.Fatalf("expected 10/10 split, got %d/%d", len(first), len(second))
	}
	if first[0] != 1.22 || first[9] != 9.25 {
		t.Errorf("unexpected first half: %v", first)
	}
	if second[0] != 7.82 || second[9] != 10.25 {
		t.Errorf("unexpected second half: %v", second)
	}
}

func TestComparePeriodVolatility_SampleSeries(t *testing.T) {
	a := mustNew(t, sampleReturns)
	cmp, err := a.ComparePeriodVolatility()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"first period volatility", cmp.FirstPeriodVolatility, 2.6048},
		{"second period volatility", cmp.SecondPeriodVolatility, 3.0900},
		{"volatility change", cmp.VolatilityChange, 0.4852},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 5e-5 {
			t.Errorf("%s = %.4f, want %.4f", c.name, c.got, c.want)
		}
	}
	if math.Abs(cmp.VolatilityChangePercent-18.63) > 5e-3 {
		t.Errorf("volatility change percent = %.2f, want 18.63", cmp.VolatilityChangePercent)
	}
}

func TestComparePeriodVolatility_SingleElement(t *testing.T) {
	a := mustNew(t, []float64{4.2})
	if _, err := a.ComparePeriodVolatility(); !errors.Is(err, calculator.ErrEmptySequence) {
		t.Fatalf("expected ErrEmptySequence for single-element series, got %v", err)
	}
}

func TestComparePeriodVolatility_ConstantFirstHalf(t *testing.T) {
	a := mustNew(t, []float64{5, 5, 5, 5, 1, 9, 3, 7})
	if _, err := a.ComparePeriodVolatility(); !errors.Is(err, calculator.ErrZeroDenominator) {
		t.Fatalf("expected ErrZeroDenominator for constant first half, got %v", err)
	}
}

func TestSummaryStatistics_SampleSeries(t *testing.T) {
	a := mustNew(t, sampleReturns)
	stats := a.SummaryStatistics()
	if stats.Count != 20 {
		t.Errorf("count = %d, want 20", stats.Count)
	}
	if stats.Min != 1.22 {
		t.Errorf("min = %g, want 1.22", stats.Min)
	}
	if stats.Max != 10.25 {
		t.Errorf("max = %g, want 10.25", stats.Max)
	}
	sum := 0.0
	for _, r := range sampleReturns {
		sum += r
	}
	if math.Abs(stats.Mean-sum/20) > 1e-9 {
		t.Errorf("mean = %.10f, want %.10f", stats.Mean, sum/20)
	}
	if math.Abs(stats.Mean-5.6030) > 5e-5 {
		t.Errorf("mean = %.4f, want 5.6030", stats.Mean)
	}
}

func TestStringForms(t *testing.T) {
	a := mustNew(t, sampleReturns)
	if got := a.String(); got != "Analyzer(observations=20)" {
		t.Errorf("String() = %q", got)
	}
	want := "Analyzer with 20 observations\nMean: 5.6030, Volatility: 3.0393"
	if got := a.Describe(); got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}
