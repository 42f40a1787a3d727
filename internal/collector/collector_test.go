package collector

import (
	"math"
	"testing"
	"time"

	"RiskSentinel/internal/model"
)

func barsFromCloses(closes []float64) []model.OHLCV {
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:  time.Now().AddDate(0, 0, -(len(closes) - i)),
			Open:  c, High: c, Low: c, Close: c,
			Volume: 1,
		}
	}
	return bars
}

func TestCollect_ReportShape(t *testing.T) {
	closes := []float64{100, 102, 101, 103, 99, 104, 100, 105, 103, 106, 102}
	fetcher := &MockFetcher{Price: 106, DailyData: barsFromCloses(closes)}
	col := NewCollector(fetcher, "SPX500", 10)

	report, err := col.Collect()
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if report.Symbol != "SPX500" {
		t.Errorf("symbol = %q", report.Symbol)
	}
	if report.CurrentPrice != 106 {
		t.Errorf("current price = %g", report.CurrentPrice)
	}
	// 11 closes -> 10 returns
	if report.Summary.Count != 10 {
		t.Errorf("count = %d, want 10", report.Summary.Count)
	}
	if report.Summary.Volatility <= 0 {
		t.Errorf("volatility = %g, want > 0", report.Summary.Volatility)
	}
	if report.Comparison == nil {
		t.Fatal("expected a period comparison")
	}
	if math.IsNaN(report.Comparison.VolatilityChangePercent) {
		t.Error("comparison produced NaN")
	}
}

func TestCollect_ConstantFirstHalfSkipsComparison(t *testing.T) {
	// Doubling closes give exactly +100% for the first four returns, so the
	// first half of the window has exactly zero volatility.
	closes := []float64{100, 200, 400, 800, 1600, 1000, 1500, 900, 1400}
	fetcher := &MockFetcher{Price: 1400, DailyData: barsFromCloses(closes)}
	col := NewCollector(fetcher, "SPX500", 8)

	report, err := col.Collect()
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if report.Comparison != nil {
		t.Errorf("expected comparison to be skipped, got %+v", report.Comparison)
	}
	if report.Summary.Count != 8 {
		t.Errorf("count = %d, want 8", report.Summary.Count)
	}
}

func TestCollect_TooFewBars(t *testing.T) {
	fetcher := &MockFetcher{Price: 100, DailyData: barsFromCloses([]float64{100})}
	col := NewCollector(fetcher, "SPX500", 10)
	if _, err := col.Collect(); err == nil {
		t.Fatal("expected error for a single bar")
	}
}
