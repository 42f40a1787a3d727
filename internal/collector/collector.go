package collector

import (
	"errors"
	"fmt"
	"log"
	"time"

	"RiskSentinel/internal/analyzer"
	"RiskSentinel/internal/calculator"
	"RiskSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price     float64
	DailyData []model.OHLCV
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, days int) ([]model.OHLCV, error) {
	if m.DailyData != nil {
		return m.DailyData, nil
	}
	return generateMockBars(m.Price, days), nil
}

func (m *MockFetcher) FetchCurrentPrice(_ string) (float64, error) {
	return m.Price, nil
}

func generateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector orchestrates data fetching and volatility analysis.
type Collector struct {
	Fetcher      Fetcher
	Symbol       string
	LookbackDays int
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbol string, lookbackDays int) *Collector {
	return &Collector{Fetcher: fetcher, Symbol: symbol, LookbackDays: lookbackDays}
}

// Collect fetches daily closes, derives percentage returns, and runs the
// volatility analysis. A zero-volatility first half disables the period
// comparison section instead of failing the run.
func (c *Collector) Collect() (*model.VolatilityReport, error) {
	// One extra bar: n closes yield n-1 returns.
	dailyBars, err := c.Fetcher.FetchDailyBars(c.Symbol, c.LookbackDays+1)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars: %w", err)
	}
	currentPrice, err := c.Fetcher.FetchCurrentPrice(c.Symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch current price: %w", err)
	}

	closes := make([]float64, len(dailyBars))
	for i, b := range dailyBars {
		closes[i] = b.Close
	}
	returns := calculator.DailyReturns(closes)

	a, err := analyzer.New(returns)
	if err != nil {
		return nil, fmt.Errorf("build analyzer from %d bars: %w", len(dailyBars), err)
	}

	report := &model.VolatilityReport{
		Symbol:       c.Symbol,
		LookbackDays: c.LookbackDays,
		CurrentPrice: currentPrice,
		Summary:      a.SummaryStatistics(),
		FetchedAt:    time.Now(),
	}

	cmp, err := a.ComparePeriodVolatility()
	switch {
	case err == nil:
		report.Comparison = cmp
	case errors.Is(err, calculator.ErrZeroDenominator):
		log.Printf("[WARN] period comparison skipped: %v", err)
	default:
		return nil, fmt.Errorf("compare periods: %w", err)
	}

	return report, nil
}
