// Command demo runs the volatility analyzer over a fixed 20-day sample of
// daily returns and prints every analysis the engine offers.
package main

import (
	"fmt"
	"log"
	"strings"

	"RiskSentinel/internal/analyzer"
)

func main() {
	dailyReturns := []float64{
		1.22, 1.29, 2.24, 3.32, 4.25, 8.25, 6.25, 5.25, 4.36, 9.25,
		7.82, 6.29, 4.12, 8.35, 1.95, 6.23, 1.42, 10.00, 9.95, 10.25,
	}

	a, err := analyzer.New(dailyReturns)
	if err != nil {
		log.Fatalf("[FATAL] build analyzer: %v", err)
	}

	fmt.Println(a.Describe())
	fmt.Println("\n" + strings.Repeat("=", 50) + "\n")

	overall, err := a.Volatility()
	if err != nil {
		log.Fatalf("[FATAL] overall volatility: %v", err)
	}
	fmt.Printf("Overall Volatility: %.4f\n\n", overall)

	cmp, err := a.ComparePeriodVolatility()
	if err != nil {
		log.Fatalf("[FATAL] period comparison: %v", err)
	}
	fmt.Println("Period Comparison:")
	fmt.Printf("  First 10 Days Volatility:  %.4f\n", cmp.FirstPeriodVolatility)
	fmt.Printf("  Last 10 Days Volatility:   %.4f\n", cmp.SecondPeriodVolatility)
	fmt.Printf("  Absolute Change:           %+.4f\n", cmp.VolatilityChange)
	fmt.Printf("  Percentage Change:         %+.2f%%\n\n", cmp.VolatilityChangePercent)

	stats := a.SummaryStatistics()
	fmt.Println("Summary Statistics:")
	fmt.Printf("  Mean:       %.4f\n", stats.Mean)
	fmt.Printf("  Volatility: %.4f\n", stats.Volatility)
	fmt.Printf("  Min:        %.4f\n", stats.Min)
	fmt.Printf("  Max:        %.4f\n", stats.Max)
	fmt.Printf("  Count:      %d\n", stats.Count)
}
