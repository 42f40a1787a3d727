package notifier

import (
	"fmt"
	"strings"

	"RiskSentinel/internal/model"
)

// FormatReport formats a volatility report into a Telegram message.
func FormatReport(report *model.VolatilityReport, assessment *model.RiskAssessment) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>RiskSentinel Volatility Report</b> | %s\n\n",
		report.FetchedAt.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Symbol: %s (price %.2f)\n", report.Symbol, report.CurrentPrice))
	b.WriteString(fmt.Sprintf("Window: %d trading days\n\n", report.LookbackDays))

	stats := report.Summary
	b.WriteString("📈 <b>Daily return statistics:</b>\n")
	b.WriteString(fmt.Sprintf("  Observations: %d\n", stats.Count))
	b.WriteString(fmt.Sprintf("  Mean:         %+.4f%%\n", stats.Mean))
	b.WriteString(fmt.Sprintf("  Volatility:   %.4f%%\n", stats.Volatility))
	b.WriteString(fmt.Sprintf("  Range:        %+.4f%% ~ %+.4f%%\n", stats.Min, stats.Max))

	if cmp := report.Comparison; cmp != nil {
		b.WriteString("\n")
		b.WriteString(FormatComparison(cmp))
	}

	if assessment != nil {
		b.WriteString(fmt.Sprintf("\n🚦 <b>Risk level:</b> %s\n   %s\n",
			assessment.Level, assessment.Commentary))
	}

	return b.String()
}

// FormatComparison formats the half-period volatility comparison block.
func FormatComparison(cmp *model.PeriodComparison) string {
	var b strings.Builder
	b.WriteString("🔀 <b>Period comparison:</b>\n")
	b.WriteString(fmt.Sprintf("  First half volatility:  %.4f%%\n", cmp.FirstPeriodVolatility))
	b.WriteString(fmt.Sprintf("  Second half volatility: %.4f%%\n", cmp.SecondPeriodVolatility))
	b.WriteString(fmt.Sprintf("  Absolute change:        %+.4f\n", cmp.VolatilityChange))
	b.WriteString(fmt.Sprintf("  Percentage change:      %+.2f%%\n", cmp.VolatilityChangePercent))
	return b.String()
}

// FormatSpikeAlert formats a volatility spike alert.
func FormatSpikeAlert(symbol string, volatility, rollingMean, threshold float64) string {
	return fmt.Sprintf("⚠️ <b>Volatility spike</b> | %s\n\nToday: %.4f%%\nRolling mean: %.4f%%\nThreshold: %.1fx",
		symbol, volatility, rollingMean, threshold)
}

// FormatTrackerStatus formats the rolling tracker state for display.
func FormatTrackerStatus(state *model.TrackerState) string {
	var b strings.Builder
	b.WriteString("📦 <b>Tracker status</b>\n\n")
	b.WriteString(fmt.Sprintf("Recorded readings: %d\n", len(state.RecentVolatilities)))
	if len(state.RecentVolatilities) > 0 {
		sum := 0.0
		for _, v := range state.RecentVolatilities {
			sum += v
		}
		b.WriteString(fmt.Sprintf("Rolling mean volatility: %.4f%%\n", sum/float64(len(state.RecentVolatilities))))
	}
	b.WriteString(fmt.Sprintf("Consecutive elevated days: %d\n", state.ConsecutiveElevatedDays))
	if !state.LastAlertAt.IsZero() {
		b.WriteString(fmt.Sprintf("Last alert: %s\n", state.LastAlertAt.Format("2006-01-02 15:04")))
	}
	b.WriteString(fmt.Sprintf("Updated: %s\n", state.UpdatedAt.Format("2006-01-02 15:04")))
	return b.String()
}
