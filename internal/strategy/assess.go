package strategy

import (
	"fmt"

	"RiskSentinel/internal/model"
)

// Tiers maps daily volatility (in percent) to a risk level, highest first.
var Tiers = []struct {
	MinVolatility float64
	Level         model.RiskLevel
}{
	{3.0, model.RiskExtreme},
	{1.5, model.RiskElevated},
	{0.5, model.RiskNormal},
}

// DefaultLevel is the level for volatility below the lowest tier.
var DefaultLevel = model.RiskCalm

// mapLevel maps a daily volatility to a RiskLevel.
func mapLevel(volatility float64) model.RiskLevel {
	for _, t := range Tiers {
		if volatility >= t.MinVolatility {
			return t.Level
		}
	}
	return DefaultLevel
}

// Assess derives a risk assessment from a volatility report.
func Assess(report *model.VolatilityReport) *model.RiskAssessment {
	level := mapLevel(report.Summary.Volatility)

	commentary := fmt.Sprintf("daily volatility %.4f%% over %d observations",
		report.Summary.Volatility, report.Summary.Count)
	if cmp := report.Comparison; cmp != nil {
		switch {
		case cmp.VolatilityChangePercent >= 50:
			commentary += fmt.Sprintf(", rising sharply (%+.2f%%)", cmp.VolatilityChangePercent)
		case cmp.VolatilityChangePercent <= -30:
			commentary += fmt.Sprintf(", cooling down (%+.2f%%)", cmp.VolatilityChangePercent)
		default:
			commentary += fmt.Sprintf(", period change %+.2f%%", cmp.VolatilityChangePercent)
		}
	}

	return &model.RiskAssessment{Level: level, Commentary: commentary}
}
