package strategy

import (
	"strings"
	"testing"

	"RiskSentinel/internal/model"
)

func TestMapLevel_AllBoundaries(t *testing.T) {
	tests := []struct {
		vol   float64
		level model.RiskLevel
	}{
		{5.0, model.RiskExtreme},
		{3.0, model.RiskExtreme},
		{2.0, model.RiskElevated},
		{1.5, model.RiskElevated},
		{1.0, model.RiskNormal},
		{0.5, model.RiskNormal},
		{0.3, model.RiskCalm},
		{0.0, model.RiskCalm},
	}
	for _, tt := range tests {
		if got := mapLevel(tt.vol); got != tt.level {
			t.Errorf("mapLevel(%.1f) = %s, want %s", tt.vol, got, tt.level)
		}
	}
}

func TestAssess_WithComparison(t *testing.T) {
	report := &model.VolatilityReport{
		Summary: model.SummaryStatistics{Volatility: 2.1, Count: 30},
		Comparison: &model.PeriodComparison{
			FirstPeriodVolatility:   1.0,
			SecondPeriodVolatility:  2.0,
			VolatilityChange:        1.0,
			VolatilityChangePercent: 100,
		},
	}
	a := Assess(report)
	if a.Level != model.RiskElevated {
		t.Errorf("level = %s, want ELEVATED", a.Level)
	}
	if !strings.Contains(a.Commentary, "rising sharply") {
		t.Errorf("commentary missing rise note: %q", a.Commentary)
	}
}

func TestAssess_WithoutComparison(t *testing.T) {
	report := &model.VolatilityReport{
		Summary: model.SummaryStatistics{Volatility: 0.2, Count: 10},
	}
	a := Assess(report)
	if a.Level != model.RiskCalm {
		t.Errorf("level = %s, want CALM", a.Level)
	}
	if strings.Contains(a.Commentary, "period change") {
		t.Errorf("commentary should omit period change: %q", a.Commentary)
	}
}
