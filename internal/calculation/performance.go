package calculation

import (
	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/shopspring/decimal"
)

// PerformanceEstimate holds the annual performance factor before and after
// clamping and rounding.
type PerformanceEstimate struct {
	Raw      decimal.Decimal
	Reported decimal.Decimal // clamped to the table range, one decimal place
}

// EstimatePerformance derives the annual performance factor for in.
func EstimatePerformance(in domain.ScenarioInput, t domain.PricingTables) PerformanceEstimate {
	raw := t.Pump(in.PumpType).BaselineFactor.
		Add(t.Surface(in.HeatingSurfaceType).FactorDelta).
		Add(t.BuildingYear(in.BuildingYearBand).FactorDelta)

	return PerformanceEstimate{
		Raw:      raw,
		Reported: clampFactor(raw, t).Round(1),
	}
}

func clampFactor(f decimal.Decimal, t domain.PricingTables) decimal.Decimal {
	if f.LessThan(t.FactorFloor) {
		return t.FactorFloor
	}
	if f.GreaterThan(t.FactorCeiling) {
		return t.FactorCeiling
	}
	return f
}
