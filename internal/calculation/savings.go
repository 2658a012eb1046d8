package calculation

import (
	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/shopspring/decimal"
)

// SavingsEstimate compares the annual operating cost of the existing system
// with the heat pump.
type SavingsEstimate struct {
	BaselineAnnualCost decimal.Decimal
	HeatPumpAnnualCost decimal.Decimal
	AnnualHeatDemand   decimal.Decimal // kWh
	AnnualSavings      decimal.Decimal // never negative
}

// EstimateSavings computes the annual saving for in at the given performance
// factor. A non-positive factor is replaced by the table floor.
func EstimateSavings(in domain.ScenarioInput, factor decimal.Decimal, t domain.PricingTables) SavingsEstimate {
	if !factor.IsPositive() {
		factor = t.FactorFloor
	}
	area := decimal.NewFromInt(int64(in.AreaSqm))

	baseline := roundCurrency(area.Mul(t.FuelCost(in.CurrentHeatingFuel)))
	demand := area.Mul(t.HeatDemand(in.InsulationQuality))
	electricity := demand.DivRound(factor, 8)
	heatPump := roundCurrency(electricity.Mul(t.ElectricityPrice))

	savings := roundCurrency(baseline.Sub(heatPump))
	if savings.IsNegative() {
		savings = decimal.Zero
	}

	return SavingsEstimate{
		BaselineAnnualCost: baseline,
		HeatPumpAnnualCost: heatPump,
		AnnualHeatDemand:   demand,
		AnnualSavings:      savings,
	}
}
