package calculation

import (
	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/shopspring/decimal"
)

// SubsidyResult is the output of the subsidy model.
type SubsidyResult struct {
	EligibleCostCap   decimal.Decimal
	EligibleCosts     decimal.Decimal
	Rate              decimal.Decimal
	Amount            decimal.Decimal
	NetCost           decimal.Decimal
	ClimateSpeedBonus bool
	EfficiencyBonus   bool
	IncomeBonus       bool
	Detail            domain.SubsidyDetail
}

// CalculateSubsidy applies the funding rules to a total installed cost.
// rawFactor is the unclamped performance factor.
func CalculateSubsidy(in domain.ScenarioInput, totalCost, rawFactor decimal.Decimal, f domain.FundingConstants) SubsidyResult {
	costCap, counted := EligibleCostCap(in, f)

	eligible := decimal.Min(totalCost, costCap)
	if eligible.IsNegative() {
		eligible = decimal.Zero
	}

	climate := QualifiesForClimateSpeedBonus(in.CurrentHeatingFuel)
	efficiency := rawFactor.GreaterThanOrEqual(f.EfficiencyBonusMinFactor)
	income := in.IncomeBonusClaimed

	detail := domain.SubsidyDetail{
		BaseRate:          f.BaseRate,
		ClimateSpeedBonus: bonus(climate, f.ClimateSpeedBonusRate),
		EfficiencyBonus:   bonus(efficiency, f.EfficiencyBonusRate),
		IncomeBonus:       bonus(income, f.IncomeBonusRate),
		CountedExtraUnits: counted,
		CostCapBinding:    totalCost.GreaterThan(costCap),
	}
	detail.UncappedRate = detail.BaseRate.
		Add(detail.ClimateSpeedBonus).
		Add(detail.EfficiencyBonus).
		Add(detail.IncomeBonus)

	rate := detail.UncappedRate
	if rate.GreaterThan(f.MaxCombinedRate) {
		rate = f.MaxCombinedRate
		detail.RateCapped = true
	}
	if rate.IsNegative() {
		rate = decimal.Zero
	}

	amount := roundCurrency(eligible.Mul(rate))

	return SubsidyResult{
		EligibleCostCap:   costCap,
		EligibleCosts:     eligible,
		Rate:              rate,
		Amount:            amount,
		NetCost:           totalCost.Sub(amount),
		ClimateSpeedBonus: climate,
		EfficiencyBonus:   efficiency,
		IncomeBonus:       income,
		Detail:            detail,
	}
}

// EligibleCostCap returns the cost cap for in and how many additional units
// were counted toward it. Only multi-family properties earn per-unit increments.
func EligibleCostCap(in domain.ScenarioInput, f domain.FundingConstants) (decimal.Decimal, int) {
	if in.PropertyType != domain.PropertyMultiFamily {
		return f.BaseEligibleCostCap, 0
	}
	extra := in.UnitCount - 1
	if extra < 0 {
		extra = 0
	}
	if extra > f.MaxCountedAdditionalUnits {
		extra = f.MaxCountedAdditionalUnits
	}
	return f.BaseEligibleCostCap.Add(f.PerUnitCapIncrement.Mul(decimal.NewFromInt(int64(extra)))), extra
}

// QualifiesForClimateSpeedBonus reports whether replacing fuel earns the
// climate-speed bonus. Every fossil or resistive system qualifies.
func QualifiesForClimateSpeedBonus(fuel domain.HeatingFuel) bool {
	switch fuel {
	case domain.FuelGas, domain.FuelOil, domain.FuelSolidFuel, domain.FuelElectricResistance:
		return true
	default:
		// unknown fuel resolves to the gas baseline
		return true
	}
}

func bonus(applies bool, rate decimal.Decimal) decimal.Decimal {
	if applies {
		return rate
	}
	return decimal.Zero
}
