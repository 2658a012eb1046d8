package calculation

import (
	"fmt"

	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/shopspring/decimal"
)

// EstimationEngine runs the estimate pipeline against a fixed set of tables.
// It holds no per-call state: configure it once, then call Estimate from any
// number of goroutines.
type EstimationEngine struct {
	Pricing domain.PricingTables
	Funding domain.FundingConstants
	Logger  Logger
}

// NewEstimationEngine creates an engine with the default tables
func NewEstimationEngine() *EstimationEngine {
	return &EstimationEngine{
		Pricing: domain.DefaultPricingTables(),
		Funding: domain.DefaultFundingConstants(),
		Logger:  NopLogger{},
	}
}

// NewEstimationEngineWithConfig creates an engine with the given funding constants
func NewEstimationEngineWithConfig(funding domain.FundingConstants) *EstimationEngine {
	engine := NewEstimationEngine()
	engine.Funding = funding
	return engine
}

// SetLogger replaces the logger; nil restores the no-op logger.
func (e *EstimationEngine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

func (e *EstimationEngine) log() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}

// Estimate computes the full breakdown for a normalized input. It never fails.
func (e *EstimationEngine) Estimate(in domain.ScenarioInput) domain.EstimateReport {
	cost := EstimateCost(in, e.Pricing)
	for _, stage := range cost.Stages {
		e.log().Debugf("cost %-13s %s", stage.Step, stage.Amount.StringFixed(2))
	}

	perf := EstimatePerformance(in, e.Pricing)
	e.log().Debugf("performance factor raw=%s reported=%s", perf.Raw.String(), perf.Reported.StringFixed(1))

	subsidy := CalculateSubsidy(in, cost.TotalCost, perf.Raw, e.Funding)
	savings := EstimateSavings(in, perf.Reported, e.Pricing)

	breakdown := domain.CostBreakdown{
		EquipmentCost:            cost.EquipmentCost,
		InstallationCost:         cost.InstallationCost,
		TotalCost:                cost.TotalCost,
		EligibleCostCap:          subsidy.EligibleCostCap,
		EligibleCosts:            subsidy.EligibleCosts,
		SubsidyRate:              subsidy.Rate,
		SubsidyAmount:            subsidy.Amount,
		NetCost:                  subsidy.NetCost,
		PerformanceFactor:        perf.Reported,
		AnnualSavings:            savings.AnnualSavings,
		ClimateSpeedBonusApplied: subsidy.ClimateSpeedBonus,
		EfficiencyBonusApplied:   subsidy.EfficiencyBonus,
	}

	e.log().Infof("estimate total=%s subsidy=%s net=%s savings=%s",
		breakdown.TotalCost.StringFixed(0), breakdown.SubsidyAmount.StringFixed(0),
		breakdown.NetCost.StringFixed(0), breakdown.AnnualSavings.StringFixed(0))

	return domain.EstimateReport{
		Input:                in,
		Breakdown:            breakdown,
		CostStages:           cost.Stages,
		RawPerformanceFactor: perf.Raw,
		Subsidy:              subsidy.Detail,
		Savings: domain.SavingsDetail{
			BaselineAnnualCost: savings.BaselineAnnualCost,
			HeatPumpAnnualCost: savings.HeatPumpAnnualCost,
			AnnualHeatDemand:   savings.AnnualHeatDemand,
		},
	}
}

// EstimateFromPartial normalizes p and estimates the result. Substituted
// fields are logged as warnings and recorded on the report.
func (e *EstimationEngine) EstimateFromPartial(p domain.PartialScenario) domain.EstimateReport {
	in, norm := Normalize(p)
	for _, f := range norm.Substituted() {
		e.log().Warnf("%s: %s value %q replaced by %s", f.Field, f.Reason, f.Raw, f.Value)
	}
	report := e.Estimate(in)
	report.Normalization = norm
	return report
}

// EstimateScenarios estimates every named scenario in order.
func (e *EstimationEngine) EstimateScenarios(scenarios []domain.NamedScenario) domain.EstimateSet {
	set := domain.EstimateSet{
		Reports:     make([]domain.EstimateReport, 0, len(scenarios)),
		Assumptions: e.Assumptions(),
	}
	for _, sc := range scenarios {
		e.log().Debugf("estimating scenario %s", sc.Name)
		report := e.EstimateFromPartial(sc.Input)
		report.Name = sc.Name
		set.Reports = append(set.Reports, report)
	}
	return set
}

// Assumptions lists the modelling assumptions behind every estimate from e.
func (e *EstimationEngine) Assumptions() []string {
	p, f := e.Pricing, e.Funding
	return []string{
		fmt.Sprintf("Electricity price: %s per kWh", p.ElectricityPrice.StringFixed(2)),
		fmt.Sprintf("Domestic hot water: %s per occupant added to equipment cost", p.HotWaterPerOccupant.StringFixed(0)),
		fmt.Sprintf("Performance factor clamped to %s..%s", p.FactorFloor.StringFixed(1), p.FactorCeiling.StringFixed(1)),
		fmt.Sprintf("Subsidy: base %s, climate speed bonus %s, efficiency bonus %s, income bonus %s, capped at %s",
			pct(f.BaseRate), pct(f.ClimateSpeedBonusRate), pct(f.EfficiencyBonusRate), pct(f.IncomeBonusRate), pct(f.MaxCombinedRate)),
		fmt.Sprintf("Eligible costs capped at %s plus %s per additional unit (at most %d)",
			f.BaseEligibleCostCap.StringFixed(0), f.PerUnitCapIncrement.StringFixed(0), f.MaxCountedAdditionalUnits),
		fmt.Sprintf("Efficiency bonus requires a raw performance factor of at least %s", f.EfficiencyBonusMinFactor.StringFixed(1)),
	}
}

func pct(rate decimal.Decimal) string {
	return rate.Shift(2).StringFixed(0) + "%"
}
