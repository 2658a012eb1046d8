package domain

import "github.com/shopspring/decimal"

// FundingConstants holds the subsidy program parameters. Values are read-only
// once loaded; the engine keeps its own copy.
type FundingConstants struct {
	BaseRate                  decimal.Decimal `yaml:"base_rate" json:"baseRate"`
	ClimateSpeedBonusRate     decimal.Decimal `yaml:"climate_speed_bonus_rate" json:"climateSpeedBonusRate"`
	EfficiencyBonusRate       decimal.Decimal `yaml:"efficiency_bonus_rate" json:"efficiencyBonusRate"`
	IncomeBonusRate           decimal.Decimal `yaml:"income_bonus_rate" json:"incomeBonusRate"`
	MaxCombinedRate           decimal.Decimal `yaml:"max_combined_rate" json:"maxCombinedRate"`
	BaseEligibleCostCap       decimal.Decimal `yaml:"base_eligible_cost_cap" json:"baseEligibleCostCap"`
	PerUnitCapIncrement       decimal.Decimal `yaml:"per_unit_cap_increment" json:"perUnitCapIncrement"`
	MaxCountedAdditionalUnits int             `yaml:"max_counted_additional_units" json:"maxCountedAdditionalUnits"`
	EfficiencyBonusMinFactor  decimal.Decimal `yaml:"efficiency_bonus_min_factor" json:"efficiencyBonusMinFactor"`
}

// DefaultFundingConstants returns the current federal program parameters.
func DefaultFundingConstants() FundingConstants {
	return FundingConstants{
		BaseRate:                  decimal.NewFromFloat(0.30),
		ClimateSpeedBonusRate:     decimal.NewFromFloat(0.20),
		EfficiencyBonusRate:       decimal.NewFromFloat(0.05),
		IncomeBonusRate:           decimal.NewFromFloat(0.30),
		MaxCombinedRate:           decimal.NewFromFloat(0.70),
		BaseEligibleCostCap:       decimal.NewFromInt(30000),
		PerUnitCapIncrement:       decimal.NewFromInt(15000),
		MaxCountedAdditionalUnits: 5,
		EfficiencyBonusMinFactor:  decimal.NewFromFloat(4.5),
	}
}

// MaxEligibleCostCap is the largest cap any multi-family property can reach.
func (f FundingConstants) MaxEligibleCostCap() decimal.Decimal {
	return f.BaseEligibleCostCap.Add(f.PerUnitCapIncrement.Mul(decimal.NewFromInt(int64(f.MaxCountedAdditionalUnits))))
}

// FundingOverrides is the optional shape of a funding.yaml file. Any field
// left out keeps its default.
type FundingOverrides struct {
	BaseRate                  *decimal.Decimal `yaml:"base_rate,omitempty" json:"baseRate,omitempty"`
	ClimateSpeedBonusRate     *decimal.Decimal `yaml:"climate_speed_bonus_rate,omitempty" json:"climateSpeedBonusRate,omitempty"`
	EfficiencyBonusRate       *decimal.Decimal `yaml:"efficiency_bonus_rate,omitempty" json:"efficiencyBonusRate,omitempty"`
	IncomeBonusRate           *decimal.Decimal `yaml:"income_bonus_rate,omitempty" json:"incomeBonusRate,omitempty"`
	MaxCombinedRate           *decimal.Decimal `yaml:"max_combined_rate,omitempty" json:"maxCombinedRate,omitempty"`
	BaseEligibleCostCap       *decimal.Decimal `yaml:"base_eligible_cost_cap,omitempty" json:"baseEligibleCostCap,omitempty"`
	PerUnitCapIncrement       *decimal.Decimal `yaml:"per_unit_cap_increment,omitempty" json:"perUnitCapIncrement,omitempty"`
	MaxCountedAdditionalUnits *int             `yaml:"max_counted_additional_units,omitempty" json:"maxCountedAdditionalUnits,omitempty"`
	EfficiencyBonusMinFactor  *decimal.Decimal `yaml:"efficiency_bonus_min_factor,omitempty" json:"efficiencyBonusMinFactor,omitempty"`
}

// Apply returns base with every set override substituted.
func (o FundingOverrides) Apply(base FundingConstants) FundingConstants {
	out := base
	if o.BaseRate != nil {
		out.BaseRate = *o.BaseRate
	}
	if o.ClimateSpeedBonusRate != nil {
		out.ClimateSpeedBonusRate = *o.ClimateSpeedBonusRate
	}
	if o.EfficiencyBonusRate != nil {
		out.EfficiencyBonusRate = *o.EfficiencyBonusRate
	}
	if o.IncomeBonusRate != nil {
		out.IncomeBonusRate = *o.IncomeBonusRate
	}
	if o.MaxCombinedRate != nil {
		out.MaxCombinedRate = *o.MaxCombinedRate
	}
	if o.BaseEligibleCostCap != nil {
		out.BaseEligibleCostCap = *o.BaseEligibleCostCap
	}
	if o.PerUnitCapIncrement != nil {
		out.PerUnitCapIncrement = *o.PerUnitCapIncrement
	}
	if o.MaxCountedAdditionalUnits != nil {
		out.MaxCountedAdditionalUnits = *o.MaxCountedAdditionalUnits
	}
	if o.EfficiencyBonusMinFactor != nil {
		out.EfficiencyBonusMinFactor = *o.EfficiencyBonusMinFactor
	}
	return out
}
