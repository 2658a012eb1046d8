package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// CostBreakdown is the result of one estimate. Currency amounts are whole
// units; rates and the performance factor are decimals.
type CostBreakdown struct {
	EquipmentCost            decimal.Decimal `yaml:"equipment_cost" json:"equipmentCost"`
	InstallationCost         decimal.Decimal `yaml:"installation_cost" json:"installationCost"`
	TotalCost                decimal.Decimal `yaml:"total_cost" json:"totalCost"`
	EligibleCostCap          decimal.Decimal `yaml:"eligible_cost_cap" json:"eligibleCostCap"`
	EligibleCosts            decimal.Decimal `yaml:"eligible_costs" json:"eligibleCosts"`
	SubsidyRate              decimal.Decimal `yaml:"subsidy_rate" json:"subsidyRate"`
	SubsidyAmount            decimal.Decimal `yaml:"subsidy_amount" json:"subsidyAmount"`
	NetCost                  decimal.Decimal `yaml:"net_cost" json:"netCost"`
	PerformanceFactor        decimal.Decimal `yaml:"performance_factor" json:"performanceFactor"`
	AnnualSavings            decimal.Decimal `yaml:"annual_savings" json:"annualSavings"`
	ClimateSpeedBonusApplied bool            `yaml:"climate_speed_bonus" json:"climateSpeedBonusApplied"`
	EfficiencyBonusApplied   bool            `yaml:"efficiency_bonus" json:"efficiencyBonusApplied"`
}

type costBreakdownFields CostBreakdown

// MarshalJSON renders the performance factor with exactly one decimal digit.
func (b CostBreakdown) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		costBreakdownFields
		PerformanceFactor string `json:"performanceFactor"`
	}{costBreakdownFields(b), b.PerformanceFactor.StringFixed(1)})
}

// MarshalYAML renders the performance factor with exactly one decimal digit.
func (b CostBreakdown) MarshalYAML() (any, error) {
	var node yaml.Node
	if err := node.Encode(costBreakdownFields(b)); err != nil {
		return nil, err
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "performance_factor" {
			node.Content[i+1].Value = b.PerformanceFactor.StringFixed(1)
		}
	}
	return &node, nil
}

// PaybackYears returns net cost divided by annual savings, rounded to one
// decimal. ok is false when there are no savings to pay the investment back.
func (b CostBreakdown) PaybackYears() (years decimal.Decimal, ok bool) {
	if !b.AnnualSavings.IsPositive() {
		return decimal.Zero, false
	}
	if !b.NetCost.IsPositive() {
		return decimal.Zero, true
	}
	return b.NetCost.Div(b.AnnualSavings).Round(1), true
}

// CostStage is the running cost after one adjustment step.
type CostStage struct {
	Step   string          `yaml:"step" json:"step"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// SubsidyDetail records how the subsidy rate was assembled.
type SubsidyDetail struct {
	BaseRate          decimal.Decimal `yaml:"base_rate" json:"baseRate"`
	ClimateSpeedBonus decimal.Decimal `yaml:"climate_speed_bonus" json:"climateSpeedBonus"`
	EfficiencyBonus   decimal.Decimal `yaml:"efficiency_bonus" json:"efficiencyBonus"`
	IncomeBonus       decimal.Decimal `yaml:"income_bonus" json:"incomeBonus"`
	UncappedRate      decimal.Decimal `yaml:"uncapped_rate" json:"uncappedRate"`
	RateCapped        bool            `yaml:"rate_capped" json:"rateCapped"`
	CountedExtraUnits int             `yaml:"counted_extra_units" json:"countedExtraUnits"`
	CostCapBinding    bool            `yaml:"cost_cap_binding" json:"costCapBinding"`
}

// SavingsDetail records both sides of the operating-cost comparison.
type SavingsDetail struct {
	BaselineAnnualCost decimal.Decimal `yaml:"baseline_annual_cost" json:"baselineAnnualCost"`
	HeatPumpAnnualCost decimal.Decimal `yaml:"heat_pump_annual_cost" json:"heatPumpAnnualCost"`
	AnnualHeatDemand   decimal.Decimal `yaml:"annual_heat_demand_kwh" json:"annualHeatDemandKwh"`
}

// DefaultReason explains why the normalizer substituted a default.
type DefaultReason string

const (
	ReasonOmitted      DefaultReason = "omitted"
	ReasonUnrecognized DefaultReason = "unrecognized"
	ReasonOutOfRange   DefaultReason = "out_of_range"
)

// DefaultedField is one field the normalizer filled in.
type DefaultedField struct {
	Field  string        `yaml:"field" json:"field"`
	Reason DefaultReason `yaml:"reason" json:"reason"`
	Raw    string        `yaml:"raw,omitempty" json:"raw,omitempty"`
	Value  string        `yaml:"value" json:"value"`
}

// NormalizationReport lists the fields that were defaulted, in field order.
type NormalizationReport struct {
	Defaulted []DefaultedField `yaml:"defaulted,omitempty" json:"defaulted,omitempty"`
}

// Substituted returns only the fields that were present but unusable.
func (r NormalizationReport) Substituted() []DefaultedField {
	var out []DefaultedField
	for _, f := range r.Defaulted {
		if f.Reason != ReasonOmitted {
			out = append(out, f)
		}
	}
	return out
}

// EstimateReport is a breakdown together with the input and intermediate
// values that produced it.
type EstimateReport struct {
	Name                 string              `yaml:"name,omitempty" json:"name,omitempty"`
	Input                ScenarioInput       `yaml:"input" json:"input"`
	Breakdown            CostBreakdown       `yaml:"breakdown" json:"breakdown"`
	CostStages           []CostStage         `yaml:"cost_stages" json:"costStages"`
	RawPerformanceFactor decimal.Decimal     `yaml:"raw_performance_factor" json:"rawPerformanceFactor"`
	Subsidy              SubsidyDetail       `yaml:"subsidy" json:"subsidy"`
	Savings              SavingsDetail       `yaml:"savings" json:"savings"`
	Normalization        NormalizationReport `yaml:"normalization,omitempty" json:"normalization,omitempty"`
}

// EstimateSet is the result of estimating every scenario in a file.
type EstimateSet struct {
	Source      string           `yaml:"source,omitempty" json:"source,omitempty"`
	Reports     []EstimateReport `yaml:"reports" json:"reports"`
	Assumptions []string         `yaml:"assumptions,omitempty" json:"assumptions,omitempty"`
}
