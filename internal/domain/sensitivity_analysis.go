package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// SensitivityParameter represents a numeric scenario field to sweep
type SensitivityParameter struct {
	Name        string          `yaml:"name" json:"name"`
	MinValue    decimal.Decimal `yaml:"min_value" json:"minValue"`
	MaxValue    decimal.Decimal `yaml:"max_value" json:"maxValue"`
	Steps       int             `yaml:"steps" json:"steps"`
	BaseValue   decimal.Decimal `yaml:"base_value" json:"baseValue"`
	Unit        string          `yaml:"unit" json:"unit"` // "m2", "people", "units"
	Description string          `yaml:"description" json:"description"`
}

// ParameterSensitivityAnalysis is the outcome of a single parameter sweep
type ParameterSensitivityAnalysis struct {
	BaseScenarioName string               `json:"baseScenarioName"`
	Parameter        SensitivityParameter `json:"parameter"`
	Points           []SensitivityPoint   `json:"points"`
	Summary          SensitivitySummary   `json:"summary"`
}

// SensitivityPoint is the estimate at one parameter value
type SensitivityPoint struct {
	Value             decimal.Decimal `json:"value"`
	TotalCost         decimal.Decimal `json:"totalCost"`
	SubsidyAmount     decimal.Decimal `json:"subsidyAmount"`
	NetCost           decimal.Decimal `json:"netCost"`
	AnnualSavings     decimal.Decimal `json:"annualSavings"`
	PerformanceFactor decimal.Decimal `json:"performanceFactor"`
	CostCapBinding    bool            `json:"costCapBinding"`
	NetCostChange     decimal.Decimal `json:"netCostChange"` // relative to the base value
}

type sensitivityPointFields SensitivityPoint

// MarshalJSON renders the performance factor with exactly one decimal digit.
func (p SensitivityPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		sensitivityPointFields
		PerformanceFactor string `json:"performanceFactor"`
	}{sensitivityPointFields(p), p.PerformanceFactor.StringFixed(1)})
}

// SensitivitySummary describes the spread across the sweep
type SensitivitySummary struct {
	MinNetCost      decimal.Decimal  `json:"minNetCost"`
	MaxNetCost      decimal.Decimal  `json:"maxNetCost"`
	NetCostSpread   decimal.Decimal  `json:"netCostSpread"`
	SavingsSpread   decimal.Decimal  `json:"savingsSpread"`
	CapBindsAt      *decimal.Decimal `json:"capBindsAt,omitempty"` // first value at which eligible costs hit the cap
	Recommendations []string         `json:"recommendations"`
}

// Common sensitivity parameters
var (
	AreaParam = SensitivityParameter{
		Name:        "area_sqm",
		MinValue:    decimal.NewFromInt(80),
		MaxValue:    decimal.NewFromInt(300),
		Steps:       12,
		BaseValue:   decimal.NewFromInt(150),
		Unit:        "m2",
		Description: "Conditioned floor area",
	}

	OccupantsParam = SensitivityParameter{
		Name:        "occupants",
		MinValue:    decimal.NewFromInt(1),
		MaxValue:    decimal.NewFromInt(8),
		Steps:       8,
		BaseValue:   decimal.NewFromInt(3),
		Unit:        "people",
		Description: "Occupants drawing domestic hot water",
	}

	UnitCountParam = SensitivityParameter{
		Name:        "unit_count",
		MinValue:    decimal.NewFromInt(1),
		MaxValue:    decimal.NewFromInt(10),
		Steps:       10,
		BaseValue:   decimal.NewFromInt(1),
		Unit:        "units",
		Description: "Residential units in a multi-family building",
	}
)

// GetCommonSensitivityParameters returns the sweepable parameters
func GetCommonSensitivityParameters() []SensitivityParameter {
	return []SensitivityParameter{AreaParam, OccupantsParam, UnitCountParam}
}
