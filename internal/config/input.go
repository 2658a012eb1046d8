package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Upper bounds for authored scenarios. The engine accepts anything positive;
// these catch typos like an extra zero.
const (
	maxAreaSqm   = 100000
	maxOccupants = 1000
	maxUnitCount = 1000
)

// InputParser handles parsing of scenario and funding files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario file (YAML, or JSON as a YAML subset)
func (ip *InputParser) LoadFromFile(filename string) (*domain.ScenarioFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var file domain.ScenarioFile
	if err := decodeStrict(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateScenarioFile(&file); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &file, nil
}

// LoadFundingFromFile loads funding overrides and applies them to the
// default program parameters
func (ip *InputParser) LoadFundingFromFile(filename string) (domain.FundingConstants, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.FundingConstants{}, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var overrides domain.FundingOverrides
	if err := decodeStrict(data, &overrides); err != nil {
		return domain.FundingConstants{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	funding := overrides.Apply(domain.DefaultFundingConstants())
	if err := ip.ValidateFunding(funding); err != nil {
		return domain.FundingConstants{}, fmt.Errorf("funding validation failed: %w", err)
	}
	return funding, nil
}

// ValidateScenarioFile validates the loaded scenario file
func (ip *InputParser) ValidateScenarioFile(file *domain.ScenarioFile) error {
	if len(file.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(file.Scenarios))
	for i, scenario := range file.Scenarios {
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d: duplicate name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true

		if err := ip.ValidateScenario(scenario.Input); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, scenario.Name, err)
		}
	}

	if err := ip.ValidateFunding(file.FundingConstants()); err != nil {
		return fmt.Errorf("funding validation failed: %w", err)
	}
	return nil
}

// ValidateScenario checks every field that is set. Omitted fields are fine;
// the normalizer fills them in.
func (ip *InputParser) ValidateScenario(p domain.PartialScenario) error {
	if p.PumpType != nil {
		if _, ok := domain.ParsePumpType(string(*p.PumpType)); !ok {
			return fmt.Errorf("unknown pump_type %q", *p.PumpType)
		}
	}
	if p.PropertyType != nil {
		if _, ok := domain.ParsePropertyType(string(*p.PropertyType)); !ok {
			return fmt.Errorf("unknown property_type %q", *p.PropertyType)
		}
	}
	if p.BuildingYearBand != nil {
		if _, ok := domain.ParseBuildingYearBand(string(*p.BuildingYearBand)); !ok {
			return fmt.Errorf("unknown building_year %q", *p.BuildingYearBand)
		}
	}
	if p.InsulationQuality != nil {
		if _, ok := domain.ParseInsulationQuality(string(*p.InsulationQuality)); !ok {
			return fmt.Errorf("unknown insulation %q", *p.InsulationQuality)
		}
	}
	if p.HeatingSurfaceType != nil {
		if _, ok := domain.ParseHeatingSurface(string(*p.HeatingSurfaceType)); !ok {
			return fmt.Errorf("unknown heating_surface %q", *p.HeatingSurfaceType)
		}
	}
	if p.CurrentHeatingFuel != nil {
		if _, ok := domain.ParseHeatingFuel(string(*p.CurrentHeatingFuel)); !ok {
			return fmt.Errorf("unknown current_fuel %q", *p.CurrentHeatingFuel)
		}
	}

	if err := validateCount("area_sqm", p.AreaSqm, maxAreaSqm); err != nil {
		return err
	}
	if err := validateCount("occupants", p.OccupantCount, maxOccupants); err != nil {
		return err
	}
	if err := validateCount("unit_count", p.UnitCount, maxUnitCount); err != nil {
		return err
	}
	return nil
}

// ValidateFunding validates program parameters
func (ip *InputParser) ValidateFunding(f domain.FundingConstants) error {
	one := decimal.NewFromInt(1)
	rates := []struct {
		name  string
		value decimal.Decimal
	}{
		{"base_rate", f.BaseRate},
		{"climate_speed_bonus_rate", f.ClimateSpeedBonusRate},
		{"efficiency_bonus_rate", f.EfficiencyBonusRate},
		{"income_bonus_rate", f.IncomeBonusRate},
		{"max_combined_rate", f.MaxCombinedRate},
	}
	for _, r := range rates {
		if r.value.IsNegative() || r.value.GreaterThan(one) {
			return fmt.Errorf("%s must be between 0 and 1", r.name)
		}
	}
	if f.MaxCombinedRate.LessThan(f.BaseRate) {
		return fmt.Errorf("max_combined_rate cannot be below base_rate")
	}
	if f.BaseEligibleCostCap.IsNegative() {
		return fmt.Errorf("base_eligible_cost_cap cannot be negative")
	}
	if f.PerUnitCapIncrement.IsNegative() {
		return fmt.Errorf("per_unit_cap_increment cannot be negative")
	}
	if f.MaxCountedAdditionalUnits < 0 {
		return fmt.Errorf("max_counted_additional_units cannot be negative")
	}
	if !f.EfficiencyBonusMinFactor.IsPositive() {
		return fmt.Errorf("efficiency_bonus_min_factor must be positive")
	}
	return nil
}

func validateCount(name string, v *int, limit int) error {
	if v == nil {
		return nil
	}
	if *v <= 0 {
		return fmt.Errorf("%s must be positive", name)
	}
	if *v > limit {
		return fmt.Errorf("%s must be at most %d", name, limit)
	}
	return nil
}

// decodeStrict rejects keys that do not map to a field. An empty document
// decodes to the zero value.
func decodeStrict(data []byte, out interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
