package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/rgehrsitz/hpgo/internal/params"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(args map[string]string) (ScenarioTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	// Equipment
	registry.Register("set_pump", createSetPumpType)
	registry.Register("set_surface", createSetHeatingSurface)
	registry.Register("set_fuel", createSetCurrentFuel)

	// Building
	registry.Register("set_insulation", createSetInsulation)
	registry.Register("set_building_year", createSetBuildingYear)
	registry.Register("set_property", createSetPropertyType)
	registry.Register("set_area", createSetArea)
	registry.Register("scale_area", createScaleArea)

	// Household
	registry.Register("set_occupants", createSetOccupants)
	registry.Register("set_units", createSetUnitCount)
	registry.Register("claim_income_bonus", createClaimIncomeBonus)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, args map[string]string) (ScenarioTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(args)
}

// List returns the names of all registered transforms, sorted.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"; transforms whose
// parameters all have defaults may omit the colon.
// Example: "set_pump:type=ground_water"
func (r *TransformRegistry) ParseTransformSpec(spec string) (ScenarioTransform, error) {
	name, paramsStr, _ := strings.Cut(spec, ":")
	name = strings.TrimSpace(name)
	paramsStr = strings.TrimSpace(paramsStr)
	if name == "" {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	args := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			k, v, ok := strings.Cut(paramPair, "=")
			if !ok {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			args[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}

	return r.Create(name, args)
}

// Factory functions for each transform

func requireParam(transform string, p map[string]string, key string) (string, error) {
	v, ok := p[key]
	if !ok || v == "" {
		return "", fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	return v, nil
}

func intParam(transform string, p map[string]string, key string) (int, error) {
	raw, err := requireParam(transform, p, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

// enumParam reads key and maps it through one of the domain Parse functions.
func enumParam[T ~string](transform string, p map[string]string, key string, parse func(string) (T, bool)) (T, error) {
	raw, err := requireParam(transform, p, key)
	if err != nil {
		return "", err
	}
	v, ok := parse(raw)
	if !ok {
		return "", fmt.Errorf("invalid %s value: %q", key, raw)
	}
	return v, nil
}

func createSetPumpType(p map[string]string) (ScenarioTransform, error) {
	pump, err := enumParam("set_pump", p, "type", domain.ParsePumpType)
	if err != nil {
		return nil, err
	}
	return &SetPumpType{PumpType: pump}, nil
}

func createSetHeatingSurface(p map[string]string) (ScenarioTransform, error) {
	surface, err := enumParam("set_surface", p, "type", domain.ParseHeatingSurface)
	if err != nil {
		return nil, err
	}
	return &SetHeatingSurface{Surface: surface}, nil
}

func createSetCurrentFuel(p map[string]string) (ScenarioTransform, error) {
	fuel, err := enumParam("set_fuel", p, "fuel", domain.ParseHeatingFuel)
	if err != nil {
		return nil, err
	}
	return &SetCurrentFuel{Fuel: fuel}, nil
}

func createSetInsulation(p map[string]string) (ScenarioTransform, error) {
	quality, err := enumParam("set_insulation", p, "quality", domain.ParseInsulationQuality)
	if err != nil {
		return nil, err
	}
	return &SetInsulation{Quality: quality}, nil
}

func createSetBuildingYear(p map[string]string) (ScenarioTransform, error) {
	band, err := enumParam("set_building_year", p, "band", domain.ParseBuildingYearBand)
	if err != nil {
		return nil, err
	}
	return &SetBuildingYear{Band: band}, nil
}

func createSetPropertyType(p map[string]string) (ScenarioTransform, error) {
	property, err := enumParam("set_property", p, "type", domain.ParsePropertyType)
	if err != nil {
		return nil, err
	}
	return &SetPropertyType{PropertyType: property}, nil
}

func createSetArea(p map[string]string) (ScenarioTransform, error) {
	sqm, err := intParam("set_area", p, "sqm")
	if err != nil {
		return nil, err
	}
	return &SetArea{AreaSqm: sqm}, nil
}

func createScaleArea(p map[string]string) (ScenarioTransform, error) {
	percent, err := intParam("scale_area", p, "percent")
	if err != nil {
		return nil, err
	}
	return &ScaleArea{Percent: percent}, nil
}

func createSetOccupants(p map[string]string) (ScenarioTransform, error) {
	count, err := intParam("set_occupants", p, "count")
	if err != nil {
		return nil, err
	}
	return &SetOccupants{Count: count}, nil
}

func createSetUnitCount(p map[string]string) (ScenarioTransform, error) {
	count, err := intParam("set_units", p, "count")
	if err != nil {
		return nil, err
	}
	return &SetUnitCount{Count: count}, nil
}

func createClaimIncomeBonus(p map[string]string) (ScenarioTransform, error) {
	claimed := true
	if raw, ok := p["claimed"]; ok {
		v, ok := params.ParseBool(raw)
		if !ok {
			return nil, fmt.Errorf("invalid claimed value: %q", raw)
		}
		claimed = v
	}
	return &ClaimIncomeBonus{Claimed: claimed}, nil
}
