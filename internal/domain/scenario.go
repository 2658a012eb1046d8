package domain

import "strings"

// PumpType identifies the heat source of the heat pump.
type PumpType string

const (
	PumpAirWater    PumpType = "air_water"
	PumpGroundWater PumpType = "ground_water"
	PumpWaterWater  PumpType = "water_water"
)

// PropertyType identifies the kind of building being heated.
type PropertyType string

const (
	PropertySingleFamily PropertyType = "single_family"
	PropertyMultiFamily  PropertyType = "multi_family"
	PropertyCommercial   PropertyType = "commercial"
)

// BuildingYearBand groups buildings by construction period.
type BuildingYearBand string

const (
	YearBefore1980     BuildingYearBand = "before_1980"
	YearFrom1980To2000 BuildingYearBand = "1980_2000"
	YearFrom2000To2010 BuildingYearBand = "2000_2010"
	YearFrom2010To2020 BuildingYearBand = "2010_2020"
	YearFrom2020To2025 BuildingYearBand = "2020_2025"
	YearAfter2025      BuildingYearBand = "after_2025"
)

// InsulationQuality is the self-assessed thermal envelope quality.
type InsulationQuality string

const (
	InsulationPoor    InsulationQuality = "poor"
	InsulationAverage InsulationQuality = "average"
	InsulationGood    InsulationQuality = "good"
)

// HeatingSurface is the heat distribution system in the building.
type HeatingSurface string

const (
	SurfaceUnderfloorOnly HeatingSurface = "underfloor"
	SurfaceRadiators      HeatingSurface = "radiators"
	SurfaceMixed          HeatingSurface = "mixed"
)

// HeatingFuel is the fuel of the heating system being replaced.
type HeatingFuel string

const (
	FuelGas                HeatingFuel = "gas"
	FuelOil                HeatingFuel = "oil"
	FuelElectricResistance HeatingFuel = "electric"
	FuelSolidFuel          HeatingFuel = "solid_fuel"
)

// Enumerations in display order. Callers must not modify the returned slices.

func AllPumpTypes() []PumpType {
	return []PumpType{PumpAirWater, PumpGroundWater, PumpWaterWater}
}

func AllPropertyTypes() []PropertyType {
	return []PropertyType{PropertySingleFamily, PropertyMultiFamily, PropertyCommercial}
}

func AllBuildingYearBands() []BuildingYearBand {
	return []BuildingYearBand{YearBefore1980, YearFrom1980To2000, YearFrom2000To2010, YearFrom2010To2020, YearFrom2020To2025, YearAfter2025}
}

func AllInsulationQualities() []InsulationQuality {
	return []InsulationQuality{InsulationPoor, InsulationAverage, InsulationGood}
}

func AllHeatingSurfaces() []HeatingSurface {
	return []HeatingSurface{SurfaceUnderfloorOnly, SurfaceRadiators, SurfaceMixed}
}

func AllHeatingFuels() []HeatingFuel {
	return []HeatingFuel{FuelGas, FuelOil, FuelElectricResistance, FuelSolidFuel}
}

// Valid reports whether the value is one of the known tokens.
func (p PumpType) Valid() bool {
	switch p {
	case PumpAirWater, PumpGroundWater, PumpWaterWater:
		return true
	default:
		return false
	}
}

func (p PropertyType) Valid() bool {
	switch p {
	case PropertySingleFamily, PropertyMultiFamily, PropertyCommercial:
		return true
	default:
		return false
	}
}

func (b BuildingYearBand) Valid() bool {
	switch b {
	case YearBefore1980, YearFrom1980To2000, YearFrom2000To2010, YearFrom2010To2020, YearFrom2020To2025, YearAfter2025:
		return true
	default:
		return false
	}
}

func (i InsulationQuality) Valid() bool {
	switch i {
	case InsulationPoor, InsulationAverage, InsulationGood:
		return true
	default:
		return false
	}
}

func (s HeatingSurface) Valid() bool {
	switch s {
	case SurfaceUnderfloorOnly, SurfaceRadiators, SurfaceMixed:
		return true
	default:
		return false
	}
}

func (f HeatingFuel) Valid() bool {
	switch f {
	case FuelGas, FuelOil, FuelElectricResistance, FuelSolidFuel:
		return true
	default:
		return false
	}
}

// Label returns a human-readable name for display.
func (p PumpType) Label() string {
	switch p {
	case PumpGroundWater:
		return "Ground source (brine/water)"
	case PumpWaterWater:
		return "Water source (water/water)"
	case PumpAirWater:
		return "Air source (air/water)"
	default:
		return string(p)
	}
}

func (p PropertyType) Label() string {
	switch p {
	case PropertyMultiFamily:
		return "Multi-family"
	case PropertyCommercial:
		return "Commercial"
	case PropertySingleFamily:
		return "Single-family"
	default:
		return string(p)
	}
}

func (b BuildingYearBand) Label() string {
	switch b {
	case YearBefore1980:
		return "before 1980"
	case YearFrom1980To2000:
		return "1980-2000"
	case YearFrom2000To2010:
		return "2000-2010"
	case YearFrom2010To2020:
		return "2010-2020"
	case YearFrom2020To2025:
		return "2020-2025"
	case YearAfter2025:
		return "after 2025"
	default:
		return string(b)
	}
}

func (i InsulationQuality) Label() string {
	switch i {
	case InsulationPoor:
		return "Poor"
	case InsulationGood:
		return "Good"
	case InsulationAverage:
		return "Average"
	default:
		return string(i)
	}
}

func (s HeatingSurface) Label() string {
	switch s {
	case SurfaceUnderfloorOnly:
		return "Underfloor only"
	case SurfaceMixed:
		return "Underfloor + radiators"
	case SurfaceRadiators:
		return "Radiators"
	default:
		return string(s)
	}
}

func (f HeatingFuel) Label() string {
	switch f {
	case FuelOil:
		return "Heating oil"
	case FuelElectricResistance:
		return "Electric resistance"
	case FuelSolidFuel:
		return "Solid fuel"
	case FuelGas:
		return "Natural gas"
	default:
		return string(f)
	}
}

// Token canonicalises a raw parameter value: trimmed, lower case, dashes and
// spaces folded to underscores.
func Token(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	return strings.NewReplacer("-", "_", " ", "_").Replace(t)
}

// ScenarioInput is a fully populated scenario. Every field holds a valid
// value once it has passed through the normalizer.
type ScenarioInput struct {
	PumpType           PumpType          `yaml:"pump_type" json:"pumpType"`
	PropertyType       PropertyType      `yaml:"property_type" json:"propertyType"`
	UnitCount          int               `yaml:"unit_count" json:"unitCount"`
	AreaSqm            int               `yaml:"area_sqm" json:"areaSqm"`
	BuildingYearBand   BuildingYearBand  `yaml:"building_year" json:"buildingYearBand"`
	InsulationQuality  InsulationQuality `yaml:"insulation" json:"insulationQuality"`
	HeatingSurfaceType HeatingSurface    `yaml:"heating_surface" json:"heatingSurfaceType"`
	CurrentHeatingFuel HeatingFuel       `yaml:"current_fuel" json:"currentHeatingFuel"`
	OccupantCount      int               `yaml:"occupants" json:"occupantCount"`
	IncomeBonusClaimed bool              `yaml:"income_bonus" json:"incomeBonusClaimed"`
}

// DefaultScenarioInput returns the values used for any omitted field.
func DefaultScenarioInput() ScenarioInput {
	return ScenarioInput{
		PumpType:           PumpAirWater,
		PropertyType:       PropertySingleFamily,
		UnitCount:          1,
		AreaSqm:            150,
		BuildingYearBand:   YearFrom2000To2010,
		InsulationQuality:  InsulationAverage,
		HeatingSurfaceType: SurfaceRadiators,
		CurrentHeatingFuel: FuelGas,
		OccupantCount:      3,
		IncomeBonusClaimed: false,
	}
}

// Partial converts a complete input into a partial scenario with every field set.
func (s ScenarioInput) Partial() PartialScenario {
	return PartialScenario{
		PumpType:           &s.PumpType,
		PropertyType:       &s.PropertyType,
		UnitCount:          &s.UnitCount,
		AreaSqm:            &s.AreaSqm,
		BuildingYearBand:   &s.BuildingYearBand,
		InsulationQuality:  &s.InsulationQuality,
		HeatingSurfaceType: &s.HeatingSurfaceType,
		CurrentHeatingFuel: &s.CurrentHeatingFuel,
		OccupantCount:      &s.OccupantCount,
		IncomeBonusClaimed: &s.IncomeBonusClaimed,
	}
}

// PartialScenario is a scenario as supplied by a caller: any field may be
// omitted (nil) and enum fields may carry unrecognised tokens.
type PartialScenario struct {
	PumpType           *PumpType          `yaml:"pump_type,omitempty" json:"pumpType,omitempty"`
	PropertyType       *PropertyType      `yaml:"property_type,omitempty" json:"propertyType,omitempty"`
	UnitCount          *int               `yaml:"unit_count,omitempty" json:"unitCount,omitempty"`
	AreaSqm            *int               `yaml:"area_sqm,omitempty" json:"areaSqm,omitempty"`
	BuildingYearBand   *BuildingYearBand  `yaml:"building_year,omitempty" json:"buildingYearBand,omitempty"`
	InsulationQuality  *InsulationQuality `yaml:"insulation,omitempty" json:"insulationQuality,omitempty"`
	HeatingSurfaceType *HeatingSurface    `yaml:"heating_surface,omitempty" json:"heatingSurfaceType,omitempty"`
	CurrentHeatingFuel *HeatingFuel       `yaml:"current_fuel,omitempty" json:"currentHeatingFuel,omitempty"`
	OccupantCount      *int               `yaml:"occupants,omitempty" json:"occupantCount,omitempty"`
	IncomeBonusClaimed *bool              `yaml:"income_bonus,omitempty" json:"incomeBonusClaimed,omitempty"`
}

// Overlay returns p with every nil field filled from lower. p wins field by field.
func (p PartialScenario) Overlay(lower PartialScenario) PartialScenario {
	out := p
	if out.PumpType == nil {
		out.PumpType = lower.PumpType
	}
	if out.PropertyType == nil {
		out.PropertyType = lower.PropertyType
	}
	if out.UnitCount == nil {
		out.UnitCount = lower.UnitCount
	}
	if out.AreaSqm == nil {
		out.AreaSqm = lower.AreaSqm
	}
	if out.BuildingYearBand == nil {
		out.BuildingYearBand = lower.BuildingYearBand
	}
	if out.InsulationQuality == nil {
		out.InsulationQuality = lower.InsulationQuality
	}
	if out.HeatingSurfaceType == nil {
		out.HeatingSurfaceType = lower.HeatingSurfaceType
	}
	if out.CurrentHeatingFuel == nil {
		out.CurrentHeatingFuel = lower.CurrentHeatingFuel
	}
	if out.OccupantCount == nil {
		out.OccupantCount = lower.OccupantCount
	}
	if out.IncomeBonusClaimed == nil {
		out.IncomeBonusClaimed = lower.IncomeBonusClaimed
	}
	return out
}

// IsEmpty reports whether no field is set.
func (p PartialScenario) IsEmpty() bool {
	return p == PartialScenario{}
}

// NamedScenario is a scenario entry from a scenario file.
type NamedScenario struct {
	Name        string          `yaml:"name" json:"name"`
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
	Input       PartialScenario `yaml:"input" json:"input"`
}

// The Parse functions accept the canonical token, its display spelling and a
// few common aliases. ok is false when the value is not recognised.

func ParsePumpType(raw string) (PumpType, bool) {
	switch Token(raw) {
	case "air_water", "air", "air_source":
		return PumpAirWater, true
	case "ground_water", "ground", "ground_source", "brine_water":
		return PumpGroundWater, true
	case "water_water", "water", "water_source":
		return PumpWaterWater, true
	default:
		return "", false
	}
}

func ParsePropertyType(raw string) (PropertyType, bool) {
	switch Token(raw) {
	case "single_family", "house", "detached":
		return PropertySingleFamily, true
	case "multi_family", "apartment_building":
		return PropertyMultiFamily, true
	case "commercial", "business":
		return PropertyCommercial, true
	default:
		return "", false
	}
}

func ParseBuildingYearBand(raw string) (BuildingYearBand, bool) {
	switch Token(raw) {
	case "before_1980", "pre_1980":
		return YearBefore1980, true
	case "1980_2000":
		return YearFrom1980To2000, true
	case "2000_2010":
		return YearFrom2000To2010, true
	case "2010_2020":
		return YearFrom2010To2020, true
	case "2020_2025":
		return YearFrom2020To2025, true
	case "after_2025", "new_build":
		return YearAfter2025, true
	default:
		return "", false
	}
}

func ParseInsulationQuality(raw string) (InsulationQuality, bool) {
	switch Token(raw) {
	case "poor", "bad":
		return InsulationPoor, true
	case "average", "medium":
		return InsulationAverage, true
	case "good":
		return InsulationGood, true
	default:
		return "", false
	}
}

func ParseHeatingSurface(raw string) (HeatingSurface, bool) {
	switch Token(raw) {
	case "underfloor", "underfloor_only", "floor":
		return SurfaceUnderfloorOnly, true
	case "radiators", "radiator":
		return SurfaceRadiators, true
	case "mixed", "both":
		return SurfaceMixed, true
	default:
		return "", false
	}
}

func ParseHeatingFuel(raw string) (HeatingFuel, bool) {
	switch Token(raw) {
	case "gas", "natural_gas":
		return FuelGas, true
	case "oil", "heating_oil":
		return FuelOil, true
	case "electric", "electric_resistance", "electricity":
		return FuelElectricResistance, true
	case "solid_fuel", "wood", "pellets", "coal":
		return FuelSolidFuel, true
	default:
		return "", false
	}
}
