package calculation

import (
	"strconv"

	"github.com/rgehrsitz/hpgo/internal/domain"
)

// Normalize fills every omitted field of p with its default and maps
// unrecognised enum tokens to the baseline value of their dimension.
// Non-positive counts and areas are treated as omitted. It never fails; the
// report lists each substitution in field order.
func Normalize(p domain.PartialScenario) (domain.ScenarioInput, domain.NormalizationReport) {
	def := domain.DefaultScenarioInput()
	in := def
	var report domain.NormalizationReport

	note := func(field string, reason domain.DefaultReason, raw, value string) {
		report.Defaulted = append(report.Defaulted, domain.DefaultedField{
			Field: field, Reason: reason, Raw: raw, Value: value,
		})
	}

	if p.PumpType == nil {
		note("pump_type", domain.ReasonOmitted, "", string(def.PumpType))
	} else if v, ok := domain.ParsePumpType(string(*p.PumpType)); ok {
		in.PumpType = v
	} else {
		note("pump_type", domain.ReasonUnrecognized, string(*p.PumpType), string(def.PumpType))
	}

	if p.PropertyType == nil {
		note("property_type", domain.ReasonOmitted, "", string(def.PropertyType))
	} else if v, ok := domain.ParsePropertyType(string(*p.PropertyType)); ok {
		in.PropertyType = v
	} else {
		note("property_type", domain.ReasonUnrecognized, string(*p.PropertyType), string(def.PropertyType))
	}

	in.UnitCount = positiveOrDefault(p.UnitCount, def.UnitCount, "unit_count", note)
	in.AreaSqm = positiveOrDefault(p.AreaSqm, def.AreaSqm, "area_sqm", note)

	if p.BuildingYearBand == nil {
		note("building_year", domain.ReasonOmitted, "", string(def.BuildingYearBand))
	} else if v, ok := domain.ParseBuildingYearBand(string(*p.BuildingYearBand)); ok {
		in.BuildingYearBand = v
	} else {
		note("building_year", domain.ReasonUnrecognized, string(*p.BuildingYearBand), string(def.BuildingYearBand))
	}

	if p.InsulationQuality == nil {
		note("insulation", domain.ReasonOmitted, "", string(def.InsulationQuality))
	} else if v, ok := domain.ParseInsulationQuality(string(*p.InsulationQuality)); ok {
		in.InsulationQuality = v
	} else {
		note("insulation", domain.ReasonUnrecognized, string(*p.InsulationQuality), string(def.InsulationQuality))
	}

	if p.HeatingSurfaceType == nil {
		note("heating_surface", domain.ReasonOmitted, "", string(def.HeatingSurfaceType))
	} else if v, ok := domain.ParseHeatingSurface(string(*p.HeatingSurfaceType)); ok {
		in.HeatingSurfaceType = v
	} else {
		note("heating_surface", domain.ReasonUnrecognized, string(*p.HeatingSurfaceType), string(def.HeatingSurfaceType))
	}

	if p.CurrentHeatingFuel == nil {
		note("current_fuel", domain.ReasonOmitted, "", string(def.CurrentHeatingFuel))
	} else if v, ok := domain.ParseHeatingFuel(string(*p.CurrentHeatingFuel)); ok {
		in.CurrentHeatingFuel = v
	} else {
		note("current_fuel", domain.ReasonUnrecognized, string(*p.CurrentHeatingFuel), string(def.CurrentHeatingFuel))
	}

	in.OccupantCount = positiveOrDefault(p.OccupantCount, def.OccupantCount, "occupants", note)

	if p.IncomeBonusClaimed == nil {
		note("income_bonus", domain.ReasonOmitted, "", strconv.FormatBool(def.IncomeBonusClaimed))
	} else {
		in.IncomeBonusClaimed = *p.IncomeBonusClaimed
	}

	return in, report
}

func positiveOrDefault(v *int, def int, field string, note func(string, domain.DefaultReason, string, string)) int {
	switch {
	case v == nil:
		note(field, domain.ReasonOmitted, "", strconv.Itoa(def))
		return def
	case *v <= 0:
		note(field, domain.ReasonOutOfRange, strconv.Itoa(*v), strconv.Itoa(def))
		return def
	default:
		return *v
	}
}
