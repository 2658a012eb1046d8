package params

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/rgehrsitz/hpgo/internal/domain"
)

// Decode reads a deep link or preference record. It never fails: an empty or
// unparseable number or flag is treated as omitted, and enum values are kept
// as given so the normalizer can record and replace unknown tokens.
func Decode(values url.Values) domain.PartialScenario {
	var p domain.PartialScenario

	if v, ok := lookup(values, KeyPumpType); ok {
		t := domain.PumpType(v)
		p.PumpType = &t
	}
	if v, ok := lookup(values, KeyPropertyType); ok {
		t := domain.PropertyType(v)
		p.PropertyType = &t
	}
	if v, ok := lookup(values, KeyBuildingYear); ok {
		t := domain.BuildingYearBand(v)
		p.BuildingYearBand = &t
	}
	if v, ok := lookup(values, KeyInsulation); ok {
		t := domain.InsulationQuality(v)
		p.InsulationQuality = &t
	}
	if v, ok := lookup(values, KeyHeatingSurface); ok {
		t := domain.HeatingSurface(v)
		p.HeatingSurfaceType = &t
	}
	if v, ok := lookup(values, KeyCurrentFuel); ok {
		t := domain.HeatingFuel(v)
		p.CurrentHeatingFuel = &t
	}

	p.UnitCount = lookupInt(values, KeyUnitCount)
	p.AreaSqm = lookupInt(values, KeyAreaSqm)
	p.OccupantCount = lookupInt(values, KeyOccupants)

	if v, ok := lookup(values, KeyIncomeBonus); ok {
		if b, ok := ParseBool(v); ok {
			p.IncomeBonusClaimed = &b
		}
	}
	return p
}

// Resolve merges layers field by field; earlier layers win. Callers pass the
// deep link first, then the saved preference record.
func Resolve(layers ...domain.PartialScenario) domain.PartialScenario {
	var out domain.PartialScenario
	for _, layer := range layers {
		out = out.Overlay(layer)
	}
	return out
}

// ParseBool accepts true/false, 1/0, yes/no and on/off in any case.
func ParseBool(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "on":
		return true, true
	case "false", "0", "no", "off":
		return false, true
	default:
		return false, false
	}
}

func lookup(values url.Values, key string) (string, bool) {
	v := strings.TrimSpace(values.Get(key))
	return v, v != ""
}

// lookupInt accepts whole numbers, also written with a zero fraction ("120.0"
// from spreadsheet exports). Any other fraction is treated as omitted.
func lookupInt(values url.Values, key string) *int {
	v, ok := lookup(values, key)
	if !ok {
		return nil
	}
	if n, err := strconv.Atoi(v); err == nil {
		return &n
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.Abs(f) > 1e9 || f != math.Trunc(f) {
		return nil
	}
	n := int(f)
	return &n
}
