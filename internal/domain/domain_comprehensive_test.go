package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEnumValidity(t *testing.T) {
	for _, p := range AllPumpTypes() {
		assert.True(t, p.Valid(), "pump %s", p)
	}
	for _, p := range AllPropertyTypes() {
		assert.True(t, p.Valid(), "property %s", p)
	}
	for _, b := range AllBuildingYearBands() {
		assert.True(t, b.Valid(), "year band %s", b)
	}
	for _, i := range AllInsulationQualities() {
		assert.True(t, i.Valid(), "insulation %s", i)
	}
	for _, s := range AllHeatingSurfaces() {
		assert.True(t, s.Valid(), "surface %s", s)
	}
	for _, f := range AllHeatingFuels() {
		assert.True(t, f.Valid(), "fuel %s", f)
	}

	assert.False(t, PumpType("geothermal_x").Valid())
	assert.False(t, PropertyType("castle").Valid())
	assert.False(t, BuildingYearBand("1850").Valid())
	assert.False(t, InsulationQuality("").Valid())
	assert.False(t, HeatingSurface("stove").Valid())
	assert.False(t, HeatingFuel("coal_gas").Valid())
}

func TestToken(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"air_water", "air_water"},
		{"  Ground-Water ", "ground_water"},
		{"SOLID FUEL", "solid_fuel"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Token(tt.raw), "Token(%q)", tt.raw)
	}
}

func TestPricingLookupsFallBackToBaseline(t *testing.T) {
	tables := DefaultPricingTables()

	assert.Equal(t, tables.Pumps[PumpAirWater], tables.Pump("unknown"))
	assert.Equal(t, tables.Surfaces[SurfaceRadiators], tables.Surface("unknown"))
	assert.True(t, tables.Insulation("unknown").Equal(decimal.NewFromInt(1)))
	assert.Equal(t, tables.BuildingYears[YearFrom2000To2010], tables.BuildingYear("unknown"))
	assert.True(t, tables.Property("unknown").Equal(decimal.NewFromInt(1)))
	assert.True(t, tables.FuelCost("unknown").Equal(decimal.NewFromInt(13)))
	assert.True(t, tables.HeatDemand("unknown").Equal(decimal.NewFromInt(100)))
}

func TestPricingTablesCoverEveryValue(t *testing.T) {
	tables := DefaultPricingTables()
	for _, p := range AllPumpTypes() {
		_, ok := tables.Pumps[p]
		assert.True(t, ok, "pump %s", p)
	}
	for _, s := range AllHeatingSurfaces() {
		_, ok := tables.Surfaces[s]
		assert.True(t, ok, "surface %s", s)
	}
	for _, b := range AllBuildingYearBands() {
		_, ok := tables.BuildingYears[b]
		assert.True(t, ok, "year band %s", b)
	}
	for _, q := range AllInsulationQualities() {
		_, ok := tables.InsulationCost[q]
		assert.True(t, ok, "insulation %s", q)
		_, ok = tables.HeatDemandPerSqm[q]
		assert.True(t, ok, "heat demand %s", q)
	}
	for _, p := range AllPropertyTypes() {
		_, ok := tables.PropertyMultipliers[p]
		assert.True(t, ok, "property %s", p)
	}
	for _, f := range AllHeatingFuels() {
		_, ok := tables.FuelCostPerSqm[f]
		assert.True(t, ok, "fuel %s", f)
	}
}

func TestFundingConstants_MaxEligibleCostCap(t *testing.T) {
	f := DefaultFundingConstants()
	assert.True(t, f.MaxEligibleCostCap().Equal(decimal.NewFromInt(105000)))
}

func TestFundingOverrides_Apply(t *testing.T) {
	var overrides FundingOverrides
	err := yaml.Unmarshal([]byte("max_combined_rate: 0.65\nmax_counted_additional_units: 3\n"), &overrides)
	require.NoError(t, err)

	got := overrides.Apply(DefaultFundingConstants())
	assert.True(t, got.MaxCombinedRate.Equal(decimal.NewFromFloat(0.65)))
	assert.Equal(t, 3, got.MaxCountedAdditionalUnits)
	assert.True(t, got.BaseRate.Equal(decimal.NewFromFloat(0.30)), "unset fields keep defaults")
}

func TestPartialScenario_Overlay(t *testing.T) {
	ground := PumpGroundWater
	air := PumpAirWater
	area := 200
	occupants := 5

	upper := PartialScenario{PumpType: &ground}
	lower := PartialScenario{PumpType: &air, AreaSqm: &area}
	lowest := PartialScenario{OccupantCount: &occupants}

	got := upper.Overlay(lower).Overlay(lowest)
	require.NotNil(t, got.PumpType)
	assert.Equal(t, PumpGroundWater, *got.PumpType)
	require.NotNil(t, got.AreaSqm)
	assert.Equal(t, 200, *got.AreaSqm)
	require.NotNil(t, got.OccupantCount)
	assert.Equal(t, 5, *got.OccupantCount)
	assert.Nil(t, got.InsulationQuality)
}

func TestScenarioInput_PartialRoundTrip(t *testing.T) {
	in := DefaultScenarioInput()
	in.PumpType = PumpWaterWater
	in.AreaSqm = 90

	p := in.Partial()
	assert.False(t, p.IsEmpty())
	assert.Equal(t, PumpWaterWater, *p.PumpType)
	assert.Equal(t, 90, *p.AreaSqm)
	assert.True(t, PartialScenario{}.IsEmpty())
}

func TestPartialScenario_YAML(t *testing.T) {
	src := `
pump_type: ground_water
area_sqm: 180
income_bonus: true
`
	var p PartialScenario
	require.NoError(t, yaml.Unmarshal([]byte(src), &p))
	assert.Equal(t, PumpGroundWater, *p.PumpType)
	assert.Equal(t, 180, *p.AreaSqm)
	assert.True(t, *p.IncomeBonusClaimed)
	assert.Nil(t, p.CurrentHeatingFuel)
}

func TestCostBreakdown_PaybackYears(t *testing.T) {
	b := CostBreakdown{NetCost: decimal.NewFromInt(22250), AnnualSavings: decimal.NewFromInt(495)}
	years, ok := b.PaybackYears()
	assert.True(t, ok)
	assert.Equal(t, "44.9", years.StringFixed(1))

	b.AnnualSavings = decimal.Zero
	_, ok = b.PaybackYears()
	assert.False(t, ok)

	b = CostBreakdown{NetCost: decimal.Zero, AnnualSavings: decimal.NewFromInt(100)}
	years, ok = b.PaybackYears()
	assert.True(t, ok)
	assert.True(t, years.IsZero())
}

func TestNormalizationReport_Substituted(t *testing.T) {
	r := NormalizationReport{Defaulted: []DefaultedField{
		{Field: "pump_type", Reason: ReasonOmitted},
		{Field: "insulation", Reason: ReasonUnrecognized, Raw: "great"},
		{Field: "area_sqm", Reason: ReasonOutOfRange, Raw: "-5"},
	}}
	got := r.Substituted()
	require.Len(t, got, 2)
	assert.Equal(t, "insulation", got[0].Field)
	assert.Equal(t, "area_sqm", got[1].Field)
}

func TestParseFunctions(t *testing.T) {
	p, ok := ParsePumpType("Brine-Water")
	assert.True(t, ok)
	assert.Equal(t, PumpGroundWater, p)

	_, ok = ParsePumpType("nuclear")
	assert.False(t, ok)

	prop, ok := ParsePropertyType("MULTI_FAMILY")
	assert.True(t, ok)
	assert.Equal(t, PropertyMultiFamily, prop)

	year, ok := ParseBuildingYearBand("pre-1980")
	assert.True(t, ok)
	assert.Equal(t, YearBefore1980, year)

	ins, ok := ParseInsulationQuality("medium")
	assert.True(t, ok)
	assert.Equal(t, InsulationAverage, ins)

	surf, ok := ParseHeatingSurface("underfloor_only")
	assert.True(t, ok)
	assert.Equal(t, SurfaceUnderfloorOnly, surf)

	fuel, ok := ParseHeatingFuel("electric resistance")
	assert.True(t, ok)
	assert.Equal(t, FuelElectricResistance, fuel)

	// every canonical token parses to itself
	for _, v := range AllHeatingFuels() {
		got, ok := ParseHeatingFuel(string(v))
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}
	for _, v := range AllBuildingYearBands() {
		got, ok := ParseBuildingYearBand(string(v))
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}
}

func TestCostBreakdown_PerformanceFactorHasOneDecimal(t *testing.T) {
	b := CostBreakdown{
		NetCost:           decimal.NewFromInt(22250),
		PerformanceFactor: decimal.NewFromInt(4),
	}

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"performanceFactor":"4.0"`)
	assert.Contains(t, string(data), `"netCost":"22250"`)

	var decoded CostBreakdown
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.PerformanceFactor.Equal(decimal.NewFromInt(4)))

	out, err := yaml.Marshal(b)
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, yaml.Unmarshal(out, &fields))
	assert.Equal(t, "4.0", fields["performance_factor"])
	assert.Equal(t, "22250", fields["net_cost"])

	report, err := json.Marshal(EstimateReport{Name: "house", Breakdown: b})
	require.NoError(t, err)
	assert.Contains(t, string(report), `"performanceFactor":"4.0"`)
}

func TestSensitivityPoint_PerformanceFactorHasOneDecimal(t *testing.T) {
	data, err := json.Marshal(SensitivityPoint{PerformanceFactor: decimal.NewFromFloat(3.0)})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"performanceFactor":"3.0"`)
}
