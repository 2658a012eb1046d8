package calculation

import (
	"testing"

	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCostSteps(t *testing.T) {
	tables := domain.DefaultPricingTables()
	in := airSourceHouse()

	tests := []struct {
		name string
		step func() string
		want string
	}{
		{"underfloor lowers cost", func() string {
			in := in
			in.HeatingSurfaceType = domain.SurfaceUnderfloorOnly
			return applySurface(dec("10000"), in, tables).String()
		}, "9000"},
		{"radiators raise cost", func() string {
			return applySurface(dec("10000"), in, tables).String()
		}, "12500"},
		{"poor insulation", func() string {
			in := in
			in.InsulationQuality = domain.InsulationPoor
			return applyInsulation(dec("10000"), in, tables).String()
		}, "11500"},
		{"pre 1980 building", func() string {
			in := in
			in.BuildingYearBand = domain.YearBefore1980
			return applyBuildingYear(dec("10000"), in, tables).String()
		}, "11500"},
		{"hot water per occupant", func() string {
			in := in
			in.OccupantCount = 5
			return applyHotWater(dec("10000"), in, tables).String()
		}, "11750"},
		{"commercial multiplier", func() string {
			in := in
			in.PropertyType = domain.PropertyCommercial
			return applyPropertyType(dec("10000"), in, tables).String()
		}, "14000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, dec(tt.step()).Equal(dec(tt.want)), "got %s want %s", tt.step(), tt.want)
		})
	}
}

func TestEstimateCost_Rounding(t *testing.T) {
	tables := domain.DefaultPricingTables()
	in := airSourceHouse()
	in.AreaSqm = 101
	in.InsulationQuality = domain.InsulationGood
	in.BuildingYearBand = domain.YearFrom1980To2000

	got := EstimateCost(in, tables)

	// (18000 + 5555 + 2500) * 0.85 * 1.08 + 1050 = 24968.49
	assert.True(t, got.AdjustedCost.Equal(dec("24968.49")), "adjusted %s", got.AdjustedCost)
	assertDecimal(t, "24968", got.EquipmentCost, "equipment")
	assertDecimal(t, "6242", got.InstallationCost, "installation") // 6242.1225
	assertDecimal(t, "31210", got.TotalCost, "total")
}

func TestEstimatePerformance(t *testing.T) {
	tables := domain.DefaultPricingTables()

	tests := []struct {
		name     string
		pump     domain.PumpType
		surface  domain.HeatingSurface
		year     domain.BuildingYearBand
		raw      string
		reported string
	}{
		{"air radiators reference", domain.PumpAirWater, domain.SurfaceRadiators, domain.YearFrom2000To2010, "3.3", "3.3"},
		{"air worst case", domain.PumpAirWater, domain.SurfaceRadiators, domain.YearBefore1980, "2.9", "2.9"},
		{"water best case clamps", domain.PumpWaterWater, domain.SurfaceUnderfloorOnly, domain.YearAfter2025, "5.7", "5.5"},
		{"ground mixed", domain.PumpGroundWater, domain.SurfaceMixed, domain.YearFrom2010To2020, "4.8", "4.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := airSourceHouse()
			in.PumpType = tt.pump
			in.HeatingSurfaceType = tt.surface
			in.BuildingYearBand = tt.year

			got := EstimatePerformance(in, tables)
			assertDecimal(t, tt.raw, got.Raw, "raw")
			assertDecimal(t, tt.reported, got.Reported, "reported")
		})
	}
}

func TestClampFactor_Floor(t *testing.T) {
	tables := domain.DefaultPricingTables()
	assertDecimal(t, "2.5", clampFactor(dec("1.9"), tables), "floor")
	assertDecimal(t, "5.5", clampFactor(dec("7"), tables), "ceiling")
}

func TestEstimateSavings(t *testing.T) {
	tables := domain.DefaultPricingTables()

	got := EstimateSavings(airSourceHouse(), dec("3.3"), tables)
	assertDecimal(t, "1950", got.BaselineAnnualCost, "baseline")
	assertDecimal(t, "1455", got.HeatPumpAnnualCost, "heat pump")
	assertDecimal(t, "15000", got.AnnualHeatDemand, "demand")
	assertDecimal(t, "495", got.AnnualSavings, "savings")

	zero := EstimateSavings(airSourceHouse(), dec("0"), tables)
	assert.False(t, zero.AnnualSavings.IsNegative(), "non-positive factor falls back to the floor")
	assertDecimal(t, "1920", zero.HeatPumpAnnualCost, "heat pump at floor factor")
}
