package domain

import "github.com/shopspring/decimal"

// PumpProfile is the cost and efficiency baseline of one pump type.
type PumpProfile struct {
	BaseCost          decimal.Decimal `json:"baseCost"`
	CostPerSqm        decimal.Decimal `json:"costPerSqm"`
	BaselineFactor    decimal.Decimal `json:"baselineFactor"`
	InstallationShare decimal.Decimal `json:"installationShare"` // fraction of the adjusted equipment cost
}

// SurfaceAdjustment is the effect of the heat distribution system.
type SurfaceAdjustment struct {
	CostDelta   decimal.Decimal `json:"costDelta"`
	FactorDelta decimal.Decimal `json:"factorDelta"`
}

// YearAdjustment is the effect of the construction period.
type YearAdjustment struct {
	CostMultiplier decimal.Decimal `json:"costMultiplier"`
	FactorDelta    decimal.Decimal `json:"factorDelta"`
}

// PricingTables holds the cost, efficiency and operating-cost tables. The
// maps are never written after construction.
type PricingTables struct {
	Pumps               map[PumpType]PumpProfile
	Surfaces            map[HeatingSurface]SurfaceAdjustment
	InsulationCost      map[InsulationQuality]decimal.Decimal
	BuildingYears       map[BuildingYearBand]YearAdjustment
	HotWaterPerOccupant decimal.Decimal
	PropertyMultipliers map[PropertyType]decimal.Decimal

	FactorFloor   decimal.Decimal
	FactorCeiling decimal.Decimal

	// Operating cost
	FuelCostPerSqm   map[HeatingFuel]decimal.Decimal       // annual cost of the existing system per m²
	HeatDemandPerSqm map[InsulationQuality]decimal.Decimal // kWh per m² and year
	ElectricityPrice decimal.Decimal                       // per kWh
}

// DefaultPricingTables returns the reference market tables.
func DefaultPricingTables() PricingTables {
	d := decimal.NewFromFloat
	i := decimal.NewFromInt
	return PricingTables{
		Pumps: map[PumpType]PumpProfile{
			PumpAirWater:    {BaseCost: i(18000), CostPerSqm: i(55), BaselineFactor: d(3.5), InstallationShare: d(0.25)},
			PumpGroundWater: {BaseCost: i(32000), CostPerSqm: i(85), BaselineFactor: d(4.5), InstallationShare: d(0.32)},
			PumpWaterWater:  {BaseCost: i(38000), CostPerSqm: i(95), BaselineFactor: d(5.0), InstallationShare: d(0.35)},
		},
		Surfaces: map[HeatingSurface]SurfaceAdjustment{
			SurfaceUnderfloorOnly: {CostDelta: i(-1000), FactorDelta: d(0.3)},
			SurfaceMixed:          {CostDelta: i(0), FactorDelta: d(0.1)},
			SurfaceRadiators:      {CostDelta: i(2500), FactorDelta: d(-0.2)},
		},
		InsulationCost: map[InsulationQuality]decimal.Decimal{
			InsulationPoor:    d(1.15),
			InsulationAverage: d(1.00),
			InsulationGood:    d(0.85),
		},
		BuildingYears: map[BuildingYearBand]YearAdjustment{
			YearBefore1980:     {CostMultiplier: d(1.15), FactorDelta: d(-0.4)},
			YearFrom1980To2000: {CostMultiplier: d(1.08), FactorDelta: d(-0.2)},
			YearFrom2000To2010: {CostMultiplier: d(1.00), FactorDelta: d(0)},
			YearFrom2010To2020: {CostMultiplier: d(0.95), FactorDelta: d(0.2)},
			YearFrom2020To2025: {CostMultiplier: d(0.90), FactorDelta: d(0.3)},
			YearAfter2025:      {CostMultiplier: d(0.85), FactorDelta: d(0.4)},
		},
		HotWaterPerOccupant: i(350),
		PropertyMultipliers: map[PropertyType]decimal.Decimal{
			PropertySingleFamily: d(1.00),
			PropertyMultiFamily:  d(1.25),
			PropertyCommercial:   d(1.40),
		},
		FactorFloor:   d(2.5),
		FactorCeiling: d(5.5),
		FuelCostPerSqm: map[HeatingFuel]decimal.Decimal{
			FuelGas:                i(13),
			FuelOil:                i(16),
			FuelElectricResistance: i(25),
			FuelSolidFuel:          i(14),
		},
		HeatDemandPerSqm: map[InsulationQuality]decimal.Decimal{
			InsulationPoor:    i(150),
			InsulationAverage: i(100),
			InsulationGood:    i(60),
		},
		ElectricityPrice: d(0.32),
	}
}

// The lookups below each have a default arm that resolves an unknown value to
// the baseline entry of its dimension, the same baseline the normalizer uses.

// Pump returns the profile for p. Unknown pump types use the air-source profile.
func (t PricingTables) Pump(p PumpType) PumpProfile {
	switch p {
	case PumpAirWater, PumpGroundWater, PumpWaterWater:
		return t.Pumps[p]
	default:
		return t.Pumps[PumpAirWater]
	}
}

// Surface returns the adjustment for s. Unknown surfaces use radiators.
func (t PricingTables) Surface(s HeatingSurface) SurfaceAdjustment {
	switch s {
	case SurfaceUnderfloorOnly, SurfaceMixed, SurfaceRadiators:
		return t.Surfaces[s]
	default:
		return t.Surfaces[SurfaceRadiators]
	}
}

// Insulation returns the cost multiplier for q. Unknown qualities use average.
func (t PricingTables) Insulation(q InsulationQuality) decimal.Decimal {
	switch q {
	case InsulationPoor, InsulationAverage, InsulationGood:
		return t.InsulationCost[q]
	default:
		return t.InsulationCost[InsulationAverage]
	}
}

// BuildingYear returns the adjustment for b. Unknown bands use 2000-2010.
func (t PricingTables) BuildingYear(b BuildingYearBand) YearAdjustment {
	switch b {
	case YearBefore1980, YearFrom1980To2000, YearFrom2000To2010, YearFrom2010To2020, YearFrom2020To2025, YearAfter2025:
		return t.BuildingYears[b]
	default:
		return t.BuildingYears[YearFrom2000To2010]
	}
}

// Property returns the cost multiplier for p. Unknown types use single-family.
func (t PricingTables) Property(p PropertyType) decimal.Decimal {
	switch p {
	case PropertySingleFamily, PropertyMultiFamily, PropertyCommercial:
		return t.PropertyMultipliers[p]
	default:
		return t.PropertyMultipliers[PropertySingleFamily]
	}
}

// FuelCost returns the per-m² annual cost of the existing system. Unknown fuels use gas.
func (t PricingTables) FuelCost(f HeatingFuel) decimal.Decimal {
	switch f {
	case FuelGas, FuelOil, FuelElectricResistance, FuelSolidFuel:
		return t.FuelCostPerSqm[f]
	default:
		return t.FuelCostPerSqm[FuelGas]
	}
}

// HeatDemand returns kWh per m² and year for q. Unknown qualities use average.
func (t PricingTables) HeatDemand(q InsulationQuality) decimal.Decimal {
	switch q {
	case InsulationPoor, InsulationAverage, InsulationGood:
		return t.HeatDemandPerSqm[q]
	default:
		return t.HeatDemandPerSqm[InsulationAverage]
	}
}
