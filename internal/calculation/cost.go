package calculation

import (
	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/shopspring/decimal"
)

// CostEstimate is the output of the cost model.
type CostEstimate struct {
	Stages           []domain.CostStage
	AdjustedCost     decimal.Decimal // unrounded equipment cost after every step
	EquipmentCost    decimal.Decimal
	InstallationCost decimal.Decimal
	TotalCost        decimal.Decimal
}

// costStep adjusts the running equipment cost. Steps are pure: they read only
// their arguments.
type costStep struct {
	name  string
	apply func(cost decimal.Decimal, in domain.ScenarioInput, t domain.PricingTables) decimal.Decimal
}

// Order matters: the surface delta is absolute and is scaled by every
// multiplier after it; hot water is added before the property multiplier.
var costPipeline = []costStep{
	{name: "heating_surface", apply: applySurface},
	{name: "insulation", apply: applyInsulation},
	{name: "building_year", apply: applyBuildingYear},
	{name: "hot_water", apply: applyHotWater},
	{name: "property_type", apply: applyPropertyType},
}

// EstimateCost computes equipment, installation and total cost for in.
func EstimateCost(in domain.ScenarioInput, t domain.PricingTables) CostEstimate {
	cost := baselineCost(in, t)
	stages := make([]domain.CostStage, 0, len(costPipeline)+1)
	stages = append(stages, domain.CostStage{Step: "baseline", Amount: cost})

	for _, step := range costPipeline {
		cost = step.apply(cost, in, t)
		stages = append(stages, domain.CostStage{Step: step.name, Amount: cost})
	}

	equipment := roundCurrency(cost)
	installation := roundCurrency(cost.Mul(t.Pump(in.PumpType).InstallationShare))

	return CostEstimate{
		Stages:           stages,
		AdjustedCost:     cost,
		EquipmentCost:    equipment,
		InstallationCost: installation,
		TotalCost:        equipment.Add(installation),
	}
}

func baselineCost(in domain.ScenarioInput, t domain.PricingTables) decimal.Decimal {
	profile := t.Pump(in.PumpType)
	return profile.BaseCost.Add(profile.CostPerSqm.Mul(decimal.NewFromInt(int64(in.AreaSqm))))
}

func applySurface(cost decimal.Decimal, in domain.ScenarioInput, t domain.PricingTables) decimal.Decimal {
	return cost.Add(t.Surface(in.HeatingSurfaceType).CostDelta)
}

func applyInsulation(cost decimal.Decimal, in domain.ScenarioInput, t domain.PricingTables) decimal.Decimal {
	return cost.Mul(t.Insulation(in.InsulationQuality))
}

func applyBuildingYear(cost decimal.Decimal, in domain.ScenarioInput, t domain.PricingTables) decimal.Decimal {
	return cost.Mul(t.BuildingYear(in.BuildingYearBand).CostMultiplier)
}

func applyHotWater(cost decimal.Decimal, in domain.ScenarioInput, t domain.PricingTables) decimal.Decimal {
	return cost.Add(t.HotWaterPerOccupant.Mul(decimal.NewFromInt(int64(in.OccupantCount))))
}

func applyPropertyType(cost decimal.Decimal, in domain.ScenarioInput, t domain.PricingTables) decimal.Decimal {
	return cost.Mul(t.Property(in.PropertyType))
}

// roundCurrency rounds half away from zero to whole currency units.
func roundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}
