// Package params maps scenarios to and from the flat key/value form used by
// deep links, saved preference records and the lead-capture handoff.
package params

// SchemaVersion identifies the layout of the outbound lead parameter set.
// Bump it whenever a key is renamed or its format changes.
const SchemaVersion = "1"

// Input keys, shared by deep links, saved preferences and lead params.
const (
	KeyPumpType       = "pump_type"
	KeyPropertyType   = "property_type"
	KeyUnitCount      = "unit_count"
	KeyAreaSqm        = "area_sqm"
	KeyBuildingYear   = "building_year"
	KeyInsulation     = "insulation"
	KeyHeatingSurface = "heating_surface"
	KeyCurrentFuel    = "current_fuel"
	KeyOccupants      = "occupants"
	KeyIncomeBonus    = "income_bonus"
)

// Result keys, outbound only.
const (
	KeySchema            = "schema"
	KeyEquipmentCost     = "equipment_cost"
	KeyInstallationCost  = "installation_cost"
	KeyTotalCost         = "total_cost"
	KeyEligibleCostCap   = "eligible_cost_cap"
	KeyEligibleCosts     = "eligible_costs"
	KeySubsidyRate       = "subsidy_rate"
	KeySubsidyAmount     = "subsidy_amount"
	KeyNetCost           = "net_cost"
	KeyPerformanceFactor = "performance_factor"
	KeyAnnualSavings     = "annual_savings"
	KeyClimateSpeedBonus = "climate_speed_bonus"
	KeyEfficiencyBonus   = "efficiency_bonus"
)

// InputKeys lists the input keys in canonical order.
func InputKeys() []string {
	return []string{
		KeyPumpType, KeyPropertyType, KeyUnitCount, KeyAreaSqm, KeyBuildingYear,
		KeyInsulation, KeyHeatingSurface, KeyCurrentFuel, KeyOccupants, KeyIncomeBonus,
	}
}

// ResultKeys lists the outbound result keys in canonical order.
func ResultKeys() []string {
	return []string{
		KeyEquipmentCost, KeyInstallationCost, KeyTotalCost, KeyEligibleCostCap,
		KeyEligibleCosts, KeySubsidyRate, KeySubsidyAmount, KeyNetCost,
		KeyPerformanceFactor, KeyAnnualSavings, KeyClimateSpeedBonus, KeyEfficiencyBonus,
	}
}
