package params

import (
	"net/url"
	"strconv"

	"github.com/rgehrsitz/hpgo/internal/domain"
)

// Encode writes a complete input using the inbound keys. Decode(Encode(in))
// normalizes back to in.
func Encode(in domain.ScenarioInput) url.Values {
	values := url.Values{}
	values.Set(KeyPumpType, string(in.PumpType))
	values.Set(KeyPropertyType, string(in.PropertyType))
	values.Set(KeyUnitCount, strconv.Itoa(in.UnitCount))
	values.Set(KeyAreaSqm, strconv.Itoa(in.AreaSqm))
	values.Set(KeyBuildingYear, string(in.BuildingYearBand))
	values.Set(KeyInsulation, string(in.InsulationQuality))
	values.Set(KeyHeatingSurface, string(in.HeatingSurfaceType))
	values.Set(KeyCurrentFuel, string(in.CurrentHeatingFuel))
	values.Set(KeyOccupants, strconv.Itoa(in.OccupantCount))
	values.Set(KeyIncomeBonus, strconv.FormatBool(in.IncomeBonusClaimed))
	return values
}
