package params

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/shopspring/decimal"
)

// SchemaError reports a lead parameter set that does not match the schema.
type SchemaError struct {
	Key    string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("lead params: %s: %s", e.Key, e.Reason)
}

// LeadParams is the flat parameter set handed to lead capture: the normalized
// input plus the headline numbers of its breakdown.
type LeadParams struct {
	Schema            string
	Input             domain.ScenarioInput
	EquipmentCost     decimal.Decimal
	InstallationCost  decimal.Decimal
	TotalCost         decimal.Decimal
	EligibleCostCap   decimal.Decimal
	EligibleCosts     decimal.Decimal
	SubsidyRate       decimal.Decimal
	SubsidyAmount     decimal.Decimal
	NetCost           decimal.Decimal
	PerformanceFactor decimal.Decimal
	AnnualSavings     decimal.Decimal
	ClimateSpeedBonus bool
	EfficiencyBonus   bool
}

// NewLeadParams builds the outbound set for an estimate.
func NewLeadParams(report domain.EstimateReport) LeadParams {
	b := report.Breakdown
	return LeadParams{
		Schema:            SchemaVersion,
		Input:             report.Input,
		EquipmentCost:     b.EquipmentCost,
		InstallationCost:  b.InstallationCost,
		TotalCost:         b.TotalCost,
		EligibleCostCap:   b.EligibleCostCap,
		EligibleCosts:     b.EligibleCosts,
		SubsidyRate:       b.SubsidyRate,
		SubsidyAmount:     b.SubsidyAmount,
		NetCost:           b.NetCost,
		PerformanceFactor: b.PerformanceFactor,
		AnnualSavings:     b.AnnualSavings,
		ClimateSpeedBonus: b.ClimateSpeedBonusApplied,
		EfficiencyBonus:   b.EfficiencyBonusApplied,
	}
}

// Values renders the set. Currency is written in whole units, the rate with
// two decimals and the performance factor with one.
func (l LeadParams) Values() url.Values {
	values := Encode(l.Input)
	values.Set(KeySchema, l.Schema)
	values.Set(KeyEquipmentCost, l.EquipmentCost.StringFixed(0))
	values.Set(KeyInstallationCost, l.InstallationCost.StringFixed(0))
	values.Set(KeyTotalCost, l.TotalCost.StringFixed(0))
	values.Set(KeyEligibleCostCap, l.EligibleCostCap.StringFixed(0))
	values.Set(KeyEligibleCosts, l.EligibleCosts.StringFixed(0))
	values.Set(KeySubsidyRate, l.SubsidyRate.StringFixed(2))
	values.Set(KeySubsidyAmount, l.SubsidyAmount.StringFixed(0))
	values.Set(KeyNetCost, l.NetCost.StringFixed(0))
	values.Set(KeyPerformanceFactor, l.PerformanceFactor.StringFixed(1))
	values.Set(KeyAnnualSavings, l.AnnualSavings.StringFixed(0))
	values.Set(KeyClimateSpeedBonus, strconv.FormatBool(l.ClimateSpeedBonus))
	values.Set(KeyEfficiencyBonus, strconv.FormatBool(l.EfficiencyBonus))
	return values
}

// DecodeLeadParams parses a lead parameter set strictly. Unlike Decode, every
// key must be present and well formed and the schema version must match.
func DecodeLeadParams(values url.Values) (LeadParams, error) {
	var l LeadParams

	schema, ok := lookup(values, KeySchema)
	if !ok {
		return l, &SchemaError{Key: KeySchema, Reason: "missing"}
	}
	if schema != SchemaVersion {
		return l, &SchemaError{Key: KeySchema, Reason: fmt.Sprintf("unsupported version %q", schema)}
	}
	l.Schema = schema

	d := strictDecoder{values: values}
	l.Input = domain.ScenarioInput{
		PumpType:           domain.PumpType(d.enum(KeyPumpType, tokenOf(domain.ParsePumpType))),
		PropertyType:       domain.PropertyType(d.enum(KeyPropertyType, tokenOf(domain.ParsePropertyType))),
		UnitCount:          d.positiveInt(KeyUnitCount),
		AreaSqm:            d.positiveInt(KeyAreaSqm),
		BuildingYearBand:   domain.BuildingYearBand(d.enum(KeyBuildingYear, tokenOf(domain.ParseBuildingYearBand))),
		InsulationQuality:  domain.InsulationQuality(d.enum(KeyInsulation, tokenOf(domain.ParseInsulationQuality))),
		HeatingSurfaceType: domain.HeatingSurface(d.enum(KeyHeatingSurface, tokenOf(domain.ParseHeatingSurface))),
		CurrentHeatingFuel: domain.HeatingFuel(d.enum(KeyCurrentFuel, tokenOf(domain.ParseHeatingFuel))),
		OccupantCount:      d.positiveInt(KeyOccupants),
		IncomeBonusClaimed: d.boolean(KeyIncomeBonus),
	}
	l.EquipmentCost = d.amount(KeyEquipmentCost)
	l.InstallationCost = d.amount(KeyInstallationCost)
	l.TotalCost = d.amount(KeyTotalCost)
	l.EligibleCostCap = d.amount(KeyEligibleCostCap)
	l.EligibleCosts = d.amount(KeyEligibleCosts)
	l.SubsidyRate = d.amount(KeySubsidyRate)
	l.SubsidyAmount = d.amount(KeySubsidyAmount)
	l.NetCost = d.amount(KeyNetCost)
	l.PerformanceFactor = d.amount(KeyPerformanceFactor)
	l.AnnualSavings = d.amount(KeyAnnualSavings)
	l.ClimateSpeedBonus = d.boolean(KeyClimateSpeedBonus)
	l.EfficiencyBonus = d.boolean(KeyEfficiencyBonus)

	if d.err != nil {
		return LeadParams{}, d.err
	}
	return l, nil
}

// strictDecoder keeps the first error and turns later reads into no-ops.
type strictDecoder struct {
	values url.Values
	err    error
}

func (d *strictDecoder) raw(key string) (string, bool) {
	if d.err != nil {
		return "", false
	}
	v, ok := lookup(d.values, key)
	if !ok {
		d.err = &SchemaError{Key: key, Reason: "missing"}
	}
	return v, ok
}

// tokenOf adapts one of the domain Parse functions to a string result.
func tokenOf[T ~string](parse func(string) (T, bool)) func(string) (string, bool) {
	return func(raw string) (string, bool) {
		v, ok := parse(raw)
		return string(v), ok
	}
}

func (d *strictDecoder) enum(key string, parse func(string) (string, bool)) string {
	v, ok := d.raw(key)
	if !ok {
		return ""
	}
	token, ok := parse(v)
	if !ok {
		d.err = &SchemaError{Key: key, Reason: fmt.Sprintf("unknown value %q", v)}
		return ""
	}
	return token
}

func (d *strictDecoder) positiveInt(key string) int {
	v, ok := d.raw(key)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		d.err = &SchemaError{Key: key, Reason: fmt.Sprintf("expected a positive whole number, got %q", v)}
		return 0
	}
	return n
}

func (d *strictDecoder) boolean(key string) bool {
	v, ok := d.raw(key)
	if !ok {
		return false
	}
	b, ok := ParseBool(v)
	if !ok {
		d.err = &SchemaError{Key: key, Reason: fmt.Sprintf("expected a boolean, got %q", v)}
	}
	return b
}

func (d *strictDecoder) amount(key string) decimal.Decimal {
	v, ok := d.raw(key)
	if !ok {
		return decimal.Zero
	}
	n, err := decimal.NewFromString(v)
	if err != nil {
		d.err = &SchemaError{Key: key, Reason: fmt.Sprintf("expected a number, got %q", v)}
		return decimal.Zero
	}
	return n
}
