package output

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/rgehrsitz/hpgo/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.EstimateSet) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "TotalCost", "EligibleCosts", "SubsidyRate", "SubsidyAmount", "NetCost", "PerformanceFactor", "AnnualSavings", "PaybackYears"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	reports := append([]domain.EstimateReport(nil), results.Reports...)
	sort.SliceStable(reports, func(i, j int) bool { return reports[i].Name < reports[j].Name })
	for _, r := range reports {
		b := r.Breakdown
		payback := ""
		if years, ok := b.PaybackYears(); ok {
			payback = years.StringFixed(1)
		}
		row := []string{
			r.Name,
			b.TotalCost.StringFixed(0),
			b.EligibleCosts.StringFixed(0),
			b.SubsidyRate.StringFixed(2),
			b.SubsidyAmount.StringFixed(0),
			b.NetCost.StringFixed(0),
			b.PerformanceFactor.StringFixed(1),
			b.AnnualSavings.StringFixed(0),
			payback,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// DetailedCSVFormatter writes one row per scenario and line item, including
// the cost stages, in long format.
type DetailedCSVFormatter struct{}

func (d DetailedCSVFormatter) Name() string { return "detailed-csv" }

func (d DetailedCSVFormatter) Format(results *domain.EstimateSet) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Scenario", "Section", "Item", "Value"}); err != nil {
		return nil, err
	}
	for _, r := range results.Reports {
		for _, row := range detailRows(r) {
			if err := w.Write(append([]string{r.Name}, row...)); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func detailRows(r domain.EstimateReport) [][]string {
	in, b, s := r.Input, r.Breakdown, r.Subsidy
	rows := [][]string{
		{"input", "pump_type", string(in.PumpType)},
		{"input", "property_type", string(in.PropertyType)},
		{"input", "unit_count", strconv.Itoa(in.UnitCount)},
		{"input", "area_sqm", strconv.Itoa(in.AreaSqm)},
		{"input", "building_year", string(in.BuildingYearBand)},
		{"input", "insulation", string(in.InsulationQuality)},
		{"input", "heating_surface", string(in.HeatingSurfaceType)},
		{"input", "current_fuel", string(in.CurrentHeatingFuel)},
		{"input", "occupants", strconv.Itoa(in.OccupantCount)},
		{"input", "income_bonus", strconv.FormatBool(in.IncomeBonusClaimed)},
	}
	for _, stage := range r.CostStages {
		rows = append(rows, []string{"cost_stage", stage.Step, stage.Amount.StringFixed(2)})
	}
	rows = append(rows,
		[]string{"cost", "equipment_cost", b.EquipmentCost.StringFixed(0)},
		[]string{"cost", "installation_cost", b.InstallationCost.StringFixed(0)},
		[]string{"cost", "total_cost", b.TotalCost.StringFixed(0)},
		[]string{"subsidy", "base_rate", s.BaseRate.StringFixed(2)},
		[]string{"subsidy", "climate_speed_bonus", s.ClimateSpeedBonus.StringFixed(2)},
		[]string{"subsidy", "efficiency_bonus", s.EfficiencyBonus.StringFixed(2)},
		[]string{"subsidy", "income_bonus", s.IncomeBonus.StringFixed(2)},
		[]string{"subsidy", "subsidy_rate", b.SubsidyRate.StringFixed(2)},
		[]string{"subsidy", "eligible_cost_cap", b.EligibleCostCap.StringFixed(0)},
		[]string{"subsidy", "eligible_costs", b.EligibleCosts.StringFixed(0)},
		[]string{"subsidy", "subsidy_amount", b.SubsidyAmount.StringFixed(0)},
		[]string{"subsidy", "net_cost", b.NetCost.StringFixed(0)},
		[]string{"savings", "performance_factor", b.PerformanceFactor.StringFixed(1)},
		[]string{"savings", "baseline_annual_cost", r.Savings.BaselineAnnualCost.StringFixed(0)},
		[]string{"savings", "heat_pump_annual_cost", r.Savings.HeatPumpAnnualCost.StringFixed(0)},
		[]string{"savings", "annual_savings", b.AnnualSavings.StringFixed(0)},
	)
	return rows
}
