package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/hpgo/internal/domain"
)

// ConsoleVerboseFormatter renders every intermediate value of each estimate.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.EstimateSet) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf, "HEAT PUMP COST AND SUBSIDY ESTIMATE")
	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsFor(results) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, r := range results.Reports {
		name := r.Name
		if name == "" {
			name = "estimate"
		}
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, name)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		writeInput(&buf, r.Input)
		writeDefaults(&buf, r.Normalization)
		writeCost(&buf, r)
		writeSubsidy(&buf, r)
		writeOperatingCost(&buf, r)
		fmt.Fprintln(&buf)
	}

	if len(results.Reports) > 1 {
		rec := AnalyzeEstimates(results)
		fmt.Fprintln(&buf, "SUMMARY")
		fmt.Fprintln(&buf, "=======")
		fmt.Fprintf(&buf, "Lowest net cost:   %s (%s)\n", rec.LowestNetCost, FormatCurrency(rec.NetCost))
		fmt.Fprintf(&buf, "Highest savings:   %s (%s/yr)\n", rec.HighestSavings, FormatCurrency(rec.AnnualSavings))
		if rec.ShortestPayback != "" {
			fmt.Fprintf(&buf, "Shortest payback:  %s (%s years)\n", rec.ShortestPayback, rec.PaybackYears.StringFixed(1))
		} else {
			fmt.Fprintln(&buf, "Shortest payback:  no scenario pays back")
		}
	}

	return buf.Bytes(), nil
}

func writeInput(buf *bytes.Buffer, in domain.ScenarioInput) {
	fmt.Fprintln(buf, "INPUT:")
	fmt.Fprintf(buf, "  Heat pump:             %s\n", in.PumpType.Label())
	fmt.Fprintf(buf, "  Property:              %s (%d units)\n", in.PropertyType.Label(), in.UnitCount)
	fmt.Fprintf(buf, "  Floor area:            %d m²\n", in.AreaSqm)
	fmt.Fprintf(buf, "  Building year:         %s\n", in.BuildingYearBand.Label())
	fmt.Fprintf(buf, "  Insulation:            %s\n", in.InsulationQuality.Label())
	fmt.Fprintf(buf, "  Heating surface:       %s\n", in.HeatingSurfaceType.Label())
	fmt.Fprintf(buf, "  Current fuel:          %s\n", in.CurrentHeatingFuel.Label())
	fmt.Fprintf(buf, "  Occupants:             %d\n", in.OccupantCount)
	fmt.Fprintf(buf, "  Income bonus claimed:  %s\n", yesNo(in.IncomeBonusClaimed))
	fmt.Fprintln(buf)
}

func writeDefaults(buf *bytes.Buffer, norm domain.NormalizationReport) {
	if len(norm.Defaulted) == 0 {
		return
	}
	fmt.Fprintln(buf, "DEFAULTS APPLIED:")
	for _, f := range norm.Defaulted {
		if f.Reason == domain.ReasonOmitted {
			fmt.Fprintf(buf, "  %-16s %s\n", f.Field, f.Value)
			continue
		}
		fmt.Fprintf(buf, "  %-16s %s (%s value %q)\n", f.Field, f.Value, f.Reason, f.Raw)
	}
	fmt.Fprintln(buf)
}

func writeCost(buf *bytes.Buffer, r domain.EstimateReport) {
	b := r.Breakdown
	fmt.Fprintln(buf, "COST BUILD-UP:")
	for _, stage := range r.CostStages {
		fmt.Fprintf(buf, "  %-20s %12s\n", stage.Step, "$"+stage.Amount.StringFixed(2))
	}
	fmt.Fprintf(buf, "  Equipment cost:        %s\n", FormatCurrency(b.EquipmentCost))
	fmt.Fprintf(buf, "  Installation cost:     %s\n", FormatCurrency(b.InstallationCost))
	fmt.Fprintf(buf, "  TOTAL COST:            %s\n", FormatCurrency(b.TotalCost))
	fmt.Fprintln(buf)
}

func writeSubsidy(buf *bytes.Buffer, r domain.EstimateReport) {
	b, s := r.Breakdown, r.Subsidy
	fmt.Fprintln(buf, "SUBSIDY:")
	fmt.Fprintf(buf, "  Base rate:             %s\n", FormatRate(s.BaseRate))
	fmt.Fprintf(buf, "  Climate speed bonus:   %s\n", FormatRate(s.ClimateSpeedBonus))
	fmt.Fprintf(buf, "  Efficiency bonus:      %s\n", FormatRate(s.EfficiencyBonus))
	fmt.Fprintf(buf, "  Income bonus:          %s\n", FormatRate(s.IncomeBonus))
	if s.RateCapped {
		fmt.Fprintf(buf, "  Combined rate:         %s (capped from %s)\n", FormatRate(b.SubsidyRate), FormatRate(s.UncappedRate))
	} else {
		fmt.Fprintf(buf, "  Combined rate:         %s\n", FormatRate(b.SubsidyRate))
	}
	fmt.Fprintf(buf, "  Eligible cost cap:     %s (%d additional units counted)\n", FormatCurrency(b.EligibleCostCap), s.CountedExtraUnits)
	if s.CostCapBinding {
		fmt.Fprintf(buf, "  Eligible costs:        %s (cap binding)\n", FormatCurrency(b.EligibleCosts))
	} else {
		fmt.Fprintf(buf, "  Eligible costs:        %s\n", FormatCurrency(b.EligibleCosts))
	}
	fmt.Fprintf(buf, "  SUBSIDY AMOUNT:        %s\n", FormatCurrency(b.SubsidyAmount))
	fmt.Fprintf(buf, "  NET COST:              %s\n", FormatCurrency(b.NetCost))
	fmt.Fprintln(buf)
}

func writeOperatingCost(buf *bytes.Buffer, r domain.EstimateReport) {
	b, s := r.Breakdown, r.Savings
	fmt.Fprintln(buf, "OPERATING COST:")
	fmt.Fprintf(buf, "  Performance factor:    %s (raw %s)\n", b.PerformanceFactor.StringFixed(1), r.RawPerformanceFactor.StringFixed(2))
	fmt.Fprintf(buf, "  Heat demand:           %s kWh/yr\n", s.AnnualHeatDemand.StringFixed(0))
	fmt.Fprintf(buf, "  Current system:        %s/yr\n", FormatCurrency(s.BaselineAnnualCost))
	fmt.Fprintf(buf, "  Heat pump:             %s/yr\n", FormatCurrency(s.HeatPumpAnnualCost))
	fmt.Fprintf(buf, "  ANNUAL SAVINGS:        %s\n", FormatCurrency(b.AnnualSavings))
	fmt.Fprintf(buf, "  Payback:               %s\n", FormatPayback(b))
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
