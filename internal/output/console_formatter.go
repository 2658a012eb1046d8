package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/hpgo/internal/domain"
)

// ConsoleFormatter prints a one-line-per-scenario summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.EstimateSet) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "HEAT PUMP ESTIMATE SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("=", 86))
	if results.Source != "" {
		fmt.Fprintf(&buf, "Source: %s\n", results.Source)
	}

	if len(results.Reports) == 0 {
		fmt.Fprintln(&buf, "No scenarios estimated")
		return buf.Bytes(), nil
	}

	fmt.Fprintf(&buf, "%-24s %10s %10s %6s %10s %11s %12s\n",
		"Scenario", "Total", "Subsidy", "Rate", "Net Cost", "Savings/yr", "Payback")
	fmt.Fprintln(&buf, strings.Repeat("-", 86))
	for i, r := range results.Reports {
		name := r.Name
		if name == "" {
			name = fmt.Sprintf("estimate %d", i+1)
		}
		b := r.Breakdown
		fmt.Fprintf(&buf, "%-24s %10s %10s %6s %10s %11s %12s\n",
			name,
			FormatCurrency(b.TotalCost),
			FormatCurrency(b.SubsidyAmount),
			FormatRate(b.SubsidyRate),
			FormatCurrency(b.NetCost),
			FormatCurrency(b.AnnualSavings),
			FormatPayback(b))
	}
	fmt.Fprintln(&buf)

	if len(results.Reports) > 1 {
		rec := AnalyzeEstimates(results)
		fmt.Fprintf(&buf, "Lowest net cost: %s (%s)\n", rec.LowestNetCost, FormatCurrency(rec.NetCost))
		if rec.ShortestPayback != "" {
			fmt.Fprintf(&buf, "Shortest payback: %s (%s years)\n", rec.ShortestPayback, rec.PaybackYears.StringFixed(1))
		}
	}

	return buf.Bytes(), nil
}
