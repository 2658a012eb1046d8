package output

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Recommendation summarises the standout scenarios of an estimate set.
type Recommendation struct {
	LowestNetCost   string
	NetCost         decimal.Decimal
	ShortestPayback string // empty when no scenario pays back
	PaybackYears    decimal.Decimal
	HighestSavings  string
	AnnualSavings   decimal.Decimal
}

// AnalyzeEstimates picks the cheapest, fastest-paying and highest-saving
// scenarios. Ties keep the earlier scenario.
func AnalyzeEstimates(results *domain.EstimateSet) Recommendation {
	var rec Recommendation
	if results == nil || len(results.Reports) == 0 {
		return rec
	}

	for i, r := range results.Reports {
		b := r.Breakdown
		if i == 0 || b.NetCost.LessThan(rec.NetCost) {
			rec.LowestNetCost = r.Name
			rec.NetCost = b.NetCost
		}
		if i == 0 || b.AnnualSavings.GreaterThan(rec.AnnualSavings) {
			rec.HighestSavings = r.Name
			rec.AnnualSavings = b.AnnualSavings
		}
		if years, ok := b.PaybackYears(); ok {
			if rec.ShortestPayback == "" || years.LessThan(rec.PaybackYears) {
				rec.ShortestPayback = r.Name
				rec.PaybackYears = years
			}
		}
	}
	return rec
}

// GenerateReport writes results to a timestamped file in the given format
// and returns the file name.
func GenerateReport(results *domain.EstimateSet, format string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("unsupported format: %s", format)
	}
	return WriteFormatted(f, results, FileExtension(format))
}

// SaveScenarioFile writes a scenario file as YAML
func SaveScenarioFile(file *domain.ScenarioFile, filename string) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}

// FormatCurrency formats a whole-unit amount as currency
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(0)
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

// FormatRate formats a fractional rate such as 0.5 as a whole percentage
func FormatRate(rate decimal.Decimal) string {
	return rate.Shift(2).StringFixed(0) + "%"
}

// FormatPayback renders the payback period of b.
func FormatPayback(b domain.CostBreakdown) string {
	years, ok := b.PaybackYears()
	if !ok {
		return "never"
	}
	return years.StringFixed(1) + " years"
}
