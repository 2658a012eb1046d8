package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Total Cost",
		"Subsidy",
		"Subsidy Rate",
		"Net Cost",
		"Annual Savings",
		"Performance Factor",
		"Payback Years",
		"Net Cost Diff from Base",
		"Net Cost % Change",
		"Savings Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "Base")); err != nil {
		return "", err
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "Alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row; payback is left empty
// when the scenario never pays back
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	payback := ""
	if result.HasPayback {
		payback = result.PaybackYears.StringFixed(1)
	}
	return []string{
		result.ScenarioName,
		scenarioType,
		result.TotalCost.StringFixed(0),
		result.SubsidyAmount.StringFixed(0),
		result.SubsidyRate.StringFixed(2),
		result.NetCost.StringFixed(0),
		result.AnnualSavings.StringFixed(0),
		result.PerformanceFactor.StringFixed(1),
		payback,
		result.NetCostDiffFromBase.StringFixed(0),
		result.NetCostPctFromBase.StringFixed(2),
		result.SavingsDiffFromBase.StringFixed(0),
	}
}
