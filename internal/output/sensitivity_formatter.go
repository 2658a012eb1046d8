package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/shopspring/decimal"
)

// SensitivityFormatter defines a formatter for sensitivity analysis
type SensitivityFormatter interface {
	FormatSensitivityAnalysis(analysis *domain.ParameterSensitivityAnalysis) (string, error)
	Name() string
}

// SensitivityConsoleFormatter formats sensitivity analysis output for console
type SensitivityConsoleFormatter struct{}

func (scf SensitivityConsoleFormatter) Name() string { return "console" }

func (scf SensitivityConsoleFormatter) FormatSensitivityAnalysis(analysis *domain.ParameterSensitivityAnalysis) (string, error) {
	if analysis == nil || len(analysis.Points) == 0 {
		return "", fmt.Errorf("no results in analysis")
	}

	var buf bytes.Buffer
	param := analysis.Parameter

	fmt.Fprintf(&buf, "SENSITIVITY ANALYSIS: %s\n", strings.ToUpper(strings.ReplaceAll(param.Name, "_", " ")))
	fmt.Fprintln(&buf, strings.Repeat("=", 65))
	if analysis.BaseScenarioName != "" {
		fmt.Fprintf(&buf, "Scenario: %s\n", analysis.BaseScenarioName)
	}
	fmt.Fprintf(&buf, "Base Case: %s = %s %s\n", param.Name, param.BaseValue.String(), param.Unit)
	fmt.Fprintf(&buf, "Range: %s to %s %s (%d steps)\n", param.MinValue.String(), param.MaxValue.String(), param.Unit, param.Steps)
	if param.Description != "" {
		fmt.Fprintf(&buf, "Description: %s\n", param.Description)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-14s %10s %10s %10s %11s %7s %10s\n",
		param.Name, "Total", "Subsidy", "Net Cost", "Savings/yr", "Factor", "Δ Net")
	fmt.Fprintln(&buf, strings.Repeat("-", 80))

	for _, p := range analysis.Points {
		value := p.Value.String()
		if p.Value.Equal(param.BaseValue) {
			value += " ← BASE"
		}
		if p.CostCapBinding {
			value += " *"
		}
		fmt.Fprintf(&buf, "%-14s %10s %10s %10s %11s %7s %10s\n",
			value,
			FormatCurrency(p.TotalCost),
			FormatCurrency(p.SubsidyAmount),
			FormatCurrency(p.NetCost),
			FormatCurrency(p.AnnualSavings),
			p.PerformanceFactor.StringFixed(1),
			signedCurrency(p.NetCostChange))
	}
	fmt.Fprintln(&buf, "* eligible-cost cap binding")
	fmt.Fprintln(&buf)

	s := analysis.Summary
	fmt.Fprintln(&buf, "SPREAD:")
	fmt.Fprintf(&buf, "  Net cost:        %s (%s to %s)\n", FormatCurrency(s.NetCostSpread), FormatCurrency(s.MinNetCost), FormatCurrency(s.MaxNetCost))
	fmt.Fprintf(&buf, "  Annual savings:  %s\n", FormatCurrency(s.SavingsSpread))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "RECOMMENDATIONS:")
	for _, rec := range s.Recommendations {
		fmt.Fprintf(&buf, "  • %s\n", rec)
	}

	return buf.String(), nil
}

// SensitivityCSVFormatter formats sensitivity analysis output as CSV
type SensitivityCSVFormatter struct{}

func (scf SensitivityCSVFormatter) Name() string { return "csv" }

func (scf SensitivityCSVFormatter) FormatSensitivityAnalysis(analysis *domain.ParameterSensitivityAnalysis) (string, error) {
	if analysis == nil || len(analysis.Points) == 0 {
		return "", fmt.Errorf("no results in analysis")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{"parameter_name", "parameter_value", "total_cost", "subsidy_amount", "net_cost",
		"annual_savings", "performance_factor", "cost_cap_binding", "net_cost_change"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, p := range analysis.Points {
		row := []string{
			analysis.Parameter.Name,
			p.Value.String(),
			p.TotalCost.StringFixed(0),
			p.SubsidyAmount.StringFixed(0),
			p.NetCost.StringFixed(0),
			p.AnnualSavings.StringFixed(0),
			p.PerformanceFactor.StringFixed(1),
			strconv.FormatBool(p.CostCapBinding),
			p.NetCostChange.StringFixed(0),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()

	return buf.String(), w.Error()
}

// SensitivityJSONFormatter formats sensitivity analysis output as JSON
type SensitivityJSONFormatter struct{}

func (sjf SensitivityJSONFormatter) Name() string { return "json" }

func (sjf SensitivityJSONFormatter) FormatSensitivityAnalysis(analysis *domain.ParameterSensitivityAnalysis) (string, error) {
	if analysis == nil {
		return "", fmt.Errorf("no analysis to format")
	}
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

// NewSensitivityFormatter creates a sensitivity formatter based on the format name
func NewSensitivityFormatter(format string) SensitivityFormatter {
	switch NormalizeFormatName(format) {
	case "console", "console-lite":
		return SensitivityConsoleFormatter{}
	case "csv", "detailed-csv":
		return SensitivityCSVFormatter{}
	case "json":
		return SensitivityJSONFormatter{}
	default:
		return SensitivityConsoleFormatter{} // Default to console
	}
}

func signedCurrency(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + FormatCurrency(d)
	}
	if d.IsNegative() {
		return "-" + FormatCurrency(d.Abs())
	}
	return FormatCurrency(d)
}
