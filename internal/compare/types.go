package compare

import (
	"encoding/json"
	"fmt"

	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult represents a single scenario comparison with calculated metrics
type ComparisonResult struct {
	ScenarioName string                 `json:"scenarioName"`
	Description  string                 `json:"description,omitempty"`
	Report       *domain.EstimateReport `json:"report,omitempty"`

	// Key Metrics
	TotalCost         decimal.Decimal `json:"totalCost"`
	SubsidyAmount     decimal.Decimal `json:"subsidyAmount"`
	SubsidyRate       decimal.Decimal `json:"subsidyRate"`
	NetCost           decimal.Decimal `json:"netCost"`
	AnnualSavings     decimal.Decimal `json:"annualSavings"`
	PerformanceFactor decimal.Decimal `json:"performanceFactor"`
	PaybackYears      decimal.Decimal `json:"paybackYears"`
	HasPayback        bool            `json:"hasPayback"` // false when there are no annual savings

	// Comparison to Base
	NetCostDiffFromBase decimal.Decimal `json:"netCostDiffFromBase"`
	NetCostPctFromBase  decimal.Decimal `json:"netCostPctFromBase"`
	SubsidyDiffFromBase decimal.Decimal `json:"subsidyDiffFromBase"`
	SavingsDiffFromBase decimal.Decimal `json:"savingsDiffFromBase"`
	PaybackDiffFromBase decimal.Decimal `json:"paybackDiffFromBase"` // zero unless both sides pay back

	// Scenario Specifics (extracted from the input for display)
	PumpType          string `json:"pumpType,omitempty"`
	InsulationQuality string `json:"insulationQuality,omitempty"`
	HeatingSurface    string `json:"heatingSurface,omitempty"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath"`
}

type comparisonResultFields ComparisonResult

// MarshalJSON renders the performance factor with exactly one decimal digit.
func (r ComparisonResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		comparisonResultFields
		PerformanceFactor string `json:"performanceFactor"`
	}{comparisonResultFields(r), r.PerformanceFactor.StringFixed(1)})
}

// MetricsCalculator extracts key metrics from estimate reports
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for an estimate
func (mc *MetricsCalculator) CalculateMetrics(report *domain.EstimateReport) ComparisonResult {
	b := report.Breakdown
	payback, ok := b.PaybackYears()

	return ComparisonResult{
		ScenarioName:      report.Name,
		Report:            report,
		TotalCost:         b.TotalCost,
		SubsidyAmount:     b.SubsidyAmount,
		SubsidyRate:       b.SubsidyRate,
		NetCost:           b.NetCost,
		AnnualSavings:     b.AnnualSavings,
		PerformanceFactor: b.PerformanceFactor,
		PaybackYears:      payback,
		HasPayback:        ok,
		PumpType:          string(report.Input.PumpType),
		InsulationQuality: string(report.Input.InsulationQuality),
		HeatingSurface:    string(report.Input.HeatingSurfaceType),
	}
}

// CalculateComparison computes comparison metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.NetCostDiffFromBase = scenario.NetCost.Sub(base.NetCost)

	if !base.NetCost.IsZero() {
		scenario.NetCostPctFromBase = scenario.NetCostDiffFromBase.
			Div(base.NetCost).
			Mul(decimal.NewFromInt(100))
	}

	scenario.SubsidyDiffFromBase = scenario.SubsidyAmount.Sub(base.SubsidyAmount)
	scenario.SavingsDiffFromBase = scenario.AnnualSavings.Sub(base.AnnualSavings)

	scenario.PaybackDiffFromBase = decimal.Zero
	if scenario.HasPayback && base.HasPayback {
		scenario.PaybackDiffFromBase = scenario.PaybackYears.Sub(base.PaybackYears)
	}

	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}
	base := compSet.BaseResult
	alts := compSet.AlternativeResults

	// Find lowest net cost
	cheapest := -1
	for i := range alts {
		best := base.NetCost
		if cheapest >= 0 {
			best = alts[cheapest].NetCost
		}
		if alts[i].NetCost.LessThan(best) {
			cheapest = i
		}
	}
	if cheapest >= 0 {
		saving := base.NetCost.Sub(alts[cheapest].NetCost)
		recommendations = append(recommendations,
			"Lowest Net Cost: "+alts[cheapest].ScenarioName+" costs $"+saving.StringFixed(0)+
				" less up front than the base scenario")
	}

	// Find highest annual savings
	thrifty := -1
	for i := range alts {
		best := base.AnnualSavings
		if thrifty >= 0 {
			best = alts[thrifty].AnnualSavings
		}
		if alts[i].AnnualSavings.GreaterThan(best) {
			thrifty = i
		}
	}
	if thrifty >= 0 {
		extra := alts[thrifty].AnnualSavings.Sub(base.AnnualSavings)
		recommendations = append(recommendations,
			"Highest Savings: "+alts[thrifty].ScenarioName+" saves $"+extra.StringFixed(0)+
				" more per year than the base scenario")
	}

	// Find shortest payback
	fastest := -1
	for i := range alts {
		if !alts[i].HasPayback {
			continue
		}
		switch {
		case fastest >= 0:
			if alts[i].PaybackYears.LessThan(alts[fastest].PaybackYears) {
				fastest = i
			}
		case !base.HasPayback || alts[i].PaybackYears.LessThan(base.PaybackYears):
			fastest = i
		}
	}
	if fastest >= 0 {
		if base.HasPayback {
			recommendations = append(recommendations,
				fmt.Sprintf("Shortest Payback: %s pays back in %s years (base: %s years)",
					alts[fastest].ScenarioName, alts[fastest].PaybackYears.StringFixed(1), base.PaybackYears.StringFixed(1)))
		} else {
			recommendations = append(recommendations,
				fmt.Sprintf("Shortest Payback: %s pays back in %s years; the base scenario never does",
					alts[fastest].ScenarioName, alts[fastest].PaybackYears.StringFixed(1)))
		}
	}

	return recommendations
}
