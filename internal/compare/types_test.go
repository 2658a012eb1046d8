package compare

import (
	"context"
	"strings"
	"testing"

	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/shopspring/decimal"
)

func testScenarioFile() *domain.ScenarioFile {
	return &domain.ScenarioFile{
		Scenarios: []domain.NamedScenario{
			{Name: "house", Description: "Default single-family retrofit"},
			{
				Name: "apartments",
				Input: domain.PartialScenario{
					PumpType:     ptr(domain.PumpGroundWater),
					PropertyType: ptr(domain.PropertyMultiFamily),
					UnitCount:    ptr(3),
				},
			},
		},
	}
}

func ptr[T any](v T) *T { return &v }

func TestMetricsCalculator_CalculateMetrics(t *testing.T) {
	calc := NewMetricsCalculator()

	report := &domain.EstimateReport{
		Name:  "house",
		Input: domain.DefaultScenarioInput(),
		Breakdown: domain.CostBreakdown{
			TotalCost:         decimal.NewFromInt(37250),
			SubsidyAmount:     decimal.NewFromInt(15000),
			SubsidyRate:       decimal.NewFromFloat(0.5),
			NetCost:           decimal.NewFromInt(22250),
			AnnualSavings:     decimal.NewFromInt(495),
			PerformanceFactor: decimal.NewFromFloat(3.3),
		},
	}

	result := calc.CalculateMetrics(report)

	if result.ScenarioName != "house" {
		t.Errorf("Expected scenario name house, got %s", result.ScenarioName)
	}
	if result.Report != report {
		t.Error("Expected result to reference the report")
	}
	if !result.NetCost.Equal(decimal.NewFromInt(22250)) {
		t.Errorf("Expected net cost 22250, got %s", result.NetCost)
	}
	if !result.HasPayback || result.PaybackYears.StringFixed(1) != "44.9" {
		t.Errorf("Expected payback 44.9, got %s (ok=%v)", result.PaybackYears, result.HasPayback)
	}
	if result.PumpType != "air_water" {
		t.Errorf("Expected pump type air_water, got %s", result.PumpType)
	}
	if result.InsulationQuality != "average" || result.HeatingSurface != "radiators" {
		t.Errorf("Unexpected scenario specifics: %s, %s", result.InsulationQuality, result.HeatingSurface)
	}
}

func TestMetricsCalculator_CalculateMetrics_NoSavings(t *testing.T) {
	report := &domain.EstimateReport{
		Breakdown: domain.CostBreakdown{NetCost: decimal.NewFromInt(10000)},
	}

	result := NewMetricsCalculator().CalculateMetrics(report)
	if result.HasPayback {
		t.Error("Expected no payback without annual savings")
	}
}

func TestMetricsCalculator_CalculateComparison(t *testing.T) {
	calc := NewMetricsCalculator()

	base := ComparisonResult{
		NetCost:       decimal.NewFromInt(20000),
		SubsidyAmount: decimal.NewFromInt(15000),
		AnnualSavings: decimal.NewFromInt(500),
		PaybackYears:  decimal.NewFromInt(40),
		HasPayback:    true,
	}
	scenario := ComparisonResult{
		NetCost:       decimal.NewFromInt(15000),
		SubsidyAmount: decimal.NewFromInt(21000),
		AnnualSavings: decimal.NewFromInt(1000),
		PaybackYears:  decimal.NewFromInt(15),
		HasPayback:    true,
	}

	result := calc.CalculateComparison(scenario, base)

	if !result.NetCostDiffFromBase.Equal(decimal.NewFromInt(-5000)) {
		t.Errorf("Expected net cost diff -5000, got %s", result.NetCostDiffFromBase)
	}
	if !result.NetCostPctFromBase.Equal(decimal.NewFromInt(-25)) {
		t.Errorf("Expected -25%%, got %s", result.NetCostPctFromBase)
	}
	if !result.SubsidyDiffFromBase.Equal(decimal.NewFromInt(6000)) {
		t.Errorf("Expected subsidy diff 6000, got %s", result.SubsidyDiffFromBase)
	}
	if !result.SavingsDiffFromBase.Equal(decimal.NewFromInt(500)) {
		t.Errorf("Expected savings diff 500, got %s", result.SavingsDiffFromBase)
	}
	if !result.PaybackDiffFromBase.Equal(decimal.NewFromInt(-25)) {
		t.Errorf("Expected payback diff -25, got %s", result.PaybackDiffFromBase)
	}

	// Payback delta is meaningless when the base never pays back
	base.HasPayback = false
	result = calc.CalculateComparison(scenario, base)
	if !result.PaybackDiffFromBase.IsZero() {
		t.Errorf("Expected zero payback diff, got %s", result.PaybackDiffFromBase)
	}

	// Zero base net cost leaves the percentage at zero
	base.NetCost = decimal.Zero
	result = calc.CalculateComparison(scenario, base)
	if !result.NetCostPctFromBase.IsZero() {
		t.Errorf("Expected zero percentage, got %s", result.NetCostPctFromBase)
	}
}

func TestGenerateRecommendations(t *testing.T) {
	compSet := &ComparisonSet{
		BaseScenarioName: "base",
		BaseResult: &ComparisonResult{
			ScenarioName:  "base",
			NetCost:       decimal.NewFromInt(20000),
			AnnualSavings: decimal.NewFromInt(500),
			PaybackYears:  decimal.NewFromInt(40),
			HasPayback:    true,
		},
		AlternativeResults: []ComparisonResult{
			{
				ScenarioName:  "cheap",
				NetCost:       decimal.NewFromInt(14000),
				AnnualSavings: decimal.NewFromInt(500),
				PaybackYears:  decimal.NewFromInt(28),
				HasPayback:    true,
			},
			{
				ScenarioName:  "efficient",
				NetCost:       decimal.NewFromInt(18000),
				AnnualSavings: decimal.NewFromInt(1200),
				PaybackYears:  decimal.NewFromInt(15),
				HasPayback:    true,
			},
		},
	}

	recommendations := GenerateRecommendations(compSet)

	want := []string{
		"Lowest Net Cost: cheap costs $6000 less up front than the base scenario",
		"Highest Savings: efficient saves $700 more per year than the base scenario",
		"Shortest Payback: efficient pays back in 15.0 years (base: 40.0 years)",
	}
	if len(recommendations) != len(want) {
		t.Fatalf("Expected %d recommendations, got %d: %v", len(want), len(recommendations), recommendations)
	}
	for i := range want {
		if recommendations[i] != want[i] {
			t.Errorf("Recommendation %d:\n got %s\nwant %s", i, recommendations[i], want[i])
		}
	}
}

func TestGenerateRecommendations_BaseNeverPaysBack(t *testing.T) {
	compSet := &ComparisonSet{
		BaseResult: &ComparisonResult{ScenarioName: "base", NetCost: decimal.NewFromInt(20000)},
		AlternativeResults: []ComparisonResult{
			{
				ScenarioName:  "alt",
				NetCost:       decimal.NewFromInt(20000),
				AnnualSavings: decimal.NewFromInt(100),
				PaybackYears:  decimal.NewFromInt(200),
				HasPayback:    true,
			},
		},
	}

	recommendations := GenerateRecommendations(compSet)

	found := false
	for _, rec := range recommendations {
		if contains(rec, "Lowest Net Cost") {
			t.Errorf("Equal net cost should not be recommended: %s", rec)
		}
		if rec == "Shortest Payback: alt pays back in 200.0 years; the base scenario never does" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected payback recommendation, got %v", recommendations)
	}
}

func TestGenerateRecommendations_EmptyAlternatives(t *testing.T) {
	compSet := &ComparisonSet{
		BaseResult:         &ComparisonResult{ScenarioName: "base"},
		AlternativeResults: []ComparisonResult{},
	}

	if recommendations := GenerateRecommendations(compSet); len(recommendations) != 0 {
		t.Errorf("Expected no recommendations, got %v", recommendations)
	}
}

func TestGenerateRecommendations_NoBetterThanBase(t *testing.T) {
	compSet := &ComparisonSet{
		BaseResult: &ComparisonResult{
			ScenarioName:  "base",
			NetCost:       decimal.NewFromInt(10000),
			AnnualSavings: decimal.NewFromInt(1000),
			PaybackYears:  decimal.NewFromInt(10),
			HasPayback:    true,
		},
		AlternativeResults: []ComparisonResult{
			{
				ScenarioName:  "worse",
				NetCost:       decimal.NewFromInt(12000),
				AnnualSavings: decimal.NewFromInt(800),
				PaybackYears:  decimal.NewFromInt(15),
				HasPayback:    true,
			},
		},
	}

	if recommendations := GenerateRecommendations(compSet); len(recommendations) != 0 {
		t.Errorf("Expected no recommendations, got %v", recommendations)
	}
}

func TestCompareEngine_Compare(t *testing.T) {
	engine := NewCompareEngine(nil)

	compSet, err := engine.Compare(context.Background(), testScenarioFile(), CompareOptions{
		BaseScenarioName: "house",
		Templates:        []string{"insulate", "income_bonus"},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	base := compSet.BaseResult
	if base.Description != "Default single-family retrofit" {
		t.Errorf("Expected base description, got %q", base.Description)
	}
	if !base.NetCost.Equal(decimal.NewFromInt(22250)) || !base.AnnualSavings.Equal(decimal.NewFromInt(495)) {
		t.Errorf("Unexpected base metrics: net %s savings %s", base.NetCost, base.AnnualSavings)
	}

	if len(compSet.AlternativeResults) != 2 {
		t.Fatalf("Expected 2 alternatives, got %d", len(compSet.AlternativeResults))
	}

	insulate := compSet.AlternativeResults[0]
	if insulate.ScenarioName != "house_insulate" {
		t.Errorf("Expected house_insulate, got %s", insulate.ScenarioName)
	}
	if !insulate.TotalCost.Equal(decimal.NewFromInt(31860)) {
		t.Errorf("Expected total 31860, got %s", insulate.TotalCost)
	}
	if !insulate.NetCost.Equal(decimal.NewFromInt(16860)) {
		t.Errorf("Expected net 16860, got %s", insulate.NetCost)
	}
	if !insulate.AnnualSavings.Equal(decimal.NewFromInt(1077)) {
		t.Errorf("Expected savings 1077, got %s", insulate.AnnualSavings)
	}
	if insulate.NetCostPctFromBase.StringFixed(1) != "-24.2" {
		t.Errorf("Expected -24.2%%, got %s", insulate.NetCostPctFromBase)
	}

	bonus := compSet.AlternativeResults[1]
	if !bonus.SubsidyRate.Equal(decimal.NewFromFloat(0.7)) {
		t.Errorf("Expected capped rate 0.70, got %s", bonus.SubsidyRate)
	}
	if !bonus.SubsidyDiffFromBase.Equal(decimal.NewFromInt(6000)) {
		t.Errorf("Expected subsidy diff 6000, got %s", bonus.SubsidyDiffFromBase)
	}

	want := []string{
		"Lowest Net Cost: house_income_bonus costs $6000 less up front than the base scenario",
		"Highest Savings: house_insulate saves $582 more per year than the base scenario",
		"Shortest Payback: house_insulate pays back in 15.7 years (base: 44.9 years)",
	}
	if strings.Join(compSet.Recommendations, "\n") != strings.Join(want, "\n") {
		t.Errorf("Unexpected recommendations:\n%s", strings.Join(compSet.Recommendations, "\n"))
	}
}

func TestCompareEngine_Compare_Errors(t *testing.T) {
	engine := NewCompareEngine(nil)
	file := testScenarioFile()

	if _, err := engine.Compare(context.Background(), file, CompareOptions{BaseScenarioName: "castle"}); err == nil {
		t.Error("Expected error for unknown base scenario")
	}

	_, err := engine.Compare(context.Background(), file, CompareOptions{
		BaseScenarioName: "house",
		Templates:        []string{"solar_roof"},
	})
	if err == nil || !contains(err.Error(), "template solar_roof not found") {
		t.Errorf("Expected unknown template error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = engine.Compare(ctx, file, CompareOptions{
		BaseScenarioName: "house",
		Templates:        []string{"insulate"},
	})
	if err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestCompareEngine_Compare_Custom(t *testing.T) {
	engine := NewCompareEngine(nil)

	compSet, err := engine.Compare(context.Background(), testScenarioFile(), CompareOptions{
		BaseScenarioName: "house",
		Custom:           []string{"claim_income_bonus", "set_area:sqm=150"},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(compSet.AlternativeResults) != 1 {
		t.Fatalf("Expected 1 alternative, got %d", len(compSet.AlternativeResults))
	}

	custom := compSet.AlternativeResults[0]
	if custom.ScenarioName != "house_custom" {
		t.Errorf("Expected house_custom, got %s", custom.ScenarioName)
	}
	if custom.Description != "Claim the income bonus; Heated area 150 m²" {
		t.Errorf("Unexpected description %q", custom.Description)
	}
	if !custom.NetCost.Equal(decimal.NewFromInt(16250)) {
		t.Errorf("Expected net 16250, got %s", custom.NetCost)
	}

	_, err = engine.Compare(context.Background(), testScenarioFile(), CompareOptions{
		BaseScenarioName: "house",
		Custom:           []string{"paint_roof"},
	})
	if err == nil || !contains(err.Error(), "unknown transform: paint_roof") {
		t.Errorf("Expected unknown transform error, got %v", err)
	}
}

func TestCompareEngine_CompareScenarios(t *testing.T) {
	engine := NewCompareEngine(nil)

	compSet, err := engine.CompareScenarios(context.Background(), testScenarioFile(), "house", []string{"apartments"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(compSet.AlternativeResults) != 1 {
		t.Fatalf("Expected 1 alternative, got %d", len(compSet.AlternativeResults))
	}
	alt := compSet.AlternativeResults[0]
	if alt.ScenarioName != "apartments" || alt.PumpType != "ground_water" {
		t.Errorf("Unexpected alternative: %s (%s)", alt.ScenarioName, alt.PumpType)
	}
	if !alt.NetCostDiffFromBase.Equal(alt.NetCost.Sub(compSet.BaseResult.NetCost)) {
		t.Error("Expected net cost diff relative to base")
	}

	if _, err := engine.CompareScenarios(context.Background(), testScenarioFile(), "house", []string{"castle"}); err == nil {
		t.Error("Expected error for unknown alternative scenario")
	}
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
