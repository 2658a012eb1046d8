package calculation

import (
	"fmt"

	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/shopspring/decimal"
)

// SensitivityAnalyzer performs parameter sweep analysis
type SensitivityAnalyzer struct {
	engine *EstimationEngine
}

// NewSensitivityAnalyzer creates a new sensitivity analyzer; a nil engine
// uses the default tables.
func NewSensitivityAnalyzer(engine *EstimationEngine) *SensitivityAnalyzer {
	if engine == nil {
		engine = NewEstimationEngine()
	}
	return &SensitivityAnalyzer{engine: engine}
}

// AnalyzeSingleParameter sweeps one numeric field of base across the
// parameter's range and estimates every point.
func (sa *SensitivityAnalyzer) AnalyzeSingleParameter(
	base domain.ScenarioInput,
	parameter domain.SensitivityParameter,
	baseScenarioName string,
) (*domain.ParameterSensitivityAnalysis, error) {
	if err := validateParameter(parameter); err != nil {
		return nil, err
	}

	baseReport := sa.engine.Estimate(base)
	values := sa.generateParameterValues(parameter)

	points := make([]domain.SensitivityPoint, 0, len(values))
	for _, value := range values {
		modified, err := ApplyParameter(base, parameter.Name, int(value.IntPart()))
		if err != nil {
			return nil, fmt.Errorf("failed to apply %s=%s: %w", parameter.Name, value.String(), err)
		}
		report := sa.engine.Estimate(modified)
		b := report.Breakdown
		points = append(points, domain.SensitivityPoint{
			Value:             value,
			TotalCost:         b.TotalCost,
			SubsidyAmount:     b.SubsidyAmount,
			NetCost:           b.NetCost,
			AnnualSavings:     b.AnnualSavings,
			PerformanceFactor: b.PerformanceFactor,
			CostCapBinding:    report.Subsidy.CostCapBinding,
			NetCostChange:     b.NetCost.Sub(baseReport.Breakdown.NetCost),
		})
	}

	return &domain.ParameterSensitivityAnalysis{
		BaseScenarioName: baseScenarioName,
		Parameter:        parameter,
		Points:           points,
		Summary:          sa.calculateSensitivitySummary(base, parameter, points),
	}, nil
}

// ApplyParameter returns a copy of in with the named numeric field set to value.
func ApplyParameter(in domain.ScenarioInput, name string, value int) (domain.ScenarioInput, error) {
	if value <= 0 {
		return in, fmt.Errorf("%s must be positive, got %d", name, value)
	}
	out := in
	switch name {
	case "area_sqm":
		out.AreaSqm = value
	case "occupants":
		out.OccupantCount = value
	case "unit_count":
		out.UnitCount = value
	default:
		return in, fmt.Errorf("unknown sensitivity parameter: %s", name)
	}
	return out, nil
}

// LookupSensitivityParameter returns the predefined parameter with the given name.
func LookupSensitivityParameter(name string) (domain.SensitivityParameter, bool) {
	for _, p := range domain.GetCommonSensitivityParameters() {
		if p.Name == name {
			return p, true
		}
	}
	return domain.SensitivityParameter{}, false
}

func validateParameter(p domain.SensitivityParameter) error {
	if p.Steps < 2 {
		return fmt.Errorf("steps must be at least 2, got %d", p.Steps)
	}
	if p.MinValue.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("minimum value for %s must be at least 1", p.Name)
	}
	if p.MaxValue.LessThan(p.MinValue) {
		return fmt.Errorf("maximum value %s is below minimum %s", p.MaxValue.String(), p.MinValue.String())
	}
	if _, err := ApplyParameter(domain.DefaultScenarioInput(), p.Name, 1); err != nil {
		return err
	}
	return nil
}

// generateParameterValues spreads whole-number values evenly across the
// range; duplicates produced by rounding are dropped.
func (sa *SensitivityAnalyzer) generateParameterValues(parameter domain.SensitivityParameter) []decimal.Decimal {
	values := make([]decimal.Decimal, 0, parameter.Steps)
	span := parameter.MaxValue.Sub(parameter.MinValue)
	divisor := decimal.NewFromInt(int64(parameter.Steps - 1))

	for i := 0; i < parameter.Steps; i++ {
		v := parameter.MinValue.Add(span.Mul(decimal.NewFromInt(int64(i))).Div(divisor)).Round(0)
		if len(values) > 0 && values[len(values)-1].Equal(v) {
			continue
		}
		values = append(values, v)
	}
	return values
}

func (sa *SensitivityAnalyzer) calculateSensitivitySummary(
	base domain.ScenarioInput,
	parameter domain.SensitivityParameter,
	points []domain.SensitivityPoint,
) domain.SensitivitySummary {
	summary := domain.SensitivitySummary{Recommendations: []string{}}
	if len(points) == 0 {
		return summary
	}

	summary.MinNetCost = points[0].NetCost
	summary.MaxNetCost = points[0].NetCost
	minSavings, maxSavings := points[0].AnnualSavings, points[0].AnnualSavings
	for _, p := range points {
		summary.MinNetCost = decimal.Min(summary.MinNetCost, p.NetCost)
		summary.MaxNetCost = decimal.Max(summary.MaxNetCost, p.NetCost)
		minSavings = decimal.Min(minSavings, p.AnnualSavings)
		maxSavings = decimal.Max(maxSavings, p.AnnualSavings)
		if p.CostCapBinding && summary.CapBindsAt == nil {
			v := p.Value
			summary.CapBindsAt = &v
		}
	}
	summary.NetCostSpread = summary.MaxNetCost.Sub(summary.MinNetCost)
	summary.SavingsSpread = maxSavings.Sub(minSavings)

	summary.Recommendations = append(summary.Recommendations, fmt.Sprintf(
		"Net cost ranges from %s to %s across %s %s..%s",
		summary.MinNetCost.StringFixed(0), summary.MaxNetCost.StringFixed(0),
		parameter.Name, points[0].Value.String(), points[len(points)-1].Value.String()))

	if summary.CapBindsAt != nil {
		summary.Recommendations = append(summary.Recommendations, fmt.Sprintf(
			"Eligible-cost cap binds from %s=%s; cost above the cap receives no subsidy",
			parameter.Name, summary.CapBindsAt.String()))
	}
	if parameter.Name == "unit_count" && base.PropertyType != domain.PropertyMultiFamily {
		summary.Recommendations = append(summary.Recommendations,
			"Unit count only raises the eligible-cost cap for multi-family properties")
	}
	return summary
}
