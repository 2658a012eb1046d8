package compare

import (
	"context"
	"fmt"
	"strings"

	"github.com/rgehrsitz/hpgo/internal/calculation"
	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/rgehrsitz/hpgo/internal/transform"
)

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.EstimationEngine
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
	Transforms        *transform.TransformRegistry
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.EstimationEngine) *CompareEngine {
	if calcEngine == nil {
		calcEngine = calculation.NewEstimationEngine()
	}
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
		Transforms:        transform.NewTransformRegistry(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseScenarioName string   // Name of the base scenario to compare against
	Templates        []string // List of template names to apply
	// Custom transform specs ("set_area:sqm=200"), applied together as one
	// extra alternative named <base>_custom
	Custom []string
}

// Compare estimates the base scenario and one alternative per template
func (ce *CompareEngine) Compare(
	ctx context.Context,
	file *domain.ScenarioFile,
	options CompareOptions,
) (*ComparisonSet, error) {

	baseScenario, ok := file.FindScenario(options.BaseScenarioName)
	if !ok {
		return nil, fmt.Errorf("base scenario %s not found in configuration", options.BaseScenarioName)
	}

	baseReport := ce.CalcEngine.EstimateFromPartial(baseScenario.Input)
	baseReport.Name = baseScenario.Name
	baseResult := ce.MetricsCalculator.CalculateMetrics(&baseReport)
	baseResult.Description = baseScenario.Description

	alternatives := []ComparisonResult{}

	for _, templateName := range options.Templates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found", templateName)
		}

		// Templates apply to the normalized base so every alternative differs
		// from it only in what the template changes
		modified, err := transform.ApplyTemplate(&baseReport.Input, template)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", templateName, err)
		}

		altReport := ce.CalcEngine.Estimate(*modified)
		altReport.Name = baseScenario.Name + "_" + templateName

		altResult := ce.MetricsCalculator.CalculateMetrics(&altReport)
		altResult.Description = template.Description
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)

		alternatives = append(alternatives, altResult)
	}

	if len(options.Custom) > 0 {
		transforms := make([]transform.ScenarioTransform, 0, len(options.Custom))
		for _, spec := range options.Custom {
			t, err := ce.Transforms.ParseTransformSpec(spec)
			if err != nil {
				return nil, err
			}
			transforms = append(transforms, t)
		}

		modified, err := transform.ApplyTransforms(&baseReport.Input, transforms)
		if err != nil {
			return nil, fmt.Errorf("failed to apply custom transforms: %w", err)
		}

		altReport := ce.CalcEngine.Estimate(*modified)
		altReport.Name = baseScenario.Name + "_custom"

		altResult := ce.MetricsCalculator.CalculateMetrics(&altReport)
		altResult.Description = describeTransforms(transforms)
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)

		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   options.BaseScenarioName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

// CompareScenarios compares explicit scenarios (not using templates)
func (ce *CompareEngine) CompareScenarios(
	ctx context.Context,
	file *domain.ScenarioFile,
	baseScenarioName string,
	alternativeScenarioNames []string,
) (*ComparisonSet, error) {

	baseScenario, ok := file.FindScenario(baseScenarioName)
	if !ok {
		return nil, fmt.Errorf("base scenario %s not found", baseScenarioName)
	}
	baseResult := ce.estimateNamed(baseScenario)

	alternatives := []ComparisonResult{}

	for _, altName := range alternativeScenarioNames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		altScenario, ok := file.FindScenario(altName)
		if !ok {
			return nil, fmt.Errorf("alternative scenario %s not found", altName)
		}

		altResult := ce.estimateNamed(altScenario)
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)

		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseScenarioName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

func (ce *CompareEngine) estimateNamed(scenario domain.NamedScenario) ComparisonResult {
	report := ce.CalcEngine.EstimateFromPartial(scenario.Input)
	report.Name = scenario.Name
	result := ce.MetricsCalculator.CalculateMetrics(&report)
	result.Description = scenario.Description
	return result
}

func describeTransforms(transforms []transform.ScenarioTransform) string {
	parts := make([]string, len(transforms))
	for i, t := range transforms {
		parts[i] = t.Description()
	}
	return strings.Join(parts, "; ")
}
