package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/hpgo/internal/domain"
)

// TemplateRegistry manages built-in scenario templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []ScenarioTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with common upgrade paths
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	// Equipment templates
	registry.Register(Template{
		Name:        "ground_source",
		Description: "Switch to a ground-source (brine/water) heat pump",
		Transforms: []ScenarioTransform{
			&SetPumpType{PumpType: domain.PumpGroundWater},
		},
	})

	registry.Register(Template{
		Name:        "water_source",
		Description: "Switch to a water/water heat pump",
		Transforms: []ScenarioTransform{
			&SetPumpType{PumpType: domain.PumpWaterWater},
		},
	})

	registry.Register(Template{
		Name:        "underfloor",
		Description: "Replace radiators with underfloor heating",
		Transforms: []ScenarioTransform{
			&SetHeatingSurface{Surface: domain.SurfaceUnderfloorOnly},
		},
	})

	// Building templates
	registry.Register(Template{
		Name:        "insulate",
		Description: "Upgrade insulation to good",
		Transforms: []ScenarioTransform{
			&SetInsulation{Quality: domain.InsulationGood},
		},
	})

	registry.Register(Template{
		Name:        "new_build",
		Description: "Price the same home as a new build with underfloor heating",
		Transforms: []ScenarioTransform{
			&SetBuildingYear{Band: domain.YearAfter2025},
			&SetInsulation{Quality: domain.InsulationGood},
			&SetHeatingSurface{Surface: domain.SurfaceUnderfloorOnly},
		},
	})

	// Funding templates
	registry.Register(Template{
		Name:        "income_bonus",
		Description: "Claim the income bonus",
		Transforms: []ScenarioTransform{
			&ClaimIncomeBonus{Claimed: true},
		},
	})

	// Combination templates
	registry.Register(Template{
		Name:        "renovate",
		Description: "Deep renovation: good insulation + underfloor heating",
		Transforms: []ScenarioTransform{
			&SetInsulation{Quality: domain.InsulationGood},
			&SetHeatingSurface{Surface: domain.SurfaceUnderfloorOnly},
		},
	})

	registry.Register(Template{
		Name:        "renovate_ground_source",
		Description: "Deep renovation + ground-source heat pump",
		Transforms: []ScenarioTransform{
			&SetInsulation{Quality: domain.InsulationGood},
			&SetHeatingSurface{Surface: domain.SurfaceUnderfloorOnly},
			&SetPumpType{PumpType: domain.PumpGroundWater},
		},
	})

	return registry
}

// ApplyTemplate applies a template to a base scenario
func ApplyTemplate(base *domain.ScenarioInput, template Template) (*domain.ScenarioInput, error) {
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")

	categories := map[string][]Template{}
	order := []string{"Equipment", "Building", "Funding", "Combination Strategies"}

	for _, name := range registry.List() {
		template := registry.templates[name]
		switch {
		case strings.HasPrefix(template.Name, "renovate"):
			categories["Combination Strategies"] = append(categories["Combination Strategies"], template)
		case template.Name == "insulate" || template.Name == "new_build":
			categories["Building"] = append(categories["Building"], template)
		case template.Name == "income_bonus":
			categories["Funding"] = append(categories["Funding"], template)
		default:
			categories["Equipment"] = append(categories["Equipment"], template)
		}
	}

	for _, category := range order {
		templates := categories[category]
		if len(templates) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("%s:\n", category))
		for _, t := range templates {
			sb.WriteString(fmt.Sprintf("  %-30s %s\n", t.Name, t.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Usage:\n")
	sb.WriteString("  hpgo compare scenarios.yaml --base house --with insulate,ground_source\n")
	sb.WriteString("  hpgo compare scenarios.yaml --base house --with renovate,income_bonus\n")

	return sb.String()
}
