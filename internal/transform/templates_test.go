package transform

import (
	"strings"
	"testing"

	"github.com/rgehrsitz/hpgo/internal/domain"
)

func TestTemplateRegistry_RegisterAndGet(t *testing.T) {
	registry := NewTemplateRegistry()

	template := Template{
		Name:        "test_template",
		Description: "A test template",
		Transforms:  []ScenarioTransform{},
	}

	registry.Register(template)

	// Test exact match
	retrieved, ok := registry.Get("test_template")
	if !ok {
		t.Fatal("Expected to find template")
	}
	if retrieved.Name != template.Name {
		t.Errorf("Expected name %s, got %s", template.Name, retrieved.Name)
	}

	// Test case-insensitive
	if _, ok = registry.Get("TEST_TEMPLATE"); !ok {
		t.Fatal("Expected case-insensitive lookup to work")
	}

	// Test not found
	if _, ok = registry.Get("nonexistent"); ok {
		t.Error("Expected not to find nonexistent template")
	}
}

func TestTemplateRegistry_List(t *testing.T) {
	registry := NewTemplateRegistry()

	registry.Register(Template{Name: "template2", Description: "Second"})
	registry.Register(Template{Name: "template1", Description: "First"})

	names := registry.List()
	if len(names) != 2 {
		t.Fatalf("Expected 2 templates, got %d", len(names))
	}
	if names[0] != "template1" {
		t.Errorf("Expected sorted names, got %v", names)
	}
}

func TestCreateBuiltInTemplates(t *testing.T) {
	registry := CreateBuiltInTemplates()

	expectedTemplates := []string{
		"ground_source",
		"water_source",
		"insulate",
		"underfloor",
		"renovate",
		"income_bonus",
		"new_build",
	}

	for _, name := range expectedTemplates {
		template, ok := registry.Get(name)
		if !ok {
			t.Errorf("Expected to find template: %s", name)
			continue
		}
		if len(template.Transforms) == 0 {
			t.Errorf("Template %s has no transforms", name)
		}
		if template.Description == "" {
			t.Errorf("Template %s has no description", name)
		}

		// Every built-in template must apply cleanly to the default scenario
		base := domain.DefaultScenarioInput()
		if _, err := ApplyTemplate(&base, template); err != nil {
			t.Errorf("Template %s failed on default scenario: %v", name, err)
		}
	}
}

func TestApplyTemplate(t *testing.T) {
	base := domain.DefaultScenarioInput()

	template, ok := CreateBuiltInTemplates().Get("new_build")
	if !ok {
		t.Fatal("Expected new_build template")
	}

	result, err := ApplyTemplate(&base, template)
	if err != nil {
		t.Fatalf("Failed to apply template: %v", err)
	}

	if result.BuildingYearBand != domain.YearAfter2025 {
		t.Errorf("Expected building year after_2025, got %s", result.BuildingYearBand)
	}
	if result.InsulationQuality != domain.InsulationGood {
		t.Errorf("Expected good insulation, got %s", result.InsulationQuality)
	}
	if result.HeatingSurfaceType != domain.SurfaceUnderfloorOnly {
		t.Errorf("Expected underfloor heating, got %s", result.HeatingSurfaceType)
	}

	// Verify base scenario was not modified
	if base != domain.DefaultScenarioInput() {
		t.Error("Base scenario was modified (should be immutable)")
	}
}

func TestApplyTemplate_EmptyTransforms(t *testing.T) {
	base := domain.DefaultScenarioInput()

	template := Template{
		Name:        "empty",
		Description: "Empty template",
		Transforms:  []ScenarioTransform{},
	}

	result, err := ApplyTemplate(&base, template)
	if err != nil {
		t.Fatalf("Failed to apply empty template: %v", err)
	}

	if result == &base {
		t.Error("Expected a copy, got same reference")
	}
	if *result != base {
		t.Error("Expected an identical copy")
	}
}

func TestParseTemplateList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Single template",
			input:    "insulate",
			expected: []string{"insulate"},
		},
		{
			name:     "Multiple templates",
			input:    "insulate,ground_source,income_bonus",
			expected: []string{"insulate", "ground_source", "income_bonus"},
		},
		{
			name:     "With spaces",
			input:    "insulate, ground_source , income_bonus",
			expected: []string{"insulate", "ground_source", "income_bonus"},
		},
		{
			name:     "Empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "Only spaces",
			input:    "  ,  ,  ",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseTemplateList(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("Expected %d templates, got %d: %v", len(tt.expected), len(result), result)
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("Expected template %d to be %s, got %s", i, tt.expected[i], result[i])
				}
			}
		})
	}
}

func TestGetTemplateHelp(t *testing.T) {
	help := GetTemplateHelp(CreateBuiltInTemplates())

	for _, want := range []string{"Available Templates:", "Equipment:", "Building:", "Funding:", "Combination Strategies:", "ground_source", "renovate", "Usage:"} {
		if !strings.Contains(help, want) {
			t.Errorf("Expected help to contain %q", want)
		}
	}

	if got := GetTemplateHelp(NewTemplateRegistry()); got != "No templates registered" {
		t.Errorf("Unexpected help for empty registry: %q", got)
	}
}
