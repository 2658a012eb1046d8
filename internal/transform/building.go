package transform

import (
	"fmt"

	"github.com/rgehrsitz/hpgo/internal/domain"
)

// SetInsulation changes the insulation quality, e.g. after a retrofit.
type SetInsulation struct {
	Quality domain.InsulationQuality
}

func (t *SetInsulation) Name() string {
	return "set_insulation"
}

func (t *SetInsulation) Description() string {
	return fmt.Sprintf("Insulation %s", t.Quality.Label())
}

func (t *SetInsulation) Validate(base *domain.ScenarioInput) error {
	if err := requireBase(t.Name(), base); err != nil {
		return err
	}
	if !t.Quality.Valid() {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("unknown insulation quality %q", t.Quality), nil)
	}
	return nil
}

func (t *SetInsulation) Apply(base *domain.ScenarioInput) (*domain.ScenarioInput, error) {
	modified := copyInput(base)
	modified.InsulationQuality = t.Quality
	return modified, nil
}

// SetBuildingYear moves the building into another construction-year band.
type SetBuildingYear struct {
	Band domain.BuildingYearBand
}

func (t *SetBuildingYear) Name() string {
	return "set_building_year"
}

func (t *SetBuildingYear) Description() string {
	return fmt.Sprintf("Building built %s", t.Band.Label())
}

func (t *SetBuildingYear) Validate(base *domain.ScenarioInput) error {
	if err := requireBase(t.Name(), base); err != nil {
		return err
	}
	if !t.Band.Valid() {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("unknown building year band %q", t.Band), nil)
	}
	return nil
}

func (t *SetBuildingYear) Apply(base *domain.ScenarioInput) (*domain.ScenarioInput, error) {
	modified := copyInput(base)
	modified.BuildingYearBand = t.Band
	return modified, nil
}

// SetPropertyType changes the property category.
type SetPropertyType struct {
	PropertyType domain.PropertyType
}

func (t *SetPropertyType) Name() string {
	return "set_property"
}

func (t *SetPropertyType) Description() string {
	return fmt.Sprintf("Property is a %s", t.PropertyType.Label())
}

func (t *SetPropertyType) Validate(base *domain.ScenarioInput) error {
	if err := requireBase(t.Name(), base); err != nil {
		return err
	}
	if !t.PropertyType.Valid() {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("unknown property type %q", t.PropertyType), nil)
	}
	return nil
}

func (t *SetPropertyType) Apply(base *domain.ScenarioInput) (*domain.ScenarioInput, error) {
	modified := copyInput(base)
	modified.PropertyType = t.PropertyType
	return modified, nil
}

// SetArea sets the heated floor area in square meters.
type SetArea struct {
	AreaSqm int
}

func (t *SetArea) Name() string {
	return "set_area"
}

func (t *SetArea) Description() string {
	return fmt.Sprintf("Heated area %d m²", t.AreaSqm)
}

func (t *SetArea) Validate(base *domain.ScenarioInput) error {
	if err := requireBase(t.Name(), base); err != nil {
		return err
	}
	if t.AreaSqm <= 0 {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("area must be positive, got %d", t.AreaSqm), nil)
	}
	return nil
}

func (t *SetArea) Apply(base *domain.ScenarioInput) (*domain.ScenarioInput, error) {
	modified := copyInput(base)
	modified.AreaSqm = t.AreaSqm
	return modified, nil
}

// ScaleArea grows or shrinks the heated area by a percentage, e.g. an
// extension (+20) or closing off unused rooms (-15). The result is rounded
// to the nearest square meter and never drops below one.
type ScaleArea struct {
	Percent int
}

func (t *ScaleArea) Name() string {
	return "scale_area"
}

func (t *ScaleArea) Description() string {
	return fmt.Sprintf("Change heated area by %+d%%", t.Percent)
}

func (t *ScaleArea) Validate(base *domain.ScenarioInput) error {
	if err := requireBase(t.Name(), base); err != nil {
		return err
	}
	if t.Percent <= -100 {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("percent must be above -100, got %d", t.Percent), nil)
	}
	return nil
}

func (t *ScaleArea) Apply(base *domain.ScenarioInput) (*domain.ScenarioInput, error) {
	modified := copyInput(base)
	scaled := (base.AreaSqm*(100+t.Percent) + 50) / 100
	if scaled < 1 {
		scaled = 1
	}
	modified.AreaSqm = scaled
	return modified, nil
}
