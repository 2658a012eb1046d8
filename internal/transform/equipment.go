package transform

import (
	"fmt"

	"github.com/rgehrsitz/hpgo/internal/domain"
)

// SetPumpType swaps the heat-pump technology.
type SetPumpType struct {
	PumpType domain.PumpType
}

func (t *SetPumpType) Name() string {
	return "set_pump"
}

func (t *SetPumpType) Description() string {
	return fmt.Sprintf("Use a %s heat pump", t.PumpType.Label())
}

func (t *SetPumpType) Validate(base *domain.ScenarioInput) error {
	if err := requireBase(t.Name(), base); err != nil {
		return err
	}
	if !t.PumpType.Valid() {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("unknown pump type %q", t.PumpType), nil)
	}
	return nil
}

func (t *SetPumpType) Apply(base *domain.ScenarioInput) (*domain.ScenarioInput, error) {
	modified := copyInput(base)
	modified.PumpType = t.PumpType
	return modified, nil
}

// SetHeatingSurface changes how heat is delivered to the rooms.
type SetHeatingSurface struct {
	Surface domain.HeatingSurface
}

func (t *SetHeatingSurface) Name() string {
	return "set_surface"
}

func (t *SetHeatingSurface) Description() string {
	return fmt.Sprintf("Heat through %s", t.Surface.Label())
}

func (t *SetHeatingSurface) Validate(base *domain.ScenarioInput) error {
	if err := requireBase(t.Name(), base); err != nil {
		return err
	}
	if !t.Surface.Valid() {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("unknown heating surface %q", t.Surface), nil)
	}
	return nil
}

func (t *SetHeatingSurface) Apply(base *domain.ScenarioInput) (*domain.ScenarioInput, error) {
	modified := copyInput(base)
	modified.HeatingSurfaceType = t.Surface
	return modified, nil
}

// SetCurrentFuel changes the fuel the heat pump replaces.
type SetCurrentFuel struct {
	Fuel domain.HeatingFuel
}

func (t *SetCurrentFuel) Name() string {
	return "set_fuel"
}

func (t *SetCurrentFuel) Description() string {
	return fmt.Sprintf("Replace %s heating", t.Fuel.Label())
}

func (t *SetCurrentFuel) Validate(base *domain.ScenarioInput) error {
	if err := requireBase(t.Name(), base); err != nil {
		return err
	}
	if !t.Fuel.Valid() {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("unknown heating fuel %q", t.Fuel), nil)
	}
	return nil
}

func (t *SetCurrentFuel) Apply(base *domain.ScenarioInput) (*domain.ScenarioInput, error) {
	modified := copyInput(base)
	modified.CurrentHeatingFuel = t.Fuel
	return modified, nil
}
