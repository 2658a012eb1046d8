package transform

import (
	"fmt"

	"github.com/rgehrsitz/hpgo/internal/domain"
)

// SetOccupants sets the number of people living in the property.
type SetOccupants struct {
	Count int
}

func (t *SetOccupants) Name() string {
	return "set_occupants"
}

func (t *SetOccupants) Description() string {
	return fmt.Sprintf("%d occupants", t.Count)
}

func (t *SetOccupants) Validate(base *domain.ScenarioInput) error {
	if err := requireBase(t.Name(), base); err != nil {
		return err
	}
	if t.Count <= 0 {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("occupant count must be positive, got %d", t.Count), nil)
	}
	return nil
}

func (t *SetOccupants) Apply(base *domain.ScenarioInput) (*domain.ScenarioInput, error) {
	modified := copyInput(base)
	modified.OccupantCount = t.Count
	return modified, nil
}

// SetUnitCount sets the number of residential units. Only multi-family
// properties turn extra units into a higher eligible-cost cap.
type SetUnitCount struct {
	Count int
}

func (t *SetUnitCount) Name() string {
	return "set_units"
}

func (t *SetUnitCount) Description() string {
	return fmt.Sprintf("%d residential units", t.Count)
}

func (t *SetUnitCount) Validate(base *domain.ScenarioInput) error {
	if err := requireBase(t.Name(), base); err != nil {
		return err
	}
	if t.Count <= 0 {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("unit count must be positive, got %d", t.Count), nil)
	}
	return nil
}

func (t *SetUnitCount) Apply(base *domain.ScenarioInput) (*domain.ScenarioInput, error) {
	modified := copyInput(base)
	modified.UnitCount = t.Count
	return modified, nil
}

// ClaimIncomeBonus sets whether the household claims the income bonus.
type ClaimIncomeBonus struct {
	Claimed bool
}

func (t *ClaimIncomeBonus) Name() string {
	return "claim_income_bonus"
}

func (t *ClaimIncomeBonus) Description() string {
	if t.Claimed {
		return "Claim the income bonus"
	}
	return "Do not claim the income bonus"
}

func (t *ClaimIncomeBonus) Validate(base *domain.ScenarioInput) error {
	return requireBase(t.Name(), base)
}

func (t *ClaimIncomeBonus) Apply(base *domain.ScenarioInput) (*domain.ScenarioInput, error) {
	modified := copyInput(base)
	modified.IncomeBonusClaimed = t.Claimed
	return modified, nil
}
