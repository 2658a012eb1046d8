// Package tuimsg holds messages passed between scenes and the root model.
package tuimsg

import "github.com/rgehrsitz/hpgo/internal/domain"

// ScenarioSelectedMsg asks the root model to load a scenario into the editor.
type ScenarioSelectedMsg struct {
	Name  string
	Input domain.PartialScenario
}

// EstimateUpdatedMsg reports a recomputed estimate.
type EstimateUpdatedMsg struct {
	Report domain.EstimateReport
}

// ErrorMsg displays an error to the user.
type ErrorMsg struct {
	Err error
}
