package tui

import "github.com/rgehrsitz/hpgo/internal/domain"

// Scene represents different screens in the TUI
type Scene int

const (
	SceneEstimate Scene = iota
	SceneScenarios
	SceneHelp
)

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ScenarioFileLoadedMsg carries the scenarios read at startup.
type ScenarioFileLoadedMsg struct {
	Path string
	File *domain.ScenarioFile
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
