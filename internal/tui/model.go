package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/hpgo/internal/calculation"
	"github.com/rgehrsitz/hpgo/internal/config"
	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/rgehrsitz/hpgo/internal/tui/scenes"
)

// Model represents the entire application state
type Model struct {
	currentScene  Scene
	previousScene Scene

	width  int
	height int

	// scenarioPath is optional; without it the editor starts on defaults.
	scenarioPath string
	initial      domain.PartialScenario
	engine       *calculation.EstimationEngine

	estimateModel  *scenes.EstimateModel
	scenariosModel *scenes.ScenariosModel

	lastReport *domain.EstimateReport
	err        error
}

// NewModel creates the application model. initial seeds the editor, as a
// deep link or saved preferences would.
func NewModel(scenarioPath string, initial domain.PartialScenario) Model {
	engine := calculation.NewEstimationEngine()
	m := Model{
		currentScene:   SceneEstimate,
		scenarioPath:   scenarioPath,
		initial:        initial,
		engine:         engine,
		estimateModel:  scenes.NewEstimateModel(engine),
		scenariosModel: scenes.NewScenariosModel(),
		width:          100,
		height:         30,
	}
	m.estimateModel.SetScenario("custom", initial)
	return m
}

// Init loads the scenario file, if any.
func (m Model) Init() tea.Cmd {
	if m.scenarioPath == "" {
		return nil
	}
	return loadScenarioFileCmd(m.scenarioPath)
}

func loadScenarioFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		file, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ScenarioFileLoadedMsg{Path: path, File: file}
	}
}

func (s Scene) String() string {
	switch s {
	case SceneEstimate:
		return "Estimate"
	case SceneScenarios:
		return "Scenarios"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
