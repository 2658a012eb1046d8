package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/hpgo/internal/calculation"
	"github.com/rgehrsitz/hpgo/internal/tui/scenes"
	"github.com/rgehrsitz/hpgo/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.estimateModel.SetSize(msg.Width, msg.Height)
		m.scenariosModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case tuimsg.ErrorMsg:
		m.err = msg.Err
		return m, nil

	case ScenarioFileLoadedMsg:
		m.engine = calculation.NewEstimationEngineWithConfig(msg.File.FundingConstants())
		m.estimateModel = scenes.NewEstimateModel(m.engine)
		m.estimateModel.SetSize(m.width, m.height)
		m.scenariosModel.SetScenarios(m.engine, msg.File.Scenarios)

		name, input := "custom", m.initial
		if input.IsEmpty() && len(msg.File.Scenarios) > 0 {
			name, input = msg.File.Scenarios[0].Name, msg.File.Scenarios[0].Input
		}
		m.estimateModel.SetScenario(name, input)
		return m, nil

	case tuimsg.ScenarioSelectedMsg:
		m.estimateModel.SetScenario(msg.Name, msg.Input)
		m.previousScene = m.currentScene
		m.currentScene = SceneEstimate
		report := m.estimateModel.Report()
		m.lastReport = &report
		return m, nil

	case tuimsg.EstimateUpdatedMsg:
		report := msg.Report
		m.lastReport = &report
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes global keys before the scene sees them.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		if m.currentScene != SceneHelp {
			return m, navigate(SceneHelp)
		}

	case "esc":
		if m.currentScene != SceneEstimate {
			target := m.previousScene
			if target == m.currentScene {
				target = SceneEstimate
			}
			return m, navigate(target)
		}

	case "tab":
		if m.currentScene == SceneEstimate {
			return m, navigate(SceneScenarios)
		}
		return m, navigate(SceneEstimate)
	}

	return m.updateCurrentScene(msg)
}

func navigate(scene Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: scene}
	}
}

// updateCurrentScene delegates to the current scene's model.
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneEstimate:
		m.estimateModel, cmd = m.estimateModel.Update(msg)
	case SceneScenarios:
		m.scenariosModel, cmd = m.scenariosModel.Update(msg)
	}
	return m, cmd
}
