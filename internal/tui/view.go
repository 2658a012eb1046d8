package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderApp(ErrorStyle.Render(fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err)))
	}

	var content string
	switch m.currentScene {
	case SceneEstimate:
		content = m.estimateModel.View()
	case SceneScenarios:
		content = m.scenariosModel.View()
	case SceneHelp:
		content = renderHelp()
	default:
		content = "Unknown scene"
	}
	return m.renderApp(content)
}

// renderApp wraps content with the title bar and status bar.
func (m Model) renderApp(content string) string {
	contentHeight := max(m.height-4, 0)
	return AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		lipgloss.NewStyle().Height(contentHeight).Render(content),
		m.renderStatusBar(),
	))
}

func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("HPGO - Heat Pump Cost & Subsidy Estimator")
	crumb := m.currentScene.String()
	if m.scenarioPath != "" {
		crumb += " / " + m.scenarioPath
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, SubtitleStyle.Render(crumb))
}

func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("tab", "scenarios/editor"),
		formatShortcut("?", "help"),
		formatShortcut("esc", "back"),
		formatShortcut("q", "quit"),
	}
	status := strings.Join(shortcuts, " • ")

	if m.lastReport != nil {
		net := SubtitleStyle.Render(fmt.Sprintf("%s: net %s", m.lastReport.Name, FormatCurrency(m.lastReport.Breakdown.NetCost)))
		gap := m.width - lipgloss.Width(status) - lipgloss.Width(net) - 4
		status += strings.Repeat(" ", max(0, gap)) + net
	}
	return StatusBarStyle.Width(m.width).Render(status)
}

func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

func renderHelp() string {
	return BorderStyle.Render(`HPGO - Heat Pump Cost & Subsidy Estimator

GLOBAL:
  tab        Switch between editor and scenario list
  ?          Show this help
  esc        Go back
  q/Ctrl+C   Quit

EDITOR:
  ↑/↓ or k/j Move between fields
  ←/→ or h/l Change the focused field; the estimate updates immediately
  r          Reset to the loaded scenario
  D          Reset every field to its default

SCENARIOS:
  ↑/↓        Move through scenarios from the loaded file
  g/G        First/last scenario
  enter      Edit the selected scenario`)
}
