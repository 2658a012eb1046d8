package scenes

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/hpgo/internal/calculation"
	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/rgehrsitz/hpgo/internal/tui/components"
	"github.com/rgehrsitz/hpgo/internal/tui/tuimsg"
	"github.com/rgehrsitz/hpgo/internal/tui/tuistyles"
)

type ScenariosKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Select key.Binding
}

func (k ScenariosKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select}
}

func (k ScenariosKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Top, k.Bottom}, {k.Select}}
}

func DefaultScenariosKeyMap() ScenariosKeyMap {
	return ScenariosKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "first")),
		Bottom: key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "last")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit scenario")),
	}
}

// ScenariosModel lists the scenarios of a file with their estimates.
type ScenariosModel struct {
	scenarios     []domain.NamedScenario
	cards         []*components.ScenarioCard
	selectedIndex int

	keys ScenariosKeyMap
	help help.Model

	width  int
	height int
}

func NewScenariosModel() *ScenariosModel {
	return &ScenariosModel{
		keys: DefaultScenariosKeyMap(),
		help: help.New(),
	}
}

// SetScenarios estimates every scenario with engine and builds its card.
func (m *ScenariosModel) SetScenarios(engine *calculation.EstimationEngine, scenarios []domain.NamedScenario) {
	if engine == nil {
		engine = calculation.NewEstimationEngine()
	}
	m.scenarios = scenarios
	m.cards = make([]*components.ScenarioCard, len(scenarios))

	set := engine.EstimateScenarios(scenarios)
	for i, report := range set.Reports {
		m.cards[i] = components.NewScenarioCardFromReport(scenarios[i].Description, report).WithWidth(56)
	}

	if m.selectedIndex >= len(m.scenarios) {
		m.selectedIndex = 0
	}
}

func (m *ScenariosModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
}

// Len returns the number of scenarios loaded.
func (m *ScenariosModel) Len() int { return len(m.scenarios) }

// SelectedScenario returns the highlighted scenario's name.
func (m *ScenariosModel) SelectedScenario() string {
	if m.selectedIndex >= 0 && m.selectedIndex < len(m.scenarios) {
		return m.scenarios[m.selectedIndex].Name
	}
	return ""
}

func (m *ScenariosModel) Update(msg tea.Msg) (*ScenariosModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.scenarios) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.selectedIndex < len(m.scenarios)-1 {
			m.selectedIndex++
		}
	case key.Matches(keyMsg, m.keys.Top):
		m.selectedIndex = 0
	case key.Matches(keyMsg, m.keys.Bottom):
		m.selectedIndex = len(m.scenarios) - 1
	case key.Matches(keyMsg, m.keys.Select):
		s := m.scenarios[m.selectedIndex]
		return m, func() tea.Msg {
			return tuimsg.ScenarioSelectedMsg{Name: s.Name, Input: s.Input}
		}
	}
	return m, nil
}

func (m *ScenariosModel) View() string {
	title := tuistyles.TitleStyle.Render("Scenarios")
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		components.ScenarioList(m.cards, m.selectedIndex),
		"",
		m.help.View(m.keys),
	)
}
