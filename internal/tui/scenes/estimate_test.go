package scenes

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/rgehrsitz/hpgo/internal/params"
	"github.com/rgehrsitz/hpgo/internal/tui/tuimsg"
)

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func focus(t *testing.T, m *EstimateModel, field string) {
	t.Helper()
	for i := 0; i < 20 && m.Focused() != field; i++ {
		m, _ = m.Update(keyDown)
	}
	require.Equal(t, field, m.Focused())
}

func TestEstimateModel_Defaults(t *testing.T) {
	m := NewEstimateModel(nil)

	assert.Equal(t, "custom", m.Name())
	assert.Equal(t, params.KeyPumpType, m.Focused())
	assert.Equal(t, domain.DefaultScenarioInput(), m.Input())
	assert.True(t, m.Report().Breakdown.NetCost.Equal(decimal.NewFromInt(22250)))
}

func TestEstimateModel_FocusStopsAtEnds(t *testing.T) {
	m := NewEstimateModel(nil)

	m, _ = m.Update(keyUp)
	assert.Equal(t, params.KeyPumpType, m.Focused())

	for i := 0; i < 30; i++ {
		m, _ = m.Update(keyDown)
	}
	assert.Equal(t, params.KeyIncomeBonus, m.Focused())
}

func TestEstimateModel_RecomputesOnChange(t *testing.T) {
	m := NewEstimateModel(nil)
	focus(t, m, params.KeyIncomeBonus)

	m, cmd := m.Update(keyRight)
	require.NotNil(t, cmd, "A change emits the new estimate")
	msg, ok := cmd().(tuimsg.EstimateUpdatedMsg)
	require.True(t, ok)

	b := m.Report().Breakdown
	assert.True(t, m.Input().IncomeBonusClaimed)
	assert.True(t, b.SubsidyRate.Equal(decimal.NewFromFloat(0.7)))
	assert.True(t, b.NetCost.Equal(decimal.NewFromInt(16250)))
	assert.True(t, msg.Report.Breakdown.NetCost.Equal(b.NetCost))
	assert.Equal(t, "custom", msg.Report.Name)

	// Options wrap around
	m, _ = m.Update(keyRight)
	assert.False(t, m.Input().IncomeBonusClaimed)
	assert.True(t, m.Report().Breakdown.NetCost.Equal(decimal.NewFromInt(22250)))
}

func TestEstimateModel_SliderBounds(t *testing.T) {
	m := NewEstimateModel(nil)

	focus(t, m, params.KeyUnitCount)
	m, cmd := m.Update(keyLeft)
	assert.Nil(t, cmd, "Unit count is already at its minimum")
	assert.Equal(t, 1, m.Input().UnitCount)

	focus(t, m, params.KeyAreaSqm)
	m, cmd = m.Update(keyLeft)
	require.NotNil(t, cmd)
	assert.Equal(t, 140, m.Input().AreaSqm)

	m, _ = m.Update(runes("+"))
	m, _ = m.Update(runes("+"))
	assert.Equal(t, 160, m.Input().AreaSqm)
}

func TestEstimateModel_SetScenarioAndReset(t *testing.T) {
	m := NewEstimateModel(nil)

	ground := domain.PumpGroundWater
	bogus := domain.InsulationQuality("marble")
	m.SetScenario("ground", domain.PartialScenario{PumpType: &ground, InsulationQuality: &bogus})

	assert.Equal(t, "ground", m.Name())
	assert.Equal(t, domain.PumpGroundWater, m.Input().PumpType)
	assert.Equal(t, domain.InsulationAverage, m.Input().InsulationQuality)
	assert.Contains(t, m.View(), "insulation")

	m, _ = m.Update(keyRight)
	assert.Equal(t, domain.PumpWaterWater, m.Input().PumpType)

	m, cmd := m.Update(runes("r"))
	require.NotNil(t, cmd)
	assert.Equal(t, domain.PumpGroundWater, m.Input().PumpType, "Reset returns to the loaded scenario")

	m, _ = m.Update(runes("D"))
	assert.Equal(t, domain.DefaultScenarioInput(), m.Input())
}

func TestEstimateModel_IgnoresOtherMessages(t *testing.T) {
	m := NewEstimateModel(nil)
	before := m.Input()

	m, cmd := m.Update(tea.WindowSizeMsg{Width: 10, Height: 10})
	assert.Nil(t, cmd)
	m, cmd = m.Update(keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.Input())
}

func TestEstimateModel_View(t *testing.T) {
	m := NewEstimateModel(nil)
	out := m.View()

	assert.Contains(t, out, "Scenario: custom")
	assert.Contains(t, out, "Air source (air/water)")
	assert.Contains(t, out, "$22,250")
	assert.Contains(t, out, "44.9 years")
}

func TestScenariosModel(t *testing.T) {
	insulation := domain.InsulationGood
	scenarios := []domain.NamedScenario{
		{Name: "house", Description: "Default retrofit"},
		{Name: "insulated", Input: domain.PartialScenario{InsulationQuality: &insulation}},
	}

	m := NewScenariosModel()
	m.SetScenarios(nil, scenarios)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, "house", m.SelectedScenario())

	m, _ = m.Update(keyDown)
	assert.Equal(t, "insulated", m.SelectedScenario())
	m, _ = m.Update(keyDown)
	assert.Equal(t, "insulated", m.SelectedScenario())
	m, _ = m.Update(runes("g"))
	assert.Equal(t, "house", m.SelectedScenario())
	m, _ = m.Update(runes("G"))

	_, cmd := m.Update(keyEnter)
	require.NotNil(t, cmd)
	selected, ok := cmd().(tuimsg.ScenarioSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, "insulated", selected.Name)
	assert.Equal(t, &insulation, selected.Input.InsulationQuality)

	out := m.View()
	assert.Contains(t, out, "Default retrofit")
	assert.Contains(t, out, "Net cost $22,250 after $15,000 subsidy")
}

func TestScenariosModel_Empty(t *testing.T) {
	m := NewScenariosModel()
	_, cmd := m.Update(keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, "", m.SelectedScenario())
	assert.Contains(t, m.View(), "No scenarios loaded")
}
