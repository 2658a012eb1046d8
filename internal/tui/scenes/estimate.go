package scenes

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/hpgo/internal/calculation"
	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/rgehrsitz/hpgo/internal/params"
	"github.com/rgehrsitz/hpgo/internal/tui/components"
	"github.com/rgehrsitz/hpgo/internal/tui/tuimsg"
	"github.com/rgehrsitz/hpgo/internal/tui/tuistyles"
)

// EstimateKeyMap are the editor bindings.
type EstimateKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Decrease key.Binding
	Increase key.Binding
	Reset    key.Binding
	Defaults key.Binding
}

func (k EstimateKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Decrease, k.Increase, k.Reset}
}

func (k EstimateKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Decrease, k.Increase}, {k.Reset, k.Defaults}}
}

func DefaultEstimateKeyMap() EstimateKeyMap {
	return EstimateKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous field")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next field")),
		Decrease: key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/-", "decrease")),
		Increase: key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→/+", "increase")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset scenario")),
		Defaults: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "all defaults")),
	}
}

// EstimateModel edits one scenario and recomputes its estimate on every change.
type EstimateModel struct {
	engine *calculation.EstimationEngine

	name     string
	original domain.PartialScenario

	fields  []components.Field
	focused int

	report   domain.EstimateReport
	previous *domain.CostBreakdown

	keys EstimateKeyMap
	help help.Model

	width  int
	height int
}

// NewEstimateModel starts the editor on the default scenario. A nil engine
// uses the default tables.
func NewEstimateModel(engine *calculation.EstimationEngine) *EstimateModel {
	if engine == nil {
		engine = calculation.NewEstimationEngine()
	}
	m := &EstimateModel{
		engine: engine,
		keys:   DefaultEstimateKeyMap(),
		help:   help.New(),
	}
	m.SetScenario("custom", domain.PartialScenario{})
	return m
}

// SetScenario loads p, normalizing it first so every field has a value.
func (m *EstimateModel) SetScenario(name string, p domain.PartialScenario) {
	m.name = name
	m.original = p
	m.previous = nil

	report := m.engine.EstimateFromPartial(p)
	report.Name = name
	m.report = report
	m.buildFields(report.Input)
}

func (m *EstimateModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
}

// Report returns the current estimate.
func (m *EstimateModel) Report() domain.EstimateReport { return m.report }

// Name returns the loaded scenario's name.
func (m *EstimateModel) Name() string { return m.name }

// Focused returns the key of the focused field.
func (m *EstimateModel) Focused() string {
	if len(m.fields) == 0 {
		return ""
	}
	return m.fields[m.focused].Key()
}

func (m *EstimateModel) buildFields(in domain.ScenarioInput) {
	m.fields = []components.Field{
		components.NewOptionSelector(params.KeyPumpType, "Pump type", enumOptions(domain.AllPumpTypes()), string(in.PumpType)),
		components.NewOptionSelector(params.KeyPropertyType, "Property", enumOptions(domain.AllPropertyTypes()), string(in.PropertyType)),
		components.NewParameterSlider(params.KeyUnitCount, "Units", in.UnitCount, 1, max(20, in.UnitCount), 1).
			WithDescription("Residential units; only multi-family raises the cost cap"),
		components.NewParameterSlider(params.KeyAreaSqm, "Heated area", in.AreaSqm, 10, max(1000, in.AreaSqm), 10).
			WithUnit(" m2"),
		components.NewOptionSelector(params.KeyBuildingYear, "Built", enumOptions(domain.AllBuildingYearBands()), string(in.BuildingYearBand)),
		components.NewOptionSelector(params.KeyInsulation, "Insulation", enumOptions(domain.AllInsulationQualities()), string(in.InsulationQuality)),
		components.NewOptionSelector(params.KeyHeatingSurface, "Heating surface", enumOptions(domain.AllHeatingSurfaces()), string(in.HeatingSurfaceType)),
		components.NewOptionSelector(params.KeyCurrentFuel, "Current fuel", enumOptions(domain.AllHeatingFuels()), string(in.CurrentHeatingFuel)),
		components.NewParameterSlider(params.KeyOccupants, "Occupants", in.OccupantCount, 1, max(12, in.OccupantCount), 1),
		components.NewOptionSelector(params.KeyIncomeBonus, "Income bonus", []components.Option{
			{Token: "false", Label: "Not claimed"},
			{Token: "true", Label: "Claimed"},
		}, strconv.FormatBool(in.IncomeBonusClaimed)),
	}
	m.focused = min(m.focused, len(m.fields)-1)
	m.fields[m.focused].SetFocused(true)
}

type labeled interface {
	~string
	Label() string
}

func enumOptions[T labeled](values []T) []components.Option {
	out := make([]components.Option, len(values))
	for i, v := range values {
		out[i] = components.Option{Token: string(v), Label: v.Label()}
	}
	return out
}

// Input reads the scenario back out of the fields.
func (m *EstimateModel) Input() domain.ScenarioInput {
	values := url.Values{}
	for _, f := range m.fields {
		switch f := f.(type) {
		case *components.OptionSelector:
			values[f.Key()] = []string{f.Selected()}
		case *components.ParameterSlider:
			values[f.Key()] = []string{strconv.Itoa(f.Value)}
		}
	}
	in, _ := calculation.Normalize(params.Decode(values))
	return in
}

func (m *EstimateModel) recompute() tea.Cmd {
	prev := m.report.Breakdown
	m.previous = &prev

	report := m.engine.Estimate(m.Input())
	report.Name = m.name
	m.report = report
	return m.updated()
}

func (m *EstimateModel) updated() tea.Cmd {
	report := m.report
	return func() tea.Msg {
		return tuimsg.EstimateUpdatedMsg{Report: report}
	}
}

func (m *EstimateModel) Update(msg tea.Msg) (*EstimateModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.fields) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(keyMsg, m.keys.Decrease):
		if m.fields[m.focused].Decrement() {
			return m, m.recompute()
		}
	case key.Matches(keyMsg, m.keys.Increase):
		if m.fields[m.focused].Increment() {
			return m, m.recompute()
		}
	case key.Matches(keyMsg, m.keys.Reset):
		m.SetScenario(m.name, m.original)
		return m, m.updated()
	case key.Matches(keyMsg, m.keys.Defaults):
		m.SetScenario(m.name, domain.PartialScenario{})
		return m, m.updated()
	}
	return m, nil
}

func (m *EstimateModel) moveFocus(delta int) {
	next := m.focused + delta
	if next < 0 || next >= len(m.fields) {
		return
	}
	m.fields[m.focused].SetFocused(false)
	m.focused = next
	m.fields[m.focused].SetFocused(true)
}

func (m *EstimateModel) View() string {
	var left strings.Builder
	left.WriteString(tuistyles.TitleStyle.Render("Scenario: " + m.name))
	left.WriteString("\n\n")
	for _, f := range m.fields {
		left.WriteString(f.Render())
		left.WriteString("\n")
	}
	if notes := m.defaultNotes(); notes != "" {
		left.WriteString("\n")
		left.WriteString(notes)
	}

	right := m.renderResults()

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		tuistyles.BorderStyle.Render(strings.TrimRight(left.String(), "\n")),
		"  ",
		right,
	)
	return lipgloss.JoinVertical(lipgloss.Left, body, "", m.help.View(m.keys))
}

func (m *EstimateModel) renderResults() string {
	b := m.report.Breakdown

	var prevTotal, prevSubsidy, prevNet, prevSavings *decimal.Decimal
	if m.previous != nil {
		prevTotal, prevSubsidy = &m.previous.TotalCost, &m.previous.SubsidyAmount
		prevNet, prevSavings = &m.previous.NetCost, &m.previous.AnnualSavings
	}

	cards := []*components.MetricCard{
		components.NewCurrencyCard("Total cost", b.TotalCost, prevTotal, true),
		components.NewCurrencyCard("Subsidy", b.SubsidyAmount, prevSubsidy, false),
		components.NewCurrencyCard("Net cost", b.NetCost, prevNet, true),
		components.NewCurrencyCard("Savings / year", b.AnnualSavings, prevSavings, false),
	}

	payback := "never"
	if years, ok := b.PaybackYears(); ok {
		payback = years.StringFixed(1) + " years"
	}

	rateBar := components.NewRateBar(m.report.Subsidy, b.SubsidyRate, m.engine.Funding.MaxCombinedRate)

	lines := []string{
		components.MetricGrid(cards, 2),
		"",
		tuistyles.MetricLabelStyle.Render("Subsidy rate"),
		rateBar.Render(),
		rateBar.Legend(),
		"",
		components.NewMetricCard("Eligible costs", fmt.Sprintf("%s of %s cap",
			tuistyles.FormatCurrency(b.EligibleCosts), tuistyles.FormatCurrency(b.EligibleCostCap))).RenderCompact(),
		components.NewMetricCard("Performance factor", b.PerformanceFactor.StringFixed(1)).RenderCompact(),
		components.NewMetricCard("Payback", payback).RenderCompact(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// defaultNotes lists values from the loaded scenario that were replaced.
func (m *EstimateModel) defaultNotes() string {
	subs := m.report.Normalization.Substituted()
	if len(subs) == 0 {
		return ""
	}
	lines := make([]string, 0, len(subs))
	for _, d := range subs {
		lines = append(lines, fmt.Sprintf("%s: %q replaced by %s (%s)", d.Field, d.Raw, d.Value, d.Reason))
	}
	return tuistyles.InfoStyle.Render(strings.Join(lines, "\n"))
}
