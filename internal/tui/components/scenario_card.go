package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/rgehrsitz/hpgo/internal/tui/tuistyles"
)

// ScenarioCard summarizes one named scenario and its estimate.
type ScenarioCard struct {
	Name        string
	Description string
	Highlights  []string
	IsSelected  bool
	Width       int
}

func NewScenarioCard(name string) *ScenarioCard {
	return &ScenarioCard{Name: name, Width: 50}
}

// NewScenarioCardFromReport fills the highlights from an estimate.
func NewScenarioCardFromReport(description string, report domain.EstimateReport) *ScenarioCard {
	card := NewScenarioCard(report.Name).WithDescription(description)
	b := report.Breakdown

	card.AddHighlight(fmt.Sprintf("%s, %d m2", report.Input.PumpType.Label(), report.Input.AreaSqm))
	card.AddHighlight(fmt.Sprintf("Net cost %s after %s subsidy",
		tuistyles.FormatCurrency(b.NetCost), tuistyles.FormatCurrency(b.SubsidyAmount)))
	if years, ok := b.PaybackYears(); ok {
		card.AddHighlight(fmt.Sprintf("Saves %s/yr, payback %s years", tuistyles.FormatCurrency(b.AnnualSavings), years.StringFixed(1)))
	} else {
		card.AddHighlight("No operating savings")
	}
	return card
}

func (s *ScenarioCard) WithDescription(desc string) *ScenarioCard {
	s.Description = desc
	return s
}

func (s *ScenarioCard) AddHighlight(highlight string) *ScenarioCard {
	s.Highlights = append(s.Highlights, highlight)
	return s
}

func (s *ScenarioCard) SetSelected(selected bool) *ScenarioCard {
	s.IsSelected = selected
	return s
}

func (s *ScenarioCard) WithWidth(width int) *ScenarioCard {
	s.Width = width
	return s
}

func (s *ScenarioCard) Render() string {
	var content strings.Builder

	content.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(s.Name))
	content.WriteString("\n")

	if s.Description != "" {
		content.WriteString(tuistyles.SubtitleStyle.Render(s.Description))
		content.WriteString("\n")
	}

	for _, h := range s.Highlights {
		content.WriteString(tuistyles.MetricLabelStyle.Render("• " + h))
		content.WriteString("\n")
	}

	border := tuistyles.ColorBorder
	if s.IsSelected {
		border = tuistyles.ColorPrimary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(s.Width).
		Render(strings.TrimRight(content.String(), "\n"))
}

// ScenarioList renders cards top to bottom with the selected one highlighted.
func ScenarioList(cards []*ScenarioCard, selected int) string {
	if len(cards) == 0 {
		return tuistyles.InfoStyle.Render("No scenarios loaded")
	}

	rendered := make([]string, len(cards))
	for i, card := range cards {
		rendered[i] = card.SetSelected(i == selected).Render()
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
