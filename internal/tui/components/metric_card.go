package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/hpgo/internal/tui/tuistyles"
)

// MetricCard displays one headline number of an estimate, optionally with
// its change against the previous estimate.
type MetricCard struct {
	Label       string
	Value       string
	Delta       *Delta
	Description string
	Width       int
}

// Delta is a change since the last recompute. Favorable controls color,
// Up controls the arrow; a cost going down is favorable.
type Delta struct {
	Up        bool
	Favorable bool
	Change    string
}

func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Width: 24,
	}
}

// NewCurrencyCard builds a card for a currency amount and attaches a delta
// when previous differs. lowerIsBetter marks costs.
func NewCurrencyCard(label string, current decimal.Decimal, previous *decimal.Decimal, lowerIsBetter bool) *MetricCard {
	card := NewMetricCard(label, tuistyles.FormatCurrency(current))
	if previous == nil {
		return card
	}
	diff := current.Sub(*previous).Round(0)
	if diff.IsZero() {
		return card
	}
	up := diff.IsPositive()
	card.Delta = &Delta{
		Up:        up,
		Favorable: up != lowerIsBetter,
		Change:    tuistyles.FormatCurrency(diff.Abs()),
	}
	return card
}

func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

func (m *MetricCard) Render() string {
	content := tuistyles.MetricLabelStyle.Render(m.Label) + "\n" + tuistyles.MetricValueStyle.Render(m.Value)

	if m.Delta != nil {
		content += "\n" + tuistyles.MetricTrendStyle(m.Delta.Favorable).
			Render(fmt.Sprintf("%s %s", tuistyles.TrendIndicator(m.Delta.Up), m.Delta.Change))
	}
	if m.Description != "" {
		content += "\n" + tuistyles.SubtitleStyle.Render(m.Description)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width).
		Render(content)
}

// RenderCompact renders the card on one line without a border.
func (m *MetricCard) RenderCompact() string {
	out := tuistyles.MetricLabelStyle.Render(m.Label+":") + " " + tuistyles.MetricValueStyle.Render(m.Value)
	if m.Delta != nil {
		out += " " + tuistyles.MetricTrendStyle(m.Delta.Favorable).
			Render(fmt.Sprintf("%s %s", tuistyles.TrendIndicator(m.Delta.Up), m.Delta.Change))
	}
	return out
}

// MetricGrid lays cards out in rows of columns.
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 || columns <= 0 {
		return ""
	}

	var rows, current []string
	for i, card := range cards {
		current = append(current, card.Render())
		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
