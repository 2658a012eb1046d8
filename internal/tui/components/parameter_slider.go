package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/hpgo/internal/tui/tuistyles"
)

// Field is one editable input row. ← and → call Decrement and Increment.
type Field interface {
	Key() string
	Increment() bool
	Decrement() bool
	SetFocused(bool)
	Render() string
}

// ParameterSlider edits a whole-number input in fixed steps.
type ParameterSlider struct {
	key         string
	Label       string
	Value       int
	Min         int
	Max         int
	Step        int
	Unit        string
	Width       int
	IsFocused   bool
	Description string
}

func NewParameterSlider(key, label string, value, min, max, step int) *ParameterSlider {
	p := &ParameterSlider{
		key:   key,
		Label: label,
		Min:   min,
		Max:   max,
		Step:  step,
		Width: 20,
	}
	p.SetValue(value)
	return p
}

func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

func (p *ParameterSlider) WithDescription(desc string) *ParameterSlider {
	p.Description = desc
	return p
}

func (p *ParameterSlider) Key() string { return p.key }

func (p *ParameterSlider) SetFocused(focused bool) { p.IsFocused = focused }

// Increment moves one step up and reports whether the value changed.
func (p *ParameterSlider) Increment() bool {
	if p.Value+p.Step > p.Max {
		return false
	}
	p.Value += p.Step
	return true
}

// Decrement moves one step down and reports whether the value changed.
func (p *ParameterSlider) Decrement() bool {
	if p.Value-p.Step < p.Min {
		return false
	}
	p.Value -= p.Step
	return true
}

// SetValue clamps value into [Min, Max].
func (p *ParameterSlider) SetValue(value int) {
	p.Value = max(p.Min, min(p.Max, value))
}

// Fraction is the position of Value within the range, 0 to 1.
func (p *ParameterSlider) Fraction() float64 {
	if p.Max == p.Min {
		return 0
	}
	return float64(p.Value-p.Min) / float64(p.Max-p.Min)
}

func (p *ParameterSlider) Render() string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	value := fmt.Sprintf("%d%s", p.Value, p.Unit)
	line := fmt.Sprintf("%s %s %s", labelStyle.Render(p.Label), p.renderBar(), valueStyle.Render(value))

	if p.IsFocused && p.Description != "" {
		line += "\n" + lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted).
			Italic(true).
			Render(strings.Repeat(" ", 19)+p.Description)
	}
	return line
}

func (p *ParameterSlider) renderBar() string {
	filled := int(math.Round(float64(p.Width-1) * p.Fraction()))

	thumbStyle := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < p.Width; i++ {
		switch {
		case i == filled:
			bar.WriteString(thumbStyle.Render("●"))
		case i < filled:
			bar.WriteString(thumbStyle.Render("━"))
		default:
			bar.WriteString(tuistyles.SliderTrackStyle.Render("─"))
		}
	}
	bar.WriteString("]")
	return bar.String()
}
