package components

import (
	"fmt"

	"github.com/rgehrsitz/hpgo/internal/tui/tuistyles"
)

// Option is one choice of an OptionSelector: the token sent to the engine
// and the label shown to the user.
type Option struct {
	Token string
	Label string
}

// OptionSelector cycles through a closed set of choices. Unlike a slider it
// wraps around at either end.
type OptionSelector struct {
	key       string
	Label     string
	Options   []Option
	Index     int
	IsFocused bool
}

func NewOptionSelector(key, label string, options []Option, selected string) *OptionSelector {
	s := &OptionSelector{key: key, Label: label, Options: options}
	s.Select(selected)
	return s
}

func (s *OptionSelector) Key() string { return s.key }

func (s *OptionSelector) SetFocused(focused bool) { s.IsFocused = focused }

// Select moves to the option with token and reports whether it exists.
func (s *OptionSelector) Select(token string) bool {
	for i, o := range s.Options {
		if o.Token == token {
			s.Index = i
			return true
		}
	}
	return false
}

// Selected returns the current token.
func (s *OptionSelector) Selected() string {
	if len(s.Options) == 0 {
		return ""
	}
	return s.Options[s.Index].Token
}

func (s *OptionSelector) Increment() bool {
	if len(s.Options) < 2 {
		return false
	}
	s.Index = (s.Index + 1) % len(s.Options)
	return true
}

func (s *OptionSelector) Decrement() bool {
	if len(s.Options) < 2 {
		return false
	}
	s.Index = (s.Index - 1 + len(s.Options)) % len(s.Options)
	return true
}

func (s *OptionSelector) Render() string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if s.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	label := ""
	if len(s.Options) > 0 {
		label = s.Options[s.Index].Label
	}
	return fmt.Sprintf("%s ‹ %s › %s", labelStyle.Render(s.Label), valueStyle.Render(label),
		tuistyles.SubtitleStyle.Render(fmt.Sprintf("%d/%d", s.Index+1, len(s.Options))))
}
