package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/rgehrsitz/hpgo/internal/tui/tuistyles"
)

// RateBar shows how the subsidy rate is assembled from its components,
// filled against the combined-rate cap.
type RateBar struct {
	Detail domain.SubsidyDetail
	Rate   decimal.Decimal
	Cap    decimal.Decimal
	Width  int
}

func NewRateBar(detail domain.SubsidyDetail, rate, maxRate decimal.Decimal) *RateBar {
	return &RateBar{Detail: detail, Rate: rate, Cap: maxRate, Width: 40}
}

type rateSegment struct {
	rate  decimal.Decimal
	color lipgloss.Color
}

// cells converts a rate into bar cells relative to the cap.
func (r *RateBar) cells(rate decimal.Decimal) int {
	if !r.Cap.IsPositive() {
		return 0
	}
	return int(rate.Div(r.Cap).Mul(decimal.NewFromInt(int64(r.Width))).Round(0).IntPart())
}

func (r *RateBar) Render() string {
	segments := []rateSegment{
		{r.Detail.BaseRate, tuistyles.ColorPrimary},
		{r.Detail.ClimateSpeedBonus, tuistyles.ColorSuccess},
		{r.Detail.EfficiencyBonus, tuistyles.ColorAccent},
		{r.Detail.IncomeBonus, tuistyles.ColorSecondary},
	}

	var bar strings.Builder
	bar.WriteString("[")
	used := 0
	for _, seg := range segments {
		n := min(r.cells(seg.rate), r.Width-used)
		if n <= 0 {
			continue
		}
		bar.WriteString(lipgloss.NewStyle().Foreground(seg.color).Render(strings.Repeat("█", n)))
		used += n
	}
	if used < r.Width {
		bar.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorBorder).Render(strings.Repeat("░", r.Width-used)))
	}
	bar.WriteString("]")

	status := fmt.Sprintf(" %s of %s", r.Rate.Shift(2).StringFixed(0)+"%", r.Cap.Shift(2).StringFixed(0)+"%")
	if r.Detail.RateCapped {
		status += tuistyles.MetricNegativeStyle.Render(fmt.Sprintf(" (capped from %s%%)", r.Detail.UncappedRate.Shift(2).StringFixed(0)))
	}
	return bar.String() + tuistyles.MetricValueStyle.Render(status)
}

// Legend names the bar segments with their rates.
func (r *RateBar) Legend() string {
	items := []struct {
		label string
		rate  decimal.Decimal
		color lipgloss.Color
	}{
		{"base", r.Detail.BaseRate, tuistyles.ColorPrimary},
		{"climate", r.Detail.ClimateSpeedBonus, tuistyles.ColorSuccess},
		{"efficiency", r.Detail.EfficiencyBonus, tuistyles.ColorAccent},
		{"income", r.Detail.IncomeBonus, tuistyles.ColorSecondary},
	}

	parts := make([]string, 0, len(items))
	for _, it := range items {
		mark := lipgloss.NewStyle().Foreground(it.color).Render("█")
		parts = append(parts, fmt.Sprintf("%s %s %s%%", mark, it.label, it.rate.Shift(2).StringFixed(0)))
	}
	return strings.Join(parts, "  ")
}
