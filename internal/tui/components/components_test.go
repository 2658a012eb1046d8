package components

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/rgehrsitz/hpgo/internal/tui/tuistyles"
)

func TestParameterSlider(t *testing.T) {
	s := NewParameterSlider("area_sqm", "Heated area", 150, 10, 1000, 10).WithUnit(" m2")
	assert.Equal(t, "area_sqm", s.Key())

	assert.True(t, s.Increment())
	assert.Equal(t, 160, s.Value)
	assert.True(t, s.Decrement())
	assert.True(t, s.Decrement())
	assert.Equal(t, 140, s.Value)

	s.SetValue(5)
	assert.Equal(t, 10, s.Value)
	assert.False(t, s.Decrement())
	assert.Equal(t, 0.0, s.Fraction())

	s.SetValue(99999)
	assert.Equal(t, 1000, s.Value)
	assert.False(t, s.Increment())
	assert.Equal(t, 1.0, s.Fraction())

	assert.Contains(t, s.Render(), "1000 m2")
}

func TestParameterSlider_EmptyRange(t *testing.T) {
	s := NewParameterSlider("unit_count", "Units", 1, 1, 1, 1)
	assert.Equal(t, 0.0, s.Fraction())
	assert.False(t, s.Increment())
}

func TestOptionSelector(t *testing.T) {
	opts := []Option{{"a", "Alpha"}, {"b", "Beta"}, {"c", "Gamma"}}
	s := NewOptionSelector("k", "Pick", opts, "b")

	assert.Equal(t, "b", s.Selected())
	assert.Contains(t, s.Render(), "Beta")
	assert.Contains(t, s.Render(), "2/3")

	s.Increment()
	s.Increment()
	assert.Equal(t, "a", s.Selected(), "Increment wraps")
	s.Decrement()
	assert.Equal(t, "c", s.Selected(), "Decrement wraps")

	assert.False(t, s.Select("z"))
	assert.Equal(t, "c", s.Selected())
}

func TestOptionSelector_Degenerate(t *testing.T) {
	s := NewOptionSelector("k", "Pick", nil, "")
	assert.Equal(t, "", s.Selected())
	assert.False(t, s.Increment())

	one := NewOptionSelector("k", "Pick", []Option{{"a", "Alpha"}}, "a")
	assert.False(t, one.Decrement())
}

func TestNewCurrencyCard(t *testing.T) {
	card := NewCurrencyCard("Net cost", decimal.NewFromInt(22250), nil, true)
	assert.Equal(t, "$22,250", card.Value)
	assert.Nil(t, card.Delta)

	prev := decimal.NewFromInt(22250)
	same := NewCurrencyCard("Net cost", decimal.NewFromInt(22250), &prev, true)
	assert.Nil(t, same.Delta)

	down := NewCurrencyCard("Net cost", decimal.NewFromInt(16250), &prev, true)
	if assert.NotNil(t, down.Delta) {
		assert.False(t, down.Delta.Up)
		assert.True(t, down.Delta.Favorable, "Lower cost is favorable")
		assert.Equal(t, "$6,000", down.Delta.Change)
	}

	savingsPrev := decimal.NewFromInt(495)
	up := NewCurrencyCard("Savings", decimal.NewFromInt(1077), &savingsPrev, false)
	if assert.NotNil(t, up.Delta) {
		assert.True(t, up.Delta.Up)
		assert.True(t, up.Delta.Favorable)
	}
	assert.Contains(t, up.RenderCompact(), "$582")
}

func TestMetricGrid(t *testing.T) {
	assert.Equal(t, "", MetricGrid(nil, 2))

	cards := []*MetricCard{NewMetricCard("A", "1"), NewMetricCard("B", "2"), NewMetricCard("C", "3")}
	out := MetricGrid(cards, 2)
	for _, want := range []string{"A", "B", "C"} {
		assert.Contains(t, out, want)
	}
}

func TestRateBar(t *testing.T) {
	detail := domain.SubsidyDetail{
		BaseRate:          decimal.NewFromFloat(0.30),
		ClimateSpeedBonus: decimal.NewFromFloat(0.20),
		IncomeBonus:       decimal.NewFromFloat(0.30),
		UncappedRate:      decimal.NewFromFloat(0.80),
		RateCapped:        true,
	}
	bar := NewRateBar(detail, decimal.NewFromFloat(0.70), decimal.NewFromFloat(0.70))

	out := bar.Render()
	assert.Contains(t, out, "70% of 70%")
	assert.Contains(t, out, "capped from 80%")
	assert.Equal(t, bar.Width, strings.Count(out, "█")+strings.Count(out, "░"), "Overflow is clipped to the bar")

	legend := bar.Legend()
	assert.Contains(t, legend, "base 30%")
	assert.Contains(t, legend, "efficiency 0%")
}

func TestScenarioCard(t *testing.T) {
	report := domain.EstimateReport{
		Name:  "house",
		Input: domain.DefaultScenarioInput(),
		Breakdown: domain.CostBreakdown{
			NetCost:       decimal.NewFromInt(22250),
			SubsidyAmount: decimal.NewFromInt(15000),
			AnnualSavings: decimal.NewFromInt(495),
		},
	}
	card := NewScenarioCardFromReport("Default retrofit", report)

	assert.Equal(t, "house", card.Name)
	assert.Equal(t, []string{
		"Air source (air/water), 150 m2",
		"Net cost $22,250 after $15,000 subsidy",
		"Saves $495/yr, payback 44.9 years",
	}, card.Highlights)

	report.Breakdown.AnnualSavings = decimal.Zero
	assert.Contains(t, NewScenarioCardFromReport("", report).Highlights, "No operating savings")
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0", tuistyles.FormatCurrency(decimal.Zero))
	assert.Equal(t, "$999", tuistyles.FormatCurrency(decimal.NewFromInt(999)))
	assert.Equal(t, "$1,000", tuistyles.FormatCurrency(decimal.NewFromInt(1000)))
	assert.Equal(t, "$1,234,568", tuistyles.FormatCurrency(decimal.NewFromFloat(1234567.5)))
	assert.Equal(t, "-$5,390", tuistyles.FormatCurrency(decimal.NewFromInt(-5390)))
}
