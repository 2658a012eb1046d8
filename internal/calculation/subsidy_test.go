package calculation

import (
	"testing"

	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEligibleCostCap(t *testing.T) {
	funding := domain.DefaultFundingConstants()

	tests := []struct {
		name     string
		property domain.PropertyType
		units    int
		wantCap  string
		counted  int
	}{
		{"single family ignores units", domain.PropertySingleFamily, 8, "30000", 0},
		{"commercial ignores units", domain.PropertyCommercial, 4, "30000", 0},
		{"multi family one unit", domain.PropertyMultiFamily, 1, "30000", 0},
		{"multi family three units", domain.PropertyMultiFamily, 3, "60000", 2},
		{"multi family six units", domain.PropertyMultiFamily, 6, "105000", 5},
		{"multi family ten units", domain.PropertyMultiFamily, 10, "105000", 5},
		{"multi family zero units", domain.PropertyMultiFamily, 0, "30000", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := airSourceHouse()
			in.PropertyType = tt.property
			in.UnitCount = tt.units

			costCap, counted := EligibleCostCap(in, funding)
			assertDecimal(t, tt.wantCap, costCap, "cap")
			assert.Equal(t, tt.counted, counted)
		})
	}
}

func TestEligibleCostCap_TenUnitsEqualsSix(t *testing.T) {
	engine := NewEstimationEngine()

	ten := groundSourceApartments()
	ten.UnitCount = 10
	six := groundSourceApartments()
	six.UnitCount = 6

	assert.True(t, engine.Estimate(ten).Breakdown.EligibleCostCap.Equal(engine.Estimate(six).Breakdown.EligibleCostCap))
}

func TestCalculateSubsidy_BonusStacking(t *testing.T) {
	funding := domain.DefaultFundingConstants()

	tests := []struct {
		name       string
		rawFactor  string
		income     bool
		wantRate   string
		efficiency bool
		capped     bool
	}{
		{"base and climate-speed", "3.3", false, "0.5", false, false},
		{"efficiency at threshold", "4.5", false, "0.55", true, false},
		{"efficiency just below threshold", "4.49", false, "0.5", false, false},
		{"base, climate-speed and efficiency stay below maximum", "4.6", false, "0.55", true, false},
		{"income without efficiency exceeds maximum", "3.3", true, "0.7", false, true},
		{"everything clamps to maximum", "5.2", true, "0.7", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := airSourceHouse()
			in.IncomeBonusClaimed = tt.income

			got := CalculateSubsidy(in, dec("20000"), dec(tt.rawFactor), funding)
			assertDecimal(t, tt.wantRate, got.Rate, "rate")
			assert.Equal(t, tt.efficiency, got.EfficiencyBonus)
			assert.Equal(t, tt.capped, got.Detail.RateCapped)
			assert.True(t, got.ClimateSpeedBonus)
			assert.True(t, got.Amount.Equal(roundCurrency(got.EligibleCosts.Mul(got.Rate))))
		})
	}
}

func TestCalculateSubsidy_EligibleBelowCap(t *testing.T) {
	got := CalculateSubsidy(airSourceHouse(), dec("12345"), dec("3.3"), domain.DefaultFundingConstants())

	assertDecimal(t, "12345", got.EligibleCosts, "eligible")
	assertDecimal(t, "6173", got.Amount, "amount") // 6172.5 rounds away from zero
	assertDecimal(t, "6172", got.NetCost, "net")
	assert.False(t, got.Detail.CostCapBinding)
}

func TestQualifiesForClimateSpeedBonus(t *testing.T) {
	for _, fuel := range domain.AllHeatingFuels() {
		assert.True(t, QualifiesForClimateSpeedBonus(fuel), "fuel %s", fuel)
	}
	assert.True(t, QualifiesForClimateSpeedBonus("district_heat"), "unknown fuel resolves to gas")
}
