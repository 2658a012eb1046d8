package params

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/hpgo/internal/calculation"
	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groundSourceApartments() domain.ScenarioInput {
	return domain.ScenarioInput{
		PumpType:           domain.PumpGroundWater,
		PropertyType:       domain.PropertyMultiFamily,
		UnitCount:          4,
		AreaSqm:            320,
		BuildingYearBand:   domain.YearFrom1980To2000,
		InsulationQuality:  domain.InsulationPoor,
		HeatingSurfaceType: domain.SurfaceMixed,
		CurrentHeatingFuel: domain.FuelOil,
		OccupantCount:      9,
		IncomeBonusClaimed: true,
	}
}

func TestDecode(t *testing.T) {
	values, err := url.ParseQuery("pump_type=Ground-Water&area_sqm=120&occupants=abc&income_bonus=YES&current_fuel=peat&unit_count=")
	require.NoError(t, err)

	p := Decode(values)

	require.NotNil(t, p.PumpType)
	assert.Equal(t, domain.PumpType("Ground-Water"), *p.PumpType, "tokens are kept as given")
	require.NotNil(t, p.AreaSqm)
	assert.Equal(t, 120, *p.AreaSqm)
	assert.Nil(t, p.OccupantCount, "unparseable number is omitted")
	assert.Nil(t, p.UnitCount, "empty value is omitted")
	require.NotNil(t, p.IncomeBonusClaimed)
	assert.True(t, *p.IncomeBonusClaimed)
	require.NotNil(t, p.CurrentHeatingFuel)
	assert.Equal(t, domain.HeatingFuel("peat"), *p.CurrentHeatingFuel)
	assert.Nil(t, p.PropertyType)
}

func TestDecode_Numbers(t *testing.T) {
	tests := []struct {
		raw  string
		want *int
	}{
		{"42", intPtr(42)},
		{" 42 ", intPtr(42)},
		{"120.0", intPtr(120)},
		{"120.7", nil},
		{"-0.5", nil},
		{"-3", intPtr(-3)},
		{"1e12", nil},
		{"NaN", nil},
		{"twelve", nil},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			p := Decode(url.Values{KeyAreaSqm: {tt.raw}})
			assert.Equal(t, tt.want, p.AreaSqm)
		})
	}
}

func TestParseBool(t *testing.T) {
	for _, raw := range []string{"true", "TRUE", "1", "yes", "on"} {
		v, ok := ParseBool(raw)
		assert.True(t, ok, raw)
		assert.True(t, v, raw)
	}
	for _, raw := range []string{"false", "0", "No", "off"} {
		v, ok := ParseBool(raw)
		assert.True(t, ok, raw)
		assert.False(t, v, raw)
	}
	_, ok := ParseBool("maybe")
	assert.False(t, ok)
}

func TestResolve_Precedence(t *testing.T) {
	deepLink := Decode(url.Values{KeyAreaSqm: {"90"}, KeyPumpType: {"water_water"}})
	saved := Decode(url.Values{KeyAreaSqm: {"200"}, KeyOccupants: {"5"}, KeyInsulation: {"good"}})

	in, _ := calculation.Normalize(Resolve(deepLink, saved))

	assert.Equal(t, 90, in.AreaSqm, "deep link beats saved preference")
	assert.Equal(t, domain.PumpWaterWater, in.PumpType)
	assert.Equal(t, 5, in.OccupantCount, "saved preference beats default")
	assert.Equal(t, domain.InsulationGood, in.InsulationQuality)
	assert.Equal(t, domain.FuelGas, in.CurrentHeatingFuel, "default fills the rest")
}

func TestResolve_NoLayers(t *testing.T) {
	assert.True(t, Resolve().IsEmpty())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := groundSourceApartments()

	got, report := calculation.Normalize(Decode(Encode(want)))

	assert.Equal(t, want, got)
	assert.Empty(t, report.Defaulted)
}

func TestLeadParams_Values(t *testing.T) {
	report := calculation.NewEstimationEngine().Estimate(groundSourceApartments())
	values := NewLeadParams(report).Values()

	for _, key := range append(InputKeys(), ResultKeys()...) {
		assert.NotEmpty(t, values.Get(key), key)
	}
	assert.Equal(t, SchemaVersion, values.Get(KeySchema))
	assert.Equal(t, "ground_water", values.Get(KeyPumpType))
	assert.Equal(t, "0.70", values.Get(KeySubsidyRate))
	assert.Equal(t, "true", values.Get(KeyClimateSpeedBonus))
	assert.Len(t, values, len(InputKeys())+len(ResultKeys())+1)
}

func TestDecodeLeadParams_RoundTrip(t *testing.T) {
	report := calculation.NewEstimationEngine().Estimate(groundSourceApartments())
	want := NewLeadParams(report)

	got, err := DecodeLeadParams(want.Values())
	require.NoError(t, err)

	assert.Equal(t, want.Input, got.Input)
	assert.True(t, want.NetCost.Equal(got.NetCost))
	assert.True(t, want.SubsidyRate.Equal(got.SubsidyRate))
	assert.True(t, want.PerformanceFactor.Equal(got.PerformanceFactor))
	assert.Equal(t, want.EfficiencyBonus, got.EfficiencyBonus)
}

func TestDecodeLeadParams_Errors(t *testing.T) {
	valid := NewLeadParams(calculation.NewEstimationEngine().Estimate(domain.DefaultScenarioInput())).Values()

	tests := []struct {
		name    string
		mutate  func(url.Values)
		wantKey string
	}{
		{"missing schema", func(v url.Values) { v.Del(KeySchema) }, KeySchema},
		{"future schema", func(v url.Values) { v.Set(KeySchema, "2") }, KeySchema},
		{"missing result", func(v url.Values) { v.Del(KeyNetCost) }, KeyNetCost},
		{"bad amount", func(v url.Values) { v.Set(KeyTotalCost, "lots") }, KeyTotalCost},
		{"unknown pump", func(v url.Values) { v.Set(KeyPumpType, "plasma") }, KeyPumpType},
		{"zero area", func(v url.Values) { v.Set(KeyAreaSqm, "0") }, KeyAreaSqm},
		{"bad flag", func(v url.Values) { v.Set(KeyEfficiencyBonus, "perhaps") }, KeyEfficiencyBonus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for k, v := range valid {
				values[k] = append([]string(nil), v...)
			}
			tt.mutate(values)

			_, err := DecodeLeadParams(values)
			require.Error(t, err)

			var schemaErr *SchemaError
			require.True(t, errors.As(err, &schemaErr))
			assert.Equal(t, tt.wantKey, schemaErr.Key)
		})
	}
}

func TestLoadPreferenceFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.yaml")
	content := `
pump_type: ground_water
area_sqm: 180
income_bonus: true
occupants: "many"
theme: dark
nested:
  ignored: 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	p, err := LoadPreferenceFile(path)
	require.NoError(t, err)

	require.NotNil(t, p.PumpType)
	assert.Equal(t, domain.PumpGroundWater, *p.PumpType)
	require.NotNil(t, p.AreaSqm)
	assert.Equal(t, 180, *p.AreaSqm)
	require.NotNil(t, p.IncomeBonusClaimed)
	assert.True(t, *p.IncomeBonusClaimed)
	assert.Nil(t, p.OccupantCount)
}

func TestLoadPreferenceFile_Errors(t *testing.T) {
	_, err := LoadPreferenceFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = ParsePreferences([]byte("pump_type: [unclosed"))
	assert.Error(t, err)
}

func intPtr(n int) *int { return &n }
