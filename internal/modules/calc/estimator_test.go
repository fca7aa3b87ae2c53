package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultInput(bill float64) Input {
	return Input{
		Bill:       bill,
		Tariff:     DefaultTariff,
		SunHours:   DefaultSunHours,
		PricePerKW: DefaultPricePerKW,
		Subsidy:    DefaultSubsidy,
	}
}

func TestEstimateSystem_TypicalBill(t *testing.T) {
	// bill=900 with all defaults: 112.5 units/month, 0.83 kW needed,
	// sized up to the 1 kW minimum.
	est := EstimateSystem(defaultInput(900))

	assert.Equal(t, 1.0, est.KW)
	assert.Equal(t, int64(70000), est.CostGross)
	assert.Equal(t, int64(70000), est.CostNet)
	assert.Equal(t, int64(9180), est.YearlySavings)
	assert.Equal(t, 7.63, est.PaybackYears)
}

func TestEstimateSystem_ZeroTariffClamped(t *testing.T) {
	in := defaultInput(100)
	in.Tariff = 0

	// tariff floor of 0.1 keeps the division defined: 1000 units/month.
	est := EstimateSystem(in)

	assert.Equal(t, 7.4, est.KW)
	assert.Equal(t, int64(518000), est.CostGross)
	// zero tariff means zero savings, so payback divides by the floor of 1
	assert.Equal(t, int64(0), est.YearlySavings)
	assert.Equal(t, 518000.0, est.PaybackYears)
}

func TestEstimateSystem_ZeroSunHoursClamped(t *testing.T) {
	in := defaultInput(900)
	in.SunHours = 0

	est := EstimateSystem(in)
	assert.Greater(t, est.KW, 1.0)
}

func TestEstimateSystem_SubsidyReducesNetCost(t *testing.T) {
	in := defaultInput(900)
	in.Subsidy = 0.4

	est := EstimateSystem(in)

	assert.Equal(t, int64(70000), est.CostGross)
	assert.Equal(t, int64(42000), est.CostNet)
	assert.Equal(t, 4.58, est.PaybackYears)
}

func TestEstimateSystem_ZeroBill(t *testing.T) {
	est := EstimateSystem(defaultInput(0))

	// No consumption still sizes the minimum 1 kW system.
	assert.Equal(t, 1.0, est.KW)
	assert.Equal(t, int64(70000), est.CostGross)
	assert.Equal(t, int64(0), est.YearlySavings)
}

func TestParseRequest_Defaults(t *testing.T) {
	in, err := parseRequest(map[string]any{"bill": 900.0})
	require.NoError(t, err)

	assert.Equal(t, 900.0, in.Bill)
	assert.Equal(t, DefaultTariff, in.Tariff)
	assert.Equal(t, DefaultSunHours, in.SunHours)
	assert.Equal(t, DefaultPricePerKW, in.PricePerKW)
	assert.Equal(t, DefaultSubsidy, in.Subsidy)
}

func TestParseRequest_NumericStrings(t *testing.T) {
	in, err := parseRequest(map[string]any{
		"bill":      "900",
		"tariff":    " 7.5 ",
		"sun_hours": "5",
	})
	require.NoError(t, err)

	assert.Equal(t, 900.0, in.Bill)
	assert.Equal(t, 7.5, in.Tariff)
	assert.Equal(t, 5.0, in.SunHours)
}

func TestParseRequest_BadInput(t *testing.T) {
	cases := []map[string]any{
		{"bill": "abc"},
		{"bill": true},
		{"bill": 900.0, "subsidy": "lots"},
		{"bill": []any{1, 2}},
		{"bill": ""},
	}
	for _, raw := range cases {
		_, err := parseRequest(raw)
		assert.ErrorIs(t, err, ErrBadInput, "raw=%v", raw)
	}
}
