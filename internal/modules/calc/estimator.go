package calc

import "math"

// Default assumptions for the solar estimate. Callers may override any of
// them per request; bill has no default and simply estimates a 0-unit home.
const (
	DefaultTariff     = 8.0
	DefaultSunHours   = 4.5
	DefaultPricePerKW = 70000.0
	DefaultSubsidy    = 0.0
)

// Input holds the financial/technical figures for one estimate.
type Input struct {
	Bill       float64
	Tariff     float64
	SunHours   float64
	PricePerKW float64
	Subsidy    float64 // fraction 0..1
}

// Estimate is the sizing and payback result.
type Estimate struct {
	KW            float64 `json:"kw"`
	CostGross     int64   `json:"cost_gross"`
	CostNet       int64   `json:"cost_net"`
	YearlySavings int64   `json:"yearly_savings"`
	PaybackYears  float64 `json:"payback_years"`
}

// EstimateSystem sizes a solar system from a monthly bill and computes its
// cost and payback. The max(…, 0.1) / max(…, 1) floors are deliberate
// division-by-zero clamps, not validation.
func EstimateSystem(in Input) Estimate {
	monthlyUnits := in.Bill / math.Max(in.Tariff, 0.1)
	neededKW := monthlyUnits / (30 * math.Max(in.SunHours, 0.1))

	kw := math.Max(1, round1(neededKW))
	costGross := kw * in.PricePerKW
	costNet := costGross * (1 - in.Subsidy)
	yearlySavings := monthlyUnits * in.Tariff * 12 * 0.85
	paybackYears := round2(costNet / math.Max(yearlySavings, 1))

	return Estimate{
		KW:            kw,
		CostGross:     int64(math.Round(costGross)),
		CostNet:       int64(math.Round(costNet)),
		YearlySavings: int64(math.Round(yearlySavings)),
		PaybackYears:  paybackYears,
	}
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }

func round2(x float64) float64 { return math.Round(x*100) / 100 }
