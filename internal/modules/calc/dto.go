package calc

import (
	"errors"
	"strconv"
	"strings"
)

// ErrBadInput is the single reason reported for any non-numeric field.
var ErrBadInput = errors.New("Bad input")

// parseRequest coerces the raw JSON body into an Input, applying the
// documented defaults for absent fields. Fields may arrive as JSON numbers
// or numeric strings (the calculator form submits strings).
func parseRequest(raw map[string]any) (Input, error) {
	var in Input
	var err error

	if in.Bill, err = numberField(raw, "bill", 0); err != nil {
		return Input{}, err
	}
	if in.Tariff, err = numberField(raw, "tariff", DefaultTariff); err != nil {
		return Input{}, err
	}
	if in.SunHours, err = numberField(raw, "sun_hours", DefaultSunHours); err != nil {
		return Input{}, err
	}
	if in.PricePerKW, err = numberField(raw, "price_per_kw", DefaultPricePerKW); err != nil {
		return Input{}, err
	}
	if in.Subsidy, err = numberField(raw, "subsidy", DefaultSubsidy); err != nil {
		return Input{}, err
	}

	return in, nil
}

func numberField(raw map[string]any, key string, def float64) (float64, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return def, nil
	}

	switch t := v.(type) {
	case float64:
		return t, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, ErrBadInput
		}
		return f, nil
	default:
		return 0, ErrBadInput
	}
}
