package utilities

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pooofdevelopment/go-hl-client/pkg/types"
)

var (
	wireTolerance = decimal.New(1, -12)
	intTolerance  = decimal.New(1, -3)
)

// FloatToWire renders x with at most 8 decimals and no trailing zeros.
// It fails when that rounding would change the value.
func FloatToWire(x float64) (string, error) {
	value := decimal.NewFromFloat(x)
	rounded := value.Round(types.WireDecimals)
	if rounded.Sub(value).Abs().GreaterThanOrEqual(wireTolerance) {
		return "", fmt.Errorf("float_to_wire causes rounding: %v", x)
	}
	if rounded.IsZero() {
		return "0", nil
	}
	return rounded.String(), nil
}

// FloatToInt scales x by 10^decimals and requires the result to be integral.
func FloatToInt(x float64, decimals int32) (int64, error) {
	scaled := decimal.NewFromFloat(x).Shift(decimals)
	rounded := scaled.Round(0)
	if rounded.Sub(scaled).Abs().GreaterThanOrEqual(intTolerance) {
		return 0, fmt.Errorf("float_to_int causes rounding: %v", x)
	}
	return rounded.IntPart(), nil
}

// FloatToUsdInt converts a USD amount into integer micro-units.
func FloatToUsdInt(x float64) (int64, error) {
	return FloatToInt(x, types.UsdDecimals)
}

// RoundToDecimals rounds a price or size to the given number of decimals.
func RoundToDecimals(x float64, decimals int32) float64 {
	f, _ := decimal.NewFromFloat(x).Round(decimals).Float64()
	return f
}
