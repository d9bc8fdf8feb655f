package trend

import "github.com/shopspring/decimal"

// ChangeSeries holds month-over-month percentage changes parallel to a Series.
type ChangeSeries []float64

var hundred = decimal.NewFromInt(100)

// Deltas computes the percentage change of each value against the previous one,
// rounded to one decimal place, half away from zero.
//
// The first element is always 0, and so is any element whose previous value is
// 0: growth from nothing has no percentage and is reported as flat.
func Deltas(series Series) ChangeSeries {
	out := make(ChangeSeries, len(series))
	for i := 1; i < len(series); i++ {
		prev := series[i-1]
		if prev == 0 {
			continue
		}
		pct := decimal.NewFromInt(series[i] - prev).
			Mul(hundred).
			Div(decimal.NewFromInt(prev)).
			Round(1)
		out[i] = pct.InexactFloat64()
	}
	return out
}
