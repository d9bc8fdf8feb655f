package trend

import "fmt"

// Series holds one value per axis period.
type Series []int64

// Align projects idx onto axis, substituting 0 for unobserved periods.
func Align(idx SeriesIndex, axis Axis) Series {
	return AlignShifted(idx, axis, 0)
}

// AlignShifted reads, for every axis period p, the total of p shifted by
// months. AlignShifted(prev, axis, -12) lines up the same months one year
// earlier.
func AlignShifted(idx SeriesIndex, axis Axis, months int) Series {
	out := make(Series, len(axis))
	for i, key := range axis {
		out[i] = idx.Total(key.AddMonths(months))
	}
	return out
}

// Add sums two aligned series pointwise.
func Add(a, b Series) (Series, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("add %d and %d values: %w", len(a), len(b), ErrLengthMismatch)
	}
	out := make(Series, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out, nil
}

// Sum is the axis-wide total.
func (s Series) Sum() int64 {
	var total int64
	for _, v := range s {
		total += v
	}
	return total
}
