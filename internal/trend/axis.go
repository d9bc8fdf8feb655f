package trend

import (
	"slices"

	"github.com/samber/lo"
)

// Axis is the chronologically sorted, duplicate-free list of periods a report
// covers. Every output array is parallel to it.
type Axis []PeriodKey

// Merge returns the union of the periods of all indexes in ascending order.
// No indexes, or only empty ones, yield an empty axis.
func Merge(indexes ...SeriesIndex) Axis {
	seen := make(map[PeriodKey]struct{})
	for _, idx := range indexes {
		for key := range idx {
			seen[key] = struct{}{}
		}
	}

	keys := lo.Keys(seen)
	slices.Sort(keys)
	return Axis(keys)
}

// Empty reports the no-data condition.
func (a Axis) Empty() bool {
	return len(a) == 0
}

// Labels renders the axis as canonical "YYYY-MM" labels.
func (a Axis) Labels() []string {
	labels := make([]string, 0, len(a))
	for _, key := range a {
		labels = append(labels, key.String())
	}
	return labels
}
