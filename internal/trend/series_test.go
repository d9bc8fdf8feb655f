package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func index(kind Kind, counts map[string]int64) SeriesIndex {
	rows := make([]Row, 0, len(counts))
	for period, n := range counts {
		rows = append(rows, Row{Period: period, Product: "Life", Count: n})
	}
	return Index(kind, rows, nil)
}

func TestMerge_UnionSortedChronologically(t *testing.T) {
	a := index(KindSales, map[string]int64{"2024-10": 1, "2024-2": 1})
	b := index(KindReinstatements, map[string]int64{"2024-02": 1, "2023-12": 1})
	c := index(KindLapses, map[string]int64{"2024-9": 1})

	axis := Merge(a, b, c)

	assert.Equal(t, []string{"2023-12", "2024-02", "2024-09", "2024-10"}, axis.Labels())
	for i := 1; i < len(axis); i++ {
		assert.Less(t, axis[i-1], axis[i])
	}
}

func TestMerge_EmptyInput(t *testing.T) {
	axis := Merge()
	assert.True(t, axis.Empty())
	assert.NotNil(t, axis.Labels())

	axis = Merge(SeriesIndex{}, nil, SeriesIndex{})
	assert.True(t, axis.Empty())
}

func TestAlign_LengthMatchesAxis(t *testing.T) {
	idx := index(KindSales, map[string]int64{"2024-01": 5, "2024-03": 2})
	axes := []Axis{
		{},
		Merge(idx),
		Merge(idx, index(KindLapses, map[string]int64{"2024-02": 1, "2024-06": 1})),
	}
	for _, axis := range axes {
		assert.Len(t, Align(idx, axis), len(axis))
		assert.Len(t, Align(nil, axis), len(axis))
	}
}

func TestAlign_ZeroFillsMissingPeriods(t *testing.T) {
	idx := index(KindSales, map[string]int64{"2024-01": 5, "2024-03": 2})
	axis := Merge(idx, index(KindLapses, map[string]int64{"2024-02": 9}))

	assert.Equal(t, Series{5, 0, 2}, Align(idx, axis))
}

func TestAlignShifted_ReadsEarlierMonths(t *testing.T) {
	prev := index(KindSales, map[string]int64{"2023-01": 4, "2023-03": 6})
	cur := index(KindSales, map[string]int64{"2024-01": 1, "2024-02": 1, "2024-03": 1})

	assert.Equal(t, Series{4, 0, 6}, AlignShifted(prev, Merge(cur), -12))
}

func TestAdd(t *testing.T) {
	sum, err := Add(Series{1, 2, 3}, Series{10, 0, 5})
	require.NoError(t, err)
	assert.Equal(t, Series{11, 2, 8}, sum)

	_, err = Add(Series{1}, Series{1, 2})
	assert.ErrorIs(t, err, ErrLengthMismatch)
	assert.Equal(t, CauseInternal, Cause(err))
}

func TestSeries_Sum(t *testing.T) {
	assert.Equal(t, int64(0), Series{}.Sum())
	assert.Equal(t, int64(0), Series(nil).Sum())
	assert.Equal(t, int64(14), Series{5, 0, 9}.Sum())
}
