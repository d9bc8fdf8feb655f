package trend

// Kind names one independently sourced metric.
type Kind string

const (
	KindSales          Kind = "sales"
	KindReinstatements Kind = "reinstatements"
	KindLapses         Kind = "lapses"
)

// Row is one aggregated row as returned by a source query.
type Row struct {
	Period  string
	Product string
	Status  string // lapses only
	Count   int64
}

// Category is the breakdown dimension. Status is a sub-category for lapses and
// empty for the other kinds.
type Category struct {
	Product string
	Status  string
}

func (c Category) String() string {
	if c.Status == "" {
		return c.Product
	}
	return c.Product + " (" + c.Status + ")"
}

// Observation is a Row after its period has been normalized.
type Observation struct {
	Period   PeriodKey
	Category Category
	Count    int64
}

// Bucket holds the counts observed for one period.
type Bucket struct {
	Total      int64
	ByCategory map[Category]int64
}

// SeriesIndex maps each observed period to its bucket.
type SeriesIndex map[PeriodKey]*Bucket

// Index normalizes and accumulates rows of a single kind.
//
// Rows with an unparseable period are dropped and negative counts are clamped
// to zero; both are recorded in diag (which may be nil) instead of failing.
func Index(kind Kind, rows []Row, diag *Diagnostics) SeriesIndex {
	idx := make(SeriesIndex)
	for _, row := range rows {
		key, err := Normalize(row.Period)
		if err != nil {
			diag.malformed(kind, row, err)
			continue
		}

		obs := Observation{
			Period:   key,
			Category: Category{Product: row.Product, Status: row.Status},
			Count:    row.Count,
		}
		if obs.Count < 0 {
			diag.negative(&NegativeCountAnomaly{Kind: kind, Period: key, Category: obs.Category, Count: obs.Count})
			obs.Count = 0
		}
		idx.add(obs)
	}
	return idx
}

func (idx SeriesIndex) add(obs Observation) {
	b, ok := idx[obs.Period]
	if !ok {
		b = &Bucket{ByCategory: make(map[Category]int64)}
		idx[obs.Period] = b
	}
	b.ByCategory[obs.Category] += obs.Count
	b.Total += obs.Count
}

// Total returns the count for period, or 0 when the period was not observed.
func (idx SeriesIndex) Total(period PeriodKey) int64 {
	if b, ok := idx[period]; ok {
		return b.Total
	}
	return 0
}

// Consistent reports whether every bucket total equals the sum of its categories.
func (idx SeriesIndex) Consistent() bool {
	for _, b := range idx {
		var sum int64
		for _, n := range b.ByCategory {
			sum += n
		}
		if sum != b.Total {
			return false
		}
	}
	return true
}
