package trend

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// TrendsPayload is the compact chart of the three kinds plus policy count.
type TrendsPayload struct {
	Periods            []string `json:"periods"`
	Sales              Series   `json:"sales"`
	Reinstatements     Series   `json:"reinstatements"`
	Lapses             Series   `json:"lapses"`
	PolicyCountByMonth Series   `json:"policy_count_by_month"`
}

// Trends returns the compact chart view.
func (r *Report) Trends() TrendsPayload {
	return TrendsPayload{
		Periods:            r.Axis.Labels(),
		Sales:              nonNil(r.Metrics.Sales),
		Reinstatements:     nonNil(r.Metrics.Reinstatements),
		Lapses:             nonNil(r.Metrics.Lapses),
		PolicyCountByMonth: nonNil(r.PolicyCount),
	}
}

// BreakdownEntry is one (period, category) count.
type BreakdownEntry struct {
	Period   PeriodKey
	Category Category
	Count    int64
}

// BreakdownPayload lists per-product counts as parallel arrays.
type BreakdownPayload struct {
	ProductTypes []string `json:"product_types"`
	PolicyCounts []int64  `json:"policy_counts"`
	Periods      []string `json:"periods"`
	Status       []string `json:"status,omitempty"`
}

// Entries flattens the index of kind, newest period first, then by descending
// count. Zero counts are left out.
func (r *Report) Entries(kind Kind) []BreakdownEntry {
	var entries []BreakdownEntry
	for period, b := range r.Indexes[kind] {
		for cat, n := range b.ByCategory {
			if n == 0 {
				continue
			}
			entries = append(entries, BreakdownEntry{Period: period, Category: cat, Count: n})
		}
	}

	slices.SortFunc(entries, func(a, b BreakdownEntry) int {
		return cmp.Or(
			cmp.Compare(b.Period, a.Period),
			cmp.Compare(b.Count, a.Count),
			cmp.Compare(a.Category.Product, b.Category.Product),
			cmp.Compare(a.Category.Status, b.Category.Status),
		)
	})
	return entries
}

// Breakdown renders Entries(kind) as parallel arrays. The status column is only
// present for lapses.
func (r *Report) Breakdown(kind Kind) BreakdownPayload {
	return NewBreakdownPayload(kind, r.Entries(kind))
}

// NewBreakdownPayload renders entries as parallel arrays.
func NewBreakdownPayload(kind Kind, entries []BreakdownEntry) BreakdownPayload {
	out := BreakdownPayload{
		ProductTypes: lo.Map(entries, func(e BreakdownEntry, _ int) string { return e.Category.Product }),
		PolicyCounts: lo.Map(entries, func(e BreakdownEntry, _ int) int64 { return e.Count }),
		Periods:      lo.Map(entries, func(e BreakdownEntry, _ int) string { return e.Period.String() }),
	}
	if kind == KindLapses {
		out.Status = lo.Map(entries, func(e BreakdownEntry, _ int) string { return e.Category.Status })
	}
	return out
}

// YoYPayload compares each period with the same month one year earlier.
type YoYPayload struct {
	Periods                []string       `json:"periods"`
	SalesCurrent           Series         `json:"sales_current"`
	SalesPrevious          Series         `json:"sales_previous"`
	ReinstatementsCurrent  Series         `json:"reinstatements_current"`
	ReinstatementsPrevious Series         `json:"reinstatements_previous"`
	LapsesCurrent          Series         `json:"lapses_current"`
	LapsesPrevious         Series         `json:"lapses_previous"`
	Diagnostics            YoYDiagnostics `json:"diagnostics"`
}

// YoYDiagnostics keeps the anomalies of the two compared windows apart, so a
// zero-filled previous year can be told from a year of real zeros.
type YoYDiagnostics struct {
	Current  Diagnostics `json:"current"`
	Previous Diagnostics `json:"previous"`
}

// YearOverYear lines up current with the report of the window twelve months
// earlier. A nil previous report compares against zeros.
func YearOverYear(current, previous *Report) YoYPayload {
	prevIndex := func(kind Kind) SeriesIndex {
		if previous == nil {
			return nil
		}
		return previous.Indexes[kind]
	}

	var prevDiagnostics *Diagnostics
	if previous != nil {
		prevDiagnostics = previous.Diagnostics
	}

	axis := current.Axis
	return YoYPayload{
		Periods:                axis.Labels(),
		SalesCurrent:           nonNil(current.Metrics.Sales),
		SalesPrevious:          AlignShifted(prevIndex(KindSales), axis, -12),
		ReinstatementsCurrent:  nonNil(current.Metrics.Reinstatements),
		ReinstatementsPrevious: AlignShifted(prevIndex(KindReinstatements), axis, -12),
		LapsesCurrent:          nonNil(current.Metrics.Lapses),
		LapsesPrevious:         AlignShifted(prevIndex(KindLapses), axis, -12),
		Diagnostics: YoYDiagnostics{
			Current:  snapshot(current.Diagnostics),
			Previous: snapshot(prevDiagnostics),
		},
	}
}

// snapshot copies d with slices that encode as [] rather than null.
func snapshot(d *Diagnostics) Diagnostics {
	if d == nil {
		return *NewDiagnostics()
	}
	out := *d
	if out.DegradedSources == nil {
		out.DegradedSources = make([]Kind, 0)
	}
	if out.Issues == nil {
		out.Issues = make([]Issue, 0)
	}
	return out
}
