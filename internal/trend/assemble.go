package trend

import "fmt"

// Metrics groups the aligned series of the three source kinds.
type Metrics struct {
	Sales          Series
	Reinstatements Series
	Lapses         Series
}

// ReportPayload is the policy-count-by-month contract consumed by the charts.
// All arrays have len(Periods) elements.
type ReportPayload struct {
	Periods             []string     `json:"periods"`
	Sales               Series       `json:"sales"`
	Reinstatements      Series       `json:"reinstatements"`
	Lapses              Series       `json:"lapses"`
	PolicyCountByMonth  Series       `json:"policy_count_by_month"`
	MonthlyChanges      ChangeSeries `json:"monthly_changes"`
	TotalSales          int64        `json:"total_sales"`
	TotalReinstatements int64        `json:"total_reinstatements"`
	TotalLapses         int64        `json:"total_lapses"`
	TotalPolicies       int64        `json:"total_policies"`
	Diagnostics         Diagnostics  `json:"diagnostics"`
}

// Assemble packages aligned series into a payload, refusing to emit arrays of
// different lengths.
func Assemble(axis Axis, metrics Metrics, derived Series, changes ChangeSeries, diag Diagnostics) (ReportPayload, error) {
	n := len(axis)
	lengths := map[string]int{
		"sales":                 len(metrics.Sales),
		"reinstatements":        len(metrics.Reinstatements),
		"lapses":                len(metrics.Lapses),
		"policy_count_by_month": len(derived),
		"monthly_changes":       len(changes),
	}
	for name, l := range lengths {
		if l != n {
			return ReportPayload{}, fmt.Errorf("%s has %d values for %d periods: %w", name, l, n, ErrLengthMismatch)
		}
	}

	if diag.DegradedSources == nil {
		diag.DegradedSources = make([]Kind, 0)
	}
	if diag.Issues == nil {
		diag.Issues = make([]Issue, 0)
	}

	return ReportPayload{
		Periods:             axis.Labels(),
		Sales:               nonNil(metrics.Sales),
		Reinstatements:      nonNil(metrics.Reinstatements),
		Lapses:              nonNil(metrics.Lapses),
		PolicyCountByMonth:  nonNil(derived),
		MonthlyChanges:      nonNilChanges(changes),
		TotalSales:          metrics.Sales.Sum(),
		TotalReinstatements: metrics.Reinstatements.Sum(),
		TotalLapses:         metrics.Lapses.Sum(),
		TotalPolicies:       derived.Sum(),
		Diagnostics:         diag,
	}, nil
}

func nonNil(s Series) Series {
	if s == nil {
		return Series{}
	}
	return s
}

func nonNilChanges(c ChangeSeries) ChangeSeries {
	if c == nil {
		return ChangeSeries{}
	}
	return c
}
