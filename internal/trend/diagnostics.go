package trend

// Issue records one recovered row-level anomaly.
type Issue struct {
	Kind     Kind   `json:"kind"`
	Cause    string `json:"cause"`
	Period   string `json:"period,omitempty"`
	Category string `json:"category,omitempty"`
	Detail   string `json:"detail"`
}

// MaxIssues bounds Diagnostics.Issues. Anomalies past it are still counted.
const MaxIssues = 50

// Diagnostics accumulates anomalies that were recovered while building a report.
// A nil *Diagnostics discards everything.
type Diagnostics struct {
	MalformedPeriods int     `json:"malformed_periods"`
	NegativeCounts   int     `json:"negative_counts"`
	DegradedSources  []Kind  `json:"degraded_sources"`
	Issues           []Issue `json:"issues"`
	DroppedIssues    int     `json:"dropped_issues"`
}

// NewDiagnostics returns diagnostics whose slices encode as [] rather than null.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{
		DegradedSources: make([]Kind, 0),
		Issues:          make([]Issue, 0),
	}
}

// Clean reports whether nothing was recovered.
func (d *Diagnostics) Clean() bool {
	return d == nil || (d.MalformedPeriods == 0 && d.NegativeCounts == 0 && len(d.DegradedSources) == 0)
}

func (d *Diagnostics) malformed(kind Kind, row Row, err error) {
	if d == nil {
		return
	}
	d.MalformedPeriods++
	d.record(Issue{
		Kind:     kind,
		Cause:    CauseMalformedPeriod,
		Period:   row.Period,
		Category: Category{Product: row.Product, Status: row.Status}.String(),
		Detail:   err.Error(),
	})
}

func (d *Diagnostics) negative(a *NegativeCountAnomaly) {
	if d == nil {
		return
	}
	d.NegativeCounts++
	d.record(Issue{
		Kind:     a.Kind,
		Cause:    CauseNegativeCount,
		Period:   a.Period.String(),
		Category: a.Category.String(),
		Detail:   a.Error(),
	})
}

func (d *Diagnostics) degraded(kind Kind, err error) {
	if d == nil {
		return
	}
	d.DegradedSources = append(d.DegradedSources, kind)
	d.record(Issue{
		Kind:   kind,
		Cause:  CauseSourceUnavailable,
		Detail: err.Error(),
	})
}

func (d *Diagnostics) record(issue Issue) {
	if len(d.Issues) >= MaxIssues {
		d.DroppedIssues++
		return
	}
	d.Issues = append(d.Issues, issue)
}
