package trend

// Source is the outcome of fetching one metric kind.
type Source struct {
	Rows []Row
	Err  error
}

// Sources holds the three fetches of a report. All of them must have completed
// before Build runs, since the axis depends on every one.
type Sources struct {
	Sales          Source
	Reinstatements Source
	Lapses         Source
}

// SourcePolicy decides what a failed fetch does to the report.
type SourcePolicy int

const (
	// FailOnSourceError aborts the report with a *SourceUnavailableError.
	FailOnSourceError SourcePolicy = iota
	// ZeroFillOnSourceError treats a failed source as empty and lists it in
	// Diagnostics.DegradedSources.
	ZeroFillOnSourceError
)

// Report is a fully aligned set of series for one request.
type Report struct {
	Axis        Axis
	Indexes     map[Kind]SeriesIndex
	Metrics     Metrics
	PolicyCount Series
	Changes     ChangeSeries
	Diagnostics *Diagnostics
}

// Build runs Index, Merge, Align, derive and Deltas over the fetched sources.
func Build(src Sources, policy SourcePolicy) (*Report, error) {
	diag := NewDiagnostics()
	ordered := []struct {
		kind Kind
		src  Source
	}{
		{KindSales, src.Sales},
		{KindReinstatements, src.Reinstatements},
		{KindLapses, src.Lapses},
	}

	indexes := make(map[Kind]SeriesIndex, len(ordered))
	for _, o := range ordered {
		if o.src.Err != nil {
			if policy == FailOnSourceError {
				return nil, &SourceUnavailableError{Kind: o.kind, Err: o.src.Err}
			}
			diag.degraded(o.kind, o.src.Err)
			indexes[o.kind] = SeriesIndex{}
			continue
		}
		indexes[o.kind] = Index(o.kind, o.src.Rows, diag)
	}

	axis := Merge(indexes[KindSales], indexes[KindReinstatements], indexes[KindLapses])
	metrics := Metrics{
		Sales:          Align(indexes[KindSales], axis),
		Reinstatements: Align(indexes[KindReinstatements], axis),
		Lapses:         Align(indexes[KindLapses], axis),
	}

	policyCount, err := Add(metrics.Sales, metrics.Reinstatements)
	if err != nil {
		return nil, err
	}

	return &Report{
		Axis:        axis,
		Indexes:     indexes,
		Metrics:     metrics,
		PolicyCount: policyCount,
		Changes:     Deltas(policyCount),
		Diagnostics: diag,
	}, nil
}

// Payload assembles the policy-count-by-month contract.
func (r *Report) Payload() (ReportPayload, error) {
	return Assemble(r.Axis, r.Metrics, r.PolicyCount, r.Changes, *r.Diagnostics)
}
