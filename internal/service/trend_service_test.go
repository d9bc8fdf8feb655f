package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"dashboard/internal/config"
	"dashboard/internal/repository"
	"dashboard/internal/trend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrendRepo struct {
	mu      sync.Mutex
	windows []repository.Window

	rows  func(kind trend.Kind, w repository.Window) []trend.Row
	errs  map[trend.Kind]error
	block map[trend.Kind]bool
}

func (f *fakeTrendRepo) fetch(ctx context.Context, kind trend.Kind, w repository.Window) ([]trend.Row, error) {
	f.mu.Lock()
	f.windows = append(f.windows, w)
	f.mu.Unlock()

	if f.block[kind] {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if err := f.errs[kind]; err != nil {
		return nil, err
	}
	if f.rows == nil {
		return nil, nil
	}
	return f.rows(kind, w), nil
}

func (f *fakeTrendRepo) FetchSales(ctx context.Context, w repository.Window) ([]trend.Row, error) {
	return f.fetch(ctx, trend.KindSales, w)
}

func (f *fakeTrendRepo) FetchReinstatements(ctx context.Context, w repository.Window) ([]trend.Row, error) {
	return f.fetch(ctx, trend.KindReinstatements, w)
}

func (f *fakeTrendRepo) FetchLapses(ctx context.Context, w repository.Window) ([]trend.Row, error) {
	return f.fetch(ctx, trend.KindLapses, w)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []string
	data   []interface{}
}

func (p *fakePublisher) Publish(event string, data interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	p.data = append(p.data, data)
}

var fixedNow = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

func newTestService(repo *fakeTrendRepo, pub Publisher, tolerate bool) *trendService {
	svc := NewTrendService(repo, pub, config.ReportConfig{
		DefaultMonths:         6,
		MaxMonths:             60,
		TolerateSourceFailure: tolerate,
	}).(*trendService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func staticRows(byKind map[trend.Kind][]trend.Row) func(trend.Kind, repository.Window) []trend.Row {
	return func(kind trend.Kind, _ repository.Window) []trend.Row { return byKind[kind] }
}

func TestGetPolicyCountByMonth_MergesMixedLabelsAndPublishes(t *testing.T) {
	repo := &fakeTrendRepo{rows: staticRows(map[trend.Kind][]trend.Row{
		trend.KindSales: {
			{Period: "2024-01", Product: "Life", Count: 10},
			{Period: "2024-02", Product: "Life", Count: 20},
		},
		trend.KindReinstatements: {
			{Period: "2024-02", Product: "Life", Count: 2},
		},
		trend.KindLapses: {
			{Period: "2024-1", Product: "Life", Status: "Auto-Lapse", Count: 4},
			{Period: "2024-3", Product: "Life", Status: "Cancelled", Count: 1},
		},
	})}
	pub := &fakePublisher{}
	svc := newTestService(repo, pub, false)

	got, err := svc.GetPolicyCountByMonth(context.Background(), TrendFilter{})
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-01", "2024-02", "2024-03"}, got.Periods)
	assert.Equal(t, trend.Series{10, 20, 0}, got.Sales)
	assert.Equal(t, trend.Series{4, 0, 1}, got.Lapses)
	assert.Equal(t, trend.Series{10, 22, 0}, got.PolicyCountByMonth)
	assert.Equal(t, trend.ChangeSeries{0, 120, -100}, got.MonthlyChanges)
	assert.Equal(t, int64(32), got.TotalPolicies)

	require.Equal(t, []string{EventTrendsRefreshed}, pub.events)
	event := pub.data[0].(RefreshedEvent)
	assert.Equal(t, 6, event.Months)
	assert.Equal(t, int64(32), event.TotalPolicies)
	assert.False(t, event.Degraded)
}

func TestReport_WindowCoversRequestedMonths(t *testing.T) {
	repo := &fakeTrendRepo{}
	svc := newTestService(repo, nil, false)

	_, err := svc.GetTrends(context.Background(), TrendFilter{Months: 3})
	require.NoError(t, err)

	require.Len(t, repo.windows, 3)
	for _, w := range repo.windows {
		assert.Equal(t, time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC), w.Start)
		assert.Equal(t, fixedNow, w.End)
	}
}

func TestReport_RejectsMonthsOutOfRange(t *testing.T) {
	svc := newTestService(&fakeTrendRepo{}, nil, false)

	_, err := svc.GetTrends(context.Background(), TrendFilter{Months: 61})
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = svc.GetTrends(context.Background(), TrendFilter{Months: -1})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestReport_StrictPolicyFailsAndCancelsSiblings(t *testing.T) {
	boom := errors.New("connection reset")
	repo := &fakeTrendRepo{
		errs:  map[trend.Kind]error{trend.KindLapses: boom},
		block: map[trend.Kind]bool{trend.KindSales: true, trend.KindReinstatements: true},
	}
	pub := &fakePublisher{}
	svc := newTestService(repo, pub, false)

	_, err := svc.GetPolicyCountByMonth(context.Background(), TrendFilter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, trend.ErrSourceUnavailable)
	assert.ErrorIs(t, err, boom)

	var srcErr *trend.SourceUnavailableError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, trend.KindLapses, srcErr.Kind)
	assert.Equal(t, trend.CauseSourceUnavailable, trend.Cause(err))
	assert.Empty(t, pub.events)
}

func TestReport_TolerantPolicyZeroFills(t *testing.T) {
	repo := &fakeTrendRepo{
		rows: staticRows(map[trend.Kind][]trend.Row{
			trend.KindSales: {{Period: "2024-05", Product: "Life", Count: 7}},
		}),
		errs: map[trend.Kind]error{trend.KindReinstatements: errors.New("timeout")},
	}
	pub := &fakePublisher{}
	svc := newTestService(repo, pub, true)

	got, err := svc.GetPolicyCountByMonth(context.Background(), TrendFilter{})
	require.NoError(t, err)

	assert.Equal(t, trend.Series{7}, got.Sales)
	assert.Equal(t, trend.Series{0}, got.Reinstatements)
	assert.Equal(t, []trend.Kind{trend.KindReinstatements}, got.Diagnostics.DegradedSources)
	require.Len(t, pub.data, 1)
	assert.True(t, pub.data[0].(RefreshedEvent).Degraded)
}

func TestGetPolicyCountYoY_FetchesShiftedWindow(t *testing.T) {
	repo := &fakeTrendRepo{rows: func(kind trend.Kind, w repository.Window) []trend.Row {
		if kind != trend.KindSales {
			return nil
		}
		if w.End.Year() == 2024 {
			return []trend.Row{{Period: "2024-04", Product: "Life", Count: 9}, {Period: "2024-05", Product: "Life", Count: 3}}
		}
		return []trend.Row{{Period: "2023-05", Product: "Life", Count: 5}}
	}}
	svc := newTestService(repo, nil, false)

	got, err := svc.GetPolicyCountYoY(context.Background(), TrendFilter{})
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-04", "2024-05"}, got.Periods)
	assert.Equal(t, trend.Series{9, 3}, got.SalesCurrent)
	assert.Equal(t, trend.Series{0, 5}, got.SalesPrevious)

	var shifted bool
	for _, w := range repo.windows {
		if w.End.Equal(fixedNow.AddDate(-1, 0, 0)) {
			shifted = true
		}
	}
	assert.True(t, shifted, "expected a query for the window one year earlier")
}

func TestGetLapseBreakdown_ReturnsOrderedEntries(t *testing.T) {
	repo := &fakeTrendRepo{rows: staticRows(map[trend.Kind][]trend.Row{
		trend.KindLapses: {
			{Period: "2024-4", Product: "Funeral", Status: "Cancelled", Count: 1},
			{Period: "2024-5", Product: "Life", Status: "Auto-Lapse", Count: 2},
			{Period: "2024-5", Product: "Funeral", Status: "Auto-Lapse", Count: 6},
		},
	})}
	svc := newTestService(repo, nil, false)

	entries, err := svc.GetLapseBreakdown(context.Background(), TrendFilter{})
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, "2024-05", entries[0].Period.String())
	assert.Equal(t, int64(6), entries[0].Count)
	assert.Equal(t, "Funeral", entries[0].Category.Product)
	assert.Equal(t, "2024-04", entries[2].Period.String())
}

func TestReport_MonthsBoundComesFromConfig(t *testing.T) {
	svc := newTestService(&fakeTrendRepo{}, nil, false)
	svc.cfg.MaxMonths = 120

	_, err := svc.GetTrends(context.Background(), TrendFilter{Months: 100})
	assert.NoError(t, err)

	svc.cfg.MaxMonths = 24
	_, err = svc.GetTrends(context.Background(), TrendFilter{Months: 30})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestBreakdown_QueriesOnlyItsOwnSource(t *testing.T) {
	repo := &fakeTrendRepo{
		rows: staticRows(map[trend.Kind][]trend.Row{
			trend.KindLapses:         {{Period: "2024-5", Product: "Life", Status: "Cancelled", Count: 2}},
			trend.KindReinstatements: {{Period: "2024-05", Product: "Life", Count: 4}},
		}),
		errs: map[trend.Kind]error{trend.KindSales: errors.New("sales view offline")},
	}
	svc := newTestService(repo, nil, false)

	lapses, err := svc.GetLapseBreakdown(context.Background(), TrendFilter{})
	require.NoError(t, err)
	require.Len(t, lapses, 1)
	assert.Equal(t, int64(2), lapses[0].Count)

	reinstatements, err := svc.GetReinstatementBreakdown(context.Background(), TrendFilter{})
	require.NoError(t, err)
	require.Len(t, reinstatements, 1)
	assert.Equal(t, int64(4), reinstatements[0].Count)

	assert.Len(t, repo.windows, 2, "each breakdown runs exactly one query")
}

func TestGetPolicyCountYoY_ReportsDegradedPreviousYear(t *testing.T) {
	repo := &fakeTrendRepo{}
	repo.rows = func(kind trend.Kind, w repository.Window) []trend.Row {
		if kind == trend.KindSales && w.End.Year() == 2024 {
			return []trend.Row{{Period: "2024-05", Product: "Life", Count: 3}}
		}
		return nil
	}
	svc := newTestService(repo, nil, true)
	prev := &failingWindowRepo{fakeTrendRepo: repo, failYear: 2023, kind: trend.KindSales}
	svc.repo = prev

	got, err := svc.GetPolicyCountYoY(context.Background(), TrendFilter{})
	require.NoError(t, err)

	assert.Equal(t, trend.Series{0}, got.SalesPrevious)
	assert.Empty(t, got.Diagnostics.Current.DegradedSources)
	assert.Equal(t, []trend.Kind{trend.KindSales}, got.Diagnostics.Previous.DegradedSources)
}

// failingWindowRepo fails one kind for windows ending in failYear.
type failingWindowRepo struct {
	*fakeTrendRepo
	failYear int
	kind     trend.Kind
}

func (r *failingWindowRepo) FetchSales(ctx context.Context, w repository.Window) ([]trend.Row, error) {
	if r.kind == trend.KindSales && w.End.Year() == r.failYear {
		return nil, errors.New("archive unavailable")
	}
	return r.fakeTrendRepo.FetchSales(ctx, w)
}
