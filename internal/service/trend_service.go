package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"dashboard/internal/config"
	"dashboard/internal/middleware"
	"dashboard/internal/repository"
	"dashboard/internal/trend"

	"golang.org/x/sync/errgroup"
)

// EventTrendsRefreshed is published after every policy-count report.
const EventTrendsRefreshed = "trends.refreshed"

// ErrInvalidFilter is returned for a reporting window outside the allowed range.
var ErrInvalidFilter = errors.New("invalid filter")

// --- DTOs ---

type TrendFilter struct {
	Months int // 0 means the configured default
}

// RefreshedEvent is the payload of EventTrendsRefreshed.
type RefreshedEvent struct {
	Months        int      `json:"months"`
	Periods       []string `json:"periods"`
	TotalPolicies int64    `json:"total_policies"`
	Degraded      bool     `json:"degraded"`
}

// Publisher pushes events to connected dashboards.
type Publisher interface {
	Publish(event string, data interface{})
}

// --- Interface ---

type TrendService interface {
	GetTrends(ctx context.Context, filter TrendFilter) (trend.TrendsPayload, error)
	GetPolicyCountByMonth(ctx context.Context, filter TrendFilter) (trend.ReportPayload, error)
	GetPolicyCountYoY(ctx context.Context, filter TrendFilter) (trend.YoYPayload, error)
	GetReinstatementBreakdown(ctx context.Context, filter TrendFilter) ([]trend.BreakdownEntry, error)
	GetLapseBreakdown(ctx context.Context, filter TrendFilter) ([]trend.BreakdownEntry, error)
}

type trendService struct {
	repo      repository.TrendRepository
	publisher Publisher
	cfg       config.ReportConfig
	policy    trend.SourcePolicy
	now       func() time.Time
}

func NewTrendService(repo repository.TrendRepository, publisher Publisher, cfg config.ReportConfig) TrendService {
	policy := trend.FailOnSourceError
	if cfg.TolerateSourceFailure {
		policy = trend.ZeroFillOnSourceError
	}
	return &trendService{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
		policy:    policy,
		now:       time.Now,
	}
}

// --- Implementation ---

func (s *trendService) GetTrends(ctx context.Context, filter TrendFilter) (trend.TrendsPayload, error) {
	report, err := s.report(ctx, filter, 0)
	if err != nil {
		return trend.TrendsPayload{}, err
	}
	return report.Trends(), nil
}

func (s *trendService) GetPolicyCountByMonth(ctx context.Context, filter TrendFilter) (trend.ReportPayload, error) {
	report, err := s.report(ctx, filter, 0)
	if err != nil {
		return trend.ReportPayload{}, err
	}

	payload, err := report.Payload()
	if err != nil {
		return trend.ReportPayload{}, fmt.Errorf("failed to assemble policy count report: %w", err)
	}

	if s.publisher != nil {
		s.publisher.Publish(EventTrendsRefreshed, RefreshedEvent{
			Months:        s.months(filter),
			Periods:       payload.Periods,
			TotalPolicies: payload.TotalPolicies,
			Degraded:      len(payload.Diagnostics.DegradedSources) > 0,
		})
	}
	return payload, nil
}

func (s *trendService) GetPolicyCountYoY(ctx context.Context, filter TrendFilter) (trend.YoYPayload, error) {
	var current, previous *trend.Report

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.report(gctx, filter, 0)
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = s.report(gctx, filter, -12)
		return err
	})
	if err := g.Wait(); err != nil {
		return trend.YoYPayload{}, err
	}

	return trend.YearOverYear(current, previous), nil
}

func (s *trendService) GetReinstatementBreakdown(ctx context.Context, filter TrendFilter) ([]trend.BreakdownEntry, error) {
	return s.breakdown(ctx, filter, trend.KindReinstatements)
}

func (s *trendService) GetLapseBreakdown(ctx context.Context, filter TrendFilter) ([]trend.BreakdownEntry, error) {
	return s.breakdown(ctx, filter, trend.KindLapses)
}

// breakdown queries only the source of kind, so a failing sibling source
// never affects it.
func (s *trendService) breakdown(ctx context.Context, filter TrendFilter, kind trend.Kind) ([]trend.BreakdownEntry, error) {
	report, err := s.report(ctx, filter, 0, kind)
	if err != nil {
		return nil, err
	}
	return report.Entries(kind), nil
}

func (s *trendService) months(filter TrendFilter) int {
	if filter.Months == 0 {
		return s.cfg.DefaultMonths
	}
	return filter.Months
}

// window is [now - months, now], shifted by shift months.
func (s *trendService) window(filter TrendFilter, shift int) (repository.Window, error) {
	months := s.months(filter)
	if months < 1 || months > s.cfg.MaxMonths {
		return repository.Window{}, fmt.Errorf("%w: months must be between 1 and %d, got %d", ErrInvalidFilter, s.cfg.MaxMonths, months)
	}
	now := s.now()
	w := repository.Window{Start: now.AddDate(0, -months, 0), End: now}
	return w.Shift(shift), nil
}

// report builds a report over the window shifted by shift months. Only the
// given kinds are queried; with none given all three are.
func (s *trendService) report(ctx context.Context, filter TrendFilter, shift int, kinds ...trend.Kind) (*trend.Report, error) {
	window, err := s.window(filter, shift)
	if err != nil {
		return nil, err
	}
	if len(kinds) == 0 {
		kinds = allKinds
	}

	src, err := s.fetch(ctx, window, kinds)
	if err != nil {
		log.Printf("[%s] trend report failed: %v", middleware.RequestIDFrom(ctx), err)
		return nil, err
	}

	report, err := trend.Build(src, s.policy)
	if err != nil {
		return nil, fmt.Errorf("failed to build trend report: %w", err)
	}

	if diag := report.Diagnostics; !diag.Clean() {
		log.Printf("[%s] trend report %s..%s: %d malformed periods, %d negative counts, degraded sources %v",
			middleware.RequestIDFrom(ctx),
			window.Start.Format(time.DateOnly), window.End.Format(time.DateOnly),
			diag.MalformedPeriods, diag.NegativeCounts, diag.DegradedSources)
	}
	return report, nil
}

var allKinds = []trend.Kind{trend.KindSales, trend.KindReinstatements, trend.KindLapses}

// fetch runs the source queries of kinds concurrently. Under FailOnSourceError
// the first failure cancels the other queries.
func (s *trendService) fetch(ctx context.Context, window repository.Window, kinds []trend.Kind) (trend.Sources, error) {
	var src trend.Sources

	g, gctx := errgroup.WithContext(ctx)
	for _, kind := range kinds {
		query, dst := s.source(kind, &src)
		g.Go(func() error {
			rows, err := query(gctx, window)
			if err == nil {
				dst.Rows = rows
				return nil
			}
			dst.Err = err
			if s.policy == trend.FailOnSourceError {
				return &trend.SourceUnavailableError{Kind: kind, Err: err}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return trend.Sources{}, err
	}
	return src, nil
}

// source returns the query for kind and the slot of src its result goes to.
func (s *trendService) source(kind trend.Kind, src *trend.Sources) (func(context.Context, repository.Window) ([]trend.Row, error), *trend.Source) {
	switch kind {
	case trend.KindReinstatements:
		return s.repo.FetchReinstatements, &src.Reinstatements
	case trend.KindLapses:
		return s.repo.FetchLapses, &src.Lapses
	default:
		return s.repo.FetchSales, &src.Sales
	}
}
