package repository

import (
	"context"
	"fmt"
	"time"

	"dashboard/internal/model"
	"dashboard/internal/trend"

	"gorm.io/gorm"
)

// Window bounds a reporting query, both ends inclusive.
type Window struct {
	Start time.Time
	End   time.Time
}

// Shift moves both ends by months calendar months.
func (w Window) Shift(months int) Window {
	return Window{Start: w.Start.AddDate(0, months, 0), End: w.End.AddDate(0, months, 0)}
}

type trendRow struct {
	Period  string `gorm:"column:period"`
	Product string `gorm:"column:product"`
	Status  string `gorm:"column:status"`
	Count   int64  `gorm:"column:count"`
}

// LapseFilter selects which policies count as lapsed.
type LapseFilter struct {
	Statuses                  []string
	ExcludedProductCategories []int
}

// TrendRepository runs the three independent source queries of a trend report.
// Each query returns raw rows; period labels are not normalized here.
type TrendRepository interface {
	FetchSales(ctx context.Context, window Window) ([]trend.Row, error)
	FetchReinstatements(ctx context.Context, window Window) ([]trend.Row, error)
	FetchLapses(ctx context.Context, window Window) ([]trend.Row, error)
}

type trendRepository struct {
	db     *gorm.DB
	lapses LapseFilter
}

func NewTrendRepository(db *gorm.DB, lapses LapseFilter) TrendRepository {
	return &trendRepository{db: db, lapses: lapses}
}

func (r *trendRepository) FetchSales(ctx context.Context, window Window) ([]trend.Row, error) {
	var rows []trendRow
	if err := r.salesQuery(GetDB(ctx, r.db), window).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	return toTrendRows(rows), nil
}

func (r *trendRepository) FetchReinstatements(ctx context.Context, window Window) ([]trend.Row, error) {
	var rows []trendRow
	if err := r.reinstatementsQuery(GetDB(ctx, r.db), window).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query reinstatements: %w", err)
	}
	return toTrendRows(rows), nil
}

func (r *trendRepository) FetchLapses(ctx context.Context, window Window) ([]trend.Row, error) {
	var rows []trendRow
	if err := r.lapsesQuery(GetDB(ctx, r.db), window).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query lapses: %w", err)
	}
	return toTrendRows(rows), nil
}

const monthEndPeriod = "TO_CHAR(run_date, 'YYYY-MM')"

func (r *trendRepository) salesQuery(db *gorm.DB, window Window) *gorm.DB {
	return db.Model(&model.MonthEndRecord{}).
		Select(monthEndPeriod+" AS period, product_category_description AS product, COALESCE(SUM(sales), 0) AS count").
		Where("run_date >= ? AND run_date <= ?", window.Start, window.End).
		Group(monthEndPeriod + ", product_category_description").
		Order("period")
}

func (r *trendRepository) reinstatementsQuery(db *gorm.DB, window Window) *gorm.DB {
	return db.Model(&model.MonthEndRecord{}).
		Select(monthEndPeriod+" AS period, product_category_description AS product, COALESCE(SUM(reinstatements), 0) AS count").
		Where("run_date >= ? AND run_date <= ?", window.Start, window.End).
		Where("reinstatements > 0").
		Group(monthEndPeriod + ", product_category_description").
		Order("period")
}

// Lapse months are labelled without zero padding ("2024-3"); the engine
// normalizes them against the padded month-end labels.
const lapsePeriod = "CONCAT(EXTRACT(YEAR FROM status_date)::int, '-', EXTRACT(MONTH FROM status_date)::int)"

func (r *trendRepository) lapsesQuery(db *gorm.DB, window Window) *gorm.DB {
	query := db.Model(&model.PolicyMaster{}).
		Select(lapsePeriod+" AS period, product_category_description AS product, status, COUNT(DISTINCT id) AS count").
		Where("status IN ?", r.lapses.Statuses).
		Where("status_date >= ? AND status_date <= ?", window.Start, window.End)
	if len(r.lapses.ExcludedProductCategories) > 0 {
		query = query.Where("product_category_id NOT IN ?", r.lapses.ExcludedProductCategories)
	}
	return query.Group(lapsePeriod + ", product_category_description, status")
}

func toTrendRows(rows []trendRow) []trend.Row {
	out := make([]trend.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, trend.Row{Period: r.Period, Product: r.Product, Status: r.Status, Count: r.Count})
	}
	return out
}
