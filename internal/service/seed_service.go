package service

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"dashboard/internal/model"
	"dashboard/internal/repository"
)

// --- DTOs ---

type SeedData struct {
	MonthEnd []model.MonthEndRecord
	Policies []model.PolicyMaster
}

type SeedSummary struct {
	Months          int `json:"months"`
	MonthEndRecords int `json:"month_end_records"`
	Policies        int `json:"policies"`
}

type productCategory struct {
	ID          int
	Description string
}

// Categories 8 and 11 are excluded from lapse reporting by default and are
// seeded so that the exclusion is visible.
var seedCategories = []productCategory{
	{1, "Life Cover"},
	{2, "Funeral Plan"},
	{3, "Hospital Cash"},
	{5, "Accident Cover"},
	{8, "Staff Scheme"},
	{11, "Legacy Book"},
}

// --- Interface ---

type SeedService interface {
	Seed(ctx context.Context, months int) (SeedSummary, error)
}

type seedService struct {
	sourceRepo repository.SourceRepository
	txManager  repository.TransactionManager
	now        func() time.Time
	rng        *rand.Rand
}

func NewSeedService(sourceRepo repository.SourceRepository, txManager repository.TransactionManager) SeedService {
	return &seedService{
		sourceRepo: sourceRepo,
		txManager:  txManager,
		now:        time.Now,
		rng:        rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 42)),
	}
}

// --- Implementation ---

// Seed replaces the source tables with months of generated data in one transaction.
func (s *seedService) Seed(ctx context.Context, months int) (SeedSummary, error) {
	if months < 1 {
		return SeedSummary{}, fmt.Errorf("%w: months must be positive, got %d", ErrInvalidFilter, months)
	}
	data := GenerateSeed(months, s.now(), s.rng)

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.sourceRepo.DeleteAll(txCtx); err != nil {
			return err
		}
		if err := s.sourceRepo.CreateMonthEnd(txCtx, data.MonthEnd); err != nil {
			return err
		}
		return s.sourceRepo.CreatePolicies(txCtx, data.Policies)
	})
	if err != nil {
		return SeedSummary{}, fmt.Errorf("failed to seed source tables: %w", err)
	}

	summary := SeedSummary{Months: months, MonthEndRecords: len(data.MonthEnd), Policies: len(data.Policies)}
	log.Printf("Seeded %d month-end records and %d policies over %d months", summary.MonthEndRecords, summary.Policies, months)
	return summary, nil
}

// GenerateSeed builds months of month-end runs ending at now, plus the policy
// rows whose lapses those runs report. The same rng seed yields the same data.
func GenerateSeed(months int, now time.Time, rng *rand.Rand) SeedData {
	var data SeedData
	policyNo := 0
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	for m := 0; m < months; m++ {
		monthStart := first.AddDate(0, m, 0)
		runDate := monthStart.AddDate(0, 1, -1) // last day of the month

		for _, cat := range seedCategories {
			sales := int64(20 + rng.IntN(181))
			lapses := int64(rng.IntN(25))
			var reinstatements int64
			if rng.Float64() < 0.6 {
				reinstatements = int64(1 + rng.IntN(12))
			}

			data.MonthEnd = append(data.MonthEnd, model.MonthEndRecord{
				RunDate:                    runDate,
				ProductCategoryID:          cat.ID,
				ProductCategoryDescription: cat.Description,
				Sales:                      sales,
				Lapses:                     lapses,
				Reinstatements:             reinstatements,
			})

			for i := int64(0); i < lapses; i++ {
				policyNo++
				statusDate := monthStart.AddDate(0, 0, rng.IntN(28))
				status := model.PolicyStatusAutoLapse
				if rng.Float64() < 0.3 {
					status = model.PolicyStatusCancelled
				}
				data.Policies = append(data.Policies, model.PolicyMaster{
					PolicyNumber:               fmt.Sprintf("POL-%07d", policyNo),
					ProductCategoryID:          cat.ID,
					ProductCategoryDescription: cat.Description,
					Status:                     status,
					StatusDate:                 &statusDate,
				})
			}
		}
	}

	// Active policies never show up as lapses.
	for i := 0; i < len(seedCategories)*3; i++ {
		policyNo++
		cat := seedCategories[i%len(seedCategories)]
		data.Policies = append(data.Policies, model.PolicyMaster{
			PolicyNumber:               fmt.Sprintf("POL-%07d", policyNo),
			ProductCategoryID:          cat.ID,
			ProductCategoryDescription: cat.Description,
			Status:                     model.PolicyStatusActive,
		})
	}
	return data
}
