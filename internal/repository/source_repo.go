package repository

import (
	"context"
	"fmt"

	"dashboard/internal/model"

	"gorm.io/gorm"
)

// SourceRepository writes the tables the trend queries read from.
type SourceRepository interface {
	DeleteAll(ctx context.Context) error
	CreateMonthEnd(ctx context.Context, records []model.MonthEndRecord) error
	CreatePolicies(ctx context.Context, policies []model.PolicyMaster) error
}

type sourceRepository struct {
	db *gorm.DB
}

func NewSourceRepository(db *gorm.DB) SourceRepository {
	return &sourceRepository{db: db}
}

const insertBatchSize = 500

func (r *sourceRepository) DeleteAll(ctx context.Context) error {
	db := GetDB(ctx, r.db).Session(&gorm.Session{AllowGlobalUpdate: true})
	if err := db.Delete(&model.MonthEndRecord{}).Error; err != nil {
		return fmt.Errorf("failed to clear month-end records: %w", err)
	}
	if err := db.Delete(&model.PolicyMaster{}).Error; err != nil {
		return fmt.Errorf("failed to clear policies: %w", err)
	}
	return nil
}

func (r *sourceRepository) CreateMonthEnd(ctx context.Context, records []model.MonthEndRecord) error {
	if len(records) == 0 {
		return nil
	}
	if err := GetDB(ctx, r.db).CreateInBatches(records, insertBatchSize).Error; err != nil {
		return fmt.Errorf("failed to insert month-end records: %w", err)
	}
	return nil
}

func (r *sourceRepository) CreatePolicies(ctx context.Context, policies []model.PolicyMaster) error {
	if len(policies) == 0 {
		return nil
	}
	if err := GetDB(ctx, r.db).CreateInBatches(policies, insertBatchSize).Error; err != nil {
		return fmt.Errorf("failed to insert policies: %w", err)
	}
	return nil
}
