package model

import (
	"time"

	"github.com/google/uuid"
)

// MonthEndRecord is one product category's month-end run: how many policies
// were sold, lapsed and reinstated up to RunDate.
type MonthEndRecord struct {
	ID                         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RunDate                    time.Time `gorm:"type:date;not null;index" json:"run_date"`
	ProductCategoryID          int       `gorm:"type:int;not null;index" json:"product_category_id"`
	ProductCategoryDescription string    `gorm:"type:varchar(255);not null" json:"product_category_description"`
	Sales                      int64     `gorm:"type:bigint;not null;default:0" json:"sales"`
	Lapses                     int64     `gorm:"type:bigint;not null;default:0" json:"lapses"`
	Reinstatements             int64     `gorm:"type:bigint;not null;default:0" json:"reinstatements"`
	CreatedAt                  time.Time `json:"created_at"`
}

// TableName keeps the name the reporting view has always had.
func (MonthEndRecord) TableName() string {
	return "dashboard_month_end"
}
