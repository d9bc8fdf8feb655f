package model

import (
	"time"

	"github.com/google/uuid"
)

// Policy status values that end a policy.
const (
	PolicyStatusActive    = "Active"
	PolicyStatusAutoLapse = "Auto-Lapse"
	PolicyStatusCancelled = "Cancelled"
)

// PolicyMaster is the current state of a single policy. Lapse reporting counts
// policies by the month their StatusDate falls in.
type PolicyMaster struct {
	ID                         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PolicyNumber               string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"policy_number"`
	ProductCategoryID          int        `gorm:"type:int;not null;index" json:"product_category_id"`
	ProductCategoryDescription string     `gorm:"type:varchar(255);not null" json:"product_category_description"`
	Status                     string     `gorm:"type:varchar(30);not null;index" json:"status"`
	StatusDate                 *time.Time `gorm:"index" json:"status_date"` // Null until the status first changes
	CreatedAt                  time.Time  `json:"created_at"`
	UpdatedAt                  time.Time  `json:"updated_at"`
}
