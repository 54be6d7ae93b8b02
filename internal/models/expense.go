package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single spending record. Rows are append-only: nothing is
// ever updated after creation, deletion only sets DeletedAt, so historical
// aggregates stay recomputable.
type Expense struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    int64           `gorm:"index;not null" json:"userId"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	Category  string          `gorm:"size:32;index;not null" json:"category"`
	Note      string          `gorm:"size:255" json:"note,omitempty"`
	SpentAt   time.Time       `gorm:"index;not null" json:"spentAt"`
	CreatedAt time.Time       `json:"createdAt"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}
