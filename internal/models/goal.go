package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a savings target the user tops up manually.
type Goal struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserID        int64           `gorm:"index;not null" json:"userId"`
	Name          string          `gorm:"size:120;not null" json:"name"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"targetAmount"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"currentAmount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}
