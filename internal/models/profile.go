package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile keeps the budget settings for one user. Exactly one row per
// user; created together with the User on first authenticated contact.
type Profile struct {
	ID            uint            `gorm:"primaryKey" json:"-"`
	UserID        int64           `gorm:"uniqueIndex;not null" json:"userId"`
	Currency      string          `gorm:"size:8;not null;default:RUB" json:"currency"`
	MonthlyIncome decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"monthlyIncome"`
	PaydayDay     int             `gorm:"not null;default:1" json:"paydayDay"` // day of month, 1..31
	CreatedAt     time.Time       `json:"-"`
	UpdatedAt     time.Time       `json:"-"`
}
