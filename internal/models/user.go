package models

import "time"

// Plan values carried on User. Only FREE is assigned by the server;
// the paid plans come from manual upgrades.
const (
	PlanFree    = "FREE"
	PlanPremium = "PREMIUM"
	PlanFamily  = "FAMILY"
)

// User is a Telegram account that opened the mini app at least once.
// The primary key is the numeric Telegram user id.
type User struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:128" json:"firstName"`
	LastName  string    `gorm:"size:128" json:"lastName,omitempty"`
	Username  string    `gorm:"size:64;index" json:"username,omitempty"`
	PhotoURL  string    `gorm:"size:512" json:"photoUrl,omitempty"`
	Plan      string    `gorm:"size:16;not null;default:FREE" json:"plan"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`

	Profile Profile `gorm:"constraint:OnDelete:CASCADE" json:"profile"`
}
