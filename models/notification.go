package models

import "time"

// Notification categories. Each maps to one opt-in flag on User.
const (
	NotifMember  = "MEMBER"
	NotifFinance = "FINANCE"
	NotifEvent   = "EVENT"
)

// Notification is a per-recipient row produced by the fan-out. Only the
// Read flag is ever mutated after creation.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Message   string    `gorm:"size:512" json:"message"`
	Type      string    `gorm:"size:16;not null" json:"type"`
	Read      bool      `gorm:"default:false" json:"read"`
}
