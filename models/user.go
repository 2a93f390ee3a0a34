package models

import "time"

// Roles assigned to accounts. A user holds exactly one.
const (
	RoleAdmin       = "ADMIN"
	RoleUser        = "USER"
	RoleSuperMember = "SUPER_MEMBER"
)

// User is an application account (not a church member record).
// The three notify flags drive the notification fan-out.
type User struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	CreatedAt          time.Time `json:"-"`
	UpdatedAt          time.Time `json:"-"`
	Email              string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	FullName           string    `gorm:"size:255" json:"fullName"`
	Password           string    `gorm:"size:255;not null" json:"-"`
	Role               string    `gorm:"size:32;not null" json:"role"`
	NotifyNewMembers   bool      `gorm:"default:true" json:"notifyNewMembers"`
	NotifyTransactions bool      `gorm:"default:true" json:"notifyTransactions"`
	NotifyEvents       bool      `gorm:"default:true" json:"notifyEvents"`
}
