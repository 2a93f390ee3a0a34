package models

import "time"

// Transaction types and accounts. Amounts are stored unsigned, the sign
// is implied by the type.
const (
	TypeIncome  = "INCOME"
	TypeExpense = "EXPENSE"

	AccountCaisse = "CAISSE"
	AccountBanque = "BANQUE"
)

// Transaction is a treasury entry. Immutable once created: there is no
// update or delete endpoint.
type Transaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"-"`
	Date        DateOnly  `gorm:"not null;index" json:"date"`
	Category    string    `gorm:"size:255;not null" json:"category"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Type        string    `gorm:"size:16;not null;index" json:"type"`
	Account     string    `gorm:"size:16;not null" json:"account"`
	Description string    `gorm:"size:512" json:"description"`
	Reference   string    `gorm:"size:255" json:"reference"`
	AddedBy     string    `gorm:"size:255" json:"addedBy"`
}
