package models

import "github.com/shopspring/decimal"

// User represents an application user. Budget is the current spendable
// balance; every expense create/delete moves it by the expense price.
type User struct {
	Base
	Username string          `gorm:"uniqueIndex;not null" json:"username"`
	Password string          `gorm:"not null" json:"-"`
	Budget   decimal.Decimal `gorm:"type:numeric(16,2);not null;default:0" json:"budget"`
	Expenses []Expense       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"expenses,omitempty"`
}
