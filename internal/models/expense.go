package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spending record. Category and store references are
// weak: deleting either label row nulls the reference, while deleting the
// owning user cascades to the expense.
type Expense struct {
	Base
	UserID     uint            `gorm:"not null;index" json:"user_id"`
	Date       time.Time       `gorm:"type:date;not null" json:"date"`
	Title      string          `gorm:"not null" json:"title"`
	Price      decimal.Decimal `gorm:"type:numeric(16,2);not null" json:"price"`
	CategoryID *uint           `json:"category_id,omitempty"`
	StoreID    *uint           `json:"store_id,omitempty"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Store    *Store    `gorm:"foreignKey:StoreID;constraint:OnDelete:SET NULL" json:"store,omitempty"`
}
