package models

// Store is a shared, deduplicated label for where an expense was made.
// Same shape and lifecycle as Category.
type Store struct {
	Base
	Title string `gorm:"uniqueIndex;not null" json:"title"`

	Expenses []Expense `gorm:"foreignKey:StoreID" json:"expenses,omitempty"`
}
