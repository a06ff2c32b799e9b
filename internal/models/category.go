package models

// Category is a shared, deduplicated expense label. Titles are stored
// capitalized and resolved by get-or-create, so "milk" and "Milk" map to
// the same row.
type Category struct {
	Base
	Title string `gorm:"uniqueIndex;not null" json:"title"`

	Expenses []Expense `gorm:"foreignKey:CategoryID" json:"expenses,omitempty"`
}
