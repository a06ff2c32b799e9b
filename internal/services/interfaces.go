package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sorryduck/budget-manager-backend/internal/models"
	"github.com/sorryduck/budget-manager-backend/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, password string, budget decimal.Decimal) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	SetBudget(userID uint, budget decimal.Decimal) error
}

// TableData is the paginated expense table payload: one page of expenses,
// the distinct category and store labels appearing on that page, and the
// total page count over all of the user's expenses.
type TableData struct {
	Expenses   []models.Expense
	Categories []models.Category
	Stores     []models.Store
	Pages      int
}

// ExpenseUpdateFields carries the full replacement values for an expense update.
type ExpenseUpdateFields struct {
	Title         string
	Price         decimal.Decimal
	Date          time.Time
	CategoryTitle string
	StoreTitle    string
}

// ExpenseServicer defines the contract for expense-table business logic.
type ExpenseServicer interface {
	GetTableData(userID uint, page pagination.PageRequest) (*TableData, error)
	CreateExpense(userID uint, title string, date time.Time, price decimal.Decimal, categoryTitle, storeTitle string) (*models.Expense, error)
	UpdateExpense(userID, expenseID uint, fields ExpenseUpdateFields) (*models.Expense, error)
	DeleteExpense(userID, expenseID uint) error
}

// ChartData holds parallel label/value sequences for direct chart
// consumption. A nil label marks expenses without a category or store.
type ChartData struct {
	Labels []*string
	Values []decimal.Decimal
}

// Statistics bundles the three grouped spending aggregations.
type Statistics struct {
	ByCategory ChartData
	ByStore    ChartData
	ByTitle    ChartData
}

// StatsServicer defines the contract for spending statistics.
type StatsServicer interface {
	GetStatistics(userID uint) (*Statistics, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
