package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sorryduck/budget-manager-backend/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password, unique username,
// and zero budget.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithBudget(t, db, decimal.Zero)
}

// CreateTestUserWithBudget creates a user with the given starting budget.
func CreateTestUserWithBudget(t *testing.T, db *gorm.DB, budget decimal.Decimal) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: fmt.Sprintf("user%d", nextID()),
		Password: string(hash),
		Budget:   budget,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a category with the given title.
func CreateTestCategory(t *testing.T, db *gorm.DB, title string) *models.Category {
	t.Helper()

	category := &models.Category{Title: title}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestStore creates a store with the given title.
func CreateTestStore(t *testing.T, db *gorm.DB, title string) *models.Store {
	t.Helper()

	store := &models.Store{Title: title}
	if err := db.Create(store).Error; err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	return store
}

// CreateTestExpense creates an expense with the given price and optional
// category/store references.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID uint, title string, price decimal.Decimal, categoryID, storeID *uint) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:     userID,
		Date:       time.Now(),
		Title:      title,
		Price:      price,
		CategoryID: categoryID,
		StoreID:    storeID,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}
