package testutil_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sorryduck/budget-manager-backend/internal/errors"
	"github.com/sorryduck/budget-manager-backend/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "categories", "stores", "expenses", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUserWithBudget(t, db, decimal.RequireFromString("100.00"))
	if user.ID == 0 {
		t.Fatal("user should have a non-zero ID")
	}
	testutil.AssertDecimalEqual(t, "100.00", user.Budget)

	category := testutil.CreateTestCategory(t, db, "Groceries")
	if category.Title != "Groceries" {
		t.Errorf("expected title Groceries, got %s", category.Title)
	}

	store := testutil.CreateTestStore(t, db, "Market")
	if store.ID == 0 {
		t.Fatal("store should have a non-zero ID")
	}

	expense := testutil.CreateTestExpense(t, db, user.ID, "Milk", decimal.RequireFromString("2.50"), &category.ID, &store.ID)
	if expense.UserID != user.ID {
		t.Errorf("expected expense owner %d, got %d", user.ID, expense.UserID)
	}
	testutil.AssertDecimalEqual(t, "2.50", expense.Price)
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrExpenseNotFound, "custom message")
	testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
