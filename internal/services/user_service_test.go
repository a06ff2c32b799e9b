package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sorryduck/budget-manager-backend/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("alice", "password123", decimal.RequireFromString("500.00"))
		testutil.AssertNoError(t, err)

		if user.ID == 0 {
			t.Fatal("expected non-zero user ID")
		}
		if user.Username != "alice" {
			t.Errorf("expected username alice, got %s", user.Username)
		}
		testutil.AssertDecimalEqual(t, "500.00", user.Budget)
	})

	t.Run("hashes_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("bob", "password123", decimal.Zero)
		testutil.AssertNoError(t, err)

		if user.Password == "password123" {
			t.Error("password stored in plaintext")
		}
		if !svc.VerifyPassword(user, "password123") {
			t.Error("stored hash does not verify against original password")
		}
	})

	t.Run("duplicate_username", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("carol", "password123", decimal.Zero)
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("carol", "different456", decimal.Zero)
		testutil.AssertAppError(t, err, "DUPLICATE_USERNAME")
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("", "password123", decimal.Zero)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateUser("dave", "", decimal.Zero)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserByUsername(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		found, err := svc.GetUserByUsername(user.Username)
		testutil.AssertNoError(t, err)

		if found.ID != user.ID {
			t.Errorf("expected user ID %d, got %d", user.ID, found.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.GetUserByUsername("nobody")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestGetUserByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUserWithBudget(t, db, decimal.RequireFromString("42.50"))

		found, err := svc.GetUserByID(user.ID)
		testutil.AssertNoError(t, err)

		if found.Username != user.Username {
			t.Errorf("expected username %s, got %s", user.Username, found.Username)
		}
		testutil.AssertDecimalEqual(t, "42.50", found.Budget)
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.GetUserByID(9999)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestVerifyPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)
	user := testutil.CreateTestUser(t, db)

	if !svc.VerifyPassword(user, "password123") {
		t.Error("expected correct password to verify")
	}
	if svc.VerifyPassword(user, "wrong-password") {
		t.Error("expected wrong password to fail")
	}
}

func TestSetBudget(t *testing.T) {
	t.Run("overwrites_absolutely", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUserWithBudget(t, db, decimal.RequireFromString("100.00"))

		err := svc.SetBudget(user.ID, decimal.RequireFromString("250.75"))
		testutil.AssertNoError(t, err)

		fetched, err := svc.GetUserByID(user.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, "250.75", fetched.Budget)
	})

	t.Run("allows_negative", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.SetBudget(user.ID, decimal.RequireFromString("-10.00"))
		testutil.AssertNoError(t, err)

		fetched, err := svc.GetUserByID(user.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, "-10.00", fetched.Budget)
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		err := svc.SetBudget(9999, decimal.RequireFromString("50.00"))
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
