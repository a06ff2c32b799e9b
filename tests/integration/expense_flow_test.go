package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestExpenseFlow_CreateReflectsInBudgetAndTable(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "alice", "password123", 100)

	expenseID := app.createExpense(t, token, "coffee", "3.50", "food", "cafe")
	if expenseID == 0 {
		t.Fatal("expected non-zero expense ID")
	}

	// Budget was debited by the price.
	if budget := app.userBudget(t, token); budget != 96.5 {
		t.Errorf("expected budget 96.5, got %g", budget)
	}

	// The expense shows up in the table with capitalized labels.
	rec := app.request("GET", "/api/v1/table-data/", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	content := result["content"].([]interface{})
	if len(content) != 1 {
		t.Fatalf("expected 1 expense in table, got %d", len(content))
	}
	row := content[0].(map[string]interface{})
	if row["title"] != "Coffee" {
		t.Errorf("expected title Coffee, got %v", row["title"])
	}
	if row["category"].(map[string]interface{})["title"] != "Food" {
		t.Errorf("expected category Food, got %v", row["category"])
	}
	if row["store"].(map[string]interface{})["title"] != "Cafe" {
		t.Errorf("expected store Cafe, got %v", row["store"])
	}
	if result["pages"].(float64) != 1 {
		t.Errorf("expected 1 page, got %v", result["pages"])
	}
}

func TestExpenseFlow_CreateThenDeleteRestoresBudget(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "bob", "password123", 100)

	expenseID := app.createExpense(t, token, "coffee", "3.50", "food", "cafe")

	rec := app.request("DELETE", "/api/v1/table-data/",
		fmt.Sprintf(`{"id":%d}`, int(expenseID)), token)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}

	if budget := app.userBudget(t, token); budget != 100 {
		t.Errorf("expected budget restored to 100, got %g", budget)
	}

	rec = app.request("GET", "/api/v1/table-data/", "", token)
	result := parseJSON(t, rec)
	if content := result["content"].([]interface{}); len(content) != 0 {
		t.Errorf("expected empty table after delete, got %d rows", len(content))
	}
}

func TestExpenseFlow_UpdateRenamesSharedLabelWithoutBudgetChange(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "carol", "password123", 100)

	firstID := app.createExpense(t, token, "milk", "2.00", "groceries", "market")
	app.createExpense(t, token, "bread", "1.50", "groceries", "market")

	budgetBefore := app.userBudget(t, token)

	body := fmt.Sprintf(`{"id":%d,"title":"milk","price":2,"category":{"title":"food"},"store":{"title":"market"}}`, int(firstID))
	rec := app.request("PUT", "/api/v1/table-data/", body, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", rec.Code, rec.Body.String())
	}

	// The rename is global: the other expense now shows the new category too.
	rec = app.request("GET", "/api/v1/table-data/", "", token)
	result := parseJSON(t, rec)
	for _, raw := range result["content"].([]interface{}) {
		row := raw.(map[string]interface{})
		category := row["category"].(map[string]interface{})
		if category["title"] != "Food" {
			t.Errorf("expense %v: expected category Food, got %v", row["title"], category["title"])
		}
	}

	// Updates never touch the budget.
	if budgetAfter := app.userBudget(t, token); budgetAfter != budgetBefore {
		t.Errorf("expected budget unchanged at %g, got %g", budgetBefore, budgetAfter)
	}
}

func TestExpenseFlow_UpdateMissingExpense(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "dave", "password123", 100)

	rec := app.request("PUT", "/api/v1/table-data/",
		`{"id":9999,"title":"ghost","price":1,"category":{"title":"none"},"store":{"title":"none"}}`, token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	errObj := result["error"].(map[string]interface{})
	if errObj["code"] != "EXPENSE_NOT_FOUND" {
		t.Errorf("expected EXPENSE_NOT_FOUND, got %v", errObj["code"])
	}
}

func TestExpenseFlow_CannotTouchAnotherUsersExpense(t *testing.T) {
	app := setupApp(t)
	ownerToken, _ := app.registerUser(t, "owner", "password123", 100)
	otherToken, _ := app.registerUser(t, "other", "password123", 100)

	expenseID := app.createExpense(t, ownerToken, "coffee", "3.50", "food", "cafe")

	rec := app.request("DELETE", "/api/v1/table-data/",
		fmt.Sprintf(`{"id":%d}`, int(expenseID)), otherToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign expense, got %d", rec.Code)
	}

	// Owner's budget and table are untouched.
	if budget := app.userBudget(t, ownerToken); budget != 96.5 {
		t.Errorf("expected owner budget 96.5, got %g", budget)
	}
}

func TestExpenseFlow_PatchBudgetOverwrites(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "erin", "password123", 100)

	app.createExpense(t, token, "coffee", "3.50", "food", "cafe")

	// PATCH replaces the balance absolutely, regardless of past spending.
	rec := app.request("PATCH", "/api/v1/table-data/", `{"budget":250.75}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("patch failed: %d %s", rec.Code, rec.Body.String())
	}

	if budget := app.userBudget(t, token); budget != 250.75 {
		t.Errorf("expected budget 250.75, got %g", budget)
	}
}

func TestExpenseFlow_PaginationTenPerPage(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "frank", "password123", 1000)

	for i := 0; i < 15; i++ {
		app.createExpense(t, token, fmt.Sprintf("item %d", i), "1.00", "misc", "shop")
	}

	rec := app.request("GET", "/api/v1/table-data/", "", token)
	result := parseJSON(t, rec)
	if content := result["content"].([]interface{}); len(content) != 10 {
		t.Errorf("expected 10 rows on page 1, got %d", len(content))
	}
	if result["pages"].(float64) != 2 {
		t.Errorf("expected 2 pages, got %v", result["pages"])
	}

	rec = app.request("GET", "/api/v1/table-data/?page=2", "", token)
	result = parseJSON(t, rec)
	if content := result["content"].([]interface{}); len(content) != 5 {
		t.Errorf("expected 5 rows on page 2, got %d", len(content))
	}

	// Newest first: page 1 starts with the last created expense.
	rec = app.request("GET", "/api/v1/table-data/", "", token)
	result = parseJSON(t, rec)
	first := result["content"].([]interface{})[0].(map[string]interface{})
	if first["title"] != "Item 14" {
		t.Errorf("expected newest expense first, got %v", first["title"])
	}
}

func TestExpenseFlow_LabelsSharedAcrossCase(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "grace", "password123", 100)

	app.createExpense(t, token, "milk", "2.00", "groceries", "market")
	app.createExpense(t, token, "MILK", "2.00", "GROCERIES", "Market")

	rec := app.request("GET", "/api/v1/table-data/", "", token)
	result := parseJSON(t, rec)
	categories := result["categories"].([]interface{})
	if len(categories) != 1 {
		t.Fatalf("expected 1 distinct category, got %d", len(categories))
	}
	if categories[0].(map[string]interface{})["title"] != "Groceries" {
		t.Errorf("expected category Groceries, got %v", categories[0])
	}
	stores := result["stores"].([]interface{})
	if len(stores) != 1 {
		t.Errorf("expected 1 distinct store, got %d", len(stores))
	}
}
