package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sorryduck/budget-manager-backend/internal/handlers"
	"github.com/sorryduck/budget-manager-backend/internal/logger"
	"github.com/sorryduck/budget-manager-backend/internal/middleware"
	"github.com/sorryduck/budget-manager-backend/internal/models"
	"github.com/sorryduck/budget-manager-backend/internal/services"
	"github.com/sorryduck/budget-manager-backend/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Category{},
		&models.Store{},
		&models.Expense{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	expenseService := services.NewExpenseService(db)
	statsService := services.NewStatsService(db)
	auditService := services.NewAuditService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	tableHandler := handlers.NewTableHandler(expenseService, userService, auditService)
	userHandler := handlers.NewUserHandler(userService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Router mirrors the production layout.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	router.POST("/api-token-auth/", authHandler.TokenAuth)

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/table-data/", tableHandler.GetTableData)
	protected.POST("/table-data/", tableHandler.CreateExpense)
	protected.PUT("/table-data/", tableHandler.UpdateExpense)
	protected.PATCH("/table-data/", tableHandler.PatchBudget)
	protected.DELETE("/table-data/", tableHandler.DeleteExpense)

	protected.GET("/user-data/", userHandler.GetUserData)
	protected.GET("/stats-data/", statsHandler.GetStatsData)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user with a starting budget and returns the
// token and user ID.
func (app *testApp) registerUser(t *testing.T, username, password string, budget float64) (token string, userID float64) {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":%q,"budget":%g}`, username, password, budget)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(float64)
}

// obtainToken exchanges credentials for an API token.
func (app *testApp) obtainToken(t *testing.T, username, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	rec := app.request("POST", "/api-token-auth/", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("token auth failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["token"].(string)
}

// createExpense posts an expense and returns its ID.
func (app *testApp) createExpense(t *testing.T, token, title, price, category, store string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"title":%q,"price":%s,"category":{"title":%q},"store":{"title":%q}}`,
		title, price, category, store)
	rec := app.request("POST", "/api/v1/table-data/", body, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("create expense failed: %d %s", rec.Code, rec.Body.String())
	}
	expense := parseJSON(t, rec)["expense"].(map[string]interface{})
	return expense["id"].(float64)
}

// userBudget fetches the caller's current budget balance.
func (app *testApp) userBudget(t *testing.T, token string) float64 {
	t.Helper()
	rec := app.request("GET", "/api/v1/user-data/", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("user-data failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["budget"].(float64)
}
