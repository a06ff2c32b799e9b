package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/sorryduck/budget-manager-backend/internal/errors"
	"github.com/sorryduck/budget-manager-backend/internal/models"
	"github.com/sorryduck/budget-manager-backend/internal/pagination"
	"github.com/sorryduck/budget-manager-backend/internal/services"
)

// TableHandler handles the expense table endpoints: the paginated listing
// and the create/update/delete/budget mutations behind it.
type TableHandler struct {
	expenseService services.ExpenseServicer
	userService    services.UserServicer
	auditService   services.AuditServicer
}

// NewTableHandler creates a new TableHandler.
func NewTableHandler(expenseService services.ExpenseServicer, userService services.UserServicer, auditService services.AuditServicer) *TableHandler {
	return &TableHandler{
		expenseService: expenseService,
		userService:    userService,
		auditService:   auditService,
	}
}

// LabelPayload references a category or store by title.
type LabelPayload struct {
	Title string `json:"title" binding:"required,max=255"`
}

// ExpenseRow represents one expense in the table response
type ExpenseRow struct {
	ID       uint            `json:"id"`
	Date     string          `json:"date"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Category *LabelPayload   `json:"category"`
	Store    *LabelPayload   `json:"store"`
}

// TableDataResponse is the paginated expense table payload
type TableDataResponse struct {
	Content    []ExpenseRow   `json:"content"`
	Categories []LabelPayload `json:"categories"`
	Stores     []LabelPayload `json:"stores"`
	Pages      int            `json:"pages"`
}

func toExpenseRow(e *models.Expense) ExpenseRow {
	row := ExpenseRow{
		ID:    e.ID,
		Date:  e.Date.Format(dateLayout),
		Title: e.Title,
		Price: e.Price,
	}
	if e.Category != nil {
		row.Category = &LabelPayload{Title: e.Category.Title}
	}
	if e.Store != nil {
		row.Store = &LabelPayload{Title: e.Store.Title}
	}
	return row
}

// GetTableData handles the paginated expense listing
// @Summary     Get expense table data
// @Description Get one page of the user's expenses (newest first, 10 per page) with the distinct categories/stores on the page and the total page count
// @Tags        table-data
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number (default 1)"
// @Success     200 {object} TableDataResponse "Expense table page"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /table-data/ [get]
func (h *TableHandler) GetTableData(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	data, err := h.expenseService.GetTableData(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	content := make([]ExpenseRow, 0, len(data.Expenses))
	for i := range data.Expenses {
		content = append(content, toExpenseRow(&data.Expenses[i]))
	}
	categories := make([]LabelPayload, 0, len(data.Categories))
	for i := range data.Categories {
		categories = append(categories, LabelPayload{Title: data.Categories[i].Title})
	}
	stores := make([]LabelPayload, 0, len(data.Stores))
	for i := range data.Stores {
		stores = append(stores, LabelPayload{Title: data.Stores[i].Title})
	}

	c.JSON(http.StatusOK, TableDataResponse{
		Content:    content,
		Categories: categories,
		Stores:     stores,
		Pages:      data.Pages,
	})
}

// CreateExpenseRequest represents the request payload for creating an expense
type CreateExpenseRequest struct {
	Title    string          `json:"title" binding:"required,max=255"`
	Date     *string         `json:"date"`
	Price    decimal.Decimal `json:"price" binding:"required,gt=0"`
	Category LabelPayload    `json:"category" binding:"required"`
	Store    LabelPayload    `json:"store" binding:"required"`
}

// CreateExpense handles the creation of a new expense
// @Summary     Create an expense
// @Description Create a new expense and decrement the user's budget by its price
// @Tags        table-data
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     200 {object} ExpenseRow "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /table-data/ [post]
func (h *TableHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var expenseDate time.Time
	if req.Date != nil && *req.Date != "" {
		parsed, parseErr := parseDate(*req.Date)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		expenseDate = parsed
	}

	expense, err := h.expenseService.CreateExpense(userID, req.Title, expenseDate, req.Price, req.Category.Title, req.Store.Title)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_EXPENSE", "expense", expense.ID, c.ClientIP(),
		map[string]interface{}{"title": expense.Title, "price": expense.Price.String()})

	c.JSON(http.StatusOK, gin.H{"expense": toExpenseRow(expense)})
}

// UpdateExpenseRequest represents the request payload for updating an expense
type UpdateExpenseRequest struct {
	ID       uint            `json:"id" binding:"required"`
	Title    string          `json:"title" binding:"required,max=255"`
	Date     *string         `json:"date"`
	Price    decimal.Decimal `json:"price" binding:"required,gt=0"`
	Category LabelPayload    `json:"category" binding:"required"`
	Store    LabelPayload    `json:"store" binding:"required"`
}

// UpdateExpense handles updating an existing expense
// @Summary     Update an expense
// @Description Replace an expense's fields and rename its linked category/store labels in place. The budget is not adjusted.
// @Tags        table-data
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateExpenseRequest true "Replacement fields"
// @Success     200 {object} ExpenseRow "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /table-data/ [put]
func (h *TableHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	fields := services.ExpenseUpdateFields{
		Title:         req.Title,
		Price:         req.Price,
		CategoryTitle: req.Category.Title,
		StoreTitle:    req.Store.Title,
	}
	if req.Date != nil && *req.Date != "" {
		parsed, parseErr := parseDate(*req.Date)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		fields.Date = parsed
	}

	expense, err := h.expenseService.UpdateExpense(userID, req.ID, fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_EXPENSE", "expense", expense.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"expense": toExpenseRow(expense)})
}

// PatchBudgetRequest represents the request payload for overwriting the budget
type PatchBudgetRequest struct {
	Budget *decimal.Decimal `json:"budget"`
}

// PatchBudget handles the absolute budget overwrite
// @Summary     Set the budget
// @Description Overwrite the user's budget balance with an absolute value
// @Tags        table-data
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body PatchBudgetRequest true "New budget value"
// @Success     200 {object} MessageResponse "Budget updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /table-data/ [patch]
func (h *TableHandler) PatchBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PatchBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if req.Budget == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget is required"))
		return
	}

	if err := h.userService.SetBudget(userID, *req.Budget); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SET_BUDGET", "user", userID, c.ClientIP(),
		map[string]interface{}{"budget": req.Budget.String()})

	c.JSON(http.StatusOK, gin.H{"budget": *req.Budget})
}

// DeleteExpenseRequest represents the request payload for deleting an expense
type DeleteExpenseRequest struct {
	ID uint `json:"id" binding:"required"`
}

// DeleteExpense handles the deletion of an expense
// @Summary     Delete an expense
// @Description Delete an expense and credit its price back to the user's budget
// @Tags        table-data
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body DeleteExpenseRequest true "Expense ID"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /table-data/ [delete]
func (h *TableHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req DeleteExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.expenseService.DeleteExpense(userID, req.ID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_EXPENSE", "expense", req.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
