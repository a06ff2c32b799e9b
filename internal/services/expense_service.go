package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "github.com/sorryduck/budget-manager-backend/internal/errors"
	"github.com/sorryduck/budget-manager-backend/internal/models"
	"github.com/sorryduck/budget-manager-backend/internal/pagination"
)

// expenseService handles expense-table business logic.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// GetTableData returns one page of the user's expenses, newest first,
// together with the distinct category/store labels appearing on that page
// and the total page count over all of the user's expenses.
func (s *expenseService) GetTableData(userID uint, page pagination.PageRequest) (*TableData, error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Expense{}).Where("user_id = ?", userID).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).
		Preload("Category").
		Preload("Store").
		Scopes(pagination.Paginate(page)).
		Order("id DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	data := &TableData{
		Expenses:   expenses,
		Categories: []models.Category{},
		Stores:     []models.Store{},
		Pages:      pagination.Pages(totalItems),
	}

	categoryIDs := make([]uint, 0, len(expenses))
	storeIDs := make([]uint, 0, len(expenses))
	for i := range expenses {
		if expenses[i].CategoryID != nil {
			categoryIDs = append(categoryIDs, *expenses[i].CategoryID)
		}
		if expenses[i].StoreID != nil {
			storeIDs = append(storeIDs, *expenses[i].StoreID)
		}
	}

	if len(categoryIDs) > 0 {
		if err := s.db.Where("id IN ?", categoryIDs).Find(&data.Categories).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	if len(storeIDs) > 0 {
		if err := s.db.Where("id IN ?", storeIDs).Find(&data.Stores).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return data, nil
}

// CreateExpense inserts a new expense and decrements the owner's budget by
// its price. Label rows are resolved by get-or-create on the normalized
// title. The insert and the budget offset commit or roll back together.
func (s *expenseService) CreateExpense(
	userID uint,
	title string,
	date time.Time,
	price decimal.Decimal,
	categoryTitle string,
	storeTitle string,
) (*models.Expense, error) {
	title = normalizeTitle(title)
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}
	if !price.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "price must be greater than zero")
	}
	if date.IsZero() {
		date = time.Now()
	}

	var expense *models.Expense
	var category *models.Category
	var store *models.Store
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		category, txErr = s.getOrCreateCategory(tx, categoryTitle)
		if txErr != nil {
			return txErr
		}
		store, txErr = s.getOrCreateStore(tx, storeTitle)
		if txErr != nil {
			return txErr
		}

		expense = &models.Expense{
			UserID:     userID,
			Date:       date,
			Title:      title,
			Price:      price,
			CategoryID: &category.ID,
			StoreID:    &store.ID,
		}
		if txErr := tx.Omit(clause.Associations).Create(expense).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}

		// Atomic SQL offset, not read-modify-write, so concurrent
		// mutations cannot lose updates.
		res := tx.Model(&models.User{}).Where("id = ?", userID).
			UpdateColumn("budget", gorm.Expr("budget - ?", price))
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	expense.Category = category
	expense.Store = store
	return expense, nil
}

// UpdateExpense replaces the expense's fields and renames its linked
// category/store rows in place. The rename is global: every expense
// referencing the label sees the new title. The budget is not touched.
func (s *expenseService) UpdateExpense(userID, expenseID uint, fields ExpenseUpdateFields) (*models.Expense, error) {
	title := normalizeTitle(fields.Title)
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}
	if !fields.Price.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "price must be greater than zero")
	}
	categoryTitle := normalizeTitle(fields.CategoryTitle)
	if categoryTitle == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category title is required")
	}
	storeTitle := normalizeTitle(fields.StoreTitle)
	if storeTitle == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "store title is required")
	}
	date := fields.Date
	if date.IsZero() {
		date = time.Now()
	}

	var expense models.Expense
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if txErr := tx.Preload("Category").Preload("Store").
			Where("id = ? AND user_id = ?", expenseID, userID).
			First(&expense).Error; txErr != nil {
			if errors.Is(txErr, gorm.ErrRecordNotFound) {
				return apperrors.ErrExpenseNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}

		updates := map[string]interface{}{
			"title": title,
			"price": fields.Price,
			"date":  date,
		}

		if expense.Category != nil {
			if txErr := s.renameCategory(tx, expense.Category, categoryTitle); txErr != nil {
				return txErr
			}
		} else {
			// Reference was nulled by a label deletion; relink.
			category, txErr := s.getOrCreateCategory(tx, categoryTitle)
			if txErr != nil {
				return txErr
			}
			expense.Category = category
			updates["category_id"] = category.ID
		}

		if expense.Store != nil {
			if txErr := s.renameStore(tx, expense.Store, storeTitle); txErr != nil {
				return txErr
			}
		} else {
			store, txErr := s.getOrCreateStore(tx, storeTitle)
			if txErr != nil {
				return txErr
			}
			expense.Store = store
			updates["store_id"] = store.ID
		}

		if txErr := tx.Model(&expense).Omit(clause.Associations).Updates(updates).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// DeleteExpense removes the expense and credits its price back to the
// owner's budget, atomically.
func (s *expenseService) DeleteExpense(userID, expenseID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var expense models.Expense
		if err := tx.Where("id = ? AND user_id = ?", expenseID, userID).First(&expense).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrExpenseNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		res := tx.Model(&models.User{}).Where("id = ?", userID).
			UpdateColumn("budget", gorm.Expr("budget + ?", expense.Price))
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}

		if err := tx.Delete(&expense).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// getOrCreateCategory resolves a category by normalized title, creating the
// row when absent. Runs inside the caller's transaction so a failed expense
// mutation rolls the label back too.
func (s *expenseService) getOrCreateCategory(tx *gorm.DB, title string) (*models.Category, error) {
	title = normalizeTitle(title)
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category title is required")
	}
	var category models.Category
	if err := tx.Where("title = ?", title).FirstOrCreate(&category, models.Category{Title: title}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// getOrCreateStore resolves a store by normalized title, creating the row
// when absent.
func (s *expenseService) getOrCreateStore(tx *gorm.DB, title string) (*models.Store, error) {
	title = normalizeTitle(title)
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "store title is required")
	}
	var store models.Store
	if err := tx.Where("title = ?", title).FirstOrCreate(&store, models.Store{Title: title}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &store, nil
}

// renameCategory retitles the shared category row. Titles are unique, so a
// rename onto another existing label is rejected rather than merged.
func (s *expenseService) renameCategory(tx *gorm.DB, category *models.Category, title string) error {
	if category.Title == title {
		return nil
	}
	var clash int64
	if err := tx.Model(&models.Category{}).
		Where("title = ? AND id <> ?", title, category.ID).
		Count(&clash).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if clash > 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category title already in use")
	}
	if err := tx.Model(category).Update("title", title).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// renameStore retitles the shared store row, with the same uniqueness rule
// as renameCategory.
func (s *expenseService) renameStore(tx *gorm.DB, store *models.Store, title string) error {
	if store.Title == title {
		return nil
	}
	var clash int64
	if err := tx.Model(&models.Store{}).
		Where("title = ? AND id <> ?", title, store.ID).
		Count(&clash).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if clash > 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "store title already in use")
	}
	if err := tx.Model(store).Update("title", title).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
