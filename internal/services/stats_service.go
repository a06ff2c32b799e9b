package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "github.com/sorryduck/budget-manager-backend/internal/errors"
	"github.com/sorryduck/budget-manager-backend/internal/models"
)

// statsService computes grouped spending aggregations for charts.
type statsService struct {
	db *gorm.DB
}

// NewStatsService creates a new StatsServicer.
func NewStatsService(db *gorm.DB) StatsServicer {
	return &statsService{db: db}
}

// sumRow is one aggregation result row. Label is nil for expenses whose
// category/store reference is NULL.
type sumRow struct {
	Label *string
	Total decimal.Decimal
}

// GetStatistics runs the three group-by-sum aggregations over the user's
// expenses: by category title, by store title, and by expense title.
func (s *statsService) GetStatistics(userID uint) (*Statistics, error) {
	byCategory, err := s.sumBy(userID, "categories.title",
		"LEFT JOIN categories ON categories.id = expenses.category_id")
	if err != nil {
		return nil, err
	}

	byStore, err := s.sumBy(userID, "stores.title",
		"LEFT JOIN stores ON stores.id = expenses.store_id")
	if err != nil {
		return nil, err
	}

	byTitle, err := s.sumBy(userID, "expenses.title", "")
	if err != nil {
		return nil, err
	}

	return &Statistics{
		ByCategory: byCategory,
		ByStore:    byStore,
		ByTitle:    byTitle,
	}, nil
}

// sumBy runs one grouped price sum over the user's expenses and shapes the
// rows into parallel label/value sequences.
func (s *statsService) sumBy(userID uint, labelExpr, join string) (ChartData, error) {
	q := s.db.Model(&models.Expense{}).
		Select(labelExpr+" AS label, SUM(expenses.price) AS total").
		Where("expenses.user_id = ?", userID)
	if join != "" {
		q = q.Joins(join)
	}

	var rows []sumRow
	if err := q.Group(labelExpr).Order(labelExpr).Scan(&rows).Error; err != nil {
		return ChartData{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	data := ChartData{
		Labels: make([]*string, 0, len(rows)),
		Values: make([]decimal.Decimal, 0, len(rows)),
	}
	for _, row := range rows {
		data.Labels = append(data.Labels, row.Label)
		data.Values = append(data.Values, row.Total)
	}
	return data, nil
}
