package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/sorryduck/budget-manager-backend/internal/services"
)

// StatsHandler handles statistics requests.
type StatsHandler struct {
	statsService services.StatsServicer
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService services.StatsServicer) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// CategoryChart holds summed spending per category title
type CategoryChart struct {
	Categories []*string         `json:"categories"`
	Values     []decimal.Decimal `json:"values"`
}

// StoreChart holds summed spending per store title
type StoreChart struct {
	Stores []*string         `json:"stores"`
	Values []decimal.Decimal `json:"values"`
}

// ExpensesChart holds summed spending per expense title
type ExpensesChart struct {
	Titles []*string         `json:"titles"`
	Values []decimal.Decimal `json:"values"`
}

// StatsDataResponse bundles the three chart-ready aggregations
type StatsDataResponse struct {
	CategoryData CategoryChart `json:"category_data"`
	StoreData    StoreChart    `json:"store_data"`
	ExpensesData ExpensesChart `json:"expenses_data"`
}

// GetStatsData returns the three grouped spending aggregations
// @Summary     Get spending statistics
// @Description Get the user's spending summed by category, store, and expense title as parallel label/value arrays
// @Tags        stats-data
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} StatsDataResponse "Grouped spending sums"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats-data/ [get]
func (h *StatsHandler) GetStatsData(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.statsService.GetStatistics(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatsDataResponse{
		CategoryData: CategoryChart{Categories: stats.ByCategory.Labels, Values: stats.ByCategory.Values},
		StoreData:    StoreChart{Stores: stats.ByStore.Labels, Values: stats.ByStore.Values},
		ExpensesData: ExpensesChart{Titles: stats.ByTitle.Labels, Values: stats.ByTitle.Values},
	})
}
