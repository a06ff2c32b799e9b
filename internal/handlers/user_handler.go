package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/sorryduck/budget-manager-backend/internal/services"
)

// UserHandler handles user data requests.
type UserHandler struct {
	userService services.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService services.UserServicer) *UserHandler {
	return &UserHandler{userService: userService}
}

// UserDataResponse represents the user data payload
type UserDataResponse struct {
	Username string          `json:"username"`
	Budget   decimal.Decimal `json:"budget"`
}

// GetUserData returns the caller's identity and budget balance
// @Summary     Get user data
// @Description Get the authenticated user's username and current budget balance
// @Tags        user-data
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} UserDataResponse "User data"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /user-data/ [get]
func (h *UserHandler) GetUserData(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserDataResponse{
		Username: user.Username,
		Budget:   user.Budget,
	})
}
