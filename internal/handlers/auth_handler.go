package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/sorryduck/budget-manager-backend/internal/errors"
	"github.com/sorryduck/budget-manager-backend/internal/middleware"
	"github.com/sorryduck/budget-manager-backend/internal/services"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	userService  services.UserServicer
	auditService services.AuditServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer, auditService services.AuditServicer) *AuthHandler {
	return &AuthHandler{userService: userService, auditService: auditService}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Username string           `json:"username" binding:"required,min=3,max=150"`
	Password string           `json:"password" binding:"required,min=8,max=128"`
	Budget   *decimal.Decimal `json:"budget"`
}

// TokenAuthRequest represents the token issuance request payload
type TokenAuthRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents the token issuance response
type TokenResponse struct {
	Token string `json:"token"`
}

// Register handles user registration
// @Summary     Register a new user
// @Description Register a new user with username, password, and optional starting budget
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "User registration data"
// @Success     201 {object} TokenResponse "User registered and token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Username already taken"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget := decimal.Zero
	if req.Budget != nil {
		budget = *req.Budget
	}

	user, err := h.userService.CreateUser(req.Username, req.Password, budget)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	h.auditService.Log(user.ID, "REGISTER", "user", user.ID, c.ClientIP(), nil)

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"budget":   user.Budget,
		},
	})
}

// TokenAuth issues an API token for valid credentials
// @Summary     Obtain an auth token
// @Description Authenticate with username and password and receive a bearer token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body TokenAuthRequest true "User credentials"
// @Success     200 {object} TokenResponse "Token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api-token-auth/ [post]
func (h *AuthHandler) TokenAuth(c *gin.Context) {
	var req TokenAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.GetUserByUsername(req.Username)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidCredentials)
		return
	}

	if !h.userService.VerifyPassword(user, req.Password) {
		respondWithError(c, apperrors.ErrInvalidCredentials)
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
