package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "artha/internal/errors"
	"artha/internal/middleware"
	"artha/internal/models"
	"artha/internal/services"
)

// AuthHandler serves registration, login, and profile endpoints.
type AuthHandler struct {
	users services.UserServicer
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(users services.UserServicer) *AuthHandler {
	return &AuthHandler{users: users}
}

type registerRequest struct {
	Name           string          `json:"name" binding:"required"`
	Email          string          `json:"email" binding:"required,email"`
	Password       string          `json:"password" binding:"required,min=8"`
	MonthlyIncome  decimal.Decimal `json:"monthly_income"`
	FinancialGoal  string          `json:"financial_goal"`
	TargetAmount   decimal.Decimal `json:"target_amount"`
	CurrentSavings decimal.Decimal `json:"current_savings"`
	CurrencySymbol string          `json:"currency_symbol"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates a profile and returns a JWT for it
// @Tags auth
// @Accept json
// @Produce json
// @Param request body registerRequest true "Registration details"
// @Success 201 {object} authResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.users.Register(services.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		MonthlyIncome:  req.MonthlyIncome,
		FinancialGoal:  req.FinancialGoal,
		TargetAmount:   req.TargetAmount,
		CurrentSavings: req.CurrentSavings,
		CurrencySymbol: req.CurrencySymbol,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body loginRequest true "Credentials"
// @Success 200 {object} authResponse
// @Failure 401 {object} map[string]interface{}
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.users.AttemptLogin(req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// GetProfile godoc
// @Summary Get the authenticated profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]interface{}
// @Router /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	user, err := h.users.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateProfileRequest struct {
	Name           *string              `json:"name"`
	MonthlyIncome  *decimal.Decimal     `json:"monthly_income"`
	FinancialGoal  *string              `json:"financial_goal"`
	TargetAmount   *decimal.Decimal     `json:"target_amount"`
	CurrentSavings *decimal.Decimal     `json:"current_savings"`
	CurrencySymbol *string              `json:"currency_symbol"`
	SavingsLevel   *models.SavingsLevel `json:"savings_level" binding:"omitempty,savings_level"`
	BioAuthEnabled *bool                `json:"bio_auth_enabled"`
}

// UpdateProfile godoc
// @Summary Update the authenticated profile
// @Description Applies the provided fields. The karma score cannot be set here.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body updateProfileRequest true "Fields to update"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.users.UpdateProfile(userID, services.ProfileUpdate{
		Name:           req.Name,
		MonthlyIncome:  req.MonthlyIncome,
		FinancialGoal:  req.FinancialGoal,
		TargetAmount:   req.TargetAmount,
		CurrentSavings: req.CurrentSavings,
		CurrencySymbol: req.CurrencySymbol,
		SavingsLevel:   req.SavingsLevel,
		BioAuthEnabled: req.BioAuthEnabled,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
