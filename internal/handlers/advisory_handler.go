package handlers

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"artha/internal/advisory"
	apperrors "artha/internal/errors"
	"artha/internal/models"
	"artha/internal/services"
)

// AdvisoryHandler bridges HTTP to the advice collaborator. Advice is
// read-only; the single write path is a classified receipt turned into a
// regular transaction draft.
type AdvisoryHandler struct {
	advisor advisory.Service
	ledger  services.LedgerServicer
	users   services.UserServicer
}

// NewAdvisoryHandler creates an AdvisoryHandler.
func NewAdvisoryHandler(advisor advisory.Service, ledger services.LedgerServicer, users services.UserServicer) *AdvisoryHandler {
	return &AdvisoryHandler{advisor: advisor, ledger: ledger, users: users}
}

type spendingInsightRequest struct {
	Category string          `json:"category" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
}

// SpendingInsight godoc
// @Summary Advice on a spending category
// @Tags advisory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body spendingInsightRequest true "Category and amount"
// @Success 200 {object} map[string]string
// @Router /advisory/spending [post]
func (h *AdvisoryHandler) SpendingInsight(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}
	var req spendingInsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	advice, err := h.advisor.AdviseOnSpending(c.Request.Context(), req.Category, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"advice": advice})
}

type purchaseImpactRequest struct {
	Item  string          `json:"item" binding:"required"`
	Price decimal.Decimal `json:"price" binding:"required"`
}

// PurchaseImpact godoc
// @Summary Score a prospective purchase
// @Description Rates the purchase against the caller's monthly income
// @Tags advisory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body purchaseImpactRequest true "Item and price"
// @Success 200 {object} advisory.PurchaseImpact
// @Router /advisory/purchase-impact [post]
func (h *AdvisoryHandler) PurchaseImpact(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req purchaseImpactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.users.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	impact, err := h.advisor.ScorePurchaseImpact(c.Request.Context(), req.Item, req.Price, user.MonthlyIncome)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, impact)
}

type chatRequest struct {
	Query   string             `json:"query" binding:"required"`
	Persona string             `json:"persona"`
	History []advisory.Message `json:"history"`
}

// Chat godoc
// @Summary Converse with the financial advisor
// @Tags advisory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body chatRequest true "Query with optional history and persona"
// @Success 200 {object} map[string]string
// @Router /advisory/chat [post]
func (h *AdvisoryHandler) Chat(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	reply, err := h.advisor.Chat(c.Request.Context(), req.History, req.Query, req.Persona)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

type importReceiptRequest struct {
	// Base64-encoded receipt image.
	Image string `json:"image" binding:"required"`
}

// ImportReceipt godoc
// @Summary Turn a receipt image into a ledger entry
// @Description Classifies the receipt and inserts the result as an expense. The entry goes through the same validation and karma path as a manual one.
// @Tags advisory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body importReceiptRequest true "Base64 receipt image"
// @Success 201 {object} models.Transaction
// @Failure 503 {object} map[string]interface{}
// @Router /advisory/receipt [post]
func (h *AdvisoryHandler) ImportReceipt(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req importReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	image, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "image must be base64 encoded"))
		return
	}

	bill, err := h.advisor.ClassifyReceipt(c.Request.Context(), image)
	if err != nil {
		respondWithError(c, err)
		return
	}

	category := bill.Category
	if category == "" {
		category = models.CategoryShopping
	}
	txn, err := h.ledger.AddTransaction(userID, &models.Transaction{
		Type:        models.TransactionTypeExpense,
		Amount:      bill.Total,
		Category:    category,
		Description: bill.Merchant,
		Date:        bill.Date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, txn)
}
