package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "artha/internal/errors"
	"artha/internal/models"
	"artha/internal/pagination"
	"artha/internal/services"
)

// TransactionHandler serves the ledger endpoints.
type TransactionHandler struct {
	ledger services.LedgerServicer
}

// NewTransactionHandler creates a TransactionHandler.
func NewTransactionHandler(ledger services.LedgerServicer) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

type createTransactionRequest struct {
	Type          models.TransactionType `json:"type" binding:"required,transaction_type"`
	Amount        decimal.Decimal        `json:"amount" binding:"required"`
	Category      string                 `json:"category"`
	Description   string                 `json:"description" binding:"required"`
	Date          string                 `json:"date"`
	RelatedPerson string                 `json:"related_person"`
}

// CreateTransaction godoc
// @Summary Add a ledger entry
// @Description Inserts a transaction and applies the karma delta to the owner
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createTransactionRequest true "Transaction draft"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} map[string]interface{}
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	draft := &models.Transaction{
		Type:          req.Type,
		Amount:        req.Amount,
		Category:      req.Category,
		Description:   req.Description,
		RelatedPerson: req.RelatedPerson,
	}
	if req.Date != "" {
		date, err := parseFlexibleTime(req.Date)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be RFC3339 or YYYY-MM-DD"))
			return
		}
		draft.Date = date
	}

	txn, err := h.ledger.AddTransaction(userID, draft)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, txn)
}

type listTransactionsQuery struct {
	pagination.PageRequest
	View string `form:"view" binding:"omitempty,oneof=all history upcoming udhaar"`
	Type string `form:"type" binding:"omitempty,transaction_type"`
}

// ListTransactions godoc
// @Summary List ledger entries
// @Description Returns a page of entries, newest first. The view parameter selects history, upcoming, or outstanding udhaar.
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param view query string false "all | history | upcoming | udhaar"
// @Param type query string false "INCOME | EXPENSE | LENT | BORROWED"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} pagination.PageResponse[models.Transaction]
// @Failure 400 {object} map[string]interface{}
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var query listTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter := services.TransactionFilter{
		View: services.TransactionView(query.View),
		Type: models.TransactionType(query.Type),
	}
	resp, err := h.ledger.ListTransactions(userID, filter, query.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTransaction godoc
// @Summary Get one ledger entry
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.Transaction
// @Failure 404 {object} map[string]interface{}
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	txn, err := h.ledger.GetTransaction(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, txn)
}

// DeleteTransaction godoc
// @Summary Delete a ledger entry
// @Description Removing an unknown id succeeds with no effect. The karma score is never recomputed.
// @Tags transactions
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 204
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	if err := h.ledger.DeleteTransaction(userID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SettleTransaction godoc
// @Summary Settle an outstanding udhaar
// @Description Marks a lent or borrowed entry as settled. Settling twice is a no-op.
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.Transaction
// @Failure 404 {object} map[string]interface{}
// @Router /transactions/{id}/settle [patch]
func (h *TransactionHandler) SettleTransaction(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	txn, err := h.ledger.SettleUdhaar(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, txn)
}

// ListSuggestedCategories godoc
// @Summary List suggested expense categories
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]string
// @Router /transactions/categories [get]
func (h *TransactionHandler) ListSuggestedCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.SuggestedExpenseCategories()})
}
