package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "artha/internal/errors"
	"artha/internal/services"
)

// DashboardHandler serves the derived read models: the overview figures and
// the expense breakdown.
type DashboardHandler struct {
	ledger services.LedgerServicer
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(ledger services.LedgerServicer) *DashboardHandler {
	return &DashboardHandler{ledger: ledger}
}

// evaluationTime reads the optional ?at= parameter; absent means now.
func evaluationTime(c *gin.Context) (time.Time, error) {
	at := c.Query("at")
	if at == "" {
		return time.Now(), nil
	}
	return parseFlexibleTime(at)
}

// Overview godoc
// @Summary Dashboard overview
// @Description Net worth, savings rate, solvency, burn rate, and karma at the evaluation time
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param at query string false "Evaluation time (RFC3339 or YYYY-MM-DD); defaults to now"
// @Success 200 {object} metrics.Overview
// @Failure 400 {object} map[string]interface{}
// @Router /dashboard/overview [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	now, err := evaluationTime(c)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "at must be RFC3339 or YYYY-MM-DD"))
		return
	}

	overview, err := h.ledger.Overview(userID, now)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// CategoryBreakdown godoc
// @Summary Expense totals per category
// @Description Historical expenses grouped by category, largest first
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param at query string false "Evaluation time (RFC3339 or YYYY-MM-DD); defaults to now"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /dashboard/categories [get]
func (h *DashboardHandler) CategoryBreakdown(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	now, err := evaluationTime(c)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "at must be RFC3339 or YYYY-MM-DD"))
		return
	}

	breakdown, err := h.ledger.CategoryBreakdown(userID, now)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": breakdown})
}
