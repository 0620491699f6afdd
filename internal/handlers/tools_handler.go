package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "artha/internal/errors"
	"artha/internal/fincalc"
)

// ToolsHandler serves the stateless calculator endpoints. Nothing here
// touches the ledger; every response is a pure function of the request.
type ToolsHandler struct{}

// NewToolsHandler creates a ToolsHandler.
func NewToolsHandler() *ToolsHandler {
	return &ToolsHandler{}
}

func bindTool[T any](c *gin.Context) (*T, bool) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return nil, false
	}
	return &req, true
}

type emiRequest struct {
	Principal         float64 `json:"principal" binding:"required,gt=0"`
	AnnualRatePercent float64 `json:"annual_rate_percent" binding:"min=0"`
	Months            int     `json:"months" binding:"required,gt=0"`
}

// EMI godoc
// @Summary Loan EMI
// @Tags tools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body emiRequest true "Loan terms"
// @Success 200 {object} map[string]float64
// @Router /tools/emi [post]
func (h *ToolsHandler) EMI(c *gin.Context) {
	req, ok := bindTool[emiRequest](c)
	if !ok {
		return
	}
	emi := fincalc.EMI(req.Principal, req.AnnualRatePercent, req.Months)
	c.JSON(http.StatusOK, gin.H{
		"emi":            emi,
		"total_payment":  emi * float64(req.Months),
		"total_interest": emi*float64(req.Months) - req.Principal,
	})
}

type futureValueRequest struct {
	Principal         float64 `json:"principal" binding:"required,gt=0"`
	AnnualRatePercent float64 `json:"annual_rate_percent" binding:"min=0"`
	Years             int     `json:"years" binding:"required,gt=0"`
}

// FutureValue godoc
// @Summary Lump-sum future value
// @Tags tools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body futureValueRequest true "Investment terms"
// @Success 200 {object} map[string]float64
// @Router /tools/future-value [post]
func (h *ToolsHandler) FutureValue(c *gin.Context) {
	req, ok := bindTool[futureValueRequest](c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"future_value": fincalc.FutureValue(req.Principal, req.AnnualRatePercent, req.Years),
	})
}

type sipRequest struct {
	Monthly           float64 `json:"monthly" binding:"required,gt=0"`
	AnnualRatePercent float64 `json:"annual_rate_percent" binding:"min=0"`
	Years             int     `json:"years" binding:"required,gt=0"`
}

// SIP godoc
// @Summary SIP future value
// @Description Level monthly contribution, compounded monthly, contributions at the start of each month
// @Tags tools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body sipRequest true "SIP terms"
// @Success 200 {object} map[string]float64
// @Router /tools/sip [post]
func (h *ToolsHandler) SIP(c *gin.Context) {
	req, ok := bindTool[sipRequest](c)
	if !ok {
		return
	}
	months := req.Years * 12
	fv := fincalc.SIPFutureValue(req.Monthly, req.AnnualRatePercent, months)
	invested := req.Monthly * float64(months)
	c.JSON(http.StatusOK, gin.H{
		"future_value": fv,
		"invested":     invested,
		"gain":         fv - invested,
	})
}

type stepUpSIPRequest struct {
	InitialMonthly    float64 `json:"initial_monthly" binding:"required,gt=0"`
	AnnualRatePercent float64 `json:"annual_rate_percent" binding:"min=0"`
	StepUpPercent     float64 `json:"step_up_percent" binding:"min=0"`
	Years             int     `json:"years" binding:"required,gt=0,max=60"`
}

// StepUpSIP godoc
// @Summary Step-up SIP projection
// @Description Year-by-year projection of a SIP whose contribution grows annually
// @Tags tools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body stepUpSIPRequest true "Step-up SIP terms"
// @Success 200 {object} map[string]interface{}
// @Router /tools/step-up-sip [post]
func (h *ToolsHandler) StepUpSIP(c *gin.Context) {
	req, ok := bindTool[stepUpSIPRequest](c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"series": fincalc.StepUpSIP(req.InitialMonthly, req.AnnualRatePercent, req.StepUpPercent, req.Years),
	})
}

type ruleOf72Request struct {
	AnnualRatePercent float64 `json:"annual_rate_percent" binding:"required,gt=0"`
}

// RuleOf72 godoc
// @Summary Years to double an investment
// @Tags tools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ruleOf72Request true "Annual rate"
// @Success 200 {object} map[string]float64
// @Router /tools/rule-of-72 [post]
func (h *ToolsHandler) RuleOf72(c *gin.Context) {
	req, ok := bindTool[ruleOf72Request](c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"years_to_double": fincalc.YearsToDouble(req.AnnualRatePercent)})
}

type costOfDelayRequest struct {
	Monthly           float64 `json:"monthly" binding:"required,gt=0"`
	AnnualRatePercent float64 `json:"annual_rate_percent" binding:"min=0"`
	HorizonYears      int     `json:"horizon_years" binding:"required,gt=0"`
	DelayYears        int     `json:"delay_years" binding:"required,gt=0"`
}

// CostOfDelay godoc
// @Summary What waiting to invest costs
// @Tags tools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body costOfDelayRequest true "SIP and delay terms"
// @Success 200 {object} fincalc.DelayCost
// @Failure 400 {object} map[string]interface{}
// @Router /tools/cost-of-delay [post]
func (h *ToolsHandler) CostOfDelay(c *gin.Context) {
	req, ok := bindTool[costOfDelayRequest](c)
	if !ok {
		return
	}
	if req.DelayYears >= req.HorizonYears {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "delay must be shorter than the horizon"))
		return
	}
	c.JSON(http.StatusOK, fincalc.CostOfDelay(req.Monthly, req.AnnualRatePercent, req.HorizonYears, req.DelayYears))
}

type timeCostRequest struct {
	Price         float64 `json:"price" binding:"required,gt=0"`
	MonthlyIncome float64 `json:"monthly_income" binding:"required,gt=0"`
}

// TimeCost godoc
// @Summary A purchase priced in days of work
// @Tags tools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body timeCostRequest true "Price and income"
// @Success 200 {object} map[string]float64
// @Router /tools/time-cost [post]
func (h *ToolsHandler) TimeCost(c *gin.Context) {
	req, ok := bindTool[timeCostRequest](c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"days_of_work": fincalc.TimeCostDays(req.Price, req.MonthlyIncome)})
}

type carAffordabilityRequest struct {
	Price             float64 `json:"price" binding:"required,gt=0"`
	MonthlyIncome     float64 `json:"monthly_income" binding:"required,gt=0"`
	AnnualRatePercent float64 `json:"annual_rate_percent" binding:"omitempty,gt=0"`
}

// CarAffordability godoc
// @Summary 20/4/10 vehicle affordability check
// @Tags tools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body carAffordabilityRequest true "Vehicle price and income"
// @Success 200 {object} fincalc.CarAffordability
// @Router /tools/car-affordability [post]
func (h *ToolsHandler) CarAffordability(c *gin.Context) {
	req, ok := bindTool[carAffordabilityRequest](c)
	if !ok {
		return
	}
	rate := req.AnnualRatePercent
	if rate == 0 {
		rate = fincalc.DefaultCarLoanRatePercent
	}
	c.JSON(http.StatusOK, fincalc.CarRule2041(req.Price, req.MonthlyIncome, rate))
}

type houseAffordabilityRequest struct {
	Price             float64 `json:"price" binding:"required,gt=0"`
	MonthlyIncome     float64 `json:"monthly_income" binding:"required,gt=0"`
	AnnualRatePercent float64 `json:"annual_rate_percent" binding:"omitempty,gt=0"`
}

// HouseAffordability godoc
// @Summary 3/20/30/40 housing affordability check
// @Tags tools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body houseAffordabilityRequest true "House price and income"
// @Success 200 {object} fincalc.HouseAffordability
// @Router /tools/house-affordability [post]
func (h *ToolsHandler) HouseAffordability(c *gin.Context) {
	req, ok := bindTool[houseAffordabilityRequest](c)
	if !ok {
		return
	}
	rate := req.AnnualRatePercent
	if rate == 0 {
		rate = fincalc.DefaultHomeLoanRatePercent
	}
	c.JSON(http.StatusOK, fincalc.HouseRule3203040(req.Price, req.MonthlyIncome, rate))
}

type fireRequest struct {
	MonthlyExpense float64 `json:"monthly_expense" binding:"required,gt=0"`
}

// FIRECorpus godoc
// @Summary Retirement corpus by the 25x rule
// @Tags tools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body fireRequest true "Monthly expense"
// @Success 200 {object} map[string]float64
// @Router /tools/fire [post]
func (h *ToolsHandler) FIRECorpus(c *gin.Context) {
	req, ok := bindTool[fireRequest](c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"corpus": fincalc.FIRECorpus(req.MonthlyExpense)})
}

type emergencyFundRequest struct {
	MonthlyExpense float64 `json:"monthly_expense" binding:"required,gt=0"`
}

// EmergencyFund godoc
// @Summary Emergency fund targets
// @Tags tools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body emergencyFundRequest true "Monthly expense"
// @Success 200 {object} fincalc.EmergencyFund
// @Router /tools/emergency-fund [post]
func (h *ToolsHandler) EmergencyFund(c *gin.Context) {
	req, ok := bindTool[emergencyFundRequest](c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, fincalc.EmergencyFundTargets(req.MonthlyExpense))
}

type allocationRequest struct {
	Age int `json:"age" binding:"required,gt=0,lt=150"`
}

// Allocation godoc
// @Summary Equity/debt split by the 100-minus-age rule
// @Tags tools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body allocationRequest true "Age"
// @Success 200 {object} fincalc.Allocation
// @Router /tools/allocation [post]
func (h *ToolsHandler) Allocation(c *gin.Context) {
	req, ok := bindTool[allocationRequest](c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, fincalc.AllocationByAge(req.Age))
}

type freelanceRateRequest struct {
	TargetMonthlyIncome   float64 `json:"target_monthly_income" binding:"required,gt=0"`
	BillableHoursPerMonth float64 `json:"billable_hours_per_month" binding:"required,gt=0"`
}

// FreelanceRate godoc
// @Summary Minimum freelance hourly rate
// @Description Includes a 30% buffer over the bare target
// @Tags tools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body freelanceRateRequest true "Income target and billable hours"
// @Success 200 {object} map[string]float64
// @Router /tools/freelance-rate [post]
func (h *ToolsHandler) FreelanceRate(c *gin.Context) {
	req, ok := bindTool[freelanceRateRequest](c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"hourly_rate": fincalc.FreelanceHourlyRate(req.TargetMonthlyIncome, req.BillableHoursPerMonth),
	})
}

type rentVsBuyRequest struct {
	PropertyPrice float64 `json:"property_price" binding:"required,gt=0"`
	MonthlyRent   float64 `json:"monthly_rent" binding:"required,gt=0"`
}

// RentVsBuy godoc
// @Summary Price-to-rent verdict
// @Tags tools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body rentVsBuyRequest true "Property price and rent"
// @Success 200 {object} map[string]interface{}
// @Router /tools/rent-vs-buy [post]
func (h *ToolsHandler) RentVsBuy(c *gin.Context) {
	req, ok := bindTool[rentVsBuyRequest](c)
	if !ok {
		return
	}
	ratio := fincalc.PriceToRentRatio(req.PropertyPrice, req.MonthlyRent)
	c.JSON(http.StatusOK, gin.H{
		"ratio":   ratio,
		"verdict": fincalc.RentOrBuy(ratio),
	})
}
