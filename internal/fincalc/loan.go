// Package fincalc implements the stateless financial calculators: loan
// amortization, compounding projections, affordability rules, and
// retirement-corpus sizing. Every function is pure; identical inputs give
// identical outputs. Percentage inputs are plain numbers (12 means 12%).
package fincalc

import "math"

// EMI returns the equal monthly installment for an amortizing loan of the
// given principal at an annual nominal rate (percent) over the given term
// in months.
//
//	EMI = P*i*(1+i)^n / ((1+i)^n - 1), i = r/12
//
// A zero rate degenerates to straight-line repayment P/n. A non-positive
// term returns 0.
func EMI(principal, annualRatePercent float64, months int) float64 {
	if months <= 0 || principal <= 0 {
		return 0
	}
	i := annualRatePercent / 100 / 12
	if i == 0 {
		return principal / float64(months)
	}
	growth := math.Pow(1+i, float64(months))
	return principal * i * growth / (growth - 1)
}

// Default loan rates for the affordability rules, in percent per annum.
// Callers may override them per request.
const (
	DefaultCarLoanRatePercent  = 9.5
	DefaultHomeLoanRatePercent = 8.5
)

// Terms fixed by the affordability rules.
const (
	CarLoanTermMonths  = 48  // 20/4/10: four-year loan
	HomeLoanTermMonths = 240 // 3/20/30/40: twenty-year loan
)

// CarAffordability is the outcome of the 20/4/10 vehicle rule.
type CarAffordability struct {
	DownPayment float64 `json:"down_payment"` // 20% of price
	LoanAmount  float64 `json:"loan_amount"`  // 80% of price
	EMI         float64 `json:"emi"`
	MaxEMI      float64 `json:"max_emi"` // 10% of monthly income
	Affordable  bool    `json:"affordable"`
}

// CarRule2041 applies the 20/4/10 rule: 20% down, the remaining 80%
// amortized over four years, affordable iff the EMI stays within 10% of
// monthly income.
func CarRule2041(price, monthlyIncome, annualRatePercent float64) CarAffordability {
	down := price * 0.20
	loan := price * 0.80
	emi := EMI(loan, annualRatePercent, CarLoanTermMonths)
	maxEMI := monthlyIncome * 0.10
	return CarAffordability{
		DownPayment: down,
		LoanAmount:  loan,
		EMI:         emi,
		MaxEMI:      maxEMI,
		Affordable:  emi <= maxEMI,
	}
}

// HouseAffordability is the outcome of the 3/20/30/40 housing rule.
type HouseAffordability struct {
	MaxPrice    float64 `json:"max_price"`    // 3x annual income
	LoanAmount  float64 `json:"loan_amount"`  // 60% of price
	EMI         float64 `json:"emi"`
	MaxEMI      float64 `json:"max_emi"`      // 30% of monthly income
	DownPayment float64 `json:"down_payment"` // 40% of price
	PriceOK     bool    `json:"price_ok"`
	EMIOK       bool    `json:"emi_ok"`
	Affordable  bool    `json:"affordable"`
}

// HouseRule3203040 applies the 3/20/30/40 rule: price at most 3x annual
// income, a twenty-year loan on 60% of the price with EMI at most 30% of
// monthly income, and a 40% down payment reported for the buyer to check.
func HouseRule3203040(price, monthlyIncome, annualRatePercent float64) HouseAffordability {
	maxPrice := monthlyIncome * 12 * 3
	loan := price * 0.60
	emi := EMI(loan, annualRatePercent, HomeLoanTermMonths)
	maxEMI := monthlyIncome * 0.30
	priceOK := price <= maxPrice
	emiOK := emi <= maxEMI
	return HouseAffordability{
		MaxPrice:    maxPrice,
		LoanAmount:  loan,
		EMI:         emi,
		MaxEMI:      maxEMI,
		DownPayment: price * 0.40,
		PriceOK:     priceOK,
		EMIOK:       emiOK,
		Affordable:  priceOK && emiOK,
	}
}
