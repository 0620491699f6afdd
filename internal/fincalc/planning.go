package fincalc

// FIRECorpus returns the corpus needed to retire on the 25x rule (a 4%
// implied safe withdrawal rate): 25 times annual expenses.
func FIRECorpus(monthlyExpense float64) float64 {
	return monthlyExpense * 12 * 25
}

// EmergencyFund reports both the minimum and recommended liquid safety
// nets for a given monthly expense.
type EmergencyFund struct {
	Minimum     float64 `json:"minimum"`     // 3 months of expenses
	Recommended float64 `json:"recommended"` // 6 months of expenses
}

// EmergencyFundTargets returns the 3x and 6x monthly-expense targets.
func EmergencyFundTargets(monthlyExpense float64) EmergencyFund {
	return EmergencyFund{
		Minimum:     monthlyExpense * 3,
		Recommended: monthlyExpense * 6,
	}
}

// Allocation is an equity/debt split in percent. The two always sum to 100.
type Allocation struct {
	EquityPercent float64 `json:"equity_percent"`
	DebtPercent   float64 `json:"debt_percent"`
}

// AllocationByAge applies the "100 minus age" rule, clamped to [0,100].
func AllocationByAge(age int) Allocation {
	equity := float64(100 - age)
	if equity < 0 {
		equity = 0
	}
	if equity > 100 {
		equity = 100
	}
	return Allocation{EquityPercent: equity, DebtPercent: 100 - equity}
}

// FreelanceHourlyRate returns the minimum hourly rate to hit a target
// monthly income, with a fixed 30% buffer for taxes, insurance, and dry
// spells. Zero billable hours returns 0.
func FreelanceHourlyRate(targetMonthlyIncome, billableHoursPerMonth float64) float64 {
	if billableHoursPerMonth <= 0 {
		return 0
	}
	return targetMonthlyIncome * 1.30 / billableHoursPerMonth
}

// RentVerdict is the outcome of the price-to-rent comparison.
type RentVerdict string

const (
	VerdictRent    RentVerdict = "Rent"
	VerdictBuy     RentVerdict = "Buy"
	VerdictNeutral RentVerdict = "Neutral"
)

// PriceToRentRatio returns propertyPrice / (monthlyRent * 12). Zero rent
// returns 0 rather than dividing by zero.
func PriceToRentRatio(propertyPrice, monthlyRent float64) float64 {
	if monthlyRent <= 0 {
		return 0
	}
	return propertyPrice / (monthlyRent * 12)
}

// RentOrBuy classifies a price-to-rent ratio. The convention, inclusive on
// the buy side: renting is favored when the ratio exceeds 25, buying when
// it is at most 20, neutral in between (20, 25].
func RentOrBuy(ratio float64) RentVerdict {
	switch {
	case ratio > 25:
		return VerdictRent
	case ratio > 20:
		return VerdictNeutral
	default:
		return VerdictBuy
	}
}
