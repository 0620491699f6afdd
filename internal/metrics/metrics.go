// Package metrics derives point-in-time figures from a user's ledger:
// net worth, solvency, burn rate, savings rate, and the karma reducer.
// Everything here is a pure function of (profile, transactions, now);
// persistence and mutation live in the services layer.
package metrics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"artha/internal/models"
)

// Overview is the dashboard snapshot at a single evaluation time.
type Overview struct {
	NetWorth     decimal.Decimal `json:"net_worth"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`

	// Percent of historical income retained; 0 when there is no income.
	SavingsRate float64 `json:"savings_rate"`

	// Health score in [0,100], centered at 50: 50 + savingsRate/2, clamped.
	SolvencyIndex float64 `json:"solvency_index"`

	// Average daily spend over the elapsed portion of the current month,
	// against the income-derived allowance (monthly income / 30).
	BurnRatePerDay        decimal.Decimal `json:"burn_rate_per_day"`
	AllowedBurnRatePerDay decimal.Decimal `json:"allowed_burn_rate_per_day"`
	OverBudget            bool            `json:"over_budget"`

	// How many times over the historical spend the net worth stretches;
	// 0 when nothing has been spent.
	DefenseMultiplier float64 `json:"defense_multiplier"`

	KarmaScore int `json:"karma_score"`
}

var thirty = decimal.NewFromInt(30)

// Compute derives the overview for a profile and its transactions at the
// given evaluation time. Entries dated after now are forecasts and never
// enter the historical sums.
func Compute(user *models.User, transactions []models.Transaction, now time.Time) Overview {
	income := decimal.Zero
	expense := decimal.Zero
	for i := range transactions {
		t := &transactions[i]
		if !t.Historical(now) {
			continue
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case models.TransactionTypeExpense:
			expense = expense.Add(t.Amount)
		}
	}

	netWorth := user.CurrentSavings.Add(income).Sub(expense)

	savingsRate := 0.0
	if income.IsPositive() {
		savingsRate = income.Sub(expense).Div(income).InexactFloat64() * 100
	}

	solvency := clampScore(50 + savingsRate/2)

	elapsedDays := int64(now.Day())
	if elapsedDays < 1 {
		elapsedDays = 1
	}
	burn := expense.Div(decimal.NewFromInt(elapsedDays))
	allowed := user.MonthlyIncome.Div(thirty)

	defense := 0.0
	if expense.IsPositive() {
		defense = netWorth.Div(expense).InexactFloat64()
	}

	return Overview{
		NetWorth:              netWorth,
		TotalIncome:           income,
		TotalExpense:          expense,
		SavingsRate:           savingsRate,
		SolvencyIndex:         solvency,
		BurnRatePerDay:        burn,
		AllowedBurnRatePerDay: allowed,
		OverBudget:            burn.GreaterThan(allowed),
		DefenseMultiplier:     defense,
		KarmaScore:            user.KarmaScore,
	}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Historical returns the transactions dated at or before now.
func Historical(transactions []models.Transaction, now time.Time) []models.Transaction {
	out := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Historical(now) {
			out = append(out, t)
		}
	}
	return out
}

// Upcoming returns the transactions dated after now: the forecast view of
// scheduled liabilities and income.
func Upcoming(transactions []models.Transaction, now time.Time) []models.Transaction {
	out := make([]models.Transaction, 0)
	for _, t := range transactions {
		if !t.Historical(now) {
			out = append(out, t)
		}
	}
	return out
}

// KarmaDelta is the behavioral adjustment a single insertion applies:
// +2 for income, +1 for an education expense, -1 for an entertainment
// expense, 0 otherwise.
func KarmaDelta(t *models.Transaction) int {
	switch {
	case t.Type == models.TransactionTypeIncome:
		return 2
	case t.Type == models.TransactionTypeExpense && t.Category == models.CategoryEducation:
		return 1
	case t.Type == models.TransactionTypeExpense && t.Category == models.CategoryEntertainment:
		return -1
	}
	return 0
}

// ApplyKarma folds one insertion into a running karma score, clamping to
// [0,100]. The score is a reducer over insertions in order, not a pure
// function of ledger contents; deletions never reverse it.
func ApplyKarma(score int, t *models.Transaction) int {
	return ClampKarma(score + KarmaDelta(t))
}

// ClampKarma bounds a score to [KarmaMin, KarmaMax].
func ClampKarma(score int) int {
	if score < models.KarmaMin {
		return models.KarmaMin
	}
	if score > models.KarmaMax {
		return models.KarmaMax
	}
	return score
}

// CategoryTotal is one row of the expense breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// ExpensesByCategory aggregates historical expenses per category, sorted
// by descending total with ties broken lexicographically by category name
// so the ordering is deterministic.
func ExpensesByCategory(transactions []models.Transaction, now time.Time) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for i := range transactions {
		t := &transactions[i]
		if t.Type != models.TransactionTypeExpense || !t.Historical(now) {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}

	out := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		out = append(out, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// LargestCategory returns the top expense category at the evaluation time.
// The second return is false when there are no historical expenses.
func LargestCategory(transactions []models.Transaction, now time.Time) (CategoryTotal, bool) {
	breakdown := ExpensesByCategory(transactions, now)
	if len(breakdown) == 0 {
		return CategoryTotal{}, false
	}
	return breakdown[0], true
}
