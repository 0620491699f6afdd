package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "artha/internal/errors"
)

// TransactionType classifies a ledger entry. Income and expense are
// immediate cash-flow events; lent and borrowed track an outstanding
// interpersonal debt ("udhaar") until it is settled.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "INCOME"
	TransactionTypeExpense  TransactionType = "EXPENSE"
	TransactionTypeLent     TransactionType = "LENT"
	TransactionTypeBorrowed TransactionType = "BORROWED"
)

// Valid reports whether the type is one of the four supported kinds.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeLent, TransactionTypeBorrowed:
		return true
	}
	return false
}

// IsLoan reports whether the type represents an interpersonal debt.
func (t TransactionType) IsLoan() bool {
	return t == TransactionTypeLent || t == TransactionTypeBorrowed
}

// IncomeCategory is the fixed category label for income entries.
const IncomeCategory = "Income"

// Well-known expense categories. These seed the suggestion chips in the UI
// and drive the karma deltas; arbitrary category strings remain valid and
// aggregable.
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryShopping      = "Shopping"
	CategoryBills         = "Bills"
	CategoryEntertainment = "Entertainment"
	CategoryEducation     = "Education"
	CategoryHealth        = "Health"
)

// SuggestedExpenseCategories lists the default expense category chips.
func SuggestedExpenseCategories() []string {
	return []string{
		CategoryFood, CategoryTransport, CategoryShopping, CategoryBills,
		CategoryEntertainment, CategoryEducation, CategoryHealth,
	}
}

// Transaction is a single ledger entry. Entries dated in the future are
// forecast liabilities and stay out of historical aggregates until their
// date arrives.
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;index;not null" json:"user_id"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"amount"`
	Category    string          `gorm:"not null" json:"category"`
	Description string          `gorm:"not null" json:"description"`
	Date        time.Time       `gorm:"not null" json:"date"`

	// Counterparty, set only for lent/borrowed entries.
	RelatedPerson string `json:"related_person,omitempty"`

	// Settlement is monotonic: false -> true, never back.
	IsSettled bool `gorm:"default:false" json:"is_settled"`
}

// Validate checks the structural invariants of a transaction draft.
// The related person is required for loan entries and must be absent
// otherwise; the amount must be positive and the description non-empty.
func (t *Transaction) Validate() error {
	if !t.Type.Valid() {
		return apperrors.ErrInvalidTransactionType
	}
	if !t.Amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if strings.TrimSpace(t.Description) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if t.Type.IsLoan() {
		if strings.TrimSpace(t.RelatedPerson) == "" {
			return apperrors.ErrMissingRelatedPerson
		}
	} else if t.RelatedPerson != "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "related person is only valid for lent or borrowed entries")
	}
	return nil
}

// Historical reports whether the entry counts toward historical aggregates
// at the given evaluation time.
func (t *Transaction) Historical(now time.Time) bool {
	return !t.Date.After(now)
}
