package models

import (
	"strings"

	"github.com/shopspring/decimal"

	apperrors "artha/internal/errors"
)

// SavingsLevel is a user-editable classification label. The engine never
// computes transitions between levels.
type SavingsLevel string

const (
	SavingsLevelNovice   SavingsLevel = "Novice"
	SavingsLevelSaver    SavingsLevel = "Saver"
	SavingsLevelInvestor SavingsLevel = "Investor"
	SavingsLevelMaster   SavingsLevel = "Arthashastra Master"
)

// Valid reports whether the level is one of the known labels.
func (l SavingsLevel) Valid() bool {
	switch l {
	case SavingsLevelNovice, SavingsLevelSaver, SavingsLevelInvestor, SavingsLevelMaster:
		return true
	}
	return false
}

// Karma score bounds. The score is clamped on every update, never rejected.
const (
	KarmaMin     = 0
	KarmaMax     = 100
	KarmaInitial = 50
)

// User is a registered profile. Email is the login key and unique across
// the registry. CurrentSavings is the externally-held opening balance not
// represented as ledger transactions.
type User struct {
	Base
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	MonthlyIncome  decimal.Decimal `gorm:"type:numeric(18,2)" json:"monthly_income"`
	FinancialGoal  string          `json:"financial_goal"`
	TargetAmount   decimal.Decimal `gorm:"type:numeric(18,2)" json:"target_amount"`
	CurrentSavings decimal.Decimal `gorm:"type:numeric(18,2)" json:"current_savings"`

	// Display-only; never affects arithmetic.
	CurrencySymbol string `gorm:"default:₹" json:"currency_symbol"`

	SavingsLevel SavingsLevel `gorm:"default:Novice" json:"savings_level"`

	// Running behavioral score in [0,100], maintained by the ledger on
	// every insertion. Persisted rather than derived so deletions do not
	// rewrite history.
	KarmaScore int `gorm:"default:50" json:"karma_score"`

	// Biometric enrollment marker; the credential ceremony itself is
	// handled by an external authentication collaborator.
	BioAuthEnabled bool `gorm:"default:false" json:"bio_auth_enabled"`

	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
}

// Validate checks the structural invariants of a profile.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "email is required")
	}
	if u.MonthlyIncome.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "monthly income cannot be negative")
	}
	if u.SavingsLevel != "" && !u.SavingsLevel.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown savings level")
	}
	if u.KarmaScore < KarmaMin || u.KarmaScore > KarmaMax {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "karma score out of range")
	}
	return nil
}
