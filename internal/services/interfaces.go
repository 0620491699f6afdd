// Package services contains the business logic for users, the ledger, and
// snapshot exchange. Services own all mutation; handlers stay thin and the
// metrics package stays pure.
package services

import (
	"time"

	"github.com/shopspring/decimal"

	"artha/internal/metrics"
	"artha/internal/models"
	"artha/internal/pagination"
)

// RegisterInput carries the fields a new profile is created from. Karma is
// not accepted here; every profile starts at the initial score.
type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	MonthlyIncome  decimal.Decimal
	FinancialGoal  string
	TargetAmount   decimal.Decimal
	CurrentSavings decimal.Decimal
	CurrencySymbol string
}

// ProfileUpdate carries optional profile changes. Nil fields are left
// untouched. The karma score is deliberately absent: it is maintained by
// the ledger, never set by clients.
type ProfileUpdate struct {
	Name           *string
	MonthlyIncome  *decimal.Decimal
	FinancialGoal  *string
	TargetAmount   *decimal.Decimal
	CurrentSavings *decimal.Decimal
	CurrencySymbol *string
	SavingsLevel   *models.SavingsLevel
	BioAuthEnabled *bool
}

// UserServicer manages the profile registry.
type UserServicer interface {
	Register(input RegisterInput) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateProfile(userID string, update ProfileUpdate) (*models.User, error)
}

// TransactionView selects which slice of the ledger a listing returns.
type TransactionView string

const (
	// ViewAll returns every entry.
	ViewAll TransactionView = "all"
	// ViewHistory returns past-dated entries that are realized: income,
	// expenses, and settled loans.
	ViewHistory TransactionView = "history"
	// ViewUpcoming returns future-dated entries.
	ViewUpcoming TransactionView = "upcoming"
	// ViewUdhaar returns outstanding lent/borrowed entries.
	ViewUdhaar TransactionView = "udhaar"
)

// TransactionFilter narrows a ledger listing. A zero Now means time.Now().
type TransactionFilter struct {
	View TransactionView
	Type models.TransactionType
	Now  time.Time
}

// LedgerServicer owns all ledger mutation and the derived read models.
type LedgerServicer interface {
	AddTransaction(userID string, draft *models.Transaction) (*models.Transaction, error)
	GetTransaction(userID, transactionID string) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
	SettleUdhaar(userID, transactionID string) (*models.Transaction, error)
	ListTransactions(userID string, filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	Overview(userID string, now time.Time) (*metrics.Overview, error)
	CategoryBreakdown(userID string, now time.Time) ([]metrics.CategoryTotal, error)
}

// SnapshotServicer exchanges whole-ledger snapshots with clients. Import is
// a whole-state replace, never a merge.
type SnapshotServicer interface {
	Export(userID string) (*models.AppState, error)
	Import(userID string, state *models.AppState) error
}
