package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"artha/internal/models"
)

var userCounter atomic.Int64

// CreateTestUser inserts a user with sensible defaults and a unique email.
// Overrides mutate the user before insertion.
func CreateTestUser(t *testing.T, db *gorm.DB, overrides ...func(*models.User)) *models.User {
	t.Helper()

	n := userCounter.Add(1)
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash fixture password: %v", err)
	}

	user := &models.User{
		Name:           fmt.Sprintf("Test User %d", n),
		Email:          fmt.Sprintf("user%d@example.com", n),
		Password:       string(hash),
		MonthlyIncome:  decimal.NewFromInt(50000),
		TargetAmount:   decimal.NewFromInt(1000000),
		CurrentSavings: decimal.NewFromInt(20000),
		FinancialGoal:  "Emergency fund",
		CurrencySymbol: "₹",
		SavingsLevel:   models.SavingsLevelNovice,
		KarmaScore:     models.KarmaInitial,
	}
	for _, override := range overrides {
		override(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransaction inserts a transaction belonging to the given user.
// Defaults to a modest food expense dated yesterday.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID string, overrides ...func(*models.Transaction)) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		UserID:      userID,
		Type:        models.TransactionTypeExpense,
		Amount:      decimal.NewFromInt(500),
		Category:    models.CategoryFood,
		Description: "Lunch",
		Date:        time.Now().AddDate(0, 0, -1),
	}
	for _, override := range overrides {
		override(txn)
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return txn
}
