package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "artha/internal/errors"
	"artha/internal/logger"
	"artha/internal/metrics"
	"artha/internal/models"
	"artha/internal/pagination"
)

type ledgerService struct {
	db *gorm.DB
}

// NewLedgerService creates a LedgerServicer backed by the given database.
func NewLedgerService(db *gorm.DB) LedgerServicer {
	return &ledgerService{db: db}
}

// AddTransaction validates the draft, inserts it, and folds the karma delta
// into the owner's running score. The insert and the karma update happen in
// one database transaction so a crash can never apply one without the other.
func (s *ledgerService) AddTransaction(userID string, draft *models.Transaction) (*models.Transaction, error) {
	draft.UserID = userID
	draft.IsSettled = false
	if draft.Type == models.TransactionTypeIncome {
		draft.Category = models.IncomeCategory
	}
	if draft.Date.IsZero() {
		draft.Date = time.Now()
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := tx.Create(draft).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		newScore := metrics.ApplyKarma(user.KarmaScore, draft)
		if newScore != user.KarmaScore {
			if err := tx.Model(&user).Update("karma_score", newScore).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Infow("transaction added",
		"user_id", userID,
		"transaction_id", draft.ID,
		"type", draft.Type,
		"amount", draft.Amount.String(),
	)
	return draft, nil
}

func (s *ledgerService) GetTransaction(userID, transactionID string) (*models.Transaction, error) {
	var txn models.Transaction
	err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &txn, nil
}

// DeleteTransaction removes the entry if it exists. Removing an unknown id
// is a silent no-op, and the karma score is never re-run: the score records
// behavior at insertion time, not current ledger contents.
func (s *ledgerService) DeleteTransaction(userID, transactionID string) error {
	err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).
		Delete(&models.Transaction{}).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// SettleUdhaar marks a lent/borrowed entry as settled. Settling an already
// settled entry, or an entry that is not a loan, is a no-op that returns
// the entry unchanged. Unknown ids are an error: settlement addresses a
// specific debt, unlike deletion.
func (s *ledgerService) SettleUdhaar(userID, transactionID string) (*models.Transaction, error) {
	txn, err := s.GetTransaction(userID, transactionID)
	if err != nil {
		return nil, err
	}
	if !txn.Type.IsLoan() || txn.IsSettled {
		return txn, nil
	}

	if err := s.db.Model(txn).Update("is_settled", true).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	txn.IsSettled = true

	logger.Get().Infow("udhaar settled",
		"user_id", userID,
		"transaction_id", transactionID,
		"related_person", txn.RelatedPerson,
	)
	return txn, nil
}

// ListTransactions returns a page of the user's ledger, newest first.
func (s *ledgerService) ListTransactions(userID string, filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()
	now := filter.Now
	if now.IsZero() {
		now = time.Now()
	}

	query := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)

	switch filter.View {
	case ViewHistory:
		query = query.Where("date <= ?", now).
			Where("is_settled = ? OR type IN ?", true,
				[]models.TransactionType{models.TransactionTypeIncome, models.TransactionTypeExpense})
	case ViewUpcoming:
		query = query.Where("date > ?", now)
	case ViewUdhaar:
		query = query.Where("type IN ? AND is_settled = ?",
			[]models.TransactionType{models.TransactionTypeLent, models.TransactionTypeBorrowed}, false)
	case ViewAll, "":
		// no view restriction
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown transaction view")
	}

	if filter.Type != "" {
		if !filter.Type.Valid() {
			return nil, apperrors.ErrInvalidTransactionType
		}
		query = query.Where("type = ?", filter.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var txns []models.Transaction
	err := query.Order("date DESC, id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&txns).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(txns, page.Page, page.PageSize, total)
	return &resp, nil
}

// Overview computes the dashboard figures for the user at the given time.
func (s *ledgerService) Overview(userID string, now time.Time) (*metrics.Overview, error) {
	user, txns, err := s.loadLedger(userID)
	if err != nil {
		return nil, err
	}
	overview := metrics.Compute(user, txns, now)
	return &overview, nil
}

// CategoryBreakdown aggregates historical expenses per category.
func (s *ledgerService) CategoryBreakdown(userID string, now time.Time) ([]metrics.CategoryTotal, error) {
	_, txns, err := s.loadLedger(userID)
	if err != nil {
		return nil, err
	}
	return metrics.ExpensesByCategory(txns, now), nil
}

func (s *ledgerService) loadLedger(userID string) (*models.User, []models.Transaction, error) {
	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrUserNotFound
		}
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var txns []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Find(&txns).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, txns, nil
}
