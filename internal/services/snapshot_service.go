package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "artha/internal/errors"
	"artha/internal/logger"
	"artha/internal/metrics"
	"artha/internal/models"
)

type snapshotService struct {
	db *gorm.DB
}

// NewSnapshotService creates a SnapshotServicer backed by the given database.
func NewSnapshotService(db *gorm.DB) SnapshotServicer {
	return &snapshotService{db: db}
}

// Export captures the user's whole state as a versioned snapshot. The
// password hash never leaves the server: the User type excludes it from
// JSON, and Import preserves the stored credential.
func (s *snapshotService) Export(userID string) (*models.AppState, error) {
	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var txns []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Order("date ASC, id ASC").Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user.Password = ""
	return &models.AppState{
		Version:      models.SnapshotVersion,
		ExportedAt:   time.Now().UTC(),
		User:         user,
		Transactions: txns,
	}, nil
}

// Import replaces the user's state with the snapshot: last writer wins,
// never a merge. Identity (id, email, password) stays with the stored row;
// profile figures, the karma score, and the full transaction collection
// come from the snapshot. A single invalid entry rejects the whole import.
func (s *snapshotService) Import(userID string, state *models.AppState) error {
	if state == nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "snapshot is required")
	}
	if state.Version != models.SnapshotVersion {
		return apperrors.ErrSnapshotVersion
	}

	incoming := make([]models.Transaction, len(state.Transactions))
	for i := range state.Transactions {
		t := state.Transactions[i]
		t.UserID = userID
		if err := t.Validate(); err != nil {
			return err
		}
		incoming[i] = t
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		user.Name = state.User.Name
		user.MonthlyIncome = state.User.MonthlyIncome
		user.FinancialGoal = state.User.FinancialGoal
		user.TargetAmount = state.User.TargetAmount
		user.CurrentSavings = state.User.CurrentSavings
		if state.User.CurrencySymbol != "" {
			user.CurrencySymbol = state.User.CurrencySymbol
		}
		if state.User.SavingsLevel != "" {
			user.SavingsLevel = state.User.SavingsLevel
		}
		user.KarmaScore = metrics.ClampKarma(state.User.KarmaScore)
		user.BioAuthEnabled = state.User.BioAuthEnabled
		if err := user.Validate(); err != nil {
			return err
		}
		if err := tx.Save(&user).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		// Hard delete so re-imported snapshot ids do not collide with
		// soft-deleted rows.
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.Transaction{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		for i := range incoming {
			if err := tx.Create(&incoming[i]).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Get().Infow("snapshot imported",
		"user_id", userID,
		"transactions", len(incoming),
		"exported_at", state.ExportedAt,
	)
	return nil
}
