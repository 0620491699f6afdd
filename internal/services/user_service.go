package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "artha/internal/errors"
	"artha/internal/logger"
	"artha/internal/models"
)

type userService struct {
	db *gorm.DB
}

// NewUserService creates a UserServicer backed by the given database.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// Register creates a profile. Emails are normalized to lower case, the
// password is stored as a bcrypt hash, and the karma score always starts
// at the initial value regardless of input.
func (s *userService) Register(input RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if len(input.Password) < 8 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "password must be at least 8 characters")
	}

	currency := input.CurrencySymbol
	if currency == "" {
		currency = "₹"
	}

	user := &models.User{
		Name:           strings.TrimSpace(input.Name),
		Email:          email,
		MonthlyIncome:  input.MonthlyIncome,
		FinancialGoal:  input.FinancialGoal,
		TargetAmount:   input.TargetAmount,
		CurrentSavings: input.CurrentSavings,
		CurrencySymbol: currency,
		SavingsLevel:   models.SavingsLevelNovice,
		KarmaScore:     models.KarmaInitial,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	user.Password = string(hash)

	if err := s.db.Create(user).Error; err != nil {
		// The unique index closes the race between the count and the insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("user registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// AttemptLogin verifies the email/password pair. Unknown emails and wrong
// passwords return the same error so the response does not reveal which
// half failed.
func (s *userService) AttemptLogin(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &user, nil
}

func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// UpdateProfile applies the non-nil fields of the update. The karma score
// and the password cannot be changed through this path.
func (s *userService) UpdateProfile(userID string, update ProfileUpdate) (*models.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = strings.TrimSpace(*update.Name)
	}
	if update.MonthlyIncome != nil {
		user.MonthlyIncome = *update.MonthlyIncome
	}
	if update.FinancialGoal != nil {
		user.FinancialGoal = *update.FinancialGoal
	}
	if update.TargetAmount != nil {
		user.TargetAmount = *update.TargetAmount
	}
	if update.CurrentSavings != nil {
		user.CurrentSavings = *update.CurrentSavings
	}
	if update.CurrencySymbol != nil {
		user.CurrencySymbol = *update.CurrencySymbol
	}
	if update.SavingsLevel != nil {
		user.SavingsLevel = *update.SavingsLevel
	}
	if update.BioAuthEnabled != nil {
		user.BioAuthEnabled = *update.BioAuthEnabled
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.Save(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, nil
}
