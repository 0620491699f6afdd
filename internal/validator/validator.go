// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("savings_level", validateSavingsLevel)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "INCOME", "EXPENSE", "LENT", "BORROWED":
		return true
	}
	return false
}

// Savings levels are a closed label set, unlike expense categories which
// stay free-form.
func validateSavingsLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Novice", "Saver", "Investor", "Arthashastra Master":
		return true
	}
	return false
}
