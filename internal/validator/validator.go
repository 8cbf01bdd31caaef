// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"walletmate/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("budget_category", validateBudgetCategory)
		_ = v.RegisterValidation("recurrence_type", validateRecurrenceType)
	}
}

func validateBudgetCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).IsValid()
}

func validateRecurrenceType(fl validator.FieldLevel) bool {
	return models.RecurrenceType(fl.Field().String()).IsValid()
}
