package handlers

import (
	"log/slog"
	"sync"

	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the domain-specific binding tags to gin's validator.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			slog.Warn("Gin validator engine is not go-playground/validator; custom tags unavailable")
			return
		}
		if err := v.RegisterValidation("budget_category", validBudgetCategory); err != nil {
			slog.Error("Failed to register budget_category validator", slog.String("error", err.Error()))
		}
	})
}

func validBudgetCategory(fl validator.FieldLevel) bool {
	return domain.BudgetCategory(fl.Field().String()).IsValid()
}
