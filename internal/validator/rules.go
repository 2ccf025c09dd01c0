package validator

import (
	"jobboard_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires domain-specific rules into the validator.
func registerCustomRules(v *validator.Validate) error {
	return v.RegisterValidation("job_type", func(fl validator.FieldLevel) bool {
		return models.ValidJobType(fl.Field().String())
	})
}
