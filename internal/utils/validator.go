// internal/utils/validator.go
package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/javajoker/subscription-index/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("sort_key", validateSortKey)
	validate.RegisterValidation("vpn_plan", validateVpnPlan)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSortKey(fl validator.FieldLevel) bool {
	return models.SortKey(fl.Field().String()).Valid()
}

func validateVpnPlan(fl validator.FieldLevel) bool {
	return models.VpnPlan(fl.Field().String()).Valid()
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gte":
		return e.Field() + " must be greater than or equal to " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "sort_key":
		return "Sort must be one of: savings, product, category, price"
	case "vpn_plan":
		return "Plan must be monthly or yearly"
	default:
		return e.Field() + " is invalid"
	}
}
