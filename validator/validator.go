package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag"`
	Value   string `json:"value,omitempty"`
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

// New creates a new validator instance
func New() *Validator {
	v := validator.New()

	// Register custom tag name function to use JSON tags
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validators
	v.RegisterValidation("unittype", validateUnitType)
	v.RegisterValidation("unitstatus", validateUnitStatus)
	v.RegisterValidation("obligationtype", validateObligationType)
	v.RegisterValidation("frequency", validateFrequency)
	v.RegisterValidation("direction", validateDirection)
	v.RegisterValidation("dateformat", validateDateFormat)

	return &Validator{validate: v}
}

// Validate validates a struct and returns validation errors
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	// Convert validation errors to our custom format
	var validationErrs ValidationErrors
	for _, err := range err.(validator.ValidationErrors) {
		validationErrs = append(validationErrs, ValidationError{
			Field:   err.Field(),
			Message: msgForTag(err),
			Tag:     err.Tag(),
			Value:   fmt.Sprintf("%v", err.Value()),
		})
	}

	return validationErrs
}

// msgForTag returns a human-readable error message for a validation tag
func msgForTag(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "unittype":
		return fmt.Sprintf("%s must be one of: apartment, building, floor, room, shop", field)
	case "unitstatus":
		return fmt.Sprintf("%s must be one of: vacant, rented, maintenance", field)
	case "obligationtype":
		return fmt.Sprintf("%s must be one of: rent, installment, mortgage, association_fee, insurance", field)
	case "frequency":
		return fmt.Sprintf("%s must be one of: monthly, quarterly, semi_annual, annual", field)
	case "direction":
		return fmt.Sprintf("%s must be either 'incoming' or 'outgoing'", field)
	case "dateformat":
		return fmt.Sprintf("%s must be in YYYY-MM-DD format", field)
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// Custom validators

func validateUnitType(fl validator.FieldLevel) bool {
	validTypes := map[string]bool{
		"apartment": true,
		"building":  true,
		"floor":     true,
		"room":      true,
		"shop":      true,
	}
	return validTypes[fl.Field().String()]
}

func validateUnitStatus(fl validator.FieldLevel) bool {
	validStatuses := map[string]bool{
		"vacant":      true,
		"rented":      true,
		"maintenance": true,
	}
	return validStatuses[fl.Field().String()]
}

func validateObligationType(fl validator.FieldLevel) bool {
	validTypes := map[string]bool{
		"rent":            true,
		"installment":     true,
		"mortgage":        true,
		"association_fee": true,
		"insurance":       true,
	}
	return validTypes[fl.Field().String()]
}

func validateFrequency(fl validator.FieldLevel) bool {
	validFrequencies := map[string]bool{
		"monthly":     true,
		"quarterly":   true,
		"semi_annual": true,
		"annual":      true,
	}
	return validFrequencies[fl.Field().String()]
}

func validateDirection(fl validator.FieldLevel) bool {
	direction := fl.Field().String()
	return direction == "incoming" || direction == "outgoing"
}

// validateDateFormat validates YYYY-MM-DD format
func validateDateFormat(fl validator.FieldLevel) bool {
	date := fl.Field().String()
	datePattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	return datePattern.MatchString(date)
}
