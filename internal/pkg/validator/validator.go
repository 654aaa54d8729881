package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single failed validation rule
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// EchoValidator adapts go-playground/validator to Echo's Validator interface
type EchoValidator struct {
	validate *validator.Validate
}

// New creates a request validator
func New() *EchoValidator {
	return &EchoValidator{validate: validator.New()}
}

// Validate checks a bound request struct against its validate tags
func (v *EchoValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// FieldErrors converts a validation error into per-field details for the
// response body. Returns nil when err is not a validation error.
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if ok := asValidationErrors(err, &verrs); !ok {
		return nil
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Rule:    fe.Tag(),
			Message: messageFor(fe),
		})
	}
	return details
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = verrs
	return true
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", strings.ToLower(fe.Field()))
	case "email":
		return "invalid email format"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", strings.ToLower(fe.Field()), fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", strings.ToLower(fe.Field()), fe.Param())
	default:
		return fmt.Sprintf("%s failed on rule %s", strings.ToLower(fe.Field()), fe.Tag())
	}
}
