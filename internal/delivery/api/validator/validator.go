// Package validator adapts go-playground/validator to echo.
package validator

import (
	"regexp"
	"strings"

	"drinkpos/internal/errors"

	"github.com/go-playground/validator/v10"
)

var (
	dateRegexp  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRegexp = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with the shop's custom tags registered.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// date: YYYY-MM-DD
	_ = validate.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		return dateRegexp.MatchString(fl.Field().String())
	})
	// clock: HH:MM, 24h
	_ = validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return clockRegexp.MatchString(fl.Field().String())
	})

	return &Validator{validate: validate}
}

// Validate validates a struct and flattens field errors into one readable message.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, describe(fieldErr))
	}

	return errors.New(strings.Join(messages, "; "))
}

func describe(fieldErr validator.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return field + " must be one of " + fieldErr.Param()
	case "min":
		return field + " must be at least " + fieldErr.Param()
	case "max":
		return field + " must be at most " + fieldErr.Param()
	case "date":
		return field + " must be a YYYY-MM-DD date"
	case "clock":
		return field + " must be a HH:MM time"
	default:
		return field + " failed " + fieldErr.Tag() + " validation"
	}
}
