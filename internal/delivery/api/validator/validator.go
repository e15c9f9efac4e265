// Package validator adapts go-playground/validator to echo and to the domain error taxonomy.
package validator

import (
	"reflect"
	"strings"

	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/optional"
	"addressbook/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator that reports fields by their JSON names and understands
// optional values: an absent value is a nil pointer to the rules, so "omitnil" skips it.
func New() *CustomValidator {
	validate := validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)

	registerOptional[string](validate)
	registerOptional[float64](validate)
	registerOptional[int](validate)

	return &CustomValidator{validate: validate}
}

// Validate checks i against its validate tags. Failures come back as a validation
// AppError whose message lists every offending field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate request")
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, describe(fieldErr))
	}

	return domainerrors.NewValidationError(strings.Join(messages, "; "))
}

func registerOptional[T any](validate *validator.Validate) {
	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		value, ok := field.Interface().(optional.Value[T])
		if !ok {
			return nil
		}

		return value.Ptr()
	}, optional.Value[T]{})
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}

	return name
}

func describe(fieldErr validator.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "min":
		if fieldErr.Kind() == reflect.String {
			if fieldErr.Param() == "1" {
				return field + " must not be empty"
			}

			return field + " must be at least " + fieldErr.Param() + " characters long"
		}

		return field + " must be at least " + fieldErr.Param()
	case "max":
		if fieldErr.Kind() == reflect.String {
			return field + " must be at most " + fieldErr.Param() + " characters"
		}

		return field + " must be at most " + fieldErr.Param()
	case "gte":
		return field + " must be greater than or equal to " + fieldErr.Param()
	case "lte":
		return field + " must be less than or equal to " + fieldErr.Param()
	case "email":
		return field + " must be a valid email address"
	default:
		return field + " is invalid"
	}
}
