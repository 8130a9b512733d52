package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/FichasBot_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator builds the shared validator with the custom tags
func InitValidator() {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("game", validateGame)
	_ = v.RegisterValidation("category", validateCategory)
	validate = &Validator{validate: v}
}

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	validateOnce.Do(func() {
		if validate == nil {
			InitValidator()
		}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError turns validator errors into a field → message map
// keyed by JSON field names
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "game":
			errs[field] = "Unknown game"
		case "category":
			errs[field] = "Unknown item category"
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of: %s", e.Param())
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min", "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", minBound(e))
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func minBound(e validator.FieldError) string {
	if e.Tag() == "gt" {
		return e.Param()
	}
	return fmt.Sprintf("or equal to %s", e.Param())
}

func validateGame(fl validator.FieldLevel) bool {
	return domain.IsValidGame(fl.Field().String())
}

// Empty is allowed; pair with required when the field is mandatory
func validateCategory(fl validator.FieldLevel) bool {
	c := fl.Field().String()
	return c == "" || domain.ItemCategory(c).IsValid()
}
