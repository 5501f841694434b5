package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// hhmm checks time-of-day by pattern only: HH 00-23, MM 00-59.
var hhmmRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// FieldError pairs a violated rule with the field it concerns.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmRegex.MatchString(fl.Field().String())
	})
	// Report fields under their JSON names so failure details match the
	// request body keys.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors flattens validator errors into one entry per
// broken field, in struct declaration order.
func (cv *CustomValidator) FormatValidationErrors(err error) []FieldError {
	var details []FieldError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			var message string
			switch e.Tag() {
			case "required":
				message = field + " is required"
			case "email":
				message = field + " must be a valid email address"
			case "min":
				message = field + " must be at least " + e.Param() + " characters"
			case "max":
				message = field + " must be at most " + e.Param() + " characters"
			case "gte":
				message = field + " must be greater than or equal to " + e.Param()
			case "lte":
				message = field + " must be less than or equal to " + e.Param()
			case "datetime":
				message = field + " must be a valid date in YYYY-MM-DD format"
			case "hhmm":
				message = field + " must be a valid time in HH:MM format"
			default:
				message = field + " is invalid"
			}
			details = append(details, FieldError{Field: field, Message: message})
		}
	}

	return details
}
