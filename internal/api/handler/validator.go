package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// addressPattern limits free-form street addresses to letters, digits,
// spaces and common punctuation.
var addressPattern = regexp.MustCompile(`^[\p{L}\p{N} .,'\-/#]+$`)

// echoValidator wraps go-playground/validator so Echo can call
// c.Validate(req). Violations for all fields are aggregated into one
// "field: message, field: message" string; within a single field evaluation
// stops at the first failing rule, so an empty required field reports only
// that it is required.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to
// echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()

	// Report json field names, not Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("address", func(fl validator.FieldLevel) bool {
		return addressPattern.MatchString(fl.Field().String())
	})

	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Violations surface as a
// 400 with all field messages joined, so the central error handler passes
// them through verbatim.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return echo.NewHTTPError(http.StatusBadRequest, strings.Join(msgs, ", "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a "field: message" pair.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + ": is required"
	case "email":
		return field + ": must be a valid email"
	case "min":
		return fmt.Sprintf("%s: must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s: must be at most %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s: must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s: must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s: must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", field, fe.Param())
	case "hexcolor":
		return field + ": must be a hex color"
	case "alpha":
		return field + ": must contain only letters"
	case "address":
		return field + ": contains invalid characters"
	case "datetime":
		return field + ": must be a date in YYYY-MM-DD format"
	default:
		return fmt.Sprintf("%s: failed validation (%s)", field, fe.Tag())
	}
}
