// Package validation binds and validates request payloads.
//
// Rules are declared with validator struct tags on the request types.
// Failures are turned into a 400 *errs.HTTPError carrying one FieldError
// per invalid field, keyed by the field's JSON name.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/movies-api/internal/errs"
)

// ReleaseLayouts are the accepted date layouts for a release value.
// A bare four digit year is accepted as well.
var ReleaseLayouts = []string{"02/01/2006", "2006-01-02"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("release", func(fl validator.FieldLevel) bool {
		return IsValidRelease(fl.Field().String())
	})

	return v
}

// Struct validates s against its struct tags using the shared validator.
func Struct(s any) error {
	return validate.Struct(s)
}

// IsValidRelease reports whether value is a DD/MM/YYYY date, an ISO date or
// a positive four digit year. Surrounding whitespace is rejected since the
// value is stored verbatim.
func IsValidRelease(value string) bool {
	if value == "" || value != strings.TrimSpace(value) {
		return false
	}

	for _, layout := range ReleaseLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}

	if len(value) != 4 {
		return false
	}
	year, err := time.Parse("2006", value)
	return err == nil && year.Year() > 0
}

// Validatable is implemented by request payloads.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a failure that can't be expressed as a tag.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors lets Validate return several custom failures.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds the request into payload and validates it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors)
	}

	return nil
}

// bindError converts echo binder failures into 400 validation errors. JSON
// type mismatches name the offending field; the decoder's own message is
// never returned to the client.
func bindError(err error) error {
	var bindingErr *echo.BindingError
	if errors.As(err, &bindingErr) {
		return errs.NewBadRequestError(
			fmt.Sprintf("invalid value for field %s", bindingErr.Field),
			false,
			nil,
			[]errs.FieldError{{Field: bindingErr.Field, Error: "has an invalid value"}},
		)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return errs.NewBadRequestError("Validation failed", true, nil,
			[]errs.FieldError{{Field: field, Error: "has an invalid type"}})
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code == http.StatusUnsupportedMediaType {
		return errs.NewBadRequestError("Validation failed", true, nil,
			[]errs.FieldError{{Field: "body", Error: "must be sent as application/json"}})
	}

	return errs.NewBadRequestError("Invalid request payload", false, nil, nil)
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customErrors CustomValidationErrors
	if errors.As(err, &customErrors) {
		for _, e := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: e.Field,
				Error: e.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Validation failed", []errs.FieldError{{Field: "body", Error: err.Error()}}
	}

	for _, e := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: e.Field(),
			Error: fieldMessage(e),
		})
	}

	return "Validation failed", fieldErrors
}

func fieldMessage(e validator.FieldError) string {
	kind := e.Kind()
	if kind == reflect.Pointer {
		kind = e.Type().Elem().Kind()
	}

	switch e.Tag() {
	case "required", "notblank":
		return "is required"

	case "min":
		if kind == reflect.String {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("must be at least %s", e.Param())

	case "max":
		if kind == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", e.Param())
		}
		return fmt.Sprintf("must not exceed %s", e.Param())

	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())

	case "release":
		return "must be a date (DD/MM/YYYY or YYYY-MM-DD) or a four digit year"

	default:
		if e.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", e.Field(), e.Tag(), e.Param())
		}
		return fmt.Sprintf("%s: %s", e.Field(), e.Tag())
	}
}
