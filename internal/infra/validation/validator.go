// Package validation configures go-playground/validator for storefront inputs and
// translates its failures into per-field domain validation errors.
package validation

import (
	"reflect"
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// New returns a validator that reports JSON field names and understands decimal amounts.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()

			return f
		}

		return nil
	}, decimal.Decimal{})

	return v
}

// Struct validates s and returns a *domainerrors.ValidationError describing every failing field.
func Struct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	return ToValidationError(err)
}

// ToValidationError converts validator failures into a domain validation error.
// Errors that did not come from field validation are returned unchanged.
func ToValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		key := fieldKey(fe)
		if _, exists := fields[key]; exists {
			continue
		}
		fields[key] = message(fe)
	}

	return domainerrors.NewValidationError(fields)
}

// fieldKey drops the top-level struct name from the namespace, e.g. "req.images[0]" becomes "images[0]".
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "must contain at least " + fe.Param() + " item(s)"
		}

		return "must be at least " + fe.Param() + " characters"
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}
