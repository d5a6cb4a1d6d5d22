// Package validator adapts the storefront validation rules to echo's Validator.
package validator

import (
	"storefront/internal/infra/validation"

	playground "github.com/go-playground/validator/v10"
)

// EchoValidator validates bound request bodies.
type EchoValidator struct {
	validate *playground.Validate
}

// New creates an EchoValidator with its own validator instance.
func New() *EchoValidator {
	return &EchoValidator{validate: validation.New()}
}

// NewWithValidate wraps an existing validator instance.
func NewWithValidate(validate *playground.Validate) *EchoValidator {
	return &EchoValidator{validate: validate}
}

// Validate returns a *domainerrors.ValidationError when i fails its validate tags.
func (v *EchoValidator) Validate(i any) error {
	return validation.Struct(v.validate, i)
}
