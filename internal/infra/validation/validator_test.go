package validation

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productInput struct {
	Name   string          `json:"name" validate:"required,min=2"`
	Price  decimal.Decimal `json:"price" validate:"gt=0"`
	Images []string        `json:"images" validate:"min=1,dive,url"`
	Email  string          `json:"email" validate:"omitempty,email"`
}

func TestStruct(t *testing.T) {
	t.Parallel()

	v := New()

	tests := []struct {
		name       string
		input      productInput
		wantFields map[string]string
	}{
		{
			name: "valid input",
			input: productInput{
				Name:   "Cricket Bat",
				Price:  decimal.RequireFromString("89.99"),
				Images: []string{"https://cdn.example.com/bat.png"},
			},
		},
		{
			name: "short name and zero price",
			input: productInput{
				Name:   "B",
				Price:  decimal.Zero,
				Images: []string{"https://cdn.example.com/bat.png"},
			},
			wantFields: map[string]string{
				"name":  "must be at least 2 characters",
				"price": "must be greater than 0",
			},
		},
		{
			name: "missing images",
			input: productInput{
				Name:  "Bat",
				Price: decimal.RequireFromString("1"),
			},
			wantFields: map[string]string{
				"images": "must contain at least 1 item(s)",
			},
		},
		{
			name: "malformed image url and email",
			input: productInput{
				Name:   "Bat",
				Price:  decimal.RequireFromString("1"),
				Images: []string{"not a url"},
				Email:  "nobody",
			},
			wantFields: map[string]string{
				"images[0]": "must be a valid URL",
				"email":     "must be a valid email address",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Struct(v, &tt.input)
			if tt.wantFields == nil {
				require.NoError(t, err)

				return
			}

			var vErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantFields, vErr.Fields())
		})
	}
}

func TestToValidationError_PassesThroughOtherErrors(t *testing.T) {
	cause := errors.New("boom")

	assert.Equal(t, cause, ToValidationError(cause))
}
