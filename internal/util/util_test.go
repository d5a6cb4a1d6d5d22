package util

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "89.99", want: "$89.99"},
		{in: "30", want: "$30.00"},
		{in: "0.5", want: "$0.50"},
		{in: "214.965", want: "$214.97"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45s", FormatDuration(45*time.Second))
	assert.Equal(t, "5m10s", FormatDuration(5*time.Minute+10*time.Second))
	assert.Equal(t, "24h0m", FormatDuration(24*time.Hour))
}
