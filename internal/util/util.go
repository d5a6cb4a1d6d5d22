package util

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FormatPrice formats an amount as dollars with two decimal places (e.g., "$89.99").
func FormatPrice(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
