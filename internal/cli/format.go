// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount with two decimal places.
// e.g., 1200 -> "1200.00", 12.5 -> "12.50"
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatPercent formats a percentage value.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDate formats a timestamp as a calendar date.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

// FormatDuration formats a remaining-occurrences counter; nil means unbounded.
func FormatDuration(d *int) string {
	if d == nil {
		return "∞"
	}
	return fmt.Sprintf("%d", *d)
}
