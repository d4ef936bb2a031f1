// Package renderer builds the markdown reports shown by the CLI. Every
// renderer takes resolved domain values and returns a markdown string; the
// caller decides how to print it.
package renderer

import (
	"fmt"

	"github.com/rsharma/loanbook"
)

// amount formats a monetary value in the book currency.
func amount(v float64, currency string) string {
	return loanbook.M(v, currency).Round().String()
}

// date formats a date, or "-" for the zero date.
func date(d loanbook.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.String()
}

// count formats an EMI count as "n/total".
func count(paid, total int) string {
	return fmt.Sprintf("%d/%d", paid, total)
}
