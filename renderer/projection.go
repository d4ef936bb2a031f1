package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/rsharma/loanbook"
)

// ProjectionMarkdown renders a combined payment projection. The series is
// already capped by the engine; the renderer only adds the running totals.
func ProjectionMarkdown(title, currency string, series []loanbook.ProjectionMonth) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(series) == 0 {
		doc.PlainText("Nothing left to pay.")
		return doc.String()
	}

	var principal, interest float64
	for _, e := range series {
		principal += e.Principal
		interest += e.Interest
	}
	doc.PlainText(fmt.Sprintf("Over the next %d months: %s principal, %s interest.",
		len(series), amount(principal, currency), amount(interest, currency)))

	doc.Table(scheduleTable(currency, series))
	return doc.String()
}

// WhatIfMarkdown renders the outcome of a hypothetical part payment.
func WhatIfMarkdown(loan loanbook.Loan, d loanbook.LoanDetails, payment, saved float64, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("What if: %s on %q", amount(payment, currency), loan.Name))
	doc.PlainText(fmt.Sprintf("Outstanding today: %s at %s.",
		amount(d.RemainingPrincipal, currency), loanbook.Percent(loan.InterestRate)))
	doc.PlainText(fmt.Sprintf("Estimated interest saved: %s.", amount(saved, currency)))
	return doc.String()
}
