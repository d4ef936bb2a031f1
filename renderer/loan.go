package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/rsharma/loanbook"
)

// LoanMarkdown renders the full detail view of one loan: resolved figures,
// recorded part payments and the rate change history.
func LoanMarkdown(loan loanbook.Loan, d loanbook.LoanDetails, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Loan %q", loan.Name))
	if !loan.IsActive {
		doc.PlainText("This loan is closed.")
	}
	if d.Stuck {
		doc.PlainText("Warning: the EMI does not cover the monthly interest. Raise the EMI to make progress.")
	}

	doc.Table(md.TableSet{
		Header: []string{"Field", "Value"},
		Rows: [][]string{
			{"Principal", amount(loan.PrincipalAmount, currency)},
			{"Outstanding", amount(d.RemainingPrincipal, currency)},
			{"Interest Rate", loanbook.Percent(loan.InterestRate).String()},
			{"EMI", amount(d.EmiAmount, currency)},
			{"EMIs Paid", count(d.EmisPaid, loan.TenureMonths)},
			{"Remaining Interest", amount(d.TotalInterest, currency)},
			{"Remaining Total", amount(d.TotalAmount, currency)},
			{"Start Date", date(loan.StartDate)},
			{"Next EMI", date(d.NextEmiDate)},
		},
	})

	if len(loan.PartPayments) > 0 {
		doc.H2("Part Payments")
		table := md.TableSet{Header: []string{"Date", "Amount", "Description"}}
		for _, pp := range loan.PartPayments {
			table.Rows = append(table.Rows, []string{date(pp.Date), amount(pp.Amount, currency), pp.Description})
		}
		doc.Table(table)
	}

	if len(loan.RateChanges) > 0 {
		doc.H2("Rate Changes")
		table := md.TableSet{Header: []string{"Date", "From", "To"}}
		for _, rc := range loan.RateChanges {
			table.Rows = append(table.Rows, []string{
				date(rc.Date),
				loanbook.Percent(rc.OldRate).String(),
				loanbook.Percent(rc.NewRate).String(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}

// ScheduleMarkdown renders the month-by-month amortization of one loan.
func ScheduleMarkdown(name, currency string, series []loanbook.ProjectionMonth) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Amortization Schedule for %q", name))
	if len(series) == 0 {
		doc.PlainText("Nothing to amortize.")
		return doc.String()
	}
	doc.Table(scheduleTable(currency, series))
	return doc.String()
}

func scheduleTable(currency string, series []loanbook.ProjectionMonth) md.TableSet {
	table := md.TableSet{
		Header: []string{"Month", "Principal", "Interest", "Balance"},
	}
	for _, e := range series {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", e.Month),
			amount(e.Principal, currency),
			amount(e.Interest, currency),
			amount(e.Balance, currency),
		})
	}
	return table
}
