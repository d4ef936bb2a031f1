package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/rsharma/loanbook"
)

// SummaryMarkdown renders the portfolio overview: totals first, then one row
// per active loan.
func SummaryMarkdown(s *loanbook.PortfolioSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Loan Portfolio on %s", s.Date))
	doc.PlainText(fmt.Sprintf("Total Debt: %s", amount(s.TotalDebt, s.Currency)))
	doc.PlainText(fmt.Sprintf("Monthly EMI: %s", amount(s.TotalMonthlyEmi, s.Currency)))
	doc.PlainText(fmt.Sprintf("Total Savings: %s", amount(s.TotalSavings, s.Currency)))
	doc.PlainText(fmt.Sprintf("Next EMI due: %s", date(s.NextEmiDate)))

	if len(s.Loans) > 0 {
		doc.H2("Active Loans")
		doc.Table(loanTable(s.Currency, s.Loans))
	}

	return doc.String()
}

// LoansMarkdown renders a plain table of loans, used by the list command. It
// can include inactive loans, which the summary never shows.
func LoansMarkdown(title, currency string, lines []loanbook.LoanLine) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(lines) == 0 {
		doc.PlainText("No loans recorded.")
		return doc.String()
	}
	doc.Table(loanTable(currency, lines))
	return doc.String()
}

func loanTable(currency string, lines []loanbook.LoanLine) md.TableSet {
	table := md.TableSet{
		Header: []string{"Loan", "Rate", "EMI", "Paid", "Outstanding", "Next Due"},
	}
	for _, l := range lines {
		d := l.Details
		emi := amount(d.EmiAmount, currency)
		if d.Stuck {
			emi += " (EMI too low)"
		}
		table.Rows = append(table.Rows, []string{
			l.Name,
			l.Rate.String(),
			emi,
			count(d.EmisPaid, d.EmisPaid+d.RemainingEmis),
			amount(d.RemainingPrincipal, currency),
			date(d.NextEmiDate),
		})
	}
	return table
}
