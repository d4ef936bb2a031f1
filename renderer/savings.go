package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/rsharma/loanbook"
)

// SavingsMarkdown renders the savings accounts with their total.
func SavingsMarkdown(currency string, accounts []loanbook.SavingsAccount, total float64) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Savings")
	if len(accounts) == 0 {
		doc.PlainText("No savings accounts recorded.")
		return doc.String()
	}

	table := md.TableSet{Header: []string{"Account", "Category", "Amount", "Updated"}}
	for _, a := range accounts {
		updated := a.UpdatedDate
		if updated.IsZero() {
			updated = a.CreatedDate
		}
		table.Rows = append(table.Rows, []string{a.Name, a.Category, amount(a.Amount, currency), date(updated)})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Total: %s", amount(total, currency)))
	return doc.String()
}
