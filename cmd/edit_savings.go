package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rsharma/loanbook"
)

type editSavingsCmd struct {
	name     string
	category string
	amount   float64
	date     string
}

func (*editSavingsCmd) Name() string     { return "edit-savings" }
func (*editSavingsCmd) Synopsis() string { return "update a savings account balance" }
func (*editSavingsCmd) Usage() string {
	return `lbk edit-savings -name <name> -amount <amount> [-category <category>] [-d <date>]

  Replaces the balance of a savings account, and its category when given.
`
}

func (c *editSavingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the account.")
	f.StringVar(&c.category, "category", "", "New category. Keeps the current one when empty.")
	f.Float64Var(&c.amount, "amount", 0, "New balance.")
	f.StringVar(&c.date, "d", "0d", "Date of the update.")
}

func (c *editSavingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := loanbook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	updated, err := book.UpdateSavings(c.name, c.amount, c.category, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating savings account: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated savings account %q to %s\n", updated.Name, loanbook.M(updated.Amount, book.Currency()).Round())
	return subcommands.ExitSuccess
}
