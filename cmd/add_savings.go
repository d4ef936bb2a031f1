package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rsharma/loanbook"
)

type addSavingsCmd struct {
	name     string
	category string
	amount   float64
	date     string
}

func (*addSavingsCmd) Name() string     { return "add-savings" }
func (*addSavingsCmd) Synopsis() string { return "record a savings account" }
func (*addSavingsCmd) Usage() string {
	return `lbk add-savings -name <name> -amount <amount> [-category <category>] [-d <date>]

  Records a savings account. Savings are tracked as flat balances next to the
  loans so the overview shows both sides.
`
}

func (c *addSavingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Unique name for the account.")
	f.StringVar(&c.category, "category", "", "Free-form category, like fd or stocks.")
	f.Float64Var(&c.amount, "amount", 0, "Current balance.")
	f.StringVar(&c.date, "d", "0d", "Creation date of the record.")
}

func (c *addSavingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	err = book.AddSavings(loanbook.SavingsAccount{
		Name:        c.name,
		Category:    c.category,
		Amount:      c.amount,
		CreatedDate: on,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding savings account: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added savings account %q with %s\n", c.name, loanbook.M(c.amount, book.Currency()).Round())
	return subcommands.ExitSuccess
}
