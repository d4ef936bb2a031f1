package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rsharma/loanbook"
	"github.com/rsharma/loanbook/renderer"
)

type savingsCmd struct {
	date string
}

func (*savingsCmd) Name() string     { return "savings" }
func (*savingsCmd) Synopsis() string { return "display the savings accounts" }
func (*savingsCmd) Usage() string {
	return `lbk savings [-d <date>]

  Displays the savings accounts and their total.
`
}

func (c *savingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Date of the report.")
}

func (c *savingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	s := book.SnapshotAt(on)

	printMarkdown(renderer.SavingsMarkdown(book.Currency(), book.Savings(), s.TotalSavings()))
	return subcommands.ExitSuccess
}
