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

type listCmd struct {
	date string
	all  bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the loans in the book" }
func (*listCmd) Usage() string {
	return `lbk list [-d <date>] [-all]

  Lists the loans with their resolved state on the given date. Closed loans
  are hidden unless -all is passed.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Date to resolve the loans on.")
	f.BoolVar(&c.all, "all", false, "Include closed loans.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var lines []loanbook.LoanLine
	for _, l := range book.Loans() {
		if !l.IsActive && !c.all {
			continue
		}
		lines = append(lines, loanbook.LoanLine{
			Name:    l.Name,
			Rate:    loanbook.Percent(l.InterestRate),
			Details: s.Resolve(l),
		})
	}

	printMarkdown(renderer.LoansMarkdown(fmt.Sprintf("Loans on %s", on), book.Currency(), lines))
	return subcommands.ExitSuccess
}
