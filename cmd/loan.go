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

// loanCmd shows the resolved detail of one loan, optionally with its full
// amortization schedule.
type loanCmd struct {
	date     string
	schedule bool
}

func (*loanCmd) Name() string     { return "loan" }
func (*loanCmd) Synopsis() string { return "display the detail of one loan" }
func (*loanCmd) Usage() string {
	return `lbk loan [-d <date>] [-schedule] <name>

  Displays the resolved state of one loan: outstanding balance, EMIs paid and
  remaining, interest left, part payments and rate history. With -schedule it
  also prints the month-by-month amortization.
`
}

func (c *loanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Date to resolve the loan on.")
	f.BoolVar(&c.schedule, "schedule", false, "Also print the amortization schedule.")
}

func (c *loanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one loan name")
		return subcommands.ExitUsageError
	}

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
	loan, details, err := s.ResolveName(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.LoanMarkdown(loan, details, book.Currency()))
	if c.schedule {
		printMarkdown(renderer.ScheduleMarkdown(loan.Name, book.Currency(), s.Project(loan)))
	}
	return subcommands.ExitSuccess
}
