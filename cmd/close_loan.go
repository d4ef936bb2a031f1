package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type closeLoanCmd struct{}

func (*closeLoanCmd) Name() string     { return "close-loan" }
func (*closeLoanCmd) Synopsis() string { return "mark a loan as closed" }
func (*closeLoanCmd) Usage() string {
	return `lbk close-loan <name>

  Marks a loan as closed. A closed loan keeps its history but no longer
  counts in any total, projection or suggestion.
`
}

func (*closeLoanCmd) SetFlags(f *flag.FlagSet) {}

func (c *closeLoanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return setActive(f, false)
}

type reopenLoanCmd struct{}

func (*reopenLoanCmd) Name() string     { return "reopen-loan" }
func (*reopenLoanCmd) Synopsis() string { return "reopen a closed loan" }
func (*reopenLoanCmd) Usage() string {
	return `lbk reopen-loan <name>

  Reopens a closed loan so it counts again in totals and projections.
`
}

func (*reopenLoanCmd) SetFlags(f *flag.FlagSet) {}

func (c *reopenLoanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return setActive(f, true)
}

func setActive(f *flag.FlagSet, active bool) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one loan name")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := book.SetLoanActive(name, active); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	if active {
		fmt.Printf("Reopened loan %q\n", name)
	} else {
		fmt.Printf("Closed loan %q\n", name)
	}
	return subcommands.ExitSuccess
}
