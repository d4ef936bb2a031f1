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

// projectCmd renders the combined payment projection over the active loans.
type projectCmd struct {
	date   string
	name   string
	months int
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project future payments month by month" }
func (*projectCmd) Usage() string {
	return `lbk project [-d <date>] [-name <loan>] [-months <n>]

  Projects the month-by-month principal and interest payments over the next
  five years, combined across all active loans or for a single loan.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Date to project from.")
	f.StringVar(&c.name, "name", "", "Project a single loan instead of the whole book.")
	f.IntVar(&c.months, "months", loanbook.MaxProjectionMonths, "Number of months to show, up to the five-year cap.")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var title string
	var series []loanbook.ProjectionMonth
	if c.name != "" {
		loan, _, err := s.ResolveName(c.name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		title = fmt.Sprintf("Projection for %q from %s", c.name, on)
		series = s.Project(loan)
	} else {
		title = fmt.Sprintf("Projection from %s", on)
		series = s.ProjectAll()
	}

	if c.months > 0 && c.months < len(series) {
		series = series[:c.months]
	}

	printMarkdown(renderer.ProjectionMarkdown(title, book.Currency(), series))
	return subcommands.ExitSuccess
}
