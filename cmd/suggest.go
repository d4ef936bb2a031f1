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

type suggestCmd struct {
	date string
}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "show prioritized repayment suggestions" }
func (*suggestCmd) Usage() string {
	return `lbk suggest [-d <date>]

  Runs the repayment heuristics over the book and prints the resulting
  suggestions in priority order.
`
}

func (c *suggestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Date to evaluate the book on.")
}

func (c *suggestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.SuggestionsMarkdown(book.SnapshotAt(on).Suggestions()))
	return subcommands.ExitSuccess
}
