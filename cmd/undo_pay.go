package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rsharma/loanbook"
)

type undoPayCmd struct {
	name string
}

func (*undoPayCmd) Name() string     { return "undo-pay" }
func (*undoPayCmd) Synopsis() string { return "undo the most recent part payment on a loan" }
func (*undoPayCmd) Usage() string {
	return `lbk undo-pay -name <loan>

  Removes the most recently recorded part payment and restores the
  outstanding balance, capped at the original principal.
`
}

func (c *undoPayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the loan.")
}

func (c *undoPayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	restored, undone, err := book.UndoPartPayment(c.name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error undoing payment: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	cur := book.Currency()
	fmt.Printf("Removed payment of %s from %s, outstanding now %s\n",
		loanbook.M(undone.Amount, cur).Round(), undone.Date,
		loanbook.M(restored.CurrentPrincipal, cur).Round())
	return subcommands.ExitSuccess
}
