package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rsharma/loanbook"
)

// payCmd records an out-of-schedule part payment against a loan's principal.
type payCmd struct {
	name        string
	amount      float64
	date        string
	description string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a part payment on a loan" }
func (*payCmd) Usage() string {
	return `lbk pay -name <loan> -amount <amount> [-d <date>] [-m <description>]

  Records an extra payment against the loan's principal. The outstanding
  balance is brought current first, then reduced by the amount.

Usage Examples:
# A yearly bonus goes into the home loan.
$ lbk pay -name home -amount 50000 -m "annual bonus"

`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the loan.")
	f.Float64Var(&c.amount, "amount", 0, "Amount paid against the principal.")
	f.StringVar(&c.date, "d", "0d", "Date of the payment.")
	f.StringVar(&c.description, "m", "", "Free-form note attached to the payment.")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	// Estimate the interest saved before mutating the book.
	var saved float64
	if loan, _, err := book.SnapshotAt(on).ResolveName(c.name); err == nil {
		saved = book.SnapshotAt(on).PartPaymentSavings(loan, c.amount)
	}

	updated, err := book.AddPartPayment(c.name, c.amount, on, c.description)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording payment: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	cur := book.Currency()
	fmt.Printf("Paid %s on %q, outstanding now %s (about %s interest saved)\n",
		loanbook.M(c.amount, cur).Round(), c.name,
		loanbook.M(updated.CurrentPrincipal, cur).Round(),
		loanbook.M(saved, cur).Round())
	return subcommands.ExitSuccess
}
