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

// whatifCmd estimates the interest saved by a hypothetical part payment
// without recording anything.
type whatifCmd struct {
	name   string
	amount float64
	date   string
}

func (*whatifCmd) Name() string     { return "whatif" }
func (*whatifCmd) Synopsis() string { return "estimate the savings of a hypothetical part payment" }
func (*whatifCmd) Usage() string {
	return `lbk whatif -name <loan> -amount <amount> [-d <date>]

  Estimates how much interest a part payment would save on a loan. Nothing is
  recorded; use 'lbk pay' to actually record the payment.
`
}

func (c *whatifCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the loan.")
	f.Float64Var(&c.amount, "amount", loanbook.ReferencePartPayment, "Hypothetical payment amount.")
	f.StringVar(&c.date, "d", "0d", "Date of the hypothetical payment.")
}

func (c *whatifCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := loanbook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -amount must be positive")
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	s := book.SnapshotAt(on)
	loan, details, err := s.ResolveName(c.name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	saved := s.PartPaymentSavings(loan, c.amount)
	printMarkdown(renderer.WhatIfMarkdown(loan, details, c.amount, saved, book.Currency()))
	return subcommands.ExitSuccess
}
