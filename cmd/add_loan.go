package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rsharma/loanbook"
)

// addLoanCmd holds the flags for the 'add-loan' subcommand.
type addLoanCmd struct {
	name      string
	principal float64
	rate      float64
	tenure    int
	start     string
	emi       float64
	custom    bool
}

func (*addLoanCmd) Name() string     { return "add-loan" }
func (*addLoanCmd) Synopsis() string { return "record a new loan" }
func (*addLoanCmd) Usage() string {
	return `lbk add-loan -name <name> -principal <amount> -rate <percent> -tenure <months> [-start <date>] [-emi <amount>] [-custom]

  Records a new loan. The standard EMI is derived from the principal, rate and
  tenure; pass -emi with -custom to pay a different amount instead.

Usage Examples:
# A 12 lakh home loan at 9% over 10 years.
$ lbk add-loan -name home -principal 1200000 -rate 9 -tenure 120 -start 2025-06-01

`
}

func (c *addLoanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Unique name for the loan.")
	f.Float64Var(&c.principal, "principal", 0, "Original principal amount.")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate in percent.")
	f.IntVar(&c.tenure, "tenure", 0, "Tenure in months.")
	f.StringVar(&c.start, "start", "0d", "Start date of the loan. See the user manual for supported date formats.")
	f.Float64Var(&c.emi, "emi", 0, "Monthly payment. Defaults to the standard EMI for the terms.")
	f.BoolVar(&c.custom, "custom", false, "Treat -emi as a custom payment overriding the standard EMI.")
}

func (c *addLoanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := loanbook.ParseDate(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	loan := loanbook.Loan{
		Name:            c.name,
		PrincipalAmount: c.principal,
		InterestRate:    c.rate,
		TenureMonths:    c.tenure,
		StartDate:       start,
		EmiAmount:       c.emi,
		UseCustomEmi:    c.custom,
		CustomEmi:       0,
	}
	if c.custom {
		loan.CustomEmi = c.emi
	}

	if err := book.AddLoan(loan); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding loan: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	added, _ := book.Loan(c.name)
	fmt.Printf("Added loan %q with EMI %s\n", c.name, loanbook.M(added.SelectedEmi(), book.Currency()).Round())
	return subcommands.ExitSuccess
}
