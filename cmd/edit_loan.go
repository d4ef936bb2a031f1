package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rsharma/loanbook"
)

// editLoanCmd holds the flags for the 'edit-loan' subcommand. Only the flags
// actually passed on the command line become edits, so untouched fields keep
// their stored values.
type editLoanCmd struct {
	name        string
	principal   float64
	outstanding float64
	rate        float64
	tenure      int
	emi         float64
	custom      bool
	customEmi   float64
	date        string
}

func (*editLoanCmd) Name() string     { return "edit-loan" }
func (*editLoanCmd) Synopsis() string { return "edit the terms of an existing loan" }
func (*editLoanCmd) Usage() string {
	return `lbk edit-loan -name <name> [-principal <amount>] [-outstanding <amount>] [-rate <percent>] [-tenure <months>] [-emi <amount>] [-custom=<bool>] [-custom-emi <amount>]

  Edits a loan and reconciles the dependent fields: changing the rate or the
  tenure rederives the standard EMI, changing the EMI resizes the tenure, and
  a rate change is kept in the loan's history.

Usage Examples:
# The bank lowered the rate.
$ lbk edit-loan -name home -rate 8.5

`
}

func (c *editLoanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the loan to edit.")
	f.Float64Var(&c.principal, "principal", 0, "New original principal amount.")
	f.Float64Var(&c.outstanding, "outstanding", 0, "New outstanding balance.")
	f.Float64Var(&c.rate, "rate", 0, "New annual interest rate in percent.")
	f.IntVar(&c.tenure, "tenure", 0, "New tenure in months.")
	f.Float64Var(&c.emi, "emi", 0, "New monthly payment.")
	f.BoolVar(&c.custom, "custom", false, "Enable or disable the custom EMI override.")
	f.Float64Var(&c.customEmi, "custom-emi", 0, "New custom payment amount.")
	f.StringVar(&c.date, "d", "0d", "Effective date of the edit.")
}

// edits converts the flags that were explicitly set into a partial edit.
func (c *editLoanCmd) edits(f *flag.FlagSet) loanbook.LoanEdits {
	var e loanbook.LoanEdits
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "principal":
			e.Principal = &c.principal
		case "outstanding":
			e.Outstanding = &c.outstanding
		case "rate":
			e.Rate = &c.rate
		case "tenure":
			e.Tenure = &c.tenure
		case "emi":
			e.Emi = &c.emi
		case "custom":
			e.UseCustomEmi = &c.custom
		case "custom-emi":
			e.CustomEmi = &c.customEmi
		}
	})
	return e
}

func (c *editLoanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	updated, err := book.UpdateLoan(c.name, c.edits(f), on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error editing loan: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated loan %q: EMI %s over %d months\n",
		updated.Name, loanbook.M(updated.SelectedEmi(), book.Currency()).Round(), updated.TenureMonths)
	return subcommands.ExitSuccess
}
