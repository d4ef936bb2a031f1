package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rsharma/loanbook"
)

// importCmd revives an exported JSON document into a book file.
type importCmd struct {
	input string
	name  string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a book from an exported JSON document" }
func (*importCmd) Usage() string {
	return `lbk import [-i <file>] [-name <book>]

  Reads an exported document (from stdin by default) and saves it as a book.
  Malformed records are revived into a safe state rather than rejected:
  negative amounts floor at zero and a missing outstanding balance defaults
  to the principal.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "File to read from. Defaults to stdin.")
	f.StringVar(&c.name, "name", loanbook.DefaultBookName, "Name to save the imported book under.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r := os.Stdin
	if c.input != "" {
		file, err := os.Open(c.input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.input, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	book, err := loanbook.DecodeBook(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing book: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := loanbook.ImportBook(*bookDir, c.name, book, loanbook.Today()); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving imported book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d loans and %d savings accounts into book %q\n",
		len(book.Loans()), len(book.Savings()), c.name)
	return subcommands.ExitSuccess
}
