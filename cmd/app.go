// Package cmd implements the CLI application to manage a loan book.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rsharma/loanbook"
)

// Register the subcommands.
// A main package calls Register(), and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addLoanCmd{}, "loans")
	c.Register(&editLoanCmd{}, "loans")
	c.Register(&closeLoanCmd{}, "loans")
	c.Register(&reopenLoanCmd{}, "loans")
	c.Register(&listCmd{}, "loans")
	c.Register(&loanCmd{}, "loans")

	c.Register(&payCmd{}, "payments")
	c.Register(&undoPayCmd{}, "payments")
	c.Register(&whatifCmd{}, "payments")

	c.Register(&addSavingsCmd{}, "savings")
	c.Register(&editSavingsCmd{}, "savings")
	c.Register(&savingsCmd{}, "savings")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&projectCmd{}, "reports")
	c.Register(&suggestCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// As a CLI application it is short lived, so global flags are fine.

var bookDir = flag.String("book-dir", envOr(EnvBookDir, "."), "Path to the folder holding the loan book files")
var bookName = flag.String("book", "", "Name of the loan book. Defaults to the only book if one exists.")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DecodeBook is the central function to open the loan book.
func DecodeBook() (*loanbook.Book, error) {
	return loanbook.FindBook(*bookDir, *bookName)
}

// SaveBook writes the book back, stamping today as the refresh date.
func SaveBook(b *loanbook.Book) error {
	return loanbook.SaveBook(*bookDir, b, loanbook.Today())
}

// printMarkdown renders markdown for the terminal. On any rendering error the
// raw markdown is printed instead, so reports stay usable in dumb terminals
// and pipes.
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Println(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}
