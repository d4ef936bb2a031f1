package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
	"github.com/rsharma/loanbook"
)

// queryCmd evaluates a JSONPath expression against the book's export
// document, for scripting and quick inspection.
type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression against the book" }
func (*queryCmd) Usage() string {
	return `lbk query <jsonpath>

  Evaluates a JSONPath expression against the book's export document and
  prints the result as JSON.

Usage Examples:
# Names of all loans.
$ lbk query '$.loans[*].name'

# Outstanding balance of the home loan.
$ lbk query '$.loans[?(@.name=="home")].currentPrincipal'

`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// Query the same document the export command writes.
	var buf bytes.Buffer
	if err := loanbook.EncodeBook(&buf, book, loanbook.Today()); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding book: %v\n", err)
		return subcommands.ExitFailure
	}
	var doc interface{}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding book: %v\n", err)
		return subcommands.ExitFailure
	}

	result, err := jsonpath.Get(f.Arg(0), doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing result: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
