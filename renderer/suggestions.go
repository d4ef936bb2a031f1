package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/rsharma/loanbook"
)

// SuggestionsMarkdown renders the prioritized recommendation list.
func SuggestionsMarkdown(suggestions []loanbook.Suggestion) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Suggestions")
	for _, s := range suggestions {
		doc.H2(fmt.Sprintf("%d. %s", s.Priority, s.Title))
		doc.PlainText(s.Detail)
	}
	return doc.String()
}
