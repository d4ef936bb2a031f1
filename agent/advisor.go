package agent

import (
	"context"
	"fmt"
	"os"

	"github.com/rsharma/loanbook"
	"github.com/rsharma/loanbook/docs"
	"github.com/rsharma/loanbook/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// BookDir and BookName locate the loan book the advisor reads. The CLI sets
// them from its global flags before starting the agent.
var (
	BookDir  = envOr("LBK_BOOK_DIR", ".")
	BookName = os.Getenv("LBK_BOOK")
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his loans: how much he owes,
			what his EMIs cost, and how to pay less interest.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.

			The user will assume that you know his loans by name, check the loan book first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns the expert grounding answers in web search.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert researcher,
		well aware of financial products, lending institutions and the latest
		news about interest rates. Ask the Researcher whenever you need recent
		or grounding information from outside the user's loan book.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in personal finance. You can search and find anything related to
			banks, lending rates, refinancing and loan products. You leverage Google Search to
			ground your assertions in a solid truth.
				`}}},
		},
	}
}

// NewAdvisor returns the expert reading the user's loan book.
func NewAdvisor() *Expert {
	lib := []Function{PortfolioSummary, LoanDetail, Suggestions, PartPaymentSavings}

	return &Expert{
		Name: "Advisor",
		Description: `This is the Advisor. He is in charge of reading the user's loan book.
		He can report the portfolio summary, the detail of any loan, the repayment
		suggestions, and estimate the interest saved by a part payment.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a loan advisor in charge of the user's loan book.
				You know how to use the Tools to extract relevant information about the user's debt.
				You are part of a team of experts, yours is everything about the user's loans. They might ask
				you questions in approximative language, figure out what they meant.

				Use the available tools to get information about the user's loans:
				  - the portfolio summary with totals and the list of loans
				  - the detail of one loan
				  - the repayment suggestions
				  - the interest saved by a hypothetical part payment
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

var dateParam = &genai.Schema{
	Type: genai.TypeString,
	Description: `The date on which to resolve the book. Today is the default.
	Otherwise it uses a flexible date format based on YYYY-MM-DD:

	` + must(docs.GetTopic("dates")),
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func outputResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

// PortfolioSummary reports the whole book on a date.
var PortfolioSummary = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "PortfolioSummary",
		Description: `PortfolioSummary reports the user's whole loan book on a given day:
		total debt, combined monthly EMI, total savings, the next EMI date and
		one line per active loan.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"date": dateParam,
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted portfolio summary.",
		},
	},
	Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
		const name = "PortfolioSummary"
		date, err := parseDate(args)
		if err != nil {
			return errorResponse(id, name, err)
		}
		book, err := DecodeBook()
		if err != nil {
			return errorResponse(id, name, err)
		}
		return outputResponse(id, name, renderer.SummaryMarkdown(book.SnapshotAt(date).Summary()))
	},
}

// LoanDetail reports one loan on a date.
var LoanDetail = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "LoanDetail",
		Description: `LoanDetail reports the resolved state of one loan on a given day:
		outstanding balance, EMIs paid and remaining, interest left, part
		payments and rate history.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name": {
					Type:        genai.TypeString,
					Description: "The name of the loan, as listed in the portfolio summary.",
				},
				"date": dateParam,
			},
			Required: []string{"name"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted loan detail report.",
		},
	},
	Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
		const fname = "LoanDetail"
		date, err := parseDate(args)
		if err != nil {
			return errorResponse(id, fname, err)
		}
		name, err := stringArg(args, "name")
		if err != nil {
			return errorResponse(id, fname, err)
		}
		book, err := DecodeBook()
		if err != nil {
			return errorResponse(id, fname, err)
		}
		loan, details, err := book.SnapshotAt(date).ResolveName(name)
		if err != nil {
			return errorResponse(id, fname, err)
		}
		return outputResponse(id, fname, renderer.LoanMarkdown(loan, details, book.Currency()))
	},
}

// Suggestions reports the repayment suggestions on a date.
var Suggestions = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Suggestions",
		Description: `Suggestions runs the repayment heuristics over the book and reports
		the prioritized recommendations.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"date": dateParam,
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted list of prioritized suggestions.",
		},
	},
	Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
		const name = "Suggestions"
		date, err := parseDate(args)
		if err != nil {
			return errorResponse(id, name, err)
		}
		book, err := DecodeBook()
		if err != nil {
			return errorResponse(id, name, err)
		}
		return outputResponse(id, name, renderer.SuggestionsMarkdown(book.SnapshotAt(date).Suggestions()))
	},
}

// PartPaymentSavings estimates the interest saved by a part payment.
var PartPaymentSavings = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "PartPaymentSavings",
		Description: `PartPaymentSavings estimates the interest a hypothetical part payment
		would save on a loan, without recording anything.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name": {
					Type:        genai.TypeString,
					Description: "The name of the loan.",
				},
				"amount": {
					Type:        genai.TypeNumber,
					Description: "The hypothetical payment amount, in the book currency.",
				},
				"date": dateParam,
			},
			Required: []string{"name", "amount"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted estimate of the interest saved.",
		},
	},
	Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
		const fname = "PartPaymentSavings"
		date, err := parseDate(args)
		if err != nil {
			return errorResponse(id, fname, err)
		}
		name, err := stringArg(args, "name")
		if err != nil {
			return errorResponse(id, fname, err)
		}
		amount, ok := args["amount"].(float64)
		if !ok || amount <= 0 {
			return errorResponse(id, fname, fmt.Errorf("argument 'amount' must be a positive number, got %v", args["amount"]))
		}
		book, err := DecodeBook()
		if err != nil {
			return errorResponse(id, fname, err)
		}
		s := book.SnapshotAt(date)
		loan, details, err := s.ResolveName(name)
		if err != nil {
			return errorResponse(id, fname, err)
		}
		saved := s.PartPaymentSavings(loan, amount)
		return outputResponse(id, fname, renderer.WhatIfMarkdown(loan, details, amount, saved, book.Currency()))
	},
}

// DecodeBook loads the loan book the advisor reports on.
func DecodeBook() (*loanbook.Book, error) {
	return loanbook.FindBook(BookDir, BookName)
}

func parseDate(args map[string]any) (loanbook.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return loanbook.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return loanbook.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}

	date, err := loanbook.ParseDate(sdate)
	if err != nil {
		return loanbook.Today(), fmt.Errorf("argument 'date' must be a valid date got %q. Below is the doc about the date format\n\n%s ", sdate, must(docs.GetTopic("dates")))
	}
	return date, nil
}

func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("argument %q must be a non-empty string, got %v", key, args[key])
	}
	return v, nil
}
