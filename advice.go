package loanbook

import "fmt"

// ReferencePartPayment is the fixed what-if amount used when estimating the
// savings behind a part-payment suggestion.
const ReferencePartPayment = 50000

// Suggestion is one prioritized, human-readable recommendation.
type Suggestion struct {
	Priority int    // fixed per rule, lower is more important
	Title    string
	Detail   string
}

// Suggestions runs the deterministic rule list over the resolved portfolio.
// It is a plain heuristic engine: the rules fire in a fixed order and each
// carries a fixed priority.
func (s *Snapshot) Suggestions() []Suggestion {
	var out []Suggestion
	cur := s.book.Currency()

	// Rule 1: the highest-rate loan with more than a year of payments left
	// is the best part-payment target.
	if loan, d, ok := s.highestRateLoan(); ok && d.RemainingEmis > 12 {
		saved := s.PartPaymentSavings(loan, ReferencePartPayment)
		out = append(out, Suggestion{
			Priority: 1,
			Title:    fmt.Sprintf("Make a part payment on %q", loan.Name),
			Detail: fmt.Sprintf("%q carries your highest rate (%s) with %d EMIs left. A part payment of %s would save about %s in interest.",
				loan.Name, Percent(loan.InterestRate), d.RemainingEmis,
				M(ReferencePartPayment, cur), M(saved, cur)),
		})
	}

	// Rule 2: a single reminder when any short-tenure loan still carries a
	// high rate.
	for _, l := range s.activeLoans() {
		d := s.Resolve(l)
		if d.RemainingEmis > 0 && d.RemainingEmis <= 24 && l.InterestRate > 8 {
			out = append(out, Suggestion{
				Priority: 2,
				Title:    "Focus on short-term high-rate loans",
				Detail:   "Some loans with less than two years left still charge more than 8%. Clearing them first frees up monthly cash quickly.",
			})
			break
		}
	}

	// Rule 3: always on.
	out = append(out, Suggestion{
		Priority: 3,
		Title:    "Keep an emergency fund",
		Detail:   "Before extra repayments, keep at least six months of EMIs and expenses in liquid savings.",
	})

	return out
}

// highestRateLoan returns the active loan with the highest interest rate and
// its resolved details.
func (s *Snapshot) highestRateLoan() (Loan, LoanDetails, bool) {
	var best Loan
	found := false
	for _, l := range s.activeLoans() {
		if !found || l.InterestRate > best.InterestRate {
			best = l
			found = true
		}
	}
	if !found {
		return Loan{}, LoanDetails{}, false
	}
	return best, s.Resolve(best), true
}
