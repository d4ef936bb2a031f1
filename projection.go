package loanbook

// MaxProjectionMonths caps every projection series at five years.
const MaxProjectionMonths = 60

// ProjectionMonth is one month of a payment projection.
type ProjectionMonth struct {
	Month     int     `json:"month"` // 1-based, counted from the snapshot date
	Principal float64 `json:"principalPayment"`
	Interest  float64 `json:"interestPayment"`
	Balance   float64 `json:"remainingPrincipal"`
}

// Project produces the loan's month-by-month payment projection, starting
// from its resolved remaining principal and capped at min(remaining EMIs,
// [MaxProjectionMonths]). The series stops early when the balance reaches 0
// or when the payment cannot cover the interest.
func (s *Snapshot) Project(loan Loan) []ProjectionMonth {
	d := s.Resolve(loan)
	n := d.RemainingEmis
	if n > MaxProjectionMonths {
		n = MaxProjectionMonths
	}

	rate := monthlyRate(loan.InterestRate)
	balance := d.RemainingPrincipal
	var series []ProjectionMonth
	for m := 1; m <= n && balance > 0; m++ {
		st := step(balance, d.EmiAmount, rate)
		if st.principal <= 0 {
			break
		}
		balance = st.balance
		series = append(series, ProjectionMonth{
			Month:     m,
			Principal: st.principal,
			Interest:  st.interest,
			Balance:   balance,
		})
	}
	return series
}

// ProjectAll combines the projections of all active loans into a single
// series. A loan with a shorter remaining tenure simply stops contributing.
// The series ends when no loan has a further month, or once the combined
// remaining balance hits 0 (after month 1 at the earliest).
func (s *Snapshot) ProjectAll() []ProjectionMonth {
	var perLoan [][]ProjectionMonth
	for _, l := range s.activeLoans() {
		if p := s.Project(l); len(p) > 0 {
			perLoan = append(perLoan, p)
		}
	}

	var combined []ProjectionMonth
	for m := 1; m <= MaxProjectionMonths; m++ {
		entry := ProjectionMonth{Month: m}
		any := false
		for _, series := range perLoan {
			if m > len(series) {
				continue
			}
			any = true
			entry.Principal += series[m-1].Principal
			entry.Interest += series[m-1].Interest
			entry.Balance += series[m-1].Balance
		}
		if !any {
			break
		}
		combined = append(combined, entry)
		if entry.Balance <= 0 {
			break
		}
	}
	return combined
}

// PartPaymentSavings estimates the interest saved by paying an extra amount
// today while keeping the payment count fixed. It is a what-if, not a
// committed mutation.
//
// When the amount clears the loan entirely, the savings equal the loan's
// whole remaining future interest. Otherwise a new amortization is simulated
// from the reduced balance over the same remaining EMIs at the same EMI, and
// the result is the interest difference, floored at 0.
func (s *Snapshot) PartPaymentSavings(loan Loan, amount float64) float64 {
	d := s.Resolve(loan)
	if amount >= d.RemainingPrincipal {
		return d.TotalInterest
	}
	rate := monthlyRate(loan.InterestRate)
	reduced := forwardApply(d.RemainingPrincipal-amount, d.EmiAmount, rate, d.RemainingEmis)
	savings := d.TotalInterest - reduced.interest
	if savings < 0 {
		return 0
	}
	return savings
}
