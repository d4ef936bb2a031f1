package loanbook

// Snapshot is a view of a book at a single point in time. It is a stateless
// calculator: every value is computed on the fly from the stored records and
// the 'on' date, so callers inject the date instead of reading the wall
// clock inside the engine.
type Snapshot struct {
	book *Book
	on   Date
}

// SnapshotAt returns a snapshot of the book as of 'on'.
func (b *Book) SnapshotAt(on Date) *Snapshot {
	return &Snapshot{book: b, on: on}
}

// On returns the date of the snapshot.
func (s *Snapshot) On() Date { return s.on }

// Book returns the underlying book.
func (s *Snapshot) Book() *Book { return s.book }

// LoanDetails is the resolved live state of one loan.
type LoanDetails struct {
	// EmiAmount is the selected payment: the custom EMI when the override is
	// active and valid, else the formula EMI from the original terms.
	EmiAmount float64

	EmisPaid      int // scheduled payments fallen due, clamped to tenure
	RemainingEmis int // TenureMonths - EmisPaid

	// RemainingPrincipal is the balance brought current: the stored anchor
	// amortized forward over the payments already due.
	RemainingPrincipal float64

	// TotalInterest is the interest still to be paid over the remaining
	// EMIs; TotalAmount is RemainingPrincipal + TotalInterest.
	TotalInterest float64
	TotalAmount   float64

	NextEmiDate Date

	// Stuck is true when the selected EMI cannot cover the monthly interest.
	// The loan is mis-configured, not paid off; callers should surface it as
	// an "EMI too low" warning.
	Stuck bool
}

// Resolve computes the live state of a loan as of the snapshot date.
func (s *Snapshot) Resolve(loan Loan) LoanDetails {
	var d LoanDetails

	d.EmisPaid = PaymentsDue(loan.StartDate, s.on)
	if d.EmisPaid > loan.TenureMonths {
		d.EmisPaid = loan.TenureMonths
	}
	d.RemainingEmis = loan.TenureMonths - d.EmisPaid

	d.EmiAmount = loan.SelectedEmi()
	rate := monthlyRate(loan.InterestRate)

	// Bring the anchor balance current by replaying the payments already due.
	balance := loan.CurrentPrincipal
	if balance < 0 {
		balance = 0
	}
	past := forwardApply(balance, d.EmiAmount, rate, d.EmisPaid)
	d.RemainingPrincipal = past.balance
	d.Stuck = past.stuck

	d.NextEmiDate = NextDueDate(s.on)

	// Replay the remaining payments purely to sum the future interest.
	future := forwardApply(d.RemainingPrincipal, d.EmiAmount, rate, d.RemainingEmis)
	d.TotalInterest = future.interest
	d.Stuck = d.Stuck || future.stuck
	d.TotalAmount = d.RemainingPrincipal + d.TotalInterest

	return d
}

// ResolveName resolves the named loan, see [Snapshot.Resolve].
func (s *Snapshot) ResolveName(name string) (Loan, LoanDetails, error) {
	loan, err := s.book.Loan(name)
	if err != nil {
		return Loan{}, LoanDetails{}, err
	}
	return loan, s.Resolve(loan), nil
}

// activeLoans returns the book's active loans in book order.
func (s *Snapshot) activeLoans() []Loan {
	var active []Loan
	for _, l := range s.book.loans {
		if l.IsActive {
			active = append(active, l)
		}
	}
	return active
}

// TotalDebt sums the resolved remaining principal over all active loans.
func (s *Snapshot) TotalDebt() float64 {
	var total float64
	for _, l := range s.activeLoans() {
		total += s.Resolve(l).RemainingPrincipal
	}
	return total
}

// TotalMonthlyEmi sums the selected EMI over active loans that still have
// payments remaining. Fully paid loans contribute 0 even when still active.
func (s *Snapshot) TotalMonthlyEmi() float64 {
	var total float64
	for _, l := range s.activeLoans() {
		if d := s.Resolve(l); d.RemainingEmis > 0 {
			total += d.EmiAmount
		}
	}
	return total
}

// TotalSavings sums the savings account amounts.
func (s *Snapshot) TotalSavings() float64 {
	var total float64
	for _, a := range s.book.savings {
		total += a.Amount
	}
	return total
}

// NextEmiDate returns the earliest next due date over the active loans, or
// the book-wide next due date as a default anchor when there are none.
func (s *Snapshot) NextEmiDate() Date {
	next := NextDueDate(s.on)
	for _, l := range s.activeLoans() {
		if d := s.Resolve(l); d.NextEmiDate.Before(next) {
			next = d.NextEmiDate
		}
	}
	return next
}

// LoanLine is one row of the portfolio summary.
type LoanLine struct {
	Name    string
	Rate    Percent
	Details LoanDetails
}

// PortfolioSummary is an at-a-glance overview of the whole book on a date.
type PortfolioSummary struct {
	Date            Date
	Currency        string
	TotalDebt       float64
	TotalMonthlyEmi float64
	TotalSavings    float64
	NextEmiDate     Date
	Loans           []LoanLine // active loans only
}

// Summary resolves every active loan and aggregates the portfolio totals.
func (s *Snapshot) Summary() *PortfolioSummary {
	sum := &PortfolioSummary{
		Date:        s.on,
		Currency:    s.book.Currency(),
		NextEmiDate: NextDueDate(s.on),
	}
	for _, l := range s.activeLoans() {
		d := s.Resolve(l)
		sum.Loans = append(sum.Loans, LoanLine{Name: l.Name, Rate: Percent(l.InterestRate), Details: d})
		sum.TotalDebt += d.RemainingPrincipal
		if d.RemainingEmis > 0 {
			sum.TotalMonthlyEmi += d.EmiAmount
		}
		if d.NextEmiDate.Before(sum.NextEmiDate) {
			sum.NextEmiDate = d.NextEmiDate
		}
	}
	sum.TotalSavings = s.TotalSavings()
	return sum
}
