package loanbook

import (
	"fmt"
)

// DefaultCurrency is the book currency used when none is recorded.
const DefaultCurrency = "INR"

// Book is the collection of a user's loans and savings accounts. It owns the
// stored records and the operations that legitimately mutate them (edits,
// part payments, undo); all derived state lives in [Snapshot].
type Book struct {
	name        string
	currency    string
	loans       []Loan
	savings     []SavingsAccount
	lastRefresh Date
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{}
}

// Name returns the book's name, set by the loader from its file name.
func (b *Book) Name() string { return b.name }

// Currency returns the book currency, defaulting to [DefaultCurrency].
func (b *Book) Currency() string {
	if b.currency == "" {
		return DefaultCurrency
	}
	return b.currency
}

// SetCurrency sets the book currency after validating the code.
func (b *Book) SetCurrency(code string) error {
	if err := ValidateCurrency(code); err != nil {
		return err
	}
	b.currency = code
	return nil
}

// LastRefresh returns the date the book was last written.
func (b *Book) LastRefresh() Date { return b.lastRefresh }

// Loans returns the loans in book order. The slice is a copy.
func (b *Book) Loans() []Loan {
	out := make([]Loan, len(b.loans))
	copy(out, b.loans)
	return out
}

// Savings returns the savings accounts in book order. The slice is a copy.
func (b *Book) Savings() []SavingsAccount {
	out := make([]SavingsAccount, len(b.savings))
	copy(out, b.savings)
	return out
}

// Loan returns the loan with the given name.
func (b *Book) Loan(name string) (Loan, error) {
	if i := b.loanIndex(name); i >= 0 {
		return b.loans[i], nil
	}
	return Loan{}, fmt.Errorf("unknown loan %q", name)
}

func (b *Book) loanIndex(name string) int {
	for i, l := range b.loans {
		if l.Name == name {
			return i
		}
	}
	return -1
}

// AddLoan validates and appends a new loan. A loan starts its life with the
// outstanding anchor equal to the principal, active, and with its standard
// EMI derived from the original terms when none is supplied.
func (b *Book) AddLoan(loan Loan) error {
	if b.loanIndex(loan.Name) >= 0 {
		return fmt.Errorf("loan %q already exists", loan.Name)
	}
	loan.CurrentPrincipal = loan.PrincipalAmount
	loan.IsActive = true
	if loan.EmiAmount <= 0 {
		loan.EmiAmount = loan.SelectedEmi()
	}
	if err := ValidateLoan(loan); err != nil {
		return err
	}
	b.loans = append(b.loans, loan)
	return nil
}

// UpdateLoan applies a partial edit to the named loan through the reconcile
// policy and stores the result. It returns the updated loan.
func (b *Book) UpdateLoan(name string, edits LoanEdits, on Date) (Loan, error) {
	i := b.loanIndex(name)
	if i < 0 {
		return Loan{}, fmt.Errorf("unknown loan %q", name)
	}
	updated := Reconcile(b.loans[i], edits, on)
	if err := ValidateLoan(updated); err != nil {
		return Loan{}, err
	}
	b.loans[i] = updated
	return updated, nil
}

// SetLoanActive marks the named loan active or inactive. Inactive loans keep
// their history but are excluded from every aggregate and projection.
func (b *Book) SetLoanActive(name string, active bool) error {
	i := b.loanIndex(name)
	if i < 0 {
		return fmt.Errorf("unknown loan %q", name)
	}
	b.loans[i].IsActive = active
	return nil
}

// AddPartPayment records an out-of-schedule principal reduction on the named
// loan. The new outstanding anchor is baselined against the loan's live
// resolved balance at 'on' (not the stale stored anchor), minus the amount,
// floored at 0. Appending preserves chronological application order.
func (b *Book) AddPartPayment(name string, amount float64, on Date, description string) (Loan, error) {
	i := b.loanIndex(name)
	if i < 0 {
		return Loan{}, fmt.Errorf("unknown loan %q", name)
	}
	if amount <= 0 {
		return Loan{}, fmt.Errorf("part payment amount must be positive, got %v", amount)
	}

	details := b.SnapshotAt(on).Resolve(b.loans[i])
	baseline := details.RemainingPrincipal - amount
	if baseline < 0 {
		baseline = 0
	}
	b.loans[i].CurrentPrincipal = baseline
	b.loans[i].PartPayments = append(b.loans[i].PartPayments, NewPartPayment(amount, on, description))
	return b.loans[i], nil
}

// UndoPartPayment removes the most recently recorded part payment
// (last-in-first-out, not date-sorted) and restores the outstanding anchor,
// capped at the original principal.
func (b *Book) UndoPartPayment(name string) (Loan, PartPayment, error) {
	i := b.loanIndex(name)
	if i < 0 {
		return Loan{}, PartPayment{}, fmt.Errorf("unknown loan %q", name)
	}
	payments := b.loans[i].PartPayments
	if len(payments) == 0 {
		return Loan{}, PartPayment{}, fmt.Errorf("loan %q has no part payments to undo", name)
	}
	last := payments[len(payments)-1]
	b.loans[i].PartPayments = payments[:len(payments)-1]

	restored := b.loans[i].CurrentPrincipal + last.Amount
	if restored > b.loans[i].PrincipalAmount {
		restored = b.loans[i].PrincipalAmount
	}
	b.loans[i].CurrentPrincipal = restored
	return b.loans[i], last, nil
}

// Savings account operations. Flat records, no derived computation.

func (b *Book) savingsIndex(name string) int {
	for i, a := range b.savings {
		if a.Name == name {
			return i
		}
	}
	return -1
}

// AddSavings validates and appends a new savings account.
func (b *Book) AddSavings(account SavingsAccount) error {
	if account.Name == "" {
		return fmt.Errorf("savings account name is required")
	}
	if b.savingsIndex(account.Name) >= 0 {
		return fmt.Errorf("savings account %q already exists", account.Name)
	}
	if account.Amount < 0 {
		return fmt.Errorf("savings amount cannot be negative, got %v", account.Amount)
	}
	b.savings = append(b.savings, account)
	return nil
}

// UpdateSavings replaces the amount (and category when non-empty) of the
// named savings account.
func (b *Book) UpdateSavings(name string, amount float64, category string, on Date) (SavingsAccount, error) {
	i := b.savingsIndex(name)
	if i < 0 {
		return SavingsAccount{}, fmt.Errorf("unknown savings account %q", name)
	}
	if amount < 0 {
		return SavingsAccount{}, fmt.Errorf("savings amount cannot be negative, got %v", amount)
	}
	b.savings[i].Amount = amount
	if category != "" {
		b.savings[i].Category = category
	}
	b.savings[i].UpdatedDate = on
	return b.savings[i], nil
}
