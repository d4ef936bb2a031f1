package loanbook

import (
	"github.com/google/uuid"
)

// Loan is one debt obligation. The stored record holds the loan's static
// terms and the anchor balance; the live amortized state is always derived
// from it by a [Snapshot], never written back.
type Loan struct {
	// Name identifies the loan within its book.
	Name string `json:"name"`

	// PrincipalAmount is the original borrowed amount.
	PrincipalAmount float64 `json:"principalAmount"`

	// CurrentPrincipal is the outstanding balance baseline as of the last
	// explicit edit or part payment. It is NOT the live amortized balance:
	// it is the anchor a snapshot amortizes forward from.
	CurrentPrincipal float64 `json:"currentPrincipal"`

	// InterestRate is the nominal annual percentage rate.
	InterestRate float64 `json:"interestRate"`

	// TenureMonths is the total number of scheduled monthly payments from origination.
	TenureMonths int `json:"tenure"`

	// EmiAmount is the last computed or stored standard EMI.
	EmiAmount float64 `json:"emiAmount"`

	// UseCustomEmi selects CustomEmi over the formula-derived EMI when true.
	UseCustomEmi bool    `json:"useCustomEmi,omitempty"`
	CustomEmi    float64 `json:"customEmi,omitempty"`

	// StartDate is the origination date.
	StartDate Date `json:"startDate"`

	// NextEmiDate and LastEmiDate are informational only; scheduling is
	// recomputed live from StartDate and the as-of date.
	NextEmiDate Date `json:"nextEmiDate,omitempty"`
	LastEmiDate Date `json:"lastEmiDate,omitempty"`

	// IsActive excludes the loan from every aggregate and projection when false.
	IsActive bool `json:"isActive"`

	// PartPayments holds out-of-schedule principal reductions. Insertion
	// order is chronological application order by convention.
	PartPayments []PartPayment `json:"partPayments,omitempty"`

	// RateChanges logs rate edits. Informational: amortization always uses
	// the current flat InterestRate.
	RateChanges []RateChange `json:"interestRateChanges,omitempty"`
}

// SelectedEmi returns the payment used for amortization: the custom EMI when
// the override is enabled and valid, else the formula EMI derived from the
// ORIGINAL terms. The formula EMI is fixed at origination; part payments
// alone never change it.
func (l Loan) SelectedEmi() float64 {
	if l.UseCustomEmi && l.CustomEmi > 0 {
		return l.CustomEmi
	}
	return Emi(l.PrincipalAmount, l.InterestRate, l.TenureMonths)
}

// PartPayment is an out-of-schedule principal reduction.
type PartPayment struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Date        Date    `json:"date"`
	Description string  `json:"description,omitempty"`
}

// NewPartPayment creates a part payment with a fresh id.
func NewPartPayment(amount float64, on Date, description string) PartPayment {
	return PartPayment{
		ID:          uuid.NewString(),
		Amount:      amount,
		Date:        on,
		Description: description,
	}
}

// RateChange is one entry of the historical rate edit log.
type RateChange struct {
	Date    Date    `json:"date"`
	OldRate float64 `json:"oldRate"`
	NewRate float64 `json:"newRate"`
}

// SavingsAccount is a flat value-holding record with no derived computation.
type SavingsAccount struct {
	Name        string  `json:"name"`
	Category    string  `json:"category,omitempty"`
	Amount      float64 `json:"amount"`
	CreatedDate Date    `json:"createdDate,omitempty"`
	UpdatedDate Date    `json:"updatedDate,omitempty"`
}
