package loanbook

import (
	"math"
	"testing"
)

// approx fails the test when got is not within tolerance of want.
func approx(t *testing.T, label string, got, want, tolerance float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s = %v, want %v (±%v)", label, got, want, tolerance)
	}
}

// homeLoan is a typical long home loan: 12L at 9% over 10 years, started on
// the 1st so the first EMI falls due in the start month.
func homeLoan() Loan {
	return Loan{
		Name:             "home",
		PrincipalAmount:  1200000,
		CurrentPrincipal: 1200000,
		InterestRate:     9,
		TenureMonths:     120,
		StartDate:        MustParse("2025-06-01"),
		IsActive:         true,
	}
}

// carLoan is a short high-rate loan used alongside homeLoan in portfolio tests.
func carLoan() Loan {
	return Loan{
		Name:             "car",
		PrincipalAmount:  400000,
		CurrentPrincipal: 400000,
		InterestRate:     11,
		TenureMonths:     24,
		StartDate:        MustParse("2025-06-01"),
		IsActive:         true,
	}
}

// bookWith builds a book holding the given loans verbatim, bypassing
// AddLoan's creation-time defaults.
func bookWith(loans ...Loan) *Book {
	b := NewBook()
	b.loans = append(b.loans, loans...)
	return b
}
