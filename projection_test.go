package loanbook

import (
	"testing"
)

// shortLoan builds a loan with exactly 'months' remaining as of 2026-01-02
// (its first EMI falls due only in February).
func shortLoan(name string, principal, rate float64, months int) Loan {
	return Loan{
		Name:             name,
		PrincipalAmount:  principal,
		CurrentPrincipal: principal,
		InterestRate:     rate,
		TenureMonths:     months,
		StartDate:        MustParse("2026-01-10"),
		IsActive:         true,
	}
}

func TestProjectSingleLoan(t *testing.T) {
	loan := shortLoan("car", 400000, 11, 24)
	s := bookWith(loan).SnapshotAt(MustParse("2026-01-02"))
	series := s.Project(loan)

	if len(series) != 24 {
		t.Fatalf("projection has %d entries, want 24", len(series))
	}
	emi := s.Resolve(loan).EmiAmount
	balance := 400000.0
	for i, e := range series {
		if e.Month != i+1 {
			t.Fatalf("entry %d has month %d", i, e.Month)
		}
		approx(t, "payment split", e.Principal+e.Interest, emi, 0.01)
		if e.Balance >= balance {
			t.Fatalf("month %d balance %v did not decrease from %v", e.Month, e.Balance, balance)
		}
		balance = e.Balance
	}
	approx(t, "final balance", series[len(series)-1].Balance, 0, 0.01)
}

func TestProjectCapsAtFiveYears(t *testing.T) {
	loan := homeLoan() // 120 months remaining
	s := bookWith(loan).SnapshotAt(MustParse("2025-06-03"))
	if got := len(s.Project(loan)); got != MaxProjectionMonths {
		t.Errorf("projection has %d entries, want the %d month cap", got, MaxProjectionMonths)
	}
}

func TestProjectStuckLoanStopsImmediately(t *testing.T) {
	loan := shortLoan("stuck", 500000, 12, 48)
	loan.UseCustomEmi = true
	loan.CustomEmi = 1000 // below the 5000 monthly interest
	s := bookWith(loan).SnapshotAt(MustParse("2026-01-02"))
	if got := len(s.Project(loan)); got != 0 {
		t.Errorf("stuck loan projected %d months, want 0", got)
	}
}

func TestProjectAllCombines(t *testing.T) {
	// Two loans with 10 and 20 remaining EMIs: exactly 20 combined entries,
	// with the first loan contributing nothing after month 10.
	a := shortLoan("a", 100000, 12, 10)
	b := shortLoan("b", 200000, 10, 20)
	s := bookWith(a, b).SnapshotAt(MustParse("2026-01-02"))

	combined := s.ProjectAll()
	if len(combined) != 20 {
		t.Fatalf("combined projection has %d entries, want 20", len(combined))
	}

	seriesB := s.Project(b)
	for i := 10; i < 20; i++ {
		e := combined[i]
		approx(t, "principal after a ends", e.Principal, seriesB[i].Principal, 0.01)
		approx(t, "interest after a ends", e.Interest, seriesB[i].Interest, 0.01)
		approx(t, "balance after a ends", e.Balance, seriesB[i].Balance, 0.01)
	}

	// In the overlap both loans contribute.
	seriesA := s.Project(a)
	approx(t, "month 1 principal", combined[0].Principal, seriesA[0].Principal+seriesB[0].Principal, 0.01)
	approx(t, "final balance", combined[19].Balance, 0, 0.01)
}

func TestProjectAllSkipsInactive(t *testing.T) {
	a := shortLoan("a", 100000, 12, 10)
	b := shortLoan("b", 200000, 10, 20)
	b.IsActive = false
	s := bookWith(a, b).SnapshotAt(MustParse("2026-01-02"))

	if got := len(s.ProjectAll()); got != 10 {
		t.Errorf("combined projection has %d entries, want 10 (inactive loan excluded)", got)
	}
}

func TestPartPaymentSavings(t *testing.T) {
	loan := shortLoan("home", 500000, 10, 60)
	s := bookWith(loan).SnapshotAt(MustParse("2026-01-02"))
	d := s.Resolve(loan)

	t.Run("positive for a partial payment", func(t *testing.T) {
		saved := s.PartPaymentSavings(loan, 50000)
		if saved <= 0 {
			t.Errorf("savings = %v, want > 0", saved)
		}
		if saved >= d.TotalInterest {
			t.Errorf("savings %v should be below the whole future interest %v", saved, d.TotalInterest)
		}
	})

	t.Run("clearing the loan saves all future interest", func(t *testing.T) {
		approx(t, "savings", s.PartPaymentSavings(loan, d.RemainingPrincipal), d.TotalInterest, 0.01)
		approx(t, "savings above balance", s.PartPaymentSavings(loan, d.RemainingPrincipal+12345), d.TotalInterest, 0.01)
	})

	t.Run("monotonically non-decreasing in amount", func(t *testing.T) {
		prev := 0.0
		for amount := 0.0; amount <= 600000; amount += 10000 {
			saved := s.PartPaymentSavings(loan, amount)
			if saved < prev-0.01 {
				t.Fatalf("savings decreased from %v to %v at amount %v", prev, saved, amount)
			}
			prev = saved
		}
	})
}
