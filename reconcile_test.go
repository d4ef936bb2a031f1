package loanbook

import (
	"testing"
)

func f(v float64) *float64 { return &v }
func n(v int) *int         { return &v }
func bp(v bool) *bool      { return &v }

var editDay = MustParse("2025-09-01")

func TestReconcilePrincipalEdit(t *testing.T) {
	loan := homeLoan()

	t.Run("outstanding follows the principal when not given", func(t *testing.T) {
		got := Reconcile(loan, LoanEdits{Principal: f(1000000)}, editDay)
		if got.PrincipalAmount != 1000000 {
			t.Errorf("PrincipalAmount = %v, want 1000000", got.PrincipalAmount)
		}
		if got.CurrentPrincipal != 1000000 {
			t.Errorf("CurrentPrincipal = %v, want to follow the new principal", got.CurrentPrincipal)
		}
	})

	t.Run("explicit outstanding wins", func(t *testing.T) {
		got := Reconcile(loan, LoanEdits{Principal: f(1000000), Outstanding: f(800000)}, editDay)
		if got.CurrentPrincipal != 800000 {
			t.Errorf("CurrentPrincipal = %v, want the explicit 800000", got.CurrentPrincipal)
		}
	})
}

func TestReconcileEmiSelection(t *testing.T) {
	t.Run("custom mode with a valid value", func(t *testing.T) {
		got := Reconcile(homeLoan(), LoanEdits{UseCustomEmi: bp(true), CustomEmi: f(20000)}, editDay)
		if got.EmiAmount != 20000 {
			t.Errorf("EmiAmount = %v, want the custom 20000", got.EmiAmount)
		}
	})

	t.Run("custom mode without a value falls back to the EMI field", func(t *testing.T) {
		loan := homeLoan()
		loan.EmiAmount = 15201
		got := Reconcile(loan, LoanEdits{UseCustomEmi: bp(true)}, editDay)
		if got.EmiAmount != 15201 {
			t.Errorf("EmiAmount = %v, want the prior field 15201", got.EmiAmount)
		}
	})

	t.Run("explicit EMI edit", func(t *testing.T) {
		got := Reconcile(homeLoan(), LoanEdits{Emi: f(18000)}, editDay)
		if got.EmiAmount != 18000 {
			t.Errorf("EmiAmount = %v, want the edited 18000", got.EmiAmount)
		}
	})

	t.Run("rate edit rederives the formula EMI", func(t *testing.T) {
		loan := homeLoan()
		loan.EmiAmount = 15201
		got := Reconcile(loan, LoanEdits{Rate: f(8)}, editDay)
		approx(t, "EmiAmount", got.EmiAmount, Emi(1200000, 8, 120), 0.01)
	})

	t.Run("tenure edit rederives the formula EMI", func(t *testing.T) {
		got := Reconcile(homeLoan(), LoanEdits{Tenure: n(60)}, editDay)
		approx(t, "EmiAmount", got.EmiAmount, Emi(1200000, 9, 60), 0.01)
		if got.TenureMonths != 60 {
			t.Errorf("TenureMonths = %d, want 60", got.TenureMonths)
		}
	})

	t.Run("explicit EMI edit overrides a simultaneous rate edit", func(t *testing.T) {
		// The overlapping branches evaluate in order: the formula branch
		// fires for the rate edit, then the explicit edit wins.
		got := Reconcile(homeLoan(), LoanEdits{Rate: f(8), Emi: f(18000)}, editDay)
		if got.EmiAmount != 18000 {
			t.Errorf("EmiAmount = %v, want the explicit 18000", got.EmiAmount)
		}
	})

	t.Run("custom value beats an explicit EMI edit in custom mode", func(t *testing.T) {
		got := Reconcile(homeLoan(), LoanEdits{UseCustomEmi: bp(true), CustomEmi: f(20000), Emi: f(18000)}, editDay)
		if got.EmiAmount != 20000 {
			t.Errorf("EmiAmount = %v, want the custom 20000", got.EmiAmount)
		}
	})
}

func TestReconcileTenureResize(t *testing.T) {
	t.Run("higher EMI shortens the tenure", func(t *testing.T) {
		got := Reconcile(homeLoan(), LoanEdits{Emi: f(20000)}, editDay)
		want, ok := RemainingMonths(1200000, 20000, 9)
		if !ok {
			t.Fatal("sizing a healthy loan failed")
		}
		if got.TenureMonths != want {
			t.Errorf("TenureMonths = %d, want %d", got.TenureMonths, want)
		}
		if got.TenureMonths >= 120 {
			t.Errorf("TenureMonths = %d, want shorter than the original 120", got.TenureMonths)
		}
	})

	t.Run("unsizable keeps the prior tenure", func(t *testing.T) {
		// 5000 is below the 9000 monthly interest: cannot amortize.
		got := Reconcile(homeLoan(), LoanEdits{UseCustomEmi: bp(true), CustomEmi: f(5000)}, editDay)
		if got.TenureMonths != 120 {
			t.Errorf("TenureMonths = %d, want the prior 120 kept", got.TenureMonths)
		}
		if got.EmiAmount != 5000 {
			t.Errorf("EmiAmount = %v, want 5000", got.EmiAmount)
		}
	})
}

func TestReconcileRateChangeLog(t *testing.T) {
	got := Reconcile(homeLoan(), LoanEdits{Rate: f(8.5)}, editDay)
	if len(got.RateChanges) != 1 {
		t.Fatalf("RateChanges has %d entries, want 1", len(got.RateChanges))
	}
	rc := got.RateChanges[0]
	if rc.OldRate != 9 || rc.NewRate != 8.5 || rc.Date != editDay {
		t.Errorf("RateChanges[0] = %+v, want {%s 9 8.5}", rc, editDay)
	}

	// Re-submitting the same rate logs nothing.
	same := Reconcile(homeLoan(), LoanEdits{Rate: f(9)}, editDay)
	if len(same.RateChanges) != 0 {
		t.Errorf("unchanged rate logged %d entries", len(same.RateChanges))
	}
}

func TestReconcileUntouchedFieldsSurvive(t *testing.T) {
	loan := homeLoan()
	loan.PartPayments = []PartPayment{NewPartPayment(50000, MustParse("2025-07-01"), "")}
	got := Reconcile(loan, LoanEdits{Rate: f(8)}, editDay)

	if got.Name != loan.Name || got.StartDate != loan.StartDate || !got.IsActive {
		t.Errorf("identity fields changed: %+v", got)
	}
	if len(got.PartPayments) != 1 {
		t.Errorf("part payments lost in reconcile")
	}
}
