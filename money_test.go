package loanbook

import (
	"strings"
	"testing"
)

func TestMoneyString(t *testing.T) {
	got := M(1500.00, "INR").String()
	if !strings.Contains(got, "₹") || !strings.Contains(got, "1,500") {
		t.Errorf("String = %q, want a rupee amount with separators", got)
	}
	if got := M(42.5, "USD").String(); got != "$42.50" {
		t.Errorf("String = %q, want $42.50", got)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := M(100.10, "INR")
	b := M(0.20, "INR")
	if got := a.Add(b); !got.Equal(M(100.30, "INR")) {
		t.Errorf("Add = %s", got)
	}
	if got := a.Sub(b); !got.Equal(M(99.90, "INR")) {
		t.Errorf("Sub = %s", got)
	}
	if !b.LessThan(a) || !a.GreaterThan(b) {
		t.Error("comparisons failed")
	}

	// The empty currency is weak: it adopts the other side's.
	if got := M(1, "").Add(M(2, "INR")); got.Currency() != "INR" {
		t.Errorf("weak currency = %q", got.Currency())
	}
}

func TestMoneyRound(t *testing.T) {
	got := M(15201.0849, "INR").Round()
	if !got.Equal(M(15201.08, "INR")) {
		t.Errorf("Round = %s", got)
	}
}

func TestValidateCurrency(t *testing.T) {
	if err := ValidateCurrency("INR"); err != nil {
		t.Errorf("INR rejected: %v", err)
	}
	if err := ValidateCurrency("WUT"); err == nil {
		t.Error("bogus code accepted")
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(9.5).String(); got != "9.50%" {
		t.Errorf("String = %q", got)
	}
	if !Percent(9.50004).Equal(9.5) {
		t.Error("Equal too strict")
	}
	if Percent(9.51).Equal(9.5) {
		t.Error("Equal too loose")
	}
}
