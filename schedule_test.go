package loanbook

import (
	"testing"
)

func TestEmi(t *testing.T) {
	testCases := []struct {
		name      string
		principal float64
		rate      float64
		tenure    int
		want      float64
		tolerance float64
	}{
		{name: "standard annuity check", principal: 1200000, rate: 9, tenure: 120, want: 15201, tolerance: 2},
		{name: "short personal loan", principal: 100000, rate: 12, tenure: 12, want: 8885, tolerance: 2},
		{name: "zero tenure", principal: 100000, rate: 12, tenure: 0, want: 0},
		{name: "negative tenure", principal: 100000, rate: 12, tenure: -3, want: 0},
		{name: "zero principal", principal: 0, rate: 12, tenure: 12, want: 0},
		{name: "negative principal", principal: -5, rate: 12, tenure: 12, want: 0},
		{name: "zero rate degenerates", principal: 100000, rate: 0, tenure: 12, want: 0},
		{name: "negative rate degenerates", principal: 100000, rate: -4, tenure: 12, want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			approx(t, "Emi", Emi(tc.principal, tc.rate, tc.tenure), tc.want, tc.tolerance)
		})
	}
}

// The EMI must fully amortize the loan: simulating the whole tenure from the
// original principal drives the balance to zero within rounding.
func TestEmiAmortizesToZero(t *testing.T) {
	cases := []struct {
		principal float64
		rate      float64
		tenure    int
	}{
		{1200000, 9, 120},
		{500000, 7.5, 60},
		{50000, 24, 6},
		{2500000, 8.35, 240},
	}
	for _, tc := range cases {
		emi := Emi(tc.principal, tc.rate, tc.tenure)
		if emi <= 0 {
			t.Fatalf("Emi(%v, %v, %d) = %v, want > 0", tc.principal, tc.rate, tc.tenure, emi)
		}
		res := forwardApply(tc.principal, emi, monthlyRate(tc.rate), tc.tenure)
		if res.stuck {
			t.Errorf("amortizing %v at its own EMI got stuck", tc.principal)
		}
		approx(t, "final balance", res.balance, 0, 0.01)
	}
}

func TestPaymentsDue(t *testing.T) {
	testCases := []struct {
		name  string
		start string
		today string
		want  int
	}{
		// First due date is the 5th of the start month when started on or
		// before the 5th, else the 5th of the following month.
		{name: "before first due", start: "2025-06-01", today: "2025-06-04", want: 0},
		{name: "on first due", start: "2025-06-01", today: "2025-06-05", want: 1},
		{name: "mid month start pushes first due", start: "2025-06-20", today: "2025-06-30", want: 0},
		{name: "mid month start first due next month", start: "2025-06-20", today: "2025-07-05", want: 1},
		{name: "started on the due day", start: "2025-06-05", today: "2025-06-05", want: 1},
		{name: "three months in on the 10th", start: "2025-06-01", today: "2025-08-10", want: 3},
		{name: "three months in before the due day", start: "2025-06-01", today: "2025-08-04", want: 2},
		{name: "across a year boundary", start: "2025-11-01", today: "2026-02-07", want: 4},
		{name: "today before start", start: "2025-06-01", today: "2025-03-10", want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := PaymentsDue(MustParse(tc.start), MustParse(tc.today))
			if got != tc.want {
				t.Errorf("PaymentsDue(%s, %s) = %d, want %d", tc.start, tc.today, got, tc.want)
			}
		})
	}
}

// PaymentsDue is monotonically non-decreasing in 'today' for a fixed start.
func TestPaymentsDueMonotonic(t *testing.T) {
	start := MustParse("2025-03-17")
	prev := 0
	for day := MustParse("2025-03-01"); day.Before(MustParse("2026-06-01")); day = day.Add(1) {
		got := PaymentsDue(start, day)
		if got < prev {
			t.Fatalf("PaymentsDue decreased from %d to %d at %s", prev, got, day)
		}
		prev = got
	}
}

func TestNextDueDate(t *testing.T) {
	testCases := []struct {
		today string
		want  string
	}{
		{today: "2025-06-01", want: "2025-06-05"}, // before the due day
		{today: "2025-06-04", want: "2025-06-05"},
		{today: "2025-06-05", want: "2025-07-05"}, // the due day itself rolls forward
		{today: "2025-06-28", want: "2025-07-05"},
		{today: "2025-12-10", want: "2026-01-05"}, // year rollover
	}
	for _, tc := range testCases {
		if got := NextDueDate(MustParse(tc.today)); got.String() != tc.want {
			t.Errorf("NextDueDate(%s) = %s, want %s", tc.today, got, tc.want)
		}
	}
}

func TestRemainingMonths(t *testing.T) {
	t.Run("sizes a standard loan back to its tenure", func(t *testing.T) {
		emi := Emi(1200000, 9, 120)
		months, ok := RemainingMonths(1200000, emi, 9)
		if !ok {
			t.Fatal("RemainingMonths reported cannot-amortize for a healthy loan")
		}
		if months != 120 {
			t.Errorf("months = %d, want 120", months)
		}
	})

	t.Run("cleared loan needs zero months", func(t *testing.T) {
		months, ok := RemainingMonths(0, 5000, 9)
		if !ok || months != 0 {
			t.Errorf("got (%d, %v), want (0, true)", months, ok)
		}
	})

	t.Run("payment below interest cannot amortize", func(t *testing.T) {
		// 500000 at 12% accrues 5000 of interest a month.
		months, ok := RemainingMonths(500000, 4000, 12)
		if ok {
			t.Errorf("got (%d, true), want cannot-amortize", months)
		}
		if months != 0 {
			t.Errorf("months = %d, want 0", months)
		}
	})

	t.Run("zero payment cannot amortize", func(t *testing.T) {
		if _, ok := RemainingMonths(500000, 0, 12); ok {
			t.Error("zero EMI reported as amortizable")
		}
	})

	t.Run("zero rate amortizes linearly", func(t *testing.T) {
		months, ok := RemainingMonths(12000, 1000, 0)
		if !ok || months != 12 {
			t.Errorf("got (%d, %v), want (12, true)", months, ok)
		}
	})

	t.Run("stays within the safety bound", func(t *testing.T) {
		// Barely above the monthly interest: legal, but slower than 100 years.
		if _, ok := RemainingMonths(500000, 5000.0001, 12); ok {
			t.Error("a 100+ year amortization should report cannot-amortize")
		}
	})
}
