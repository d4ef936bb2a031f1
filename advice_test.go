package loanbook

import (
	"strings"
	"testing"
)

func TestSuggestionsFullHouse(t *testing.T) {
	// A long high-rate loan and a short high-rate loan trigger all three rules.
	long := homeLoan() // 9%, 120 months
	long.InterestRate = 11.5
	short := carLoan() // 11%, 24 months
	s := bookWith(long, short).SnapshotAt(MustParse("2025-06-03"))

	got := s.Suggestions()
	if len(got) != 3 {
		t.Fatalf("got %d suggestions, want 3: %+v", len(got), got)
	}

	if got[0].Priority != 1 || !strings.Contains(got[0].Title, "home") {
		t.Errorf("suggestion 1 = %+v, want a part-payment nudge on the highest-rate loan", got[0])
	}
	if !strings.Contains(got[0].Detail, "11.50%") {
		t.Errorf("suggestion 1 detail %q does not name the rate", got[0].Detail)
	}
	if got[1].Priority != 2 || !strings.Contains(got[1].Title, "short-term") {
		t.Errorf("suggestion 2 = %+v, want the short-term high-rate reminder", got[1])
	}
	if got[2].Priority != 3 || !strings.Contains(got[2].Title, "emergency") {
		t.Errorf("suggestion 3 = %+v, want the emergency fund reminder", got[2])
	}
}

func TestSuggestionsShortTermRuleIsSingleton(t *testing.T) {
	// Several qualifying loans still produce one short-term reminder.
	a, b := carLoan(), carLoan()
	b.Name = "bike"
	s := bookWith(a, b).SnapshotAt(MustParse("2025-06-03"))

	count := 0
	for _, sg := range s.Suggestions() {
		if sg.Priority == 2 {
			count++
		}
	}
	if count != 1 {
		t.Errorf("short-term rule fired %d times, want 1", count)
	}
}

func TestSuggestionsSkipNearlyDoneLoans(t *testing.T) {
	// The part-payment rule needs more than 12 EMIs remaining.
	short := carLoan()
	short.TenureMonths = 10
	s := bookWith(short).SnapshotAt(MustParse("2025-06-03"))

	for _, sg := range s.Suggestions() {
		if sg.Priority == 1 {
			t.Errorf("part-payment rule fired for a loan with 10 EMIs left: %+v", sg)
		}
	}
}

func TestSuggestionsEmptyBook(t *testing.T) {
	got := NewBook().SnapshotAt(MustParse("2025-06-03")).Suggestions()
	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want only the emergency fund reminder", len(got))
	}
	if got[0].Priority != 3 {
		t.Errorf("suggestion = %+v", got[0])
	}
}

func TestSuggestionsIgnoreLowRateShortLoans(t *testing.T) {
	// A short loan at 7% does not trigger the short-term high-rate rule.
	cheap := carLoan()
	cheap.InterestRate = 7
	cheap.TenureMonths = 18
	s := bookWith(cheap).SnapshotAt(MustParse("2025-06-03"))

	for _, sg := range s.Suggestions() {
		if sg.Priority == 2 {
			t.Errorf("short-term rule fired for a 7%% loan: %+v", sg)
		}
	}
}
