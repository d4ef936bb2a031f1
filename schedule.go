package loanbook

import "math"

// This file implements the pure amortization math: the annuity formula, the
// month-by-month simulator, and the payment-count oracle. Everything here is
// float64 arithmetic on a supplied date; no record is ever mutated.

// DueDay is the fixed day of month on which every EMI falls due. The model
// is a fixed-statement-day billing cycle rather than elapsed time since
// origination, so mid-month starts do not create fractional first payments.
const DueDay = 5

// maxAmortizationMonths bounds every open-ended simulation loop (100 years).
const maxAmortizationMonths = 1200

// Emi computes the standard annuity payment for a loan.
//
// It returns 0 when tenureMonths, principal, or the monthly rate is not
// positive: the formula degenerates as the rate approaches zero, and an
// unusable financial result of 0 is always a safe displayable default.
func Emi(principal, annualRatePercent float64, tenureMonths int) float64 {
	r := monthlyRate(annualRatePercent)
	if tenureMonths <= 0 || principal <= 0 || r <= 0 {
		return 0
	}
	pow := math.Pow(1+r, float64(tenureMonths))
	return principal * r * pow / (pow - 1)
}

func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / 12
}

// amortStep is the split of one payment into its components.
type amortStep struct {
	interest  float64
	principal float64
	balance   float64 // after the payment
}

// balanceEpsilon absorbs float rounding residue after a final payment. It is
// far below any representable money amount, so a genuinely short payment
// still leaves a positive balance.
const balanceEpsilon = 1e-6

// step applies one EMI to a balance. The principal portion is floored at 0
// (a payment smaller than the accrued interest reduces nothing), and the new
// balance is floored at 0 (the last payment is implicitly smaller).
func step(balance, emi, rate float64) amortStep {
	interest := balance * rate
	principal := emi - interest
	if principal < 0 {
		principal = 0
	}
	if principal > balance {
		principal = balance
	}
	remaining := balance - principal
	if remaining < balanceEpsilon {
		principal = balance
		remaining = 0
	}
	return amortStep{interest: interest, principal: principal, balance: remaining}
}

// forwardResult is the outcome of walking a balance forward n months.
type forwardResult struct {
	balance  float64 // remaining balance after the applied steps
	months   int     // steps actually applied
	interest float64 // total interest accrued over the applied steps
	stuck    bool    // true when a payment could not cover its interest
}

// forwardApply walks balance forward up to n monthly steps under a fixed emi
// and rate. It stops early when the balance reaches 0, or when the payment
// cannot cover the interest (the stuck-loan condition).
func forwardApply(balance, emi, rate float64, n int) forwardResult {
	res := forwardResult{balance: balance}
	for i := 0; i < n && res.balance > 0; i++ {
		s := step(res.balance, emi, rate)
		if s.principal <= 0 {
			res.stuck = true
			return res
		}
		res.balance = s.balance
		res.interest += s.interest
		res.months++
	}
	return res
}

// RemainingMonths computes how many monthly payments of emi it takes to
// amortize outstanding at the given annual rate.
//
// The second result is false when the loan cannot amortize: the payment never
// covers the interest, or the simulation exceeds its safety bound. Callers
// must treat (0, false) as "EMI too low", never as a fully paid loan.
func RemainingMonths(outstanding, emi, annualRatePercent float64) (int, bool) {
	if outstanding <= 0 {
		return 0, true
	}
	if emi <= 0 {
		return 0, false
	}
	r := monthlyRate(annualRatePercent)
	balance := outstanding
	for months := 0; months < maxAmortizationMonths; months++ {
		s := step(balance, emi, r)
		if s.principal <= 0 {
			return 0, false
		}
		balance = s.balance
		if balance <= 0 {
			return months + 1, true
		}
	}
	return 0, false
}

// firstDueDate returns the first scheduled due date for a loan started on
// 'start': the DueDay of the start month when the loan started on or before
// it, else the DueDay of the following month.
func firstDueDate(start Date) Date {
	if start.Day() <= DueDay {
		return NewDate(start.Year(), start.Month(), DueDay)
	}
	return NewDate(start.Year(), start.Month(), DueDay).AddMonth(1)
}

// lastDueAnchor returns the most recent due date on or before 'today'.
func lastDueAnchor(today Date) Date {
	anchor := NewDate(today.Year(), today.Month(), DueDay)
	if today.Day() < DueDay {
		anchor = anchor.AddMonth(-1)
	}
	return anchor
}

// PaymentsDue counts how many scheduled monthly payments have fallen due
// between a loan's start date and 'today'. The result is never negative;
// clamping to the loan's tenure is the caller's concern.
func PaymentsDue(start, today Date) int {
	first := firstDueDate(start)
	if today.Before(first) {
		return 0
	}
	return lastDueAnchor(today).MonthsSince(first) + 1
}

// NextDueDate returns the next scheduled due date strictly from 'today''s
// point of view: the DueDay of the current month if it is still ahead, else
// the DueDay of the next month.
func NextDueDate(today Date) Date {
	next := NewDate(today.Year(), today.Month(), DueDay)
	if today.Day() >= DueDay {
		next = next.AddMonth(1)
	}
	return next
}
