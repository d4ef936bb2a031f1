package loanbook

import (
	"errors"
	"fmt"
)

// MaxInterestRate is the highest plausible annual rate for a personal loan.
const MaxInterestRate = 50

// ValidateLoan checks a loan record for correctness. It returns an error
// joining all failures, so a user can fix everything in one pass.
func ValidateLoan(loan Loan) error {
	var errs []error
	if loan.Name == "" {
		errs = append(errs, fmt.Errorf("loan name is required"))
	}
	if loan.PrincipalAmount <= 0 {
		errs = append(errs, fmt.Errorf("principal must be positive, got %v", loan.PrincipalAmount))
	}
	if loan.CurrentPrincipal < 0 {
		errs = append(errs, fmt.Errorf("outstanding cannot be negative, got %v", loan.CurrentPrincipal))
	}
	if loan.CurrentPrincipal > loan.PrincipalAmount {
		errs = append(errs, fmt.Errorf("outstanding %v exceeds the original principal %v", loan.CurrentPrincipal, loan.PrincipalAmount))
	}
	if loan.InterestRate <= 0 || loan.InterestRate > MaxInterestRate {
		errs = append(errs, fmt.Errorf("interest rate must be in (0, %d], got %v", MaxInterestRate, loan.InterestRate))
	}
	if loan.TenureMonths < 0 {
		errs = append(errs, fmt.Errorf("tenure cannot be negative, got %d", loan.TenureMonths))
	}
	if loan.UseCustomEmi && loan.CustomEmi < 0 {
		errs = append(errs, fmt.Errorf("custom EMI cannot be negative, got %v", loan.CustomEmi))
	}
	if loan.StartDate.IsZero() {
		errs = append(errs, fmt.Errorf("start date is required"))
	}
	return errors.Join(errs...)
}
