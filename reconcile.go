package loanbook

// LoanEdits is a partial update to a loan's terms. A nil field means "not
// edited"; the reconcile policy distinguishes an explicit edit from an
// unchanged value even when they are equal.
type LoanEdits struct {
	Principal    *float64
	Outstanding  *float64
	Rate         *float64
	Tenure       *int
	Emi          *float64
	UseCustomEmi *bool
	CustomEmi    *float64
	IsActive     *bool
}

// Reconcile applies a partial edit to a loan and re-derives the dependent
// fields so EMI and tenure stay mutually consistent with the amortization
// math. 'on' dates the rate-change log entry when the rate is edited.
//
// The EMI selection below is a policy table with overlapping branches whose
// evaluation order is observable behavior: explicit user intent beats derived
// values, and an explicit EMI edit wins over everything else. Do not reorder
// the branches without product sign-off.
func Reconcile(old Loan, edits LoanEdits, on Date) Loan {
	loan := old

	if edits.Principal != nil {
		loan.PrincipalAmount = *edits.Principal
		// Outstanding follows the principal unless explicitly given.
		if edits.Outstanding == nil {
			loan.CurrentPrincipal = *edits.Principal
		}
	}
	if edits.Outstanding != nil {
		loan.CurrentPrincipal = *edits.Outstanding
	}
	if edits.Rate != nil && *edits.Rate != old.InterestRate {
		loan.RateChanges = append(loan.RateChanges, RateChange{
			Date:    on,
			OldRate: old.InterestRate,
			NewRate: *edits.Rate,
		})
		loan.InterestRate = *edits.Rate
	}
	if edits.Tenure != nil {
		loan.TenureMonths = *edits.Tenure
	}
	if edits.UseCustomEmi != nil {
		loan.UseCustomEmi = *edits.UseCustomEmi
	}
	if edits.CustomEmi != nil {
		loan.CustomEmi = *edits.CustomEmi
	}
	if edits.IsActive != nil {
		loan.IsActive = *edits.IsActive
	}

	outstanding := loan.CurrentPrincipal

	var selected float64
	if loan.UseCustomEmi && loan.CustomEmi > 0 {
		selected = loan.CustomEmi
	}
	if loan.UseCustomEmi && loan.CustomEmi <= 0 && old.EmiAmount > 0 {
		// Custom mode without a usable custom value falls back to the
		// current EMI field.
		selected = old.EmiAmount
	}
	if !loan.UseCustomEmi && edits.Emi != nil && *edits.Emi > 0 {
		selected = *edits.Emi
	}
	if !loan.UseCustomEmi && (edits.Rate != nil || edits.Tenure != nil || (selected <= 0 && loan.TenureMonths > 0)) {
		selected = Emi(outstanding, loan.InterestRate, loan.TenureMonths)
	}
	if selected <= 0 && old.EmiAmount > 0 {
		selected = old.EmiAmount
	}
	// An explicit EMI edit overrides all of the above.
	if edits.Emi != nil {
		if loan.UseCustomEmi && loan.CustomEmi > 0 {
			selected = loan.CustomEmi
		} else if *edits.Emi > 0 {
			selected = *edits.Emi
		}
	}
	loan.EmiAmount = selected

	// Keep tenure consistent with the selected EMI. When the loan cannot
	// amortize at that payment, the prior tenure is kept and the stuck state
	// surfaces at resolve time.
	if months, ok := RemainingMonths(outstanding, selected, loan.InterestRate); ok {
		loan.TenureMonths = months
	}

	return loan
}
