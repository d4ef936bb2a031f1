package loanbook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ExportVersion stamps every export document so later formats can migrate
// older files.
const ExportVersion = "1.0"

// exportDocument is the single-file import/export format. It should remain
// human readable and easy to diff.
type exportDocument struct {
	Loans       []jloan          `json:"loans"`
	Savings     []SavingsAccount `json:"savings"`
	Currency    string           `json:"currency,omitempty"`
	LastRefresh Date             `json:"lastRefresh"`
	ExportDate  Date             `json:"exportDate"`
	Version     string           `json:"version"`
}

// jloan mirrors Loan for decoding. CurrentPrincipal is a pointer so an
// absent field can default to the principal (a freshly exported record from
// an older version), distinct from a legitimately zero balance.
type jloan struct {
	Name             string        `json:"name"`
	PrincipalAmount  float64       `json:"principalAmount"`
	CurrentPrincipal *float64      `json:"currentPrincipal"`
	InterestRate     float64       `json:"interestRate"`
	TenureMonths     int           `json:"tenure"`
	EmiAmount        float64       `json:"emiAmount"`
	UseCustomEmi     bool          `json:"useCustomEmi,omitempty"`
	CustomEmi        float64       `json:"customEmi,omitempty"`
	StartDate        Date          `json:"startDate"`
	NextEmiDate      Date          `json:"nextEmiDate,omitempty"`
	LastEmiDate      Date          `json:"lastEmiDate,omitempty"`
	IsActive         *bool         `json:"isActive"`
	PartPayments     []PartPayment `json:"partPayments,omitempty"`
	RateChanges      []RateChange  `json:"interestRateChanges,omitempty"`
}

func encodeLoan(l Loan) jloan {
	cp := l.CurrentPrincipal
	active := l.IsActive
	return jloan{
		Name:             l.Name,
		PrincipalAmount:  l.PrincipalAmount,
		CurrentPrincipal: &cp,
		InterestRate:     l.InterestRate,
		TenureMonths:     l.TenureMonths,
		EmiAmount:        l.EmiAmount,
		UseCustomEmi:     l.UseCustomEmi,
		CustomEmi:        l.CustomEmi,
		StartDate:        l.StartDate,
		NextEmiDate:      l.NextEmiDate,
		LastEmiDate:      l.LastEmiDate,
		IsActive:         &active,
		PartPayments:     l.PartPayments,
		RateChanges:      l.RateChanges,
	}
}

// decodeLoan revives a loan record, coercing malformed numeric fields to a
// safe state rather than failing: negatives floor at 0, a missing
// outstanding defaults to the principal, and a missing isActive means true.
func decodeLoan(j jloan) Loan {
	l := Loan{
		Name:            j.Name,
		PrincipalAmount: j.PrincipalAmount,
		InterestRate:    j.InterestRate,
		TenureMonths:    j.TenureMonths,
		EmiAmount:       j.EmiAmount,
		UseCustomEmi:    j.UseCustomEmi,
		CustomEmi:       j.CustomEmi,
		StartDate:       j.StartDate,
		NextEmiDate:     j.NextEmiDate,
		LastEmiDate:     j.LastEmiDate,
		IsActive:        true,
		PartPayments:    j.PartPayments,
		RateChanges:     j.RateChanges,
	}
	if j.IsActive != nil {
		l.IsActive = *j.IsActive
	}
	if l.PrincipalAmount < 0 {
		l.PrincipalAmount = 0
	}
	if j.CurrentPrincipal != nil {
		l.CurrentPrincipal = *j.CurrentPrincipal
	} else {
		l.CurrentPrincipal = l.PrincipalAmount
	}
	if l.CurrentPrincipal < 0 {
		l.CurrentPrincipal = 0
	}
	if l.CurrentPrincipal > l.PrincipalAmount {
		l.CurrentPrincipal = l.PrincipalAmount
	}
	if l.TenureMonths < 0 {
		l.TenureMonths = 0
	}
	if l.EmiAmount < 0 {
		l.EmiAmount = 0
	}
	if l.CustomEmi < 0 {
		l.CustomEmi = 0
	}
	return l
}

// EncodeBook writes the book to w as a version-stamped export document.
// 'on' dates the export; the book's last refresh is bumped to it.
func EncodeBook(w io.Writer, b *Book, on Date) error {
	doc := exportDocument{
		Loans:       []jloan{},
		Savings:     b.savings,
		Currency:    b.currency,
		LastRefresh: on,
		ExportDate:  on,
		Version:     ExportVersion,
	}
	if doc.Savings == nil {
		doc.Savings = []SavingsAccount{}
	}
	for _, l := range b.loans {
		doc.Loans = append(doc.Loans, encodeLoan(l))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("cannot encode book: %w", err)
	}
	b.lastRefresh = on
	return nil
}

// DecodeBook reads an export document from r and revives it into a Book.
func DecodeBook(r io.Reader) (*Book, error) {
	var doc exportDocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot decode book: %w", err)
	}

	b := NewBook()
	b.currency = doc.Currency
	b.lastRefresh = doc.LastRefresh
	b.savings = doc.Savings
	for _, j := range doc.Loans {
		b.loans = append(b.loans, decodeLoan(j))
	}
	return b, nil
}
