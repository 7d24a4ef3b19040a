package model

import (
	"math"

	"github.com/shopspring/decimal"
)

// AmortizationEntry is one period of a fixed-payment amortization schedule.
type AmortizationEntry struct {
	Period           int
	Principal        decimal.Decimal
	Interest         decimal.Decimal
	Total            decimal.Decimal
	RemainingBalance decimal.Decimal
}

// AmortizationPreview summarizes the schedule of the granted loan: the first
// PreviewPeriods entries for display plus the totals over the full term.
type AmortizationPreview struct {
	Entries       []AmortizationEntry
	TermMonths    int
	TotalPaid     decimal.Decimal
	TotalInterest decimal.Decimal
}

// PreviewPeriods is how many schedule rows the preview carries.
const PreviewPeriods = 12

// NewAmortizationPreview walks a standard fixed-payment schedule for the
// given principal, nominal annual rate (fraction, e.g. 0.0499) and term.
// The payment factor is computed in float64, monetary amounts in decimal;
// the last period absorbs rounding so the balance lands on exactly zero.
// Returns nil for a non-positive principal or term.
func NewAmortizationPreview(principal float64, annualRate float64, termMonths int) *AmortizationPreview {
	if termMonths <= 0 || principal <= 0 || math.IsInf(principal, 0) || math.IsNaN(principal) {
		return nil
	}

	monthlyRate := annualRate / 12
	principalDec := decimal.NewFromFloat(principal).Round(2)

	var payment decimal.Decimal
	if monthlyRate == 0 {
		payment = principalDec.Div(decimal.NewFromInt(int64(termMonths))).Round(2)
	} else {
		factor := math.Pow(1+monthlyRate, float64(termMonths))
		payment = decimal.NewFromFloat(principal * monthlyRate * factor / (factor - 1)).Round(2)
	}

	preview := &AmortizationPreview{
		TermMonths:    termMonths,
		TotalPaid:     decimal.Zero,
		TotalInterest: decimal.Zero,
	}

	remaining := principalDec
	rateDec := decimal.NewFromFloat(monthlyRate)

	for period := 1; period <= termMonths; period++ {
		interest := remaining.Mul(rateDec).Round(2)
		principalPart := payment.Sub(interest)
		total := payment

		if period == termMonths {
			principalPart = remaining
			total = principalPart.Add(interest)
		}

		remaining = remaining.Sub(principalPart)
		if remaining.LessThan(decimal.Zero) {
			remaining = decimal.Zero
		}

		preview.TotalPaid = preview.TotalPaid.Add(total)
		preview.TotalInterest = preview.TotalInterest.Add(interest)

		if period <= PreviewPeriods {
			preview.Entries = append(preview.Entries, AmortizationEntry{
				Period:           period,
				Principal:        principalPart,
				Interest:         interest,
				Total:            total,
				RemainingBalance: remaining,
			})
		}
	}

	return preview
}
