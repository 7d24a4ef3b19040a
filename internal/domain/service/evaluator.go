package service

import (
	"math"

	"github.com/mleon1997/habitalibre-backend-sub000/internal/domain/model"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/rules"
)

// epsilon tolerates floating-point noise on the viability comparisons.
const epsilon = 1e-9

// baselineDTI is the DTI ceiling used when a product does not fix its own.
func baselineDTI(in model.NormalizedInput) float64 {
	if in.Affiliated() {
		return rules.BaselineDTIAffiliated
	}
	return rules.BaselineDTINotAffiliated
}

// dampeningFactor is the product of the income-type, tenure and age factors,
// floored at the market-wide minimum. Subsidized programs with FixedCapacity
// skip it entirely.
func dampeningFactor(in model.NormalizedInput) float64 {
	f := rules.IncomeTypeFactor(in.IncomeType) * rules.TenureFactor(in.TenureYears) * rules.AgeFactor(in.Age)
	return math.Max(rules.DampeningFloor, f)
}

// EvaluateProduct decides viability and computes bounds for one product.
// It never fails: the normalizer already defaulted every field, so all the
// arithmetic below completes with finite intermediate values (the two price
// bounds may legitimately be +Inf for uncapped programs).
func EvaluateProduct(rule model.ProductRule, in model.NormalizedInput) model.ProductEvaluation {
	ev := model.ProductEvaluation{Rule: rule}

	// Gatekeepers: binary eligibility, independent of the financials.
	ev.Gates = model.Gatekeepers{
		IncomePass:        rule.IncomeCap == 0 || in.TotalIncome() <= rule.IncomeCap+epsilon,
		FirstHomePass:     !rule.FirstHomeOnly || !in.OwnsHome,
		PensionPass:       !rule.RequiresPension || in.Affiliated(),
		ContributionsPass: contributionsPass(rule, in),
	}

	// Capacity.
	ceiling := rule.MaxDTI
	if ceiling == 0 {
		ceiling = baselineDTI(in)
	}
	damp := 1.0
	if !rule.FixedCapacity {
		damp = dampeningFactor(in)
	}
	ev.MaxPayment = in.DisposableIncome() * ceiling * damp
	ev.MaxLoanByPayment = PresentValue(rule.MonthlyRate(), rule.TermMonths, ev.MaxPayment)

	// Bounds. Tie-break on equal values: capacity, then LTV, then cap.
	ev.PriceByCapacity = in.DownPayment + ev.MaxLoanByPayment
	ev.PriceByLTV = math.Inf(1)
	if rule.MaxLTV < 1 {
		ev.PriceByLTV = in.DownPayment / (1 - rule.MaxLTV)
	}
	ev.PriceByCap = math.Inf(1)
	if rule.PriceCap > 0 {
		ev.PriceByCap = rule.PriceCap
	}
	switch {
	case ev.PriceByCapacity <= ev.PriceByLTV && ev.PriceByCapacity <= ev.PriceByCap:
		ev.MaxPrice = ev.PriceByCapacity
		ev.Binding = model.BoundCapacity
	case ev.PriceByLTV <= ev.PriceByCap:
		ev.MaxPrice = ev.PriceByLTV
		ev.Binding = model.BoundLTV
	default:
		ev.MaxPrice = ev.PriceByCap
		ev.Binding = model.BoundPriceCap
	}

	// Current scenario.
	ev.LoanNeeded = math.Max(0, in.HomePrice-in.DownPayment)
	if in.HomePrice > 0 {
		ev.CurrentLTV = ev.LoanNeeded / in.HomePrice
	}
	ev.LoanGranted = math.Min(ev.LoanNeeded, ev.MaxLoanByPayment)
	ev.Payment = Payment(rule.MonthlyRate(), rule.TermMonths, ev.LoanGranted)
	ev.StressPayment = Payment(rule.MonthlyRate()+rules.StressRateDelta/12, rule.TermMonths, ev.LoanGranted)

	// Viability. Capacity is checked on the payment the target purchase
	// would require, not on the granted (already capped) loan, so asking for
	// more than the product can lend correctly fails the check.
	paymentNeeded := Payment(rule.MonthlyRate(), rule.TermMonths, ev.LoanNeeded)
	ev.PricePass = rule.PriceCap == 0 || in.HomePrice <= rule.PriceCap+epsilon
	ev.LTVPass = ev.CurrentLTV <= rule.MaxLTV+epsilon
	ev.CapacityPass = paymentNeeded <= ev.MaxPayment+epsilon
	ev.Viable = ev.Gates.AllPass() && ev.PricePass && ev.LTVPass && ev.CapacityPass

	return ev
}

func contributionsPass(rule model.ProductRule, in model.NormalizedInput) bool {
	if rule.MinContributionsTotal == 0 && rule.MinContributionsConsecutive == 0 {
		return true
	}
	return in.ContributionsTotal >= rule.MinContributionsTotal &&
		in.ContributionsConsecutive >= rule.MinContributionsConsecutive
}
