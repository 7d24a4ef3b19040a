package service

import (
	"github.com/mleon1997/habitalibre-backend-sub000/internal/domain/model"
)

// Engine evaluates the product rulebook against applicant input. It holds
// only the immutable rule table, so one instance is safe for any number of
// concurrent callers.
type Engine struct {
	products []model.ProductRule
}

// NewEngine builds an engine over the given rulebook. The rulebook loader
// already guaranteed every product of the priority order is present.
func NewEngine(products []model.ProductRule) *Engine {
	return &Engine{products: products}
}

// Evaluate runs the full pipeline on a raw record: normalize, evaluate every
// product, select the binding scenario and enrich it.
func (e *Engine) Evaluate(raw map[string]any) model.SelectionResult {
	return e.Select(Normalize(raw))
}

// Select evaluates every configured product in priority order and picks the
// first viable one; when nothing is viable it falls back to the last,
// least-restrictive product so callers always see concrete numbers behind a
// "not approved" answer.
func (e *Engine) Select(in model.NormalizedInput) model.SelectionResult {
	byID := make(map[model.ProductID]model.ProductEvaluation, len(e.products))
	for _, rule := range e.products {
		byID[rule.ID] = EvaluateProduct(rule, in)
	}

	ordered := make([]model.ProductEvaluation, 0, len(model.PriorityOrder))
	for _, id := range model.PriorityOrder {
		ordered = append(ordered, byID[id])
	}

	selected := ordered[len(ordered)-1]
	for _, ev := range ordered {
		if ev.Viable {
			selected = ev
			break
		}
	}

	result := model.SelectionResult{
		Selected:    selected,
		Evaluations: ordered,
		NoOffer:     !selected.Viable,
		Risk:        riskProfile(in, selected),
	}
	enrich(&result, in)
	return result
}

// Risk score penalties. The score starts at 100 and each triggered condition
// subtracts its fixed penalty; the result is clamped at 0.
const (
	penaltyHighDTI          = 25
	penaltyLowDownPayment   = 20
	penaltySelfEmployed     = 10
	penaltyShortTenure      = 15
	penaltyAgeOutsideBand   = 10
	penaltyBureauRegularize = 15
	penaltyBureauDelinquent = 35
)

func riskProfile(in model.NormalizedInput, selected model.ProductEvaluation) model.RiskProfile {
	income := in.TotalIncome()

	p := model.RiskProfile{}
	if income > 0 {
		p.DTIWithoutMortgage = in.MonthlyDebts / income
		p.DTIWithMortgage = (in.MonthlyDebts + selected.Payment) / income
	}
	if in.HomePrice > 0 {
		p.DownPaymentRatio = in.DownPayment / in.HomePrice
	}

	score := 100
	if p.DTIWithMortgage > 0.45 {
		score -= penaltyHighDTI
	}
	if p.DownPaymentRatio < 0.10 {
		score -= penaltyLowDownPayment
	}
	if in.IncomeType == model.IncomeSelfEmployed {
		score -= penaltySelfEmployed
	}
	if in.TenureYears < 1 {
		score -= penaltyShortTenure
	}
	if in.Age < 25 || in.Age > 60 {
		score -= penaltyAgeOutsideBand
	}
	switch in.Bureau {
	case model.BureauRegularized:
		score -= penaltyBureauRegularize
	case model.BureauDelinquent:
		score -= penaltyBureauDelinquent
	}
	if score < 0 {
		score = 0
	}

	p.RiskScore = score
	switch {
	case score >= 80:
		p.RiskLabel = model.RiskLow
	case score >= 60:
		p.RiskLabel = model.RiskMedium
	default:
		p.RiskLabel = model.RiskHigh
	}

	p.PotentialScore = potentialScore(in, selected, p.DTIWithMortgage)
	return p
}

// Potential score: a 0-100 blend of four band scores with fixed weights.
// Intentionally a different scale and purpose than the risk score.
const (
	weightLTVBand    = 0.35
	weightDTIBand    = 0.35
	weightTenureBand = 0.15
	weightBureauBand = 0.15
)

func potentialScore(in model.NormalizedInput, selected model.ProductEvaluation, dtiWith float64) float64 {
	blend := weightLTVBand*ltvBand(in.HomePrice, selected.CurrentLTV) +
		weightDTIBand*dtiBand(dtiWith) +
		weightTenureBand*tenureBand(in.TenureYears) +
		weightBureauBand*bureauBand(in.Bureau)
	return round2(blend)
}

func ltvBand(price, ltv float64) float64 {
	if price <= 0 {
		return 50
	}
	switch {
	case ltv <= 0.70:
		return 100
	case ltv <= 0.80:
		return 85
	case ltv <= 0.90:
		return 70
	case ltv <= 0.95:
		return 55
	default:
		return 40
	}
}

func dtiBand(dti float64) float64 {
	switch {
	case dti <= 0.30:
		return 100
	case dti <= 0.36:
		return 85
	case dti <= 0.42:
		return 70
	case dti <= 0.45:
		return 55
	default:
		return 30
	}
}

func tenureBand(years float64) float64 {
	switch {
	case years >= 5:
		return 100
	case years >= 3:
		return 85
	case years >= 1:
		return 65
	default:
		return 40
	}
}

func bureauBand(b model.BureauStanding) float64 {
	switch b {
	case model.BureauRegularized:
		return 60
	case model.BureauDelinquent:
		return 20
	default:
		return 100
	}
}
