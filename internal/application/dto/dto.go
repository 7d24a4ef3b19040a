package dto

import (
	"math"

	"github.com/mleon1997/habitalibre-backend-sub000/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// EvaluateRequest carries the raw applicant record exactly as the caller
// collected it; the engine's normalizer owns the alias resolution.
type EvaluateRequest struct {
	Payload map[string]any `json:"payload"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// ProductEvaluationDTO mirrors one per-product evaluation. Price bounds that
// are unbounded inside the engine (+Inf) serialize as null, never as a
// non-finite number.
type ProductEvaluationDTO struct {
	Product    model.ProductID `json:"product"`
	Label      string          `json:"label"`
	AnnualRate float64         `json:"annual_rate"`
	TermMonths int             `json:"term_months"`

	IncomePass        bool `json:"income_pass"`
	FirstHomePass     bool `json:"first_home_pass"`
	PensionPass       bool `json:"pension_pass"`
	ContributionsPass bool `json:"contributions_pass"`

	MaxPayment       float64 `json:"max_payment"`
	MaxLoanByPayment float64 `json:"max_loan_by_payment"`

	PriceByCapacity *float64        `json:"price_by_capacity"`
	PriceByLTV      *float64        `json:"price_by_ltv"`
	PriceByCap      *float64        `json:"price_by_cap"`
	MaxPrice        *float64        `json:"max_price"`
	Binding         model.BoundKind `json:"binding"`

	LoanNeeded    float64 `json:"loan_needed"`
	LoanGranted   float64 `json:"loan_granted"`
	CurrentLTV    float64 `json:"current_ltv"`
	Payment       float64 `json:"payment"`
	StressPayment float64 `json:"stress_payment"`

	PricePass    bool `json:"price_pass"`
	LTVPass      bool `json:"ltv_pass"`
	CapacityPass bool `json:"capacity_pass"`
	Viable       bool `json:"viable"`
}

type RiskDTO struct {
	DTIWithoutMortgage float64         `json:"dti_without_mortgage"`
	DTIWithMortgage    float64         `json:"dti_with_mortgage"`
	DownPaymentRatio   float64         `json:"down_payment_ratio"`
	RiskScore          int             `json:"risk_score"`
	RiskLabel          model.RiskLabel `json:"risk_label"`
	PotentialScore     float64         `json:"potential_score"`
}

type StressTestDTO struct {
	BasePayment       float64 `json:"base_payment"`
	StressPayment     float64 `json:"stress_payment"`
	Increase          float64 `json:"increase"`
	RecommendedBuffer float64 `json:"recommended_buffer"`
}

type CostEstimateDTO struct {
	OriginationFee      float64 `json:"origination_fee"`
	AppraisalFee        float64 `json:"appraisal_fee"`
	AnnualInsurance     float64 `json:"annual_insurance"`
	UpfrontTotal        float64 `json:"upfront_total"`
	ApproxEffectiveRate float64 `json:"approx_effective_rate"`
}

type ProductOptionDTO struct {
	Product    model.ProductID `json:"product"`
	Label      string          `json:"label"`
	Viable     bool            `json:"viable"`
	AnnualRate float64         `json:"annual_rate"`
	TermMonths int             `json:"term_months"`
	Payment    float64         `json:"payment"`
	MaxLTV     float64         `json:"max_ltv"`
	Binding    model.BoundKind `json:"binding"`
}

type ActionItemDTO struct {
	Priority int     `json:"priority"`
	Message  string  `json:"message"`
	Amount   float64 `json:"amount"`
}

type BenchmarkOfferDTO struct {
	Lender              string  `json:"lender"`
	AnnualRate          float64 `json:"annual_rate"`
	TermMonths          int     `json:"term_months"`
	Payment             float64 `json:"payment"`
	ApproxEffectiveRate float64 `json:"approx_effective_rate"`
}

type AmortizationEntryDTO struct {
	Period           int    `json:"period"`
	Principal        string `json:"principal"`
	Interest         string `json:"interest"`
	Total            string `json:"total"`
	RemainingBalance string `json:"remaining_balance"`
}

type AmortizationDTO struct {
	TermMonths    int                    `json:"term_months"`
	TotalPaid     string                 `json:"total_paid"`
	TotalInterest string                 `json:"total_interest"`
	Entries       []AmortizationEntryDTO `json:"entries"`
}

// EvaluationResponse is the full engine output contract consumed by report
// rendering and notifications. SinOferta is the single authoritative
// no-offer flag; downstream must not re-derive it.
type EvaluationResponse struct {
	EvaluationID string `json:"evaluation_id"`
	SinOferta    bool   `json:"sin_oferta"`

	Selected    ProductEvaluationDTO   `json:"selected"`
	Evaluations []ProductEvaluationDTO `json:"evaluations"`

	Risk         RiskDTO             `json:"risk"`
	Stress       StressTestDTO       `json:"stress_test"`
	Costs        CostEstimateDTO     `json:"costs"`
	Options      []ProductOptionDTO  `json:"options"`
	Checklist    []string            `json:"checklist"`
	Actions      []ActionItemDTO     `json:"actions"`
	Benchmarks   []BenchmarkOfferDTO `json:"benchmarks"`
	Amortization *AmortizationDTO    `json:"amortization"`
}

type LenderMatchDTO struct {
	Lender       string  `json:"lender"`
	AnnualRate   float64 `json:"annual_rate"`
	TermMonths   int     `json:"term_months"`
	Payment      float64 `json:"payment"`
	MeetsIncome  bool    `json:"meets_income"`
	MeetsTenure  bool    `json:"meets_tenure"`
	MeetsAge     bool    `json:"meets_age"`
	MeetsLTV     bool    `json:"meets_ltv"`
	MeetsDTI     bool    `json:"meets_dti"`
	FitsCapacity bool    `json:"fits_capacity"`
	Eligible     bool    `json:"eligible"`
}

// BankAffinityResponse extends the evaluation with the ranked lender table.
type BankAffinityResponse struct {
	Evaluation      EvaluationResponse `json:"evaluation"`
	GenericCapacity float64            `json:"generic_capacity"`
	Lenders         []LenderMatchDTO   `json:"lenders"`
}

// ---------------------------------------------------------------------------
// Converters
// ---------------------------------------------------------------------------

// FromSelectionResult maps the engine result to the wire shape.
func FromSelectionResult(id string, r model.SelectionResult) EvaluationResponse {
	resp := EvaluationResponse{
		EvaluationID: id,
		SinOferta:    r.NoOffer,
		Selected:     fromEvaluation(r.Selected),
		Risk: RiskDTO{
			DTIWithoutMortgage: r.Risk.DTIWithoutMortgage,
			DTIWithMortgage:    r.Risk.DTIWithMortgage,
			DownPaymentRatio:   r.Risk.DownPaymentRatio,
			RiskScore:          r.Risk.RiskScore,
			RiskLabel:          r.Risk.RiskLabel,
			PotentialScore:     r.Risk.PotentialScore,
		},
		Stress: StressTestDTO{
			BasePayment:       r.Stress.BasePayment,
			StressPayment:     r.Stress.StressPayment,
			Increase:          r.Stress.Increase,
			RecommendedBuffer: r.Stress.RecommendedBuffer,
		},
		Costs: CostEstimateDTO{
			OriginationFee:      r.Costs.OriginationFee,
			AppraisalFee:        r.Costs.AppraisalFee,
			AnnualInsurance:     r.Costs.AnnualInsurance,
			UpfrontTotal:        r.Costs.UpfrontTotal,
			ApproxEffectiveRate: r.Costs.ApproxEffectiveRate,
		},
		Checklist: r.Checklist,
	}

	for _, ev := range r.Evaluations {
		resp.Evaluations = append(resp.Evaluations, fromEvaluation(ev))
	}
	for _, o := range r.Options {
		resp.Options = append(resp.Options, ProductOptionDTO{
			Product:    o.Product,
			Label:      o.Label,
			Viable:     o.Viable,
			AnnualRate: o.AnnualRate,
			TermMonths: o.TermMonths,
			Payment:    o.Payment,
			MaxLTV:     o.MaxLTV,
			Binding:    o.Binding,
		})
	}
	for _, a := range r.Actions {
		resp.Actions = append(resp.Actions, ActionItemDTO{Priority: a.Priority, Message: a.Message, Amount: a.Amount})
	}
	for _, b := range r.Benchmarks {
		resp.Benchmarks = append(resp.Benchmarks, BenchmarkOfferDTO{
			Lender:              b.Lender,
			AnnualRate:          b.AnnualRate,
			TermMonths:          b.TermMonths,
			Payment:             b.Payment,
			ApproxEffectiveRate: b.ApproxEffectiveRate,
		})
	}
	if r.Amortization != nil {
		am := &AmortizationDTO{
			TermMonths:    r.Amortization.TermMonths,
			TotalPaid:     r.Amortization.TotalPaid.StringFixed(2),
			TotalInterest: r.Amortization.TotalInterest.StringFixed(2),
		}
		for _, e := range r.Amortization.Entries {
			am.Entries = append(am.Entries, AmortizationEntryDTO{
				Period:           e.Period,
				Principal:        e.Principal.StringFixed(2),
				Interest:         e.Interest.StringFixed(2),
				Total:            e.Total.StringFixed(2),
				RemainingBalance: e.RemainingBalance.StringFixed(2),
			})
		}
		resp.Amortization = am
	}
	return resp
}

// FromAffinityResult maps the bank affinity result to the wire shape.
func FromAffinityResult(id string, r model.AffinityResult) BankAffinityResponse {
	resp := BankAffinityResponse{
		Evaluation:      FromSelectionResult(id, r.Evaluation),
		GenericCapacity: r.GenericCapacity,
	}
	for _, m := range r.Lenders {
		resp.Lenders = append(resp.Lenders, LenderMatchDTO{
			Lender:       m.Lender.Name,
			AnnualRate:   m.Lender.AnnualRate,
			TermMonths:   m.TermMonths,
			Payment:      m.Payment,
			MeetsIncome:  m.MeetsIncome,
			MeetsTenure:  m.MeetsTenure,
			MeetsAge:     m.MeetsAge,
			MeetsLTV:     m.MeetsLTV,
			MeetsDTI:     m.MeetsDTI,
			FitsCapacity: m.FitsCapacity,
			Eligible:     m.Eligible,
		})
	}
	return resp
}

func fromEvaluation(ev model.ProductEvaluation) ProductEvaluationDTO {
	return ProductEvaluationDTO{
		Product:           ev.Rule.ID,
		Label:             ev.Rule.Label,
		AnnualRate:        ev.Rule.AnnualRate,
		TermMonths:        ev.Rule.TermMonths,
		IncomePass:        ev.Gates.IncomePass,
		FirstHomePass:     ev.Gates.FirstHomePass,
		PensionPass:       ev.Gates.PensionPass,
		ContributionsPass: ev.Gates.ContributionsPass,
		MaxPayment:        ev.MaxPayment,
		MaxLoanByPayment:  ev.MaxLoanByPayment,
		PriceByCapacity:   finiteOrNull(ev.PriceByCapacity),
		PriceByLTV:        finiteOrNull(ev.PriceByLTV),
		PriceByCap:        finiteOrNull(ev.PriceByCap),
		MaxPrice:          finiteOrNull(ev.MaxPrice),
		Binding:           ev.Binding,
		LoanNeeded:        ev.LoanNeeded,
		LoanGranted:       ev.LoanGranted,
		CurrentLTV:        ev.CurrentLTV,
		Payment:           ev.Payment,
		StressPayment:     ev.StressPayment,
		PricePass:         ev.PricePass,
		LTVPass:           ev.LTVPass,
		CapacityPass:      ev.CapacityPass,
		Viable:            ev.Viable,
	}
}

// finiteOrNull maps unbounded engine values to null on the wire: every
// numeric leaf of the contract is finite or explicitly null.
func finiteOrNull(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
