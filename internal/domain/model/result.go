package model

// RiskLabel buckets the risk score for presentation.
type RiskLabel string

const (
	RiskLow    RiskLabel = "bajo"
	RiskMedium RiskLabel = "medio"
	RiskHigh   RiskLabel = "alto"
)

// RiskProfile carries the global (product-independent) risk metrics of the
// selected scenario.
type RiskProfile struct {
	DTIWithoutMortgage float64
	DTIWithMortgage    float64
	DownPaymentRatio   float64

	// RiskScore starts at 100 and loses fixed penalties per adverse
	// condition; PotentialScore is a separate 0-100 weighted blend of band
	// scores. Different scales for different purposes, both surfaced.
	RiskScore      int
	RiskLabel      RiskLabel
	PotentialScore float64
}

// StressTest compares the base payment against a +2 point rate scenario.
type StressTest struct {
	BasePayment       float64
	StressPayment     float64
	Increase          float64
	RecommendedBuffer float64
}

// CostEstimate approximates the closing and carrying costs of the selected
// scenario.
type CostEstimate struct {
	OriginationFee  float64
	AppraisalFee    float64
	AnnualInsurance float64
	UpfrontTotal    float64

	// ApproxEffectiveRate is the nominal annual rate plus the upfront costs
	// annualized over the term, as a fraction of the loan.
	ApproxEffectiveRate float64
}

// ProductOption is one row of the comparison matrix across product families.
type ProductOption struct {
	Product    ProductID
	Label      string
	Viable     bool
	AnnualRate float64
	TermMonths int
	Payment    float64
	MaxLTV     float64
	Binding    BoundKind
}

// ActionItem is one ordered recommendation of the action plan. Amount is the
// USD quantity the applicant must move to clear the triggering threshold,
// 0 when the item is informational.
type ActionItem struct {
	Priority int
	Message  string
	Amount   float64
}

// BenchmarkOffer is one illustrative competing offer computed on the
// selected scenario's loan amount.
type BenchmarkOffer struct {
	Lender              string
	AnnualRate          float64
	TermMonths          int
	Payment             float64
	ApproxEffectiveRate float64
}

// SelectionResult is the full engine output: chosen scenario, every
// per-product evaluation in priority order, global risk metrics and the
// enrichment payload. Recomputed from scratch on every call, never cached.
type SelectionResult struct {
	Selected    ProductEvaluation
	Evaluations []ProductEvaluation

	// NoOffer is the single authoritative no-offer signal: true exactly when
	// the selected evaluation is not viable.
	NoOffer bool

	Risk         RiskProfile
	Stress       StressTest
	Costs        CostEstimate
	Options      []ProductOption
	Checklist    []string
	Actions      []ActionItem
	Benchmarks   []BenchmarkOffer
	Amortization *AmortizationPreview
}
