package model

// ProductID identifies one loan program in the rulebook.
type ProductID string

const (
	ProductVIS           ProductID = "vis"
	ProductVIP           ProductID = "vip"
	ProductBiessPref     ProductID = "biess_preferencial"
	ProductBiessStandard ProductID = "biess_estandar"
	ProductCommercial    ProductID = "comercial"
)

// PriorityOrder is the fixed product selection order, most-subsidized first.
// The selector walks it once and picks the first viable evaluation; the last
// entry is the least restrictive program and the fallback when nothing is
// viable.
var PriorityOrder = []ProductID{
	ProductVIS,
	ProductVIP,
	ProductBiessPref,
	ProductBiessStandard,
	ProductCommercial,
}

// ProductRule is the static configuration of one loan program. Zero values
// mean "uncapped" for PriceCap, IncomeCap and MaxDTI.
type ProductRule struct {
	ID         ProductID `yaml:"id"`
	Label      string    `yaml:"label"`
	AnnualRate float64   `yaml:"annual_rate"`
	TermMonths int       `yaml:"term_months"`
	MaxLTV     float64   `yaml:"max_ltv"`
	PriceCap   float64   `yaml:"price_cap"`
	IncomeCap  float64   `yaml:"income_cap"`

	FirstHomeOnly               bool `yaml:"first_home_only"`
	RequiresPension             bool `yaml:"requires_pension"`
	MinContributionsTotal       int  `yaml:"min_contributions_total"`
	MinContributionsConsecutive int  `yaml:"min_contributions_consecutive"`

	MaxDTI float64 `yaml:"max_dti"`

	// FixedCapacity marks subsidized programs that apply their nominal DTI
	// ceiling without the risk dampening factors.
	FixedCapacity bool `yaml:"fixed_capacity"`
}

// MonthlyRate converts the annual nominal rate to a monthly period rate.
func (r ProductRule) MonthlyRate() float64 {
	return r.AnnualRate / 12
}

// BoundKind names which limit produced a product's maximum affordable price.
type BoundKind string

const (
	BoundCapacity BoundKind = "capacity"
	BoundLTV      BoundKind = "ltv"
	BoundPriceCap BoundKind = "price_cap"
)

// Gatekeepers are the binary eligibility checks of one product, independent
// of financial capacity.
type Gatekeepers struct {
	IncomePass        bool
	FirstHomePass     bool
	PensionPass       bool
	ContributionsPass bool
}

// AllPass reports whether every gatekeeper passed.
func (g Gatekeepers) AllPass() bool {
	return g.IncomePass && g.FirstHomePass && g.PensionPass && g.ContributionsPass
}

// ProductEvaluation is the immutable outcome of evaluating one ProductRule
// against one NormalizedInput. PriceByLTV and PriceByCap may be +Inf inside
// the engine; the DTO layer maps non-finite values to null before anything
// is serialized.
type ProductEvaluation struct {
	Rule  ProductRule
	Gates Gatekeepers

	MaxPayment       float64
	MaxLoanByPayment float64

	PriceByCapacity float64
	PriceByLTV      float64
	PriceByCap      float64
	MaxPrice        float64
	Binding         BoundKind

	LoanNeeded    float64
	LoanGranted   float64
	CurrentLTV    float64
	Payment       float64
	StressPayment float64

	PricePass    bool
	LTVPass      bool
	CapacityPass bool

	Viable bool
}
