package model

// IncomeType classifies the applicant's primary income source.
type IncomeType string

const (
	IncomeEmployed     IncomeType = "employed"
	IncomeSelfEmployed IncomeType = "self_employed"
	IncomeMixed        IncomeType = "mixed"
)

// BureauStanding is the applicant's standing with the credit bureau.
type BureauStanding string

const (
	BureauNone        BureauStanding = "none"
	BureauRegularized BureauStanding = "regularized"
	BureauDelinquent  BureauStanding = "delinquent"
)

// NormalizedInput is the canonical applicant record every product evaluation
// reads. All monetary and ratio fields are finite and >= 0 once the
// normalizer has run; a missing required numeric field is 0, which downstream
// formulas treat as "no data" through their zero guards.
type NormalizedInput struct {
	MonthlyIncome float64
	PartnerIncome float64
	MonthlyDebts  float64
	HomePrice     float64
	DownPayment   float64

	Age         int
	IncomeType  IncomeType
	TenureYears float64

	// PensionAffiliated stays nil when the raw field carried no recognizable
	// token: affiliation has no safe default and the gatekeepers must see the
	// difference between "no" and "unknown".
	PensionAffiliated *bool

	OwnsHome bool
	Bureau   BureauStanding

	ContributionsTotal       int
	ContributionsConsecutive int
}

// TotalIncome is the household monthly net income.
func (in NormalizedInput) TotalIncome() float64 {
	return in.MonthlyIncome + in.PartnerIncome
}

// DisposableIncome is household income minus existing monthly debts,
// floored at zero.
func (in NormalizedInput) DisposableIncome() float64 {
	d := in.TotalIncome() - in.MonthlyDebts
	if d < 0 {
		return 0
	}
	return d
}

// Affiliated reports pension affiliation, treating unknown as not affiliated.
func (in NormalizedInput) Affiliated() bool {
	return in.PensionAffiliated != nil && *in.PensionAffiliated
}
