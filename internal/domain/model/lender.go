package model

// LenderProfile is one illustrative lender in the bank affinity table.
// TermOptions are the candidate terms the lender actually writes contracts
// for; affinity picks the longest one to quote the lowest payment.
type LenderProfile struct {
	Name            string
	AnnualRate      float64
	MaxLTV          float64
	MaxDTI          float64
	MinIncome       float64
	MinTenureMonths int
	MinAge          int
	TermOptions     []int
}

// LenderMatch is the affinity verdict for one lender on the selected
// scenario's loan amount.
type LenderMatch struct {
	Lender     LenderProfile
	TermMonths int
	Payment    float64

	MeetsIncome bool
	MeetsTenure bool
	MeetsAge    bool
	MeetsLTV    bool
	MeetsDTI    bool

	// FitsCapacity checks the lender's payment against the engine's generic
	// capacity (baseline DTI on disposable income), not the per-product one.
	FitsCapacity bool

	Eligible bool
}

// AffinityResult is the bank affinity output: the full evaluation plus the
// ranked lender table.
type AffinityResult struct {
	Evaluation      SelectionResult
	GenericCapacity float64
	Lenders         []LenderMatch
}
