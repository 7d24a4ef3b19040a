package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mleon1997/habitalibre-backend-sub000/internal/domain/model"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/rules"
)

func newTestEngine() *Engine {
	return NewEngine(rules.Default())
}

func TestSelect_SolidApplicantGetsVIS(t *testing.T) {
	result := newTestEngine().Select(solidApplicant())

	assert.Equal(t, model.ProductVIS, result.Selected.Rule.ID)
	assert.True(t, result.Selected.Viable)
	assert.False(t, result.NoOffer)
	assert.Less(t, result.Selected.Payment, result.Selected.MaxPayment)
	require.Len(t, result.Evaluations, len(model.PriorityOrder))
	for i, id := range model.PriorityOrder {
		assert.Equal(t, id, result.Evaluations[i].Rule.ID, "evaluations keep priority order")
	}
}

func TestSelect_FirstViableInPriorityOrderWins(t *testing.T) {
	// Price above the VIS cap but below the VIP cap: VIP must win even
	// though BIESS would also be viable.
	in := solidApplicant()
	in.HomePrice = 120000
	in.DownPayment = 30000
	in.MonthlyIncome = 2500
	in.MonthlyDebts = 0

	result := newTestEngine().Select(in)

	assert.False(t, result.Evaluations[0].Viable, "VIS fails its price cap")
	assert.Equal(t, model.ProductVIP, result.Selected.Rule.ID)
	assert.True(t, result.Selected.Viable)
}

func TestSelect_OverloadedApplicantFallsBackToCommercial(t *testing.T) {
	// income 300, debts 280: disposable income near 20, every product's
	// capacity collapses. Commercial is returned anyway so the caller can
	// render "not approved" with real numbers.
	in := model.NormalizedInput{
		MonthlyIncome: 300,
		MonthlyDebts:  280,
		HomePrice:     150000,
		IncomeType:    model.IncomeEmployed,
	}

	result := newTestEngine().Select(in)

	for _, ev := range result.Evaluations {
		assert.False(t, ev.Viable, "product %s should not be viable", ev.Rule.ID)
	}
	assert.Equal(t, model.ProductCommercial, result.Selected.Rule.ID)
	assert.False(t, result.Selected.Viable)
	assert.True(t, result.NoOffer)
	assert.Equal(t, model.RiskHigh, result.Risk.RiskLabel)
}

func TestSelect_ZeroIncomeNeverDividesByZero(t *testing.T) {
	result := newTestEngine().Select(model.NormalizedInput{HomePrice: 50000})

	assert.Equal(t, 0.0, result.Risk.DTIWithoutMortgage)
	assert.Equal(t, 0.0, result.Risk.DTIWithMortgage)
	assert.True(t, result.NoOffer)
}

func TestRiskScore_CleanProfileIsLow(t *testing.T) {
	result := newTestEngine().Select(solidApplicant())

	assert.Equal(t, 100, result.Risk.RiskScore)
	assert.Equal(t, model.RiskLow, result.Risk.RiskLabel)
}

func TestRiskScore_MonotonicallyNonIncreasing(t *testing.T) {
	engine := newTestEngine()
	base := solidApplicant()
	baseScore := engine.Select(base).Risk.RiskScore

	worsen := []struct {
		name  string
		apply func(*model.NormalizedInput)
	}{
		{"delinquent bureau", func(in *model.NormalizedInput) { in.Bureau = model.BureauDelinquent }},
		{"regularized bureau", func(in *model.NormalizedInput) { in.Bureau = model.BureauRegularized }},
		{"self employed", func(in *model.NormalizedInput) { in.IncomeType = model.IncomeSelfEmployed }},
		{"short tenure", func(in *model.NormalizedInput) { in.TenureYears = 0.5 }},
		{"age outside band", func(in *model.NormalizedInput) { in.Age = 63 }},
		{"thin down payment", func(in *model.NormalizedInput) { in.DownPayment = in.HomePrice * 0.05 }},
	}

	for _, w := range worsen {
		t.Run(w.name, func(t *testing.T) {
			in := solidApplicant()
			w.apply(&in)
			score := engine.Select(in).Risk.RiskScore
			assert.LessOrEqual(t, score, baseScore,
				"introducing %q must not raise the risk score", w.name)
		})
	}
}

func TestRiskScore_ClampedAtZero(t *testing.T) {
	in := model.NormalizedInput{
		MonthlyIncome: 300,
		MonthlyDebts:  280,
		HomePrice:     150000,
		Age:           70,
		IncomeType:    model.IncomeSelfEmployed,
		Bureau:        model.BureauDelinquent,
	}
	result := newTestEngine().Select(in)
	assert.GreaterOrEqual(t, result.Risk.RiskScore, 0)
}

func TestPotentialScore_WeightedBlendInRange(t *testing.T) {
	engine := newTestEngine()

	clean := engine.Select(solidApplicant())
	assert.Greater(t, clean.Risk.PotentialScore, 0.0)
	assert.LessOrEqual(t, clean.Risk.PotentialScore, 100.0)

	// LTV 0.8333 -> 70, DTI 0.448 -> 55, tenure 3y -> 85, bureau none -> 100.
	expected := 0.35*70 + 0.35*55 + 0.15*85 + 0.15*100
	assert.InDelta(t, expected, clean.Risk.PotentialScore, 0.01)
}

func TestPotentialScore_DistinctFromRiskScore(t *testing.T) {
	// The two scores are different scales on purpose: a profile can be
	// clean on penalties yet mid-band on potential.
	result := newTestEngine().Select(solidApplicant())
	assert.Equal(t, 100, result.Risk.RiskScore)
	assert.Less(t, result.Risk.PotentialScore, 100.0)
}

func TestActionPlan_DebtReductionHitsThresholdExactly(t *testing.T) {
	in := solidApplicant() // DTI with mortgage lands near 0.448
	result := newTestEngine().Select(in)

	require.NotEmpty(t, result.Actions)
	debtItem := result.Actions[0]
	assert.Contains(t, debtItem.Message, "deudas")
	assert.Greater(t, debtItem.Amount, 0.0)

	// Round trip: applying the suggested reduction lands DTI on 0.42.
	income := in.TotalIncome()
	newDTI := (in.MonthlyDebts - debtItem.Amount + result.Selected.Payment) / income
	assert.InDelta(t, 0.42, newDTI, 1e-4)
}

func TestActionPlan_DownPaymentGapTo90(t *testing.T) {
	in := solidApplicant()
	in.MonthlyDebts = 0 // keep DTI quiet
	in.DownPayment = 4500
	in.HomePrice = 90000 // LTV 0.95

	result := newTestEngine().Select(in)

	require.NotEmpty(t, result.Actions)
	item := result.Actions[0]
	assert.Contains(t, item.Message, "90%")
	// loan 85500, target 0.90*90000 = 81000: gap 4500.
	assert.InDelta(t, 4500, item.Amount, 0.01)
}

func TestActionPlan_DownPaymentGapTo80(t *testing.T) {
	in := solidApplicant()
	in.MonthlyDebts = 0
	in.DownPayment = 13500
	in.HomePrice = 90000 // LTV 0.85

	result := newTestEngine().Select(in)

	require.NotEmpty(t, result.Actions)
	item := result.Actions[0]
	assert.Contains(t, item.Message, "80%")
	// loan 76500, target 0.80*90000 = 72000: gap 4500.
	assert.InDelta(t, 4500, item.Amount, 0.01)
}

func TestActionPlan_SolidProfileGetsGenericMessage(t *testing.T) {
	in := solidApplicant()
	in.MonthlyDebts = 0
	in.DownPayment = 27000 // LTV 0.70

	result := newTestEngine().Select(in)

	require.Len(t, result.Actions, 1)
	assert.Contains(t, result.Actions[0].Message, "perfil")
	assert.Equal(t, 0.0, result.Actions[0].Amount)
}

func TestActionPlan_ItemsAreOrdered(t *testing.T) {
	// Both the DTI and the LTV gaps trigger: priorities must be 1, 2.
	in := solidApplicant()
	in.DownPayment = 4500
	in.MonthlyDebts = 300

	result := newTestEngine().Select(in)

	require.Len(t, result.Actions, 2)
	assert.Equal(t, 1, result.Actions[0].Priority)
	assert.Equal(t, 2, result.Actions[1].Priority)
}

func TestEnrichment_AllBlocksAlwaysPresent(t *testing.T) {
	// Even a fully degenerate input produces every block.
	result := newTestEngine().Select(model.NormalizedInput{})

	assert.NotEmpty(t, result.Options)
	assert.NotEmpty(t, result.Checklist)
	assert.NotEmpty(t, result.Actions)
	assert.NotEmpty(t, result.Benchmarks)
	assert.Equal(t, 0.0, result.Stress.BasePayment)
	assert.Equal(t, 0.0, result.Costs.OriginationFee)
	assert.Nil(t, result.Amortization, "no loan, no schedule")
}

func TestEnrichment_StressTest(t *testing.T) {
	result := newTestEngine().Select(solidApplicant())

	s := result.Stress
	assert.Greater(t, s.StressPayment, s.BasePayment)
	assert.InDelta(t, s.StressPayment-s.BasePayment, s.Increase, 0.01)
	assert.InDelta(t, s.BasePayment*0.10, s.RecommendedBuffer, 0.01)
}

func TestEnrichment_CostEstimate(t *testing.T) {
	result := newTestEngine().Select(solidApplicant())

	c := result.Costs
	loan := result.Selected.LoanGranted
	assert.InDelta(t, 0.010*loan, c.OriginationFee, 0.01) // under the 1200 cap
	assert.Equal(t, 180.0, c.AppraisalFee)
	assert.InDelta(t, 0.0015*90000, c.AnnualInsurance, 0.01)
	assert.Greater(t, c.ApproxEffectiveRate, result.Selected.Rule.AnnualRate)
}

func TestEnrichment_OriginationFeeCapped(t *testing.T) {
	in := solidApplicant()
	in.MonthlyIncome = 3500
	in.MonthlyDebts = 0
	in.HomePrice = 140000
	in.DownPayment = 10000
	in.OwnsHome = true // first-home programs out; commercial carries the loan

	result := newTestEngine().Select(in)

	require.Greater(t, result.Selected.LoanGranted, 120000.0)
	assert.Equal(t, 1200.0, result.Costs.OriginationFee)
}

func TestEnrichment_ChecklistVariesByIncomeType(t *testing.T) {
	engine := newTestEngine()

	employed := engine.Select(solidApplicant())

	self := solidApplicant()
	self.IncomeType = model.IncomeSelfEmployed
	selfResult := engine.Select(self)

	assert.NotEqual(t, employed.Checklist[1], selfResult.Checklist[1])
	assert.Equal(t, employed.Checklist[0], selfResult.Checklist[0])
	assert.Len(t, employed.Checklist, len(selfResult.Checklist))
}

func TestEnrichment_BenchmarksUseSelectedLoan(t *testing.T) {
	result := newTestEngine().Select(solidApplicant())

	require.Len(t, result.Benchmarks, 3)
	loan := result.Selected.LoanGranted
	for _, b := range result.Benchmarks {
		expected := round2(Payment(b.AnnualRate/12, b.TermMonths, loan))
		assert.Equal(t, expected, b.Payment, "benchmark %s", b.Lender)
	}
}

func TestEnrichment_AmortizationPreview(t *testing.T) {
	result := newTestEngine().Select(solidApplicant())

	require.NotNil(t, result.Amortization)
	assert.Len(t, result.Amortization.Entries, model.PreviewPeriods)
	assert.Equal(t, result.Selected.Rule.TermMonths, result.Amortization.TermMonths)
	assert.True(t, result.Amortization.TotalInterest.IsPositive())
}

func TestEvaluate_DeterministicOnSameInput(t *testing.T) {
	engine := newTestEngine()
	raw := map[string]any{
		"ingresos":       1200.0,
		"deudas":         100.0,
		"precioVivienda": 90000.0,
		"entrada":        15000.0,
		"edad":           30.0,
		"antiguedad":     3.0,
		"afiliadoIess":   "si",
	}

	first := engine.Evaluate(raw)
	second := engine.Evaluate(raw)

	assert.Equal(t, first, second, "enrichment must reproduce bit-for-bit")
}
