package service

import (
	"fmt"
	"math"

	"github.com/mleon1997/habitalibre-backend-sub000/internal/domain/model"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/rules"
)

// Enrichment constants. These must stay fixed: the enrichment payload is
// reproduced bit-for-bit on identical inputs.
const (
	stressBufferRatio  = 0.10
	originationRate    = 0.010
	originationFeeCap  = 1200.0
	appraisalFee       = 180.0
	annualInsuranceRat = 0.0015

	dtiActionThreshold  = 0.42
	ltvActionUpper      = 0.90
	ltvActionLower      = 0.80
	genericActionFooter = "Tu perfil está sólido: mantén tus ingresos estables y evita contratar nuevas deudas antes del desembolso."
)

// enrich fills every presentation block of the result. All blocks are always
// present; when a prerequisite is missing (zero loan, zero income) the block
// carries zeros rather than being omitted.
func enrich(result *model.SelectionResult, in model.NormalizedInput) {
	selected := result.Selected

	result.Stress = model.StressTest{
		BasePayment:       round2(selected.Payment),
		StressPayment:     round2(selected.StressPayment),
		Increase:          round2(selected.StressPayment - selected.Payment),
		RecommendedBuffer: round2(selected.Payment * stressBufferRatio),
	}

	result.Costs = costEstimate(selected.Rule.AnnualRate, selected.Rule.TermMonths, selected.LoanGranted, in.HomePrice)
	result.Options = optionMatrix(result.Evaluations)
	result.Checklist = checklist(in.IncomeType)
	result.Actions = actionPlan(in, selected, result.Risk)
	result.Benchmarks = benchmarks(selected.LoanGranted)

	if selected.LoanGranted > 0 {
		result.Amortization = model.NewAmortizationPreview(selected.LoanGranted, selected.Rule.AnnualRate, selected.Rule.TermMonths)
	}
}

func costEstimate(annualRate float64, termMonths int, loan, price float64) model.CostEstimate {
	if loan <= 0 {
		return model.CostEstimate{AnnualInsurance: round2(price * annualInsuranceRat)}
	}
	origination := math.Min(originationRate*loan, originationFeeCap)
	upfront := origination + appraisalFee
	years := float64(termMonths) / 12
	return model.CostEstimate{
		OriginationFee:      round2(origination),
		AppraisalFee:        appraisalFee,
		AnnualInsurance:     round2(price * annualInsuranceRat),
		UpfrontTotal:        round2(upfront),
		ApproxEffectiveRate: annualRate + upfront/loan/years,
	}
}

func optionMatrix(evaluations []model.ProductEvaluation) []model.ProductOption {
	options := make([]model.ProductOption, 0, len(evaluations))
	for _, ev := range evaluations {
		options = append(options, model.ProductOption{
			Product:    ev.Rule.ID,
			Label:      ev.Rule.Label,
			Viable:     ev.Viable,
			AnnualRate: ev.Rule.AnnualRate,
			TermMonths: ev.Rule.TermMonths,
			Payment:    round2(ev.Payment),
			MaxLTV:     ev.Rule.MaxLTV,
			Binding:    ev.Binding,
		})
	}
	return options
}

func checklist(incomeType model.IncomeType) []string {
	incomeDoc := "Roles de pago de los últimos 3 meses y certificado laboral"
	if incomeType == model.IncomeSelfEmployed {
		incomeDoc = "Declaraciones del impuesto a la renta de los últimos 2 años y RUC activo"
	}
	return []string{
		"Cédula de identidad y papeleta de votación",
		incomeDoc,
		"Estados de cuenta bancarios de los últimos 3 meses",
		"Detalle de deudas vigentes y tarjetas de crédito",
		"Certificado de no poseer vivienda (programas de primera vivienda)",
	}
}

// actionPlan produces the ordered threshold-gap recommendations. The debt
// reduction amount is the exact quantity that brings DTI-with-mortgage back
// to the threshold at the same income; the down-payment amounts bring the
// loan back to the 90% or 80% LTV lines.
func actionPlan(in model.NormalizedInput, selected model.ProductEvaluation, risk model.RiskProfile) []model.ActionItem {
	var items []model.ActionItem
	income := in.TotalIncome()

	if risk.DTIWithMortgage > dtiActionThreshold+epsilon && income > 0 {
		gap := round2(in.MonthlyDebts + selected.Payment - dtiActionThreshold*income)
		items = append(items, model.ActionItem{
			Priority: len(items) + 1,
			Message:  fmt.Sprintf("Reduce tus deudas mensuales en $%.2f para llegar a un endeudamiento del 42%% de tus ingresos.", gap),
			Amount:   gap,
		})
	}

	if in.HomePrice > 0 {
		switch {
		case selected.CurrentLTV > ltvActionUpper+epsilon:
			gap := round2(selected.LoanNeeded - ltvActionUpper*in.HomePrice)
			items = append(items, model.ActionItem{
				Priority: len(items) + 1,
				Message:  fmt.Sprintf("Aumenta tu entrada en $%.2f para que el préstamo no supere el 90%% del valor de la vivienda.", gap),
				Amount:   gap,
			})
		case selected.CurrentLTV > ltvActionLower+epsilon:
			gap := round2(selected.LoanNeeded - ltvActionLower*in.HomePrice)
			items = append(items, model.ActionItem{
				Priority: len(items) + 1,
				Message:  fmt.Sprintf("Aumenta tu entrada en $%.2f para que el préstamo no supere el 80%% del valor de la vivienda.", gap),
				Amount:   gap,
			})
		}
	}

	if len(items) == 0 {
		items = append(items, model.ActionItem{Priority: 1, Message: genericActionFooter})
	}
	return items
}

func benchmarks(loan float64) []model.BenchmarkOffer {
	offers := make([]model.BenchmarkOffer, 0, len(rules.BenchmarkOffers))
	for _, b := range rules.BenchmarkOffers {
		estimate := costEstimate(b.AnnualRate, b.TermMonths, loan, 0)
		offers = append(offers, model.BenchmarkOffer{
			Lender:              b.Lender,
			AnnualRate:          b.AnnualRate,
			TermMonths:          b.TermMonths,
			Payment:             round2(Payment(b.AnnualRate/12, b.TermMonths, loan)),
			ApproxEffectiveRate: estimate.ApproxEffectiveRate,
		})
	}
	return offers
}
