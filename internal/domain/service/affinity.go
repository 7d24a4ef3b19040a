package service

import (
	"sort"

	"github.com/mleon1997/habitalibre-backend-sub000/internal/domain/model"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/rules"
)

// BankAffinity runs the full evaluation, then ranks the illustrative lender
// table on the selected scenario's loan amount. Each lender is quoted at its
// longest candidate term (lowest payment) and flagged against the engine's
// generic capacity, not any per-product one.
func (e *Engine) BankAffinity(raw map[string]any) model.AffinityResult {
	in := Normalize(raw)
	evaluation := e.Select(in)

	capacity := in.DisposableIncome() * baselineDTI(in)
	loan := evaluation.Selected.LoanGranted
	income := in.TotalIncome()
	tenureMonths := int(in.TenureYears * 12)

	matches := make([]model.LenderMatch, 0, len(rules.Lenders))
	for _, lender := range rules.Lenders {
		term := longestTerm(lender.TermOptions)
		payment := Payment(lender.AnnualRate/12, term, loan)

		m := model.LenderMatch{
			Lender:       lender,
			TermMonths:   term,
			Payment:      round2(payment),
			MeetsIncome:  income >= lender.MinIncome,
			MeetsTenure:  tenureMonths >= lender.MinTenureMonths,
			MeetsAge:     in.Age >= lender.MinAge,
			MeetsLTV:     evaluation.Selected.CurrentLTV <= lender.MaxLTV+epsilon,
			FitsCapacity: payment <= capacity+epsilon,
		}
		if income > 0 {
			m.MeetsDTI = (in.MonthlyDebts+payment)/income <= lender.MaxDTI+epsilon
		}
		m.Eligible = m.MeetsIncome && m.MeetsTenure && m.MeetsAge && m.MeetsLTV && m.MeetsDTI && m.FitsCapacity
		matches = append(matches, m)
	}

	// Eligible lenders first, then capacity fits, then cheaper payments.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Eligible != matches[j].Eligible {
			return matches[i].Eligible
		}
		if matches[i].FitsCapacity != matches[j].FitsCapacity {
			return matches[i].FitsCapacity
		}
		return matches[i].Payment < matches[j].Payment
	})

	return model.AffinityResult{
		Evaluation:      evaluation,
		GenericCapacity: round2(capacity),
		Lenders:         matches,
	}
}

func longestTerm(options []int) int {
	longest := 0
	for _, t := range options {
		if t > longest {
			longest = t
		}
	}
	return longest
}
