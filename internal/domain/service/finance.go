package service

import "math"

// Financial primitives. Both functions are pure, treat non-finite inputs as
// zero and never return NaN or Inf, so every caller can chain them without
// guards.

// Payment is the fixed periodic payment of an amortizing loan:
//
//	PMT = PV * r / (1 - (1+r)^-n)
//
// with the zero-rate special case PV/n.
func Payment(ratePerPeriod float64, periods int, presentValue float64) float64 {
	ratePerPeriod = finite(ratePerPeriod)
	presentValue = finite(presentValue)
	if periods <= 0 || presentValue == 0 {
		return 0
	}
	if ratePerPeriod == 0 {
		return presentValue / float64(periods)
	}
	pmt := presentValue * ratePerPeriod / (1 - math.Pow(1+ratePerPeriod, -float64(periods)))
	return finite(pmt)
}

// PresentValue inverts Payment: the principal a fixed periodic payment can
// amortize at the given rate and term. Zero-rate special case: payment * n.
func PresentValue(ratePerPeriod float64, periods int, payment float64) float64 {
	ratePerPeriod = finite(ratePerPeriod)
	payment = finite(payment)
	if periods <= 0 || payment == 0 {
		return 0
	}
	if ratePerPeriod == 0 {
		return payment * float64(periods)
	}
	pv := payment * (1 - math.Pow(1+ratePerPeriod, -float64(periods))) / ratePerPeriod
	return finite(pv)
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// round2 rounds a monetary amount to cents.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
