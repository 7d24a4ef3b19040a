package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayment_ZeroRate(t *testing.T) {
	// Zero-interest loans split the principal evenly.
	assert.Equal(t, 100.0, Payment(0, 12, 1200))
	assert.Equal(t, 1200.0, PresentValue(0, 12, 100))
}

func TestPayment_30YearMortgage(t *testing.T) {
	// $100,000 at 5.00% for 360 months is approximately $536.82.
	pmt := Payment(0.05/12, 360, 100_000)
	assert.InDelta(t, 536.82, pmt, 0.01)
}

func TestPayment_PresentValue_MutualInverses(t *testing.T) {
	cases := []struct {
		name string
		rate float64
		n    int
		pv   float64
	}{
		{"typical mortgage", 0.0499 / 12, 300, 75_000},
		{"commercial rate", 0.1050 / 12, 240, 120_000},
		{"zero rate", 0, 120, 36_000},
		{"small loan", 0.08 / 12, 12, 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			roundTrip := PresentValue(tc.rate, tc.n, Payment(tc.rate, tc.n, tc.pv))
			assert.InDelta(t, tc.pv, roundTrip, 1e-6)
		})
	}
}

func TestPayment_NonFiniteInputsAreZero(t *testing.T) {
	assert.Equal(t, 0.0, Payment(math.NaN(), 12, 1000))
	assert.Equal(t, 0.0, Payment(0.05/12, 12, math.Inf(1)))
	assert.Equal(t, 0.0, PresentValue(math.Inf(1), 12, 100))
	assert.Equal(t, 0.0, PresentValue(0.05/12, 12, math.NaN()))
}

func TestPayment_DegenerateTerm(t *testing.T) {
	assert.Equal(t, 0.0, Payment(0.05/12, 0, 1000))
	assert.Equal(t, 0.0, PresentValue(0.05/12, -3, 100))
}

func TestPayment_NeverNonFinite(t *testing.T) {
	// Extreme but representable inputs still come back finite.
	for _, rate := range []float64{0, 1e-12, 0.5, 10} {
		for _, pv := range []float64{0, 1, 1e12} {
			pmt := Payment(rate, 600, pv)
			assert.False(t, math.IsNaN(pmt) || math.IsInf(pmt, 0),
				"payment(%v, 600, %v) must be finite", rate, pv)
		}
	}
}
