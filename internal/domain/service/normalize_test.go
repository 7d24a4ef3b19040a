package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mleon1997/habitalibre-backend-sub000/internal/domain/model"
)

func TestNormalize_LegacySpanishFields(t *testing.T) {
	in := Normalize(map[string]any{
		"ingresos":                 1200.0,
		"ingresoConyuge":           300.0,
		"deudas":                   100.0,
		"precioVivienda":           90000.0,
		"entrada":                  15000.0,
		"edad":                     30.0,
		"tipoIngreso":              "dependiente",
		"antiguedad":               3.0,
		"afiliadoIess":             "sí",
		"tieneVivienda":            "no",
		"buroCrediticio":           "ninguno",
		"aportaciones":             40.0,
		"aportacionesConsecutivas": 20.0,
	})

	assert.Equal(t, 1200.0, in.MonthlyIncome)
	assert.Equal(t, 300.0, in.PartnerIncome)
	assert.Equal(t, 100.0, in.MonthlyDebts)
	assert.Equal(t, 90000.0, in.HomePrice)
	assert.Equal(t, 15000.0, in.DownPayment)
	assert.Equal(t, 30, in.Age)
	assert.Equal(t, model.IncomeEmployed, in.IncomeType)
	assert.Equal(t, 3.0, in.TenureYears)
	require.NotNil(t, in.PensionAffiliated)
	assert.True(t, *in.PensionAffiliated)
	assert.False(t, in.OwnsHome)
	assert.Equal(t, model.BureauNone, in.Bureau)
	assert.Equal(t, 40, in.ContributionsTotal)
	assert.Equal(t, 20, in.ContributionsConsecutive)
}

func TestNormalize_EnglishAliasesAndSnakeCase(t *testing.T) {
	in := Normalize(map[string]any{
		"monthlyIncome":      2000.0,
		"monthlyDebts":       150.0,
		"homePrice":          80000.0,
		"downPayment":        10000.0,
		"incomeType":         "self-employed",
		"pensionAffiliated":  true,
		"antiguedad_laboral": 1.5,
	})

	assert.Equal(t, 2000.0, in.MonthlyIncome)
	assert.Equal(t, model.IncomeSelfEmployed, in.IncomeType)
	assert.Equal(t, 1.5, in.TenureYears)
	require.NotNil(t, in.PensionAffiliated)
	assert.True(t, *in.PensionAffiliated)
}

func TestNormalize_AliasOrderFirstCoercibleWins(t *testing.T) {
	in := Normalize(map[string]any{
		"ingresos":      "not a number",
		"monthlyIncome": 1800.0,
	})
	assert.Equal(t, 1800.0, in.MonthlyIncome)
}

func TestNormalize_StringyAmounts(t *testing.T) {
	in := Normalize(map[string]any{
		"ingresos":       "$1,200.50",
		"precioVivienda": "90000 USD",
		"entrada":        " 15000 ",
	})
	assert.Equal(t, 1200.50, in.MonthlyIncome)
	assert.Equal(t, 90000.0, in.HomePrice)
	assert.Equal(t, 15000.0, in.DownPayment)
}

func TestNormalize_MissingAndGarbageFieldsDefault(t *testing.T) {
	in := Normalize(map[string]any{
		"ingresos": "???",
		"deudas":   []any{1, 2},
	})
	assert.Equal(t, 0.0, in.MonthlyIncome)
	assert.Equal(t, 0.0, in.MonthlyDebts)
	assert.Equal(t, 0.0, in.HomePrice)
	assert.Equal(t, model.IncomeEmployed, in.IncomeType)
	assert.Equal(t, model.BureauNone, in.Bureau)
}

func TestNormalize_NegativeAmountsFallBackToDefault(t *testing.T) {
	in := Normalize(map[string]any{"ingresos": -500.0})
	assert.Equal(t, 0.0, in.MonthlyIncome)
}

func TestNormalize_PensionUnknownStaysNil(t *testing.T) {
	// Unrecognized tokens must not be guessed: affiliation has no safe default.
	in := Normalize(map[string]any{"afiliadoIess": "tal vez"})
	assert.Nil(t, in.PensionAffiliated)
	assert.False(t, in.Affiliated())

	in = Normalize(map[string]any{})
	assert.Nil(t, in.PensionAffiliated)
}

func TestNormalize_LocalizedBooleanTokens(t *testing.T) {
	cases := []struct {
		token string
		want  bool
	}{
		{"sí", true}, {"si", true}, {"YES", true}, {"1", true}, {"true", true},
		{"no", false}, {"0", false}, {"FALSE", false},
	}
	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			in := Normalize(map[string]any{"afiliadoIess": tc.token})
			require.NotNil(t, in.PensionAffiliated)
			assert.Equal(t, tc.want, *in.PensionAffiliated)
		})
	}
}

func TestNormalize_NestedProfileObject(t *testing.T) {
	in := Normalize(map[string]any{
		"perfil": map[string]any{
			"ingresos": 1500.0,
			"edad":     42.0,
		},
		"precioVivienda": 70000.0,
	})
	assert.Equal(t, 1500.0, in.MonthlyIncome)
	assert.Equal(t, 42, in.Age)
	assert.Equal(t, 70000.0, in.HomePrice)
}

func TestNormalize_TopLevelWinsOverNested(t *testing.T) {
	in := Normalize(map[string]any{
		"ingresos": 2000.0,
		"perfil":   map[string]any{"ingresos": 999.0},
	})
	assert.Equal(t, 2000.0, in.MonthlyIncome)
}

func TestNormalize_BureauTokens(t *testing.T) {
	assert.Equal(t, model.BureauRegularized, Normalize(map[string]any{"buro": "regularizado"}).Bureau)
	assert.Equal(t, model.BureauDelinquent, Normalize(map[string]any{"buro": "en mora"}).Bureau)
	assert.Equal(t, model.BureauNone, Normalize(map[string]any{"buro": "limpio"}).Bureau)
}

func TestNormalize_IncomeTypeTokens(t *testing.T) {
	assert.Equal(t, model.IncomeSelfEmployed, Normalize(map[string]any{"tipoIngreso": "independiente"}).IncomeType)
	assert.Equal(t, model.IncomeMixed, Normalize(map[string]any{"tipoIngreso": "Mixto"}).IncomeType)
	assert.Equal(t, model.IncomeEmployed, Normalize(map[string]any{"tipoIngreso": "empleado"}).IncomeType)
}
