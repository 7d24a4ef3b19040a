package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/mleon1997/habitalibre-backend-sub000/internal/domain/model"
)

// The raw applicant record arrives under many spellings depending on the
// caller: the legacy flat web form (Spanish camelCase), the conversational
// collector (snake_case) and newer API clients (English camelCase), sometimes
// with the same data nested under a profile object. Each logical field has
// one ordered alias list here; the first present and coercible candidate
// wins and unmatched fields fall back to a fixed default.

var profileKeys = []string{"perfil", "profile", "datosFinancieros", "datos_financieros"}

var numericAliases = map[string][]string{
	"income":         {"ingresos", "ingresoMensual", "ingreso_mensual", "ingresosNetos", "monthlyIncome", "income"},
	"partner_income": {"ingresoConyuge", "ingreso_conyuge", "ingresosPareja", "partnerIncome", "spouseIncome"},
	"debts":          {"deudas", "deudaMensual", "deudas_mensuales", "cuotasDeudas", "monthlyDebts", "debts"},
	"home_price":     {"precioVivienda", "precio_vivienda", "valorVivienda", "precio", "homePrice", "propertyPrice"},
	"down_payment":   {"entrada", "cuotaInicial", "cuota_inicial", "ahorroEntrada", "downPayment"},
	"age":            {"edad", "age"},
	"tenure_years":   {"antiguedad", "antiguedadLaboral", "antiguedad_laboral", "aniosTrabajo", "tenureYears", "yearsEmployed"},
	"contrib_total":  {"aportaciones", "aportacionesTotales", "aportaciones_totales", "totalContributions"},
	"contrib_consec": {"aportacionesConsecutivas", "aportaciones_consecutivas", "consecutiveContributions"},
}

var booleanAliases = map[string][]string{
	"pension":   {"afiliadoIess", "afiliado_iess", "afiliado", "pensionAffiliated", "iess"},
	"owns_home": {"tieneVivienda", "tiene_vivienda", "viviendaPropia", "ownsHome", "alreadyOwnsHome"},
}

var stringAliases = map[string][]string{
	"income_type": {"tipoIngreso", "tipo_ingreso", "tipoEmpleo", "incomeType", "employmentType"},
	"bureau":      {"buro", "buroCrediticio", "buro_crediticio", "estadoBuro", "creditBureau", "bureauStanding"},
}

// Normalize coerces an arbitrary raw record into the canonical input. It
// never fails: uncoercible or missing fields take their documented defaults
// and every numeric output is finite and non-negative.
func Normalize(raw map[string]any) model.NormalizedInput {
	flat := flatten(raw)

	in := model.NormalizedInput{
		MonthlyIncome:            number(flat, "income", 0),
		PartnerIncome:            number(flat, "partner_income", 0),
		MonthlyDebts:             number(flat, "debts", 0),
		HomePrice:                number(flat, "home_price", 0),
		DownPayment:              number(flat, "down_payment", 0),
		Age:                      int(number(flat, "age", 0)),
		TenureYears:              number(flat, "tenure_years", 0),
		ContributionsTotal:       int(number(flat, "contrib_total", 0)),
		ContributionsConsecutive: int(number(flat, "contrib_consec", 0)),
	}

	// Pension affiliation has no safe default: an unrecognized token stays
	// nil rather than guessing.
	in.PensionAffiliated = boolean(flat, "pension")

	if owns := boolean(flat, "owns_home"); owns != nil {
		in.OwnsHome = *owns
	}

	in.IncomeType = parseIncomeType(text(flat, "income_type"))
	in.Bureau = parseBureau(text(flat, "bureau"))

	return in
}

// flatten merges one level of nested profile objects under the top-level
// record without overriding top-level keys.
func flatten(raw map[string]any) map[string]any {
	flat := make(map[string]any, len(raw))
	for k, v := range raw {
		flat[k] = v
	}
	for _, key := range profileKeys {
		nested, ok := raw[key].(map[string]any)
		if !ok {
			continue
		}
		for k, v := range nested {
			if _, exists := flat[k]; !exists {
				flat[k] = v
			}
		}
	}
	return flat
}

func number(flat map[string]any, field string, fallback float64) float64 {
	for _, alias := range numericAliases[field] {
		v, ok := flat[alias]
		if !ok {
			continue
		}
		if f, ok := coerceNumber(v); ok {
			if f < 0 {
				return fallback
			}
			return f
		}
	}
	return fallback
}

func boolean(flat map[string]any, field string) *bool {
	for _, alias := range booleanAliases[field] {
		v, ok := flat[alias]
		if !ok {
			continue
		}
		if b := coerceBool(v); b != nil {
			return b
		}
	}
	return nil
}

func text(flat map[string]any, field string) string {
	for _, alias := range stringAliases[field] {
		v, ok := flat[alias]
		if !ok {
			continue
		}
		if s, ok := v.(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

// coerceNumber accepts native numbers and stringy amounts ("$1,200.50",
// "1200 USD"). Non-finite results are rejected so NaN never leaves the
// normalizer.
func coerceNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return checkFinite(n)
	case float32:
		return checkFinite(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		cleaned := cleanNumeric(n)
		if cleaned == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, false
		}
		return checkFinite(f)
	default:
		return 0, false
	}
}

func checkFinite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// cleanNumeric strips currency symbols, spaces and thousands separators,
// keeping digits, at most one decimal point and a leading minus sign.
func cleanNumeric(s string) string {
	var b strings.Builder
	sawDot := false
	for i, r := range strings.ReplaceAll(s, ",", "") {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !sawDot:
			sawDot = true
			b.WriteRune(r)
		case r == '-' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

var affirmativeTokens = map[string]bool{
	"si": true, "sí": true, "yes": true, "true": true, "verdadero": true, "1": true,
}

var negativeTokens = map[string]bool{
	"no": true, "false": true, "falso": true, "0": true,
}

func coerceBool(v any) *bool {
	switch b := v.(type) {
	case bool:
		return &b
	case float64:
		t := b != 0
		return &t
	case int:
		t := b != 0
		return &t
	case string:
		token := strings.ToLower(strings.TrimSpace(b))
		if affirmativeTokens[token] {
			t := true
			return &t
		}
		if negativeTokens[token] {
			f := false
			return &f
		}
		return nil
	default:
		return nil
	}
}

func parseIncomeType(s string) model.IncomeType {
	switch normalizeToken(s) {
	case "independiente", "autonomo", "negocio", "negocio_propio", "self_employed", "selfemployed":
		return model.IncomeSelfEmployed
	case "mixto", "mixed":
		return model.IncomeMixed
	default:
		return model.IncomeEmployed
	}
}

func parseBureau(s string) model.BureauStanding {
	switch normalizeToken(s) {
	case "regularizado", "regularizada", "regularized":
		return model.BureauRegularized
	case "moroso", "morosa", "en_mora", "mora", "delinquent":
		return model.BureauDelinquent
	default:
		return model.BureauNone
	}
}

func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
