package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mleon1997/habitalibre-backend-sub000/internal/application/dto"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/application/usecase"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/domain/service"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/rules"
)

func newTestMux() *http.ServeMux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := service.NewEngine(rules.Default())
	evaluateUC := usecase.NewEvaluateAffordabilityUseCase(engine, nil, logger)
	affinityUC := usecase.NewBankAffinityUseCase(engine, nil, logger)

	mux := http.NewServeMux()
	NewHealthHandler(logger).RegisterRoutes(mux)
	NewAffordabilityHandler(evaluateUC, affinityUC, logger).RegisterRoutes(mux)
	return mux
}

func TestHealthEndpoints(t *testing.T) {
	mux := newTestMux()

	for _, path := range []string{"/healthz", "/readyz"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestEvaluateEndpoint(t *testing.T) {
	mux := newTestMux()

	body := `{
		"ingresos": 1200,
		"deudas": 100,
		"precioVivienda": 90000,
		"entrada": 15000,
		"edad": 30,
		"antiguedad": 3,
		"afiliadoIess": "si"
	}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/evaluations", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.EvaluationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.SinOferta)
	assert.Equal(t, "vis", string(resp.Selected.Product))
	assert.NotEmpty(t, resp.EvaluationID)
}

func TestEvaluateEndpoint_RejectsNonObjectBody(t *testing.T) {
	mux := newTestMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/evaluations", strings.NewReader("[1,2,3]")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEvaluateEndpoint_NoNonFiniteLeaves(t *testing.T) {
	// Unbounded engine values must reach the wire as null, so the raw JSON
	// can never contain Inf or NaN.
	mux := newTestMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/evaluations", strings.NewReader(`{"ingresos": 1200}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	raw := rec.Body.String()
	assert.NotContains(t, raw, "Inf")
	assert.NotContains(t, raw, "NaN")
}

func TestBankAffinityEndpoint(t *testing.T) {
	mux := newTestMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/bank-affinity", strings.NewReader(`{"ingresos": 1200, "precioVivienda": 90000, "entrada": 15000}`)))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.BankAffinityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Lenders, len(rules.Lenders))
}
