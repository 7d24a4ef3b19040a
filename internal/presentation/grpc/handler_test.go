package grpc

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mleon1997/habitalibre-backend-sub000/internal/application/usecase"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/domain/service"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/rules"
)

func newTestHandler() *AffordabilityHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := service.NewEngine(rules.Default())
	return NewAffordabilityHandler(
		usecase.NewEvaluateAffordabilityUseCase(engine, nil, logger),
		usecase.NewBankAffinityUseCase(engine, nil, logger),
	)
}

func TestHandler_Evaluate(t *testing.T) {
	resp, err := newTestHandler().Evaluate(context.Background(), &EvaluateRequest{
		Payload: map[string]any{
			"ingresos":       1200.0,
			"precioVivienda": 90000.0,
			"entrada":        15000.0,
			"edad":           30.0,
			"antiguedad":     3.0,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "vis", string(resp.Result.Selected.Product))
	assert.NotEmpty(t, resp.Result.EvaluationID)
}

func TestHandler_EvaluateRequiresPayload(t *testing.T) {
	_, err := newTestHandler().Evaluate(context.Background(), &EvaluateRequest{})

	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestHandler_RankLenders(t *testing.T) {
	resp, err := newTestHandler().RankLenders(context.Background(), &EvaluateRequest{
		Payload: map[string]any{"ingresos": 1500.0, "precioVivienda": 60000.0, "entrada": 20000.0},
	})

	require.NoError(t, err)
	assert.Len(t, resp.Result.Lenders, len(rules.Lenders))
}
