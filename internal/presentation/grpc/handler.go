package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mleon1997/habitalibre-backend-sub000/internal/application/dto"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/application/usecase"
)

// AffordabilityHandler exposes the affordability use cases over gRPC.
type AffordabilityHandler struct {
	UnimplementedAffordabilityServiceServer

	evaluate *usecase.EvaluateAffordabilityUseCase
	affinity *usecase.BankAffinityUseCase
}

// NewAffordabilityHandler creates a handler with its use-case dependencies.
func NewAffordabilityHandler(
	evaluate *usecase.EvaluateAffordabilityUseCase,
	affinity *usecase.BankAffinityUseCase,
) *AffordabilityHandler {
	return &AffordabilityHandler{
		evaluate: evaluate,
		affinity: affinity,
	}
}

// Evaluate runs the full affordability pipeline on a raw applicant record.
func (h *AffordabilityHandler) Evaluate(ctx context.Context, req *EvaluateRequest) (*EvaluateResponse, error) {
	if req.Payload == nil {
		return nil, status.Error(codes.InvalidArgument, "payload is required")
	}
	result, err := h.evaluate.Execute(ctx, dto.EvaluateRequest{Payload: req.Payload})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "evaluate: %v", err)
	}
	return &EvaluateResponse{Result: result}, nil
}

// RankLenders runs the evaluation plus the lender affinity ranking.
func (h *AffordabilityHandler) RankLenders(ctx context.Context, req *EvaluateRequest) (*RankLendersResponse, error) {
	if req.Payload == nil {
		return nil, status.Error(codes.InvalidArgument, "payload is required")
	}
	result, err := h.affinity.Execute(ctx, dto.EvaluateRequest{Payload: req.Payload})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "rank lenders: %v", err)
	}
	return &RankLendersResponse{Result: result}, nil
}
