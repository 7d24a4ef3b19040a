package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mleon1997/habitalibre-backend-sub000/internal/application/dto"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/domain/event"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/domain/port"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/domain/service"
)

// BankAffinityUseCase runs the evaluation plus the lender ranking.
type BankAffinityUseCase struct {
	engine    *service.Engine
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewBankAffinityUseCase wires dependencies. A nil publisher disables event
// publication.
func NewBankAffinityUseCase(
	engine *service.Engine,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *BankAffinityUseCase {
	return &BankAffinityUseCase{
		engine:    engine,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute evaluates the applicant and ranks the lender table on the selected
// scenario.
func (uc *BankAffinityUseCase) Execute(ctx context.Context, req dto.EvaluateRequest) (dto.BankAffinityResponse, error) {
	result := uc.engine.BankAffinity(req.Payload)
	id := uuid.New()

	eligible := 0
	for _, m := range result.Lenders {
		if m.Eligible {
			eligible++
		}
	}
	uc.logger.Info("bank affinity completed",
		"evaluation_id", id,
		"selected_product", result.Evaluation.Selected.Rule.ID,
		"eligible_lenders", eligible,
	)

	if uc.publisher != nil {
		if err := uc.publisher.Publish(ctx, event.NewEvaluationCompleted(id, result.Evaluation)); err != nil {
			uc.logger.Warn("publish evaluation event", "evaluation_id", id, "error", err)
		}
	}

	return dto.FromAffinityResult(id.String(), result), nil
}
