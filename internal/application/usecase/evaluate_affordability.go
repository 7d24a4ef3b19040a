package usecase

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/mleon1997/habitalibre-backend-sub000/internal/application/dto"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/domain/event"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/domain/port"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/domain/service"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/observability"
)

// EvaluateAffordabilityUseCase orchestrates one affordability evaluation:
// run the pure engine, assign the evaluation id, publish the completion
// event and count the outcome. The engine itself stays free of identity,
// logging and I/O.
type EvaluateAffordabilityUseCase struct {
	engine    *service.Engine
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewEvaluateAffordabilityUseCase wires dependencies. A nil publisher
// disables event publication.
func NewEvaluateAffordabilityUseCase(
	engine *service.Engine,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *EvaluateAffordabilityUseCase {
	return &EvaluateAffordabilityUseCase{
		engine:    engine,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute runs the full pipeline on the raw applicant record.
func (uc *EvaluateAffordabilityUseCase) Execute(ctx context.Context, req dto.EvaluateRequest) (dto.EvaluationResponse, error) {
	result := uc.engine.Evaluate(req.Payload)
	id := uuid.New()

	uc.logger.Info("affordability evaluation completed",
		"evaluation_id", id,
		"selected_product", result.Selected.Rule.ID,
		"viable", result.Selected.Viable,
		"risk_label", result.Risk.RiskLabel,
	)

	observability.EvaluationsTotal.WithLabelValues(
		string(result.Selected.Rule.ID),
		strconv.FormatBool(result.Selected.Viable),
	).Inc()

	if uc.publisher != nil {
		// Best effort: the evaluation already succeeded, a broker outage
		// must not turn it into a caller-visible failure.
		if err := uc.publisher.Publish(ctx, event.NewEvaluationCompleted(id, result)); err != nil {
			uc.logger.Warn("publish evaluation event", "evaluation_id", id, "error", err)
		}
	}

	return dto.FromSelectionResult(id.String(), result), nil
}
