package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/mleon1997/habitalibre-backend-sub000/internal/domain/model"
)

// DomainEvent is the interface every published event implements.
type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	AggregateID() uuid.UUID
	AggregateType() string
	OccurredAt() time.Time
}

// BaseEvent provides the common event envelope.
type BaseEvent struct {
	ID            uuid.UUID `json:"event_id"`
	Type          string    `json:"event_type"`
	Aggregate     uuid.UUID `json:"aggregate_id"`
	AggregateKind string    `json:"aggregate_type"`
	Occurred      time.Time `json:"occurred_at"`
}

// NewBaseEvent creates an envelope with a generated event id and the current
// UTC time.
func NewBaseEvent(eventType string, aggregateID uuid.UUID, aggregateType string) BaseEvent {
	return BaseEvent{
		ID:            uuid.New(),
		Type:          eventType,
		Aggregate:     aggregateID,
		AggregateKind: aggregateType,
		Occurred:      time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() uuid.UUID     { return e.ID }
func (e BaseEvent) EventType() string      { return e.Type }
func (e BaseEvent) AggregateID() uuid.UUID { return e.Aggregate }
func (e BaseEvent) AggregateType() string  { return e.AggregateKind }
func (e BaseEvent) OccurredAt() time.Time  { return e.Occurred }

// EvaluationCompleted is raised after every affordability evaluation so the
// external notification and report collaborators can react without calling
// back into the engine.
type EvaluationCompleted struct {
	BaseEvent
	SelectedProduct model.ProductID `json:"selected_product"`
	Viable          bool            `json:"viable"`
	LoanGranted     float64         `json:"loan_granted"`
	Payment         float64         `json:"payment"`
	RiskScore       int             `json:"risk_score"`
	RiskLabel       model.RiskLabel `json:"risk_label"`
	PotentialScore  float64         `json:"potential_score"`
}

// NewEvaluationCompleted builds the event from a finished selection.
func NewEvaluationCompleted(evaluationID uuid.UUID, result model.SelectionResult) EvaluationCompleted {
	return EvaluationCompleted{
		BaseEvent:       NewBaseEvent("affordability.evaluation.completed", evaluationID, "Evaluation"),
		SelectedProduct: result.Selected.Rule.ID,
		Viable:          result.Selected.Viable,
		LoanGranted:     result.Selected.LoanGranted,
		Payment:         result.Selected.Payment,
		RiskScore:       result.Risk.RiskScore,
		RiskLabel:       result.Risk.RiskLabel,
		PotentialScore:  result.Risk.PotentialScore,
	}
}
