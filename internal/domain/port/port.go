package port

import (
	"context"

	"github.com/mleon1997/habitalibre-backend-sub000/internal/domain/event"
)

// EventPublisher publishes domain events to external consumers. The engine
// itself never publishes; only the application layer does, after the pure
// computation has finished.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
