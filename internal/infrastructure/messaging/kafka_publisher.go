package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/mleon1997/habitalibre-backend-sub000/internal/domain/event"
)

// KafkaEventPublisher implements port.EventPublisher on a kafka-go writer.
type KafkaEventPublisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewKafkaEventPublisher creates a publisher targeting the given brokers and
// topic.
func NewKafkaEventPublisher(brokers []string, topic string, logger *slog.Logger) *KafkaEventPublisher {
	return &KafkaEventPublisher{
		writer: &kafkago.Writer{
			Addr:     kafkago.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafkago.Hash{},
		},
		logger: logger,
	}
}

// Publish serializes and sends domain events, keyed by aggregate id.
func (p *KafkaEventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	messages := make([]kafkago.Message, 0, len(events))
	for _, evt := range events {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}
		messages = append(messages, kafkago.Message{
			Key:   []byte(evt.AggregateID().String()),
			Value: payload,
			Headers: []kafkago.Header{
				{Key: "event_type", Value: []byte(evt.EventType())},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("kafka publish: %w", err)
	}

	p.logger.Debug("published domain events", "count", len(messages))
	return nil
}

// Close releases the underlying writer.
func (p *KafkaEventPublisher) Close() error {
	return p.writer.Close()
}
