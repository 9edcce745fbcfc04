// Package notification publishes completed-exchange events to Kafka.
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/wmazur/kantor/pkg/service/ledger"
)

// Producer publishes ledger exchange events to a Kafka topic. It implements
// ledger.Notifier.
type Producer struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewProducer creates a Producer writing to the given brokers and topic.
func NewProducer(brokers []string, topic string, logger *slog.Logger) *Producer {
	if logger == nil {
		logger = slog.Default()
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}
	logger.Info("Kafka producer initialized", "topic", topic)
	return &Producer{writer: writer, logger: logger}
}

// ExchangeCompleted publishes the event keyed by account id.
func (p *Producer) ExchangeCompleted(ctx context.Context, event ledger.ExchangeEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal exchange event: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(event.AccountID.String()),
		Value: value,
		Time:  event.OccurredAt,
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to publish exchange event: %w", err)
	}

	p.logger.Debug("exchange event published",
		"account_id", event.AccountID,
		"target", event.TargetCurrency,
	)
	return nil
}

// Close closes the underlying writer.
func (p *Producer) Close() error {
	if p.writer != nil {
		p.logger.Info("Closing Kafka producer")
		return p.writer.Close()
	}
	return nil
}
