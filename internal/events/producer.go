package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/yourorg/stocksnap/internal/config"
	"github.com/yourorg/stocksnap/internal/model"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Producer publishes session events to a Kafka topic
type Producer struct {
	writer     *kafka.Writer
	maxRetries uint64
	logger     *zap.Logger
}

// NewProducer creates a new Kafka producer
func NewProducer(cfg *config.KafkaConfig, logger *zap.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    100,
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
		Transport: &kafka.Transport{
			ClientID: cfg.ClientID,
		},
	}

	return &Producer{
		writer:     writer,
		maxRetries: cfg.MaxRetries,
		logger:     logger,
	}
}

// Publish sends an event keyed by session ID, retrying transient failures
func (p *Producer) Publish(ctx context.Context, event model.SessionEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event",
			zap.String("type", event.Type),
			zap.Error(err))
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.SessionID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
		Time: event.Timestamp,
	}

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), p.maxRetries), ctx)
	err = backoff.Retry(func() error {
		return p.writer.WriteMessages(ctx, msg)
	}, b)
	if err != nil {
		p.logger.Error("Failed to publish event",
			zap.String("topic", p.writer.Topic),
			zap.String("type", event.Type),
			zap.String("event_id", event.ID),
			zap.Error(err))
		return err
	}

	p.logger.Debug("Event published",
		zap.String("topic", p.writer.Topic),
		zap.String("type", event.Type),
		zap.String("event_id", event.ID))

	return nil
}

// Close closes the Kafka writer
func (p *Producer) Close() error {
	if err := p.writer.Close(); err != nil {
		p.logger.Error("Failed to close Kafka writer", zap.Error(err))
		return err
	}
	return nil
}
