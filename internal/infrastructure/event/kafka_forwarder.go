package event

import (
	"context"
	"fmt"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/settlement"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/config"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageWriter is the subset of *kafka.Writer the forwarder uses
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaForwarder copies settlement events onto a Kafka topic for downstream consumers.
// Delivery is best effort: a failed write is logged and never surfaces to the
// component that closed or paid the batch.
type KafkaForwarder struct {
	writer     MessageWriter
	serializer *EventSerializer
	timeout    time.Duration
	logger     *zap.Logger
}

// NewKafkaWriter builds a synchronous writer for cfg
func NewKafkaWriter(cfg config.KafkaConfig, logger *zap.Logger) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		WriteTimeout: cfg.WriteTimeout,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Warn(fmt.Sprintf(msg, args...))
		}),
	}
}

// NewKafkaForwarder creates a forwarder writing through writer
func NewKafkaForwarder(writer MessageWriter, serializer *EventSerializer, timeout time.Duration, logger *zap.Logger) *KafkaForwarder {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &KafkaForwarder{
		writer:     writer,
		serializer: serializer,
		timeout:    timeout,
		logger:     logger,
	}
}

// EventTypes returns the settlement events that are forwarded
func (f *KafkaForwarder) EventTypes() []string {
	return []string{settlement.EventTypeSettlementClosed, settlement.EventTypeSettlementPaid}
}

// Handle writes event keyed by its aggregate id so one batch stays on one partition
func (f *KafkaForwarder) Handle(ctx context.Context, event shared.DomainEvent) error {
	payload, err := f.serializer.Serialize(event)
	if err != nil {
		f.logger.Error("failed to encode event for kafka",
			zap.String("event_type", event.EventType()),
			zap.Error(err),
		)
		return nil
	}

	writeCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(event.AggregateID().String()),
		Value: payload,
		Time:  event.OccurredAt(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType())},
			{Key: "event_id", Value: []byte(event.EventID().String())},
			{Key: "tenant_id", Value: []byte(event.TenantID().String())},
		},
	}
	if err := f.writer.WriteMessages(writeCtx, msg); err != nil {
		f.logger.Error("failed to forward event to kafka",
			zap.String("event_type", event.EventType()),
			zap.String("aggregate_id", event.AggregateID().String()),
			zap.Error(err),
		)
		return nil
	}
	f.logger.Debug("event forwarded to kafka",
		zap.String("event_type", event.EventType()),
		zap.String("aggregate_id", event.AggregateID().String()),
	)
	return nil
}

// Close closes the underlying writer
func (f *KafkaForwarder) Close() error {
	return f.writer.Close()
}

var _ shared.EventHandler = (*KafkaForwarder)(nil)
