package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Logger narrow logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher writes events to a Kafka topic. Messages are keyed by booking id
// so per-booking ordering is preserved across partitions.
type Publisher struct {
	writer *kafka.Writer
	log    Logger
}

// NewPublisher creates a Kafka publisher
func NewPublisher(brokers []string, topic string, log Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
		ErrorLogger:  kafka.LoggerFunc(log.Error),
	}
	return &Publisher{writer: writer, log: log}
}

// Publish sends one event. The event id is assigned here.
func (p *Publisher) Publish(ctx context.Context, event Event) error {
	event.ID = uuid.NewString()
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events: marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.BookingID, 10)),
		Value: payload,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("events: write message: %w", err)
	}

	p.log.Info("events: published %s for booking=%d service=%s", event.Type, event.BookingID, event.ServiceType)
	return nil
}

// Close flushes and closes the underlying writer
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NopPublisher discards events; used when Kafka is disabled in config
type NopPublisher struct{}

// Publish implements the publisher contract as a no-op
func (NopPublisher) Publish(ctx context.Context, event Event) error {
	return nil
}
