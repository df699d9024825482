package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/kakaon/fraud-service/internal/models"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes committed payment snapshots to the payment-events
// topic. Messages are keyed by payment id so the broker preserves per-key
// order across partitions.
type KafkaPublisher struct {
	topic  string
	writer messageWriter
}

func NewKafkaPublisher(kafkaURL, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		topic: topic,
		writer: &kafka.Writer{
			Addr:     kafka.TCP(kafkaURL),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
	}
}

// Publish serializes the event and writes it keyed by payment id. Callers
// must invoke this only after the owning transaction has committed; a
// payment that can still roll back must never reach the topic.
func (p *KafkaPublisher) Publish(ctx context.Context, event models.PaymentEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("error marshaling payment event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.PaymentID, 10)),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(uuid.NewString())},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}

// PublishCommitted is the fire-and-forget entry point used by the payment
// flow after commit: delivery failures are logged, not retried here.
func (p *KafkaPublisher) PublishCommitted(ctx context.Context, event models.PaymentEvent) {
	if err := p.Publish(ctx, event); err != nil {
		logrus.WithFields(logrus.Fields{
			"paymentId": event.PaymentID,
			"topic":     p.topic,
		}).Errorf("Failed to publish payment event: %s", err.Error())
	}
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
