package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	kafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	"github.com/kakaon/fraud-service/internal/models"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublish_KeyedByPaymentID(t *testing.T) {
	writer := &fakeWriter{}
	p := &KafkaPublisher{topic: models.TopicPaymentEvents, writer: writer}

	event := models.PaymentEvent{
		PaymentID:  101,
		StoreID:    7,
		Amount:     12000,
		Method:     models.PaymentMethodCard,
		Status:     models.PaymentStatusApproved,
		ApprovedAt: time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC),
	}

	err := p.Publish(context.Background(), event)

	assert.NoError(t, err)
	assert.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, "101", string(msg.Key))

	var decoded models.PaymentEvent
	assert.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event, decoded)

	assert.Len(t, msg.Headers, 1)
	assert.Equal(t, "event_id", msg.Headers[0].Key)
	assert.NotEmpty(t, msg.Headers[0].Value)
}

func TestPublishCommitted_SwallowsWriteError(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker unavailable")}
	p := &KafkaPublisher{topic: models.TopicPaymentEvents, writer: writer}

	assert.NotPanics(t, func() {
		p.PublishCommitted(context.Background(), models.PaymentEvent{PaymentID: 101})
	})
	assert.Empty(t, writer.messages)
}

func TestClose_ClosesWriter(t *testing.T) {
	writer := &fakeWriter{}
	p := &KafkaPublisher{topic: models.TopicPaymentEvents, writer: writer}

	assert.NoError(t, p.Close())
	assert.True(t, writer.closed)
}
