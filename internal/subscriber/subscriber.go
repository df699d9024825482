package subscriber

import (
	"context"
	"log"

	"github.com/segmentio/kafka-go"
)

// KafkaConsumer is a durable group subscriber on the payment-events topic.
// Delivery is at-least-once: a crash before offset commit replays events,
// so downstream processing has to tolerate reprocessing.
type KafkaConsumer struct {
	Reader *kafka.Reader
}

func NewConsumer(brokers []string, topic, groupID string) *KafkaConsumer {
	return &KafkaConsumer{
		Reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		}),
	}
}

// Listen reads messages until ctx is done and hands each to the handler.
// Handler errors are logged and the event is considered processed anyway;
// there is no dead-letter topic and no event-level retry.
func (c *KafkaConsumer) Listen(ctx context.Context, handler func(topic string, value []byte) error) {
	go func() {
		for {
			msg, err := c.Reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Println("Kafka error:", err)
				continue
			}
			if err := handler(msg.Topic, msg.Value); err != nil {
				log.Printf("Handler error for key=%s: %v", string(msg.Key), err)
			}
		}
	}()
}

func (c *KafkaConsumer) Close() error {
	return c.Reader.Close()
}
