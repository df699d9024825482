// Package eventbus is a small in-process pub/sub used to hand the
// scheduled cancel-rate rule's candidate alerts to the same
// materialization path the streaming detectors feed.
package eventbus

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/kakaon/fraud-service/internal/models"
)

// Handler consumes one candidate alert.
type Handler func(ctx context.Context, event models.AlertEvent)

// Bus delivers published alert events to a single handler through a
// buffered channel drained by Run.
type Bus struct {
	events  chan models.AlertEvent
	handler Handler
}

func New(handler Handler, buffer int) *Bus {
	if buffer <= 0 {
		buffer = 64
	}
	return &Bus{
		events:  make(chan models.AlertEvent, buffer),
		handler: handler,
	}
}

// Publish enqueues an alert event. Events published against a full buffer
// are dropped with a log line rather than blocking the publisher.
func (b *Bus) Publish(event models.AlertEvent) {
	select {
	case b.events <- event:
	default:
		logrus.WithFields(logrus.Fields{
			"storeId":   event.StoreID,
			"alertType": event.AlertType,
		}).Error("Event bus full, dropping alert event")
	}
}

// Run drains the bus until ctx is done. Call it from a goroutine.
func (b *Bus) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-b.events:
			b.handler(ctx, event)
		}
	}
}
