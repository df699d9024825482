package alert

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/kakaon/fraud-service/internal/models"
)

// Pipeline glues materialization and notification together. It is the sink
// for both the Kafka evaluation path and the scheduled anomaly jobs.
type Pipeline struct {
	Materializer *Materializer
	Notifier     *Notifier
}

func NewPipeline(materializer *Materializer, notifier *Notifier) *Pipeline {
	return &Pipeline{Materializer: materializer, Notifier: notifier}
}

// Handle persists the candidate alert and, only if that succeeded, hands it
// to the notifier. Materialization errors drop the event with a log line.
func (p *Pipeline) Handle(ctx context.Context, event models.AlertEvent) {
	alert, store, err := p.Materializer.Materialize(ctx, event)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"storeId":   event.StoreID,
			"alertType": event.AlertType,
		}).Errorf("Failed to materialize alert: %s", err.Error())
		return
	}

	p.Notifier.Notify(ctx, alert, store)
}
