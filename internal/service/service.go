package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/kakaon/fraud-service/internal/detector"
	"github.com/kakaon/fraud-service/internal/models"
)

// AlertSink receives candidate alerts for materialization and notification.
type AlertSink interface {
	Handle(ctx context.Context, event models.AlertEvent)
}

// FraudService runs every registered detector against each consumed
// payment event and forwards the resulting candidate alerts.
type FraudService struct {
	Registry *detector.Registry
	Sink     AlertSink
}

func NewFraudService(registry *detector.Registry, sink AlertSink) *FraudService {
	return &FraudService{
		Registry: registry,
		Sink:     sink,
	}
}

// EvaluatePayment runs the event through the detector registry inside a
// single failure boundary: the first detector error aborts the remaining
// detectors for this event, and the event still counts as processed. The
// returned error is always nil so the consumer acknowledges regardless.
func (s *FraudService) EvaluatePayment(ctx context.Context, event models.PaymentEvent) error {
	logrus.WithFields(logrus.Fields{
		"paymentId":       event.PaymentID,
		"authorizationNo": event.AuthorizationNo,
	}).Info("Evaluating payment event")

	for _, d := range s.Registry.Detectors() {
		alerts, err := d.Detect(ctx, event)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"paymentId": event.PaymentID,
				"alertType": d.AlertType(),
			}).Errorf("Detector failed, skipping remaining detectors: %s", err.Error())
			return nil
		}

		for _, alert := range alerts {
			logrus.WithFields(logrus.Fields{
				"storeId":   alert.StoreID,
				"alertType": alert.AlertType,
			}).Info("Anomaly detected, forwarding candidate alert")
			s.Sink.Handle(ctx, alert)
		}
	}

	return nil
}
