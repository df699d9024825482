// Package alert turns candidate alert events into persisted alerts and
// notifications. Persistence and notification run in separate failure
// domains: a mail failure can never roll back an alert row.
package alert

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kakaon/fraud-service/config"
	"github.com/kakaon/fraud-service/internal/models"
)

// StoreRepo resolves the store an alert belongs to.
type StoreRepo interface {
	GetByID(ctx context.Context, id int64) (*models.Store, error)
}

// PaymentRepo resolves payments for alert linkage.
type PaymentRepo interface {
	GetByID(ctx context.Context, id int64) (*models.Payment, error)
}

// AlertRepo persists alerts and answers uuid collision checks.
type AlertRepo interface {
	Create(ctx context.Context, alert *models.Alert) error
	ExistsByAlertUuid(ctx context.Context, alertUuid string) (bool, error)
	MarkEmailSent(ctx context.Context, alertID int64) error
	MarkChecked(ctx context.Context, alertID int64) error
}

// AlertPaymentRepo manages the (alert, payment) join rows.
type AlertPaymentRepo interface {
	Create(ctx context.Context, link *models.AlertPayment) error
	Exists(ctx context.Context, alertID, paymentID int64) (bool, error)
}

// Materializer persists a candidate alert and links its related payments.
type Materializer struct {
	Stores        StoreRepo
	Payments      PaymentRepo
	Alerts        AlertRepo
	AlertPayments AlertPaymentRepo
	Lookup        config.PaymentLookupConfig
}

func NewMaterializer(stores StoreRepo, payments PaymentRepo, alerts AlertRepo, alertPayments AlertPaymentRepo, lookup config.PaymentLookupConfig) *Materializer {
	if lookup.MaxAttempts == 0 {
		lookup.MaxAttempts = 3
	}
	return &Materializer{
		Stores:        stores,
		Payments:      payments,
		Alerts:        alerts,
		AlertPayments: alertPayments,
		Lookup:        lookup,
	}
}

// Materialize verifies the store, persists the alert under a fresh unique
// uuid, and links every resolvable related payment. Payment rows written by
// a concurrent transaction may not be visible yet, so each lookup retries
// with a fixed delay; ids still unresolved afterwards are skipped and
// logged while the alert itself stays persisted.
//
// A uuid is generated per call, so materializing the same event twice
// creates a second alert row; only the (alert, payment) links are guarded
// against duplication.
func (m *Materializer) Materialize(ctx context.Context, event models.AlertEvent) (*models.Alert, *models.Store, error) {
	store, err := m.Stores.GetByID(ctx, event.StoreID)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving store %d: %w", event.StoreID, err)
	}

	alertUuid, err := m.generateAlertUuid(ctx)
	if err != nil {
		return nil, nil, err
	}

	alert := &models.Alert{
		StoreID:     store.ID,
		AlertUuid:   alertUuid,
		AlertType:   event.AlertType,
		Description: event.Description,
		DetectedAt:  event.DetectedAt,
	}
	if err := m.Alerts.Create(ctx, alert); err != nil {
		return nil, nil, fmt.Errorf("persisting alert: %w", err)
	}

	for _, paymentID := range m.linkTargets(event) {
		payment := m.resolvePayment(ctx, paymentID)
		if payment == nil {
			logrus.WithFields(logrus.Fields{
				"alertUuid": alertUuid,
				"paymentId": paymentID,
			}).Warn("Payment not resolvable, skipping link")
			continue
		}

		exists, err := m.AlertPayments.Exists(ctx, alert.ID, payment.ID)
		if err != nil {
			logrus.Errorf("Link existence check failed for alert %d payment %d: %s", alert.ID, payment.ID, err.Error())
			continue
		}
		if exists {
			continue
		}

		link := &models.AlertPayment{AlertID: alert.ID, PaymentID: payment.ID}
		if err := m.AlertPayments.Create(ctx, link); err != nil {
			logrus.Errorf("Linking alert %d to payment %d failed: %s", alert.ID, payment.ID, err.Error())
		}
	}

	return alert, store, nil
}

func (m *Materializer) linkTargets(event models.AlertEvent) []int64 {
	if len(event.RelatedPaymentIDs) > 0 {
		return event.RelatedPaymentIDs
	}
	if event.PaymentID != 0 {
		return []int64{event.PaymentID}
	}
	return nil
}

// resolvePayment retries the lookup with a fixed delay to ride out
// read-after-write lag. This blocks the consumer goroutine while retrying;
// it is the pipeline's main backpressure point.
func (m *Materializer) resolvePayment(ctx context.Context, paymentID int64) *models.Payment {
	for attempt := 1; attempt <= m.Lookup.MaxAttempts; attempt++ {
		payment, err := m.Payments.GetByID(ctx, paymentID)
		if err == nil {
			return payment
		}
		if attempt == m.Lookup.MaxAttempts {
			break
		}
		select {
		case <-time.After(m.Lookup.Delay):
		case <-ctx.Done():
			return nil
		}
	}
	return nil
}

// generateAlertUuid builds a fixed-length identifier and regenerates until
// it does not collide with an existing alert.
func (m *Materializer) generateAlertUuid(ctx context.Context) (string, error) {
	datePart := time.Now().Format("060102") + fmt.Sprintf("%02d", time.Now().Second())
	for {
		candidate := fmt.Sprintf("ALERT-%s%06d", datePart, rand.IntN(1_000_000))
		exists, err := m.Alerts.ExistsByAlertUuid(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("checking alert uuid: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
}
