package detector

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kakaon/fraud-service/internal/models"
	"github.com/kakaon/fraud-service/internal/windowstore"
)

const frequencyKeyPrefix = "fraud:freq:"

// FrequencySpikeDetector alerts when a store accumulates the threshold
// number of payments inside the rolling window. Every further event that
// still satisfies the window triggers another alert; there is no cooldown.
type FrequencySpikeDetector struct {
	store     windowstore.Store
	window    time.Duration
	threshold int
}

func NewFrequencySpikeDetector(store windowstore.Store, window time.Duration, threshold int) *FrequencySpikeDetector {
	return &FrequencySpikeDetector{store: store, window: window, threshold: threshold}
}

func (d *FrequencySpikeDetector) Detect(ctx context.Context, event models.PaymentEvent) ([]models.AlertEvent, error) {
	if event.StoreID == 0 || event.ApprovedAt.IsZero() {
		return nil, nil
	}

	key := fmt.Sprintf("%s%d", frequencyKeyPrefix, event.StoreID)
	if err := d.store.Push(ctx, key, event, d.window+2*time.Minute); err != nil {
		return nil, err
	}

	all, err := d.store.Range(ctx, key)
	if err != nil {
		return nil, err
	}

	recent := inWindow(all, event.ApprovedAt, d.window)
	if len(recent) < d.threshold {
		return nil, nil
	}

	ids := paymentIDs(recent)
	first := recent[0]
	last := recent[len(recent)-1]
	groupID := fmt.Sprintf("FREQ-%d-%d", event.StoreID, first.PaymentID)

	logrus.WithFields(logrus.Fields{
		"storeId": event.StoreID,
		"groupId": groupID,
		"count":   len(recent),
	}).Info("Transaction frequency spike detected")

	description := fmt.Sprintf(
		"%d payments within %s at %s (store %d).\n"+
			"- first: %s\n- last: %s\n- payment ids: %v",
		len(recent), d.window, event.StoreName, event.StoreID,
		first.ApprovedAt.Format(time.RFC3339),
		last.ApprovedAt.Format(time.RFC3339),
		ids,
	)

	return []models.AlertEvent{{
		GroupID:           groupID,
		StoreID:           event.StoreID,
		StoreName:         event.StoreName,
		AlertType:         d.AlertType(),
		Description:       description,
		DetectedAt:        time.Now(),
		PaymentID:         event.PaymentID,
		RelatedPaymentIDs: ids,
	}}, nil
}

func (d *FrequencySpikeDetector) AlertType() models.AlertType {
	return models.AlertTypeTransactionFrequencySpike
}

// Cleanup is a no-op; window entries expire via TTL.
func (d *FrequencySpikeDetector) Cleanup() {}
