package detector

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kakaon/fraud-service/internal/models"
	"github.com/kakaon/fraud-service/internal/windowstore"
)

const duplicateKeyPrefix = "fraud:duplicate:"

// DuplicateDetector keeps a rolling list per (store, method, amount) and
// alerts once the window holds the threshold count. It re-alerts on every
// further event while the window stays satisfied; throttling that volume
// is a deliberate non-feature.
//
// The push and the window read are two separate store calls, so two
// near-simultaneous events on one key can both observe a sub-threshold
// count. Known gap, accepted for now.
type DuplicateDetector struct {
	store     windowstore.Store
	window    time.Duration
	threshold int
}

func NewDuplicateDetector(store windowstore.Store, window time.Duration, threshold int) *DuplicateDetector {
	return &DuplicateDetector{store: store, window: window, threshold: threshold}
}

func (d *DuplicateDetector) Detect(ctx context.Context, event models.PaymentEvent) ([]models.AlertEvent, error) {
	if event.PaymentID == 0 || event.ApprovedAt.IsZero() {
		return nil, nil
	}

	key := d.key(event)
	if err := d.store.Push(ctx, key, event, d.window+5*time.Minute); err != nil {
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
	logrus.WithFields(logrus.Fields{
		"storeId":     event.StoreID,
		"key":         key,
		"windowCount": len(recent),
	}).Info("Duplicate payment window satisfied")

	description := fmt.Sprintf(
		"%d payments of %d via %s within %s at %s (store %d).\n"+
			"- first: %s\n- last: %s\n- payment ids: %v\n- authorization nos: %v",
		len(recent), event.Amount, event.Method, d.window, event.StoreName, event.StoreID,
		recent[0].ApprovedAt.Format(time.RFC3339),
		recent[len(recent)-1].ApprovedAt.Format(time.RFC3339),
		ids, authorizationNos(recent),
	)

	return []models.AlertEvent{{
		GroupID:           fmt.Sprintf("DUP-%d-%s-%d-%d", event.StoreID, event.Method, event.Amount, recent[0].PaymentID),
		StoreID:           event.StoreID,
		StoreName:         event.StoreName,
		AlertType:         d.AlertType(),
		Description:       description,
		DetectedAt:        time.Now(),
		PaymentID:         event.PaymentID,
		RelatedPaymentIDs: ids,
	}}, nil
}

func (d *DuplicateDetector) AlertType() models.AlertType {
	return models.AlertTypeRepeatedPayment
}

// Cleanup is a no-op; window entries expire via TTL.
func (d *DuplicateDetector) Cleanup() {}

func (d *DuplicateDetector) key(event models.PaymentEvent) string {
	return fmt.Sprintf("%s%d-%s-%d", duplicateKeyPrefix, event.StoreID, event.Method, event.Amount)
}
