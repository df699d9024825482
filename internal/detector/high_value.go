package detector

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/kakaon/fraud-service/internal/models"
	"github.com/kakaon/fraud-service/internal/windowstore"
)

const avgAmountField = "avgPaymentAmountPrevMonth"

// HighValueDetector compares the event amount against the store's cached
// previous-period average and flags amounts at or above the configured
// multiple of it. Stores without a cached average are skipped.
type HighValueDetector struct {
	store      windowstore.Store
	multiplier float64
}

func NewHighValueDetector(store windowstore.Store, multiplier float64) *HighValueDetector {
	return &HighValueDetector{store: store, multiplier: multiplier}
}

func (d *HighValueDetector) Detect(ctx context.Context, event models.PaymentEvent) ([]models.AlertEvent, error) {
	key := fmt.Sprintf("%s%d", operationKeyPrefix, event.StoreID)
	raw, err := d.store.HGet(ctx, key, avgAmountField)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	avgAmount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logrus.Warnf("Unparseable %s for store %d: %s", avgAmountField, event.StoreID, raw)
		return nil, nil
	}

	currentAmount := float64(event.Amount)
	if avgAmount <= 0 || currentAmount < avgAmount*d.multiplier {
		return nil, nil
	}

	return []models.AlertEvent{{
		StoreID:   event.StoreID,
		StoreName: event.StoreName,
		AlertType: d.AlertType(),
		Description: fmt.Sprintf(
			"Payment of %d exceeds %.0fx the previous-period average (%.0f).",
			event.Amount, d.multiplier, avgAmount),
		DetectedAt: event.ApprovedAt,
		PaymentID:  event.PaymentID,
	}}, nil
}

func (d *HighValueDetector) AlertType() models.AlertType {
	return models.AlertTypeHighAmountSpike
}

func (d *HighValueDetector) Cleanup() {}
