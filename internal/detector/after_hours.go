package detector

import (
	"context"
	"fmt"

	"github.com/kakaon/fraud-service/internal/models"
	"github.com/kakaon/fraud-service/internal/windowstore"
)

const operationKeyPrefix = "store:operation:startTime:"

// AfterHoursDetector flags any payment at a store whose "is open" flag is
// absent from the window store. The flag is written when the store opens
// for business; no windowing is involved.
type AfterHoursDetector struct {
	store windowstore.Store
}

func NewAfterHoursDetector(store windowstore.Store) *AfterHoursDetector {
	return &AfterHoursDetector{store: store}
}

func (d *AfterHoursDetector) Detect(ctx context.Context, event models.PaymentEvent) ([]models.AlertEvent, error) {
	if event.StoreID == 0 {
		return nil, nil
	}

	open, err := d.store.Exists(ctx, fmt.Sprintf("%s%d", operationKeyPrefix, event.StoreID))
	if err != nil {
		return nil, err
	}
	if open {
		return nil, nil
	}

	return []models.AlertEvent{{
		StoreID:     event.StoreID,
		StoreName:   event.StoreName,
		AlertType:   d.AlertType(),
		Description: "A transaction occurred outside business hours.",
		DetectedAt:  event.ApprovedAt,
		PaymentID:   event.PaymentID,
	}}, nil
}

func (d *AfterHoursDetector) AlertType() models.AlertType {
	return models.AlertTypeOutOfBusinessHour
}

func (d *AfterHoursDetector) Cleanup() {}
