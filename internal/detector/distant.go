package detector

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kakaon/fraud-service/internal/models"
	"github.com/kakaon/fraud-service/internal/windowstore"
)

const (
	distantKeyPrefix = "fraud:same:"
	earthRadiusKm    = 6371.0
)

// DistantUseDetector tracks recent uses of one payment instrument and
// alerts when the same instrument is used at stores further apart than the
// configured distance within the time window.
type DistantUseDetector struct {
	store       windowstore.Store
	window      time.Duration
	thresholdKm float64
}

func NewDistantUseDetector(store windowstore.Store, window time.Duration, thresholdKm float64) *DistantUseDetector {
	return &DistantUseDetector{store: store, window: window, thresholdKm: thresholdKm}
}

func (d *DistantUseDetector) Detect(ctx context.Context, event models.PaymentEvent) ([]models.AlertEvent, error) {
	if event.PaymentUUID == "" || event.ApprovedAt.IsZero() ||
		(event.StoreLatitude == 0 && event.StoreLongitude == 0) {
		return nil, nil
	}

	key := distantKeyPrefix + event.PaymentUUID
	if err := d.store.Push(ctx, key, event, d.window+5*time.Minute); err != nil {
		return nil, err
	}

	all, err := d.store.Range(ctx, key)
	if err != nil {
		return nil, err
	}

	recent := inWindow(all, event.ApprovedAt, d.window)
	if len(recent) <= 1 {
		return nil, nil
	}

	var suspicious []models.PaymentEvent
	var farthest models.PaymentEvent
	var farthestKm float64
	for _, other := range recent {
		if other.PaymentID == event.PaymentID || other.StoreID == event.StoreID {
			continue
		}
		if other.StoreLatitude == 0 && other.StoreLongitude == 0 {
			continue
		}
		// Events arrive unordered, so a candidate may have been approved
		// after this event; the window bounds the gap in both directions.
		gap := other.ApprovedAt.Sub(event.ApprovedAt)
		if gap > d.window || gap < -d.window {
			continue
		}
		km := HaversineKm(event.StoreLatitude, event.StoreLongitude, other.StoreLatitude, other.StoreLongitude)
		if km < d.thresholdKm {
			continue
		}
		suspicious = append(suspicious, other)
		if km > farthestKm {
			farthestKm = km
			farthest = other
		}
	}

	if len(suspicious) == 0 {
		return nil, nil
	}

	related := paymentIDs(suspicious)
	groupID := fmt.Sprintf("DIST-%s-%d", event.PaymentUUID, recent[0].PaymentID)

	description := fmt.Sprintf(
		"Instrument %s used at stores %.2f km apart within %s.\n"+
			"- triggering store: %s (%d) at %s\n- farthest store: %s (%d) at %s\n- payment ids: %v",
		event.PaymentUUID, farthestKm, d.window,
		event.StoreName, event.StoreID, event.ApprovedAt.Format(time.RFC3339),
		farthest.StoreName, farthest.StoreID, farthest.ApprovedAt.Format(time.RFC3339),
		related,
	)

	logrus.WithFields(logrus.Fields{
		"groupId":     groupID,
		"paymentUuid": event.PaymentUUID,
		"distanceKm":  farthestKm,
	}).Info("Distant instrument use detected")

	return []models.AlertEvent{{
		GroupID:           groupID,
		StoreID:           event.StoreID,
		StoreName:         event.StoreName,
		AlertType:         d.AlertType(),
		Description:       description,
		DetectedAt:        time.Now(),
		PaymentID:         event.PaymentID,
		RelatedPaymentIDs: related,
	}}, nil
}

func (d *DistantUseDetector) AlertType() models.AlertType {
	return models.AlertTypeSamePaymentMethod
}

// Cleanup is a no-op; window entries expire via TTL.
func (d *DistantUseDetector) Cleanup() {}

// HaversineKm computes the great-circle distance between two coordinates.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
