package detector_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kakaon/fraud-service/internal/detector"
	"github.com/kakaon/fraud-service/internal/models"
	"github.com/kakaon/fraud-service/internal/windowstore"
)

func TestHaversineKm_KnownDistance(t *testing.T) {
	// ~1 km due north along the 127E meridian.
	km := detector.HaversineKm(37.5000, 127.0000, 37.5090, 127.0000)
	assert.InDelta(t, 1.0, km, 0.01)
}

func TestHaversineKm_ZeroForSamePoint(t *testing.T) {
	km := detector.HaversineKm(37.5, 127.0, 37.5, 127.0)
	assert.Zero(t, km)
}

func TestDistantUseDetector_SameInstrumentAtDistantStores(t *testing.T) {
	store := windowstore.NewMemoryStore()
	d := detector.NewDistantUseDetector(store, 5*time.Minute, 50)
	ctx := context.Background()

	base := time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC)
	// Seoul and roughly 120 km south of it.
	first := models.PaymentEvent{
		PaymentID:      1,
		StoreID:        10,
		StoreName:      "Seoul Branch",
		PaymentUUID:    "card-abc",
		Amount:         10000,
		ApprovedAt:     base,
		StoreLatitude:  37.5665,
		StoreLongitude: 126.9780,
	}
	second := models.PaymentEvent{
		PaymentID:      2,
		StoreID:        20,
		StoreName:      "Cheonan Branch",
		PaymentUUID:    "card-abc",
		Amount:         5000,
		ApprovedAt:     base.Add(3 * time.Minute),
		StoreLatitude:  36.4870,
		StoreLongitude: 126.9780,
	}

	alerts, err := d.Detect(ctx, first)
	assert.NoError(t, err)
	assert.Empty(t, alerts)

	alerts, err = d.Detect(ctx, second)
	assert.NoError(t, err)
	assert.Len(t, alerts, 1)

	alert := alerts[0]
	assert.Equal(t, models.AlertTypeSamePaymentMethod, alert.AlertType)
	assert.Equal(t, int64(2), alert.PaymentID)
	assert.Equal(t, []int64{1}, alert.RelatedPaymentIDs)
	assert.Contains(t, alert.Description, "Seoul Branch")
	assert.Contains(t, alert.Description, "Cheonan Branch")
}

func TestDistantUseDetector_NearbyStoresDoNotAlert(t *testing.T) {
	store := windowstore.NewMemoryStore()
	d := detector.NewDistantUseDetector(store, 5*time.Minute, 50)
	ctx := context.Background()

	base := time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC)
	first := models.PaymentEvent{
		PaymentID: 1, StoreID: 10, PaymentUUID: "card-abc",
		ApprovedAt: base, StoreLatitude: 37.5000, StoreLongitude: 127.0000,
	}
	second := models.PaymentEvent{
		PaymentID: 2, StoreID: 20, PaymentUUID: "card-abc",
		ApprovedAt: base.Add(time.Minute), StoreLatitude: 37.5090, StoreLongitude: 127.0000,
	}

	_, err := d.Detect(ctx, first)
	assert.NoError(t, err)

	alerts, err := d.Detect(ctx, second)
	assert.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestDistantUseDetector_LateArrivalOutsideWindowIgnored(t *testing.T) {
	store := windowstore.NewMemoryStore()
	d := detector.NewDistantUseDetector(store, 5*time.Minute, 50)
	ctx := context.Background()

	base := time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC)
	// The later approval arrives first; the earlier one is delivered late.
	future := models.PaymentEvent{
		PaymentID: 1, StoreID: 10, StoreName: "Seoul Branch", PaymentUUID: "card-abc",
		ApprovedAt: base.Add(7 * time.Minute), StoreLatitude: 37.5665, StoreLongitude: 126.9780,
	}
	late := models.PaymentEvent{
		PaymentID: 2, StoreID: 20, StoreName: "Cheonan Branch", PaymentUUID: "card-abc",
		ApprovedAt: base, StoreLatitude: 36.4870, StoreLongitude: 126.9780,
	}

	_, err := d.Detect(ctx, future)
	assert.NoError(t, err)

	// Approvals are 7 minutes apart, outside the 5-minute window, even
	// though both entries are still held under the key's TTL.
	alerts, err := d.Detect(ctx, late)
	assert.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestDistantUseDetector_SameStoreExcluded(t *testing.T) {
	store := windowstore.NewMemoryStore()
	d := detector.NewDistantUseDetector(store, 5*time.Minute, 50)
	ctx := context.Background()

	base := time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC)
	first := models.PaymentEvent{
		PaymentID: 1, StoreID: 10, PaymentUUID: "card-abc",
		ApprovedAt: base, StoreLatitude: 37.5665, StoreLongitude: 126.9780,
	}
	second := models.PaymentEvent{
		PaymentID: 2, StoreID: 10, PaymentUUID: "card-abc",
		ApprovedAt: base.Add(time.Minute), StoreLatitude: 37.5665, StoreLongitude: 126.9780,
	}

	_, err := d.Detect(ctx, first)
	assert.NoError(t, err)

	alerts, err := d.Detect(ctx, second)
	assert.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestDistantUseDetector_MissingInstrumentSkipped(t *testing.T) {
	store := windowstore.NewMemoryStore()
	d := detector.NewDistantUseDetector(store, 5*time.Minute, 50)

	alerts, err := d.Detect(context.Background(), models.PaymentEvent{
		PaymentID: 1, StoreID: 10,
		ApprovedAt: time.Now(), StoreLatitude: 37.5, StoreLongitude: 127.0,
	})
	assert.NoError(t, err)
	assert.Empty(t, alerts)
}
