package alert_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kakaon/fraud-service/config"
	"github.com/kakaon/fraud-service/internal/alert"
	"github.com/kakaon/fraud-service/internal/alert/mocks"
	"github.com/kakaon/fraud-service/internal/models"
)

func fastLookup() config.PaymentLookupConfig {
	return config.PaymentLookupConfig{MaxAttempts: 2, Delay: 0}
}

func candidateEvent() models.AlertEvent {
	return models.AlertEvent{
		GroupID:           "DUP-7-CARD-12000-10",
		StoreID:           7,
		StoreName:         "Gangnam Branch",
		AlertType:         models.AlertTypeRepeatedPayment,
		Description:       "2 identical payments of 12000 within 5m0s",
		DetectedAt:        time.Date(2025, 6, 2, 14, 32, 0, 0, time.UTC),
		PaymentID:         11,
		RelatedPaymentIDs: []int64{10, 11},
	}
}

func TestMaterialize_PersistsAlertAndLinks(t *testing.T) {
	stores := mocks.NewMockStoreRepo(t)
	payments := mocks.NewMockPaymentRepo(t)
	alerts := mocks.NewMockAlertRepo(t)
	links := mocks.NewMockAlertPaymentRepo(t)

	m := alert.NewMaterializer(stores, payments, alerts, links, fastLookup())

	ctx := context.Background()
	event := candidateEvent()

	store := &models.Store{ID: 7, Name: "Gangnam Branch", OwnerEmail: "owner@example.com"}
	stores.EXPECT().GetByID(ctx, int64(7)).Return(store, nil).Once()

	alerts.EXPECT().ExistsByAlertUuid(ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
	alerts.EXPECT().
		Create(ctx, mock.AnythingOfType("*models.Alert")).
		Run(func(_ context.Context, a *models.Alert) { a.ID = 42 }).
		Return(nil).
		Once()

	payments.EXPECT().GetByID(ctx, int64(10)).Return(&models.Payment{ID: 10, StoreID: 7}, nil).Once()
	payments.EXPECT().GetByID(ctx, int64(11)).Return(&models.Payment{ID: 11, StoreID: 7}, nil).Once()

	links.EXPECT().Exists(ctx, int64(42), int64(10)).Return(false, nil).Once()
	links.EXPECT().Exists(ctx, int64(42), int64(11)).Return(false, nil).Once()
	links.EXPECT().Create(ctx, &models.AlertPayment{AlertID: 42, PaymentID: 10}).Return(nil).Once()
	links.EXPECT().Create(ctx, &models.AlertPayment{AlertID: 42, PaymentID: 11}).Return(nil).Once()

	persisted, resolvedStore, err := m.Materialize(ctx, event)

	assert.NoError(t, err)
	assert.Equal(t, store, resolvedStore)
	assert.Equal(t, int64(42), persisted.ID)
	assert.Equal(t, models.AlertTypeRepeatedPayment, persisted.AlertType)
	assert.Equal(t, event.DetectedAt, persisted.DetectedAt)
	assert.Len(t, persisted.AlertUuid, 20)
	assert.Regexp(t, `^ALERT-\d{8}\d{6}$`, persisted.AlertUuid)
}

func TestMaterialize_StoreMissingFailsWholeOperation(t *testing.T) {
	stores := mocks.NewMockStoreRepo(t)
	payments := mocks.NewMockPaymentRepo(t)
	alerts := mocks.NewMockAlertRepo(t)
	links := mocks.NewMockAlertPaymentRepo(t)

	m := alert.NewMaterializer(stores, payments, alerts, links, fastLookup())

	ctx := context.Background()
	stores.EXPECT().GetByID(ctx, int64(7)).Return(nil, models.ErrStoreNotFound).Once()

	_, _, err := m.Materialize(ctx, candidateEvent())

	assert.Error(t, err)
	assert.ErrorIs(t, err, models.ErrStoreNotFound)
	alerts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	links.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMaterialize_UuidCollisionRegenerates(t *testing.T) {
	stores := mocks.NewMockStoreRepo(t)
	payments := mocks.NewMockPaymentRepo(t)
	alerts := mocks.NewMockAlertRepo(t)
	links := mocks.NewMockAlertPaymentRepo(t)

	m := alert.NewMaterializer(stores, payments, alerts, links, fastLookup())

	ctx := context.Background()
	event := candidateEvent()
	event.RelatedPaymentIDs = nil
	event.PaymentID = 0

	stores.EXPECT().GetByID(ctx, int64(7)).Return(&models.Store{ID: 7}, nil).Once()

	var first, second string
	alerts.EXPECT().
		ExistsByAlertUuid(ctx, mock.AnythingOfType("string")).
		Run(func(_ context.Context, uuid string) { first = uuid }).
		Return(true, nil).
		Once()
	alerts.EXPECT().
		ExistsByAlertUuid(ctx, mock.AnythingOfType("string")).
		Run(func(_ context.Context, uuid string) { second = uuid }).
		Return(false, nil).
		Once()
	alerts.EXPECT().Create(ctx, mock.AnythingOfType("*models.Alert")).Return(nil).Once()

	persisted, _, err := m.Materialize(ctx, event)

	assert.NoError(t, err)
	assert.Equal(t, second, persisted.AlertUuid)
	assert.NotEqual(t, first, persisted.AlertUuid)
}

func TestMaterialize_UnresolvedPaymentSkippedAlertKept(t *testing.T) {
	stores := mocks.NewMockStoreRepo(t)
	payments := mocks.NewMockPaymentRepo(t)
	alerts := mocks.NewMockAlertRepo(t)
	links := mocks.NewMockAlertPaymentRepo(t)

	m := alert.NewMaterializer(stores, payments, alerts, links, fastLookup())

	ctx := context.Background()
	event := candidateEvent()
	event.RelatedPaymentIDs = []int64{99}

	stores.EXPECT().GetByID(ctx, int64(7)).Return(&models.Store{ID: 7}, nil).Once()
	alerts.EXPECT().ExistsByAlertUuid(ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
	alerts.EXPECT().
		Create(ctx, mock.AnythingOfType("*models.Alert")).
		Run(func(_ context.Context, a *models.Alert) { a.ID = 42 }).
		Return(nil).
		Once()

	// Both lookup attempts fail; the alert row still survives.
	payments.EXPECT().GetByID(ctx, int64(99)).Return(nil, models.ErrPaymentNotFound).Times(2)

	persisted, _, err := m.Materialize(ctx, event)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), persisted.ID)
	links.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMaterialize_LookupRetriesThenSucceeds(t *testing.T) {
	stores := mocks.NewMockStoreRepo(t)
	payments := mocks.NewMockPaymentRepo(t)
	alerts := mocks.NewMockAlertRepo(t)
	links := mocks.NewMockAlertPaymentRepo(t)

	m := alert.NewMaterializer(stores, payments, alerts, links, fastLookup())

	ctx := context.Background()
	event := candidateEvent()
	event.RelatedPaymentIDs = nil // falls back to the triggering payment

	stores.EXPECT().GetByID(ctx, int64(7)).Return(&models.Store{ID: 7}, nil).Once()
	alerts.EXPECT().ExistsByAlertUuid(ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
	alerts.EXPECT().
		Create(ctx, mock.AnythingOfType("*models.Alert")).
		Run(func(_ context.Context, a *models.Alert) { a.ID = 42 }).
		Return(nil).
		Once()

	payments.EXPECT().GetByID(ctx, int64(11)).Return(nil, models.ErrPaymentNotFound).Once()
	payments.EXPECT().GetByID(ctx, int64(11)).Return(&models.Payment{ID: 11}, nil).Once()

	links.EXPECT().Exists(ctx, int64(42), int64(11)).Return(false, nil).Once()
	links.EXPECT().Create(ctx, &models.AlertPayment{AlertID: 42, PaymentID: 11}).Return(nil).Once()

	_, _, err := m.Materialize(ctx, event)

	assert.NoError(t, err)
}

func TestMaterialize_ExistingLinkNotDuplicated(t *testing.T) {
	stores := mocks.NewMockStoreRepo(t)
	payments := mocks.NewMockPaymentRepo(t)
	alerts := mocks.NewMockAlertRepo(t)
	links := mocks.NewMockAlertPaymentRepo(t)

	m := alert.NewMaterializer(stores, payments, alerts, links, fastLookup())

	ctx := context.Background()
	event := candidateEvent()
	event.RelatedPaymentIDs = []int64{10}

	stores.EXPECT().GetByID(ctx, int64(7)).Return(&models.Store{ID: 7}, nil).Once()
	alerts.EXPECT().ExistsByAlertUuid(ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
	alerts.EXPECT().
		Create(ctx, mock.AnythingOfType("*models.Alert")).
		Run(func(_ context.Context, a *models.Alert) { a.ID = 42 }).
		Return(nil).
		Once()

	payments.EXPECT().GetByID(ctx, int64(10)).Return(&models.Payment{ID: 10}, nil).Once()
	links.EXPECT().Exists(ctx, int64(42), int64(10)).Return(true, nil).Once()

	_, _, err := m.Materialize(ctx, event)

	assert.NoError(t, err)
	links.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMaterialize_TwiceCreatesSecondAlertButNoDuplicateLinkPair(t *testing.T) {
	stores := mocks.NewMockStoreRepo(t)
	payments := mocks.NewMockPaymentRepo(t)
	alerts := mocks.NewMockAlertRepo(t)
	links := mocks.NewMockAlertPaymentRepo(t)

	m := alert.NewMaterializer(stores, payments, alerts, links, fastLookup())

	ctx := context.Background()
	event := candidateEvent()
	event.RelatedPaymentIDs = []int64{10}

	stores.EXPECT().GetByID(ctx, int64(7)).Return(&models.Store{ID: 7}, nil).Times(2)

	// Mirror the unique index: a uuid handed out once reports as taken.
	seen := map[string]bool{}
	alerts.EXPECT().
		ExistsByAlertUuid(ctx, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, uuid string) (bool, error) {
			if seen[uuid] {
				return true, nil
			}
			seen[uuid] = true
			return false, nil
		})

	var uuids []string
	nextID := int64(42)
	alerts.EXPECT().
		Create(ctx, mock.AnythingOfType("*models.Alert")).
		RunAndReturn(func(_ context.Context, a *models.Alert) error {
			a.ID = nextID
			nextID++
			uuids = append(uuids, a.AlertUuid)
			return nil
		})

	payments.EXPECT().GetByID(ctx, int64(10)).Return(&models.Payment{ID: 10}, nil).Times(2)

	created := map[[2]int64]int{}
	links.EXPECT().
		Exists(ctx, mock.AnythingOfType("int64"), int64(10)).
		RunAndReturn(func(_ context.Context, alertID, paymentID int64) (bool, error) {
			return created[[2]int64{alertID, paymentID}] > 0, nil
		})
	links.EXPECT().
		Create(ctx, mock.AnythingOfType("*models.AlertPayment")).
		RunAndReturn(func(_ context.Context, link *models.AlertPayment) error {
			created[[2]int64{link.AlertID, link.PaymentID}]++
			return nil
		})

	first, _, err := m.Materialize(ctx, event)
	assert.NoError(t, err)
	second, _, err := m.Materialize(ctx, event)
	assert.NoError(t, err)

	// A second Alert row is created under a fresh uuid; no (alert, payment)
	// pair is ever written twice.
	assert.Len(t, uuids, 2)
	assert.NotEqual(t, uuids[0], uuids[1])
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, created, 2)
	for pair, count := range created {
		assert.Equal(t, 1, count, "pair %v linked more than once", pair)
	}
}

func TestMaterialize_AlertCreateErrorPropagates(t *testing.T) {
	stores := mocks.NewMockStoreRepo(t)
	payments := mocks.NewMockPaymentRepo(t)
	alerts := mocks.NewMockAlertRepo(t)
	links := mocks.NewMockAlertPaymentRepo(t)

	m := alert.NewMaterializer(stores, payments, alerts, links, fastLookup())

	ctx := context.Background()
	dbErr := errors.New("connection reset")

	stores.EXPECT().GetByID(ctx, int64(7)).Return(&models.Store{ID: 7}, nil).Once()
	alerts.EXPECT().ExistsByAlertUuid(ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
	alerts.EXPECT().Create(ctx, mock.AnythingOfType("*models.Alert")).Return(dbErr).Once()

	_, _, err := m.Materialize(ctx, candidateEvent())

	assert.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	payments.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
