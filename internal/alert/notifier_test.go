package alert_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kakaon/fraud-service/internal/alert"
	"github.com/kakaon/fraud-service/internal/alert/mocks"
	"github.com/kakaon/fraud-service/internal/models"
)

func persistedAlert() *models.Alert {
	return &models.Alert{
		ID:          42,
		StoreID:     7,
		AlertUuid:   "ALERT-25060230123456",
		AlertType:   models.AlertTypeRepeatedPayment,
		Description: "2 identical payments of 12000 within 5m0s",
		DetectedAt:  time.Date(2025, 6, 2, 14, 32, 0, 0, time.UTC),
	}
}

func storeWithRecipients() *models.Store {
	return &models.Store{
		ID:         7,
		Name:       "Gangnam Branch",
		OwnerEmail: "owner@example.com",
		AlertRecipients: []models.AlertRecipient{
			{ID: 1, StoreID: 7, Email: "manager@example.com", Active: true},
			{ID: 2, StoreID: 7, Email: "former@example.com", Active: false},
			{ID: 3, StoreID: 7, Email: "security@example.com", Active: true},
		},
	}
}

func TestNotify_MailsOwnerAndActiveRecipients(t *testing.T) {
	mailer := mocks.NewMockMailer(t)
	alerts := mocks.NewMockAlertRepo(t)
	n := alert.NewNotifier(mailer, alerts)

	ctx := context.Background()
	subject := "[Fraud Alert] Repeated identical payments"

	mailer.EXPECT().Send("owner@example.com", subject, mock.AnythingOfType("string")).Return(nil).Once()
	mailer.EXPECT().Send("manager@example.com", subject, mock.AnythingOfType("string")).Return(nil).Once()
	mailer.EXPECT().Send("security@example.com", subject, mock.AnythingOfType("string")).Return(nil).Once()
	alerts.EXPECT().MarkEmailSent(ctx, int64(42)).Return(nil).Once()

	n.Notify(ctx, persistedAlert(), storeWithRecipients())

	mailer.AssertNotCalled(t, "Send", "former@example.com", mock.Anything, mock.Anything)
	mailer.AssertExpectations(t)
	alerts.AssertExpectations(t)
}

func TestNotify_OwnerFailureStopsAndLeavesUnmarked(t *testing.T) {
	mailer := mocks.NewMockMailer(t)
	alerts := mocks.NewMockAlertRepo(t)
	n := alert.NewNotifier(mailer, alerts)

	mailer.EXPECT().
		Send("owner@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(errors.New("smtp timeout")).
		Once()

	n.Notify(context.Background(), persistedAlert(), storeWithRecipients())

	mailer.AssertNumberOfCalls(t, "Send", 1)
	alerts.AssertNotCalled(t, "MarkEmailSent", mock.Anything, mock.Anything)
}

func TestNotify_RecipientFailureLeavesUnmarked(t *testing.T) {
	mailer := mocks.NewMockMailer(t)
	alerts := mocks.NewMockAlertRepo(t)
	n := alert.NewNotifier(mailer, alerts)

	mailer.EXPECT().
		Send("owner@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil).
		Once()
	mailer.EXPECT().
		Send("manager@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(errors.New("mailbox unavailable")).
		Once()

	n.Notify(context.Background(), persistedAlert(), storeWithRecipients())

	// security@example.com is never attempted after the failure.
	mailer.AssertNumberOfCalls(t, "Send", 2)
	alerts.AssertNotCalled(t, "MarkEmailSent", mock.Anything, mock.Anything)
}

func TestNotify_MarkErrorIsSwallowed(t *testing.T) {
	mailer := mocks.NewMockMailer(t)
	alerts := mocks.NewMockAlertRepo(t)
	n := alert.NewNotifier(mailer, alerts)

	store := &models.Store{ID: 7, Name: "Gangnam Branch", OwnerEmail: "owner@example.com"}

	mailer.EXPECT().
		Send("owner@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil).
		Once()
	alerts.EXPECT().MarkEmailSent(mock.Anything, int64(42)).Return(errors.New("db down")).Once()

	assert.NotPanics(t, func() {
		n.Notify(context.Background(), persistedAlert(), store)
	})
}
