// Package posgrest holds the gorm-backed repositories behind the alert
// pipeline and its scheduled jobs.
package posgrest

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/kakaon/fraud-service/internal/models"
)

// StoreRepository loads stores with their alert recipients attached.
type StoreRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{db}
}

func (r *StoreRepository) GetByID(ctx context.Context, id int64) (*models.Store, error) {
	var store models.Store
	err := r.db.WithContext(ctx).
		Preload("AlertRecipients").
		Where("store_id = ?", id).
		First(&store).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrStoreNotFound
	}
	if err != nil {
		return nil, err
	}
	return &store, nil
}

// PaymentRepository resolves committed payment rows.
type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db}
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).Where("payment_id = ?", id).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// AlertRepository persists alerts and flips their lifecycle flags.
type AlertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db}
}

func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *AlertRepository) GetByID(ctx context.Context, id int64) (*models.Alert, error) {
	var alert models.Alert
	err := r.db.WithContext(ctx).Where("alert_id = ?", id).First(&alert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrAlertNotFound
	}
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

func (r *AlertRepository) ExistsByAlertUuid(ctx context.Context, alertUuid string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Alert{}).
		Where("alert_uuid = ?", alertUuid).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AlertRepository) MarkEmailSent(ctx context.Context, alertID int64) error {
	return r.db.WithContext(ctx).
		Model(&models.Alert{}).
		Where("alert_id = ?", alertID).
		Update("email_sent", true).Error
}

func (r *AlertRepository) MarkChecked(ctx context.Context, alertID int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&models.Alert{}).
		Where("alert_id = ?", alertID).
		Updates(map[string]interface{}{
			"checked":    true,
			"checked_at": &now,
		}).Error
}

// AlertPaymentRepository manages the alert-payment join rows.
type AlertPaymentRepository struct {
	db *gorm.DB
}

func NewAlertPaymentRepository(db *gorm.DB) *AlertPaymentRepository {
	return &AlertPaymentRepository{db}
}

func (r *AlertPaymentRepository) Create(ctx context.Context, link *models.AlertPayment) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *AlertPaymentRepository) Exists(ctx context.Context, alertID, paymentID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AlertPayment{}).
		Where("alert_id = ? AND payment_id = ?", alertID, paymentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
