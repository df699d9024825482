package models

import "time"

// Alert is the persisted record of a detected anomaly. Created once by the
// materializer; only the email-sent and checked flags are ever mutated.
type Alert struct {
	ID          int64     `gorm:"primaryKey;column:alert_id"`
	StoreID     int64     `gorm:"index;not null"`
	AlertUuid   string    `gorm:"uniqueIndex;size:20;not null"`
	AlertType   AlertType `gorm:"size:40;not null"`
	Description string    `gorm:"type:text"`
	DetectedAt  time.Time `gorm:"not null"`
	EmailSent   bool      `gorm:"not null;default:false"`
	Checked     bool      `gorm:"not null;default:false"`
	CheckedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AlertPayment links one alert to one payment. At most one row may exist
// per (alert, payment) pair.
type AlertPayment struct {
	ID        int64 `gorm:"primaryKey;column:alert_payment_id"`
	AlertID   int64 `gorm:"index:idx_alert_payment,unique;not null"`
	PaymentID int64 `gorm:"index:idx_alert_payment,unique;not null"`
	CreatedAt time.Time
}
