package models

import "time"

// Store is the merchant location an alert belongs to. Only the fields the
// pipeline reads are mapped here; the rest of the store schema belongs to
// the merchant platform.
type Store struct {
	ID              int64            `gorm:"primaryKey;column:store_id"`
	Name            string           `gorm:"not null"`
	OwnerEmail      string           `gorm:"not null"`
	Latitude        float64          `gorm:"not null"`
	Longitude       float64          `gorm:"not null"`
	AlertRecipients []AlertRecipient `gorm:"foreignKey:StoreID"`
}

// AlertRecipient is an additional mail address subscribed to a store's
// fraud alerts. Inactive entries stay on file but are never mailed.
type AlertRecipient struct {
	ID      int64  `gorm:"primaryKey;column:alert_recipient_id"`
	StoreID int64  `gorm:"index;not null"`
	Email   string `gorm:"not null"`
	Active  bool   `gorm:"not null;default:true"`
}

// Payment is the committed payment row the materializer links alerts to.
type Payment struct {
	ID              int64  `gorm:"primaryKey;column:payment_id"`
	StoreID         int64  `gorm:"index;not null"`
	OrderID         int64  `gorm:"not null"`
	AuthorizationNo string `gorm:"uniqueIndex;not null"`
	Amount          int64  `gorm:"not null"`
	Method          string `gorm:"not null"`
	Status          string `gorm:"not null"`
	ApprovedAt      time.Time
	CanceledAt      *time.Time
	Delivery        bool
	CreatedAt       time.Time
}

// CancelRateAnomaly is one store whose current-hour cancel rate exceeds the
// same hour one week earlier. Rates are percentages.
type CancelRateAnomaly struct {
	StoreID            int64
	StoreName          string
	LastWeekCancelRate float64
	ThisWeekCancelRate float64
	IncreasePercent    float64
}
