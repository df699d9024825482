package models

import "time"

const (
	PaymentStatusApproved = "APPROVED"
	PaymentStatusCanceled = "CANCELED"

	PaymentMethodCard     = "CARD"
	PaymentMethodKakaoPay = "KAKAOPAY"
	PaymentMethodTransfer = "TRANSFER"
	PaymentMethodCash     = "CASH"

	TopicPaymentEvents = "payment-events"
)

// PaymentEvent is the immutable snapshot of a committed payment state
// change, published on the payment-events topic keyed by payment id.
type PaymentEvent struct {
	PaymentID       int64     `json:"payment_id"`
	StoreID         int64     `json:"store_id"`
	OrderID         int64     `json:"order_id"`
	AuthorizationNo string    `json:"authorization_no"`
	PaymentUUID     string    `json:"payment_uuid"`
	Amount          int64     `json:"amount"`
	Method          string    `json:"method"`
	Status          string    `json:"status"`
	ApprovedAt      time.Time `json:"approved_at"`
	CanceledAt      time.Time `json:"canceled_at,omitempty"`
	Delivery        bool      `json:"delivery"`
	StoreName       string    `json:"store_name"`
	StoreLatitude   float64   `json:"store_latitude"`
	StoreLongitude  float64   `json:"store_longitude"`
}
