package models

import "time"

// AlertType identifies the rule that produced an alert.
type AlertType string

const (
	AlertTypeSamePaymentMethod         AlertType = "SAME_PAYMENT_METHOD"
	AlertTypeOutOfBusinessHour         AlertType = "OUT_OF_BUSINESS_HOUR"
	AlertTypeRepeatedPayment           AlertType = "REPEATED_PAYMENT"
	AlertTypeHighAmountSpike           AlertType = "HIGH_AMOUNT_SPIKE"
	AlertTypeTransactionFrequencySpike AlertType = "TRANSACTION_FREQUENCY_SPIKE"
	AlertTypeCancelRateSpike           AlertType = "CANCEL_RATE_SPIKE"
)

// Description returns the human readable label used in mail subjects.
func (t AlertType) Description() string {
	switch t {
	case AlertTypeSamePaymentMethod:
		return "Same instrument used at distant stores"
	case AlertTypeOutOfBusinessHour:
		return "Transaction outside business hours"
	case AlertTypeRepeatedPayment:
		return "Repeated identical payments"
	case AlertTypeHighAmountSpike:
		return "High amount spike"
	case AlertTypeTransactionFrequencySpike:
		return "Transaction frequency spike"
	case AlertTypeCancelRateSpike:
		return "Cancel rate spike"
	default:
		return string(t)
	}
}

// AlertEvent is a candidate alert produced by a detector or by the
// scheduled cancel-rate job. It is transient: consumed exactly once by the
// alert materializer, never stored as-is.
type AlertEvent struct {
	GroupID           string    `json:"group_id,omitempty"`
	StoreID           int64     `json:"store_id"`
	StoreName         string    `json:"store_name"`
	AlertType         AlertType `json:"alert_type"`
	Description       string    `json:"description"`
	DetectedAt        time.Time `json:"detected_at"`
	PaymentID         int64     `json:"payment_id,omitempty"`
	RelatedPaymentIDs []int64   `json:"related_payment_ids,omitempty"`
}
