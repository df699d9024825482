package models

import "errors"

var (
	ErrStoreNotFound   = errors.New("store not found")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrAlertNotFound   = errors.New("alert not found")
)
