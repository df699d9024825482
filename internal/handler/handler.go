package handler

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/kakaon/fraud-service/internal/models"
)

type FraudServiceIn interface {
	EvaluatePayment(context.Context, models.PaymentEvent) error
}

type FraudHandler struct {
	FraudService FraudServiceIn
}

func Fraud(s FraudServiceIn) *FraudHandler {
	return &FraudHandler{
		FraudService: s,
	}
}

func (h *FraudHandler) Handler(ctx context.Context, raw []byte) error {
	var event models.PaymentEvent

	if err := json.Unmarshal(raw, &event); err != nil {
		logrus.Errorf("Error unmarshalling PaymentEvent: %s", err.Error())
		return err
	}

	err := h.FraudService.EvaluatePayment(ctx, event)
	if err != nil {
		logrus.Errorf("Error evaluating payment event: %s", err.Error())
		return err
	}

	logrus.Info("PaymentEvent handled successfully")

	return nil
}
