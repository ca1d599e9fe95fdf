package rest

import (
	"fmt"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/api"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
	"github.com/google/uuid"
)

func ToAPIPayment(p *domain.Payment) (api.Payment, error) {
	parsedID, err := uuid.Parse(p.ID)
	if err != nil {
		return api.Payment{}, fmt.Errorf("failed to parse payment ID '%s' as UUID: %w", p.ID, err)
	}

	return api.Payment{
		Id:                 parsedID,
		Status:             api.PaymentStatus(p.Status),
		CardNumberLastFour: p.CardNumberLastFour,
		ExpiryMonth:        p.ExpiryMonth,
		ExpiryYear:         p.ExpiryYear,
		Currency:           p.Currency,
		Amount:             p.Amount,
	}, nil
}

func ToPaymentRequest(req api.CreatePaymentRequest) domain.PaymentRequest {
	return domain.PaymentRequest{
		CardNumber:  req.CardNumber,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		Currency:    req.Currency,
		Amount:      req.Amount,
		CVV:         req.Cvv,
	}
}
