package memory

import (
	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
)

// toDomainModel: maps stored model to domain entity
func toDomainModel(m PaymentModel) *domain.Payment {
	return &domain.Payment{
		ID:                 m.ID,
		Status:             domain.PaymentStatus(m.Status),
		CardNumberLastFour: m.CardNumberLastFour,
		ExpiryMonth:        m.ExpiryMonth,
		ExpiryYear:         m.ExpiryYear,
		Currency:           m.Currency,
		Amount:             m.Amount,
		CreatedAt:          m.CreatedAt,
	}
}

// toModel: maps domain entity to stored model
func toModel(p *domain.Payment) PaymentModel {
	return PaymentModel{
		ID:                 p.ID,
		Status:             string(p.Status),
		CardNumberLastFour: p.CardNumberLastFour,
		ExpiryMonth:        p.ExpiryMonth,
		ExpiryYear:         p.ExpiryYear,
		Currency:           p.Currency,
		Amount:             p.Amount,
		CreatedAt:          p.CreatedAt,
	}
}
