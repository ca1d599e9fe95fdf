package services

import (
	"context"
	"errors"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/application"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
)

// GetPaymentByID retrieves a recorded payment
func (s *PaymentService) GetPaymentByID(ctx context.Context, id string) (*domain.Payment, error) {
	s.logger.DebugContext(ctx, "looking up payment", "payment_id", id)

	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			return nil, application.NewPaymentNotFoundError(err)
		}
		return nil, application.NewInternalError(err)
	}

	return payment, nil
}
