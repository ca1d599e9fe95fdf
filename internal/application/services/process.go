package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/application"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
	"github.com/google/uuid"
)

// ProcessPayment validates req, asks the bank for a decision and records the outcome.
// Rejected requests never reach the bank and nothing is stored for them or for bank failures.
func (s *PaymentService) ProcessPayment(ctx context.Context, req domain.PaymentRequest) (*domain.Payment, error) {
	if err := domain.ValidatePaymentRequest(req, s.now()); err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			s.logger.InfoContext(ctx, "payment rejected", "reason", domainErr.Message)
			return nil, application.NewRejectedError(domainErr)
		}
		return nil, application.NewInternalError(err)
	}

	bankResp, err := s.bankClient.Authorize(ctx, application.AuthorizationRequest{
		CardNumber:  req.CardNumber,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		Currency:    req.CurrencyCode(),
		Amount:      req.Amount,
		CVV:         req.CVV,
	})
	if err == nil && bankResp == nil {
		err = fmt.Errorf("%w: empty response", application.ErrBankUnavailable)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "bank authorization failed",
			"error", err,
			"category", application.CategorizeError(err),
		)
		return nil, application.NewBankUnavailableError(err)
	}

	status := domain.StatusDeclined
	if bankResp.Authorized {
		status = domain.StatusAuthorized
	}

	payment, err := domain.NewPayment(uuid.New().String(), status, req)
	if err != nil {
		return nil, application.NewInternalError(err)
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, application.NewInternalError(err)
	}

	s.logger.InfoContext(ctx, "payment processed",
		"payment_id", payment.ID,
		"status", payment.Status,
		"card_last_four", payment.CardNumberLastFour,
	)

	return payment, nil
}
