// Package services holds the payment processor: it validates requests, asks the bank for a
// decision and records the outcome.
package services

import (
	"log/slog"
	"time"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/application"
)

type PaymentService struct {
	paymentRepo application.PaymentRepository
	bankClient  application.BankClient
	logger      *slog.Logger
	now         func() time.Time
}

type Option func(*PaymentService)

// WithClock replaces the clock used to decide whether a card has expired
func WithClock(now func() time.Time) Option {
	return func(s *PaymentService) {
		s.now = now
	}
}

func NewPaymentService(
	paymentRepo application.PaymentRepository,
	bankClient application.BankClient,
	logger *slog.Logger,
	opts ...Option,
) *PaymentService {
	s := &PaymentService{
		paymentRepo: paymentRepo,
		bankClient:  bankClient,
		logger:      logger,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
