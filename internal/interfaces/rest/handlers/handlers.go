package handlers

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/api"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
	"github.com/getkin/kin-openapi/openapi3"
)

// PaymentService is what the handlers need from the payment processor
type PaymentService interface {
	ProcessPayment(ctx context.Context, req domain.PaymentRequest) (*domain.Payment, error)
	GetPaymentByID(ctx context.Context, id string) (*domain.Payment, error)
}

// Handlers implements the OpenAPI StrictServerInterface
type Handlers struct {
	paymentService PaymentService
	swagger        *openapi3.T
	logger         *slog.Logger
}

func NewHandlers(paymentService PaymentService, swagger *openapi3.T, logger *slog.Logger) *Handlers {
	return &Handlers{
		paymentService: paymentService,
		swagger:        swagger,
		logger:         logger,
	}
}

// Ensure Handlers implements StrictServerInterface
var _ api.StrictServerInterface = (*Handlers)(nil)
