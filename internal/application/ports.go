package application

import (
	"context"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
)

// BankClient is the port for the downstream authorizer.
// Any failure to obtain a decision is reported as an error wrapping ErrBankUnavailable.
type BankClient interface {
	Authorize(ctx context.Context, req AuthorizationRequest) (*AuthorizationResponse, error)
}

// PaymentRepository is the port for payment storage.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	FindByID(ctx context.Context, id string) (*domain.Payment, error)
}

type AuthorizationRequest struct {
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	Currency    string
	Amount      int64
	CVV         string
}

// AuthorizationResponse is the bank's decision. AuthorizationCode is accepted but not stored.
type AuthorizationResponse struct {
	Authorized        bool
	AuthorizationCode string
}
