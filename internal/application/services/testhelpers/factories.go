package testhelpers

import (
	"context"
	"testing"
	"time"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/application"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/application/services"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/infrastructure/bank/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// FixedNow is the clock tests run the processor against
var FixedNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

// DefaultPaymentRequest returns a request that passes validation at FixedNow
func DefaultPaymentRequest() domain.PaymentRequest {
	return domain.PaymentRequest{
		CardNumber:  "4111111111111111",
		ExpiryMonth: 12,
		ExpiryYear:  2099,
		Currency:    Currency("GBP"),
		Amount:      1050,
		CVV:         "123",
	}
}

func Currency(code string) *string {
	return &code
}

func AuthorizedResponse() *application.AuthorizationResponse {
	return &application.AuthorizationResponse{
		Authorized:        true,
		AuthorizationCode: uuid.New().String(),
	}
}

func DeclinedResponse() *application.AuthorizationResponse {
	return &application.AuthorizationResponse{Authorized: false}
}

// CreatePayment runs a request through the processor with the bank answering resp
func CreatePayment(
	t *testing.T,
	ctx context.Context,
	service *services.PaymentService,
	mockBank *mocks.MockBankClient,
	req domain.PaymentRequest,
	resp *application.AuthorizationResponse,
) *domain.Payment {
	t.Helper()

	mockBank.EXPECT().
		Authorize(mock.Anything, mock.Anything).
		Return(resp, nil).
		Once()

	payment, err := service.ProcessPayment(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, payment)

	return payment
}
