package services_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/application"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/application/services"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/application/services/testhelpers"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/infrastructure/bank/mocks"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/infrastructure/persistence/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	paymentRepo *memory.PaymentRepository
	mockBank    *mocks.MockBankClient
	logs        *bytes.Buffer
	service     *services.PaymentService
}

func TestPaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.paymentRepo = memory.NewPaymentRepository()
	suite.mockBank = mocks.NewMockBankClient(suite.T())
	suite.logs = &bytes.Buffer{}

	logger := slog.New(slog.NewTextHandler(suite.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	suite.service = services.NewPaymentService(
		suite.paymentRepo,
		suite.mockBank,
		logger,
		services.WithClock(func() time.Time { return testhelpers.FixedNow }),
	)
}

// ============================================================================
// PROCESS PAYMENT
// ============================================================================

func (suite *PaymentServiceTestSuite) Test_ProcessPayment_Authorized() {
	ctx := context.Background()

	payment := testhelpers.CreatePayment(suite.T(), ctx, suite.service, suite.mockBank,
		testhelpers.DefaultPaymentRequest(), testhelpers.AuthorizedResponse())

	assert.Equal(suite.T(), domain.StatusAuthorized, payment.Status)
	assert.Equal(suite.T(), 1111, payment.CardNumberLastFour)
	assert.Equal(suite.T(), 12, payment.ExpiryMonth)
	assert.Equal(suite.T(), 2099, payment.ExpiryYear)
	assert.Equal(suite.T(), "GBP", payment.Currency)
	assert.Equal(suite.T(), int64(1050), payment.Amount)

	_, err := uuid.Parse(payment.ID)
	assert.NoError(suite.T(), err)

	stored, err := suite.paymentRepo.FindByID(ctx, payment.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), payment, stored)
}

func (suite *PaymentServiceTestSuite) Test_ProcessPayment_Declined() {
	ctx := context.Background()

	payment := testhelpers.CreatePayment(suite.T(), ctx, suite.service, suite.mockBank,
		testhelpers.DefaultPaymentRequest(), testhelpers.DeclinedResponse())

	assert.Equal(suite.T(), domain.StatusDeclined, payment.Status)
	assert.Equal(suite.T(), 1, suite.paymentRepo.Count())
}

func (suite *PaymentServiceTestSuite) Test_ProcessPayment_SendsRequestToBank() {
	ctx := context.Background()
	req := testhelpers.DefaultPaymentRequest()

	suite.mockBank.EXPECT().
		Authorize(mock.Anything, mock.MatchedBy(func(r application.AuthorizationRequest) bool {
			return r.CardNumber == req.CardNumber &&
				r.ExpiryMonth == req.ExpiryMonth &&
				r.ExpiryYear == req.ExpiryYear &&
				r.Currency == req.CurrencyCode() &&
				r.Amount == req.Amount &&
				r.CVV == req.CVV
		})).
		Return(testhelpers.AuthorizedResponse(), nil).
		Once()

	_, err := suite.service.ProcessPayment(ctx, req)
	require.NoError(suite.T(), err)
}

func (suite *PaymentServiceTestSuite) Test_ProcessPayment_BankUnavailable() {
	ctx := context.Background()

	suite.mockBank.EXPECT().
		Authorize(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: connection refused", application.ErrBankUnavailable)).
		Once()

	payment, err := suite.service.ProcessPayment(ctx, testhelpers.DefaultPaymentRequest())

	assert.Nil(suite.T(), payment)
	assert.True(suite.T(), application.IsErrorCode(err, application.ErrCodeBankUnavailable))
	assert.ErrorIs(suite.T(), err, application.ErrBankUnavailable)
	assert.Zero(suite.T(), suite.paymentRepo.Count())
}

func (suite *PaymentServiceTestSuite) Test_ProcessPayment_EmptyBankResponseIsAFault() {
	suite.mockBank.EXPECT().
		Authorize(mock.Anything, mock.Anything).
		Return(nil, nil).
		Once()

	_, err := suite.service.ProcessPayment(context.Background(), testhelpers.DefaultPaymentRequest())

	assert.True(suite.T(), application.IsErrorCode(err, application.ErrCodeBankUnavailable))
	assert.Zero(suite.T(), suite.paymentRepo.Count())
}

func (suite *PaymentServiceTestSuite) Test_ProcessPayment_RejectedNeverCallsBank() {
	tests := []struct {
		name    string
		mutate  func(*domain.PaymentRequest)
		message string
	}{
		{"short card", func(r *domain.PaymentRequest) { r.CardNumber = "123" }, "Rejected: Invalid card number"},
		{"bad month", func(r *domain.PaymentRequest) { r.ExpiryMonth = 13 }, "Rejected: Invalid expiry month"},
		{"expired", func(r *domain.PaymentRequest) { r.ExpiryYear, r.ExpiryMonth = 2026, 9 }, "Rejected: Card has expired"},
		{"bad cvv", func(r *domain.PaymentRequest) { r.CVV = "12" }, "Rejected: CVV must be 3 or 4 digits"},
		{"currency", func(r *domain.PaymentRequest) { r.Currency = testhelpers.Currency("JPY") }, "Rejected: Unsupported currency JPY"},
		{"missing currency", func(r *domain.PaymentRequest) { r.Currency = nil }, "Rejected: Unsupported currency null"},
		{"zero amount", func(r *domain.PaymentRequest) { r.Amount = 0 }, "Rejected: Amount must be greater than 0"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := testhelpers.DefaultPaymentRequest()
			tt.mutate(&req)

			payment, err := suite.service.ProcessPayment(context.Background(), req)

			assert.Nil(suite.T(), payment)
			svcErr, ok := application.IsServiceError(err)
			require.True(suite.T(), ok)
			assert.Equal(suite.T(), application.ErrCodeRejected, svcErr.Code)
			assert.Equal(suite.T(), tt.message, svcErr.Message)
		})
	}

	suite.mockBank.AssertNotCalled(suite.T(), "Authorize", mock.Anything, mock.Anything)
	assert.Zero(suite.T(), suite.paymentRepo.Count())
}

func (suite *PaymentServiceTestSuite) Test_ProcessPayment_CurrentMonthIsNotExpired() {
	req := testhelpers.DefaultPaymentRequest()
	req.ExpiryYear, req.ExpiryMonth = testhelpers.FixedNow.Year(), int(testhelpers.FixedNow.Month())

	payment := testhelpers.CreatePayment(suite.T(), context.Background(), suite.service, suite.mockBank,
		req, testhelpers.AuthorizedResponse())

	assert.Equal(suite.T(), domain.StatusAuthorized, payment.Status)
}

func (suite *PaymentServiceTestSuite) Test_ProcessPayment_DoesNotLogCardDetails() {
	req := testhelpers.DefaultPaymentRequest()
	req.CardNumber = "4000056655665556"

	testhelpers.CreatePayment(suite.T(), context.Background(), suite.service, suite.mockBank,
		req, testhelpers.AuthorizedResponse())

	assert.NotContains(suite.T(), suite.logs.String(), req.CardNumber)
	assert.NotContains(suite.T(), suite.logs.String(), "cvv")
	assert.Contains(suite.T(), suite.logs.String(), "card_last_four=5556")
}

func (suite *PaymentServiceTestSuite) Test_ProcessPayment_IssuesDistinctIDs() {
	ctx := context.Background()
	seen := make(map[string]bool)

	for i := 0; i < 10; i++ {
		payment := testhelpers.CreatePayment(suite.T(), ctx, suite.service, suite.mockBank,
			testhelpers.DefaultPaymentRequest(), testhelpers.DeclinedResponse())
		assert.False(suite.T(), seen[payment.ID], "duplicate payment ID")
		seen[payment.ID] = true
	}
	assert.Equal(suite.T(), 10, suite.paymentRepo.Count())
}

// ============================================================================
// GET PAYMENT
// ============================================================================

func (suite *PaymentServiceTestSuite) Test_GetPaymentByID_Success() {
	ctx := context.Background()
	created := testhelpers.CreatePayment(suite.T(), ctx, suite.service, suite.mockBank,
		testhelpers.DefaultPaymentRequest(), testhelpers.AuthorizedResponse())

	found, err := suite.service.GetPaymentByID(ctx, created.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), created, found)

	again, err := suite.service.GetPaymentByID(ctx, created.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), found, again)
}

func (suite *PaymentServiceTestSuite) Test_GetPaymentByID_NotFound() {
	payment, err := suite.service.GetPaymentByID(context.Background(), uuid.New().String())

	assert.Nil(suite.T(), payment)
	svcErr, ok := application.IsServiceError(err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), application.ErrCodePaymentNotFound, svcErr.Code)
	assert.Equal(suite.T(), "Payment not found", svcErr.Message)
	assert.ErrorIs(suite.T(), err, domain.ErrPaymentNotFound)
}
