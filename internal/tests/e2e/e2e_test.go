package e2e

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/api"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/application/services"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/config"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/infrastructure/bank"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/infrastructure/persistence/memory"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/simulator"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/tests/e2e/testdata"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type E2ETestSuite struct {
	suite.Suite
	client  *TestClient
	servers []*httptest.Server
}

// TestE2ESuite runs against E2E_GATEWAY_URL when set, otherwise against an
// in-process gateway wired to the bank simulator.
func TestE2ESuite(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

func (suite *E2ETestSuite) SetupSuite() {
	if gatewayURL := os.Getenv("E2E_GATEWAY_URL"); gatewayURL != "" {
		suite.client = NewTestClient(gatewayURL)
		suite.waitForGateway()
		return
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	gin.SetMode(gin.TestMode)
	bankServer := httptest.NewServer(simulator.NewRouter(logger))

	swagger, err := api.GetSwagger(context.Background())
	suite.Require().NoError(err)

	bankClient := bank.NewBankClient(config.BankConfig{
		BaseURL:      bankServer.URL,
		PaymentsPath: "/payments",
		Timeout:      5 * time.Second,
	})
	service := services.NewPaymentService(memory.NewPaymentRepository(), bankClient, logger)
	gateway := httptest.NewServer(handlers.NewRouter(handlers.NewHandlers(service, swagger, logger), 10*time.Second))

	suite.servers = []*httptest.Server{gateway, bankServer}
	suite.client = NewTestClient(gateway.URL)
}

func (suite *E2ETestSuite) TearDownSuite() {
	for _, server := range suite.servers {
		server.Close()
	}
}

func (suite *E2ETestSuite) waitForGateway() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			suite.T().Fatal("Gateway not ready after 30s")
		case <-ticker.C:
			if suite.client.Healthy() {
				return
			}
		}
	}
}

func (suite *E2ETestSuite) requireAPIError(err error, status int, code api.ErrorDetailCode) *APIError {
	var apiErr *APIError
	suite.Require().True(errors.As(err, &apiErr), "expected API error, got %v", err)
	suite.Equal(status, apiErr.StatusCode)
	suite.Equal(code, apiErr.Detail.Code)
	return apiErr
}

func (suite *E2ETestSuite) TestAuthorizedPaymentIsRetrievable() {
	t := suite.T()

	payment, err := suite.client.CreatePayment(PaymentRequest(testdata.AuthorizedCard, "GBP", 1050))
	require.NoError(t, err)
	assert.Equal(t, api.Authorized, payment.Status)
	assert.Equal(t, 1111, payment.CardNumberLastFour)

	found, err := suite.client.GetPayment(payment.Id.String())
	require.NoError(t, err)
	assert.Equal(t, *payment, *found)
}

func (suite *E2ETestSuite) TestDeclinedPaymentIsRecorded() {
	t := suite.T()

	payment, err := suite.client.CreatePayment(PaymentRequest(testdata.DeclinedCard, "USD", 99))
	require.NoError(t, err)
	assert.Equal(t, api.Declined, payment.Status)
	assert.Equal(t, 4444, payment.CardNumberLastFour)

	found, err := suite.client.GetPayment(payment.Id.String())
	require.NoError(t, err)
	assert.Equal(t, api.Declined, found.Status)
}

func (suite *E2ETestSuite) TestBankOutageReturnsServiceUnavailable() {
	_, err := suite.client.CreatePayment(PaymentRequest(testdata.UnavailableCard, "EUR", 500))

	suite.requireAPIError(err, http.StatusServiceUnavailable, api.BANKUNAVAILABLE)
}

func (suite *E2ETestSuite) TestExpiredCardIsRejected() {
	_, err := suite.client.CreatePayment(PaymentRequest(testdata.ExpiredCard, "GBP", 1050))

	apiErr := suite.requireAPIError(err, http.StatusBadRequest, api.REJECTED)
	suite.Equal("Rejected: Card has expired", apiErr.Detail.Message)
}

func (suite *E2ETestSuite) TestUnknownPaymentIsNotFound() {
	_, err := suite.client.GetPayment(uuid.New().String())

	suite.requireAPIError(err, http.StatusNotFound, api.PAYMENTNOTFOUND)
}

func (suite *E2ETestSuite) TestConcurrentPaymentsGetDistinctIDs() {
	t := suite.T()
	const clients = 20

	ids := make(chan string, clients)
	var wg sync.WaitGroup
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			card := testdata.AuthorizedCard
			if i%2 == 0 {
				card = testdata.DeclinedCard
			}
			payment, err := suite.client.CreatePayment(PaymentRequest(card, "GBP", int64(100+i)))
			if err != nil {
				t.Errorf("payment %d: %v", i, err)
				return
			}
			ids <- payment.Id.String()
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate payment id %s", id)
		seen[id] = true

		_, err := suite.client.GetPayment(id)
		assert.NoError(t, err)
	}
	assert.Len(t, seen, clients)
}
