package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/api"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/tests/e2e/testdata"
)

// APIError is a non-2xx answer from the gateway
type APIError struct {
	StatusCode int
	Detail     api.ErrorDetail
}

func (e *APIError) Error() string {
	return fmt.Sprintf("status %d: %s (%s)", e.StatusCode, e.Detail.Message, e.Detail.Code)
}

// TestClient wraps HTTP calls to gateway
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func PaymentRequest(card testdata.TestCard, currency string, amount int64) api.CreatePaymentRequest {
	return api.CreatePaymentRequest{
		CardNumber:  card.CardNumber,
		ExpiryMonth: card.ExpiryMonth,
		ExpiryYear:  card.ExpiryYear,
		Currency:    &currency,
		Amount:      amount,
		Cvv:         card.CVV,
	}
}

// CreatePayment calls POST /payments. Safe to call from any goroutine.
func (c *TestClient) CreatePayment(req api.CreatePaymentRequest) (*api.Payment, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return c.do(httpReq)
}

// GetPayment calls GET /payments/{paymentID}
func (c *TestClient) GetPayment(paymentID string) (*api.Payment, error) {
	httpReq, err := http.NewRequest(http.MethodGet, c.baseURL+"/payments/"+paymentID, nil)
	if err != nil {
		return nil, err
	}

	return c.do(httpReq)
}

func (c *TestClient) do(httpReq *http.Request) (*api.Payment, error) {
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(bodyBytes, &errResp); err != nil {
			return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes))
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Detail: errResp.Error}
	}

	var paymentResp api.PaymentResponse
	if err := json.Unmarshal(bodyBytes, &paymentResp); err != nil {
		return nil, fmt.Errorf("failed to decode payment: %w", err)
	}
	return &paymentResp.Data, nil
}

// Healthy reports whether GET /health answers 200
func (c *TestClient) Healthy() bool {
	resp, err := c.httpClient.Get(c.baseURL + "/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
