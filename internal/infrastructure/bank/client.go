// Package bank is the HTTP client for the downstream card authorizer
package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/application"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/config"
)

type HTTPBankClient struct {
	paymentsURL string
	httpClient  *http.Client
}

func NewBankClient(cfg config.BankConfig) *HTTPBankClient {
	return &HTTPBankClient{
		paymentsURL: strings.TrimRight(cfg.BaseURL, "/") + "/" + strings.TrimLeft(cfg.PaymentsPath, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Authorize asks the bank for a decision. Every failure wraps application.ErrBankUnavailable.
func (c *HTTPBankClient) Authorize(ctx context.Context, req application.AuthorizationRequest) (*application.AuthorizationResponse, error) {
	bankReq := PaymentRequest{
		CardNumber: req.CardNumber,
		ExpiryDate: fmt.Sprintf("%02d/%d", req.ExpiryMonth, req.ExpiryYear),
		Currency:   req.Currency,
		Amount:     req.Amount,
		CVV:        req.CVV,
	}

	bankResp, err := sendRequest[PaymentRequest, PaymentResponse](c, ctx, http.MethodPost, c.paymentsURL, &bankReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", application.ErrBankUnavailable, err)
	}

	return &application.AuthorizationResponse{
		Authorized:        bankResp.Authorized,
		AuthorizationCode: bankResp.AuthorizationCode,
	}, nil
}

func sendRequest[Req any, Resp any](c *HTTPBankClient, ctx context.Context, method, url string, reqBody *Req) (*Resp, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		var bankErrResp BankErrorResponse
		if err := json.Unmarshal(body, &bankErrResp); err != nil {
			return nil, &BankError{Message: strings.TrimSpace(string(body)), StatusCode: resp.StatusCode}
		}
		return nil, &BankError{
			Message:    bankErrResp.ErrorMessage,
			StatusCode: resp.StatusCode,
		}
	}

	var bankResp Resp
	if err := json.NewDecoder(resp.Body).Decode(&bankResp); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	return &bankResp, nil
}
