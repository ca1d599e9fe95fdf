package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
)

// ErrorCategory represents the nature of an error for logging and for callers deciding on retries
type ErrorCategory string

const (
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines error category
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeRejected, ErrCodeInvalidRequest, ErrCodePaymentNotFound:
			return CategoryClientError
		case ErrCodeBankUnavailable:
			return CategoryTransient
		default:
			return CategoryInfrastructure
		}
	}

	if domain.IsErrorCode(err, domain.ErrCodeRejected) || errors.Is(err, domain.ErrPaymentNotFound) {
		return CategoryClientError
	}

	if errors.Is(err, ErrBankUnavailable) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	return CategoryInfrastructure
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	switch {
	case domain.IsErrorCode(err, domain.ErrCodeRejected):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrPaymentNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBankUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	switch {
	case domain.IsErrorCode(err, domain.ErrCodeRejected):
		return ErrCodeRejected
	case errors.Is(err, domain.ErrPaymentNotFound):
		return ErrCodePaymentNotFound
	case errors.Is(err, ErrBankUnavailable):
		return ErrCodeBankUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return ErrCodeTimeout
	}

	return ErrCodeInternal
}

// ToErrorMessage returns the message safe to show to API clients.
// Wrapped causes are never exposed.
func ToErrorMessage(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Message
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return MsgRequestTimeout
	}

	return http.StatusText(ToHTTPStatus(err))
}
