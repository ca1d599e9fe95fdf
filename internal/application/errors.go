package application

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
)

// ErrBankUnavailable is the uniform failure of the downstream authorizer
var ErrBankUnavailable = errors.New("bank unavailable")

// ServiceError is the outcome of a failed gateway operation. Code tells the variants apart.
type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeRejected        = domain.ErrCodeRejected
	ErrCodeBankUnavailable = "BANK_UNAVAILABLE"
	ErrCodePaymentNotFound = "PAYMENT_NOT_FOUND"
	ErrCodeInvalidRequest  = "INVALID_REQUEST"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeTimeout         = "TIMEOUT"
	ErrCodeNotFound        = "NOT_FOUND"
)

// MsgRequestTimeout is shown when a request outlives its deadline
const MsgRequestTimeout = "Request timeout"

func NewRejectedError(err *domain.DomainError) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeRejected,
		Message:    err.Message,
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewBankUnavailableError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeBankUnavailable,
		Message:    "Bank unavailable",
		HTTPStatus: http.StatusServiceUnavailable,
		Err:        err,
	}
}

func NewPaymentNotFoundError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodePaymentNotFound,
		Message:    "Payment not found",
		HTTPStatus: http.StatusNotFound,
		Err:        err,
	}
}

func NewInvalidRequestError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidRequest,
		Message:    "Invalid request body",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

// IsErrorCode checks if an error is a ServiceError with a specific code
func IsErrorCode(err error, code string) bool {
	svcErr, ok := IsServiceError(err)
	return ok && svcErr.Code == code
}
