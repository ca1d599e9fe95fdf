package bank

import (
	"errors"
	"fmt"
)

// BankError is a non-2xx answer from the authorizer
type BankError struct {
	Message    string
	StatusCode int
}

type BankErrorResponse struct {
	ErrorMessage string `json:"errorMessage"`
}

func (e *BankError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("bank error (status: %d)", e.StatusCode)
	}
	return fmt.Sprintf("bank error: %s (status: %d)", e.Message, e.StatusCode)
}

func IsBankError(err error) (*BankError, bool) {
	var bankErr *BankError
	ok := errors.As(err, &bankErr)
	return bankErr, ok
}
