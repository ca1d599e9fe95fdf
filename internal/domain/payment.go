// Package domain encodes a card payment record and the rules an inbound payment request must satisfy
package domain

import (
	"errors"
	"strconv"
	"time"
)

// PaymentStatus represents the terminal outcome of a payment request
type PaymentStatus string

const (
	StatusAuthorized PaymentStatus = "Authorized"
	StatusDeclined   PaymentStatus = "Declined"
	StatusRejected   PaymentStatus = "Rejected"
)

// Payment is the stored record of a processed payment. It never carries the full card number.
type Payment struct {
	ID                 string
	Status             PaymentStatus
	CardNumberLastFour int
	ExpiryMonth        int
	ExpiryYear         int
	Currency           string
	Amount             int64
	CreatedAt          time.Time
}

// NewPayment builds the record for a request the bank has decided on.
// Only Authorized and Declined payments are ever recorded.
func NewPayment(id string, status PaymentStatus, req PaymentRequest) (*Payment, error) {
	if id == "" {
		return nil, errors.New("payment ID is required")
	}
	if status != StatusAuthorized && status != StatusDeclined {
		return nil, errors.New("payment status must be Authorized or Declined")
	}

	lastFour, err := LastFour(req.CardNumber)
	if err != nil {
		return nil, err
	}

	return &Payment{
		ID:                 id,
		Status:             status,
		CardNumberLastFour: lastFour,
		ExpiryMonth:        req.ExpiryMonth,
		ExpiryYear:         req.ExpiryYear,
		Currency:           req.CurrencyCode(),
		Amount:             req.Amount,
		CreatedAt:          time.Now(),
	}, nil
}

// LastFour returns the numeric value of the final four characters of a card number
func LastFour(cardNumber string) (int, error) {
	if len(cardNumber) < 4 {
		return 0, errors.New("card number is too short")
	}

	lastFour, err := strconv.Atoi(cardNumber[len(cardNumber)-4:])
	if err != nil {
		return 0, errors.New("card number must end in four digits")
	}
	return lastFour, nil
}
