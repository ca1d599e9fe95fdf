package memory

import (
	"time"
)

// PaymentModel is the stored shape of a payment.
// Rows are values so callers never share memory with the store.
type PaymentModel struct {
	ID                 string
	Status             string
	CardNumberLastFour int
	ExpiryMonth        int
	ExpiryYear         int
	Currency           string
	Amount             int64
	CreatedAt          time.Time
}
