package domain

import (
	"regexp"
	"slices"
	"time"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{14,19}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

// ValidatePaymentRequest checks req against the acceptance rules in a fixed order and
// returns a rejection for the first rule that fails. now decides the current calendar month.
func ValidatePaymentRequest(req PaymentRequest, now time.Time) error {
	if !cardNumberPattern.MatchString(req.CardNumber) {
		return NewRejectionError("Invalid card number")
	}

	if req.ExpiryMonth < 1 || req.ExpiryMonth > 12 {
		return NewRejectionError("Invalid expiry month")
	}

	if IsExpired(req.ExpiryYear, req.ExpiryMonth, now) {
		return NewRejectionError("Card has expired")
	}

	if !cvvPattern.MatchString(req.CVV) {
		return NewRejectionError("CVV must be 3 or 4 digits")
	}

	if req.Currency == nil || !slices.Contains(SupportedCurrencies, *req.Currency) {
		return NewRejectionError("Unsupported currency " + displayCurrency(req.Currency))
	}

	if req.Amount <= 0 {
		return NewRejectionError("Amount must be greater than 0")
	}

	return nil
}

// IsExpired reports whether the card's expiry month lies strictly before the calendar month of now.
// A card stays valid through its whole expiry month.
func IsExpired(year, month int, now time.Time) bool {
	nowYear, nowMonth := now.Year(), int(now.Month())
	return year < nowYear || (year == nowYear && month < nowMonth)
}

// absent currencies are reported the way clients see a JSON null
func displayCurrency(currency *string) string {
	if currency == nil {
		return "null"
	}
	return *currency
}
