package domain

// PaymentRequest is an untrusted payment submission. Amount is in minor units.
// A nil Currency means the client sent none.
type PaymentRequest struct {
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	Currency    *string
	Amount      int64
	CVV         string
}

// SupportedCurrencies are the ISO codes the gateway accepts
var SupportedCurrencies = []string{"USD", "EUR", "GBP"}

// CurrencyCode returns the submitted currency, or "" when none was sent
func (r PaymentRequest) CurrencyCode() string {
	if r.Currency == nil {
		return ""
	}
	return *r.Currency
}
