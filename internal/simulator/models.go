package simulator

// AuthorizationRequest mirrors what the gateway's bank client sends
type AuthorizationRequest struct {
	CardNumber string `json:"card_number" binding:"required"`
	ExpiryDate string `json:"expiry_date" binding:"required"`
	Currency   string `json:"currency" binding:"required"`
	Amount     *int64 `json:"amount" binding:"required"`
	CVV        string `json:"cvv" binding:"required"`
}

type AuthorizationResponse struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code"`
}

type ErrorResponse struct {
	ErrorMessage string `json:"errorMessage"`
}
