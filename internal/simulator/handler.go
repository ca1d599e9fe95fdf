// Package simulator is a stand-in acquiring bank for local runs and end-to-end tests.
// Its decision depends only on the last digit of the card number.
package simulator

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Decision int

const (
	DecisionAuthorized Decision = iota
	DecisionDeclined
	DecisionUnavailable
)

// Decide maps a card number to the simulated outcome: a trailing 0 makes the bank
// unavailable, other odd digits authorize and even digits decline.
func Decide(cardNumber string) Decision {
	if cardNumber == "" {
		return DecisionDeclined
	}

	last := cardNumber[len(cardNumber)-1]
	switch {
	case last == '0':
		return DecisionUnavailable
	case last >= '1' && last <= '9' && (last-'0')%2 == 1:
		return DecisionAuthorized
	default:
		return DecisionDeclined
	}
}

type AuthorizeHandler struct {
	logger *slog.Logger
}

func NewAuthorizeHandler(logger *slog.Logger) *AuthorizeHandler {
	return &AuthorizeHandler{logger: logger}
}

// Authorize handles POST /payments
func (h *AuthorizeHandler) Authorize(c *gin.Context) {
	var req AuthorizationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			ErrorMessage: "Not all required properties were sent in the request",
		})
		return
	}

	masked := maskCardNumber(req.CardNumber)

	switch Decide(req.CardNumber) {
	case DecisionUnavailable:
		h.logger.Info("simulating bank outage", "card", masked)
		c.Status(http.StatusServiceUnavailable)
	case DecisionAuthorized:
		h.logger.Info("card authorized", "card", masked)
		c.JSON(http.StatusOK, AuthorizationResponse{
			Authorized:        true,
			AuthorizationCode: uuid.New().String(),
		})
	default:
		h.logger.Info("card declined", "card", masked)
		c.JSON(http.StatusOK, AuthorizationResponse{
			Authorized: false,
		})
	}
}

// maskCardNumber masks all but the last 4 digits for logging
func maskCardNumber(cardNumber string) string {
	if len(cardNumber) < 4 {
		return "****"
	}
	return "****" + cardNumber[len(cardNumber)-4:]
}
