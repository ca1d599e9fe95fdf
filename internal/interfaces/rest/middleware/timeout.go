package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/api"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/application"
)

// Timeout bounds each request. Handlers see the deadline on the request context and
// clients get a JSON TIMEOUT error once it passes.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	body, _ := json.Marshal(api.ErrorResponse{
		Success: false,
		Error: api.ErrorDetail{
			Code:    api.ErrorDetailCode(application.ToErrorCode(context.DeadlineExceeded)),
			Message: application.ToErrorMessage(context.DeadlineExceeded),
		},
	})

	return func(next http.Handler) http.Handler {
		timeoutHandler := http.TimeoutHandler(next, timeout, string(body))

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			w.Header().Set("Content-Type", "application/json")
			timeoutHandler.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
