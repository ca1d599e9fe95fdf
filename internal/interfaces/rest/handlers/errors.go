package handlers

import (
	"context"
	"net/http"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/api"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/application"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/interfaces/rest"
)

// ParamErrorHandler answers requests whose path parameters do not parse.
// An id that is not a UUID can never have been issued, so it reads as not found.
func (h *Handlers) ParamErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.DebugContext(r.Context(), "invalid path parameter", "error", err)
	rest.WriteError(w, application.NewPaymentNotFoundError(err), h.logger)
}

// RequestErrorHandler answers bodies that are not JSON or are too large
func (h *Handlers) RequestErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.DebugContext(r.Context(), "invalid request body", "error", err)
	rest.WriteError(w, application.NewInvalidRequestError(err), h.logger)
}

// ResponseErrorHandler answers failures raised after a handler returned
func (h *Handlers) ResponseErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	rest.WriteError(w, application.NewInternalError(err), h.logger)
}

func (h *Handlers) logFailure(ctx context.Context, statusCode int, response api.ErrorResponse, err error) {
	if statusCode < http.StatusInternalServerError {
		return
	}

	h.logger.ErrorContext(ctx, "request failed",
		"error", err,
		"code", response.Error.Code,
		"category", application.CategorizeError(err),
	)
}
