package handlers

import (
	"net/http"
	"time"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/api"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/interfaces/rest"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/interfaces/rest/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

const maxBodyBytes = 1 << 20

// NewRouter wires the gateway routes behind request id, logging, recovery and timeout middleware
func NewRouter(h *Handlers, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logging(h.logger))
	r.Use(middleware.Recovery(h.logger))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(chimiddleware.RequestSize(maxBodyBytes))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		rest.WriteJSON(w, http.StatusNotFound, notFoundBody, h.logger)
	})

	r.Get("/openapi.json", h.GetOpenAPI)

	strictHandler := api.NewStrictHandlerWithOptions(h, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  h.RequestErrorHandler,
		ResponseErrorHandlerFunc: h.ResponseErrorHandler,
	})

	return api.HandlerWithOptions(strictHandler, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: h.ParamErrorHandler,
	})
}

var notFoundBody = api.ErrorResponse{
	Success: false,
	Error: api.ErrorDetail{
		Code:    api.NOTFOUND,
		Message: "Route not found",
	},
}
