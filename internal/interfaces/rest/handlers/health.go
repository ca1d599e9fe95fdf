package handlers

import (
	"context"
	"net/http"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/api"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/interfaces/rest"
)

func (h *Handlers) GetHealth(
	ctx context.Context,
	request api.GetHealthRequestObject,
) (api.GetHealthResponseObject, error) {
	return api.GetHealth200JSONResponse{Status: "ok"}, nil
}

// GetOpenAPI serves the API description as JSON
func (h *Handlers) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, h.swagger, h.logger)
}
