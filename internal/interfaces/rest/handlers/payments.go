package handlers

import (
	"context"
	"net/http"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/api"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/application"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/interfaces/rest"
)

func (h *Handlers) CreatePayment(
	ctx context.Context,
	request api.CreatePaymentRequestObject,
) (api.CreatePaymentResponseObject, error) {

	payment, err := h.paymentService.ProcessPayment(ctx, rest.ToPaymentRequest(*request.Body))
	if err != nil {
		return h.mapCreateServiceErrorToAPIResponse(ctx, err)
	}

	apiPayment, err := rest.ToAPIPayment(payment)
	if err != nil {
		return h.mapCreateServiceErrorToAPIResponse(ctx, application.NewInternalError(err))
	}

	return api.CreatePayment200JSONResponse{
		Success: true,
		Data:    apiPayment,
	}, nil
}

func (h *Handlers) mapCreateServiceErrorToAPIResponse(ctx context.Context, err error) (api.CreatePaymentResponseObject, error) {
	statusCode, errorResponse := rest.BuildErrorResponse(err)
	h.logFailure(ctx, statusCode, errorResponse, err)

	switch statusCode {
	case http.StatusBadRequest:
		return api.CreatePayment400JSONResponse(errorResponse), nil
	case http.StatusServiceUnavailable:
		return api.CreatePayment503JSONResponse(errorResponse), nil
	case http.StatusInternalServerError:
		return api.CreatePayment500JSONResponse(errorResponse), nil
	default:
		return api.CreatePayment500JSONResponse(errorResponse), nil
	}
}
