package handlers

import (
	"context"
	"net/http"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/api"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/application"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/interfaces/rest"
)

func (h *Handlers) GetPaymentByID(
	ctx context.Context,
	request api.GetPaymentByIDRequestObject,
) (api.GetPaymentByIDResponseObject, error) {

	response, err := h.findPayment(ctx, request.PaymentID)
	if err != nil {
		statusCode, errorResponse := rest.BuildErrorResponse(err)
		h.logFailure(ctx, statusCode, errorResponse, err)

		switch statusCode {
		case http.StatusNotFound:
			return api.GetPaymentByID404JSONResponse(errorResponse), nil
		default:
			return api.GetPaymentByID500JSONResponse(errorResponse), nil
		}
	}

	return api.GetPaymentByID200JSONResponse(response), nil
}

// GetPaymentByIDSingular serves the deprecated /payment/{paymentID} path
func (h *Handlers) GetPaymentByIDSingular(
	ctx context.Context,
	request api.GetPaymentByIDSingularRequestObject,
) (api.GetPaymentByIDSingularResponseObject, error) {

	response, err := h.findPayment(ctx, request.PaymentID)
	if err != nil {
		statusCode, errorResponse := rest.BuildErrorResponse(err)
		h.logFailure(ctx, statusCode, errorResponse, err)

		switch statusCode {
		case http.StatusNotFound:
			return api.GetPaymentByIDSingular404JSONResponse(errorResponse), nil
		default:
			return api.GetPaymentByIDSingular500JSONResponse(errorResponse), nil
		}
	}

	return api.GetPaymentByIDSingular200JSONResponse(response), nil
}

func (h *Handlers) findPayment(ctx context.Context, paymentID api.PaymentID) (api.PaymentResponse, error) {
	payment, err := h.paymentService.GetPaymentByID(ctx, paymentID.String())
	if err != nil {
		return api.PaymentResponse{}, err
	}

	apiPayment, err := rest.ToAPIPayment(payment)
	if err != nil {
		return api.PaymentResponse{}, application.NewInternalError(err)
	}

	return api.PaymentResponse{
		Success: true,
		Data:    apiPayment,
	}, nil
}
