package api_test

import (
	"context"
	"testing"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/api"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	swagger, err := api.GetSwagger(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, swagger.Paths.Find("/payments"))
	assert.NotNil(t, swagger.Paths.Find("/payments/{paymentID}"))
	assert.NotNil(t, swagger.Paths.Find("/health"))

	payment := swagger.Components.Schemas["Payment"]
	require.NotNil(t, payment)
	assert.Contains(t, payment.Value.Properties, "card_number_last_four")
	assert.NotContains(t, payment.Value.Properties, "card_number")
}

func TestGetSwagger_ErrorCodesCoverEveryApplicationCode(t *testing.T) {
	swagger, err := api.GetSwagger(context.Background())
	require.NoError(t, err)

	detail := swagger.Components.Schemas["ErrorDetail"]
	require.NotNil(t, detail)
	enum := detail.Value.Properties["code"].Value.Enum

	for _, code := range []string{
		application.ErrCodeRejected,
		application.ErrCodeBankUnavailable,
		application.ErrCodePaymentNotFound,
		application.ErrCodeInvalidRequest,
		application.ErrCodeInternal,
		application.ErrCodeTimeout,
		application.ErrCodeNotFound,
	} {
		assert.Contains(t, enum, code)
		assert.True(t, api.ErrorDetailCode(code).Valid(), code)
	}
}

func TestGetSwagger_SingularPathIsDeclared(t *testing.T) {
	swagger, err := api.GetSwagger(context.Background())
	require.NoError(t, err)

	singular := swagger.Paths.Find("/payment/{paymentID}")
	require.NotNil(t, singular)
	require.NotNil(t, singular.Get)
	assert.Equal(t, "getPaymentByIDSingular", singular.Get.OperationID)
	assert.True(t, singular.Get.Deprecated)
}

func TestGetSwagger_CurrencyIsOptional(t *testing.T) {
	swagger, err := api.GetSwagger(context.Background())
	require.NoError(t, err)

	req := swagger.Components.Schemas["CreatePaymentRequest"]
	require.NotNil(t, req)
	assert.NotContains(t, req.Value.Required, "currency")
	assert.Empty(t, req.Value.Properties["currency"].Value.Enum)
}
