package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electro05/storefront/app/models"
	"github.com/electro05/storefront/pkg/http"
)

func TestDecodePayloadEnvelopeAndBare(t *testing.T) {
	wrapped := &http.Response{StatusCode: 200, Raw: []byte(`{"data":[{"id":1,"name":"TV"}]}`)}
	bare := &http.Response{StatusCode: 200, Raw: []byte(`[{"id":1,"name":"TV"}]`)}

	var fromWrapped, fromBare []models.Product
	require.NoError(t, decodePayload(wrapped, &fromWrapped))
	require.NoError(t, decodePayload(bare, &fromBare))

	assert.Equal(t, fromWrapped, fromBare)
	require.Len(t, fromWrapped, 1)
	assert.Equal(t, "TV", fromWrapped[0].Name)
}

func TestDecodePayloadObject(t *testing.T) {
	wrapped := &http.Response{StatusCode: 200, Raw: []byte(`{"data":{"id":9,"status":"shipped"}}`)}

	var order models.Order
	require.NoError(t, decodePayload(wrapped, &order))
	assert.Equal(t, 9, order.ID)
	assert.Equal(t, models.StatusShipped, order.Status)
}

func TestAPIFailureValidation(t *testing.T) {
	resp := &http.Response{
		StatusCode: 422,
		Raw:        []byte(`{"message":"The given data was invalid.","errors":{"email":["email already taken"],"name":"too short"}}`),
	}

	err := apiFailure(resp)
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "email already taken", verrs["email"])
	assert.Equal(t, "too short", verrs["name"])
}

func TestAPIFailurePlainError(t *testing.T) {
	resp := &http.Response{StatusCode: 503, Raw: []byte(`{"message":"maintenance"}`)}

	err := apiFailure(resp)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 503, apiErr.StatusCode)
	assert.Equal(t, "maintenance", apiErr.Message)
}

func TestAPIFailureUnparseableBody(t *testing.T) {
	resp := &http.Response{StatusCode: 500, Raw: []byte(`<html>boom</html>`)}

	err := apiFailure(resp)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 500, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Message)
}
