package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electro05/storefront/app/controllers"
	"github.com/electro05/storefront/pkg/testkit"
)

const validContact = `{
	"name": "Yassine El Amrani",
	"email": "yassine@example.com",
	"subject": "Livraison",
	"message": "Bonjour, où en est ma commande ?"
}`

func TestContactSend(t *testing.T) {
	mt := testkit.NewMockTransport(t)
	mt.Stub("POST", "/contact", 200, `{"success":true,"message":"Message envoyé avec succès."}`)
	defer mt.Install()()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(validContact))
	controllers.NewContactController().Send(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Message envoyé avec succès.", decodeBody(t, rec)["message"])
	mt.AssertAllCalled()

	call := mt.LastCall()
	require.NotNil(t, call)
	assert.Contains(t, call.Body, "yassine@example.com")
}

func TestContactLocalValidationBlocksSubmit(t *testing.T) {
	mt := testkit.NewMockTransport(t)
	defer mt.Install()()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/contact",
		strings.NewReader(`{"name":"Ab","email":"bad","subject":"x","message":"court"}`))
	controllers.NewContactController().Send(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, mt.Calls, "invalid input must never reach the remote API")

	errs := decodeBody(t, rec)["errors"].(map[string]interface{})
	for _, field := range []string{"name", "email", "subject", "message"} {
		assert.Contains(t, errs, field)
	}
}

func TestContactServerSideRejection(t *testing.T) {
	mt := testkit.NewMockTransport(t)
	mt.Stub("POST", "/contact", 422,
		`{"success":false,"errors":{"email":["adresse bloquée"]}}`)
	defer mt.Install()()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(validContact))
	controllers.NewContactController().Send(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errs := decodeBody(t, rec)["errors"].(map[string]interface{})
	assert.Equal(t, "adresse bloquée", errs["email"])
}

func TestContactMalformedJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(`{`))
	controllers.NewContactController().Send(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
