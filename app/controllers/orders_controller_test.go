package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electro05/storefront/app/controllers"
	"github.com/electro05/storefront/pkg/testkit"
)

func trackingRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/api/orders/{ref}/tracking", controllers.NewOrdersController().Tracking)
	return r
}

func TestTrackingAcceptsFullReference(t *testing.T) {
	mt := testkit.NewMockTransport(t)
	mt.Stub("GET", "/orders/42", 200,
		`{"data":{"id":42,"status":"shipped","total_amount":999,"items":[]}}`)
	defer mt.Install()()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/orders/%23ECO-000042/tracking", nil)
	trackingRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, true, data["found"])
	assert.Equal(t, "#ECO-000042", data["reference"])
	assert.Equal(t, "Colis chargé dans le camion de livraison.", data["message"])
}

func TestTrackingUnknownOrderIsInlineNotError(t *testing.T) {
	mt := testkit.NewMockTransport(t)
	mt.Stub("GET", "/orders/777", 404, `{"message":"Not found"}`)
	defer mt.Install()()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/orders/777/tracking", nil)
	trackingRouter().ServeHTTP(rec, req)

	// The page keeps rendering: 200 with found=false, not an error.
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, false, data["found"])
	assert.Contains(t, data["message"], "introuvable")
	assert.NotContains(t, data, "order", "previous result must not leak through")
}

func TestTrackingGarbageReference(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/orders/abc/tracking", nil)
	trackingRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, false, data["found"])
}

func TestTrackingUpstreamFailure(t *testing.T) {
	mt := testkit.NewMockTransport(t)
	mt.Stub("GET", "/orders/5", 500, `{"message":"boom"}`)
	defer mt.Install()()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/orders/5/tracking", nil)
	trackingRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
