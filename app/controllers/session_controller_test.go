package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electro05/storefront/app/controllers"
	"github.com/electro05/storefront/app/models"
	"github.com/electro05/storefront/app/services"
	"github.com/electro05/storefront/pkg/testkit"
)

func TestAddToCartPricesFromCatalog(t *testing.T) {
	mt := testkit.NewMockTransport(t)
	mt.Stub("GET", "/products/5", 200,
		`{"data":{"id":5,"name":"Micro-ondes","price":899.0,"image":"/storage/mo.png"}}`)
	defer mt.Install()()

	rec := httptest.NewRecorder()
	// The client-supplied name/price fields do not exist in the input:
	// only product_id and quantity are accepted.
	req := httptest.NewRequest("POST", "/api/cart",
		strings.NewReader(`{"product_id":5,"quantity":2}`))
	withSession(nil, controllers.NewSessionController().AddToCart).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	require.Len(t, items, 1)

	line := items[0].(map[string]interface{})
	assert.Equal(t, "Micro-ondes", line["name"])
	assert.Equal(t, 899.0, line["price"])
	assert.Equal(t, 2.0, line["quantity"])
}

func TestAddToCartRejectsZeroQuantity(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/cart",
		strings.NewReader(`{"product_id":5,"quantity":0}`))
	withSession(nil, controllers.NewSessionController().AddToCart).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestWishlistToggleEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/wishlist/toggle",
		strings.NewReader(`{"product_id":9}`))
	withSession(nil, controllers.NewSessionController().ToggleWishlist).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, true, data["saved"])
}

func TestSetThemeValidatesValue(t *testing.T) {
	ctrl := controllers.NewSessionController()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/session/theme",
		strings.NewReader(`{"theme":"dark"}`))
	withSession(nil, ctrl.SetTheme).ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/api/session/theme",
		strings.NewReader(`{"theme":"sepia"}`))
	withSession(nil, ctrl.SetTheme).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSessionSnapshot(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/session", nil)
	withSession(func(st *services.State) {
		st.SetTheme("dark")
		st.AddToCart(models.CartItem{ProductID: 1, Quantity: 2})
	}, controllers.NewSessionController().Show).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "dark", data["theme"])
	assert.Equal(t, "fr", data["language"])
	assert.Equal(t, false, data["authenticated"])
	assert.Equal(t, false, data["promo_unlocked"])
}
