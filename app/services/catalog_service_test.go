package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electro05/storefront/app/models"
	"github.com/electro05/storefront/pkg/testkit"
)

func TestProductsPassesFiltersUpstream(t *testing.T) {
	mt := testkit.NewMockTransport(t)
	mt.Stub("GET", "/products", 200, `{"data":[{"id":1,"name":"TV","image":"/storage/tv.png","promo":20}]}`)
	defer mt.Install()()

	products, err := NewCatalogService().Products(context.Background(), ProductQuery{
		Promo:  true,
		Search: "tv",
	})
	require.NoError(t, err)
	require.Len(t, products, 1)

	call := mt.LastCall()
	require.NotNil(t, call)
	assert.Contains(t, call.URL, "promo=1")
	assert.Contains(t, call.URL, "search=tv")
	assert.NotContains(t, call.URL, "brand=", "empty filters are dropped")

	// Relative image refs come back resolved to absolute URLs.
	assert.Contains(t, products[0].Image, "://")
}

func TestProductsUpstreamRefusal(t *testing.T) {
	mt := testkit.NewMockTransport(t)
	mt.Stub("GET", "/products", 500, `{"message":"boom"}`)
	defer mt.Install()()

	_, err := NewCatalogService().Products(context.Background(), ProductQuery{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.StatusCode)
}

func TestOrderByIDNotFound(t *testing.T) {
	mt := testkit.NewMockTransport(t)
	mt.Stub("GET", "/orders/99", 404, `{"message":"Not found"}`)
	defer mt.Install()()

	_, err := NewOrderService().OrderByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestTrackingPayload(t *testing.T) {
	mt := testkit.NewMockTransport(t)
	mt.Stub("GET", "/orders/7", 200,
		`{"data":{"id":7,"status":"processing","total_amount":1500,"items":[]}}`)
	defer mt.Install()()

	payload, err := NewOrderService().Tracking(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "#ECO-000007", payload["reference"])
	assert.Equal(t, false, payload["cancelled"])
	assert.Equal(t, "Colis scanné au centre de tri national.", payload["message"])
	assert.Equal(t, "Sous 2 à 3 jours", payload["delivery_date"])

	steps, ok := payload["steps"].([]TrackingStep)
	require.True(t, ok)
	require.Len(t, steps, 4)
	assert.Equal(t, StepCurrent, steps[1].State)
}

func TestTrackingCancelledOrder(t *testing.T) {
	mt := testkit.NewMockTransport(t)
	mt.Stub("GET", "/orders/8", 200, `{"data":{"id":8,"status":"cancelled"}}`)
	defer mt.Install()()

	payload, err := NewOrderService().Tracking(context.Background(), 8)
	require.NoError(t, err)

	assert.Equal(t, true, payload["cancelled"])
	for _, step := range payload["steps"].([]TrackingStep) {
		assert.Equal(t, StepUpcoming, step.State)
	}
}

func TestCategoryTree(t *testing.T) {
	one, two := 1, 2
	flat := []models.Category{
		{ID: 1, Name: "TV & Image"},
		{ID: 2, Name: "Téléphonie"},
		{ID: 10, Name: "Barres de son", ParentID: &one},
		{ID: 11, Name: "Smartphones", ParentID: &two},
		{ID: 12, Name: "Accessoires", ParentID: &two},
	}

	tree := CategoryTree(flat)
	require.Len(t, tree, 2)
	assert.Equal(t, "TV & Image", tree[0].Name)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "Barres de son", tree[0].Children[0].Name)
	require.Len(t, tree[1].Children, 2)
}

func TestCategoryTreeOrphanSubcategory(t *testing.T) {
	ghost := 99
	tree := CategoryTree([]models.Category{
		{ID: 1, Name: "Root"},
		{ID: 2, Name: "Orphan", ParentID: &ghost},
	})
	require.Len(t, tree, 1)
	assert.Empty(t, tree[0].Children)
}
