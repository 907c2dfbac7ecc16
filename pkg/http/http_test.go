package http_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electro05/storefront/pkg/http"
	"github.com/electro05/storefront/pkg/testkit"
)

func TestQuerySkipsEmptyValues(t *testing.T) {
	mt := testkit.NewMockTransport(t)
	mt.Stub("GET", "example.test/items", 200, `{"ok":true}`)
	defer mt.Install()()

	resp, err := http.Get("http://example.test/items").
		Query("search", "tv").
		Query("brand", "").
		Send()
	require.NoError(t, err)
	assert.True(t, resp.OK())

	call := mt.LastCall()
	require.NotNil(t, call)
	assert.Contains(t, call.URL, "search=tv")
	assert.NotContains(t, call.URL, "brand")
}

func TestBearerHeader(t *testing.T) {
	mt := testkit.NewMockTransport(t)
	mt.Stub("GET", "example.test/me", 200, `{}`)
	defer mt.Install()()

	_, err := http.Get("http://example.test/me").Bearer("tok-1").Send()
	require.NoError(t, err)

	call := mt.LastCall()
	assert.Equal(t, "Bearer tok-1", call.Header.Get("Authorization"))
}

func TestMultipartBody(t *testing.T) {
	mt := testkit.NewMockTransport(t)
	mt.Stub("POST", "example.test/upload", 200, `{}`)
	defer mt.Install()()

	_, err := http.Post("http://example.test/upload").
		Field("name", "Climatiseurs").
		File("image", "cat.png", []byte{0x89, 0x50}).
		Send()
	require.NoError(t, err)

	call := mt.LastCall()
	assert.Contains(t, call.Header.Get("Content-Type"), "multipart/form-data")
	assert.Contains(t, call.Body, `name="image"; filename="cat.png"`)
	assert.Contains(t, call.Body, "Climatiseurs")
}

func TestThrowOnErrorStatus(t *testing.T) {
	mt := testkit.NewMockTransport(t)
	mt.Stub("GET", "example.test/fail", 503, `{"message":"down"}`)
	defer mt.Install()()

	resp, err := http.Get("http://example.test/fail").Send()
	require.NoError(t, err, "non-2xx is not a transport error")
	assert.False(t, resp.OK())
	assert.Error(t, resp.Throw())
}
