package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electro05/storefront/pkg/auth"
	"github.com/electro05/storefront/pkg/middleware"
)

func protected(t *testing.T) http.Handler {
	t.Helper()
	return middleware.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromCtx(r.Context())
		require.True(t, ok)
		token, ok := middleware.TokenFromCtx(r.Context())
		require.True(t, ok)
		assert.NotEmpty(t, token)
		w.Write([]byte(claims.Role))
	}))
}

func TestAuthAcceptsValidToken(t *testing.T) {
	token, err := auth.Sign(7, "customer", time.Hour)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/my-orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protected(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "customer", rec.Body.String())
}

func TestAuthRejectsMissingOrMalformedHeader(t *testing.T) {
	for _, header := range []string{"", "Bearer ", "Basic abc", "garbage"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/my-orders", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		protected(t).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	token, err := auth.Sign(7, "customer", -time.Minute)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/my-orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protected(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	handler := middleware.Auth(middleware.RequireRole("admin")(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})))

	adminToken, err := auth.Sign(1, "admin", time.Hour)
	require.NoError(t, err)
	customerToken, err := auth.Sign(2, "customer", time.Hour)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/admin/categories", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/api/admin/categories", nil)
	req.Header.Set("Authorization", "Bearer "+customerToken)
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
