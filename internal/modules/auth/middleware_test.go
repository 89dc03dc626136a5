package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, userID int64) string {
	t.Helper()
	claims := &Claims{
		UserID: userID,
		Name:   "Alice",
		Role:   "Warehouse Staff",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtKey)
	require.NoError(t, err)
	return token
}

func protected(t *testing.T) (http.Handler, *int64) {
	var seen int64
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromContext(r.Context())
		require.True(t, ok)
		seen = id
		w.WriteHeader(http.StatusOK)
	}))
	return h, &seen
}

func TestMiddleware_CookieToken(t *testing.T) {
	h, seen := protected(t)

	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: signedToken(t, 7)})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), *seen)
}

func TestMiddleware_BearerToken(t *testing.T) {
	h, seen := protected(t)

	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, 12))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(12), *seen)
}

func TestMiddleware_MissingToken(t *testing.T) {
	h, _ := protected(t)

	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_GarbageToken(t *testing.T) {
	h, _ := protected(t)

	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "not-a-token"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUserIDFromContext_Absent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := UserIDFromContext(req.Context())
	assert.False(t, ok)
}
