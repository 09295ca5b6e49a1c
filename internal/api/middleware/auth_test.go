package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayscape/stayscape/internal/api/middleware"
	"github.com/stayscape/stayscape/internal/token"
)

const testSecret = "test-secret"

func newTokenService(t *testing.T) *token.Service {
	t.Helper()
	svc, err := token.NewService([]byte(testSecret), time.Hour)
	require.NoError(t, err)
	return svc
}

func issueToken(t *testing.T, svc *token.Service, email string) string {
	t.Helper()
	raw, err := svc.Issue(map[string]any{"email": email})
	require.NoError(t, err)
	return raw
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func parseErrorResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var env map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &env)
	require.NoError(t, err)
	return env
}

func TestAuth_MissingHeader(t *testing.T) {
	svc := newTokenService(t)

	var called bool
	handler := middleware.Auth(svc)(okHandler(&called))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called, "handler body must not execute")
	env := parseErrorResponse(t, w)
	apiErr := env["error"].(map[string]interface{})
	assert.Equal(t, "UNAUTHORIZED", apiErr["code"])
	assert.Equal(t, "Unauthorized Access", apiErr["message"])
}

func TestAuth_HeaderWithoutToken(t *testing.T) {
	svc := newTokenService(t)

	for _, header := range []string{"Bearer", "   ", "Bearer "} {
		var called bool
		handler := middleware.Auth(svc)(okHandler(&called))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.False(t, called, "header %q", header)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	svc := newTokenService(t)

	var called bool
	handler := middleware.Auth(svc)(okHandler(&called))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestAuth_ExpiredToken(t *testing.T) {
	svc := newTokenService(t)

	claims := jwt.MapClaims{
		"email": "e@x.com",
		"iat":   time.Now().Add(-2 * time.Hour).Unix(),
		"exp":   time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	var called bool
	handler := middleware.Auth(svc)(okHandler(&called))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
	env := parseErrorResponse(t, w)
	apiErr := env["error"].(map[string]interface{})
	assert.Equal(t, "Unauthorized Access", apiErr["message"])
}

func TestAuth_ValidToken(t *testing.T) {
	svc := newTokenService(t)
	raw := issueToken(t, svc, "e@x.com")

	var gotEmail string
	handler := middleware.Auth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := middleware.GetIdentity(r.Context())
		require.NotNil(t, identity)
		gotEmail = identity.Email
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "e@x.com", gotEmail)
}

func TestAuth_SchemeNameNotValidated(t *testing.T) {
	svc := newTokenService(t)
	raw := issueToken(t, svc, "e@x.com")

	var called bool
	handler := middleware.Auth(svc)(okHandler(&called))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Whatever "+raw)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestGetIdentity_Absent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, middleware.GetIdentity(req.Context()))
}
