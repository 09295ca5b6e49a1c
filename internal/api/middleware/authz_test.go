package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayscape/stayscape/internal/api/middleware"
	"github.com/stayscape/stayscape/internal/user"
)

func setupUsers(t *testing.T) (*user.Service, *user.MemoryRepository) {
	t.Helper()
	repo := user.NewMemoryRepository()
	return user.NewService(repo), repo
}

func adminChain(t *testing.T, users *user.Service, next http.Handler, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	svc := newTokenService(t)

	handler := middleware.Auth(svc)(middleware.RequireAdmin(users)(next))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestRequireAdmin_NoIdentity(t *testing.T) {
	users, _ := setupUsers(t)

	// RequireAdmin wired without Auth in front: nothing in the context.
	var called bool
	handler := middleware.RequireAdmin(users)(okHandler(&called))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestRequireAdmin_UnknownUser(t *testing.T) {
	users, _ := setupUsers(t)
	svc := newTokenService(t)
	raw := issueToken(t, svc, "ghost@x.com")

	var called bool
	w := adminChain(t, users, okHandler(&called), "Bearer "+raw)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, called)
	env := parseErrorResponse(t, w)
	apiErr := env["error"].(map[string]interface{})
	assert.Equal(t, "FORBIDDEN", apiErr["code"])
	assert.Equal(t, "forbidden access", apiErr["message"])
}

func TestRequireAdmin_NonAdminUser(t *testing.T) {
	users, repo := setupUsers(t)
	require.NoError(t, repo.Create(context.Background(), &user.User{Email: "plain@x.com"}))

	svc := newTokenService(t)
	raw := issueToken(t, svc, "plain@x.com")

	var called bool
	w := adminChain(t, users, okHandler(&called), "Bearer "+raw)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, called)
}

func TestRequireAdmin_Admin(t *testing.T) {
	users, repo := setupUsers(t)
	require.NoError(t, repo.Create(context.Background(), &user.User{Email: "boss@x.com", Role: user.RoleAdmin}))

	svc := newTokenService(t)
	raw := issueToken(t, svc, "boss@x.com")

	var called bool
	w := adminChain(t, users, okHandler(&called), "Bearer "+raw)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestRequireAdmin_MissingHeaderShortCircuits(t *testing.T) {
	users, _ := setupUsers(t)

	var called bool
	w := adminChain(t, users, okHandler(&called), "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}
