package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayscape/stayscape/internal/api"
	"github.com/stayscape/stayscape/internal/booking"
	"github.com/stayscape/stayscape/internal/gallery"
	"github.com/stayscape/stayscape/internal/payment"
	"github.com/stayscape/stayscape/internal/place"
	"github.com/stayscape/stayscape/internal/reservation"
	"github.com/stayscape/stayscape/internal/review"
	"github.com/stayscape/stayscape/internal/stats"
	"github.com/stayscape/stayscape/internal/token"
	"github.com/stayscape/stayscape/internal/user"
)

type fakeGateway struct {
	amounts    []int64
	currencies []string
}

func (g *fakeGateway) CreateIntent(_ context.Context, amount int64, currency string) (*payment.Intent, error) {
	g.amounts = append(g.amounts, amount)
	g.currencies = append(g.currencies, currency)
	return &payment.Intent{ID: "pi_test", ClientSecret: "cs_test"}, nil
}

type fakeStats struct {
	summary stats.Summary
}

func (s *fakeStats) Collect(_ context.Context) (*stats.Summary, error) {
	cp := s.summary
	return &cp, nil
}

type fakePinger struct{}

func (fakePinger) Ping(_ context.Context) error { return nil }

type testEnv struct {
	router       http.Handler
	tokens       *token.Service
	users        *user.MemoryRepository
	places       *place.MemoryRepository
	bookings     *booking.MemoryRepository
	reservations *reservation.MemoryRepository
	payments     *payment.MemoryRepository
	gateway      *fakeGateway
}

func newTestEnv(t *testing.T, mutate func(*api.RouterDeps)) *testEnv {
	t.Helper()

	tokens, err := token.NewService([]byte("test-secret"), time.Hour)
	require.NoError(t, err)

	env := &testEnv{
		tokens:       tokens,
		users:        user.NewMemoryRepository(),
		places:       place.NewMemoryRepository(),
		bookings:     booking.NewMemoryRepository(),
		reservations: reservation.NewMemoryRepository(),
		payments:     payment.NewMemoryRepository(),
		gateway:      &fakeGateway{},
	}

	deps := api.RouterDeps{
		Tokens:             tokens,
		Users:              user.NewService(env.users),
		UserRepo:           env.users,
		Places:             env.places,
		Reviews:            review.NewMemoryRepository(),
		Gallery:            gallery.NewMemoryRepository(),
		Bookings:           env.bookings,
		Reservations:       env.reservations,
		Payments:           env.payments,
		PaymentGateway:     env.gateway,
		Stats:              &fakeStats{},
		DBPinger:           fakePinger{},
		Version:            "test",
		GatePlaceWrites:    true,
		EnableReservations: true,
		EnablePayments:     true,
	}
	if mutate != nil {
		mutate(&deps)
	}

	env.router = api.NewRouter(deps)
	return env
}

func (e *testEnv) issue(t *testing.T, email string) string {
	t.Helper()
	raw, err := e.tokens.Issue(map[string]any{"email": email})
	require.NoError(t, err)
	return raw
}

func (e *testEnv) seedUser(t *testing.T, email, role string) {
	t.Helper()
	require.NoError(t, e.users.Create(context.Background(), &user.User{Email: email, Role: role}))
}

func (e *testEnv) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func data(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var env struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Data
}

func dataList(t *testing.T, w *httptest.ResponseRecorder) []any {
	t.Helper()
	var env struct {
		Data []any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Data
}

func TestLiveness(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(t, http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Stayscape API", w.Body.String())
}

func TestGatedRoutesRejectMissingCredential(t *testing.T) {
	env := newTestEnv(t, nil)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users"},
		{http.MethodDelete, "/users/8a31dd4e-6f1a-4e39-9647-90a523a1a59b"},
		{http.MethodGet, "/users/admin/a@b.com"},
		{http.MethodPatch, "/users/admin/8a31dd4e-6f1a-4e39-9647-90a523a1a59b"},
		{http.MethodPost, "/place"},
		{http.MethodGet, "/booking"},
		{http.MethodPost, "/reservation"},
		{http.MethodGet, "/reservation"},
		{http.MethodPost, "/create-payment-intent"},
		{http.MethodPost, "/payment"},
		{http.MethodGet, "/admin-stats"},
	}

	for _, rt := range routes {
		w := env.do(t, rt.method, rt.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", rt.method, rt.path)
	}

	// Handler bodies never ran: nothing reached the store or the gateway.
	places, err := env.places.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, places)
	assert.Empty(t, env.gateway.amounts)
}

func TestRegister_Idempotent(t *testing.T) {
	env := newTestEnv(t, nil)

	first := env.do(t, http.MethodPost, "/users", "", map[string]any{"email": "a@b.com", "name": "A"})
	require.Equal(t, http.StatusCreated, first.Code)
	assert.NotEmpty(t, data(t, first)["insertedId"])

	second := env.do(t, http.MethodPost, "/users", "", map[string]any{"email": "a@b.com", "name": "A"})
	require.Equal(t, http.StatusOK, second.Code)
	d := data(t, second)
	assert.Nil(t, d["insertedId"])
	assert.Equal(t, "user already exists", d["message"])

	all, err := env.users.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAdminStatus_SelfOnly(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedUser(t, "user1@x.com", "")
	raw := env.issue(t, "user1@x.com")

	// Valid credential, someone else's email: rejected before the role read.
	w := env.do(t, http.MethodGet, "/users/admin/user2@x.com", raw, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodGet, "/users/admin/user1@x.com", raw, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, data(t, w)["admin"])
}

func TestAdminStatus_AdminTrue(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedUser(t, "boss@x.com", user.RoleAdmin)
	raw := env.issue(t, "boss@x.com")

	w := env.do(t, http.MethodGet, "/users/admin/boss@x.com", raw, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, data(t, w)["admin"])
}

func TestUserList_RequiresAdminRole(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedUser(t, "plain@x.com", "")
	env.seedUser(t, "boss@x.com", user.RoleAdmin)

	w := env.do(t, http.MethodGet, "/users", env.issue(t, "plain@x.com"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// A credential for an email with no record at all is forbidden the same way.
	w = env.do(t, http.MethodGet, "/users", env.issue(t, "ghost@x.com"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodGet, "/users", env.issue(t, "boss@x.com"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataList(t, w), 2)
}

func TestUserDelete_MissingIDReportsZero(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedUser(t, "boss@x.com", user.RoleAdmin)

	w := env.do(t, http.MethodDelete, "/users/8a31dd4e-6f1a-4e39-9647-90a523a1a59b", env.issue(t, "boss@x.com"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), data(t, w)["deletedCount"])
}

func TestUserPromote_GrantsAdminAccess(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedUser(t, "boss@x.com", user.RoleAdmin)
	env.seedUser(t, "newbie@x.com", "")

	newbie, err := env.users.GetByEmail(context.Background(), "newbie@x.com")
	require.NoError(t, err)

	w := env.do(t, http.MethodPatch, "/users/admin/"+newbie.ID.String(), env.issue(t, "boss@x.com"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), data(t, w)["matchedCount"])

	w = env.do(t, http.MethodGet, "/users", env.issue(t, "newbie@x.com"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserPatch_LastSignInTime(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedUser(t, "a@b.com", "")
	u, err := env.users.GetByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)

	w := env.do(t, http.MethodPatch, "/users/"+u.ID.String(), "", map[string]any{"lastSignInTime": "not-a-time"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid lastSignInTime format.")

	w = env.do(t, http.MethodPatch, "/users/"+u.ID.String(), "", map[string]any{
		"lastSignInTime": "2026-08-30T10:00:00Z",
		"nickname":       "wanderer",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), data(t, w)["matchedCount"])

	updated, err := env.users.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.LastSignInAt)
	assert.Equal(t, "wanderer", updated.Extra["nickname"])
}

func TestPlaceWrites_Gated(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedUser(t, "boss@x.com", user.RoleAdmin)

	body := map[string]any{"name": "Lake Cabin", "newPrice": 120.0, "rating": 4.5}

	w := env.do(t, http.MethodPost, "/place", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/place", env.issue(t, "boss@x.com"), body)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Reads stay open.
	w = env.do(t, http.MethodGet, "/place", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataList(t, w), 1)
}

func TestPlaceWrites_UngatedVariant(t *testing.T) {
	env := newTestEnv(t, func(deps *api.RouterDeps) {
		deps.GatePlaceWrites = false
	})

	w := env.do(t, http.MethodPost, "/place", "", map[string]any{"name": "Lake Cabin", "newPrice": 120.0})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestBookingList_FiltersByEmailQuery(t *testing.T) {
	env := newTestEnv(t, nil)

	for _, email := range []string{"a@b.com", "a@b.com", "c@d.com"} {
		w := env.do(t, http.MethodPost, "/booking", "", map[string]any{"email": email, "guestCount": 2, "price": 50.0})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := env.do(t, http.MethodGet, "/booking?email=a@b.com", env.issue(t, "a@b.com"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataList(t, w), 2)
}

func TestBookingDelete_MissingIDReportsZero(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(t, http.MethodDelete, "/booking/8a31dd4e-6f1a-4e39-9647-90a523a1a59b", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), data(t, w)["deletedCount"])
}

func TestReservation_Scopes(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedUser(t, "boss@x.com", user.RoleAdmin)
	env.seedUser(t, "guest@x.com", "")

	for _, email := range []string{"guest@x.com", "boss@x.com"} {
		w := env.do(t, http.MethodPost, "/reservation", env.issue(t, email), map[string]any{"placeName": "Cabin", "guests": 2})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// Self scope sees only the caller's reservations.
	w := env.do(t, http.MethodGet, "/reservation", env.issue(t, "guest@x.com"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataList(t, w), 1)

	// Admin scope sees everything.
	w = env.do(t, http.MethodGet, "/reservation?scope=all", env.issue(t, "boss@x.com"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataList(t, w), 2)

	// Non-admins cannot widen the scope.
	w = env.do(t, http.MethodGet, "/reservation?scope=all", env.issue(t, "guest@x.com"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreatePaymentIntent_MinorUnits(t *testing.T) {
	env := newTestEnv(t, nil)
	raw := env.issue(t, "payer@x.com")

	w := env.do(t, http.MethodPost, "/create-payment-intent", raw, map[string]any{"price": 10.00})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cs_test", data(t, w)["clientSecret"])

	require.Len(t, env.gateway.amounts, 1)
	assert.Equal(t, int64(1000), env.gateway.amounts[0])
	assert.Equal(t, "usd", env.gateway.currencies[0])
}

func TestPaymentRecordAndList(t *testing.T) {
	env := newTestEnv(t, nil)
	raw := env.issue(t, "payer@x.com")

	w := env.do(t, http.MethodPost, "/payment", raw, map[string]any{
		"email": "payer@x.com", "amount": 120.0, "transactionId": "pi_test", "status": "succeeded",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/payment?email=payer@x.com", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataList(t, w), 1)
}

func TestAdminStats_Gated(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedUser(t, "boss@x.com", user.RoleAdmin)
	env.seedUser(t, "plain@x.com", "")

	w := env.do(t, http.MethodGet, "/admin-stats", env.issue(t, "plain@x.com"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodGet, "/admin-stats", env.issue(t, "boss@x.com"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDisabledVariants(t *testing.T) {
	env := newTestEnv(t, func(deps *api.RouterDeps) {
		deps.EnableReservations = false
		deps.EnablePayments = false
	})
	raw := env.issue(t, "guest@x.com")

	w := env.do(t, http.MethodGet, "/reservation", raw, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodPost, "/create-payment-intent", raw, map[string]any{"price": 10.0})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
