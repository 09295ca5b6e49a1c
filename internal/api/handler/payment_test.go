package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayscape/stayscape/internal/api/handler"
	"github.com/stayscape/stayscape/internal/payment"
)

type recordingGateway struct {
	amounts []int64
	err     error
}

func (g *recordingGateway) CreateIntent(_ context.Context, amount int64, _ string) (*payment.Intent, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.amounts = append(g.amounts, amount)
	return &payment.Intent{ID: "pi_1", ClientSecret: "cs_1"}, nil
}

func postIntent(t *testing.T, h *handler.PaymentHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.CreateIntent(w, req)
	return w
}

func TestCreateIntent_ConvertsToMinorUnits(t *testing.T) {
	cases := []struct {
		price string
		want  int64
	}{
		{"10.00", 1000},
		{"10", 1000},
		{"0.5", 50},
		{"19.99", 1999},
		{"10.555", 1056},
	}

	for _, tc := range cases {
		gw := &recordingGateway{}
		h := handler.NewPaymentHandler(payment.NewMemoryRepository(), gw)

		w := postIntent(t, h, `{"price": `+tc.price+`}`)

		require.Equal(t, http.StatusOK, w.Code, "price %s", tc.price)
		require.Len(t, gw.amounts, 1)
		assert.Equal(t, tc.want, gw.amounts[0], "price %s", tc.price)
	}
}

func TestCreateIntent_RejectsNonPositivePrice(t *testing.T) {
	gw := &recordingGateway{}
	h := handler.NewPaymentHandler(payment.NewMemoryRepository(), gw)

	for _, body := range []string{`{"price": 0}`, `{"price": -5}`, `{}`} {
		w := postIntent(t, h, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
	assert.Empty(t, gw.amounts, "gateway must not be called for invalid input")
}

func TestCreateIntent_InvalidJSON(t *testing.T) {
	gw := &recordingGateway{}
	h := handler.NewPaymentHandler(payment.NewMemoryRepository(), gw)

	w := postIntent(t, h, `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, gw.amounts)
}
