package handler

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/stayscape/stayscape/internal/api/middleware"
	"github.com/stayscape/stayscape/internal/api/response"
	"github.com/stayscape/stayscape/internal/api/validation"
	"github.com/stayscape/stayscape/internal/payment"
)

type paymentIntentRequest struct {
	Price float64 `json:"price"`
}

type paymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type paymentRequest struct {
	Email         string  `json:"email"`
	BookingID     string  `json:"bookingId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	TransactionID string  `json:"transactionId"`
	Status        string  `json:"status"`
}

type paymentResponse struct {
	paymentRequest
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}

// PaymentHandler handles payment recording and payment-intent creation.
type PaymentHandler struct {
	repo    payment.Repository
	gateway payment.Gateway
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(repo payment.Repository, gateway payment.Gateway) *PaymentHandler {
	return &PaymentHandler{repo: repo, gateway: gateway}
}

// CreateIntent handles POST /create-payment-intent. The body carries a
// major-unit price; the gateway is called once, synchronously, with the
// minor-unit amount (price * 100, rounded).
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req paymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidatePaymentIntentRequest(validation.PaymentIntentRequest{Price: req.Price})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	amount := int64(math.Round(req.Price * 100))

	intent, err := h.gateway.CreateIntent(r.Context(), amount, "usd")
	if err != nil {
		slog.Error("failed to create payment intent", "error", err, "amount", amount)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create payment intent", requestID)
		return
	}

	response.Success(w, http.StatusOK, paymentIntentResponse{ClientSecret: intent.ClientSecret}, requestID)
}

// Record handles POST /payment: persists a confirmed payment document.
func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	p := &payment.Payment{
		Email:         req.Email,
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		TransactionID: req.TransactionID,
		Status:        req.Status,
	}

	if err := h.repo.Create(r.Context(), p); err != nil {
		slog.Error("failed to record payment", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record payment", requestID)
		return
	}

	id := p.ID.String()
	response.Success(w, http.StatusCreated, insertResult{InsertedID: &id}, requestID)
}

// List handles GET /payment: payments for the email query parameter.
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	email := r.URL.Query().Get("email")

	payments, err := h.repo.ListByEmail(r.Context(), email)
	if err != nil {
		slog.Error("failed to list payments", "error", err, "email", email)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list payments", requestID)
		return
	}

	items := make([]paymentResponse, 0, len(payments))
	for _, p := range payments {
		items = append(items, paymentResponse{
			paymentRequest: paymentRequest{
				Email:         p.Email,
				BookingID:     p.BookingID,
				Amount:        p.Amount,
				Currency:      p.Currency,
				TransactionID: p.TransactionID,
				Status:        p.Status,
			},
			ID:        p.ID.String(),
			CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	response.Success(w, http.StatusOK, items, requestID)
}
