package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/stayscape/stayscape/internal/api/middleware"
	"github.com/stayscape/stayscape/internal/api/response"
	"github.com/stayscape/stayscape/internal/booking"
)

type bookingRequest struct {
	Email      string  `json:"email"`
	PlaceName  string  `json:"placeName"`
	Date       string  `json:"date"`
	GuestCount int     `json:"guestCount"`
	Price      float64 `json:"price"`
}

type bookingPatchRequest struct {
	GuestCount int     `json:"guestCount"`
	Price      float64 `json:"price"`
}

type bookingResponse struct {
	bookingRequest
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}

// BookingHandler handles booking endpoints.
type BookingHandler struct {
	repo booking.Repository
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(repo booking.Repository) *BookingHandler {
	return &BookingHandler{repo: repo}
}

// Create handles POST /booking.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	b := &booking.Booking{
		Email:      req.Email,
		PlaceName:  req.PlaceName,
		Date:       req.Date,
		GuestCount: req.GuestCount,
		Price:      req.Price,
	}

	if err := h.repo.Create(r.Context(), b); err != nil {
		slog.Error("failed to create booking", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking", requestID)
		return
	}

	id := b.ID.String()
	response.Success(w, http.StatusCreated, insertResult{InsertedID: &id}, requestID)
}

// List handles GET /booking: bookings for the email query parameter. The
// route requires a verified credential but, matching the historical API
// surface, does not cross-check the query email against the identity.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	email := r.URL.Query().Get("email")

	bookings, err := h.repo.ListByEmail(r.Context(), email)
	if err != nil {
		slog.Error("failed to list bookings", "error", err, "email", email)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings", requestID)
		return
	}

	items := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, bookingResponse{
			bookingRequest: bookingRequest{
				Email:      b.Email,
				PlaceName:  b.PlaceName,
				Date:       b.Date,
				GuestCount: b.GuestCount,
				Price:      b.Price,
			},
			ID:        b.ID.String(),
			CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	response.Success(w, http.StatusOK, items, requestID)
}

// Update handles PATCH /booking/{id}: replaces guest count and price.
func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID", requestID)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req bookingPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	n, err := h.repo.Update(r.Context(), id, booking.UpdateFields{
		GuestCount: req.GuestCount,
		Price:      req.Price,
	})
	if err != nil {
		slog.Error("failed to update booking", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking", requestID)
		return
	}

	response.Success(w, http.StatusOK, updateResult{MatchedCount: n, ModifiedCount: n}, requestID)
}

// Delete handles DELETE /booking/{id}.
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID", requestID)
		return
	}

	n, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		slog.Error("failed to delete booking", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete booking", requestID)
		return
	}

	response.Success(w, http.StatusOK, deleteResult{DeletedCount: n}, requestID)
}
