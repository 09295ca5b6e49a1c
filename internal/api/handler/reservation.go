package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/stayscape/stayscape/internal/api/middleware"
	"github.com/stayscape/stayscape/internal/api/response"
	"github.com/stayscape/stayscape/internal/reservation"
	"github.com/stayscape/stayscape/internal/user"
)

type reservationRequest struct {
	PlaceName string `json:"placeName"`
	Date      string `json:"date"`
	Guests    int    `json:"guests"`
}

type reservationResponse struct {
	reservationRequest
	ID        string `json:"id"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

func toReservationResponse(res *reservation.Reservation) reservationResponse {
	return reservationResponse{
		reservationRequest: reservationRequest{
			PlaceName: res.PlaceName,
			Date:      res.Date,
			Guests:    res.Guests,
		},
		ID:        res.ID.String(),
		Email:     res.Email,
		Status:    res.Status,
		CreatedAt: res.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ReservationHandler handles reservation endpoints.
type ReservationHandler struct {
	repo  reservation.Repository
	users *user.Service
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(repo reservation.Repository, users *user.Service) *ReservationHandler {
	return &ReservationHandler{repo: repo, users: users}
}

// Create handles POST /reservation. The reservation is recorded for the
// verified identity's email, not a caller-chosen one.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	identity := middleware.GetIdentity(r.Context())
	if identity == nil {
		response.Err(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized Access", requestID)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req reservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	res := &reservation.Reservation{
		Email:     identity.Email,
		PlaceName: req.PlaceName,
		Date:      req.Date,
		Guests:    req.Guests,
	}

	if err := h.repo.Create(r.Context(), res); err != nil {
		slog.Error("failed to create reservation", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create reservation", requestID)
		return
	}

	id := res.ID.String()
	response.Success(w, http.StatusCreated, insertResult{InsertedID: &id}, requestID)
}

// List handles GET /reservation. By default the caller sees their own
// reservations, scoped by the identity email. With ?scope=all the stored
// role must be admin; the two historical routes at this path collapse into
// this one query discriminator.
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	identity := middleware.GetIdentity(r.Context())
	if identity == nil {
		response.Err(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized Access", requestID)
		return
	}

	var (
		reservations []reservation.Reservation
		err          error
	)

	if r.URL.Query().Get("scope") == "all" {
		isAdmin, adminErr := h.users.IsAdmin(r.Context(), identity.Email)
		if adminErr != nil {
			slog.Error("role lookup failed", "error", adminErr, "requestId", requestID)
			response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Authorization failed", requestID)
			return
		}
		if !isAdmin {
			response.Err(w, http.StatusForbidden, "FORBIDDEN", "forbidden access", requestID)
			return
		}
		reservations, err = h.repo.ListAll(r.Context())
	} else {
		reservations, err = h.repo.ListByEmail(r.Context(), identity.Email)
	}

	if err != nil {
		slog.Error("failed to list reservations", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list reservations", requestID)
		return
	}

	items := make([]reservationResponse, 0, len(reservations))
	for i := range reservations {
		items = append(items, toReservationResponse(&reservations[i]))
	}

	response.Success(w, http.StatusOK, items, requestID)
}
