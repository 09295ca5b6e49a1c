package handler

import (
	"log/slog"
	"net/http"

	"github.com/stayscape/stayscape/internal/api/middleware"
	"github.com/stayscape/stayscape/internal/api/response"
	"github.com/stayscape/stayscape/internal/stats"
)

type statsResponse struct {
	Users    int64   `json:"users"`
	Places   int64   `json:"places"`
	Bookings int64   `json:"bookings"`
	Payments int64   `json:"payments"`
	Revenue  float64 `json:"revenue"`
}

// StatsHandler handles the admin dashboard aggregates.
type StatsHandler struct {
	repo stats.Repository
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(repo stats.Repository) *StatsHandler {
	return &StatsHandler{repo: repo}
}

// Get handles GET /admin-stats (admin only).
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	s, err := h.repo.Collect(r.Context())
	if err != nil {
		slog.Error("failed to collect stats", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to collect stats", requestID)
		return
	}

	response.Success(w, http.StatusOK, statsResponse{
		Users:    s.Users,
		Places:   s.Places,
		Bookings: s.Bookings,
		Payments: s.Payments,
		Revenue:  s.Revenue,
	}, requestID)
}
