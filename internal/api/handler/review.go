package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/stayscape/stayscape/internal/api/middleware"
	"github.com/stayscape/stayscape/internal/api/response"
	"github.com/stayscape/stayscape/internal/review"
)

type reviewRequest struct {
	Email   string  `json:"email"`
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

type reviewResponse struct {
	reviewRequest
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}

// ReviewHandler handles review endpoints.
type ReviewHandler struct {
	repo review.Repository
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(repo review.Repository) *ReviewHandler {
	return &ReviewHandler{repo: repo}
}

// List handles GET /reviews.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	reviews, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("failed to list reviews", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list reviews", requestID)
		return
	}

	items := make([]reviewResponse, 0, len(reviews))
	for _, rev := range reviews {
		items = append(items, reviewResponse{
			reviewRequest: reviewRequest{
				Email:   rev.Email,
				Name:    rev.Name,
				Rating:  rev.Rating,
				Comment: rev.Comment,
			},
			ID:        rev.ID.String(),
			CreatedAt: rev.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	response.Success(w, http.StatusOK, items, requestID)
}

// Create handles POST /reviews.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	rev := &review.Review{
		Email:   req.Email,
		Name:    req.Name,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := h.repo.Create(r.Context(), rev); err != nil {
		slog.Error("failed to create review", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create review", requestID)
		return
	}

	id := rev.ID.String()
	response.Success(w, http.StatusCreated, insertResult{InsertedID: &id}, requestID)
}
