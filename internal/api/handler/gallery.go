package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/stayscape/stayscape/internal/api/middleware"
	"github.com/stayscape/stayscape/internal/api/response"
	"github.com/stayscape/stayscape/internal/gallery"
)

type galleryRequest struct {
	Email    string `json:"email"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
}

type galleryResponse struct {
	galleryRequest
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}

// GalleryHandler handles trip media endpoints.
type GalleryHandler struct {
	repo gallery.Repository
}

// NewGalleryHandler creates a new GalleryHandler.
func NewGalleryHandler(repo gallery.Repository) *GalleryHandler {
	return &GalleryHandler{repo: repo}
}

// List handles GET /gallery.
func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	items, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("failed to list gallery", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list gallery", requestID)
		return
	}

	out := make([]galleryResponse, 0, len(items))
	for _, item := range items {
		out = append(out, galleryResponse{
			galleryRequest: galleryRequest{
				Email:    item.Email,
				Title:    item.Title,
				ImageURL: item.ImageURL,
			},
			ID:        item.ID.String(),
			CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	response.Success(w, http.StatusOK, out, requestID)
}

// Create handles POST /gallery.
func (h *GalleryHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req galleryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	item := &gallery.Item{
		Email:    req.Email,
		Title:    req.Title,
		ImageURL: req.ImageURL,
	}

	if err := h.repo.Create(r.Context(), item); err != nil {
		slog.Error("failed to create gallery item", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create gallery item", requestID)
		return
	}

	id := item.ID.String()
	response.Success(w, http.StatusCreated, insertResult{InsertedID: &id}, requestID)
}
