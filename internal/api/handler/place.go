package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/stayscape/stayscape/internal/api/middleware"
	"github.com/stayscape/stayscape/internal/api/response"
	"github.com/stayscape/stayscape/internal/api/validation"
	"github.com/stayscape/stayscape/internal/place"
)

type placeRequest struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	OldPrice      float64 `json:"oldPrice"`
	NewPrice      float64 `json:"newPrice"`
	Rating        float64 `json:"rating"`
	Stock         int     `json:"stock"`
	StockQuantity int     `json:"stock_quantity"`
	Featured      bool    `json:"featured"`
	Offer         bool    `json:"offer"`
	Brand         string  `json:"brand"`
	UnitOfMeasure string  `json:"unit_of_measure"`
	Img           string  `json:"img"`
}

type placeResponse struct {
	placeRequest
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}

func toPlaceResponse(p *place.Place) placeResponse {
	return placeResponse{
		placeRequest: placeRequest{
			Name:          p.Name,
			Category:      p.Category,
			Description:   p.Description,
			OldPrice:      p.OldPrice,
			NewPrice:      p.NewPrice,
			Rating:        p.Rating,
			Stock:         p.Stock,
			StockQuantity: p.StockQuantity,
			Featured:      p.Featured,
			Offer:         p.Offer,
			Brand:         p.Brand,
			UnitOfMeasure: p.UnitOfMeasure,
			Img:           p.Img,
		},
		ID:        p.ID.String(),
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// PlaceHandler handles listing endpoints.
type PlaceHandler struct {
	repo place.Repository
}

// NewPlaceHandler creates a new PlaceHandler.
func NewPlaceHandler(repo place.Repository) *PlaceHandler {
	return &PlaceHandler{repo: repo}
}

// List handles GET /place.
func (h *PlaceHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	places, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("failed to list places", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list places", requestID)
		return
	}

	items := make([]placeResponse, 0, len(places))
	for i := range places {
		items = append(items, toPlaceResponse(&places[i]))
	}

	response.Success(w, http.StatusOK, items, requestID)
}

// GetByID handles GET /place/{id}.
func (h *PlaceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID", requestID)
		return
	}

	p, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, place.ErrPlaceNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Place not found", requestID)
			return
		}
		slog.Error("failed to get place", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get place", requestID)
		return
	}

	response.Success(w, http.StatusOK, toPlaceResponse(p), requestID)
}

// Create handles POST /place.
func (h *PlaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	req, ok := h.decode(w, r, requestID)
	if !ok {
		return
	}

	p := &place.Place{
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		OldPrice:      req.OldPrice,
		NewPrice:      req.NewPrice,
		Rating:        req.Rating,
		Stock:         req.Stock,
		StockQuantity: req.StockQuantity,
		Featured:      req.Featured,
		Offer:         req.Offer,
		Brand:         req.Brand,
		UnitOfMeasure: req.UnitOfMeasure,
		Img:           req.Img,
	}

	if err := h.repo.Create(r.Context(), p); err != nil {
		slog.Error("failed to create place", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create place", requestID)
		return
	}

	id := p.ID.String()
	response.Success(w, http.StatusCreated, insertResult{InsertedID: &id}, requestID)
}

// Update handles PATCH /place/{id}: replaces the fixed listing field-set.
func (h *PlaceHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID", requestID)
		return
	}

	req, ok := h.decode(w, r, requestID)
	if !ok {
		return
	}

	n, err := h.repo.Update(r.Context(), id, place.UpdateFields{
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		OldPrice:      req.OldPrice,
		NewPrice:      req.NewPrice,
		Rating:        req.Rating,
		Stock:         req.Stock,
		StockQuantity: req.StockQuantity,
		Featured:      req.Featured,
		Offer:         req.Offer,
		Brand:         req.Brand,
		UnitOfMeasure: req.UnitOfMeasure,
		Img:           req.Img,
	})
	if err != nil {
		slog.Error("failed to update place", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update place", requestID)
		return
	}

	response.Success(w, http.StatusOK, updateResult{MatchedCount: n, ModifiedCount: n}, requestID)
}

// Delete handles DELETE /place/{id}.
func (h *PlaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID", requestID)
		return
	}

	n, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		slog.Error("failed to delete place", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete place", requestID)
		return
	}

	response.Success(w, http.StatusOK, deleteResult{DeletedCount: n}, requestID)
}

func (h *PlaceHandler) decode(w http.ResponseWriter, r *http.Request, requestID string) (placeRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req placeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return req, false
	}

	fieldErrors := validation.ValidatePlaceRequest(validation.PlaceRequest{
		Name:     req.Name,
		NewPrice: req.NewPrice,
		Rating:   req.Rating,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return req, false
	}

	return req, true
}
