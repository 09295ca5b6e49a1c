package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/stayscape/stayscape/internal/api/middleware"
	"github.com/stayscape/stayscape/internal/api/response"
	"github.com/stayscape/stayscape/internal/token"
)

// TokenHandler issues bearer credentials from caller-supplied claims.
type TokenHandler struct {
	tokens *token.Service
}

// NewTokenHandler creates a new TokenHandler.
func NewTokenHandler(tokens *token.Service) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Issue handles POST /jwt. The claim body is opaque: whatever the caller
// sends is signed as-is, with only issued-at and expiry added.
func (h *TokenHandler) Issue(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var claims map[string]any
	if err := json.NewDecoder(r.Body).Decode(&claims); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	signed, err := h.tokens.Issue(claims)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue token", requestID)
		return
	}

	response.Success(w, http.StatusOK, tokenResponse{Token: signed}, requestID)
}
