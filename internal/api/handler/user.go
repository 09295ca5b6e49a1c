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
	"github.com/stayscape/stayscape/internal/api/validation"
	"github.com/stayscape/stayscape/internal/user"
)

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl"`
}

type userResponse struct {
	ID             string         `json:"id"`
	Email          string         `json:"email"`
	Name           string         `json:"name,omitempty"`
	PhotoURL       string         `json:"photoUrl,omitempty"`
	Role           string         `json:"role,omitempty"`
	LastSignInTime *string        `json:"lastSignInTime,omitempty"`
	Extra          map[string]any `json:"extra,omitempty"`
	CreatedAt      string         `json:"createdAt"`
}

type adminStatusResponse struct {
	Admin bool `json:"admin"`
}

func toUserResponse(u *user.User) userResponse {
	resp := userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		PhotoURL:  u.PhotoURL,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
	if len(u.Extra) > 0 {
		resp.Extra = u.Extra
	}
	if u.LastSignInAt != nil {
		t := u.LastSignInAt.UTC().Format(time.RFC3339)
		resp.LastSignInTime = &t
	}
	return resp
}

// UserHandler handles account endpoints.
type UserHandler struct {
	users *user.Service
	repo  user.Repository
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *user.Service, repo user.Repository) *UserHandler {
	return &UserHandler{users: users, repo: repo}
}

// Register handles POST /users. Registration is idempotent per email: the
// first call persists the record, a repeat reports the existing state with
// a null insertedId instead of erroring.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateRegisterRequest(validation.RegisterRequest{Email: req.Email})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	u := &user.User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	}

	created, existing, err := h.users.Register(r.Context(), u)
	if err != nil {
		slog.Error("failed to register user", "error", err, "email", req.Email)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register user", requestID)
		return
	}

	if !created {
		response.Success(w, http.StatusOK, insertResult{
			InsertedID: nil,
			Message:    "user already exists",
		}, requestID)
		return
	}

	id := existing.ID.String()
	response.Success(w, http.StatusCreated, insertResult{InsertedID: &id}, requestID)
}

// List handles GET /users (admin only).
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	users, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("failed to list users", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list users", requestID)
		return
	}

	items := make([]userResponse, 0, len(users))
	for i := range users {
		items = append(items, toUserResponse(&users[i]))
	}

	response.Success(w, http.StatusOK, items, requestID)
}

// AdminStatus handles GET /users/admin/{email}. The path email must match
// the verified identity exactly before any role lookup happens, so a valid
// credential cannot be used to probe another identity's admin status.
func (h *UserHandler) AdminStatus(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	email := chi.URLParam(r, "emailOrID")
	identity := middleware.GetIdentity(r.Context())
	if identity == nil {
		response.Err(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized Access", requestID)
		return
	}
	if email != identity.Email {
		response.Err(w, http.StatusForbidden, "FORBIDDEN", "forbidden access", requestID)
		return
	}

	isAdmin, err := h.users.IsAdmin(r.Context(), email)
	if err != nil {
		slog.Error("failed to check admin status", "error", err, "email", email)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check admin status", requestID)
		return
	}

	response.Success(w, http.StatusOK, adminStatusResponse{Admin: isAdmin}, requestID)
}

// Delete handles DELETE /users/{id} (admin only). A missing id reports a
// zero deleted count rather than an error.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID", requestID)
		return
	}

	n, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		slog.Error("failed to delete user", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete user", requestID)
		return
	}

	response.Success(w, http.StatusOK, deleteResult{DeletedCount: n}, requestID)
}

// Patch handles PATCH /users/{id}. The endpoint accepts an open partial
// update: recognized fields land in their columns, everything else is
// merged into the extra document. lastSignInTime must parse as RFC 3339.
func (h *UserHandler) Patch(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID", requestID)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	var patch user.Patch
	for k, v := range body {
		switch k {
		case "lastSignInTime":
			s, ok := v.(string)
			if !ok {
				response.Err(w, http.StatusBadRequest, "INVALID_TIMESTAMP", "Invalid lastSignInTime format.", requestID)
				return
			}
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				response.Err(w, http.StatusBadRequest, "INVALID_TIMESTAMP", "Invalid lastSignInTime format.", requestID)
				return
			}
			patch.LastSignInAt = &t
		case "name":
			if s, ok := v.(string); ok {
				patch.Name = &s
				continue
			}
			addExtra(&patch, k, v)
		case "photoUrl":
			if s, ok := v.(string); ok {
				patch.PhotoURL = &s
				continue
			}
			addExtra(&patch, k, v)
		case "role":
			// The open patch accepts arbitrary fields; role is reachable here.
			if s, ok := v.(string); ok {
				patch.Role = &s
				continue
			}
			addExtra(&patch, k, v)
		default:
			addExtra(&patch, k, v)
		}
	}

	n, err := h.repo.Update(r.Context(), id, patch)
	if err != nil {
		slog.Error("failed to patch user", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update user", requestID)
		return
	}

	response.Success(w, http.StatusOK, updateResult{MatchedCount: n, ModifiedCount: n}, requestID)
}

// Promote handles PATCH /users/admin/{id} (admin only): sets role=admin.
func (h *UserHandler) Promote(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "emailOrID"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID", requestID)
		return
	}

	n, err := h.users.Promote(r.Context(), id)
	if err != nil {
		slog.Error("failed to promote user", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to promote user", requestID)
		return
	}

	response.Success(w, http.StatusOK, updateResult{MatchedCount: n, ModifiedCount: n}, requestID)
}

func addExtra(p *user.Patch, k string, v any) {
	if p.Extra == nil {
		p.Extra = map[string]any{}
	}
	p.Extra[k] = v
}
