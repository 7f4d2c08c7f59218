package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sssbpuc/campusd/internal/model"
	"github.com/sssbpuc/campusd/internal/service"
	"github.com/sssbpuc/campusd/internal/store"
)

// PortalUserHandler is the admin CRUD surface over portal accounts.
type PortalUserHandler struct {
	store *store.Store
}

// NewPortalUserHandler creates a new PortalUserHandler.
func NewPortalUserHandler(st *store.Store) *PortalUserHandler {
	return &PortalUserHandler{store: st}
}

// portalUserRequest is the admin payload for creating or updating a portal
// user. Password is optional on update; when present it replaces the stored
// digest.
type portalUserRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	FullName   string `json:"full_name"`
	UserType   string `json:"user_type"`
	Email      string `json:"email"`
	Department string `json:"department"`
	IsActive   *bool  `json:"is_active"`
}

// List returns portal users, optionally filtered by type. Password hashes
// never serialize.
// GET /api/v1/admin/portal-users?type=staff
func (h *PortalUserHandler) List(w http.ResponseWriter, r *http.Request) {
	userType := queryString(r, "type")
	if userType != "" && !model.ValidUserType(userType) {
		writeError(w, http.StatusBadRequest, "Invalid user type filter: "+userType)
		return
	}

	users, err := h.store.ListPortalUsers(r.Context(), userType)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list portal users")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

// Create adds a portal user.
// POST /api/v1/admin/portal-users
func (h *PortalUserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req portalUserRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}
	if !model.ValidUserType(req.UserType) {
		writeError(w, http.StatusBadRequest, "Invalid user_type: "+req.UserType)
		return
	}

	u := &model.PortalUser{
		Username:     req.Username,
		PasswordHash: service.PasswordDigest(req.Password),
		FullName:     req.FullName,
		UserType:     req.UserType,
		Email:        req.Email,
		Department:   req.Department,
		IsActive:     true,
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	if err := h.store.CreatePortalUser(r.Context(), u); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create portal user")
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

// Update edits a portal user's profile and optionally resets the password.
// PUT /api/v1/admin/portal-users/{id}
func (h *PortalUserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req portalUserRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" {
		writeError(w, http.StatusBadRequest, "Username is required")
		return
	}
	if !model.ValidUserType(req.UserType) {
		writeError(w, http.StatusBadRequest, "Invalid user_type: "+req.UserType)
		return
	}

	id := chi.URLParam(r, "id")
	u, err := h.store.GetPortalUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Portal user not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load portal user")
		return
	}

	u.Username = req.Username
	u.FullName = req.FullName
	u.UserType = req.UserType
	u.Email = req.Email
	u.Department = req.Department
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	u.PasswordHash = ""
	if req.Password != "" {
		u.PasswordHash = service.PasswordDigest(req.Password)
	}

	if err := h.store.UpdatePortalUser(r.Context(), u); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update portal user")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// SetActive enables or disables a portal account without deleting it.
// PATCH /api/v1/admin/portal-users/{id}/active
func (h *PortalUserHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.store.SetPortalUserActive(r.Context(), id, req.IsActive); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Portal user not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update portal user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "is_active": req.IsActive})
}

// Delete removes a portal account.
// DELETE /api/v1/admin/portal-users/{id}
func (h *PortalUserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeletePortalUser(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Portal user not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete portal user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"deleted": true})
}
