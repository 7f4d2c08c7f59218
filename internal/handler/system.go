package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/sssbpuc/campusd/internal/service"
	"github.com/sssbpuc/campusd/internal/store"
)

// adminSessionTTL is how long an issued admin token stays valid.
const adminSessionTTL = 24 * time.Hour

// SystemHandler manages admin sessions and admin account listing.
type SystemHandler struct {
	store   *store.Store
	authSvc *service.AuthService
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(st *store.Store, authSvc *service.AuthService) *SystemHandler {
	return &SystemHandler{store: st, authSvc: authSvc}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"session_token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
	AdminID   string `json:"admin_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
}

// Login authenticates an admin and returns a JWT session token.
// POST /api/v1/system/admin/session
func (h *SystemHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	admin, err := h.store.GetAdminByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "Authentication error")
		return
	}

	if !admin.IsActive {
		writeError(w, http.StatusUnauthorized, "Account is disabled")
		return
	}

	if service.PasswordDigest(req.Password) != admin.PasswordHash {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.authSvc.IssueJWT(r.Context(), admin.ID, admin.Email, adminSessionTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	_ = h.store.UpdateAdminLastLogin(r.Context(), admin.ID)

	writeJSON(w, http.StatusOK, loginResponse{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: int(adminSessionTTL.Seconds()),
		AdminID:   admin.ID,
		Email:     admin.Email,
		Name:      admin.Name,
	})
}

// Logout ends the session. Tokens are stateless, so this is a server-side
// no-op; clients discard their token.
// DELETE /api/v1/system/admin/session
func (h *SystemHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// ListAdmins returns all admin accounts.
// GET /api/v1/admin/admins
func (h *SystemHandler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.store.ListAdmins(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list admins")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"admins": admins})
}
