package handler

import (
	"errors"
	"net/http"

	"github.com/sssbpuc/campusd/internal/service"
)

// PortalHandler serves the public portal login endpoint.
type PortalHandler struct {
	portal *service.PortalService
}

// NewPortalHandler creates a new PortalHandler.
func NewPortalHandler(portal *service.PortalService) *PortalHandler {
	return &PortalHandler{portal: portal}
}

type portalLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}

// Login verifies portal credentials.
// POST /api/v1/portal/login
//
// Like the intake endpoint, the response shapes are a published contract
// with the portal login page. The invalid-credential message is identical
// for unknown usernames, wrong passwords, and inactive accounts.
func (h *PortalHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req portalLoginRequest
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "Missing required fields",
		})
		return
	}

	user, err := h.portal.Verify(r.Context(), req.Username, req.Password, req.UserType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"message": "Missing required fields",
			})
		case errors.Is(err, service.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
				"success": false,
				"message": "Invalid username or password",
			})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"success": false,
				"message": "An error occurred",
			})
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    user.Profile(),
	})
}
