package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sssbpuc/campusd/internal/model"
	"github.com/sssbpuc/campusd/internal/store"
)

// StaffHandler serves the public staff directory and its admin CRUD.
type StaffHandler struct {
	store *store.Store
}

// NewStaffHandler creates a new StaffHandler.
func NewStaffHandler(st *store.Store) *StaffHandler {
	return &StaffHandler{store: st}
}

// ListPublic returns active staff ordered for display.
// GET /api/v1/staff
func (h *StaffHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	members, err := h.store.ListStaff(r.Context(), true)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list staff")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"staff": members})
}

// ListAdmin returns the full directory, inactive members included.
// GET /api/v1/admin/staff
func (h *StaffHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	members, err := h.store.ListStaff(r.Context(), false)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list staff")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"staff": members})
}

// staffRequest is the admin payload for creating or updating a member.
type staffRequest struct {
	Name          string `json:"name"`
	Position      string `json:"position"`
	Department    string `json:"department"`
	Qualification string `json:"qualification"`
	PhotoURL      string `json:"photo_url"`
	StaffType     string `json:"staff_type"`
	DisplayOrder  int    `json:"display_order"`
	IsActive      *bool  `json:"is_active"`
}

func (req *staffRequest) validate() string {
	if req.Name == "" {
		return "Name is required"
	}
	if !model.ValidStaffType(req.StaffType) {
		return "Invalid staff_type: " + req.StaffType
	}
	return ""
}

func (req *staffRequest) apply(m *model.StaffMember) {
	m.Name = req.Name
	m.Position = req.Position
	m.Department = req.Department
	m.Qualification = req.Qualification
	m.PhotoURL = req.PhotoURL
	m.StaffType = req.StaffType
	m.DisplayOrder = req.DisplayOrder
	m.IsActive = true
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}
}

// Create adds a staff member.
// POST /api/v1/admin/staff
func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req staffRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	var m model.StaffMember
	req.apply(&m)
	if err := h.store.CreateStaffMember(r.Context(), &m); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create staff member")
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

// Update replaces a staff member's editable fields.
// PUT /api/v1/admin/staff/{id}
func (h *StaffHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req staffRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	id := chi.URLParam(r, "id")
	m, err := h.store.GetStaffMember(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Staff member not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load staff member")
		return
	}

	req.apply(m)
	if err := h.store.UpdateStaffMember(r.Context(), m); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update staff member")
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// SetActive shows or hides a member on the public directory.
// PATCH /api/v1/admin/staff/{id}/active
func (h *StaffHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.store.SetStaffMemberActive(r.Context(), id, req.IsActive); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Staff member not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update staff member")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "is_active": req.IsActive})
}

// Delete removes a staff member.
// DELETE /api/v1/admin/staff/{id}
func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteStaffMember(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Staff member not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete staff member")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"deleted": true})
}
