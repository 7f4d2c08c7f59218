package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sssbpuc/campusd/internal/model"
	"github.com/sssbpuc/campusd/internal/service"
	"github.com/sssbpuc/campusd/internal/store"
)

// AdmissionHandler serves the public intake endpoint and the admin review
// endpoints over admission submissions.
type AdmissionHandler struct {
	intake *service.IntakeService
	store  *store.Store
}

// NewAdmissionHandler creates a new AdmissionHandler.
func NewAdmissionHandler(intake *service.IntakeService, st *store.Store) *AdmissionHandler {
	return &AdmissionHandler{intake: intake, store: st}
}

// submitRequest is the public intake payload. FormData is a pointer so a
// missing key is distinguishable from an empty form.
type submitRequest struct {
	FormData *model.AdmissionForm `json:"formData"`
}

// Submit accepts one admission application, subject to the rolling
// per-(origin, email) quota.
// POST /api/v1/admissions
//
// The response shapes here are a published contract with the admission form
// and predate the admin API's error envelope; they must stay flat.
func (h *AdmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := readJSON(r, &req); err != nil || req.FormData == nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": "No form data provided",
		})
		return
	}

	id, err := h.intake.Submit(r.Context(), req.FormData, clientIP(r))
	if err != nil {
		var rle *service.RateLimitedError
		switch {
		case errors.Is(err, service.ErrNoFormData):
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error": "No form data provided",
			})
		case errors.As(err, &rle):
			writeJSON(w, http.StatusTooManyRequests, map[string]interface{}{
				"error": "Too many submissions",
				"message": fmt.Sprintf(
					"You have exceeded the submission limit. Please try again in %d minutes.",
					rle.RetryAfterMinutes),
				"rateLimited": true,
			})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"error":   "Failed to submit application",
				"details": err.Error(),
			})
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"id":      id,
	})
}

// List returns submissions newest first, optionally filtered by status.
// GET /api/v1/admin/submissions?status=pending
func (h *AdmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	status := queryString(r, "status")
	if status != "" && !model.ValidStatus(status) {
		writeError(w, http.StatusBadRequest, "Invalid status filter: "+status)
		return
	}

	subs, err := h.store.ListSubmissions(r.Context(), status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list submissions")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"submissions": subs})
}

// Get returns one submission.
// GET /api/v1/admin/submissions/{id}
func (h *AdmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sub, err := h.store.GetSubmission(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Submission not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load submission")
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

// UpdateStatus moves a submission through the review workflow.
// PATCH /api/v1/admin/submissions/{id}/status
func (h *AdmissionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !model.ValidStatus(req.Status) {
		writeError(w, http.StatusBadRequest, "Invalid status: "+req.Status)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.store.UpdateSubmissionStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Submission not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update status")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "status": req.Status})
}

// Delete removes a submission.
// DELETE /api/v1/admin/submissions/{id}
func (h *AdmissionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteSubmission(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Submission not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete submission")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"deleted": true})
}
