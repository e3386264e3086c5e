/*
handlers.go - HTTP handlers for the timesheet approval service

PURPOSE:
  Exposes the supervisor review workflow over REST. Handles HTTP
  request/response, JSON serialization, and delegates to the store and
  the timesheet engine.

ENDPOINTS:
  Public:
    GET    /api/health                   Liveness probe
    GET    /api/supervisors/list         Reviewer display names
    POST   /api/timesheets/submit        Submit a timesheet for review
    POST   /api/auth/login               Supervisor login

  Bearer token required:
    POST   /api/auth/logout              End session (client-side)
    GET    /api/timesheets/{id}          List by status, or get by id
    GET    /api/timesheets/{id}/export   Download as .xlsx
    POST   /api/timesheets/{id}/approve  Approve with signature
    POST   /api/timesheets/{id}/reject   Reject with reason
    DELETE /api/timesheets/{id}          Remove a submission

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 401: Missing/invalid token, bad credentials
  - 404: Submission not found (or already decided)
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - auth.go: Token issuance and the RequireAuth middleware
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/warp/timeclock-engine/approval"
	"github.com/warp/timeclock-engine/report"
	"github.com/warp/timeclock-engine/store/sqlite"
	"github.com/warp/timeclock-engine/timesheet"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store  *sqlite.Store
	Tokens *TokenManager
}

// NewHandler creates a handler over the given store and token manager.
func NewHandler(store *sqlite.Store, tokens *TokenManager) *Handler {
	return &Handler{Store: store, Tokens: tokens}
}

// =============================================================================
// PUBLIC HANDLERS
// =============================================================================

// Health reports liveness.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// ListSupervisors returns the reviewer display names for the client's
// signature dropdown.
// GET /api/supervisors/list
func (h *Handler) ListSupervisors(w http.ResponseWriter, r *http.Request) {
	names, err := h.Store.ListSupervisorNames(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list supervisors", err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, SupervisorsResponse{Supervisors: names})
}

// SubmitTimesheet accepts a filled timesheet and queues it for review.
// POST /api/timesheets/submit
func (h *Handler) SubmitTimesheet(w http.ResponseWriter, r *http.Request) {
	var ts timesheet.Timesheet
	if err := json.NewDecoder(r.Body).Decode(&ts); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid timesheet JSON", err)
		return
	}
	if ts.EmployeeName == "" {
		writeError(w, http.StatusBadRequest, "Employee name is required", nil)
		return
	}
	if ts.PayPeriod == "" || ts.PayPeriod == timesheet.TemplateLabel {
		writeError(w, http.StatusBadRequest, "A dated pay period is required", nil)
		return
	}

	// Totals are recomputed server-side so a stale client cannot submit
	// inconsistent numbers.
	for i := 0; i < timesheet.PeriodDays; i++ {
		ts.Day(i).Recompute()
	}

	sub := &approval.Submission{
		ID:           uuid.New().String(),
		EmployeeName: ts.EmployeeName,
		PayPeriod:    ts.PayPeriod,
		Timesheet:    ts,
		Status:       approval.StatusPending,
		SubmittedAt:  time.Now().UTC(),
	}
	if err := h.Store.InsertSubmission(r.Context(), sub); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to store submission", err)
		return
	}
	writeJSON(w, http.StatusCreated, SubmitResponse{ID: sub.ID})
}

// Login verifies supervisor credentials and returns a session token.
// POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid login JSON", err)
		return
	}

	sup, err := h.Store.GetSupervisor(r.Context(), req.Username)
	if errors.Is(err, sqlite.ErrNotFound) {
		// Same response as a wrong password; don't reveal which.
		writeError(w, http.StatusUnauthorized, "Invalid username or password", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to check credentials", err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(sup.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "Invalid username or password", nil)
		return
	}

	token, err := h.Tokens.Issue(sup.Username, sup.DisplayName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{Token: token, DisplayName: sup.DisplayName})
}

// =============================================================================
// SUPERVISOR HANDLERS (behind RequireAuth)
// =============================================================================

// Logout ends a session. Tokens are stateless, so this just confirms;
// the client discards its copy.
// POST /api/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// GetSubmissions serves both list-by-status and get-by-id: the path
// segment is a status name for lists (pending/approved/rejected) and a
// submission id otherwise.
// GET /api/timesheets/{id}
func (h *Handler) GetSubmissions(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "id")

	if status := approval.Status(key); status.Valid() {
		subs, err := h.Store.ListSubmissionsByStatus(r.Context(), status)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to list submissions", err)
			return
		}
		if subs == nil {
			subs = []approval.Submission{}
		}
		writeJSON(w, http.StatusOK, subs)
		return
	}

	sub, err := h.Store.GetSubmission(r.Context(), key)
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Submission not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load submission", err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

// ApproveSubmission marks a pending submission approved, recording the
// signature image and date the supervisor drew.
// POST /api/timesheets/{id}/approve
func (h *Handler) ApproveSubmission(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid approval JSON", err)
		return
	}
	if req.SupervisorSignature == "" {
		writeError(w, http.StatusBadRequest, "A signature is required to approve", nil)
		return
	}
	if req.SupervisorSignatureDate == "" {
		req.SupervisorSignatureDate = time.Now().Format("1/2/2006")
	}

	err := h.Store.ApproveSubmission(r.Context(), id, req.SupervisorSignature, req.SupervisorSignatureDate)
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, "No pending submission with that id", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to approve submission", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RejectSubmission marks a pending submission rejected with a reason
// the employee will see.
// POST /api/timesheets/{id}/reject
func (h *Handler) RejectSubmission(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid rejection JSON", err)
		return
	}
	if req.Reason == "" {
		writeError(w, http.StatusBadRequest, "A reason is required to reject", nil)
		return
	}

	err := h.Store.RejectSubmission(r.Context(), id, req.Reason)
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, "No pending submission with that id", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reject submission", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteSubmission removes a submission in any state.
// DELETE /api/timesheets/{id}
func (h *Handler) DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.Store.DeleteSubmission(r.Context(), id)
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Submission not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete submission", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExportSubmission downloads a submission as an Excel workbook.
// GET /api/timesheets/{id}/export
func (h *Handler) ExportSubmission(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sub, err := h.Store.GetSubmission(r.Context(), id)
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Submission not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load submission", err)
		return
	}

	buf, filename, err := report.Workbook(sub)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to build workbook", err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
