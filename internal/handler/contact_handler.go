package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/llyods/backend/internal/model"
	"github.com/llyods/backend/internal/repository"
	"github.com/llyods/backend/internal/service"
)

// ContactHandler handles contact form submission, the self-test path, and the
// admin listing.
type ContactHandler struct {
	submissions service.SubmissionService
	repo        repository.SubmissionRepository // nil when no store configured
	production  bool
}

// NewContactHandler creates a ContactHandler. repo may be nil; it is only
// used by the admin listing.
func NewContactHandler(submissions service.SubmissionService, repo repository.SubmissionRepository, production bool) *ContactHandler {
	return &ContactHandler{submissions: submissions, repo: repo, production: production}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	timestamp := nowStamp()

	var req model.SubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{
			Success:   false,
			Message:   "Invalid request body",
			Timestamp: timestamp,
		})
		return
	}
	req.SourceAddress = clientIP(r)
	req.UserAgent = r.UserAgent()

	slog.Info("contact form request received",
		"remote", req.SourceAddress,
		"message_length", len(req.Message),
	)

	receipt, err := h.submissions.Submit(r.Context(), req)
	if err != nil {
		h.writeSubmitError(w, err, timestamp, "")
		return
	}

	writeJSON(w, http.StatusCreated, apiResponse{
		Success:   true,
		Message:   "Contact form submitted successfully",
		Timestamp: timestamp,
		Data:      receipt,
	})
}

// SelfTest handles POST /api/contact-test. It runs the full pipeline with the
// service's fixed payload and uses the same status mapping as Submit.
func (h *ContactHandler) SelfTest(w http.ResponseWriter, r *http.Request) {
	timestamp := nowStamp()

	receipt, err := h.submissions.SelfTest(r.Context())
	if err != nil {
		h.writeSubmitError(w, err, timestamp, "failed")
		return
	}

	writeJSON(w, http.StatusCreated, apiResponse{
		Success:   true,
		Message:   "Test contact submission successful",
		Timestamp: timestamp,
		Data:      receipt,
		Test:      "passed",
	})
}

// writeSubmitError maps a submission pipeline error to its HTTP response.
// test tags self-test responses; empty for the normal path.
func (h *ContactHandler) writeSubmitError(w http.ResponseWriter, err error, timestamp, test string) {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		writeJSON(w, http.StatusBadRequest, apiResponse{
			Success:   false,
			Message:   vErr.Message,
			Timestamp: timestamp,
			Test:      test,
		})
		return
	}

	if errors.Is(err, service.ErrStoreNotConfigured) {
		writeJSON(w, http.StatusServiceUnavailable, apiResponse{
			Success:   false,
			Message:   "Database service temporarily unavailable",
			Timestamp: timestamp,
			Test:      test,
		})
		return
	}

	resp := apiResponse{
		Success:   false,
		Message:   "Failed to submit contact form. Please try again later.",
		Timestamp: timestamp,
		Test:      test,
	}
	if !h.production {
		resp.Error = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, resp)
}

// AdminList handles GET /api/admin/submissions. Diagnostic surface; newest
// submissions first.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		writeJSON(w, http.StatusServiceUnavailable, apiResponse{
			Success: false,
			Message: "Database service temporarily unavailable",
		})
		return
	}

	limit := 100
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	subs, err := h.repo.List(r.Context(), limit)
	if err != nil {
		resp := apiResponse{Success: false, Message: "Failed to list submissions"}
		if !h.production {
			resp.Error = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, resp)
		return
	}

	if subs == nil {
		subs = []*model.ContactSubmission{}
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: subs})
}

// clientIP returns the caller's address, honoring the first X-Forwarded-For
// entry when a proxy is in front.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
