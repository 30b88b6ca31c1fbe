package handler

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"github.com/llyods/backend/internal/repository"
)

// HealthHandler serves the health, diagnostics, and connectivity-test
// endpoints.
type HealthHandler struct {
	env             string
	port            string
	storeConfigured bool
	storeReady      *atomic.Bool
	repo            repository.SubmissionRepository // nil when no store configured
}

// NewHealthHandler creates a HealthHandler. storeReady is flipped by the
// server once background schema initialization finishes.
func NewHealthHandler(env, port string, storeConfigured bool, storeReady *atomic.Bool, repo repository.SubmissionRepository) *HealthHandler {
	return &HealthHandler{
		env:             env,
		port:            port,
		storeConfigured: storeConfigured,
		storeReady:      storeReady,
		repo:            repo,
	}
}

type healthEnvironment struct {
	StoreConfigured bool   `json:"storeConfigured"`
	StoreReady      bool   `json:"storeReady"`
	AppEnv          string `json:"appEnv"`
}

type healthResponse struct {
	Status      string            `json:"status"`
	Timestamp   string            `json:"timestamp"`
	Environment healthEnvironment `json:"environment"`
}

// Health handles GET /api/health. Always 200; degraded state is reported in
// the body, not the status code.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "API is running",
		Timestamp: nowStamp(),
		Environment: healthEnvironment{
			StoreConfigured: h.storeConfigured,
			StoreReady:      h.storeReady.Load(),
			AppEnv:          h.env,
		},
	})
}

type diagnosticsResponse struct {
	Timestamp string `json:"timestamp"`
	Server    struct {
		Running     bool   `json:"running"`
		Port        string `json:"port"`
		Environment string `json:"environment"`
	} `json:"server"`
	Environment struct {
		StoreConfigured bool `json:"storeConfigured"`
	} `json:"environment"`
	Database  repository.SchemaStatus `json:"database"`
	Endpoints map[string]string       `json:"endpoints"`
}

// Diagnostics handles GET /api/diagnostics: a one-shot report of server
// state, configuration, and store schema status.
func (h *HealthHandler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	var resp diagnosticsResponse
	resp.Timestamp = nowStamp()
	resp.Server.Running = true
	resp.Server.Port = h.port
	resp.Server.Environment = h.env
	resp.Environment.StoreConfigured = h.storeConfigured
	resp.Endpoints = map[string]string{
		"track":             "/api/track (POST)",
		"availableTracking": "/api/available-tracking (GET)",
		"contact":           "/api/contact (POST)",
		"contactTest":       "/api/contact-test (POST)",
		"health":            "/api/health (GET)",
		"diagnostics":       "/api/diagnostics (GET)",
	}

	if h.repo != nil {
		resp.Database = h.repo.SchemaStatus(r.Context())
	} else {
		resp.Database = repository.SchemaStatus{Error: "store not configured"}
	}

	writeJSON(w, http.StatusOK, resp)
}

// Echo handles POST /api/test, a basic connectivity check that reflects the
// request body.
func (h *HealthHandler) Echo(w http.ResponseWriter, r *http.Request) {
	var body any
	_ = json.NewDecoder(r.Body).Decode(&body)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Test endpoint works",
		"body":    body,
	})
}
