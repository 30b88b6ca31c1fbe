package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// apiResponse is the JSON envelope every endpoint answers with. Error carries
// a debug string and is populated only outside production mode.
type apiResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Test      string `json:"test,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("failed to encode response", "error", err)
	}
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
