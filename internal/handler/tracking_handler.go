package handler

import (
	"encoding/json"
	"net/http"

	"github.com/llyods/backend/internal/service"
)

// TrackingHandler serves shipment lookups against the seeded dataset.
type TrackingHandler struct {
	tracking service.TrackingService
}

// NewTrackingHandler creates a TrackingHandler with the given service.
func NewTrackingHandler(tracking service.TrackingService) *TrackingHandler {
	return &TrackingHandler{tracking: tracking}
}

// trackRequest is the expected JSON body for POST /api/track.
type trackRequest struct {
	TrackingNumber string `json:"trackingNumber"`
}

// Track handles POST /api/track.
func (h *TrackingHandler) Track(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TrackingNumber == "" {
		writeJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Message: "Tracking number is required",
		})
		return
	}

	shipment, normalized, found := h.tracking.Lookup(req.TrackingNumber)
	if !found {
		writeJSON(w, http.StatusNotFound, apiResponse{
			Success: false,
			Message: "No shipment found for tracking number: " + normalized,
		})
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: shipment})
}

// Available handles GET /api/available-tracking, a diagnostic listing of all
// known tracking numbers.
func (h *TrackingHandler) Available(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Message: "Available tracking numbers for testing:",
		Data:    h.tracking.Numbers(),
	})
}
