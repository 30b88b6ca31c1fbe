package service

import (
	"strings"

	"github.com/llyods/backend/internal/model"
	"github.com/llyods/backend/internal/repository"
)

// TrackingService resolves tracking numbers against the static shipment set.
type TrackingService interface {
	// Lookup trims and uppercases raw, then performs an exact match. The
	// normalized number is always returned so callers can echo it back; a
	// miss is a normal outcome, not an error.
	Lookup(raw string) (shipment *model.Shipment, normalized string, found bool)

	// Numbers lists every known tracking number.
	Numbers() []string
}

type trackingServiceImpl struct {
	repo repository.ShipmentRepository
}

// NewTrackingService creates a TrackingService over the given shipment set.
func NewTrackingService(repo repository.ShipmentRepository) TrackingService {
	return &trackingServiceImpl{repo: repo}
}

func (s *trackingServiceImpl) Lookup(raw string) (*model.Shipment, string, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	shipment, found := s.repo.Find(normalized)
	return shipment, normalized, found
}

func (s *trackingServiceImpl) Numbers() []string {
	return s.repo.Numbers()
}
