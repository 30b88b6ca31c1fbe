package service

import (
	"testing"

	"github.com/llyods/backend/internal/model"
)

// stubShipmentRepository serves a fixed map for lookup tests.
type stubShipmentRepository struct {
	shipments map[string]*model.Shipment
}

func (s *stubShipmentRepository) Find(number string) (*model.Shipment, bool) {
	sh, ok := s.shipments[number]
	return sh, ok
}

func (s *stubShipmentRepository) Numbers() []string {
	var out []string
	for n := range s.shipments {
		out = append(out, n)
	}
	return out
}

func newStubTracking() TrackingService {
	return NewTrackingService(&stubShipmentRepository{
		shipments: map[string]*model.Shipment{
			"AB-123": {Number: "AB-123", Status: "In Transit"},
		},
	})
}

func TestTrackingService_Lookup_Found(t *testing.T) {
	svc := newStubTracking()

	shipment, normalized, found := svc.Lookup("AB-123")
	if !found {
		t.Fatal("expected shipment to be found")
	}
	if normalized != "AB-123" {
		t.Errorf("expected normalized AB-123, got %q", normalized)
	}
	if shipment.Status != "In Transit" {
		t.Errorf("unexpected shipment: %+v", shipment)
	}
}

// Lookup is case- and whitespace-insensitive: " ab-123 " and "AB-123" resolve
// identically.
func TestTrackingService_Lookup_Normalizes(t *testing.T) {
	svc := newStubTracking()

	for _, raw := range []string{" ab-123 ", "Ab-123", "\tAB-123\n"} {
		shipment, normalized, found := svc.Lookup(raw)
		if !found {
			t.Errorf("expected %q to resolve", raw)
			continue
		}
		if normalized != "AB-123" {
			t.Errorf("expected normalized AB-123 for %q, got %q", raw, normalized)
		}
		if shipment.Number != "AB-123" {
			t.Errorf("wrong shipment for %q: %+v", raw, shipment)
		}
	}
}

func TestTrackingService_Lookup_NotFound(t *testing.T) {
	svc := newStubTracking()

	shipment, normalized, found := svc.Lookup("  zz-999 ")
	if found {
		t.Fatalf("expected not found, got %+v", shipment)
	}
	// The normalized id is echoed back for the caller's message.
	if normalized != "ZZ-999" {
		t.Errorf("expected normalized ZZ-999, got %q", normalized)
	}
}

// No fuzzy matching: a prefix of a known number is a miss.
func TestTrackingService_Lookup_ExactMatchOnly(t *testing.T) {
	svc := newStubTracking()

	if _, _, found := svc.Lookup("AB-12"); found {
		t.Error("prefix must not resolve")
	}
	if _, _, found := svc.Lookup("AB-1234"); found {
		t.Error("superstring must not resolve")
	}
}
