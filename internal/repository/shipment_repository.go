package repository

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/llyods/backend/internal/model"
)

// ShipmentRepository is the read-only capability for tracking records.
// Find takes an already-normalized tracking number; normalization belongs to
// the service layer.
type ShipmentRepository interface {
	Find(number string) (*model.Shipment, bool)
	Numbers() []string
}

//go:embed shipments.json
var shipmentsJSON []byte

// StaticShipmentRepository serves the pre-seeded shipment dataset embedded in
// the binary. The dataset never mutates at runtime, so lookups need no
// locking.
type StaticShipmentRepository struct {
	byNumber map[string]*model.Shipment
}

var _ ShipmentRepository = (*StaticShipmentRepository)(nil)

// NewStaticShipmentRepository decodes the embedded dataset. A decode failure
// means the binary shipped with corrupt seed data and is a build defect, not
// a runtime condition.
func NewStaticShipmentRepository() (*StaticShipmentRepository, error) {
	var shipments []*model.Shipment
	if err := json.Unmarshal(shipmentsJSON, &shipments); err != nil {
		return nil, fmt.Errorf("decode embedded shipment dataset: %w", err)
	}

	byNumber := make(map[string]*model.Shipment, len(shipments))
	for _, s := range shipments {
		byNumber[s.Number] = s
	}
	return &StaticShipmentRepository{byNumber: byNumber}, nil
}

// Find returns the shipment for an exact tracking number match.
func (r *StaticShipmentRepository) Find(number string) (*model.Shipment, bool) {
	s, ok := r.byNumber[number]
	return s, ok
}

// Numbers returns all known tracking numbers in sorted order.
func (r *StaticShipmentRepository) Numbers() []string {
	numbers := make([]string, 0, len(r.byNumber))
	for n := range r.byNumber {
		numbers = append(numbers, n)
	}
	sort.Strings(numbers)
	return numbers
}
