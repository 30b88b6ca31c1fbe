package model

// TrackingEvent is a single entry in a shipment's history. Events are stored
// in non-decreasing date order.
type TrackingEvent struct {
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"desc"`
	Status      string `json:"status"`
}

// Shipment is a static, read-only tracking record. The top-level Status may
// lag or summarize the last event's status; both are preserved verbatim from
// the source dataset and neither is reconciled at read time.
type Shipment struct {
	Number           string          `json:"number"`
	Status           string          `json:"status"`
	Origin           string          `json:"origin"`
	Destination      string          `json:"destination"`
	ExpectedDelivery string          `json:"expectedDelivery"`
	ActualDelivery   *string         `json:"actualDelivery"`
	Weight           string          `json:"weight"`
	Service          string          `json:"service"`
	Type             string          `json:"type"`
	Insurance        string          `json:"insurance"`
	Recipient        string          `json:"recipient"`
	Carrier          string          `json:"carrier"`
	Events           []TrackingEvent `json:"events"`
}
