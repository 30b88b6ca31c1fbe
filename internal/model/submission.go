package model

import "time"

// ContactSubmission represents a contact form submission persisted by the store.
type ContactSubmission struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Subject       string    `json:"subject"`
	Message       string    `json:"message"`
	SourceAddress string    `json:"ip_address,omitempty"`
	UserAgent     string    `json:"user_agent,omitempty"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// SubmissionRequest carries the raw form fields before validation. The five
// text fields come from the client; SourceAddress and UserAgent are captured
// from the transport layer and are never validated.
type SubmissionRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	SourceAddress string `json:"-"`
	UserAgent     string `json:"-"`
}

// SubmissionReceipt is returned to the caller after a successful insert.
// ID and SubmittedAt are assigned by the store, never by the caller.
type SubmissionReceipt struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	SubmittedAt time.Time `json:"submittedAt"`
}
