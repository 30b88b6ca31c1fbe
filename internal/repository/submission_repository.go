package repository

import (
	"context"

	"github.com/llyods/backend/internal/model"
)

// SchemaStatus reports whether the backing schema is reachable and ready.
type SchemaStatus struct {
	Connected   bool   `json:"connected"`
	TableExists bool   `json:"tableExists"`
	Error       string `json:"error,omitempty"`
}

// SubmissionRepository defines the persistence capability for contact
// submissions. The service layer treats it as opaque: any backend that
// assigns a unique ID and a server-side timestamp per insert will do.
// Insert must be safe to call concurrently.
type SubmissionRepository interface {
	// Insert durably appends the submission and populates sub.ID and
	// sub.SubmittedAt from the store's own id assignment and clock.
	Insert(ctx context.Context, sub *model.ContactSubmission) error

	// List returns the most recent submissions, newest first.
	List(ctx context.Context, limit int) ([]*model.ContactSubmission, error)

	// SchemaStatus is a lightweight readiness probe of the backing schema.
	SchemaStatus(ctx context.Context) SchemaStatus

	// DeleteOlderThan purges submissions older than the given number of days
	// and returns how many were removed.
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}
