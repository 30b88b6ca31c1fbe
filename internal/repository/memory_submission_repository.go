package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/llyods/backend/internal/model"
)

// MemorySubmissionRepository keeps submissions in process memory. It backs
// database-less deployments (STORE=memory) and tests. IDs are UUIDs so they
// stay unique under concurrent inserts without a shared counter.
type MemorySubmissionRepository struct {
	mu   sync.Mutex
	subs []*model.ContactSubmission
}

// NewMemorySubmissionRepository creates an empty in-memory repository.
func NewMemorySubmissionRepository() *MemorySubmissionRepository {
	return &MemorySubmissionRepository{}
}

var _ SubmissionRepository = (*MemorySubmissionRepository)(nil)

// Insert assigns a UUID and the current time, then appends a copy of the
// record.
func (r *MemorySubmissionRepository) Insert(ctx context.Context, sub *model.ContactSubmission) error {
	sub.ID = uuid.NewString()
	sub.SubmittedAt = time.Now().UTC()

	stored := *sub
	r.mu.Lock()
	r.subs = append(r.subs, &stored)
	r.mu.Unlock()
	return nil
}

// List returns the most recent submissions, newest first.
func (r *MemorySubmissionRepository) List(ctx context.Context, limit int) ([]*model.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*model.ContactSubmission
	for i := len(r.subs) - 1; i >= 0 && len(out) < limit; i-- {
		s := *r.subs[i]
		out = append(out, &s)
	}
	return out, nil
}

// SchemaStatus always reports ready; there is no schema to create.
func (r *MemorySubmissionRepository) SchemaStatus(ctx context.Context) SchemaStatus {
	return SchemaStatus{Connected: true, TableExists: true}
}

// DeleteOlderThan removes submissions older than the given number of days.
func (r *MemorySubmissionRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.subs[:0]
	var deleted int64
	for _, s := range r.subs {
		if s.SubmittedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, s)
	}
	r.subs = kept
	return deleted, nil
}
