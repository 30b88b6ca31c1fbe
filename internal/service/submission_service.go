package service

import (
	"context"

	"github.com/llyods/backend/internal/model"
)

// SubmissionService defines the contact-submission pipeline: validation,
// normalization, a time-bounded persistence attempt, and a typed result.
type SubmissionService interface {
	// Submit validates req and tries to persist it within the configured
	// deadline. It returns a receipt on success, a *ValidationError on bad
	// input, ErrStoreNotConfigured when no store backend exists, or a
	// *StoreUnavailableError when the store failed or timed out.
	Submit(ctx context.Context, req model.SubmissionRequest) (*model.SubmissionReceipt, error)

	// SelfTest runs the identical pipeline with a fixed, known-valid payload
	// so an operator can tell broken wiring apart from bad user input.
	SelfTest(ctx context.Context) (*model.SubmissionReceipt, error)
}
