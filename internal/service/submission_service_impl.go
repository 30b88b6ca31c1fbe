package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/llyods/backend/internal/model"
	"github.com/llyods/backend/internal/repository"
	"github.com/llyods/backend/pkg/deadline"
)

// submissionServiceImpl is the production implementation of SubmissionService.
// It holds no mutable state and is safe for concurrent use.
type submissionServiceImpl struct {
	repo    repository.SubmissionRepository // nil when no store is configured
	timeout time.Duration
}

// NewSubmissionService creates a SubmissionService backed by the given
// repository. Pass a nil repository when no store backend is configured; the
// service then answers every submit with ErrStoreNotConfigured without
// attempting persistence. A non-positive timeout falls back to 5 seconds.
func NewSubmissionService(repo repository.SubmissionRepository, timeout time.Duration) SubmissionService {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &submissionServiceImpl{repo: repo, timeout: timeout}
}

func (s *submissionServiceImpl) Submit(ctx context.Context, req model.SubmissionRequest) (*model.SubmissionReceipt, error) {
	normalized, err := ValidateSubmission(req)
	if err != nil {
		return nil, err
	}

	if s.repo == nil {
		return nil, ErrStoreNotConfigured
	}

	res := deadline.Run(ctx, s.timeout, func(ctx context.Context) (*model.ContactSubmission, error) {
		sub := &model.ContactSubmission{
			Name:          normalized.Name,
			Email:         normalized.Email,
			Phone:         normalized.Phone,
			Subject:       normalized.Subject,
			Message:       normalized.Message,
			SourceAddress: normalized.SourceAddress,
			UserAgent:     normalized.UserAgent,
		}
		if err := s.repo.Insert(ctx, sub); err != nil {
			return nil, err
		}
		return sub, nil
	})

	switch res.Outcome {
	case deadline.Completed:
		return &model.SubmissionReceipt{
			ID:          res.Value.ID,
			Email:       res.Value.Email,
			SubmittedAt: res.Value.SubmittedAt,
		}, nil

	case deadline.TimedOut:
		// The insert may still commit in the background; its result is
		// discarded either way.
		s.logFallback(normalized, "timeout", nil)
		return nil, &StoreUnavailableError{Cause: CauseTimeout}

	default:
		s.logFallback(normalized, "store_error", res.Err)
		return nil, &StoreUnavailableError{Cause: CauseStoreError, Err: res.Err}
	}
}

// logFallback emits the diagnostic record for a failed persistence attempt.
// The message body is never logged, only its length.
func (s *submissionServiceImpl) logFallback(req model.SubmissionRequest, cause string, err error) {
	attrs := []any{
		"email", req.Email,
		"timestamp", time.Now().UTC().Format(time.RFC3339),
		"cause", cause,
		"message_length", len(req.Message),
	}
	if err != nil {
		attrs = append(attrs, "error", err.Error())
	}
	slog.Error("contact submission failed", attrs...)
}

// selfTestRequest is the fixed payload exercised by SelfTest. It goes through
// full validation like any user input, so a broken fixture shows up as a
// legitimate failure.
var selfTestRequest = model.SubmissionRequest{
	Name:          "Test User",
	Email:         "test@example.com",
	Phone:         "+1234567890",
	Subject:       "Test Submission",
	Message:       "This is a test contact form submission to verify the endpoint is working.",
	SourceAddress: "test",
}

func (s *submissionServiceImpl) SelfTest(ctx context.Context) (*model.SubmissionReceipt, error) {
	return s.Submit(ctx, selfTestRequest)
}
