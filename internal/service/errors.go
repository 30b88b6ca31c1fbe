package service

import "errors"

// ValidationReason identifies which validation rule rejected a submission.
type ValidationReason string

const (
	ReasonMissingFields ValidationReason = "missing_fields"
	ReasonInvalidEmail  ValidationReason = "invalid_email"
)

// ValidationError reports a client-caused rejection. It is never logged as an
// incident and always maps to a 400.
type ValidationError struct {
	Reason  ValidationReason
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ErrStoreNotConfigured is returned when no submission store backend is
// configured at all. Operator-caused; maps to 503.
var ErrStoreNotConfigured = errors.New("submission store not configured")

// UnavailableCause distinguishes a backend failure from a backend that was
// merely too slow. Callers report a different user-facing message for each.
type UnavailableCause string

const (
	CauseStoreError UnavailableCause = "store_error"
	CauseTimeout    UnavailableCause = "timeout"
)

// StoreUnavailableError reports that a persistence attempt did not confirm
// within bounds. Err is nil for timeouts: the operation may still be running
// and has produced no error to report.
type StoreUnavailableError struct {
	Cause UnavailableCause
	Err   error
}

func (e *StoreUnavailableError) Error() string {
	if e.Err != nil {
		return "submission store unavailable: " + e.Err.Error()
	}
	return "submission store unavailable: " + string(e.Cause)
}

func (e *StoreUnavailableError) Unwrap() error { return e.Err }
