package ticket

import (
	"errors"
	"fmt"
)

// SubmissionRejectedError is a backend validation rejection (4xx) on ticket
// creation. The draft that produced it is still valid to retry after edits.
type SubmissionRejectedError struct {
	StatusCode int
	Message    string
}

func (e *SubmissionRejectedError) Error() string {
	return fmt.Sprintf("submission rejected (%d): %s", e.StatusCode, e.Message)
}

// SubmissionFailedError is a network or server failure (5xx, transport) on
// ticket creation. Retrying the identical payload is safe.
type SubmissionFailedError struct {
	StatusCode int
	Err        error
}

func (e *SubmissionFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("submission failed: %v", e.Err)
	}
	return fmt.Sprintf("submission failed with status %d", e.StatusCode)
}

func (e *SubmissionFailedError) Unwrap() error { return e.Err }

// DetectionUnavailableError means the keyword-suggestion endpoint failed.
// Callers absorb it and fall back to local classification.
type DetectionUnavailableError struct {
	Err error
}

func (e *DetectionUnavailableError) Error() string {
	return fmt.Sprintf("keyword suggestions unavailable: %v", e.Err)
}

func (e *DetectionUnavailableError) Unwrap() error { return e.Err }

// IsRejected reports whether err is a backend validation rejection.
func IsRejected(err error) bool {
	var rejected *SubmissionRejectedError
	return errors.As(err, &rejected)
}
