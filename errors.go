package catalyst

import (
	"fmt"
	"time"
)

// APIError represents an error response from the Catalyst Cloud API.
//
// Any HTTP status of 400 or above is normalized into an APIError carrying
// the numeric status and the server's detail message. A job that finishes
// in the failed state is reported the same way, with StatusCode 500 and
// the job's error message as the detail.
type APIError struct {
	// StatusCode is the HTTP status code returned by the server.
	StatusCode int

	// Detail is the human-readable error message. Taken from the
	// response's "detail" field when present, otherwise the raw body.
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalyst: HTTP %d: %s", e.StatusCode, e.Detail)
}

// TimeoutError is returned by [Client.Simulate] when a job does not reach
// a terminal state within the configured maximum wait.
//
// The job itself keeps running server-side; only the client stops waiting.
// Use [Client.GetJob] with the JobID to check on it later.
type TimeoutError struct {
	// JobID identifies the job that was still pending.
	JobID string

	// MaxWait is the bound that elapsed.
	MaxWait time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("catalyst: job %s did not complete within %s", e.JobID, e.MaxWait)
}
