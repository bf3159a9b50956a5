package relay

import (
	"errors"
	"fmt"
)

// Sentinel errors for the relay failure taxonomy. None of them is retried;
// each invocation makes at most one upstream attempt.
var (
	// ErrMissingCredential means the provider API key is not configured.
	// It is returned before any network I/O.
	ErrMissingCredential = errors.New("AI_API_KEY is not configured")

	// ErrInvalidRequestKind means the request type is not one of the
	// supported kinds. No upstream call is made.
	ErrInvalidRequestKind = errors.New("invalid type: use 'summarize', 'study', or 'moderate'")

	// ErrRateLimited maps the provider's HTTP 429 reply.
	ErrRateLimited = errors.New("rate limit exceeded, please try again later")

	// ErrQuotaExhausted maps the provider's HTTP 402 reply.
	ErrQuotaExhausted = errors.New("usage credits exhausted, please add credits")
)

// UpstreamError carries the status and body of any other failed provider
// exchange, including transport failures, for diagnostics.
type UpstreamError struct {
	Status int
	Body   string
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("AI gateway request failed: %v", e.Err)
	}
	return fmt.Sprintf("AI gateway error: status %d: %s", e.Status, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
