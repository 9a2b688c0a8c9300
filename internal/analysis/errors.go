package analysis

import (
	"fmt"
	"time"
)

// InvalidInputError indicates the caller violated a request precondition.
// No external call is made when this is returned.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// ServiceUnavailableError indicates the scoring service is unconfigured or
// unreachable. Distinct from transient overload: this is a retry-later
// condition, not a retry-shortly one.
type ServiceUnavailableError struct {
	Message string
	Cause   error
}

func (e *ServiceUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scoring service unavailable: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("scoring service unavailable: %s", e.Message)
}

func (e *ServiceUnavailableError) Unwrap() error {
	return e.Cause
}

// RateLimitedError indicates the scoring service signaled overload.
type RateLimitedError struct {
	Cause error
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("scoring service rate limited: %v", e.Cause)
}

func (e *RateLimitedError) Unwrap() error {
	return e.Cause
}

// TimeoutError indicates the call exceeded the allotted time budget.
type TimeoutError struct {
	Budget time.Duration
	Cause  error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("analysis timed out after %s: %v", e.Budget, e.Cause)
}

func (e *TimeoutError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError indicates the service's output could not be parsed
// as structured data at all. Shape problems within parseable JSON never raise
// this: those degrade to defaults in the normalizer.
type MalformedResponseError struct {
	Snippet string
	Cause   error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed scoring response: %v (content: %s)", e.Cause, e.Snippet)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}
