package tutor

import (
	"errors"
	"fmt"
)

// ErrRequestInFlight is returned by Submit when the session already has an
// outstanding provider call.
var ErrRequestInFlight = errors.New("a request is already in flight for this session")

// ValidationError reports user input that cannot be submitted.
// The session is left untouched when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ExternalServiceError wraps a provider failure. The underlying error keeps
// the provider's classification (rate limit, unavailable, invalid response).
type ExternalServiceError struct {
	Err error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("assistant request failed: %v", e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}
