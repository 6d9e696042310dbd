package generations

import "errors"

var (
	ErrNotFound     = errors.New("generation not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError covers malformed or missing request fields. Surfaced as
// 400, never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// SafetyError carries the content filter's user-facing rejection reason.
type SafetyError struct {
	Reason string
}

func (e *SafetyError) Error() string {
	return e.Reason
}

// ProviderStartError means the provider rejected or could not accept the
// job. The generation record is already marked failed by the time this is
// returned.
type ProviderStartError struct {
	Cause error
}

func (e *ProviderStartError) Error() string {
	return "provider failed to start job: " + e.Cause.Error()
}

func (e *ProviderStartError) Unwrap() error {
	return e.Cause
}
